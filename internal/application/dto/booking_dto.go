package dto

// CreateBookingRequest entrada para registrar una reserva.
// Se crea siempre en estado CONFIRMED.
type CreateBookingRequest struct {
	CustomerName   string `json:"customer_name"`
	PhoneNumber    string `json:"phone_number"`
	NumberOfGuests int    `json:"number_of_guests"`
	Date           string `json:"date"`
	StartTime      string `json:"start_time"`
	TableID        string `json:"table_id"`
}

// UpdateBookingRequest entrada para actualizar una reserva (campos opcionales).
// El estado no se toca aquí: cambia solo vía cancel/seat.
type UpdateBookingRequest struct {
	CustomerName   *string `json:"customer_name"`
	PhoneNumber    *string `json:"phone_number"`
	NumberOfGuests *int    `json:"number_of_guests"`
	Date           *string `json:"date"`
	StartTime      *string `json:"start_time"`
	TableID        *string `json:"table_id"`
}

// BookingResponse salida de una reserva.
type BookingResponse struct {
	ID             string `json:"id"`
	CustomerName   string `json:"customer_name"`
	PhoneNumber    string `json:"phone_number"`
	NumberOfGuests int    `json:"number_of_guests"`
	Date           string `json:"date"`
	StartTime      string `json:"start_time"`
	TableID        string `json:"table_id"`
	Status         string `json:"status"`
}

// BookingListResponse listado de reservas.
type BookingListResponse struct {
	Items []BookingResponse `json:"items"`
	Total int               `json:"total"`
}
