package dto

// CreateShiftRequest entrada para asignar un turno.
// Fechas "YYYY-MM-DD", horas "HH:MM".
type CreateShiftRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	ShiftType  string `json:"shift_type"`
}

// UpdateShiftRequest entrada para actualizar un turno (campos opcionales).
type UpdateShiftRequest struct {
	EmployeeID *string `json:"employee_id"`
	Date       *string `json:"date"`
	StartTime  *string `json:"start_time"`
	EndTime    *string `json:"end_time"`
	ShiftType  *string `json:"shift_type"`
}

// ShiftResponse salida de un turno.
type ShiftResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Date         string `json:"date"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	ShiftType    string `json:"shift_type"`
}

// ShiftListResponse listado de turnos.
type ShiftListResponse struct {
	Items []ShiftResponse `json:"items"`
	Total int             `json:"total"`
}
