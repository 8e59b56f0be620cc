package entity

import "time"

// Estados de una reserva.
const (
	BookingStatusConfirmed = "CONFIRMED"
	BookingStatusSeated    = "SEATED"
	BookingStatusCancelled = "CANCELLED"
)

// Booking representa una reserva de mesa.
type Booking struct {
	ID             string
	CustomerName   string
	PhoneNumber    string
	NumberOfGuests int
	Date           time.Time // solo la parte de fecha es significativa
	StartTime      TimeOfDay
	TableID        string
	Status         string
}

// CanCancel indica si la reserva admite cancelación.
// SEATED y CANCELLED son estados terminales.
func (b Booking) CanCancel() bool {
	return b.Status != BookingStatusCancelled && b.Status != BookingStatusSeated
}

// CanSeat indica si la reserva admite sentar al cliente (solo desde CONFIRMED).
func (b Booking) CanSeat() bool {
	return b.Status == BookingStatusConfirmed
}
