package entity

import "time"

// Etiquetas habituales de turno (el campo acepta texto libre).
const (
	ShiftTypeMorning   = "Morning"
	ShiftTypeAfternoon = "Afternoon"
	ShiftTypeEvening   = "Evening"
	ShiftTypeNight     = "Night"
)

// Shift representa un turno de trabajo de un empleado en una fecha.
// EmployeeName se desnormaliza al crear/actualizar para no resolver el nombre en cada lectura.
// StartTime/EndTime en nil significan "sin hora asignada"; el calendario los ignora.
type Shift struct {
	ID           string
	EmployeeID   string
	EmployeeName string
	Date         time.Time // solo la parte de fecha es significativa
	StartTime    *TimeOfDay
	EndTime      *TimeOfDay
	ShiftType    string
}

// HasTimes indica si el turno tiene hora de inicio y fin asignadas.
func (s Shift) HasTimes() bool {
	return s.StartTime != nil && s.EndTime != nil
}

// DurationMinutes duración en minutos; 0 si falta alguna hora.
func (s Shift) DurationMinutes() int {
	if !s.HasTimes() {
		return 0
	}
	return s.EndTime.TotalMinutes() - s.StartTime.TotalMinutes()
}
