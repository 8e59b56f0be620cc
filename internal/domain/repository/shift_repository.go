package repository

import (
	"time"

	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

// ShiftRepository define el puerto de persistencia para turnos (prefijo SHF).
type ShiftRepository interface {
	Create(s *entity.Shift) error
	GetByID(id string) (*entity.Shift, error)
	List() ([]*entity.Shift, error)
	ListByEmployee(employeeID string) ([]*entity.Shift, error)
	ListByDate(date time.Time) ([]*entity.Shift, error)
	ListByDateRange(from, to time.Time) ([]*entity.Shift, error)
	Update(s *entity.Shift) error
	Delete(id string) error
}
