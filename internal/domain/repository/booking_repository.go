package repository

import (
	"time"

	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

// BookingRepository define el puerto de persistencia para reservas (prefijo BK).
type BookingRepository interface {
	Create(b *entity.Booking) error
	GetByID(id string) (*entity.Booking, error)
	List() ([]*entity.Booking, error)
	ListByDate(date time.Time) ([]*entity.Booking, error)
	ListByStatus(status string) ([]*entity.Booking, error)
	SearchByCustomer(name string) ([]*entity.Booking, error)
	Update(b *entity.Booking) error
	Delete(id string) error
}
