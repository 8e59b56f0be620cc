package memory

import (
	"strings"
	"sync"
	"time"

	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

var _ repository.BookingRepository = (*BookingRepo)(nil)

// BookingRepo implementación en memoria del puerto BookingRepository.
type BookingRepo struct {
	mu       sync.RWMutex
	bookings []entity.Booking
	nextID   int
}

// NewBookingRepository construye el repositorio con la secuencia en 1.
func NewBookingRepository() *BookingRepo {
	return &BookingRepo{nextID: 1}
}

// Create asigna el siguiente ID BKnnnn y guarda la reserva.
func (r *BookingRepo) Create(b *entity.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b.ID = formatID("BK", r.nextID)
	r.nextID++
	r.bookings = append(r.bookings, *b)
	return nil
}

// GetByID devuelve una copia de la reserva o nil si no existe.
func (r *BookingRepo) GetByID(id string) (*entity.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.bookings {
		if r.bookings[i].ID == id {
			b := r.bookings[i]
			return &b, nil
		}
	}
	return nil, nil
}

// List devuelve un snapshot de todas las reservas.
func (r *BookingRepo) List() ([]*entity.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.filter(func(entity.Booking) bool { return true }), nil
}

// ListByDate reservas de una fecha.
func (r *BookingRepo) ListByDate(date time.Time) ([]*entity.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.filter(func(b entity.Booking) bool { return sameDay(b.Date, date) }), nil
}

// ListByStatus reservas por estado exacto.
func (r *BookingRepo) ListByStatus(status string) ([]*entity.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.filter(func(b entity.Booking) bool { return b.Status == status }), nil
}

// SearchByCustomer filtra por subcadena del nombre del cliente, sin distinguir mayúsculas.
func (r *BookingRepo) SearchByCustomer(name string) ([]*entity.Booking, error) {
	needle := strings.ToLower(name)
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.filter(func(b entity.Booking) bool {
		return strings.Contains(strings.ToLower(b.CustomerName), needle)
	}), nil
}

// filter devuelve copias de las reservas que cumplen el predicado; llamar con el candado tomado.
func (r *BookingRepo) filter(keep func(entity.Booking) bool) []*entity.Booking {
	var list []*entity.Booking
	for i := range r.bookings {
		if keep(r.bookings[i]) {
			b := r.bookings[i]
			list = append(list, &b)
		}
	}
	return list
}

// Update reemplaza la reserva con el mismo ID; sin efecto si no existe.
func (r *BookingRepo) Update(b *entity.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.bookings {
		if r.bookings[i].ID == b.ID {
			r.bookings[i] = *b
			return nil
		}
	}
	return nil
}

// Delete elimina la reserva con el ID dado; sin efecto si no existe.
func (r *BookingRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.bookings {
		if r.bookings[i].ID == id {
			r.bookings = append(r.bookings[:i], r.bookings[i+1:]...)
			return nil
		}
	}
	return nil
}
