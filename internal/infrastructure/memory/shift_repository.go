package memory

import (
	"sync"
	"time"

	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

var _ repository.ShiftRepository = (*ShiftRepo)(nil)

// ShiftRepo implementación en memoria del puerto ShiftRepository.
type ShiftRepo struct {
	mu     sync.RWMutex
	shifts []entity.Shift
	nextID int
}

// NewShiftRepository construye el repositorio con la secuencia en 1.
func NewShiftRepository() *ShiftRepo {
	return &ShiftRepo{nextID: 1}
}

// cloneShift copia el turno incluidos los punteros de hora, para que los
// snapshots no compartan memoria con el store.
func cloneShift(s entity.Shift) entity.Shift {
	if s.StartTime != nil {
		t := *s.StartTime
		s.StartTime = &t
	}
	if s.EndTime != nil {
		t := *s.EndTime
		s.EndTime = &t
	}
	return s
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// Create asigna el siguiente ID SHFnnnn y guarda el turno.
func (r *ShiftRepo) Create(s *entity.Shift) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s.ID = formatID("SHF", r.nextID)
	r.nextID++
	r.shifts = append(r.shifts, cloneShift(*s))
	return nil
}

// GetByID devuelve una copia del turno o nil si no existe.
func (r *ShiftRepo) GetByID(id string) (*entity.Shift, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.shifts {
		if r.shifts[i].ID == id {
			s := cloneShift(r.shifts[i])
			return &s, nil
		}
	}
	return nil, nil
}

// List devuelve un snapshot de todos los turnos en orden de creación.
func (r *ShiftRepo) List() ([]*entity.Shift, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.filter(func(entity.Shift) bool { return true }), nil
}

// ListByEmployee turnos de un empleado.
func (r *ShiftRepo) ListByEmployee(employeeID string) ([]*entity.Shift, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.filter(func(s entity.Shift) bool { return s.EmployeeID == employeeID }), nil
}

// ListByDate turnos de una fecha exacta.
func (r *ShiftRepo) ListByDate(date time.Time) ([]*entity.Shift, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.filter(func(s entity.Shift) bool { return sameDay(s.Date, date) }), nil
}

// ListByDateRange turnos con fecha en [from, to], ambos inclusive.
func (r *ShiftRepo) ListByDateRange(from, to time.Time) ([]*entity.Shift, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.filter(func(s entity.Shift) bool {
		if sameDay(s.Date, from) || sameDay(s.Date, to) {
			return true
		}
		return s.Date.After(from) && s.Date.Before(to)
	}), nil
}

// filter devuelve copias de los turnos que cumplen el predicado; llamar con el candado tomado.
func (r *ShiftRepo) filter(keep func(entity.Shift) bool) []*entity.Shift {
	var list []*entity.Shift
	for i := range r.shifts {
		if keep(r.shifts[i]) {
			s := cloneShift(r.shifts[i])
			list = append(list, &s)
		}
	}
	return list
}

// Update reemplaza el turno con el mismo ID; sin efecto si no existe.
func (r *ShiftRepo) Update(s *entity.Shift) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.shifts {
		if r.shifts[i].ID == s.ID {
			r.shifts[i] = cloneShift(*s)
			return nil
		}
	}
	return nil
}

// Delete elimina el turno con el ID dado; sin efecto si no existe.
func (r *ShiftRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.shifts {
		if r.shifts[i].ID == id {
			r.shifts = append(r.shifts[:i], r.shifts[i+1:]...)
			return nil
		}
	}
	return nil
}
