package memory

import (
	"strings"
	"sync"

	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementación en memoria del puerto EmployeeRepository.
type EmployeeRepo struct {
	mu        sync.RWMutex
	employees []entity.Employee
	nextID    int
}

// NewEmployeeRepository construye el repositorio con la secuencia en 1.
func NewEmployeeRepository() *EmployeeRepo {
	return &EmployeeRepo{nextID: 1}
}

// Create asigna el siguiente ID EMPnnnn y guarda el empleado.
func (r *EmployeeRepo) Create(e *entity.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e.ID = formatID("EMP", r.nextID)
	r.nextID++
	r.employees = append(r.employees, *e)
	return nil
}

// GetByID devuelve una copia del empleado o nil si no existe.
func (r *EmployeeRepo) GetByID(id string) (*entity.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.employees {
		if r.employees[i].ID == id {
			e := r.employees[i]
			return &e, nil
		}
	}
	return nil, nil
}

// List devuelve un snapshot de todos los empleados.
func (r *EmployeeRepo) List() ([]*entity.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*entity.Employee, 0, len(r.employees))
	for i := range r.employees {
		e := r.employees[i]
		list = append(list, &e)
	}
	return list, nil
}

// SearchByName filtra por subcadena del nombre, sin distinguir mayúsculas.
func (r *EmployeeRepo) SearchByName(name string) ([]*entity.Employee, error) {
	needle := strings.ToLower(name)
	r.mu.RLock()
	defer r.mu.RUnlock()
	var list []*entity.Employee
	for i := range r.employees {
		if strings.Contains(strings.ToLower(r.employees[i].Name), needle) {
			e := r.employees[i]
			list = append(list, &e)
		}
	}
	return list, nil
}

// Update reemplaza el empleado con el mismo ID; sin efecto si no existe.
func (r *EmployeeRepo) Update(e *entity.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.employees {
		if r.employees[i].ID == e.ID {
			r.employees[i] = *e
			return nil
		}
	}
	return nil
}

// Delete elimina el empleado con el ID dado; sin efecto si no existe.
func (r *EmployeeRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.employees {
		if r.employees[i].ID == id {
			r.employees = append(r.employees[:i], r.employees[i+1:]...)
			return nil
		}
	}
	return nil
}
