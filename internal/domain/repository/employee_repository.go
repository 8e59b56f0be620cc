package repository

import "github.com/jhoicas/Restaurante-api/internal/domain/entity"

// EmployeeRepository define el puerto de persistencia para empleados.
// Create asigna el ID (esquema EMP0001, EMP0002, ...); los llamadores nunca lo fijan.
type EmployeeRepository interface {
	Create(e *entity.Employee) error
	GetByID(id string) (*entity.Employee, error)
	List() ([]*entity.Employee, error)
	SearchByName(name string) ([]*entity.Employee, error)
	Update(e *entity.Employee) error
	Delete(id string) error
}
