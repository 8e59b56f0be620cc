package usecase

import (
	"fmt"
	"strings"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

// EmployeeUseCase casos de uso CRUD para el personal.
type EmployeeUseCase struct {
	repo repository.EmployeeRepository
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(repo repository.EmployeeRepository) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo}
}

// Create valida y registra un empleado; el repositorio asigna el ID.
func (uc *EmployeeUseCase) Create(in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	emp := &entity.Employee{
		Name:        strings.TrimSpace(in.Name),
		Position:    strings.TrimSpace(in.Position),
		PhoneNumber: strings.TrimSpace(in.PhoneNumber),
		Email:       strings.TrimSpace(in.Email),
	}
	if err := validateEmployee(emp); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(emp); err != nil {
		return nil, err
	}
	return toEmployeeResponse(emp), nil
}

// GetByID obtiene un empleado por ID.
func (uc *EmployeeUseCase) GetByID(id string) (*dto.EmployeeResponse, error) {
	emp, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, domain.ErrNotFound
	}
	return toEmployeeResponse(emp), nil
}

// List lista todo el personal; con name filtra por subcadena del nombre.
func (uc *EmployeeUseCase) List(name string) (*dto.EmployeeListResponse, error) {
	var (
		list []*entity.Employee
		err  error
	)
	if name != "" {
		list, err = uc.repo.SearchByName(name)
	} else {
		list, err = uc.repo.List()
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toEmployeeResponse(e))
	}
	return &dto.EmployeeListResponse{Items: items, Total: len(items)}, nil
}

// Update valida y actualiza un empleado existente.
func (uc *EmployeeUseCase) Update(id string, in dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	emp, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		emp.Name = strings.TrimSpace(*in.Name)
	}
	if in.Position != nil {
		emp.Position = strings.TrimSpace(*in.Position)
	}
	if in.PhoneNumber != nil {
		emp.PhoneNumber = strings.TrimSpace(*in.PhoneNumber)
	}
	if in.Email != nil {
		emp.Email = strings.TrimSpace(*in.Email)
	}
	if err := validateEmployee(emp); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(emp); err != nil {
		return nil, err
	}
	return toEmployeeResponse(emp), nil
}

// Delete elimina un empleado por ID.
func (uc *EmployeeUseCase) Delete(id string) error {
	emp, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if emp == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// validateEmployee valida antes de cualquier mutación.
func validateEmployee(e *entity.Employee) error {
	if e.Name == "" {
		return fmt.Errorf("%w: el nombre es requerido", domain.ErrInvalidInput)
	}
	if e.Position == "" {
		return fmt.Errorf("%w: el cargo es requerido", domain.ErrInvalidInput)
	}
	return nil
}

func toEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	return &dto.EmployeeResponse{
		ID:          e.ID,
		Name:        e.Name,
		Position:    e.Position,
		PhoneNumber: e.PhoneNumber,
		Email:       e.Email,
	}
}
