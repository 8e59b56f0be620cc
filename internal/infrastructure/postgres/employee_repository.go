package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementación del puerto EmployeeRepository sobre PostgreSQL.
type EmployeeRepo struct {
	db Querier
}

// NewEmployeeRepository construye el adaptador de persistencia para empleados.
func NewEmployeeRepository(db Querier) *EmployeeRepo {
	return &EmployeeRepo{db: db}
}

// Create persiste un empleado; el ID lo asigna la secuencia del store (EMPnnnn).
func (r *EmployeeRepo) Create(e *entity.Employee) error {
	query := `
		INSERT INTO employees (id, name, position, phone_number, email)
		VALUES ('EMP' || lpad(nextval('employees_id_seq')::text, 4, '0'), $1, $2, $3, $4)
		RETURNING id`
	err := r.db.QueryRow(context.Background(), query,
		e.Name, e.Position, e.PhoneNumber, e.Email,
	).Scan(&e.ID)
	if err != nil {
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

// GetByID obtiene un empleado por ID; nil si no existe.
func (r *EmployeeRepo) GetByID(id string) (*entity.Employee, error) {
	query := `
		SELECT id, name, position, phone_number, email
		FROM employees WHERE id = $1`
	var e entity.Employee
	err := r.db.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.Name, &e.Position, &e.PhoneNumber, &e.Email,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return &e, nil
}

// List lista todos los empleados en orden de creación.
func (r *EmployeeRepo) List() ([]*entity.Employee, error) {
	return r.query(`
		SELECT id, name, position, phone_number, email
		FROM employees ORDER BY id`)
}

// SearchByName filtra por subcadena del nombre, sin distinguir mayúsculas.
func (r *EmployeeRepo) SearchByName(name string) ([]*entity.Employee, error) {
	return r.query(`
		SELECT id, name, position, phone_number, email
		FROM employees WHERE name ILIKE '%' || $1 || '%' ORDER BY id`, name)
}

// Update actualiza un empleado existente.
func (r *EmployeeRepo) Update(e *entity.Employee) error {
	query := `
		UPDATE employees SET name = $2, position = $3, phone_number = $4, email = $5
		WHERE id = $1`
	if _, err := r.db.Exec(context.Background(), query,
		e.ID, e.Name, e.Position, e.PhoneNumber, e.Email,
	); err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	return nil
}

// Delete elimina un empleado por ID.
func (r *EmployeeRepo) Delete(id string) error {
	if _, err := r.db.Exec(context.Background(), `DELETE FROM employees WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	return nil
}

func (r *EmployeeRepo) query(sql string, args ...any) ([]*entity.Employee, error) {
	rows, err := r.db.Query(context.Background(), sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()
	var list []*entity.Employee
	for rows.Next() {
		var e entity.Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.Position, &e.PhoneNumber, &e.Email); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
