package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

var _ repository.ShiftRepository = (*ShiftRepo)(nil)

// ShiftRepo implementación del puerto ShiftRepository sobre PostgreSQL.
type ShiftRepo struct {
	db Querier
}

// NewShiftRepository construye el adaptador de persistencia para turnos.
func NewShiftRepository(db Querier) *ShiftRepo {
	return &ShiftRepo{db: db}
}

const shiftColumns = `id, employee_id, employee_name, date, start_time, end_time, shift_type`

// Create persiste un turno; el ID lo asigna la secuencia del store (SHFnnnn).
func (r *ShiftRepo) Create(s *entity.Shift) error {
	query := `
		INSERT INTO shifts (id, employee_id, employee_name, date, start_time, end_time, shift_type)
		VALUES ('SHF' || lpad(nextval('shifts_id_seq')::text, 4, '0'), $1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.db.QueryRow(context.Background(), query,
		s.EmployeeID, s.EmployeeName, s.Date,
		timeOfDayToText(s.StartTime), timeOfDayToText(s.EndTime), s.ShiftType,
	).Scan(&s.ID)
	if err != nil {
		return fmt.Errorf("insert shift: %w", err)
	}
	return nil
}

// GetByID obtiene un turno por ID; nil si no existe.
func (r *ShiftRepo) GetByID(id string) (*entity.Shift, error) {
	row := r.db.QueryRow(context.Background(),
		`SELECT `+shiftColumns+` FROM shifts WHERE id = $1`, id)
	s, err := scanShift(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shift: %w", err)
	}
	return s, nil
}

// List lista todos los turnos en orden de creación.
func (r *ShiftRepo) List() ([]*entity.Shift, error) {
	return r.query(`SELECT ` + shiftColumns + ` FROM shifts ORDER BY id`)
}

// ListByEmployee turnos de un empleado.
func (r *ShiftRepo) ListByEmployee(employeeID string) ([]*entity.Shift, error) {
	return r.query(`SELECT `+shiftColumns+` FROM shifts WHERE employee_id = $1 ORDER BY id`, employeeID)
}

// ListByDate turnos de una fecha exacta.
func (r *ShiftRepo) ListByDate(date time.Time) ([]*entity.Shift, error) {
	return r.query(`SELECT `+shiftColumns+` FROM shifts WHERE date = $1 ORDER BY id`, date)
}

// ListByDateRange turnos con fecha en [from, to], ambos inclusive.
func (r *ShiftRepo) ListByDateRange(from, to time.Time) ([]*entity.Shift, error) {
	return r.query(`SELECT `+shiftColumns+` FROM shifts WHERE date BETWEEN $1 AND $2 ORDER BY id`, from, to)
}

// Update actualiza un turno existente.
func (r *ShiftRepo) Update(s *entity.Shift) error {
	query := `
		UPDATE shifts SET employee_id = $2, employee_name = $3, date = $4,
			start_time = $5, end_time = $6, shift_type = $7
		WHERE id = $1`
	if _, err := r.db.Exec(context.Background(), query,
		s.ID, s.EmployeeID, s.EmployeeName, s.Date,
		timeOfDayToText(s.StartTime), timeOfDayToText(s.EndTime), s.ShiftType,
	); err != nil {
		return fmt.Errorf("update shift: %w", err)
	}
	return nil
}

// Delete elimina un turno por ID.
func (r *ShiftRepo) Delete(id string) error {
	if _, err := r.db.Exec(context.Background(), `DELETE FROM shifts WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete shift: %w", err)
	}
	return nil
}

func scanShift(row pgx.Row) (*entity.Shift, error) {
	var (
		s          entity.Shift
		start, end *string
	)
	if err := row.Scan(&s.ID, &s.EmployeeID, &s.EmployeeName, &s.Date, &start, &end, &s.ShiftType); err != nil {
		return nil, err
	}
	var err error
	if s.StartTime, err = textToTimeOfDay(start); err != nil {
		return nil, err
	}
	if s.EndTime, err = textToTimeOfDay(end); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *ShiftRepo) query(sql string, args ...any) ([]*entity.Shift, error) {
	rows, err := r.db.Query(context.Background(), sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list shifts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Shift
	for rows.Next() {
		s, err := scanShift(rows)
		if err != nil {
			return nil, fmt.Errorf("scan shift: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}
