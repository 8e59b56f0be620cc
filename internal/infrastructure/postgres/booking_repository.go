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

var _ repository.BookingRepository = (*BookingRepo)(nil)

// BookingRepo implementación del puerto BookingRepository sobre PostgreSQL.
type BookingRepo struct {
	db Querier
}

// NewBookingRepository construye el adaptador de persistencia para reservas.
func NewBookingRepository(db Querier) *BookingRepo {
	return &BookingRepo{db: db}
}

const bookingColumns = `id, customer_name, phone_number, number_of_guests, date, start_time, table_id, status`

// Create persiste una reserva; el ID lo asigna la secuencia del store (BKnnnn).
func (r *BookingRepo) Create(b *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, customer_name, phone_number, number_of_guests, date, start_time, table_id, status)
		VALUES ('BK' || lpad(nextval('bookings_id_seq')::text, 4, '0'), $1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.db.QueryRow(context.Background(), query,
		b.CustomerName, b.PhoneNumber, b.NumberOfGuests, b.Date,
		b.StartTime.String(), b.TableID, b.Status,
	).Scan(&b.ID)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}
	return nil
}

// GetByID obtiene una reserva por ID; nil si no existe.
func (r *BookingRepo) GetByID(id string) (*entity.Booking, error) {
	row := r.db.QueryRow(context.Background(),
		`SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id)
	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get booking: %w", err)
	}
	return b, nil
}

// List lista todas las reservas en orden de creación.
func (r *BookingRepo) List() ([]*entity.Booking, error) {
	return r.query(`SELECT ` + bookingColumns + ` FROM bookings ORDER BY id`)
}

// ListByDate reservas de una fecha exacta.
func (r *BookingRepo) ListByDate(date time.Time) ([]*entity.Booking, error) {
	return r.query(`SELECT `+bookingColumns+` FROM bookings WHERE date = $1 ORDER BY id`, date)
}

// ListByStatus reservas con un estado dado.
func (r *BookingRepo) ListByStatus(status string) ([]*entity.Booking, error) {
	return r.query(`SELECT `+bookingColumns+` FROM bookings WHERE status = $1 ORDER BY id`, status)
}

// SearchByCustomer búsqueda por subcadena del nombre del cliente, sin distinguir mayúsculas.
func (r *BookingRepo) SearchByCustomer(name string) ([]*entity.Booking, error) {
	return r.query(`SELECT `+bookingColumns+` FROM bookings WHERE customer_name ILIKE '%' || $1 || '%' ORDER BY id`, name)
}

// Update actualiza una reserva existente.
func (r *BookingRepo) Update(b *entity.Booking) error {
	query := `
		UPDATE bookings SET customer_name = $2, phone_number = $3, number_of_guests = $4,
			date = $5, start_time = $6, table_id = $7, status = $8
		WHERE id = $1`
	if _, err := r.db.Exec(context.Background(), query,
		b.ID, b.CustomerName, b.PhoneNumber, b.NumberOfGuests, b.Date,
		b.StartTime.String(), b.TableID, b.Status,
	); err != nil {
		return fmt.Errorf("update booking: %w", err)
	}
	return nil
}

// Delete elimina una reserva por ID.
func (r *BookingRepo) Delete(id string) error {
	if _, err := r.db.Exec(context.Background(), `DELETE FROM bookings WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}
	return nil
}

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var (
		b   entity.Booking
		hhm string
	)
	if err := row.Scan(&b.ID, &b.CustomerName, &b.PhoneNumber, &b.NumberOfGuests, &b.Date, &hhm, &b.TableID, &b.Status); err != nil {
		return nil, err
	}
	t, err := entity.ParseTimeOfDay(hhm)
	if err != nil {
		return nil, fmt.Errorf("hora almacenada corrupta %q: %w", hhm, err)
	}
	b.StartTime = t
	return &b, nil
}

func (r *BookingRepo) query(sql string, args ...any) ([]*entity.Booking, error) {
	rows, err := r.db.Query(context.Background(), sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()
	var list []*entity.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		list = append(list, b)
	}
	return list, rows.Err()
}
