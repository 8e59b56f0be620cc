package usecase

import (
	"fmt"
	"time"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

// BookingUseCase casos de uso de reservas: CRUD más la máquina de estados
// CONFIRMED → SEATED | CANCELLED (ambos terminales).
type BookingUseCase struct {
	repo repository.BookingRepository
}

// NewBookingUseCase construye el caso de uso.
func NewBookingUseCase(repo repository.BookingRepository) *BookingUseCase {
	return &BookingUseCase{repo: repo}
}

// Create valida y registra una reserva; nace siempre CONFIRMED.
func (uc *BookingUseCase) Create(in dto.CreateBookingRequest) (*dto.BookingResponse, error) {
	date, err := dto.ParseDate(in.Date)
	if err != nil {
		return nil, err
	}
	start, err := entity.ParseTimeOfDay(in.StartTime)
	if err != nil {
		return nil, err
	}
	booking := &entity.Booking{
		CustomerName:   in.CustomerName,
		PhoneNumber:    in.PhoneNumber,
		NumberOfGuests: in.NumberOfGuests,
		Date:           date,
		StartTime:      start,
		TableID:        in.TableID,
		Status:         entity.BookingStatusConfirmed,
	}
	if err := validateBooking(booking); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(booking); err != nil {
		return nil, err
	}
	return toBookingResponse(booking), nil
}

// GetByID obtiene una reserva por ID.
func (uc *BookingUseCase) GetByID(id string) (*dto.BookingResponse, error) {
	booking, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, domain.ErrNotFound
	}
	return toBookingResponse(booking), nil
}

// BookingQuery filtros opcionales para listar reservas.
type BookingQuery struct {
	Date   *time.Time
	Status string
	Name   string
}

// List lista reservas según los filtros: fecha, estado o nombre del cliente.
func (uc *BookingUseCase) List(q BookingQuery) (*dto.BookingListResponse, error) {
	var (
		list []*entity.Booking
		err  error
	)
	switch {
	case q.Date != nil:
		list, err = uc.repo.ListByDate(*q.Date)
	case q.Status != "":
		list, err = uc.repo.ListByStatus(q.Status)
	case q.Name != "":
		list, err = uc.repo.SearchByCustomer(q.Name)
	default:
		list, err = uc.repo.List()
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.BookingResponse, 0, len(list))
	for _, b := range list {
		items = append(items, *toBookingResponse(b))
	}
	return &dto.BookingListResponse{Items: items, Total: len(items)}, nil
}

// Update valida y actualiza los datos de una reserva; el estado no cambia aquí.
func (uc *BookingUseCase) Update(id string, in dto.UpdateBookingRequest) (*dto.BookingResponse, error) {
	booking, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, domain.ErrNotFound
	}
	if in.CustomerName != nil {
		booking.CustomerName = *in.CustomerName
	}
	if in.PhoneNumber != nil {
		booking.PhoneNumber = *in.PhoneNumber
	}
	if in.NumberOfGuests != nil {
		booking.NumberOfGuests = *in.NumberOfGuests
	}
	if in.Date != nil {
		date, err := dto.ParseDate(*in.Date)
		if err != nil {
			return nil, err
		}
		booking.Date = date
	}
	if in.StartTime != nil {
		start, err := entity.ParseTimeOfDay(*in.StartTime)
		if err != nil {
			return nil, err
		}
		booking.StartTime = start
	}
	if in.TableID != nil {
		booking.TableID = *in.TableID
	}
	if err := validateBooking(booking); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(booking); err != nil {
		return nil, err
	}
	return toBookingResponse(booking), nil
}

// Delete elimina una reserva por ID.
func (uc *BookingUseCase) Delete(id string) error {
	booking, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if booking == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// Cancel pasa la reserva a CANCELLED. Rechazado desde CANCELLED o SEATED;
// en tal caso no se aplica ninguna mutación.
func (uc *BookingUseCase) Cancel(id string) (*dto.BookingResponse, error) {
	return uc.transition(id, func(b *entity.Booking) error {
		if !b.CanCancel() {
			return fmt.Errorf("%w: no se puede cancelar desde %s", domain.ErrInvalidTransition, b.Status)
		}
		b.Status = entity.BookingStatusCancelled
		return nil
	})
}

// Seat pasa la reserva a SEATED. Permitido solo desde CONFIRMED.
func (uc *BookingUseCase) Seat(id string) (*dto.BookingResponse, error) {
	return uc.transition(id, func(b *entity.Booking) error {
		if !b.CanSeat() {
			return fmt.Errorf("%w: no se puede sentar desde %s", domain.ErrInvalidTransition, b.Status)
		}
		b.Status = entity.BookingStatusSeated
		return nil
	})
}

func (uc *BookingUseCase) transition(id string, apply func(*entity.Booking) error) (*dto.BookingResponse, error) {
	booking, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, domain.ErrNotFound
	}
	if err := apply(booking); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(booking); err != nil {
		return nil, err
	}
	return toBookingResponse(booking), nil
}

// validateBooking valida antes de cualquier mutación del store.
func validateBooking(b *entity.Booking) error {
	if b.CustomerName == "" {
		return fmt.Errorf("%w: el nombre del cliente es requerido", domain.ErrInvalidInput)
	}
	if b.PhoneNumber == "" {
		return fmt.Errorf("%w: el teléfono es requerido", domain.ErrInvalidInput)
	}
	if b.NumberOfGuests <= 0 {
		return fmt.Errorf("%w: el número de comensales debe ser mayor que 0", domain.ErrInvalidInput)
	}
	if b.Date.IsZero() {
		return fmt.Errorf("%w: la fecha es requerida", domain.ErrInvalidInput)
	}
	if b.TableID == "" {
		return fmt.Errorf("%w: la mesa es requerida", domain.ErrInvalidInput)
	}
	if b.Status == "" {
		return fmt.Errorf("%w: el estado es requerido", domain.ErrInvalidInput)
	}
	return nil
}

func toBookingResponse(b *entity.Booking) *dto.BookingResponse {
	return &dto.BookingResponse{
		ID:             b.ID,
		CustomerName:   b.CustomerName,
		PhoneNumber:    b.PhoneNumber,
		NumberOfGuests: b.NumberOfGuests,
		Date:           dto.FormatDate(b.Date),
		StartTime:      b.StartTime.String(),
		TableID:        b.TableID,
		Status:         b.Status,
	}
}
