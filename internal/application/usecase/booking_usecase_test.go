package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/infrastructure/memory"
)

func newBookingUC() *BookingUseCase {
	return NewBookingUseCase(memory.NewBookingRepository())
}

func createBooking(t *testing.T, uc *BookingUseCase) *dto.BookingResponse {
	t.Helper()
	out, err := uc.Create(dto.CreateBookingRequest{
		CustomerName:   "Carlos Pérez",
		PhoneNumber:    "3001234567",
		NumberOfGuests: 4,
		Date:           "2024-01-05",
		StartTime:      "20:00",
		TableID:        "T12",
	})
	require.NoError(t, err)
	return out
}

func TestBookingCreate_NaceConfirmada(t *testing.T) {
	uc := newBookingUC()
	out := createBooking(t, uc)

	assert.Equal(t, "BK0001", out.ID)
	assert.Equal(t, entity.BookingStatusConfirmed, out.Status)
	assert.Equal(t, "2024-01-05", out.Date)
	assert.Equal(t, "20:00", out.StartTime)
}

func TestBookingCreate_Validacion(t *testing.T) {
	uc := newBookingUC()

	_, err := uc.Create(dto.CreateBookingRequest{
		PhoneNumber:    "3001234567",
		NumberOfGuests: 2,
		Date:           "2024-01-05",
		StartTime:      "20:00",
		TableID:        "T1",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(dto.CreateBookingRequest{
		CustomerName:   "Ana",
		PhoneNumber:    "3001234567",
		NumberOfGuests: 0,
		Date:           "2024-01-05",
		StartTime:      "20:00",
		TableID:        "T1",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Máquina de estados
// ──────────────────────────────────────────────────────────────────────────────

func TestBookingSeat_DesdeConfirmada(t *testing.T) {
	uc := newBookingUC()
	b := createBooking(t, uc)

	out, err := uc.Seat(b.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusSeated, out.Status)
}

func TestBookingCancel_DesdeConfirmada(t *testing.T) {
	uc := newBookingUC()
	b := createBooking(t, uc)

	out, err := uc.Cancel(b.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusCancelled, out.Status)
}

// Las transiciones inválidas fallan con ErrInvalidTransition y no mutan el estado.
func TestBookingTransiciones_EstadosTerminales(t *testing.T) {
	cases := []struct {
		name    string
		prepare func(t *testing.T, uc *BookingUseCase, id string)
		action  func(uc *BookingUseCase, id string) error
		want    string
	}{
		{
			name: "cancelar una sentada",
			prepare: func(t *testing.T, uc *BookingUseCase, id string) {
				_, err := uc.Seat(id)
				require.NoError(t, err)
			},
			action: func(uc *BookingUseCase, id string) error { _, err := uc.Cancel(id); return err },
			want:   entity.BookingStatusSeated,
		},
		{
			name: "cancelar una cancelada",
			prepare: func(t *testing.T, uc *BookingUseCase, id string) {
				_, err := uc.Cancel(id)
				require.NoError(t, err)
			},
			action: func(uc *BookingUseCase, id string) error { _, err := uc.Cancel(id); return err },
			want:   entity.BookingStatusCancelled,
		},
		{
			name: "sentar una sentada",
			prepare: func(t *testing.T, uc *BookingUseCase, id string) {
				_, err := uc.Seat(id)
				require.NoError(t, err)
			},
			action: func(uc *BookingUseCase, id string) error { _, err := uc.Seat(id); return err },
			want:   entity.BookingStatusSeated,
		},
		{
			name: "sentar una cancelada",
			prepare: func(t *testing.T, uc *BookingUseCase, id string) {
				_, err := uc.Cancel(id)
				require.NoError(t, err)
			},
			action: func(uc *BookingUseCase, id string) error { _, err := uc.Seat(id); return err },
			want:   entity.BookingStatusCancelled,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := newBookingUC()
			b := createBooking(t, uc)
			tc.prepare(t, uc, b.ID)

			err := tc.action(uc, b.ID)
			assert.ErrorIs(t, err, domain.ErrInvalidTransition)

			// El estado no cambió tras la transición rechazada.
			got, err := uc.GetByID(b.ID)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.Status)
		})
	}
}

func TestBookingTransicion_NoExiste(t *testing.T) {
	uc := newBookingUC()
	_, err := uc.Seat("BK9999")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update y filtros
// ──────────────────────────────────────────────────────────────────────────────

func TestBookingUpdate_NoTocaElEstado(t *testing.T) {
	uc := newBookingUC()
	b := createBooking(t, uc)
	_, err := uc.Seat(b.ID)
	require.NoError(t, err)

	guests := 6
	out, err := uc.Update(b.ID, dto.UpdateBookingRequest{NumberOfGuests: &guests})
	require.NoError(t, err)
	assert.Equal(t, 6, out.NumberOfGuests)
	assert.Equal(t, entity.BookingStatusSeated, out.Status)
}

func TestBookingList_PorEstado(t *testing.T) {
	uc := newBookingUC()
	a := createBooking(t, uc)
	createBooking(t, uc)
	_, err := uc.Cancel(a.ID)
	require.NoError(t, err)

	out, err := uc.List(BookingQuery{Status: entity.BookingStatusConfirmed})
	require.NoError(t, err)
	require.Equal(t, 1, out.Total)
	assert.Equal(t, "BK0002", out.Items[0].ID)
}
