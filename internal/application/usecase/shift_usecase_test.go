package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/infrastructure/memory"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := dto.ParseDate(s)
	require.NoError(t, err)
	return d
}

func newShiftFixture(t *testing.T) (*ShiftUseCase, string) {
	t.Helper()
	employees := memory.NewEmployeeRepository()
	empUC := NewEmployeeUseCase(employees)
	emp, err := empUC.Create(dto.CreateEmployeeRequest{Name: "Ana Ruiz", Position: "Waiter"})
	require.NoError(t, err)
	return NewShiftUseCase(memory.NewShiftRepository(), employees), emp.ID
}

func TestShiftCreate_DesnormalizaNombre(t *testing.T) {
	uc, empID := newShiftFixture(t)

	out, err := uc.Create(dto.CreateShiftRequest{
		EmployeeID: empID,
		Date:       "2024-01-01",
		StartTime:  "09:00",
		EndTime:    "17:00",
		ShiftType:  "Morning",
	})
	require.NoError(t, err)
	assert.Equal(t, "SHF0001", out.ID)
	assert.Equal(t, empID, out.EmployeeID)
	assert.Equal(t, "Ana Ruiz", out.EmployeeName)
}

func TestShiftCreate_EmpleadoNoExiste(t *testing.T) {
	uc, _ := newShiftFixture(t)

	_, err := uc.Create(dto.CreateShiftRequest{
		EmployeeID: "EMP9999",
		Date:       "2024-01-01",
		StartTime:  "09:00",
		EndTime:    "17:00",
		ShiftType:  "Morning",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestShiftCreate_InicioDebeSerAnteriorAlFin(t *testing.T) {
	uc, empID := newShiftFixture(t)

	for _, tc := range []struct{ start, end string }{
		{"17:00", "09:00"},
		{"09:00", "09:00"},
	} {
		_, err := uc.Create(dto.CreateShiftRequest{
			EmployeeID: empID,
			Date:       "2024-01-01",
			StartTime:  tc.start,
			EndTime:    tc.end,
			ShiftType:  "Morning",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "%s-%s", tc.start, tc.end)
	}
}

// El calendario normaliza cualquier fecha de la semana al lunes y coloca
// el turno en el día y la hora que le corresponden.
func TestShiftCalendar(t *testing.T) {
	uc, empID := newShiftFixture(t)

	_, err := uc.Create(dto.CreateShiftRequest{
		EmployeeID: empID,
		Date:       "2024-01-03", // miércoles
		StartTime:  "09:00",
		EndTime:    "17:00",
		ShiftType:  "Morning",
	})
	require.NoError(t, err)

	week, err := uc.Calendar(mustDate(t, "2024-01-05"))
	require.NoError(t, err)

	assert.Equal(t, "2024-01-01", week.WeekStart)
	require.Len(t, week.Days, 7)
	assert.Equal(t, "2024-01-03", week.Days[2].Date)

	var start *dto.CalendarCell
	for i := range week.Days[2].Cells {
		if week.Days[2].Cells[i].Hour == 9 {
			start = &week.Days[2].Cells[i]
		}
	}
	require.NotNil(t, start)
	assert.Equal(t, "start", start.State)
	require.Len(t, start.Shifts, 1)
	assert.Equal(t, 8, start.Shifts[0].RowSpan)
	assert.Equal(t, "Ana Ruiz", start.Shifts[0].EmployeeName)
}

// Un turno de otra semana no aparece en el calendario consultado.
func TestShiftCalendar_FiltraPorSemana(t *testing.T) {
	uc, empID := newShiftFixture(t)

	_, err := uc.Create(dto.CreateShiftRequest{
		EmployeeID: empID,
		Date:       "2024-01-10",
		StartTime:  "09:00",
		EndTime:    "12:00",
		ShiftType:  "Morning",
	})
	require.NoError(t, err)

	week, err := uc.Calendar(mustDate(t, "2024-01-01"))
	require.NoError(t, err)
	for _, day := range week.Days {
		for _, cell := range day.Cells {
			assert.Equal(t, "empty", cell.State)
		}
	}
}

func TestShiftList_PorEmpleado(t *testing.T) {
	uc, empID := newShiftFixture(t)

	for _, date := range []string{"2024-01-01", "2024-01-02"} {
		_, err := uc.Create(dto.CreateShiftRequest{
			EmployeeID: empID,
			Date:       date,
			StartTime:  "09:00",
			EndTime:    "17:00",
			ShiftType:  "Morning",
		})
		require.NoError(t, err)
	}

	out, err := uc.List(ShiftQuery{EmployeeID: empID})
	require.NoError(t, err)
	assert.Equal(t, 2, out.Total)

	out, err = uc.List(ShiftQuery{EmployeeID: "EMP9999"})
	require.NoError(t, err)
	assert.Zero(t, out.Total)
}
