package memory

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

func dec(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

// Cada repositorio lleva su propia secuencia: los IDs no se mezclan entre
// entidades ni entre instancias del store.
func TestSecuenciasDeIDs(t *testing.T) {
	employees := NewEmployeeRepository()
	bookings := NewBookingRepository()

	for i := 0; i < 3; i++ {
		require.NoError(t, employees.Create(&entity.Employee{Name: "Empleado", Position: "Waiter"}))
	}
	require.NoError(t, bookings.Create(&entity.Booking{
		CustomerName: "Ana", PhoneNumber: "300", NumberOfGuests: 2,
		Date: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		StartTime: entity.TimeOfDay{Hour: 20}, TableID: "T1",
		Status: entity.BookingStatusConfirmed,
	}))

	list, err := employees.List()
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "EMP0001", list[0].ID)
	assert.Equal(t, "EMP0003", list[2].ID)

	b, err := bookings.List()
	require.NoError(t, err)
	require.Len(t, b, 1)
	assert.Equal(t, "BK0001", b[0].ID)

	// Una instancia nueva arranca su secuencia desde 1.
	fresh := NewEmployeeRepository()
	e := &entity.Employee{Name: "Otro", Position: "Chef"}
	require.NoError(t, fresh.Create(e))
	assert.Equal(t, "EMP0001", e.ID)
}

// Las lecturas devuelven copias: mutar el resultado no toca el store.
func TestSnapshotsAislados(t *testing.T) {
	repo := NewEmployeeRepository()
	e := &entity.Employee{Name: "Lucía", Position: "Manager"}
	require.NoError(t, repo.Create(e))

	got, err := repo.GetByID(e.ID)
	require.NoError(t, err)
	got.Name = "mutado"

	again, err := repo.GetByID(e.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lucía", again.Name)
}

// Los turnos clonan también las horas: los punteros no se comparten.
func TestSnapshotDeTurnoClonaHoras(t *testing.T) {
	repo := NewShiftRepository()
	s := &entity.Shift{
		EmployeeID: "EMP0001", EmployeeName: "Ana",
		Date:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		StartTime: &entity.TimeOfDay{Hour: 9},
		EndTime:   &entity.TimeOfDay{Hour: 17},
		ShiftType: entity.ShiftTypeMorning,
	}
	require.NoError(t, repo.Create(s))

	got, err := repo.GetByID(s.ID)
	require.NoError(t, err)
	got.StartTime.Hour = 23

	again, err := repo.GetByID(s.ID)
	require.NoError(t, err)
	assert.Equal(t, 9, again.StartTime.Hour)
}

func TestShiftListByDateRange(t *testing.T) {
	repo := NewShiftRepository()
	day := func(d int) time.Time { return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC) }
	for d := 1; d <= 10; d++ {
		require.NoError(t, repo.Create(&entity.Shift{
			EmployeeID: "EMP0001", EmployeeName: "Ana", Date: day(d),
			ShiftType: entity.ShiftTypeMorning,
		}))
	}

	list, err := repo.ListByDateRange(day(3), day(5))
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, day(3), list[0].Date)
	assert.Equal(t, day(5), list[2].Date)
}

func TestInventoryListLowStock(t *testing.T) {
	repo := NewInventoryItemRepository()
	require.NoError(t, repo.Create(&entity.InventoryItem{
		Name: "Sal", Category: "Ingredient", Unit: "kg",
		Quantity: dec(2), MinimumThreshold: dec(5),
	}))
	require.NoError(t, repo.Create(&entity.InventoryItem{
		Name: "Azúcar", Category: "Ingredient", Unit: "kg",
		Quantity: dec(20), MinimumThreshold: dec(5),
	}))
	require.NoError(t, repo.Create(&entity.InventoryItem{
		Name: "Café", Category: "Beverage", Unit: "kg",
		Quantity: dec(5), MinimumThreshold: dec(5), // en el umbral cuenta como bajo
	}))

	list, err := repo.ListLowStock()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Sal", list[0].Name)
	assert.Equal(t, "Café", list[1].Name)
}

func TestBookingSearchByCustomer(t *testing.T) {
	repo := NewBookingRepository()
	for _, name := range []string{"Carlos Pérez", "María García", "Juan Carlos"} {
		require.NoError(t, repo.Create(&entity.Booking{
			CustomerName: name, PhoneNumber: "300", NumberOfGuests: 2,
			Date: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
			StartTime: entity.TimeOfDay{Hour: 20}, TableID: "T1",
			Status: entity.BookingStatusConfirmed,
		}))
	}

	list, err := repo.SearchByCustomer("carlos")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Carlos Pérez", list[0].CustomerName)
	assert.Equal(t, "Juan Carlos", list[1].CustomerName)
}
