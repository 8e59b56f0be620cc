package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/application/inventory"
	"github.com/jhoicas/Restaurante-api/internal/application/usecase"
	"github.com/jhoicas/Restaurante-api/internal/infrastructure/memory"
)

func newTestApp() *fiber.App {
	employees := memory.NewEmployeeRepository()
	shifts := memory.NewShiftRepository()
	bookings := memory.NewBookingRepository()
	items := memory.NewInventoryItemRepository()
	txns := memory.NewInventoryTransactionRepository()

	app := fiber.New()
	Router(app, RouterDeps{
		EmployeeUC: usecase.NewEmployeeUseCase(employees),
		ShiftUC:    usecase.NewShiftUseCase(shifts, employees),
		BookingUC:  usecase.NewBookingUseCase(bookings),
		ItemUC:     usecase.NewInventoryItemUseCase(items),
		StockUC:    inventory.NewStockUseCase(memory.NewTxRunner(items, txns), employees, txns),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestEmployeeEndpoints(t *testing.T) {
	app := newTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/employees", dto.CreateEmployeeRequest{
		Name:     "Lucía Gómez",
		Position: "Chef",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	created := decode[dto.EmployeeResponse](t, resp)
	assert.Equal(t, "EMP0001", created.ID)

	resp = doJSON(t, app, http.MethodGet, "/api/employees/"+created.ID, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/employees/EMP9999", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/employees", dto.CreateEmployeeRequest{Position: "Chef"})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	errResp := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "VALIDATION", errResp.Code)
}

func TestBookingTransicionesHTTP(t *testing.T) {
	app := newTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/bookings", dto.CreateBookingRequest{
		CustomerName:   "Carlos Pérez",
		PhoneNumber:    "3001234567",
		NumberOfGuests: 4,
		Date:           "2024-01-05",
		StartTime:      "20:00",
		TableID:        "T12",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	created := decode[dto.BookingResponse](t, resp)

	resp = doJSON(t, app, http.MethodPost, "/api/bookings/"+created.ID+"/seat", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Cancelar una reserva sentada es conflicto, no error de validación.
	resp = doJSON(t, app, http.MethodPost, "/api/bookings/"+created.ID+"/cancel", nil)
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)
	errResp := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "INVALID_TRANSITION", errResp.Code)
}

func TestCalendarioHTTP(t *testing.T) {
	app := newTestApp()

	resp := doJSON(t, app, http.MethodGet, "/api/shifts/calendar", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/shifts/calendar?week_start=2024-01-03", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	week := decode[dto.WeekLayoutResponse](t, resp)
	// Cualquier fecha de la semana se normaliza al lunes.
	assert.Equal(t, "2024-01-01", week.WeekStart)
	require.Len(t, week.Days, 7)
	assert.Len(t, week.Days[0].Cells, 18)
}

func TestStockHTTP(t *testing.T) {
	app := newTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/inventory/items", map[string]any{
		"name":     "Harina",
		"category": "Ingredient",
		"unit":     "kg",
		"quantity": "10",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	item := decode[dto.ItemResponse](t, resp)

	resp = doJSON(t, app, http.MethodPost, "/api/inventory/items/"+item.ID+"/stock-out", map[string]any{
		"quantity": "25",
		"reason":   "Sale",
	})
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)
	errResp := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "INSUFFICIENT_STOCK", errResp.Code)

	resp = doJSON(t, app, http.MethodPost, "/api/inventory/items/"+item.ID+"/stock-in", map[string]any{
		"quantity": "5",
		"reason":   "Purchase",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/inventory/transactions?item_id="+item.ID, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	list := decode[dto.TransactionListResponse](t, resp)
	assert.Equal(t, 1, list.Total)
}
