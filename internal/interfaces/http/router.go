package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Restaurante-api/internal/application/inventory"
	"github.com/jhoicas/Restaurante-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	EmployeeUC *usecase.EmployeeUseCase
	ShiftUC    *usecase.ShiftUseCase
	BookingUC  *usecase.BookingUseCase
	ItemUC     *usecase.InventoryItemUseCase
	StockUC    *inventory.StockUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Employees
	employees := api.Group("/employees")
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees.Post("/", employeeHandler.Create)
	employees.Get("/", employeeHandler.List)
	employees.Get("/:id", employeeHandler.GetByID)
	employees.Put("/:id", employeeHandler.Update)
	employees.Delete("/:id", employeeHandler.Delete)

	// Shifts y calendario semanal
	shifts := api.Group("/shifts")
	shiftHandler := NewShiftHandler(deps.ShiftUC)
	shifts.Post("/", shiftHandler.Create)
	shifts.Get("/", shiftHandler.List)
	// La ruta fija va antes que /:id para que "calendar" no se capture como ID
	shifts.Get("/calendar", shiftHandler.Calendar)
	shifts.Get("/:id", shiftHandler.GetByID)
	shifts.Put("/:id", shiftHandler.Update)
	shifts.Delete("/:id", shiftHandler.Delete)

	// Bookings
	bookings := api.Group("/bookings")
	bookingHandler := NewBookingHandler(deps.BookingUC)
	bookings.Post("/", bookingHandler.Create)
	bookings.Get("/", bookingHandler.List)
	bookings.Get("/:id", bookingHandler.GetByID)
	bookings.Put("/:id", bookingHandler.Update)
	bookings.Post("/:id/cancel", bookingHandler.Cancel)
	bookings.Post("/:id/seat", bookingHandler.Seat)
	bookings.Delete("/:id", bookingHandler.Delete)

	// Inventory
	inv := api.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.ItemUC, deps.StockUC)
	inv.Post("/items", inventoryHandler.Create)
	inv.Get("/items", inventoryHandler.List)
	inv.Get("/items/:id", inventoryHandler.GetByID)
	inv.Put("/items/:id", inventoryHandler.Update)
	inv.Delete("/items/:id", inventoryHandler.Delete)
	inv.Post("/items/:id/stock-in", inventoryHandler.StockIn)
	inv.Post("/items/:id/stock-out", inventoryHandler.StockOut)
	inv.Get("/transactions", inventoryHandler.Transactions)
}
