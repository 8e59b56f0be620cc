package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Restaurante-api/internal/application/inventory"
	"github.com/jhoicas/Restaurante-api/internal/application/usecase"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
	"github.com/jhoicas/Restaurante-api/internal/infrastructure/memory"
	"github.com/jhoicas/Restaurante-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Restaurante-api/internal/interfaces/http"
	"github.com/jhoicas/Restaurante-api/pkg/config"
	"github.com/jhoicas/Restaurante-api/pkg/logger"
)

// stores agrupa los adaptadores de persistencia elegidos por STORE_DRIVER.
type stores struct {
	employees repository.EmployeeRepository
	shifts    repository.ShiftRepository
	bookings  repository.BookingRepository
	items     repository.InventoryItemRepository
	txns      repository.InventoryTransactionRepository
	runner    inventory.TxRunner
	close     func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	st, err := buildStores(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar persistencia")
	}
	defer st.close()

	employeeUC := usecase.NewEmployeeUseCase(st.employees)
	shiftUC := usecase.NewShiftUseCase(st.shifts, st.employees)
	bookingUC := usecase.NewBookingUseCase(st.bookings)
	itemUC := usecase.NewInventoryItemUseCase(st.items)
	stockUC := inventory.NewStockUseCase(st.runner, st.employees, st.txns)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		EmployeeUC: employeeUC,
		ShiftUC:    shiftUC,
		BookingUC:  bookingUC,
		ItemUC:     itemUC,
		StockUC:    stockUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

func buildStores(cfg *config.Config) (*stores, error) {
	if cfg.Store.Driver == config.StoreDriverPostgres {
		pool, err := postgres.NewPool(context.Background(), cfg.DB)
		if err != nil {
			return nil, err
		}
		return &stores{
			employees: postgres.NewEmployeeRepository(pool),
			shifts:    postgres.NewShiftRepository(pool),
			bookings:  postgres.NewBookingRepository(pool),
			items:     postgres.NewInventoryItemRepository(pool),
			txns:      postgres.NewInventoryTransactionRepository(pool),
			runner:    postgres.NewTxRunner(pool),
			close:     pool.Close,
		}, nil
	}

	items := memory.NewInventoryItemRepository()
	txns := memory.NewInventoryTransactionRepository()
	return &stores{
		employees: memory.NewEmployeeRepository(),
		shifts:    memory.NewShiftRepository(),
		bookings:  memory.NewBookingRepository(),
		items:     items,
		txns:      txns,
		runner:    memory.NewTxRunner(items, txns),
		close:     func() {},
	}, nil
}
