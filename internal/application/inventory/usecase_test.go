package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/application/inventory"
	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/infrastructure/memory"
)

type stockFixture struct {
	uc    *inventory.StockUseCase
	items *memory.InventoryItemRepo
	item  *entity.InventoryItem
}

func newStockFixture(t *testing.T, initial string) *stockFixture {
	t.Helper()
	items := memory.NewInventoryItemRepository()
	txns := memory.NewInventoryTransactionRepository()
	employees := memory.NewEmployeeRepository()

	item := &entity.InventoryItem{
		Name:             "Harina de trigo",
		Category:         "Ingredient",
		Unit:             "kg",
		Quantity:         decimal.RequireFromString(initial),
		MinimumThreshold: decimal.NewFromInt(5),
	}
	require.NoError(t, items.Create(item))

	return &stockFixture{
		uc:    inventory.NewStockUseCase(memory.NewTxRunner(items, txns), employees, txns),
		items: items,
		item:  item,
	}
}

func (f *stockFixture) quantity(t *testing.T) decimal.Decimal {
	t.Helper()
	item, err := f.items.GetByID(f.item.ID)
	require.NoError(t, err)
	require.NotNil(t, item)
	return item.Quantity
}

func qty(s string) dto.StockRequest {
	return dto.StockRequest{Quantity: decimal.RequireFromString(s), Reason: "Purchase"}
}

func TestStockIn_SumaYAnotaAsiento(t *testing.T) {
	f := newStockFixture(t, "10")

	out, err := f.uc.StockIn(context.Background(), f.item.ID, qty("2.5"))
	require.NoError(t, err)

	assert.Equal(t, "TXN0001", out.ID)
	assert.Equal(t, entity.TransactionTypeIN, out.Type)
	assert.NotEmpty(t, out.BatchID)
	assert.True(t, f.quantity(t).Equal(decimal.RequireFromString("12.5")))
}

func TestStockOut_RestaSiHayStock(t *testing.T) {
	f := newStockFixture(t, "10")

	out, err := f.uc.StockOut(context.Background(), f.item.ID, qty("4"))
	require.NoError(t, err)

	assert.Equal(t, entity.TransactionTypeOUT, out.Type)
	assert.True(t, f.quantity(t).Equal(decimal.NewFromInt(6)))
}

// Un OUT que supera el stock disponible falla sin mutar nada:
// ni la cantidad del insumo ni el libro.
func TestStockOut_StockInsuficiente(t *testing.T) {
	f := newStockFixture(t, "3")

	_, err := f.uc.StockOut(context.Background(), f.item.ID, qty("5"))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.True(t, f.quantity(t).Equal(decimal.NewFromInt(3)))
	list, err := f.uc.Transactions(f.item.ID)
	require.NoError(t, err)
	assert.Zero(t, list.Total)
}

// Sacar exactamente el stock disponible es válido y deja la cantidad en 0.
func TestStockOut_TodoElStock(t *testing.T) {
	f := newStockFixture(t, "7")

	_, err := f.uc.StockOut(context.Background(), f.item.ID, qty("7"))
	require.NoError(t, err)
	assert.True(t, f.quantity(t).IsZero())
}

func TestStock_CantidadInvalida(t *testing.T) {
	f := newStockFixture(t, "10")

	_, err := f.uc.StockIn(context.Background(), f.item.ID, qty("0"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.StockOut(context.Background(), f.item.ID, qty("-1"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	assert.True(t, f.quantity(t).Equal(decimal.NewFromInt(10)))
}

func TestStock_InsumoNoExiste(t *testing.T) {
	f := newStockFixture(t, "10")

	_, err := f.uc.StockIn(context.Background(), "INV9999", qty("1"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Un IN seguido de un OUT por la misma cantidad deja el stock como estaba
// y exactamente dos asientos en el libro, cada uno con su propio batch.
func TestStock_CicloInOut(t *testing.T) {
	f := newStockFixture(t, "10")

	in, err := f.uc.StockIn(context.Background(), f.item.ID, qty("5"))
	require.NoError(t, err)
	out, err := f.uc.StockOut(context.Background(), f.item.ID, qty("5"))
	require.NoError(t, err)

	assert.True(t, f.quantity(t).Equal(decimal.NewFromInt(10)))
	assert.NotEqual(t, in.BatchID, out.BatchID)

	list, err := f.uc.Transactions(f.item.ID)
	require.NoError(t, err)
	require.Equal(t, 2, list.Total)
	assert.Equal(t, entity.TransactionTypeIN, list.Items[0].Type)
	assert.Equal(t, entity.TransactionTypeOUT, list.Items[1].Type)
}

// El nombre del personal se resuelve al registrar el asiento.
func TestStock_ResuelveNombreDelPersonal(t *testing.T) {
	items := memory.NewInventoryItemRepository()
	txns := memory.NewInventoryTransactionRepository()
	employees := memory.NewEmployeeRepository()

	emp := &entity.Employee{Name: "Lucía Gómez", Position: "Chef"}
	require.NoError(t, employees.Create(emp))
	item := &entity.InventoryItem{Name: "Aceite", Category: "Ingredient", Unit: "liter", Quantity: decimal.NewFromInt(2)}
	require.NoError(t, items.Create(item))

	uc := inventory.NewStockUseCase(memory.NewTxRunner(items, txns), employees, txns)
	out, err := uc.StockIn(context.Background(), item.ID, dto.StockRequest{
		Quantity: decimal.NewFromInt(1),
		Reason:   "Purchase",
		StaffID:  emp.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, emp.ID, out.StaffID)
	assert.Equal(t, "Lucía Gómez", out.StaffName)
}
