package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento del libro de inventario.
const (
	TransactionTypeIN  = "IN"  // entrada
	TransactionTypeOUT = "OUT" // salida
)

// InventoryTransaction registro inmutable del libro de inventario.
// BatchID correlaciona el asiento con la operación que lo produjo.
// Nunca se actualiza ni se elimina una vez creado.
type InventoryTransaction struct {
	ID        string
	BatchID   string
	ItemID    string
	ItemName  string
	Quantity  decimal.Decimal
	Type      string
	Reason    string // Purchase, Sale, Waste, Adjustment
	Timestamp time.Time
	StaffID   string
	StaffName string
}
