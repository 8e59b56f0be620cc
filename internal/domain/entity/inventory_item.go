package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem representa un insumo del restaurante.
type InventoryItem struct {
	ID               string
	Name             string
	Category         string // Food, Beverage, Ingredient, Cleaning, Others
	Unit             string // kg, liter, piece, box, etc.
	Quantity         decimal.Decimal
	MinimumThreshold decimal.Decimal
	SupplierName     string
	StorageLocation  string // Kitchen, Bar, Warehouse, Freezer
	LastUpdated      time.Time
}

// LowStock indica si la cantidad está en o por debajo del umbral mínimo.
func (i InventoryItem) LowStock() bool {
	return i.Quantity.LessThanOrEqual(i.MinimumThreshold)
}
