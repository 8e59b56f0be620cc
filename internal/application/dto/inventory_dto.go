package dto

import "github.com/shopspring/decimal"

// CreateItemRequest entrada para registrar un insumo.
type CreateItemRequest struct {
	Name             string          `json:"name"`
	Category         string          `json:"category"`
	Unit             string          `json:"unit"`
	Quantity         decimal.Decimal `json:"quantity"`
	MinimumThreshold decimal.Decimal `json:"minimum_threshold"`
	SupplierName     string          `json:"supplier_name"`
	StorageLocation  string          `json:"storage_location"`
}

// UpdateItemRequest entrada para actualizar un insumo (campos opcionales).
// La cantidad no se edita aquí: cambia solo vía stock-in/stock-out.
type UpdateItemRequest struct {
	Name             *string          `json:"name"`
	Category         *string          `json:"category"`
	Unit             *string          `json:"unit"`
	MinimumThreshold *decimal.Decimal `json:"minimum_threshold"`
	SupplierName     *string          `json:"supplier_name"`
	StorageLocation  *string          `json:"storage_location"`
}

// ItemResponse salida de un insumo.
type ItemResponse struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Category         string          `json:"category"`
	Unit             string          `json:"unit"`
	Quantity         decimal.Decimal `json:"quantity"`
	MinimumThreshold decimal.Decimal `json:"minimum_threshold"`
	SupplierName     string          `json:"supplier_name"`
	StorageLocation  string          `json:"storage_location"`
	LastUpdated      string          `json:"last_updated"`
	LowStock         bool            `json:"low_stock"`
}

// ItemListResponse listado de insumos.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Total int            `json:"total"`
}

// StockRequest entrada para una entrada o salida de stock.
type StockRequest struct {
	Quantity decimal.Decimal `json:"quantity"`
	Reason   string          `json:"reason"`
	StaffID  string          `json:"staff_id"`
}

// TransactionResponse asiento del libro de inventario.
type TransactionResponse struct {
	ID        string          `json:"id"`
	BatchID   string          `json:"batch_id"`
	ItemID    string          `json:"item_id"`
	ItemName  string          `json:"item_name"`
	Quantity  decimal.Decimal `json:"quantity"`
	Type      string          `json:"type"`
	Reason    string          `json:"reason"`
	Timestamp string          `json:"timestamp"`
	StaffID   string          `json:"staff_id"`
	StaffName string          `json:"staff_name"`
}

// TransactionListResponse listado de asientos.
type TransactionListResponse struct {
	Items []TransactionResponse `json:"items"`
	Total int                   `json:"total"`
}
