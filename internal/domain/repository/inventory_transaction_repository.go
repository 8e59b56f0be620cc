package repository

import "github.com/jhoicas/Restaurante-api/internal/domain/entity"

// InventoryTransactionRepository define el puerto del libro de inventario (prefijo TXN).
// El libro es de solo anexado: no existe update ni delete.
type InventoryTransactionRepository interface {
	Create(t *entity.InventoryTransaction) error
	List() ([]*entity.InventoryTransaction, error)
	ListByItem(itemID string) ([]*entity.InventoryTransaction, error)
}
