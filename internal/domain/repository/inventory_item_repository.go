package repository

import "github.com/jhoicas/Restaurante-api/internal/domain/entity"

// InventoryItemRepository define el puerto de persistencia para insumos (prefijo INV).
// GetForUpdate se usa dentro del TxRunner para leer la fila que va a mutarse
// (SELECT FOR UPDATE en Postgres; bajo el candado del runner en memoria).
type InventoryItemRepository interface {
	Create(i *entity.InventoryItem) error
	GetByID(id string) (*entity.InventoryItem, error)
	GetForUpdate(id string) (*entity.InventoryItem, error)
	List() ([]*entity.InventoryItem, error)
	SearchByName(name string) ([]*entity.InventoryItem, error)
	ListByCategory(category string) ([]*entity.InventoryItem, error)
	ListLowStock() ([]*entity.InventoryItem, error)
	Update(i *entity.InventoryItem) error
	Delete(id string) error
}
