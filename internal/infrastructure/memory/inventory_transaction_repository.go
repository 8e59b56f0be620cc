package memory

import (
	"sync"

	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

var _ repository.InventoryTransactionRepository = (*InventoryTransactionRepo)(nil)

// InventoryTransactionRepo implementación en memoria del libro de inventario.
// Solo anexado: no expone update ni delete.
type InventoryTransactionRepo struct {
	mu           sync.RWMutex
	transactions []entity.InventoryTransaction
	nextID       int
}

// NewInventoryTransactionRepository construye el repositorio con la secuencia en 1.
func NewInventoryTransactionRepository() *InventoryTransactionRepo {
	return &InventoryTransactionRepo{nextID: 1}
}

// Create asigna el siguiente ID TXNnnnn y anexa el asiento.
func (r *InventoryTransactionRepo) Create(t *entity.InventoryTransaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t.ID = formatID("TXN", r.nextID)
	r.nextID++
	r.transactions = append(r.transactions, *t)
	return nil
}

// List devuelve un snapshot de todos los asientos en orden de anexado.
func (r *InventoryTransactionRepo) List() ([]*entity.InventoryTransaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*entity.InventoryTransaction, 0, len(r.transactions))
	for i := range r.transactions {
		t := r.transactions[i]
		list = append(list, &t)
	}
	return list, nil
}

// ListByItem asientos de un insumo.
func (r *InventoryTransactionRepo) ListByItem(itemID string) ([]*entity.InventoryTransaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var list []*entity.InventoryTransaction
	for i := range r.transactions {
		if r.transactions[i].ItemID == itemID {
			t := r.transactions[i]
			list = append(list, &t)
		}
	}
	return list, nil
}
