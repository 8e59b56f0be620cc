package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/Restaurante-api/internal/application/inventory"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner serializa las operaciones de stock sobre el par insumo + libro.
// Con un solo escritor por colección y la validación hecha antes de mutar,
// bloquear la operación completa garantiza que cantidad y asiento se apliquen
// como una sola unidad.
type TxRunner struct {
	mu    sync.Mutex
	items *InventoryItemRepo
	txns  *InventoryTransactionRepo
}

// NewTxRunner construye el runner sobre los repositorios en memoria.
func NewTxRunner(items *InventoryItemRepo, txns *InventoryTransactionRepo) *TxRunner {
	return &TxRunner{items: items, txns: txns}
}

// Run ejecuta fn bajo el candado del runner con los repositorios del store.
// Si fn falla antes de mutar (la regla del caso de uso), el store queda intacto.
func (r *TxRunner) Run(ctx context.Context, fn func(
	items repository.InventoryItemRepository,
	txns repository.InventoryTransactionRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return fn(r.items, r.txns)
}
