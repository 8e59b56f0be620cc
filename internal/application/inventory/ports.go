package inventory

import (
	"context"

	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

// TxRunner ejecuta una función como una unidad atómica sobre el insumo y el
// libro de transacciones: o ambas mutaciones se aplican o ninguna. En Postgres
// es una transacción SQL; en memoria, una sección crítica del store.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		items repository.InventoryItemRepository,
		txns repository.InventoryTransactionRepository,
	) error) error
}
