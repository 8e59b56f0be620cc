package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

var _ repository.InventoryTransactionRepository = (*InventoryTransactionRepo)(nil)

// InventoryTransactionRepo implementación del libro de inventario sobre PostgreSQL.
// El libro es de solo anexado, así que el adaptador no expone update ni delete.
type InventoryTransactionRepo struct {
	db Querier
}

// NewInventoryTransactionRepository construye el adaptador del libro de inventario.
func NewInventoryTransactionRepository(db Querier) *InventoryTransactionRepo {
	return &InventoryTransactionRepo{db: db}
}

const txnColumns = `id, batch_id, item_id, item_name, quantity, type, reason, timestamp, staff_id, staff_name`

// Create anexa un asiento al libro; el ID lo asigna la secuencia del store (TXNnnnn).
func (r *InventoryTransactionRepo) Create(t *entity.InventoryTransaction) error {
	query := `
		INSERT INTO inventory_transactions (id, batch_id, item_id, item_name, quantity, type, reason, timestamp, staff_id, staff_name)
		VALUES ('TXN' || lpad(nextval('inventory_transactions_id_seq')::text, 4, '0'), $1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	err := r.db.QueryRow(context.Background(), query,
		t.BatchID, t.ItemID, t.ItemName, t.Quantity, t.Type,
		t.Reason, t.Timestamp, t.StaffID, t.StaffName,
	).Scan(&t.ID)
	if err != nil {
		return fmt.Errorf("insert inventory transaction: %w", err)
	}
	return nil
}

// List lista todos los asientos en orden de creación.
func (r *InventoryTransactionRepo) List() ([]*entity.InventoryTransaction, error) {
	return r.query(`SELECT ` + txnColumns + ` FROM inventory_transactions ORDER BY id`)
}

// ListByItem asientos de un insumo.
func (r *InventoryTransactionRepo) ListByItem(itemID string) ([]*entity.InventoryTransaction, error) {
	return r.query(`SELECT `+txnColumns+` FROM inventory_transactions WHERE item_id = $1 ORDER BY id`, itemID)
}

func scanTransaction(row pgx.Row) (*entity.InventoryTransaction, error) {
	var t entity.InventoryTransaction
	err := row.Scan(&t.ID, &t.BatchID, &t.ItemID, &t.ItemName, &t.Quantity,
		&t.Type, &t.Reason, &t.Timestamp, &t.StaffID, &t.StaffName)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *InventoryTransactionRepo) query(sql string, args ...any) ([]*entity.InventoryTransaction, error) {
	rows, err := r.db.Query(context.Background(), sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list inventory transactions: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryTransaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan inventory transaction: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}
