package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

var _ repository.InventoryItemRepository = (*InventoryItemRepo)(nil)

// InventoryItemRepo implementación del puerto InventoryItemRepository sobre PostgreSQL.
type InventoryItemRepo struct {
	db Querier
}

// NewInventoryItemRepository construye el adaptador de persistencia para insumos.
func NewInventoryItemRepository(db Querier) *InventoryItemRepo {
	return &InventoryItemRepo{db: db}
}

const itemColumns = `id, name, category, unit, quantity, minimum_threshold, supplier_name, storage_location, last_updated`

// Create persiste un insumo; el ID lo asigna la secuencia del store (INVnnnn).
func (r *InventoryItemRepo) Create(i *entity.InventoryItem) error {
	query := `
		INSERT INTO inventory_items (id, name, category, unit, quantity, minimum_threshold, supplier_name, storage_location, last_updated)
		VALUES ('INV' || lpad(nextval('inventory_items_id_seq')::text, 4, '0'), $1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.db.QueryRow(context.Background(), query,
		i.Name, i.Category, i.Unit, i.Quantity, i.MinimumThreshold,
		i.SupplierName, i.StorageLocation, i.LastUpdated,
	).Scan(&i.ID)
	if err != nil {
		return fmt.Errorf("insert inventory item: %w", err)
	}
	return nil
}

// GetByID obtiene un insumo por ID; nil si no existe.
func (r *InventoryItemRepo) GetByID(id string) (*entity.InventoryItem, error) {
	return r.getOne(`SELECT `+itemColumns+` FROM inventory_items WHERE id = $1`, id)
}

// GetForUpdate obtiene el insumo bloqueando la fila hasta el fin de la transacción.
// Solo tiene sentido dentro del TxRunner.
func (r *InventoryItemRepo) GetForUpdate(id string) (*entity.InventoryItem, error) {
	return r.getOne(`SELECT `+itemColumns+` FROM inventory_items WHERE id = $1 FOR UPDATE`, id)
}

// List lista todos los insumos en orden de creación.
func (r *InventoryItemRepo) List() ([]*entity.InventoryItem, error) {
	return r.query(`SELECT ` + itemColumns + ` FROM inventory_items ORDER BY id`)
}

// SearchByName búsqueda por subcadena del nombre, sin distinguir mayúsculas.
func (r *InventoryItemRepo) SearchByName(name string) ([]*entity.InventoryItem, error) {
	return r.query(`SELECT `+itemColumns+` FROM inventory_items WHERE name ILIKE '%' || $1 || '%' ORDER BY id`, name)
}

// ListByCategory insumos de una categoría.
func (r *InventoryItemRepo) ListByCategory(category string) ([]*entity.InventoryItem, error) {
	return r.query(`SELECT `+itemColumns+` FROM inventory_items WHERE category = $1 ORDER BY id`, category)
}

// ListLowStock insumos con cantidad en o por debajo del umbral mínimo.
func (r *InventoryItemRepo) ListLowStock() ([]*entity.InventoryItem, error) {
	return r.query(`SELECT ` + itemColumns + ` FROM inventory_items WHERE quantity <= minimum_threshold ORDER BY id`)
}

// Update actualiza un insumo existente.
func (r *InventoryItemRepo) Update(i *entity.InventoryItem) error {
	query := `
		UPDATE inventory_items SET name = $2, category = $3, unit = $4, quantity = $5,
			minimum_threshold = $6, supplier_name = $7, storage_location = $8, last_updated = $9
		WHERE id = $1`
	if _, err := r.db.Exec(context.Background(), query,
		i.ID, i.Name, i.Category, i.Unit, i.Quantity, i.MinimumThreshold,
		i.SupplierName, i.StorageLocation, i.LastUpdated,
	); err != nil {
		return fmt.Errorf("update inventory item: %w", err)
	}
	return nil
}

// Delete elimina un insumo por ID.
func (r *InventoryItemRepo) Delete(id string) error {
	if _, err := r.db.Exec(context.Background(), `DELETE FROM inventory_items WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete inventory item: %w", err)
	}
	return nil
}

func scanItem(row pgx.Row) (*entity.InventoryItem, error) {
	var i entity.InventoryItem
	err := row.Scan(&i.ID, &i.Name, &i.Category, &i.Unit, &i.Quantity,
		&i.MinimumThreshold, &i.SupplierName, &i.StorageLocation, &i.LastUpdated)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *InventoryItemRepo) getOne(sql string, id string) (*entity.InventoryItem, error) {
	i, err := scanItem(r.db.QueryRow(context.Background(), sql, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory item: %w", err)
	}
	return i, nil
}

func (r *InventoryItemRepo) query(sql string, args ...any) ([]*entity.InventoryItem, error) {
	rows, err := r.db.Query(context.Background(), sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list inventory items: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryItem
	for rows.Next() {
		i, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan inventory item: %w", err)
		}
		list = append(list, i)
	}
	return list, rows.Err()
}
