package memory

import (
	"strings"
	"sync"

	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

var _ repository.InventoryItemRepository = (*InventoryItemRepo)(nil)

// InventoryItemRepo implementación en memoria del puerto InventoryItemRepository.
type InventoryItemRepo struct {
	mu     sync.RWMutex
	items  []entity.InventoryItem
	nextID int
}

// NewInventoryItemRepository construye el repositorio con la secuencia en 1.
func NewInventoryItemRepository() *InventoryItemRepo {
	return &InventoryItemRepo{nextID: 1}
}

// Create asigna el siguiente ID INVnnnn y guarda el insumo.
func (r *InventoryItemRepo) Create(i *entity.InventoryItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i.ID = formatID("INV", r.nextID)
	r.nextID++
	r.items = append(r.items, *i)
	return nil
}

// GetByID devuelve una copia del insumo o nil si no existe.
func (r *InventoryItemRepo) GetByID(id string) (*entity.InventoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.items {
		if r.items[i].ID == id {
			item := r.items[i]
			return &item, nil
		}
	}
	return nil, nil
}

// GetForUpdate en memoria equivale a GetByID: el TxRunner ya serializa la
// operación completa bajo su propio candado.
func (r *InventoryItemRepo) GetForUpdate(id string) (*entity.InventoryItem, error) {
	return r.GetByID(id)
}

// List devuelve un snapshot de todos los insumos.
func (r *InventoryItemRepo) List() ([]*entity.InventoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.filter(func(entity.InventoryItem) bool { return true }), nil
}

// SearchByName filtra por subcadena del nombre, sin distinguir mayúsculas.
func (r *InventoryItemRepo) SearchByName(name string) ([]*entity.InventoryItem, error) {
	needle := strings.ToLower(name)
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.filter(func(i entity.InventoryItem) bool {
		return strings.Contains(strings.ToLower(i.Name), needle)
	}), nil
}

// ListByCategory insumos de una categoría exacta.
func (r *InventoryItemRepo) ListByCategory(category string) ([]*entity.InventoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.filter(func(i entity.InventoryItem) bool { return i.Category == category }), nil
}

// ListLowStock insumos con cantidad en o por debajo del umbral mínimo.
func (r *InventoryItemRepo) ListLowStock() ([]*entity.InventoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.filter(entity.InventoryItem.LowStock), nil
}

// filter devuelve copias de los insumos que cumplen el predicado; llamar con el candado tomado.
func (r *InventoryItemRepo) filter(keep func(entity.InventoryItem) bool) []*entity.InventoryItem {
	var list []*entity.InventoryItem
	for i := range r.items {
		if keep(r.items[i]) {
			item := r.items[i]
			list = append(list, &item)
		}
	}
	return list
}

// Update reemplaza el insumo con el mismo ID; sin efecto si no existe.
func (r *InventoryItemRepo) Update(item *entity.InventoryItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == item.ID {
			r.items[i] = *item
			return nil
		}
	}
	return nil
}

// Delete elimina el insumo con el ID dado; sin efecto si no existe.
func (r *InventoryItemRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return nil
}
