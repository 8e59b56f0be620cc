package usecase

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

// InventoryItemUseCase casos de uso CRUD para insumos. Las cantidades solo
// cambian por el libro de inventario (paquete inventory), nunca por Update.
type InventoryItemUseCase struct {
	repo repository.InventoryItemRepository
}

// NewInventoryItemUseCase construye el caso de uso.
func NewInventoryItemUseCase(repo repository.InventoryItemRepository) *InventoryItemUseCase {
	return &InventoryItemUseCase{repo: repo}
}

// Create valida y registra un insumo.
func (uc *InventoryItemUseCase) Create(in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	item := &entity.InventoryItem{
		Name:             in.Name,
		Category:         in.Category,
		Unit:             in.Unit,
		Quantity:         in.Quantity,
		MinimumThreshold: in.MinimumThreshold,
		SupplierName:     in.SupplierName,
		StorageLocation:  in.StorageLocation,
		LastUpdated:      time.Now(),
	}
	if err := validateItem(item); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// GetByID obtiene un insumo por ID.
func (uc *InventoryItemUseCase) GetByID(id string) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return toItemResponse(item), nil
}

// ItemQuery filtros opcionales para listar insumos.
type ItemQuery struct {
	Name     string
	Category string
	LowStock bool
}

// List lista insumos según los filtros: nombre, categoría o solo stock bajo.
func (uc *InventoryItemUseCase) List(q ItemQuery) (*dto.ItemListResponse, error) {
	var (
		list []*entity.InventoryItem
		err  error
	)
	switch {
	case q.LowStock:
		list, err = uc.repo.ListLowStock()
	case q.Name != "":
		list, err = uc.repo.SearchByName(q.Name)
	case q.Category != "":
		list, err = uc.repo.ListByCategory(q.Category)
	default:
		list, err = uc.repo.List()
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.ItemResponse, 0, len(list))
	for _, i := range list {
		items = append(items, *toItemResponse(i))
	}
	return &dto.ItemListResponse{Items: items, Total: len(items)}, nil
}

// Update valida y actualiza los datos de un insumo; la cantidad no cambia aquí.
func (uc *InventoryItemUseCase) Update(id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.Category != nil {
		item.Category = *in.Category
	}
	if in.Unit != nil {
		item.Unit = *in.Unit
	}
	if in.MinimumThreshold != nil {
		item.MinimumThreshold = *in.MinimumThreshold
	}
	if in.SupplierName != nil {
		item.SupplierName = *in.SupplierName
	}
	if in.StorageLocation != nil {
		item.StorageLocation = *in.StorageLocation
	}
	if err := validateItem(item); err != nil {
		return nil, err
	}
	item.LastUpdated = time.Now()
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// Delete elimina un insumo por ID. El libro de transacciones no se toca.
func (uc *InventoryItemUseCase) Delete(id string) error {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// validateItem valida antes de cualquier mutación.
func validateItem(i *entity.InventoryItem) error {
	if i.Name == "" {
		return fmt.Errorf("%w: el nombre es requerido", domain.ErrInvalidInput)
	}
	if i.Category == "" {
		return fmt.Errorf("%w: la categoría es requerida", domain.ErrInvalidInput)
	}
	if i.Unit == "" {
		return fmt.Errorf("%w: la unidad es requerida", domain.ErrInvalidInput)
	}
	if i.Quantity.LessThan(decimal.Zero) {
		return fmt.Errorf("%w: la cantidad no puede ser negativa", domain.ErrInvalidInput)
	}
	if i.MinimumThreshold.LessThan(decimal.Zero) {
		return fmt.Errorf("%w: el umbral mínimo no puede ser negativo", domain.ErrInvalidInput)
	}
	return nil
}

func toItemResponse(i *entity.InventoryItem) *dto.ItemResponse {
	return &dto.ItemResponse{
		ID:               i.ID,
		Name:             i.Name,
		Category:         i.Category,
		Unit:             i.Unit,
		Quantity:         i.Quantity,
		MinimumThreshold: i.MinimumThreshold,
		SupplierName:     i.SupplierName,
		StorageLocation:  i.StorageLocation,
		LastUpdated:      dto.FormatDate(i.LastUpdated),
		LowStock:         i.LowStock(),
	}
}
