package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

// StockUseCase entradas y salidas de stock sobre el libro de inventario.
// Cada operación muta la cantidad del insumo y anexa un asiento inmutable
// como una sola unidad atómica (TxRunner). Se valida antes de mutar.
type StockUseCase struct {
	runner    TxRunner
	employees repository.EmployeeRepository
	txns      repository.InventoryTransactionRepository
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(
	runner TxRunner,
	employees repository.EmployeeRepository,
	txns repository.InventoryTransactionRepository,
) *StockUseCase {
	return &StockUseCase{runner: runner, employees: employees, txns: txns}
}

// StockIn suma cantidad a un insumo y anexa un asiento IN.
func (uc *StockUseCase) StockIn(ctx context.Context, itemID string, in dto.StockRequest) (*dto.TransactionResponse, error) {
	return uc.apply(ctx, itemID, in, entity.TransactionTypeIN)
}

// StockOut resta cantidad de un insumo y anexa un asiento OUT.
// Falla con ErrInsufficientStock si la cantidad supera el stock disponible,
// sin aplicar ninguna mutación.
func (uc *StockUseCase) StockOut(ctx context.Context, itemID string, in dto.StockRequest) (*dto.TransactionResponse, error) {
	return uc.apply(ctx, itemID, in, entity.TransactionTypeOUT)
}

func (uc *StockUseCase) apply(ctx context.Context, itemID string, in dto.StockRequest, txType string) (*dto.TransactionResponse, error) {
	if itemID == "" {
		return nil, fmt.Errorf("%w: item_id es requerido", domain.ErrInvalidInput)
	}
	if !in.Quantity.GreaterThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: la cantidad debe ser mayor que 0", domain.ErrInvalidInput)
	}

	// El nombre del empleado se resuelve al registrar; si el ID no existe,
	// el asiento guarda el ID con el nombre vacío.
	staffName := ""
	if in.StaffID != "" {
		if emp, err := uc.employees.GetByID(in.StaffID); err == nil && emp != nil {
			staffName = emp.Name
		}
	}

	now := time.Now()
	batchID := uuid.New().String()

	var created *entity.InventoryTransaction
	err := uc.runner.Run(ctx, func(
		items repository.InventoryItemRepository,
		txns repository.InventoryTransactionRepository,
	) error {
		item, err := items.GetForUpdate(itemID)
		if err != nil {
			return err
		}
		if item == nil {
			return fmt.Errorf("%w: insumo %s", domain.ErrNotFound, itemID)
		}

		switch txType {
		case entity.TransactionTypeIN:
			item.Quantity = item.Quantity.Add(in.Quantity)
		case entity.TransactionTypeOUT:
			if item.Quantity.LessThan(in.Quantity) {
				return fmt.Errorf("%w: disponible %s %s", domain.ErrInsufficientStock,
					item.Quantity.String(), item.Unit)
			}
			item.Quantity = item.Quantity.Sub(in.Quantity)
		}
		item.LastUpdated = now
		if err := items.Update(item); err != nil {
			return err
		}

		tx := &entity.InventoryTransaction{
			BatchID:   batchID,
			ItemID:    item.ID,
			ItemName:  item.Name,
			Quantity:  in.Quantity,
			Type:      txType,
			Reason:    in.Reason,
			Timestamp: now,
			StaffID:   in.StaffID,
			StaffName: staffName,
		}
		if err := txns.Create(tx); err != nil {
			return err
		}
		created = tx
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toTransactionResponse(created), nil
}

// Transactions lista los asientos del libro; con itemID filtra por insumo.
func (uc *StockUseCase) Transactions(itemID string) (*dto.TransactionListResponse, error) {
	var (
		list []*entity.InventoryTransaction
		err  error
	)
	if itemID != "" {
		list, err = uc.txns.ListByItem(itemID)
	} else {
		list, err = uc.txns.List()
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.TransactionResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toTransactionResponse(t))
	}
	return &dto.TransactionListResponse{Items: items, Total: len(items)}, nil
}

func toTransactionResponse(t *entity.InventoryTransaction) *dto.TransactionResponse {
	return &dto.TransactionResponse{
		ID:        t.ID,
		BatchID:   t.BatchID,
		ItemID:    t.ItemID,
		ItemName:  t.ItemName,
		Quantity:  t.Quantity,
		Type:      t.Type,
		Reason:    t.Reason,
		Timestamp: t.Timestamp.Format(time.RFC3339),
		StaffID:   t.StaffID,
		StaffName: t.StaffName,
	}
}
