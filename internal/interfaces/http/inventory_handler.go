package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/application/inventory"
	"github.com/jhoicas/Restaurante-api/internal/application/usecase"
)

// InventoryHandler maneja las peticiones HTTP para insumos y movimientos de stock.
type InventoryHandler struct {
	items *usecase.InventoryItemUseCase
	stock *inventory.StockUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(items *usecase.InventoryItemUseCase, stock *inventory.StockUseCase) *InventoryHandler {
	return &InventoryHandler{items: items, stock: stock}
}

// Create godoc
// @Summary      Crear insumo
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateItemRequest  true  "Datos del insumo"
// @Success      201   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inventory/items [post]
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.items.Create(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener insumo por ID
// @Tags         inventory
// @Produce      json
// @Param        id   path  string  true  "ID del insumo"
// @Success      200  {object}  dto.ItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/items/{id} [get]
func (h *InventoryHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.items.GetByID(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar insumos
// @Tags         inventory
// @Produce      json
// @Param        name       query  string  false  "Filtro por subcadena del nombre"
// @Param        category   query  string  false  "Filtro por categoría"
// @Param        low_stock  query  bool    false  "Solo insumos en o bajo el umbral mínimo"
// @Success      200  {object}  dto.ItemListResponse
// @Router       /api/inventory/items [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	out, err := h.items.List(usecase.ItemQuery{
		Name:     c.Query("name"),
		Category: c.Query("category"),
		LowStock: c.QueryBool("low_stock"),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar insumo
// @Description  La cantidad no se edita aquí; solo cambia vía stock-in y stock-out.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del insumo"
// @Param        body  body  dto.UpdateItemRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ItemResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/items/{id} [put]
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.items.Update(c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar insumo
// @Tags         inventory
// @Param        id  path  string  true  "ID del insumo"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/items/{id} [delete]
func (h *InventoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.items.Delete(c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// StockIn godoc
// @Summary      Registrar entrada de stock
// @Description  Suma la cantidad al insumo y anexa un asiento IN al libro, atómicamente.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del insumo"
// @Param        body  body  dto.StockRequest  true  "Cantidad, motivo y personal"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inventory/items/{id}/stock-in [post]
func (h *InventoryHandler) StockIn(c *fiber.Ctx) error {
	var in dto.StockRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.stock.StockIn(c.Context(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// StockOut godoc
// @Summary      Registrar salida de stock
// @Description  Resta la cantidad si hay stock suficiente y anexa un asiento OUT al libro, atómicamente.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del insumo"
// @Param        body  body  dto.StockRequest  true  "Cantidad, motivo y personal"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/items/{id}/stock-out [post]
func (h *InventoryHandler) StockOut(c *fiber.Ctx) error {
	var in dto.StockRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.stock.StockOut(c.Context(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Transactions godoc
// @Summary      Historial de movimientos
// @Description  Asientos del libro de inventario; con item_id vacío devuelve todos.
// @Tags         inventory
// @Produce      json
// @Param        item_id  query  string  false  "Filtro por insumo"
// @Success      200  {object}  dto.TransactionListResponse
// @Router       /api/inventory/transactions [get]
func (h *InventoryHandler) Transactions(c *fiber.Ctx) error {
	out, err := h.stock.Transactions(c.Query("item_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
