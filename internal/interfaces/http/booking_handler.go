package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/application/usecase"
)

// BookingHandler maneja las peticiones HTTP para reservas.
type BookingHandler struct {
	uc *usecase.BookingUseCase
}

// NewBookingHandler construye el handler.
func NewBookingHandler(uc *usecase.BookingUseCase) *BookingHandler {
	return &BookingHandler{uc: uc}
}

// Create godoc
// @Summary      Crear reserva
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBookingRequest  true  "Datos de la reserva"
// @Success      201   {object}  dto.BookingResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/bookings [post]
func (h *BookingHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBookingRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener reserva por ID
// @Tags         bookings
// @Produce      json
// @Param        id   path  string  true  "ID de la reserva"
// @Success      200  {object}  dto.BookingResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/bookings/{id} [get]
func (h *BookingHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar reservas
// @Tags         bookings
// @Produce      json
// @Param        date    query  string  false  "Fecha exacta (YYYY-MM-DD)"
// @Param        status  query  string  false  "CONFIRMED | SEATED | CANCELLED"
// @Param        name    query  string  false  "Filtro por subcadena del nombre del cliente"
// @Success      200  {object}  dto.BookingListResponse
// @Router       /api/bookings [get]
func (h *BookingHandler) List(c *fiber.Ctx) error {
	q := usecase.BookingQuery{
		Status: c.Query("status"),
		Name:   c.Query("name"),
	}
	if s := c.Query("date"); s != "" {
		d, err := dto.ParseDate(s)
		if err != nil {
			return badRequest(c, "VALIDATION", "date inválida, se espera YYYY-MM-DD")
		}
		q.Date = &d
	}
	out, err := h.uc.List(q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar reserva
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la reserva"
// @Param        body  body  dto.UpdateBookingRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.BookingResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/bookings/{id} [put]
func (h *BookingHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateBookingRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Cancel godoc
// @Summary      Cancelar reserva
// @Description  CONFIRMED -> CANCELLED. Las reservas SEATED o CANCELLED no admiten cancelación.
// @Tags         bookings
// @Produce      json
// @Param        id  path  string  true  "ID de la reserva"
// @Success      200  {object}  dto.BookingResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c *fiber.Ctx) error {
	out, err := h.uc.Cancel(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Seat godoc
// @Summary      Sentar reserva
// @Description  CONFIRMED -> SEATED. Solo desde CONFIRMED.
// @Tags         bookings
// @Produce      json
// @Param        id  path  string  true  "ID de la reserva"
// @Success      200  {object}  dto.BookingResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/bookings/{id}/seat [post]
func (h *BookingHandler) Seat(c *fiber.Ctx) error {
	out, err := h.uc.Seat(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar reserva
// @Tags         bookings
// @Param        id  path  string  true  "ID de la reserva"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/bookings/{id} [delete]
func (h *BookingHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
