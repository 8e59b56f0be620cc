package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/application/usecase"
)

// ShiftHandler maneja las peticiones HTTP para turnos y el calendario semanal.
type ShiftHandler struct {
	uc *usecase.ShiftUseCase
}

// NewShiftHandler construye el handler.
func NewShiftHandler(uc *usecase.ShiftUseCase) *ShiftHandler {
	return &ShiftHandler{uc: uc}
}

// Create godoc
// @Summary      Crear turno
// @Tags         shifts
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateShiftRequest  true  "Datos del turno"
// @Success      201   {object}  dto.ShiftResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/shifts [post]
func (h *ShiftHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateShiftRequest
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
// @Summary      Obtener turno por ID
// @Tags         shifts
// @Produce      json
// @Param        id   path  string  true  "ID del turno"
// @Success      200  {object}  dto.ShiftResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/shifts/{id} [get]
func (h *ShiftHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar turnos
// @Tags         shifts
// @Produce      json
// @Param        employee_id  query  string  false  "Filtro por empleado"
// @Param        date         query  string  false  "Fecha exacta (YYYY-MM-DD)"
// @Param        from         query  string  false  "Inicio del rango (YYYY-MM-DD)"
// @Param        to           query  string  false  "Fin del rango (YYYY-MM-DD)"
// @Success      200  {object}  dto.ShiftListResponse
// @Router       /api/shifts [get]
func (h *ShiftHandler) List(c *fiber.Ctx) error {
	q := usecase.ShiftQuery{EmployeeID: c.Query("employee_id")}
	if s := c.Query("date"); s != "" {
		d, err := dto.ParseDate(s)
		if err != nil {
			return badRequest(c, "VALIDATION", "date inválida, se espera YYYY-MM-DD")
		}
		q.Date = &d
	}
	if s := c.Query("from"); s != "" {
		d, err := dto.ParseDate(s)
		if err != nil {
			return badRequest(c, "VALIDATION", "from inválida, se espera YYYY-MM-DD")
		}
		q.From = &d
	}
	if s := c.Query("to"); s != "" {
		d, err := dto.ParseDate(s)
		if err != nil {
			return badRequest(c, "VALIDATION", "to inválida, se espera YYYY-MM-DD")
		}
		q.To = &d
	}

	out, err := h.uc.List(q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Calendar godoc
// @Summary      Calendario semanal de turnos
// @Description  Distribución de los turnos de la semana en la grilla horaria 06:00-24:00.
// @Tags         shifts
// @Produce      json
// @Param        week_start  query  string  true  "Cualquier fecha de la semana (YYYY-MM-DD); se normaliza al lunes"
// @Success      200  {object}  dto.WeekLayoutResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/shifts/calendar [get]
func (h *ShiftHandler) Calendar(c *fiber.Ctx) error {
	s := c.Query("week_start")
	if s == "" {
		return badRequest(c, "VALIDATION", "week_start es requerido")
	}
	weekStart, err := dto.ParseDate(s)
	if err != nil {
		return badRequest(c, "VALIDATION", "week_start inválida, se espera YYYY-MM-DD")
	}
	out, err := h.uc.Calendar(weekStart)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar turno
// @Tags         shifts
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del turno"
// @Param        body  body  dto.UpdateShiftRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ShiftResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/shifts/{id} [put]
func (h *ShiftHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateShiftRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar turno
// @Tags         shifts
// @Param        id  path  string  true  "ID del turno"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/shifts/{id} [delete]
func (h *ShiftHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
