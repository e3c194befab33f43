package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/application/operations"
)

// AdjustmentHandler maneja las peticiones HTTP de ajustes de inventario (protegido).
type AdjustmentHandler struct {
	uc *operations.AdjustmentUseCase
}

// NewAdjustmentHandler construye el handler.
func NewAdjustmentHandler(uc *operations.AdjustmentUseCase) *AdjustmentHandler {
	return &AdjustmentHandler{uc: uc}
}

// Create godoc
// @Summary      Crear ajuste (Draft)
// @Tags         adjustments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAdjustmentRequest  true  "Datos del ajuste"
// @Success      201   {object}  dto.Response{data=dto.AdjustmentResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/adjustments [post]
func (h *AdjustmentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAdjustmentRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadRequest(c, "cuerpo inválido")
	}
	if err := dto.Validate(in); err != nil {
		return respondBadRequest(c, err.Error())
	}
	out, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusCreated, out)
}

// GetByID godoc
// @Summary      Obtener ajuste con líneas
// @Tags         adjustments
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del ajuste"
// @Success      200  {object}  dto.Response{data=dto.AdjustmentResponse}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/adjustments/{id} [get]
func (h *AdjustmentHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, out)
}

// List godoc
// @Summary      Listar ajustes
// @Tags         adjustments
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "Filtrar por estado"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.Response{data=[]dto.AdjustmentResponse}
// @Router       /api/adjustments [get]
func (h *AdjustmentHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	items, total, err := h.uc.List(c.Query("status"), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return respondList(c, items, total, page.Limit, page.Offset)
}

// Update godoc
// @Summary      Actualizar ajuste
// @Tags         adjustments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                       true  "ID del ajuste"
// @Param        body  body  dto.UpdateAdjustmentRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.Response{data=dto.AdjustmentResponse}
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/adjustments/{id} [put]
func (h *AdjustmentHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateAdjustmentRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadRequest(c, "cuerpo inválido")
	}
	if err := dto.Validate(in); err != nil {
		return respondBadRequest(c, err.Error())
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, out)
}

// Cancel godoc
// @Summary      Cancelar ajuste
// @Tags         adjustments
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del ajuste"
// @Success      200  {object}  dto.Response
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/adjustments/{id}/cancel [post]
func (h *AdjustmentHandler) Cancel(c *fiber.Ctx) error {
	if err := h.uc.Cancel(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, nil)
}

// AddLine godoc
// @Summary      Agregar línea al ajuste
// @Tags         adjustments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                        true  "ID del ajuste"
// @Param        body  body  dto.AddAdjustmentLineRequest  true  "Datos de la línea"
// @Success      201   {object}  dto.Response{data=dto.AdjustmentLineResponse}
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/adjustments/{id}/lines [post]
func (h *AdjustmentHandler) AddLine(c *fiber.Ctx) error {
	var in dto.AddAdjustmentLineRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadRequest(c, "cuerpo inválido")
	}
	if err := dto.Validate(in); err != nil {
		return respondBadRequest(c, err.Error())
	}
	out, err := h.uc.AddLine(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusCreated, out)
}

// UpdateLine godoc
// @Summary      Actualizar línea de ajuste
// @Tags         adjustments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        line_id  path  string                           true  "ID de la línea"
// @Param        body     body  dto.UpdateAdjustmentLineRequest  true  "Campos a actualizar"
// @Success      200  {object}  dto.Response{data=dto.AdjustmentLineResponse}
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/adjustments/lines/{line_id} [put]
func (h *AdjustmentHandler) UpdateLine(c *fiber.Ctx) error {
	var in dto.UpdateAdjustmentLineRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.UpdateLine(c.Params("line_id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, out)
}

// DeleteLine godoc
// @Summary      Eliminar línea de ajuste
// @Tags         adjustments
// @Security     Bearer
// @Produce      json
// @Param        line_id  path  string  true  "ID de la línea"
// @Success      200  {object}  dto.Response
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/adjustments/lines/{line_id} [delete]
func (h *AdjustmentHandler) DeleteLine(c *fiber.Ctx) error {
	if err := h.uc.DeleteLine(c.Params("line_id")); err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, nil)
}

// Apply godoc
// @Summary      Aplicar ajuste (fija balances a lo contado, una sola vez)
// @Tags         adjustments
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del ajuste"
// @Success      200  {object}  dto.Response{data=inventory.CompletionResult}
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/adjustments/{id}/apply [post]
func (h *AdjustmentHandler) Apply(c *fiber.Ctx) error {
	out, err := h.uc.Apply(c.UserContext(), c.Params("id"), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, out)
}
