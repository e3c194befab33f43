package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/application/operations"
)

// ReceiptHandler maneja las peticiones HTTP de recepciones (protegido).
type ReceiptHandler struct {
	uc *operations.ReceiptUseCase
}

// NewReceiptHandler construye el handler.
func NewReceiptHandler(uc *operations.ReceiptUseCase) *ReceiptHandler {
	return &ReceiptHandler{uc: uc}
}

// Create godoc
// @Summary      Crear recepción (Draft)
// @Tags         receipts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateReceiptRequest  true  "Datos de la recepción"
// @Success      201   {object}  dto.Response{data=dto.ReceiptResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/receipts [post]
func (h *ReceiptHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateReceiptRequest
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
// @Summary      Obtener recepción con líneas
// @Tags         receipts
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la recepción"
// @Success      200  {object}  dto.Response{data=dto.ReceiptResponse}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/receipts/{id} [get]
func (h *ReceiptHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, out)
}

// List godoc
// @Summary      Listar recepciones
// @Tags         receipts
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "Filtrar por estado"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.Response{data=[]dto.ReceiptResponse}
// @Router       /api/receipts [get]
func (h *ReceiptHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	items, total, err := h.uc.List(c.Query("status"), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return respondList(c, items, total, page.Limit, page.Offset)
}

// Update godoc
// @Summary      Actualizar recepción
// @Tags         receipts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID de la recepción"
// @Param        body  body  dto.UpdateReceiptRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.Response{data=dto.ReceiptResponse}
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/receipts/{id} [put]
func (h *ReceiptHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateReceiptRequest
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
// @Summary      Cancelar recepción
// @Tags         receipts
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la recepción"
// @Success      200  {object}  dto.Response
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/receipts/{id}/cancel [post]
func (h *ReceiptHandler) Cancel(c *fiber.Ctx) error {
	if err := h.uc.Cancel(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, nil)
}

// AddLine godoc
// @Summary      Agregar línea a la recepción
// @Tags         receipts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID de la recepción"
// @Param        body  body  dto.AddReceiptLineRequest  true  "Datos de la línea"
// @Success      201   {object}  dto.Response{data=dto.ReceiptLineResponse}
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/receipts/{id}/lines [post]
func (h *ReceiptHandler) AddLine(c *fiber.Ctx) error {
	var in dto.AddReceiptLineRequest
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
// @Summary      Actualizar línea de recepción
// @Tags         receipts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        line_id  path  string                        true  "ID de la línea"
// @Param        body     body  dto.UpdateReceiptLineRequest  true  "Campos a actualizar"
// @Success      200  {object}  dto.Response{data=dto.ReceiptLineResponse}
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/receipts/lines/{line_id} [put]
func (h *ReceiptHandler) UpdateLine(c *fiber.Ctx) error {
	var in dto.UpdateReceiptLineRequest
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
// @Summary      Eliminar línea de recepción
// @Tags         receipts
// @Security     Bearer
// @Produce      json
// @Param        line_id  path  string  true  "ID de la línea"
// @Success      200  {object}  dto.Response
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/receipts/lines/{line_id} [delete]
func (h *ReceiptHandler) DeleteLine(c *fiber.Ctx) error {
	if err := h.uc.DeleteLine(c.Params("line_id")); err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, nil)
}

// Receive godoc
// @Summary      Completar recepción (muta inventario una sola vez)
// @Tags         receipts
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la recepción"
// @Success      200  {object}  dto.Response{data=inventory.CompletionResult}
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/receipts/{id}/receive [post]
func (h *ReceiptHandler) Receive(c *fiber.Ctx) error {
	out, err := h.uc.Receive(c.UserContext(), c.Params("id"), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, out)
}
