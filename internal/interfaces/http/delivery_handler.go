package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/application/operations"
)

// DeliveryHandler maneja las peticiones HTTP de entregas (protegido).
type DeliveryHandler struct {
	uc *operations.DeliveryUseCase
}

// NewDeliveryHandler construye el handler.
func NewDeliveryHandler(uc *operations.DeliveryUseCase) *DeliveryHandler {
	return &DeliveryHandler{uc: uc}
}

// Create godoc
// @Summary      Crear entrega (Draft)
// @Tags         deliveries
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDeliveryRequest  true  "Datos de la entrega"
// @Success      201   {object}  dto.Response{data=dto.DeliveryResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/deliveries [post]
func (h *DeliveryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDeliveryRequest
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
// @Summary      Obtener entrega con líneas
// @Tags         deliveries
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la entrega"
// @Success      200  {object}  dto.Response{data=dto.DeliveryResponse}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/deliveries/{id} [get]
func (h *DeliveryHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, out)
}

// List godoc
// @Summary      Listar entregas
// @Tags         deliveries
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "Filtrar por estado"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.Response{data=[]dto.DeliveryResponse}
// @Router       /api/deliveries [get]
func (h *DeliveryHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	items, total, err := h.uc.List(c.Query("status"), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return respondList(c, items, total, page.Limit, page.Offset)
}

// Update godoc
// @Summary      Actualizar entrega
// @Tags         deliveries
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID de la entrega"
// @Param        body  body  dto.UpdateDeliveryRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.Response{data=dto.DeliveryResponse}
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/deliveries/{id} [put]
func (h *DeliveryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateDeliveryRequest
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
// @Summary      Cancelar entrega
// @Tags         deliveries
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la entrega"
// @Success      200  {object}  dto.Response
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/deliveries/{id}/cancel [post]
func (h *DeliveryHandler) Cancel(c *fiber.Ctx) error {
	if err := h.uc.Cancel(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, nil)
}

// AddLine godoc
// @Summary      Agregar línea a la entrega
// @Tags         deliveries
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                      true  "ID de la entrega"
// @Param        body  body  dto.AddDeliveryLineRequest  true  "Datos de la línea"
// @Success      201   {object}  dto.Response{data=dto.DeliveryLineResponse}
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/deliveries/{id}/lines [post]
func (h *DeliveryHandler) AddLine(c *fiber.Ctx) error {
	var in dto.AddDeliveryLineRequest
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
// @Summary      Actualizar línea de entrega
// @Tags         deliveries
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        line_id  path  string                         true  "ID de la línea"
// @Param        body     body  dto.UpdateDeliveryLineRequest  true  "Campos a actualizar"
// @Success      200  {object}  dto.Response{data=dto.DeliveryLineResponse}
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/deliveries/lines/{line_id} [put]
func (h *DeliveryHandler) UpdateLine(c *fiber.Ctx) error {
	var in dto.UpdateDeliveryLineRequest
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
// @Summary      Eliminar línea de entrega
// @Tags         deliveries
// @Security     Bearer
// @Produce      json
// @Param        line_id  path  string  true  "ID de la línea"
// @Success      200  {object}  dto.Response
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/deliveries/lines/{line_id} [delete]
func (h *DeliveryHandler) DeleteLine(c *fiber.Ctx) error {
	if err := h.uc.DeleteLine(c.Params("line_id")); err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, nil)
}

// Ship godoc
// @Summary      Despachar entrega (muta inventario una sola vez)
// @Tags         deliveries
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la entrega"
// @Success      200  {object}  dto.Response{data=inventory.CompletionResult}
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/deliveries/{id}/ship [post]
func (h *DeliveryHandler) Ship(c *fiber.Ctx) error {
	out, err := h.uc.Ship(c.UserContext(), c.Params("id"), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, out)
}
