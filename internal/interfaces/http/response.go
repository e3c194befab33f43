package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/domain"
)

// respondData envuelve el payload en el sobre estándar {"success":true,"data":...}.
func respondData(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(dto.Response{Success: true, Data: data})
}

// respondList igual que respondData pero con paginación.
func respondList(c *fiber.Ctx, data any, total, limit, offset int) error {
	return c.JSON(dto.Response{
		Success:    true,
		Data:       data,
		Pagination: &dto.Pagination{Total: total, Limit: limit, Offset: offset},
	})
}

// respondError mapea errores de dominio a códigos HTTP con el sobre
// {"success":false,"message":...}. Errores no reconocidos son 500 con
// mensaje genérico para no filtrar detalles internos.
func respondError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := "error interno"
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		status, message = fiber.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrUnauthorized):
		status, message = fiber.StatusUnauthorized, "credenciales inválidas"
	case errors.Is(err, domain.ErrForbidden):
		status, message = fiber.StatusForbidden, "acceso denegado"
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		status, message = fiber.StatusNotFound, err.Error()
	case errors.Is(err, domain.ErrAlreadyCompleted),
		errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrDuplicateReference),
		errors.Is(err, domain.ErrEmailAlreadyExists),
		errors.Is(err, domain.ErrInsufficientStock):
		status, message = fiber.StatusConflict, err.Error()
	}
	return c.Status(status).JSON(dto.ErrorResponse{Success: false, Message: message})
}

// respondBadRequest responde 400 con un mensaje explícito (cuerpo o query inválidos).
func respondBadRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Success: false, Message: message})
}
