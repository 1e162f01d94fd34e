package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/frankUCLA/modasoft/internal/application/dto"
	"github.com/frankUCLA/modasoft/internal/domain"
	"github.com/frankUCLA/modasoft/pkg/logger"
)

// respondError traduce errores de dominio al contrato {ok:false, error:"…"}.
// Cualquier error no clasificado es un 500 genérico; el detalle va al log,
// nunca al cliente.
func respondError(c *fiber.Ctx, log *logger.Logger, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Datos inválidos"})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Credenciales inválidas"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "No encontrado"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: "Registro duplicado"})
	case errors.Is(err, domain.ErrConflict):
		log.Warn().Err(err).Str("path", c.Path()).Msg("conflicto de integridad referencial")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "Conflicto de integridad referencial",
		})
	default:
		log.Error().Err(err).Str("path", c.Path()).Msg("error no clasificado")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "Error en el servidor",
		})
	}
}

// badRequest atajo para cuerpos JSON que no parsean.
func badRequest(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Datos inválidos"})
}
