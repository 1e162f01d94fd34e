package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/frankUCLA/modasoft/internal/application/rates"
)

// RateHandler tasa de cambio del día.
type RateHandler struct {
	svc *rates.Service
}

// NewRateHandler construye el handler de la tasa.
func NewRateHandler(svc *rates.Service) *RateHandler {
	return &RateHandler{svc: svc}
}

// Current GET /api/tasa-bcv. Público; responde {tasa:<n>}.
func (h *RateHandler) Current(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"tasa": h.svc.Current(c.Context())})
}
