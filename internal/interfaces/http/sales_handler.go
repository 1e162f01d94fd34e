package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/frankUCLA/modasoft/internal/application/dto"
	"github.com/frankUCLA/modasoft/internal/application/sales"
	"github.com/frankUCLA/modasoft/pkg/logger"
)

// ReceiptGenerator renderiza el recibo de una venta a PDF.
type ReceiptGenerator interface {
	Generate(r *sales.Receipt) ([]byte, error)
}

// SalesHandler registro y consulta de ventas (rol caja).
type SalesHandler struct {
	uc       *sales.UseCase
	receipts ReceiptGenerator
	log      *logger.Logger
}

// NewSalesHandler construye el handler de ventas.
func NewSalesHandler(uc *sales.UseCase, receipts ReceiptGenerator, log *logger.Logger) *SalesHandler {
	return &SalesHandler{uc: uc, receipts: receipts, log: log}
}

// Register POST /api/ventas. Flujo completo del panel de caja; el id del
// cajero sale de la sesión, no del cuerpo.
func (h *SalesHandler) Register(c *fiber.Ctx) error {
	sess := CurrentSession(c)
	if sess == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "No autenticado"})
	}
	var req dto.RegisterSaleRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c)
	}
	id, err := h.uc.RegisterSale(c.Context(), sess.UserID, req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	h.log.Info().Int64("id_venta", id).Str("usuario", sess.Usuario).Msg("venta registrada")
	return c.JSON(dto.SaleCreatedResponse{Ok: true, IDVenta: id})
}

// Simple POST /api/caja/venta. Solo cabecera, pago en efectivo.
func (h *SalesHandler) Simple(c *fiber.Ctx) error {
	sess := CurrentSession(c)
	if sess == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "No autenticado"})
	}
	var req dto.SimpleSaleRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c)
	}
	id, err := h.uc.SimpleSale(c.Context(), sess.UserID, req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.SaleCreatedResponse{Ok: true, IDVenta: id})
}

// FindClient GET /api/clientes/buscar?cedula=. Sin coincidencia responde
// 200 con {cliente:null}, nunca 404, para que el formulario de caja
// autocomplete sin tratarlo como error.
func (h *SalesHandler) FindClient(c *fiber.Ctx) error {
	client, err := h.uc.FindClientByCedula(c.Context(), c.Query("cedula"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	if client == nil {
		return c.JSON(fiber.Map{"cliente": nil})
	}
	return c.JSON(fiber.Map{"cliente": dto.ClientResponse{
		IDCliente: client.ID,
		Nombre:    client.Nombre,
		Cedula:    client.Cedula,
		Telefono:  client.Telefono,
		Email:     client.Email,
	}})
}

// Get GET /api/ventas/:id. Un id inexistente responde 200 con {venta:null}.
func (h *SalesHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil || id == 0 {
		return badRequest(c)
	}
	sale, err := h.uc.GetSale(c.Context(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	if sale == nil {
		return c.JSON(fiber.Map{"venta": nil})
	}
	return c.JSON(fiber.Map{"venta": dto.SaleResponse{
		IDVenta:    sale.ID,
		FechaHora:  sale.FechaHora,
		TotalVenta: sale.TotalVenta,
		TotalBs:    sale.TotalBs,
		TipoPago:   sale.TipoPago,
		IDUsuario:  sale.IDUsuario,
		IDCliente:  sale.IDCliente,
	}})
}

// Receipt GET /api/ventas/:id/recibo. Devuelve el PDF del recibo.
func (h *SalesHandler) Receipt(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil || id == 0 {
		return badRequest(c)
	}
	receipt, err := h.uc.GetReceipt(c.Context(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	pdfBytes, err := h.receipts.Generate(receipt)
	if err != nil {
		return respondError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="recibo.pdf"`)
	return c.Send(pdfBytes)
}
