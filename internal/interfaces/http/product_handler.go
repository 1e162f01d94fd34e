package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/frankUCLA/modasoft/internal/application/catalog"
	"github.com/frankUCLA/modasoft/internal/application/dto"
	"github.com/frankUCLA/modasoft/pkg/logger"
)

// ProductHandler listado y mantenimiento de productos (solo admin).
type ProductHandler struct {
	uc  *catalog.UseCase
	log *logger.Logger
}

// NewProductHandler construye el handler de productos.
func NewProductHandler(uc *catalog.UseCase, log *logger.Logger) *ProductHandler {
	return &ProductHandler{uc: uc, log: log}
}

// List GET /api/admin/productos?q=. Incluye el desglose por talla "S=2 M=1".
func (h *ProductHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.ListProducts(c.Context(), c.Query("q"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(fiber.Map{"productos": items})
}

// Get GET /api/admin/productos/:id. Un id inexistente no es un error:
// responde 200 con {producto:null}.
func (h *ProductHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil || id == 0 {
		return badRequest(c)
	}
	p, err := h.uc.GetProduct(c.Context(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	if p == nil {
		return c.JSON(fiber.Map{"producto": nil})
	}
	return c.JSON(fiber.Map{"producto": dto.ProductResponse{
		IDProducto:  p.ID,
		Nombre:      p.Nombre,
		Marca:       p.Marca,
		Inventario:  p.Inventario,
		PrecioVenta: p.PrecioVenta,
		IDCategoria: p.IDCategoria,
		IDProveedor: p.IDProveedor,
	}})
}

// Create POST /api/admin/productos. Alta rápida con categoría por defecto.
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c)
	}
	id, err := h.uc.CreateProduct(c.Context(), req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"ok": true, "id_producto": id})
}

// Update PUT /api/admin/productos/:id.
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil || id == 0 {
		return badRequest(c)
	}
	var req dto.UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c)
	}
	if err := h.uc.UpdateProduct(c.Context(), id, req); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.OkResponse{Ok: true})
}

// Delete DELETE /api/admin/productos/:id.
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil || id == 0 {
		return badRequest(c)
	}
	if err := h.uc.DeleteProduct(c.Context(), id); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.OkResponse{Ok: true})
}

// Register POST /api/productos. Registro completo: producto más inventario
// inicial por talla, en una sola transacción.
func (h *ProductHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterProductRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c)
	}
	id, err := h.uc.RegisterProduct(c.Context(), req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"ok": true, "id_producto": id})
}
