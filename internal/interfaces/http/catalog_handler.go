package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/frankUCLA/modasoft/internal/application/catalog"
	"github.com/frankUCLA/modasoft/internal/application/dto"
	"github.com/frankUCLA/modasoft/pkg/logger"
)

// CatalogHandler CRUD de categorías, proveedores y tallas (solo admin).
type CatalogHandler struct {
	uc  *catalog.UseCase
	log *logger.Logger
}

// NewCatalogHandler construye el handler del catálogo.
func NewCatalogHandler(uc *catalog.UseCase, log *logger.Logger) *CatalogHandler {
	return &CatalogHandler{uc: uc, log: log}
}

func parseID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, err
	}
	return id, nil
}

// ── Categorías ────────────────────────────────────────────────────────────────

func (h *CatalogHandler) ListCategories(c *fiber.Ctx) error {
	items, err := h.uc.ListCategories(c.Context(), c.Query("q"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	out := make([]dto.CategoryResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.CategoryResponse{IDCategoria: it.ID, Nombre: it.Nombre})
	}
	return c.JSON(fiber.Map{"categorias": out})
}

func (h *CatalogHandler) CreateCategory(c *fiber.Ctx) error {
	var req dto.CreateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c)
	}
	if err := h.uc.CreateCategory(c.Context(), req); err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OkResponse{Ok: true})
}

func (h *CatalogHandler) DeleteCategory(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil || id == 0 {
		return badRequest(c)
	}
	if err := h.uc.DeleteCategory(c.Context(), id); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.OkResponse{Ok: true})
}

// ── Proveedores ───────────────────────────────────────────────────────────────

func (h *CatalogHandler) ListSuppliers(c *fiber.Ctx) error {
	items, err := h.uc.ListSuppliers(c.Context(), c.Query("q"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	out := make([]dto.SupplierResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.SupplierResponse{
			IDProveedor: it.ID,
			Nombre:      it.Nombre,
			Contacto:    it.Contacto,
			Telefono:    it.Telefono,
		})
	}
	return c.JSON(fiber.Map{"proveedores": out})
}

func (h *CatalogHandler) CreateSupplier(c *fiber.Ctx) error {
	var req dto.CreateSupplierRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c)
	}
	if err := h.uc.CreateSupplier(c.Context(), req); err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OkResponse{Ok: true})
}

func (h *CatalogHandler) DeleteSupplier(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil || id == 0 {
		return badRequest(c)
	}
	if err := h.uc.DeleteSupplier(c.Context(), id); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.OkResponse{Ok: true})
}

// ── Tallas ────────────────────────────────────────────────────────────────────

func (h *CatalogHandler) ListSizes(c *fiber.Ctx) error {
	items, err := h.uc.ListSizes(c.Context(), c.Query("q"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	out := make([]dto.SizeResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.SizeResponse{
			IDTalla: it.ID,
			Nombre:  it.Nombre,
			Ajuste:  it.Ajuste,
			Pecho:   it.Pecho,
			Cintura: it.Cintura,
			Cadera:  it.Cadera,
			Largo:   it.Largo,
		})
	}
	return c.JSON(fiber.Map{"tallas": out})
}

func (h *CatalogHandler) CreateSize(c *fiber.Ctx) error {
	var req dto.CreateSizeRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c)
	}
	if err := h.uc.CreateSize(c.Context(), req); err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OkResponse{Ok: true})
}

func (h *CatalogHandler) DeleteSize(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil || id == 0 {
		return badRequest(c)
	}
	if err := h.uc.DeleteSize(c.Context(), id); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.OkResponse{Ok: true})
}
