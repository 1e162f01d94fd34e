package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/frankUCLA/modasoft/internal/application/dto"
	"github.com/frankUCLA/modasoft/internal/domain"
	"github.com/frankUCLA/modasoft/internal/domain/entity"
	"github.com/frankUCLA/modasoft/internal/domain/repository"
)

// maxListRows tope fijo de filas por listado; no hay paginación.
const maxListRows = 100

// defaultCategoryID categoría usada cuando el alta rápida no indica una.
const defaultCategoryID = 1

// TxRunner ejecuta el registro completo de producto dentro de una transacción.
type TxRunner interface {
	RunProduct(ctx context.Context, fn func(products repository.ProductRepository) error) error
}

// UseCase CRUD del catálogo: categorías, proveedores, tallas y productos
// con su inventario por talla.
type UseCase struct {
	categories repository.CategoryRepository
	suppliers  repository.SupplierRepository
	sizes      repository.SizeRepository
	products   repository.ProductRepository
	tx         TxRunner
}

// NewUseCase construye el caso de uso del catálogo.
func NewUseCase(
	categories repository.CategoryRepository,
	suppliers repository.SupplierRepository,
	sizes repository.SizeRepository,
	products repository.ProductRepository,
	tx TxRunner,
) *UseCase {
	return &UseCase{
		categories: categories,
		suppliers:  suppliers,
		sizes:      sizes,
		products:   products,
		tx:         tx,
	}
}

// ── Categorías ────────────────────────────────────────────────────────────────

// ListCategories lista categorías, con filtro opcional por nombre.
func (uc *UseCase) ListCategories(ctx context.Context, q string) ([]*entity.Category, error) {
	return uc.categories.List(ctx, normalizeFilter(q), maxListRows)
}

// CreateCategory valida y persiste una categoría.
func (uc *UseCase) CreateCategory(ctx context.Context, in dto.CreateCategoryRequest) error {
	if strings.TrimSpace(in.Nombre) == "" {
		return domain.ErrInvalidInput
	}
	return uc.categories.Create(ctx, &entity.Category{Nombre: strings.TrimSpace(in.Nombre)})
}

// DeleteCategory elimina por id. Si un producto la referencia, la FK detiene
// el borrado y el error se propaga como conflicto.
func (uc *UseCase) DeleteCategory(ctx context.Context, id int64) error {
	return uc.categories.Delete(ctx, id)
}

// ── Proveedores ───────────────────────────────────────────────────────────────

// ListSuppliers lista proveedores, con filtro opcional por nombre.
func (uc *UseCase) ListSuppliers(ctx context.Context, q string) ([]*entity.Supplier, error) {
	return uc.suppliers.List(ctx, normalizeFilter(q), maxListRows)
}

// CreateSupplier valida y persiste un proveedor; contacto y teléfono son opcionales.
func (uc *UseCase) CreateSupplier(ctx context.Context, in dto.CreateSupplierRequest) error {
	if strings.TrimSpace(in.Nombre) == "" {
		return domain.ErrInvalidInput
	}
	return uc.suppliers.Create(ctx, &entity.Supplier{
		Nombre:   strings.TrimSpace(in.Nombre),
		Contacto: in.Contacto,
		Telefono: in.Telefono,
	})
}

// DeleteSupplier elimina por id.
func (uc *UseCase) DeleteSupplier(ctx context.Context, id int64) error {
	return uc.suppliers.Delete(ctx, id)
}

// ── Tallas ────────────────────────────────────────────────────────────────────

// ListSizes lista tallas, con filtro opcional por nombre.
func (uc *UseCase) ListSizes(ctx context.Context, q string) ([]*entity.Size, error) {
	return uc.sizes.List(ctx, normalizeFilter(q), maxListRows)
}

// CreateSize valida y persiste una talla; las medidas son opcionales.
func (uc *UseCase) CreateSize(ctx context.Context, in dto.CreateSizeRequest) error {
	if strings.TrimSpace(in.Nombre) == "" {
		return domain.ErrInvalidInput
	}
	return uc.sizes.Create(ctx, &entity.Size{
		Nombre:  strings.TrimSpace(in.Nombre),
		Ajuste:  in.Ajuste,
		Pecho:   in.Pecho,
		Cintura: in.Cintura,
		Cadera:  in.Cadera,
		Largo:   in.Largo,
	})
}

// DeleteSize elimina por id.
func (uc *UseCase) DeleteSize(ctx context.Context, id int64) error {
	return uc.sizes.Delete(ctx, id)
}

// ── Productos ─────────────────────────────────────────────────────────────────

// ListProducts lista productos (tope 100) e incluye el desglose por talla
// en formato "S=2 M=1".
func (uc *UseCase) ListProducts(ctx context.Context, q string) ([]dto.ProductSummary, error) {
	products, err := uc.products.List(ctx, normalizeFilter(q), maxListRows)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductSummary, 0, len(products))
	for _, p := range products {
		quantities, err := uc.products.SizeQuantities(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		parts := make([]string, 0, len(quantities))
		for _, sq := range quantities {
			parts = append(parts, fmt.Sprintf("%s=%d", sq.Talla, sq.Cantidad))
		}
		out = append(out, dto.ProductSummary{
			IDProducto:  p.ID,
			Nombre:      p.Nombre,
			Marca:       p.Marca,
			Inventario:  p.Inventario,
			PrecioVenta: p.PrecioVenta,
			Tallas:      strings.Join(parts, " "),
		})
	}
	return out, nil
}

// GetProduct obtiene un producto por id; (nil, nil) si no existe.
func (uc *UseCase) GetProduct(ctx context.Context, id int64) (*entity.Product, error) {
	return uc.products.GetByID(ctx, id)
}

// CreateProduct alta rápida: nombre y precio, categoría por defecto si falta.
func (uc *UseCase) CreateProduct(ctx context.Context, in dto.CreateProductRequest) (int64, error) {
	if strings.TrimSpace(in.Nombre) == "" {
		return 0, domain.ErrInvalidInput
	}
	categoria := in.IDCategoria
	if categoria == 0 {
		categoria = defaultCategoryID
	}
	p := &entity.Product{
		Nombre:      strings.TrimSpace(in.Nombre),
		Descripcion: in.Descripcion,
		PrecioVenta: in.PrecioVenta,
		IDCategoria: categoria,
	}
	if err := uc.products.Create(ctx, p); err != nil {
		return 0, err
	}
	return p.ID, nil
}

// UpdateProduct edición completa de un producto existente.
func (uc *UseCase) UpdateProduct(ctx context.Context, id int64, in dto.UpdateProductRequest) error {
	if strings.TrimSpace(in.Nombre) == "" {
		return domain.ErrInvalidInput
	}
	return uc.products.Update(ctx, &entity.Product{
		ID:          id,
		Nombre:      strings.TrimSpace(in.Nombre),
		Marca:       in.Marca,
		Inventario:  in.Inventario,
		PrecioVenta: in.Precio,
		IDCategoria: in.IDCategoria,
		IDProveedor: in.IDProveedor,
	})
}

// DeleteProduct elimina por id.
func (uc *UseCase) DeleteProduct(ctx context.Context, id int64) error {
	return uc.products.Delete(ctx, id)
}

// RegisterProduct registro completo: producto más sus cantidades por talla,
// todo dentro de una transacción. Si una fila de inventario falla, el
// producto tampoco queda.
func (uc *UseCase) RegisterProduct(ctx context.Context, in dto.RegisterProductRequest) (int64, error) {
	if strings.TrimSpace(in.Nombre) == "" || strings.TrimSpace(in.Marca) == "" ||
		in.Categoria <= 0 || in.Proveedor <= 0 {
		return 0, domain.ErrInvalidInput
	}
	var productID int64
	err := uc.tx.RunProduct(ctx, func(products repository.ProductRepository) error {
		proveedor := in.Proveedor
		p := &entity.Product{
			Nombre:      strings.TrimSpace(in.Nombre),
			Marca:       strings.TrimSpace(in.Marca),
			PrecioVenta: in.Precio,
			Inventario:  in.Inventario,
			IDCategoria: in.Categoria,
			IDProveedor: &proveedor,
		}
		if err := products.Create(ctx, p); err != nil {
			return err
		}
		productID = p.ID
		for _, c := range in.Cantidades {
			if c.IDTalla <= 0 {
				continue
			}
			item := &entity.InventoryItem{IDProducto: p.ID, IDTalla: c.IDTalla, Cantidad: c.Cantidad}
			if err := products.AddInventory(ctx, item); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return productID, nil
}
