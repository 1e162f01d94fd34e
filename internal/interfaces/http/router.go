package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/frankUCLA/modasoft/internal/application/auth"
	"github.com/frankUCLA/modasoft/internal/application/catalog"
	"github.com/frankUCLA/modasoft/internal/application/rates"
	"github.com/frankUCLA/modasoft/internal/application/sales"
	"github.com/frankUCLA/modasoft/internal/domain/entity"
	"github.com/frankUCLA/modasoft/pkg/logger"
	"github.com/frankUCLA/modasoft/pkg/session"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.UseCase
	CatalogUC  *catalog.UseCase
	SalesUC    *sales.UseCase
	RateSvc    *rates.Service
	Sessions   *session.Manager
	CookieName string
	DB         Pinger
	Receipts   ReceiptGenerator
	Log        *logger.Logger
}

// Router registra las rutas de la API. La sesión se resuelve una vez por
// request; los gates de rol se aplican por grupo.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", SessionMiddleware(deps.Sessions, deps.CookieName))

	// Público
	authHandler := NewAuthHandler(deps.AuthUC, deps.Sessions, deps.DB, deps.CookieName, deps.Log)
	api.Get("/status", authHandler.Status)
	api.Post("/login", authHandler.Login)
	api.Post("/logout", authHandler.Logout)

	rateHandler := NewRateHandler(deps.RateSvc)
	api.Get("/tasa-bcv", rateHandler.Current)

	// Solo administrador
	admin := RequireRole(entity.RoleAdministrador)
	catalogHandler := NewCatalogHandler(deps.CatalogUC, deps.Log)

	categorias := api.Group("/categorias", admin)
	categorias.Get("/", catalogHandler.ListCategories)
	categorias.Post("/", catalogHandler.CreateCategory)
	categorias.Delete("/:id", catalogHandler.DeleteCategory)

	proveedores := api.Group("/proveedores", admin)
	proveedores.Get("/", catalogHandler.ListSuppliers)
	proveedores.Post("/", catalogHandler.CreateSupplier)
	proveedores.Delete("/:id", catalogHandler.DeleteSupplier)

	tallas := api.Group("/tallas", admin)
	tallas.Get("/", catalogHandler.ListSizes)
	tallas.Post("/", catalogHandler.CreateSize)
	tallas.Delete("/:id", catalogHandler.DeleteSize)

	productHandler := NewProductHandler(deps.CatalogUC, deps.Log)
	api.Post("/productos", admin, productHandler.Register)

	adminProductos := api.Group("/admin/productos", admin)
	adminProductos.Get("/", productHandler.List)
	adminProductos.Post("/", productHandler.Create)
	adminProductos.Get("/:id", productHandler.Get)
	adminProductos.Put("/:id", productHandler.Update)
	adminProductos.Delete("/:id", productHandler.Delete)

	// Solo caja
	caja := RequireRole(entity.RoleCaja)
	salesHandler := NewSalesHandler(deps.SalesUC, deps.Receipts, deps.Log)
	api.Post("/ventas", caja, salesHandler.Register)
	api.Post("/caja/venta", caja, salesHandler.Simple)

	// Cualquier sesión activa
	anyRole := RequireRole(entity.RoleAdministrador, entity.RoleCaja)
	api.Get("/clientes/buscar", anyRole, salesHandler.FindClient)
	api.Get("/ventas/:id", anyRole, salesHandler.Get)
	api.Get("/ventas/:id/recibo", anyRole, salesHandler.Receipt)
}
