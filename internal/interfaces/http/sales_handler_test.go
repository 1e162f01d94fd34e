package http_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankUCLA/modasoft/internal/application/sales"
	"github.com/frankUCLA/modasoft/internal/domain/entity"
	"github.com/frankUCLA/modasoft/internal/domain/repository"
	apphttp "github.com/frankUCLA/modasoft/internal/interfaces/http"
	"github.com/frankUCLA/modasoft/pkg/logger"
)

type stubClientRepo struct{ items []*entity.Client }

func (r *stubClientRepo) GetByNombreAndCedula(_ context.Context, nombre, cedula string) (*entity.Client, error) {
	for _, c := range r.items {
		if c.Nombre == nombre && c.Cedula == cedula {
			return c, nil
		}
	}
	return nil, nil
}
func (r *stubClientRepo) GetByCedula(_ context.Context, cedula string) (*entity.Client, error) {
	for _, c := range r.items {
		if c.Cedula == cedula {
			return c, nil
		}
	}
	return nil, nil
}
func (r *stubClientRepo) GetByID(_ context.Context, id int64) (*entity.Client, error) {
	for _, c := range r.items {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}
func (r *stubClientRepo) Create(_ context.Context, _ *entity.Client) error { return nil }

type stubSaleRepo struct{ items []*entity.Sale }

func (r *stubSaleRepo) Create(_ context.Context, _ *entity.Sale) error            { return nil }
func (r *stubSaleRepo) CreateDetail(_ context.Context, _ *entity.SaleDetail) error { return nil }
func (r *stubSaleRepo) GetByID(_ context.Context, id int64) (*entity.Sale, error) {
	for _, s := range r.items {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}
func (r *stubSaleRepo) DetailBySale(_ context.Context, _ int64) (*entity.SaleDetail, error) {
	return nil, nil
}

type stubSaleTx struct{}

func (stubSaleTx) RunSale(_ context.Context, _ func(
	clients repository.ClientRepository,
	sales repository.SaleRepository,
	products repository.ProductRepository,
	sizes repository.SizeRepository,
) error) error {
	return nil
}

type stubReceipts struct{}

func (stubReceipts) Generate(_ *sales.Receipt) ([]byte, error) { return []byte("%PDF"), nil }

func buildSalesApp(t *testing.T) *fiber.App {
	t.Helper()
	clients := &stubClientRepo{items: []*entity.Client{
		{ID: 4, Nombre: "Maria Perez", Cedula: "V-12345678", Telefono: "0414-5551234"},
	}}
	salesRepo := &stubSaleRepo{items: []*entity.Sale{
		{ID: 5, FechaHora: time.Now(), TotalVenta: decimal.NewFromInt(50),
			TipoPago: "Efectivo", IDUsuario: 1},
	}}
	uc := sales.NewUseCase(stubSaleTx{}, clients, salesRepo, &stubProductRepo{}, &stubSizeRepo{})
	log := logger.New(logger.Config{Env: "development", Level: "error"})

	app := fiber.New()
	handler := apphttp.NewSalesHandler(uc, stubReceipts{}, log)
	app.Get("/api/clientes/buscar", handler.FindClient)
	app.Get("/api/ventas/:id", handler.Get)
	return app
}

func TestFindClient_ExistenteEnvuelveEnCliente(t *testing.T) {
	app := buildSalesApp(t)

	status, body := getJSON(t, app, "/api/clientes/buscar?cedula=V-12345678")
	assert.Equal(t, http.StatusOK, status)

	cliente, ok := body["cliente"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(4), cliente["id_cliente"])
	assert.Equal(t, "Maria Perez", cliente["nombre"])
}

func TestFindClient_SinCoincidenciaDevuelve200ConNull(t *testing.T) {
	app := buildSalesApp(t)

	status, body := getJSON(t, app, "/api/clientes/buscar?cedula=V-999")
	assert.Equal(t, http.StatusOK, status, "una búsqueda sin coincidencia no es un error")

	cliente, present := body["cliente"]
	require.True(t, present, "la clave cliente debe estar presente")
	assert.Nil(t, cliente)
}

func TestGetVenta_ExistenteEnvuelveEnVenta(t *testing.T) {
	app := buildSalesApp(t)

	status, body := getJSON(t, app, "/api/ventas/5")
	assert.Equal(t, http.StatusOK, status)

	venta, ok := body["venta"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(5), venta["id_venta"])
	assert.Equal(t, "Efectivo", venta["tipo_pago"])
}

func TestGetVenta_InexistenteDevuelve200ConNull(t *testing.T) {
	app := buildSalesApp(t)

	status, body := getJSON(t, app, "/api/ventas/404")
	assert.Equal(t, http.StatusOK, status)

	venta, present := body["venta"]
	require.True(t, present)
	assert.Nil(t, venta)
}
