package http_test

import (
	"encoding/json"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jackel7/stock-mate/internal/application/dto"
	"github.com/jackel7/stock-mate/internal/application/ledger"
	"github.com/jackel7/stock-mate/internal/application/reports"
	"github.com/jackel7/stock-mate/internal/application/usecase"
	"github.com/jackel7/stock-mate/internal/domain/entity"
	httpiface "github.com/jackel7/stock-mate/internal/interfaces/http"
	"github.com/jackel7/stock-mate/internal/testutil"
	"github.com/jackel7/stock-mate/pkg/config"
	"github.com/jackel7/stock-mate/pkg/logger"
)

func newApp(store *testutil.Store, policy config.LedgerConfig) *fiber.App {
	log := logger.New(logger.Config{Level: "error"})

	productRepo := testutil.NewProductRepo(store)
	transactionRepo := testutil.NewTransactionRepo(store)
	movementRepo := testutil.NewStockMovementRepo(store)
	alertRepo := testutil.NewAlertRepo(store)

	app := fiber.New()
	httpiface.Router(app, httpiface.RouterDeps{
		SubmitTransaction: ledger.NewSubmitTransactionUseCase(testutil.NewTxRunner(store), policy, log),
		TransactionQuery:  usecase.NewTransactionQueryUseCase(transactionRepo),
		ProductUC:         usecase.NewProductUseCase(productRepo),
		CategoryUC:        usecase.NewCategoryUseCase(testutil.NewCategoryRepo(store), productRepo),
		VendorUC:          usecase.NewVendorUseCase(testutil.NewVendorRepo(store), productRepo),
		ReportsUC:         reports.NewReportsUseCase(movementRepo, alertRepo),
		DashboardUC:       reports.NewDashboardUseCase(testutil.NewDashboardRepo(store), transactionRepo),
	})
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *nethttp.Response {
	t.Helper()
	req := httptest.NewRequest(nethttp.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody[T any](t *testing.T, resp *nethttp.Response) T {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out T
	require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	return out
}

func TestSubmitTransactionEndpoint(t *testing.T) {
	store := testutil.NewStore()
	store.SeedProduct(&entity.Product{ID: "p1", SKU: "WID-1", Name: "Widget", Quantity: 3, ReorderLevel: 10, Unit: "pcs"})
	app := newApp(store, config.LedgerConfig{AllowNegativeStock: true})

	resp := postJSON(t, app, "/api/transactions", `{
		"type": "IN",
		"items": [{"product_id": "p1", "quantity": 5, "unit_price": "2.00"}]
	}`)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	body := decodeBody[dto.TransactionResponse](t, resp)
	assert.NotEmpty(t, body.ID)
	assert.Equal(t, "IN", body.Type)
	assert.Equal(t, "10", body.TotalAmount.String())
	assert.Equal(t, 8, store.Products["p1"].Quantity)
}

func TestSubmitTransactionEndpointRejections(t *testing.T) {
	store := testutil.NewStore()
	store.SeedProduct(&entity.Product{ID: "p1", SKU: "WID-1", Name: "Widget", Quantity: 5, Unit: "pcs"})
	app := newApp(store, config.LedgerConfig{AllowNegativeStock: false})

	cases := []struct {
		name   string
		body   string
		status int
		code   string
	}{
		{"malformed body", `{"type": `, fiber.StatusBadRequest, "INVALID_BODY"},
		{"unknown type", `{"type": "TRANSFER", "items": [{"product_id": "p1", "quantity": 1}]}`, fiber.StatusBadRequest, "VALIDATION"},
		{"empty items", `{"type": "IN", "items": []}`, fiber.StatusBadRequest, "VALIDATION"},
		{"unknown product", `{"type": "IN", "items": [{"product_id": "nope", "quantity": 1}]}`, fiber.StatusNotFound, "NOT_FOUND"},
		{"insufficient stock", `{"type": "OUT", "items": [{"product_id": "p1", "quantity": 20}]}`, fiber.StatusConflict, "INSUFFICIENT_STOCK"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := postJSON(t, app, "/api/transactions", tc.body)
			require.Equal(t, tc.status, resp.StatusCode)
			body := decodeBody[dto.ErrorResponse](t, resp)
			assert.Equal(t, tc.code, body.Code)
		})
	}

	// Rejections leave the ledger untouched.
	assert.Empty(t, store.Transactions)
	assert.Equal(t, 5, store.Products["p1"].Quantity)
}

func TestTransactionListAndDetailEndpoints(t *testing.T) {
	store := testutil.NewStore()
	store.SeedProduct(&entity.Product{ID: "p1", SKU: "WID-1", Name: "Widget", Quantity: 0, Unit: "pcs"})
	app := newApp(store, config.LedgerConfig{AllowNegativeStock: true})

	created := decodeBody[dto.TransactionResponse](t, postJSON(t, app, "/api/transactions", `{
		"type": "IN",
		"items": [
			{"product_id": "p1", "quantity": 2, "unit_price": "1.50"},
			{"product_id": "p1", "quantity": 1, "unit_price": "4.00"}
		]
	}`))

	req := httptest.NewRequest(nethttp.MethodGet, "/api/transactions", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	list := decodeBody[[]dto.TransactionResponse](t, resp)
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)
	assert.Equal(t, 2, list[0].ItemCount)

	req = httptest.NewRequest(nethttp.MethodGet, "/api/transactions/"+created.ID, nil)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	detail := decodeBody[dto.TransactionDetailResponse](t, resp)
	require.Len(t, detail.Items, 2)
	assert.Equal(t, "Widget", detail.Items[0].ProductName)
	assert.Equal(t, "WID-1", detail.Items[0].ProductSKU)

	req = httptest.NewRequest(nethttp.MethodGet, "/api/transactions/missing", nil)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
