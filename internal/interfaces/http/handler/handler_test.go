package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appcatalog "github.com/garmentshop/backend/internal/application/catalog"
	appinventory "github.com/garmentshop/backend/internal/application/inventory"
	apptrade "github.com/garmentshop/backend/internal/application/trade"
	"github.com/garmentshop/backend/internal/domain/catalog"
	"github.com/garmentshop/backend/internal/domain/inventory"
	"github.com/garmentshop/backend/internal/domain/trade"
	"github.com/garmentshop/backend/internal/interfaces/http/router"
)

type memProducts struct{ items []catalog.Product }

func (m *memProducts) Load(ctx context.Context) ([]catalog.Product, error) {
	return append([]catalog.Product(nil), m.items...), nil
}
func (m *memProducts) Save(ctx context.Context, products []catalog.Product) error {
	m.items = append([]catalog.Product(nil), products...)
	return nil
}

type memOptions struct{ sets map[catalog.OptionKind][]string }

func (m *memOptions) Load(ctx context.Context, kind catalog.OptionKind) ([]string, error) {
	if values, ok := m.sets[kind]; ok {
		return append([]string(nil), values...), nil
	}
	return catalog.DefaultOptions(kind), nil
}
func (m *memOptions) Save(ctx context.Context, kind catalog.OptionKind, values []string) error {
	if m.sets == nil {
		m.sets = map[catalog.OptionKind][]string{}
	}
	m.sets[kind] = append([]string(nil), values...)
	return nil
}

type memStock struct{ items []inventory.StockRecord }

func (m *memStock) Load(ctx context.Context) ([]inventory.StockRecord, error) {
	return append([]inventory.StockRecord(nil), m.items...), nil
}
func (m *memStock) Save(ctx context.Context, records []inventory.StockRecord) error {
	m.items = append([]inventory.StockRecord(nil), records...)
	return nil
}

type memHistory struct{ items []inventory.HistoryEntry }

func (m *memHistory) Load(ctx context.Context) ([]inventory.HistoryEntry, error) {
	return append([]inventory.HistoryEntry(nil), m.items...), nil
}
func (m *memHistory) Save(ctx context.Context, entries []inventory.HistoryEntry) error {
	m.items = append([]inventory.HistoryEntry(nil), entries...)
	return nil
}

type memInvoices struct{ items []trade.Invoice }

func (m *memInvoices) Load(ctx context.Context) ([]trade.Invoice, error) {
	return append([]trade.Invoice(nil), m.items...), nil
}
func (m *memInvoices) Save(ctx context.Context, invoices []trade.Invoice) error {
	m.items = append([]trade.Invoice(nil), invoices...)
	return nil
}

type memReturns struct{ items []trade.ReturnExchange }

func (m *memReturns) Load(ctx context.Context) ([]trade.ReturnExchange, error) {
	return append([]trade.ReturnExchange(nil), m.items...), nil
}
func (m *memReturns) Save(ctx context.Context, returns []trade.ReturnExchange) error {
	m.items = append([]trade.ReturnExchange(nil), returns...)
	return nil
}

type testEnv struct {
	engine  *gin.Engine
	stock   *memStock
	history *memHistory
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	products := &memProducts{}
	options := &memOptions{}
	stock := &memStock{}
	history := &memHistory{}
	invoices := &memInvoices{}
	returns := &memReturns{}

	ledger := inventory.NewLedger(stock, history, products)
	productService := appcatalog.NewProductService(products, options, ledger)
	inventoryService := appinventory.NewInventoryService(stock, history, ledger)
	posService := apptrade.NewPOSService(invoices, returns, products, stock, ledger)

	engine := gin.New()
	router.NewRouter(engine).
		Register(NewProductHandler(productService)).
		Register(NewInventoryHandler(inventoryService)).
		Register(NewPOSHandler(posService)).
		Setup()

	return &testEnv{engine: engine, stock: stock, history: history}
}

func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func createProduct(t *testing.T, env *testEnv, sku string, qty int) {
	t.Helper()
	w := env.do(t, http.MethodPost, "/api/v1/catalog/products", gin.H{
		"sku":          sku,
		"name":         "Cotton Shirt",
		"category":     "Shirts",
		"supplierId":   "SUP-000001",
		"costPrice":    "300",
		"sellingPrice": "500",
		"quantity":     qty,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func TestProductCreateSeedsStock(t *testing.T) {
	env := newTestEnv(t)

	createProduct(t, env, "SKU-1", 10)

	w := env.do(t, http.MethodGet, "/api/v1/inventory/stock/SKU-1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	data := body["data"].(map[string]any)
	assert.Equal(t, float64(10), data["quantityInStock"])
	assert.Equal(t, "Cotton Shirt", data["productName"])
}

func TestProductCreateValidation(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/v1/catalog/products", gin.H{"sku": "SKU-1"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, false, body["success"])
	errInfo := body["error"].(map[string]any)
	assert.Equal(t, "ERR_VALIDATION", errInfo["code"])
	assert.NotEmpty(t, errInfo["details"])
}

func TestProductDuplicateConflict(t *testing.T) {
	env := newTestEnv(t)

	createProduct(t, env, "SKU-1", 10)
	w := env.do(t, http.MethodPost, "/api/v1/catalog/products", gin.H{
		"sku":        "SKU-1",
		"name":       "Cotton Shirt",
		"supplierId": "SUP-000001",
	})
	require.Equal(t, http.StatusConflict, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "ERR_ALREADY_EXISTS", body["error"].(map[string]any)["code"])
}

func TestProductListMeta(t *testing.T) {
	env := newTestEnv(t)

	createProduct(t, env, "SKU-1", 10)
	createProduct(t, env, "SKU-2", 5)

	w := env.do(t, http.MethodGet, "/api/v1/catalog/products", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, float64(2), body["meta"].(map[string]any)["total"])
}

func TestAdjustmentFlow(t *testing.T) {
	env := newTestEnv(t)

	createProduct(t, env, "SKU-1", 10)

	w := env.do(t, http.MethodPost, "/api/v1/inventory/adjustments", gin.H{
		"sku":         "SKU-1",
		"newQuantity": 4,
		"reason":      "Annual count",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	data := decodeBody(t, w)["data"].(map[string]any)
	assert.Equal(t, float64(10), data["oldQty"])
	assert.Equal(t, float64(4), data["newQty"])

	w = env.do(t, http.MethodGet, "/api/v1/inventory/history?type=ADJUSTMENT", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, float64(1), body["meta"].(map[string]any)["total"])
}

func TestAdjustmentUnknownSKU(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/v1/inventory/adjustments", gin.H{
		"sku":         "NOPE",
		"newQuantity": 4,
		"reason":      "Annual count",
	})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestCheckoutMovesStock(t *testing.T) {
	env := newTestEnv(t)

	createProduct(t, env, "SKU-1", 10)

	w := env.do(t, http.MethodPost, "/api/v1/trade/pos/checkout", gin.H{
		"customerName": "Asha",
		"items": []gin.H{
			{"sku": "SKU-1", "quantity": 3},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	data := decodeBody(t, w)["data"].(map[string]any)
	invoice := data["invoice"].(map[string]any)
	assert.Equal(t, "Asha", invoice["customerName"])

	require.Len(t, env.stock.items, 1)
	assert.Equal(t, 7, env.stock.items[0].QuantityInStock)
}

func TestCheckoutUnknownSKU(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/v1/trade/pos/checkout", gin.H{
		"items": []gin.H{
			{"sku": "NOPE", "quantity": 1},
		},
	})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestOptionsRoundTrip(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/v1/catalog/options/sizes", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.NotEmpty(t, body["data"])

	w = env.do(t, http.MethodPut, "/api/v1/catalog/options/sizes", gin.H{
		"values": []string{"S", "M", ""},
	})
	require.Equal(t, http.StatusOK, w.Code)
	body = decodeBody(t, w)
	assert.Equal(t, []any{"S", "M"}, body["data"])
}

func TestUnknownOptionKind(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/v1/catalog/options/planets", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}
