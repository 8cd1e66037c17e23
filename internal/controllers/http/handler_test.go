package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront-service/internal/domain"
	"storefront-service/internal/infra/rabbitmq"
	"storefront-service/internal/repository/memory"
	"storefront-service/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := zap.NewNop()
	events := services.NewEventDispatcher(rabbitmq.NopPublisher{}, logger)
	t.Cleanup(events.Wait)

	handler := NewHandler(
		services.NewProductService(memory.NewProductRepository(), events, logger),
		services.NewOrderService(memory.NewOrderRepository(), events, logger),
		services.NewInventoryService(memory.NewInventoryRepository(), events, logger),
		logger,
	)

	r := gin.New()
	r.Use(CorrelationID(), RequestLogger(logger))
	handler.RegisterRoutes(r, "/api")
	return r
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	return decode[map[string]string](t, w)["error"]
}

func TestProducts_CreateThenRejectInvalidUpdate(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(r, http.MethodPost, "/api/products", `{"name":"Widget","brand":"Acme","price":9.99,"category":"tools"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode[domain.Product](t, w)
	assert.NotZero(t, created.ID)
	assert.Equal(t, 9.99, created.Price)

	path := fmt.Sprintf("/api/products/%d", created.ID)
	w = doRequest(r, http.MethodPut, path, `{"name":"Widget","brand":"Acme","price":0,"category":"tools"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Valid price is required", errorMessage(t, w))

	w = doRequest(r, http.MethodGet, path, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 9.99, decode[domain.Product](t, w).Price)
}

func TestProducts_ValidationOrder(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name    string
		body    string
		message string
	}{
		{name: "everything missing", body: `{}`, message: "Product name is required"},
		{name: "brand missing", body: `{"name":"A","price":1}`, message: "Brand is required"},
		{name: "price missing", body: `{"name":"A","brand":"B","category":"C"}`, message: "Valid price is required"},
		{name: "category blank", body: `{"name":"A","brand":"B","price":1,"category":"  "}`, message: "Category is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(r, http.MethodPost, "/api/products", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.message, errorMessage(t, w))
		})
	}
}

func TestProducts_Queries(t *testing.T) {
	r := newTestRouter(t)
	for _, body := range []string{
		`{"name":"Steel Widget","brand":"Acme","price":5,"category":"tools"}`,
		`{"name":"Desk Lamp","brand":"Lumo","price":20,"category":"home"}`,
	} {
		require.Equal(t, http.StatusCreated, doRequest(r, http.MethodPost, "/api/products", body).Code)
	}

	w := doRequest(r, http.MethodGet, "/api/products/search?name=WIDGET", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]domain.Product](t, w), 1)

	w = doRequest(r, http.MethodGet, "/api/products/search", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "name is required", errorMessage(t, w))

	w = doRequest(r, http.MethodGet, "/api/products/category/home", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]domain.Product](t, w), 1)

	w = doRequest(r, http.MethodGet, "/api/products/brand/Nobody", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = doRequest(r, http.MethodGet, "/api/products/999", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(r, http.MethodGet, "/api/products/abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProducts_Delete(t *testing.T) {
	r := newTestRouter(t)
	require.Equal(t, http.StatusCreated, doRequest(r, http.MethodPost, "/api/products", `{"name":"A","brand":"B","price":1,"category":"C"}`).Code)

	assert.Equal(t, http.StatusNotFound, doRequest(r, http.MethodDelete, "/api/products/42", "").Code)
	assert.Equal(t, http.StatusNoContent, doRequest(r, http.MethodDelete, "/api/products/1", "").Code)
	assert.Equal(t, http.StatusNotFound, doRequest(r, http.MethodGet, "/api/products/1", "").Code)

	require.Equal(t, http.StatusCreated, doRequest(r, http.MethodPost, "/api/products", `{"name":"A","brand":"B","price":1,"category":"C"}`).Code)
	assert.Equal(t, http.StatusNoContent, doRequest(r, http.MethodDelete, "/api/products", "").Code)
	assert.JSONEq(t, `[]`, doRequest(r, http.MethodGet, "/api/products", "").Body.String())
}

func TestOrders_Lifecycle(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(r, http.MethodPost, "/api/orders", `{
		"customerName":"Jane Doe",
		"customerEmail":"jane@example.com",
		"totalAmount":50,
		"items":[
			{"productId":1,"productName":"Widget","quantity":2,"price":10},
			{"productId":2,"productName":"Lamp","quantity":3,"price":10}
		]
	}`)
	require.Equal(t, http.StatusCreated, w.Code)
	order := decode[domain.Order](t, w)
	assert.Equal(t, 5, order.ProductCount)
	assert.Equal(t, domain.StatusPending, order.Status)
	assert.Len(t, order.Items, 2)

	path := fmt.Sprintf("/api/orders/%d", order.ID)

	w = doRequest(r, http.MethodPut, path, `{"notes":"fragile","unknown":true}`)
	require.Equal(t, http.StatusOK, w.Code)
	updated := decode[domain.Order](t, w)
	assert.Equal(t, "fragile", updated.Notes)
	assert.Equal(t, "Jane Doe", updated.CustomerName)
	assert.Equal(t, 5, updated.ProductCount)

	w = doRequest(r, http.MethodPut, path, `{"totalAmount":"lots"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid value for totalAmount", errorMessage(t, w))

	w = doRequest(r, http.MethodPut, path+"/status", `{"status":"shipped"}`)
	require.Equal(t, http.StatusOK, w.Code)

	for _, status := range []string{"SHIPPED", "shipped", "Shipped"} {
		w = doRequest(r, http.MethodGet, "/api/orders/status/"+status, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decode[[]domain.Order](t, w), 1, status)
	}

	w = doRequest(r, http.MethodPut, path+"/replace", `{"customerName":"John","customerEmail":"j@x.io","productCount":1,"totalAmount":5,"status":"COMPLETED"}`)
	require.Equal(t, http.StatusOK, w.Code)
	replaced := decode[domain.Order](t, w)
	assert.Equal(t, "John", replaced.CustomerName)
	assert.Equal(t, "fragile", replaced.Notes)

	assert.Equal(t, http.StatusNoContent, doRequest(r, http.MethodDelete, path, "").Code)
	assert.Equal(t, http.StatusNotFound, doRequest(r, http.MethodDelete, path, "").Code)
	assert.Equal(t, http.StatusNotFound, doRequest(r, http.MethodGet, path, "").Code)
}

func TestOrders_StatusBodies(t *testing.T) {
	r := newTestRouter(t)
	require.Equal(t, http.StatusCreated, doRequest(r, http.MethodPost, "/api/orders", `{"customerName":"A"}`).Code)

	tests := []struct {
		name     string
		body     string
		code     int
		expected domain.OrderStatus
	}{
		{name: "object", body: `{"status":"PROCESSING"}`, code: http.StatusOK, expected: domain.StatusProcessing},
		{name: "json string", body: `"SHIPPED"`, code: http.StatusOK, expected: domain.StatusShipped},
		{name: "raw text", body: `COMPLETED`, code: http.StatusOK, expected: domain.StatusCompleted},
		{name: "blank", body: `{"status":" "}`, code: http.StatusBadRequest},
		{name: "empty", body: ``, code: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(r, http.MethodPut, "/api/orders/1/status", tt.body)
			require.Equal(t, tt.code, w.Code)
			if tt.code == http.StatusOK {
				assert.Equal(t, tt.expected, decode[domain.Order](t, w).Status)
			} else {
				assert.Equal(t, "Status is required", errorMessage(t, w))
			}
		})
	}

	assert.Equal(t, http.StatusNotFound, doRequest(r, http.MethodPut, "/api/orders/9/status", `"SHIPPED"`).Code)
}

func TestInventory_Endpoints(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(r, http.MethodPost, "/api/inventory", `{"productName":"Widget","quantity":5,"unitPrice":2}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Product ID is required", errorMessage(t, w))

	w = doRequest(r, http.MethodPost, "/api/inventory", `{"productId":7,"productName":"Widget","quantity":5,"unitPrice":2}`)
	require.Equal(t, http.StatusCreated, w.Code)
	low := decode[domain.Inventory](t, w)
	assert.Equal(t, domain.DefaultReorderLevel, low.ReorderLevel)

	w = doRequest(r, http.MethodPost, "/api/inventory", `{"productId":8,"productName":"Lamp","quantity":50,"unitPrice":2,"location":"B2"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	plenty := decode[domain.Inventory](t, w)

	w = doRequest(r, http.MethodGet, "/api/inventory/low-stock", "")
	require.Equal(t, http.StatusOK, w.Code)
	lows := decode[[]domain.Inventory](t, w)
	require.Len(t, lows, 1)
	assert.Equal(t, low.ID, lows[0].ID)

	w = doRequest(r, http.MethodGet, "/api/inventory/product/8", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, plenty.ID, decode[domain.Inventory](t, w).ID)
	assert.Equal(t, http.StatusNotFound, doRequest(r, http.MethodGet, "/api/inventory/product/99", "").Code)

	path := fmt.Sprintf("/api/inventory/%d", plenty.ID)
	w = doRequest(r, http.MethodPut, path, `{"location":"C3"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "C3", decode[domain.Inventory](t, w).Location)
	assert.Equal(t, 50, decode[domain.Inventory](t, w).Quantity)

	w = doRequest(r, http.MethodPost, path+"/adjust", `{"type":"remove","amount":45,"reason":"sale"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 5, decode[domain.Inventory](t, w).Quantity)

	w = doRequest(r, http.MethodPost, path+"/adjust", `{"type":"remove","amount":6}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Insufficient stock", errorMessage(t, w))

	assert.Equal(t, http.StatusNoContent, doRequest(r, http.MethodDelete, path, "").Code)
	assert.Equal(t, http.StatusNotFound, doRequest(r, http.MethodDelete, path, "").Code)
}

func TestCorrelationID(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(r, http.MethodGet, "/api/healthz", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(CorrelationIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/api/healthz", nil)
	req.Header.Set(CorrelationIDHeader, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(CorrelationIDHeader))
}

func TestParseStatusBody(t *testing.T) {
	_, err := parseStatusBody([]byte(`{"status":`))
	assert.Error(t, err)

	status, err := parseStatusBody([]byte("  PENDING \n"))
	require.NoError(t, err)
	assert.Equal(t, "PENDING", status)
}
