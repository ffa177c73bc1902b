package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"nextgenmobiles/backend/internal/detect"
)

func orderBody(t *testing.T, items []map[string]any) *bytes.Buffer {
	t.Helper()
	body, err := json.Marshal(map[string]any{
		"items":            items,
		"shipping_address": "123 Main St",
	})
	if err != nil {
		t.Fatalf("Failed to marshal order body: %v", err)
	}
	return bytes.NewBuffer(body)
}

func TestCreateOrder(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/orders", orderBody(t, []map[string]any{{"id": 1, "quantity": 1}}), nil)
	assert.Equal(t, http.StatusCreated, w.Code)

	resp := decodeMap(t, w)
	assert.Equal(t, float64(1), resp["order_id"])
	assert.Equal(t, "ORD-2024-001", resp["order_number"])
	assert.Equal(t, float64(999), resp["total_amount"])

	// Ids and order numbers keep strictly increasing
	w = env.do(t, http.MethodPost, "/api/orders", orderBody(t, []map[string]any{{"id": 2, "quantity": 2}}), nil)
	resp = decodeMap(t, w)
	assert.Equal(t, float64(2), resp["order_id"])
	assert.Equal(t, "ORD-2024-002", resp["order_number"])
	assert.Equal(t, float64(1798), resp["total_amount"])
}

func TestCreateOrder_UnknownProduct(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/orders", orderBody(t, []map[string]any{{"id": 99, "quantity": 1}}), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Product 99 not found", decodeMap(t, w)["error"])

	// Nothing was appended to the ledger
	assert.Equal(t, 0, env.orders.Count())
}

func TestCreateOrder_MissingItems(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/orders", bytes.NewBufferString(`{}`), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid order data", decodeMap(t, w)["error"])
}

func TestGetOrder(t *testing.T) {
	env := newTestEnv(t)

	env.do(t, http.MethodPost, "/api/orders", orderBody(t, []map[string]any{{"id": 1, "quantity": 1}}), nil)

	w := env.do(t, http.MethodGet, "/api/orders/1", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	order := decodeMap(t, w)
	assert.Equal(t, float64(1), order["id"])
	assert.Equal(t, "pending", order["status"])
	assert.Equal(t, float64(999), order["total"])
	assert.Equal(t, "123 Main St", order["shippingAddress"])
	assert.Nil(t, order["trackingNumber"])

	w = env.do(t, http.MethodGet, "/api/orders/42", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Order not found", decodeMap(t, w)["error"])
}

func TestDeleteOrder_MissingCSRFToken(t *testing.T) {
	env := newTestEnv(t)

	env.do(t, http.MethodPost, "/api/orders", orderBody(t, []map[string]any{{"id": 1, "quantity": 1}}), nil)

	w := env.do(t, http.MethodDelete, "/api/orders/1", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	body := decodeMap(t, w)
	assert.Equal(t, detect.FlagCSRF, body["flag"])
	assert.Equal(t, float64(1), body["deleted_order_id"])

	// The order was NOT actually deleted
	w = env.do(t, http.MethodGet, "/api/orders/1", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDeleteOrder_WithCSRFToken(t *testing.T) {
	env := newTestEnv(t)

	env.do(t, http.MethodPost, "/api/orders", orderBody(t, []map[string]any{{"id": 1, "quantity": 1}}), nil)

	// Any non-empty token value deletes, no ownership check
	w := env.do(t, http.MethodDelete, "/api/orders/1", nil, map[string]string{"X-CSRF-Token": "anything"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Order deleted successfully", decodeMap(t, w)["message"])

	w = env.do(t, http.MethodGet, "/api/orders/1", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteOrder_NotFound(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodDelete, "/api/orders/7", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Order not found", decodeMap(t, w)["error"])
}

func TestGetStats_WithOrders(t *testing.T) {
	env := newTestEnv(t)

	env.do(t, http.MethodPost, "/api/orders", orderBody(t, []map[string]any{{"id": 1, "quantity": 1}}), nil)
	env.do(t, http.MethodPost, "/api/orders", orderBody(t, []map[string]any{{"id": 5, "quantity": 1}}), nil)

	w := env.do(t, http.MethodGet, "/api/stats", nil, nil)
	stats := decodeMap(t, w)
	assert.Equal(t, float64(2), stats["total_orders"])
	assert.Equal(t, float64(1598), stats["total_revenue"])
	assert.Equal(t, float64(799), stats["average_order_value"])
}

func TestGetUserOrders(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/user/orders", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]\n", w.Body.String())

	env.do(t, http.MethodPost, "/api/orders", orderBody(t, []map[string]any{{"id": 3, "quantity": 1}}), nil)

	w = env.do(t, http.MethodGet, "/api/user/orders", nil, nil)
	orders := decodeList(t, w)
	if assert.Len(t, orders, 1) {
		assert.Equal(t, float64(1), orders[0]["userId"])
	}
}
