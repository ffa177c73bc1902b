package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"nextgenmobiles/backend/internal/model"
	"nextgenmobiles/backend/internal/service"
)

type createOrderRequest struct {
	Items           []service.OrderItemInput `json:"items"`
	ShippingAddress string                   `json:"shipping_address"`
}

func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Items == nil {
		errorJSON(w, http.StatusBadRequest, "Invalid order data")
		return
	}

	order, err := h.orders.Create(req.Items, req.ShippingAddress)
	if err != nil {
		var unknown *service.UnknownProductError
		if errors.As(err, &unknown) {
			errorJSON(w, http.StatusBadRequest, unknown.Error())
			return
		}
		errorJSON(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message":      "Order created successfully",
		"order_id":     order.ID,
		"order_number": order.OrderNumber,
		"total_amount": order.Total,
	})
}

func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		errorJSON(w, http.StatusNotFound, "Order not found")
		return
	}
	order, err := h.orders.ByID(id)
	if err != nil {
		errorJSON(w, http.StatusNotFound, "Order not found")
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		errorJSON(w, http.StatusNotFound, "Order not found")
		return
	}

	detection, err := h.orders.Delete(id, r.Header.Get("X-CSRF-Token"))
	if err != nil {
		errorJSON(w, http.StatusNotFound, "Order not found")
		return
	}
	if detection != nil {
		writeJSON(w, http.StatusOK, detection)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Order deleted successfully"})
}

func (h *Handler) GetUserOrders(w http.ResponseWriter, r *http.Request) {
	// In a real app the user id would come from the session; the demo only
	// ever serves user 1.
	writeJSON(w, http.StatusOK, h.orders.ForUser(model.DemoUserID))
}
