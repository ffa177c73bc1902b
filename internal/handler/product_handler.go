package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog.Products())
}

func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		errorJSON(w, http.StatusNotFound, "Product not found")
		return
	}
	product, err := h.catalog.Product(id)
	if err != nil {
		errorJSON(w, http.StatusNotFound, "Product not found")
		return
	}
	writeJSON(w, http.StatusOK, product)
}

func (h *Handler) SearchProducts(w http.ResponseWriter, r *http.Request) {
	products, detection := h.catalog.Search(r.URL.Query().Get("q"))
	if detection != nil {
		writeJSON(w, http.StatusOK, detection)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *Handler) FilterProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	brand := q.Get("brand")
	minPrice := parsePrice(q.Get("min_price"))
	maxPrice := parsePrice(q.Get("max_price"))
	writeJSON(w, http.StatusOK, h.catalog.Filter(brand, minPrice, maxPrice))
}

func (h *Handler) GetBrands(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog.Brands())
}

func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.orders.Stats())
}

// parsePrice treats absent or unparsable values as no constraint.
func parsePrice(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}
