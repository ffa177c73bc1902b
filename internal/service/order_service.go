package service

import (
	"errors"
	"fmt"
	"time"

	"nextgenmobiles/backend/internal/detect"
	"nextgenmobiles/backend/internal/model"
	"nextgenmobiles/backend/internal/repository"
)

var ErrOrderNotFound = errors.New("order not found")

// UnknownProductError names the missing product id so the handler can echo
// it back to the caller.
type UnknownProductError struct {
	ID int
}

func (e *UnknownProductError) Error() string {
	return fmt.Sprintf("Product %d not found", e.ID)
}

type OrderItemInput struct {
	ID       int `json:"id"`
	Quantity int `json:"quantity"`
}

type OrderService struct {
	products *repository.ProductRepository
	orders   *repository.OrderRepository
}

func NewOrderService(products *repository.ProductRepository, orders *repository.OrderRepository) *OrderService {
	return &OrderService{products: products, orders: orders}
}

// Create resolves every item against the catalog, computes the total and
// appends the order under the next counter value. Nothing is appended when
// any referenced product is unknown.
func (s *OrderService) Create(items []OrderItemInput, shippingAddress string) (*model.Order, error) {
	var total float64
	orderItems := make([]model.OrderItem, 0, len(items))
	for _, item := range items {
		product, ok := s.products.ByID(item.ID)
		if !ok {
			return nil, &UnknownProductError{ID: item.ID}
		}
		total += product.Price * float64(item.Quantity)
		orderItems = append(orderItems, model.OrderItem{
			ID:       product.ID,
			Name:     product.Name,
			Price:    product.Price,
			Quantity: item.Quantity,
			Image:    product.Image,
		})
	}

	now := time.Now()
	order := model.Order{
		ID:              s.orders.NextID(),
		UserID:          model.DemoUserID,
		OrderNumber:     fmt.Sprintf("ORD-2024-%03d", s.orders.NextID()),
		Date:            now.Format("2006-01-02"),
		Status:          model.OrderStatusPending,
		Total:           total,
		Items:           orderItems,
		ShippingAddress: shippingAddress,
		TrackingNumber:  nil,
		CreatedAt:       now.UTC().Format(time.RFC3339),
	}
	s.orders.Append(order)
	return &order, nil
}

func (s *OrderService) ByID(id int) (model.Order, error) {
	order, ok := s.orders.ByID(id)
	if !ok {
		return model.Order{}, ErrOrderNotFound
	}
	return order, nil
}

// Delete removes the order only when a CSRF token accompanied the request.
// A missing token yields the detection payload and leaves the ledger
// untouched; any non-empty token deletes without an ownership check.
func (s *OrderService) Delete(id int, csrfToken string) (*detect.Result, error) {
	if _, ok := s.orders.ByID(id); !ok {
		return nil, ErrOrderNotFound
	}
	if res := detect.OrderCSRF(csrfToken, id); res != nil {
		return res, nil
	}
	s.orders.Remove(id)
	return nil, nil
}

func (s *OrderService) ForUser(userID int) []model.Order {
	return s.orders.ByUser(userID)
}

// Stats aggregates the catalog and the ledger; the average guards against
// an empty ledger.
func (s *OrderService) Stats() model.Stats {
	var revenue float64
	for _, o := range s.orders.All() {
		revenue += o.Total
	}
	stats := model.Stats{
		TotalProducts: s.products.Count(),
		TotalOrders:   s.orders.Count(),
		TotalRevenue:  revenue,
	}
	if stats.TotalOrders > 0 {
		stats.AverageOrderValue = revenue / float64(stats.TotalOrders)
	}
	return stats
}
