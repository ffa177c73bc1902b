package repository

import "nextgenmobiles/backend/internal/model"

// OrderRepository is the in-memory order ledger. Like every store in this
// package it is intentionally unsynchronized: the backend is a single-process
// teaching tool and lost updates under concurrent writers are an accepted
// (and undocumented) hazard, not a guarantee.
type OrderRepository struct {
	orders []model.Order
	nextID int
}

func NewOrderRepository(seed ...model.Order) *OrderRepository {
	return &OrderRepository{
		orders: append([]model.Order{}, seed...),
		nextID: len(seed) + 1,
	}
}

// NextID returns the id the next appended order will carry. The counter only
// advances on Append, so the caller builds the order with this value first.
func (r *OrderRepository) NextID() int {
	return r.nextID
}

func (r *OrderRepository) Append(o model.Order) {
	r.orders = append(r.orders, o)
	r.nextID++
}

func (r *OrderRepository) ByID(id int) (model.Order, bool) {
	for _, o := range r.orders {
		if o.ID == id {
			return o, true
		}
	}
	return model.Order{}, false
}

func (r *OrderRepository) Remove(id int) bool {
	for i, o := range r.orders {
		if o.ID == id {
			r.orders = append(r.orders[:i], r.orders[i+1:]...)
			return true
		}
	}
	return false
}

func (r *OrderRepository) ByUser(userID int) []model.Order {
	out := make([]model.Order, 0)
	for _, o := range r.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out
}

func (r *OrderRepository) All() []model.Order {
	return r.orders
}

func (r *OrderRepository) Count() int {
	return len(r.orders)
}
