package repository

import (
	"crypto/sha256"
	"encoding/hex"

	"nextgenmobiles/backend/internal/model"
)

// DemoUser returns the seeded demo account (id 1). The password digest is
// the unsalted sha256 of "password123", matching what the login path
// computes for supplied credentials.
func DemoUser() model.User {
	sum := sha256.Sum256([]byte("password123"))
	return model.User{
		ID:        model.DemoUserID,
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john@example.com",
		Password:  hex.EncodeToString(sum[:]),
		Phone:     "+1 (555) 123-4567",
		Address:   "123 Main St, City, State 12345",
		BirthDate: "1990-01-01",
		CreatedAt: "2024-01-01T00:00:00Z",
	}
}

// DemoOrder returns the seeded delivered order for the demo user.
func DemoOrder() model.Order {
	tracking := "TRK123456789"
	return model.Order{
		ID:          1,
		UserID:      model.DemoUserID,
		OrderNumber: "ORD-2024-001",
		Date:        "2024-01-15",
		Status:      model.OrderStatusDelivered,
		Total:       999.00,
		Items: []model.OrderItem{
			{
				ID:       1,
				Name:     "iPhone 15 Pro",
				Price:    999,
				Quantity: 1,
				Image:    "https://via.placeholder.com/60x60?text=iPhone+15+Pro",
			},
		},
		ShippingAddress: "123 Main St, City, State 12345",
		TrackingNumber:  &tracking,
	}
}
