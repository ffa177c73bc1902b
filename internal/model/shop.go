package model

// DemoUserID is the only user context the demo ever resolves. Requests that
// name any other user id are treated as exploitation attempts.
const DemoUserID = 1

const (
	OrderStatusPending   = "pending"
	OrderStatusDelivered = "delivered"
)

type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
	Brand       string  `json:"brand"`
	Storage     string  `json:"storage"`
	Color       string  `json:"color"`
}

type OrderItem struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Image    string  `json:"image"`
}

type Order struct {
	ID              int         `json:"id"`
	UserID          int         `json:"userId"`
	OrderNumber     string      `json:"orderNumber"`
	Date            string      `json:"date"`
	Status          string      `json:"status"`
	Total           float64     `json:"total"`
	Items           []OrderItem `json:"items"`
	ShippingAddress string      `json:"shippingAddress"`
	TrackingNumber  *string     `json:"trackingNumber"`
	CreatedAt       string      `json:"createdAt"`
}

// User carries the stored password digest; the json tag keeps it out of
// every response without per-endpoint stripping.
type User struct {
	ID        int    `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"-"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	BirthDate string `json:"birthDate"`
	CreatedAt string `json:"createdAt"`
}

type UploadedFile struct {
	ID            string `json:"id"`
	Filename      string `json:"filename"`
	SavedFilename string `json:"saved_filename"`
	Filepath      string `json:"filepath"`
	Size          int64  `json:"size"`
	UploadDate    string `json:"upload_date"`
}

type ContactMessage struct {
	ID          int    `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Subject     string `json:"subject"`
	Message     string `json:"message"`
	Newsletter  bool   `json:"newsletter"`
	SubmittedAt string `json:"submittedAt"`
}

type Stats struct {
	TotalProducts     int     `json:"total_products"`
	TotalOrders       int     `json:"total_orders"`
	TotalRevenue      float64 `json:"total_revenue"`
	AverageOrderValue float64 `json:"average_order_value"`
}
