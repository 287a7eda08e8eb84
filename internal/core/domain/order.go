package domain

import "time"

// OrderStatus is the lifecycle state of an order. Only completed orders count
// toward revenue.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderCompleted  OrderStatus = "completed"
	OrderCancelled  OrderStatus = "cancelled"
)

// ValidOrderStatus reports whether s is a member of the closed status set.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderPending, OrderProcessing, OrderShipped, OrderCompleted, OrderCancelled:
		return true
	}
	return false
}

// OrderItem is a single product line within an order. Name and price are
// copied at purchase time so later catalog edits do not rewrite history.
type OrderItem struct {
	ProductID string  `json:"productId" bson:"product_id"`
	Name      string  `json:"name" bson:"name"`
	Price     float64 `json:"price" bson:"price"`
	Quantity  int     `json:"quantity" bson:"quantity"`
}

// PostalAddress is a shipping or billing destination, embedded in orders and
// stored standalone in a user's address book.
type PostalAddress struct {
	ID        string `json:"id,omitempty" bson:"_id,omitempty"`
	UserID    string `json:"-" bson:"user_id,omitempty"`
	Label     string `json:"label,omitempty" bson:"label,omitempty"`
	FirstName string `json:"firstName" bson:"first_name"`
	LastName  string `json:"lastName" bson:"last_name"`
	Street    string `json:"street" bson:"street"`
	City      string `json:"city" bson:"city"`
	State     string `json:"state,omitempty" bson:"state,omitempty"`
	ZipCode   string `json:"zipCode" bson:"zip_code"`
	Country   string `json:"country,omitempty" bson:"country,omitempty"`
	Phone     string `json:"phone,omitempty" bson:"phone,omitempty"`
}

// Order is a customer purchase.
type Order struct {
	ID              string        `json:"id" bson:"_id,omitempty"`
	UserID          string        `json:"userId" bson:"user_id"`
	Customer        *OrderUser    `json:"customer,omitempty" bson:"-"`
	Items           []OrderItem   `json:"items" bson:"items"`
	ShippingAddress PostalAddress `json:"shippingAddress" bson:"shipping_address"`
	BillingAddress  PostalAddress `json:"billingAddress,omitempty" bson:"billing_address,omitempty"`
	TotalAmount     float64       `json:"totalAmount" bson:"total_amount"`
	Status          OrderStatus   `json:"status" bson:"status"`
	CreatedAt       time.Time     `json:"createdAt" bson:"created_at"`
	UpdatedAt       time.Time     `json:"updatedAt" bson:"updated_at"`
}

// OrderUser is the customer projection attached to admin order listings.
type OrderUser struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}
