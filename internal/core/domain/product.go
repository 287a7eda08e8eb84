package domain

import "time"

// Product is a catalog item. Only products with status "active" are visible
// on the public storefront; the admin console sees everything.
type Product struct {
	ID            string    `json:"id" bson:"_id,omitempty"`
	Name          string    `json:"name" bson:"name"`
	Description   string    `json:"description" bson:"description"`
	Price         float64   `json:"price" bson:"price"`
	OriginalPrice float64   `json:"originalPrice,omitempty" bson:"original_price,omitempty"`
	CategoryID    string    `json:"categoryId" bson:"category_id"`
	CategoryName  string    `json:"categoryName,omitempty" bson:"-"`
	StockQuantity int       `json:"stockQuantity" bson:"stock_quantity"`
	SKU           string    `json:"sku" bson:"sku"`
	Image         string    `json:"image,omitempty" bson:"image,omitempty"`
	Status        string    `json:"status" bson:"status"`
	CreatedAt     time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt" bson:"updated_at"`
}

const (
	ProductActive   = "active"
	ProductInactive = "inactive"
)

// Category groups products for navigation and the admin category chart. The
// storefront navigation lists active categories only.
type Category struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Slug        string    `json:"slug" bson:"slug"`
	Status      string    `json:"status" bson:"status"`
	CreatedAt   time.Time `json:"createdAt" bson:"created_at"`
}

const (
	CategoryActive   = "active"
	CategoryInactive = "inactive"
)
