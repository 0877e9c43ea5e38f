package models

import (
	"time"

	"github.com/google/uuid"
)

// Retailer fulfills orders placed by farmers.
type Retailer struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Phone       *string    `json:"phone,omitempty"`
	Email       *string    `json:"email,omitempty"`
	Address     *string    `json:"address,omitempty"`
	LocationLat *float64   `json:"location_lat,omitempty"`
	LocationLng *float64   `json:"location_lng,omitempty"`
	IsActive    bool       `json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
}

// RetailerProduct maps a product variant to a retailer with retailer-specific
// pricing and availability. (retailer_id, product_variant_id) is unique.
type RetailerProduct struct {
	ID               uuid.UUID  `json:"id"`
	RetailerID       uuid.UUID  `json:"retailer_id"`
	ProductVariantID uuid.UUID  `json:"product_variant_id"`
	Price            float64    `json:"price"`
	StockQuantity    int        `json:"stock_quantity"`
	IsAvailable      bool       `json:"is_available"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        *time.Time `json:"updated_at,omitempty"`
}
