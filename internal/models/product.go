package models

import (
	"time"

	"github.com/google/uuid"
)

// Product is a container for sellable variants.
type Product struct {
	ID           uuid.UUID  `json:"id"`
	CategoryID   *uuid.UUID `json:"category_id,omitempty"`
	Name         string     `json:"name"`
	Description  *string    `json:"description,omitempty"`
	Manufacturer *string    `json:"manufacturer,omitempty"`
	IsActive     bool       `json:"is_active"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

// ProductVariant carries the SKU and base pricing for a product.
type ProductVariant struct {
	ID        uuid.UUID  `json:"id"`
	ProductID uuid.UUID  `json:"product_id"`
	SKU       string     `json:"sku"`
	Name      *string    `json:"name,omitempty"`
	UnitSize  *string    `json:"unit_size,omitempty"`
	UnitType  *string    `json:"unit_type,omitempty"`
	BasePrice *float64   `json:"base_price,omitempty"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
}
