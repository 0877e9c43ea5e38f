package models

import (
	"time"

	"github.com/google/uuid"
)

// Order statuses.
const (
	OrderStatusPending   = "pending"
	OrderStatusAccepted  = "accepted"
	OrderStatusRejected  = "rejected"
	OrderStatusFulfilled = "fulfilled"
	OrderStatusCancelled = "cancelled"
)

// Order is a B2B order from a farmer to a retailer, optionally traced back
// to a diagnosis case.
type Order struct {
	ID              uuid.UUID  `json:"id"`
	FarmerID        uuid.UUID  `json:"farmer_id"`
	RetailerID      uuid.UUID  `json:"retailer_id"`
	DiagnosisCaseID *uuid.UUID `json:"diagnosis_case_id,omitempty"`
	SourceType      *string    `json:"source_type,omitempty"` // diagnosis, manual, repeat
	Status          string     `json:"status"`
	TotalAmount     float64    `json:"total_amount"`
	DeliveryAddress *string    `json:"delivery_address,omitempty"`
	Notes           *string    `json:"notes,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`
}

// OrderItem is a single product line within an order. The unit price is the
// retailer-specific price captured at order time.
type OrderItem struct {
	ID               uuid.UUID `json:"id"`
	OrderID          uuid.UUID `json:"order_id"`
	ProductVariantID uuid.UUID `json:"product_variant_id"`
	Quantity         int       `json:"quantity"`
	UnitPrice        float64   `json:"unit_price"`
	CreatedAt        time.Time `json:"created_at"`
}
