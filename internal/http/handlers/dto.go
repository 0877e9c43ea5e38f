package handlers

import (
	"github.com/google/uuid"
	"github.com/princesinghgemini-dotcom/veto/internal/models"
)

// Patch requests use pointer fields so that absent keys leave the stored
// value untouched.

type CategoryCreateRequest struct {
	Name        string     `json:"name"`
	Description *string    `json:"description,omitempty"`
	ParentID    *uuid.UUID `json:"parent_id,omitempty"`
}

type CategoryUpdateRequest struct {
	Name        *string    `json:"name,omitempty"`
	Description *string    `json:"description,omitempty"`
	ParentID    *uuid.UUID `json:"parent_id,omitempty"`
}

type ProductCreateRequest struct {
	CategoryID   *uuid.UUID `json:"category_id,omitempty"`
	Name         string     `json:"name"`
	Description  *string    `json:"description,omitempty"`
	Manufacturer *string    `json:"manufacturer,omitempty"`
	IsActive     *bool      `json:"is_active,omitempty"` // defaults to true
}

type ProductUpdateRequest struct {
	CategoryID   *uuid.UUID `json:"category_id,omitempty"`
	Name         *string    `json:"name,omitempty"`
	Description  *string    `json:"description,omitempty"`
	Manufacturer *string    `json:"manufacturer,omitempty"`
	IsActive     *bool      `json:"is_active,omitempty"`
}

type VariantCreateRequest struct {
	SKU       string   `json:"sku"`
	Name      *string  `json:"name,omitempty"`
	UnitSize  *string  `json:"unit_size,omitempty"`
	UnitType  *string  `json:"unit_type,omitempty"`
	BasePrice *float64 `json:"base_price,omitempty"`
	IsActive  *bool    `json:"is_active,omitempty"` // defaults to true
}

type VariantUpdateRequest struct {
	SKU       *string  `json:"sku,omitempty"`
	Name      *string  `json:"name,omitempty"`
	UnitSize  *string  `json:"unit_size,omitempty"`
	UnitType  *string  `json:"unit_type,omitempty"`
	BasePrice *float64 `json:"base_price,omitempty"`
	IsActive  *bool    `json:"is_active,omitempty"`
}

type RetailerCreateRequest struct {
	Name        string   `json:"name"`
	Phone       *string  `json:"phone,omitempty"`
	Email       *string  `json:"email,omitempty"`
	Address     *string  `json:"address,omitempty"`
	LocationLat *float64 `json:"location_lat,omitempty"`
	LocationLng *float64 `json:"location_lng,omitempty"`
	IsActive    *bool    `json:"is_active,omitempty"` // defaults to true
}

type RetailerUpdateRequest struct {
	Name        *string  `json:"name,omitempty"`
	Phone       *string  `json:"phone,omitempty"`
	Email       *string  `json:"email,omitempty"`
	Address     *string  `json:"address,omitempty"`
	LocationLat *float64 `json:"location_lat,omitempty"`
	LocationLng *float64 `json:"location_lng,omitempty"`
	IsActive    *bool    `json:"is_active,omitempty"`
}

type RetailerProductCreateRequest struct {
	ProductVariantID uuid.UUID `json:"product_variant_id"`
	Price            float64   `json:"price"`
	StockQuantity    int       `json:"stock_quantity"`
	IsAvailable      *bool     `json:"is_available,omitempty"` // defaults to true
}

type RetailerProductUpdateRequest struct {
	Price         *float64 `json:"price,omitempty"`
	StockQuantity *int     `json:"stock_quantity,omitempty"`
	IsAvailable   *bool    `json:"is_available,omitempty"`
}

type OrderItemRequest struct {
	ProductVariantID uuid.UUID `json:"product_variant_id"`
	Quantity         int       `json:"quantity"`
}

type OrderCreateRequest struct {
	FarmerID        uuid.UUID          `json:"farmer_id"`
	RetailerID      uuid.UUID          `json:"retailer_id"`
	DiagnosisCaseID *uuid.UUID         `json:"diagnosis_case_id,omitempty"`
	SourceType      *string            `json:"source_type,omitempty"`
	DeliveryAddress *string            `json:"delivery_address,omitempty"`
	Notes           *string            `json:"notes,omitempty"`
	Items           []OrderItemRequest `json:"items"`
}

type OrderStatusUpdateRequest struct {
	Action string  `json:"action"` // accept, reject, fulfill, cancel
	Notes  *string `json:"notes,omitempty"`
}

type OrderDetailResponse struct {
	models.Order
	Items []models.OrderItem `json:"items"`
}

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterAsAdminRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type LoginResult struct {
	Token string `json:"token"`
}

type RegisterResult struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}
