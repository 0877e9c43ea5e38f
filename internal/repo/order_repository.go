package repo

import (
	"github.com/google/uuid"
	"github.com/princesinghgemini-dotcom/veto/internal/models"
)

// OrderFilter narrows order listings. Nil fields are ignored.
type OrderFilter struct {
	Status     *string
	RetailerID *uuid.UUID
	FarmerID   *uuid.UUID
	Offset     *int
	Limit      *int
}

// OrderRepository defines the interface for order data operations. Orders
// are created together with their items.
type OrderRepository interface {
	Create(o models.Order, items []models.OrderItem) (models.Order, []models.OrderItem, error)
	GetAll(filter OrderFilter) ([]models.Order, error)
	GetWithItems(id uuid.UUID) (models.Order, []models.OrderItem, error)
	UpdateStatus(id uuid.UUID, status string, notes *string) (models.Order, error)
}
