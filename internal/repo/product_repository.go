package repo

import (
	"github.com/google/uuid"
	"github.com/princesinghgemini-dotcom/veto/internal/models"
)

// ProductFilter narrows product listings. Nil fields are ignored.
type ProductFilter struct {
	CategoryID *uuid.UUID
	IsActive   *bool
}

// ProductRepository defines the interface for product data operations.
type ProductRepository interface {
	Create(p models.Product) (models.Product, error)
	GetAll(filter ProductFilter) ([]models.Product, error)
	GetByID(id uuid.UUID) (models.Product, error)
	Update(p models.Product) (models.Product, error)
}
