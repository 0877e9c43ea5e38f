package repo

import (
	"github.com/google/uuid"
	"github.com/princesinghgemini-dotcom/veto/internal/models"
)

// CategoryRepository defines the interface for category data operations.
type CategoryRepository interface {
	Create(c models.ProductCategory) (models.ProductCategory, error)
	GetAll() ([]models.ProductCategory, error)
	GetChildren(parentID uuid.UUID) ([]models.ProductCategory, error)
	GetByID(id uuid.UUID) (models.ProductCategory, error)
	Update(c models.ProductCategory) (models.ProductCategory, error)
}
