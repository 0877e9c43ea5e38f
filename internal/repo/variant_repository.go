package repo

import (
	"github.com/google/uuid"
	"github.com/princesinghgemini-dotcom/veto/internal/models"
)

// VariantRepository defines the interface for product variant data operations.
type VariantRepository interface {
	Create(v models.ProductVariant) (models.ProductVariant, error)
	GetByProduct(productID uuid.UUID) ([]models.ProductVariant, error)
	GetByID(id uuid.UUID) (models.ProductVariant, error)
	GetBySKU(sku string) (models.ProductVariant, error)
	Update(v models.ProductVariant) (models.ProductVariant, error)
}
