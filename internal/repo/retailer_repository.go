package repo

import (
	"github.com/google/uuid"
	"github.com/princesinghgemini-dotcom/veto/internal/models"
)

// RetailerRepository defines the interface for retailer data operations.
type RetailerRepository interface {
	Create(rt models.Retailer) (models.Retailer, error)
	GetAll() ([]models.Retailer, error)
	GetByID(id uuid.UUID) (models.Retailer, error)
	Update(rt models.Retailer) (models.Retailer, error)
}

// RetailerProductRepository defines the interface for retailer-product
// mapping data operations.
type RetailerProductRepository interface {
	Create(m models.RetailerProduct) (models.RetailerProduct, error)
	GetByRetailer(retailerID uuid.UUID) ([]models.RetailerProduct, error)
	GetByID(id uuid.UUID) (models.RetailerProduct, error)
	GetRetailerVariant(retailerID, variantID uuid.UUID) (models.RetailerProduct, error)
	Update(m models.RetailerProduct) (models.RetailerProduct, error)
}
