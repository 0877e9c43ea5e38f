package repo

import (
	"time"

	"github.com/google/uuid"
	"github.com/princesinghgemini-dotcom/veto/internal/models"
)

// InMemoryVariantRepository is an in-memory implementation of VariantRepository.
type InMemoryVariantRepository struct {
	variants []models.ProductVariant
}

func NewInMemoryVariantRepository() *InMemoryVariantRepository {
	return &InMemoryVariantRepository{variants: []models.ProductVariant{}}
}

func (r *InMemoryVariantRepository) Create(v models.ProductVariant) (models.ProductVariant, error) {
	for _, existing := range r.variants {
		if existing.SKU == v.SKU {
			return models.ProductVariant{}, ErrDuplicatedValueUnique
		}
	}
	v.ID = uuid.New()
	v.CreatedAt = time.Now().UTC()
	r.variants = append(r.variants, v)
	return v, nil
}

func (r *InMemoryVariantRepository) GetByProduct(productID uuid.UUID) ([]models.ProductVariant, error) {
	var variants []models.ProductVariant
	for _, v := range r.variants {
		if v.ProductID == productID {
			variants = append(variants, v)
		}
	}
	return variants, nil
}

func (r *InMemoryVariantRepository) GetByID(id uuid.UUID) (models.ProductVariant, error) {
	for _, v := range r.variants {
		if v.ID == id {
			return v, nil
		}
	}
	return models.ProductVariant{}, ErrVariantNotFound
}

func (r *InMemoryVariantRepository) GetBySKU(sku string) (models.ProductVariant, error) {
	for _, v := range r.variants {
		if v.SKU == sku {
			return v, nil
		}
	}
	return models.ProductVariant{}, ErrVariantNotFound
}

func (r *InMemoryVariantRepository) Update(v models.ProductVariant) (models.ProductVariant, error) {
	for _, existing := range r.variants {
		if existing.SKU == v.SKU && existing.ID != v.ID {
			return models.ProductVariant{}, ErrDuplicatedValueUnique
		}
	}
	for i, existing := range r.variants {
		if existing.ID == v.ID {
			v.ProductID = existing.ProductID
			v.CreatedAt = existing.CreatedAt
			r.variants[i] = v
			return v, nil
		}
	}
	return models.ProductVariant{}, ErrVariantNotFound
}

func (r *InMemoryVariantRepository) Clear() {
	r.variants = []models.ProductVariant{}
}
