package repo

import (
	"time"

	"github.com/google/uuid"
	"github.com/princesinghgemini-dotcom/veto/internal/models"
)

// InMemoryRetailerProductRepository is an in-memory implementation of
// RetailerProductRepository.
type InMemoryRetailerProductRepository struct {
	mappings []models.RetailerProduct
}

func NewInMemoryRetailerProductRepository() *InMemoryRetailerProductRepository {
	return &InMemoryRetailerProductRepository{mappings: []models.RetailerProduct{}}
}

func (r *InMemoryRetailerProductRepository) Create(m models.RetailerProduct) (models.RetailerProduct, error) {
	for _, existing := range r.mappings {
		if existing.RetailerID == m.RetailerID && existing.ProductVariantID == m.ProductVariantID {
			return models.RetailerProduct{}, ErrDuplicatedValueUnique
		}
	}
	m.ID = uuid.New()
	m.CreatedAt = time.Now().UTC()
	r.mappings = append(r.mappings, m)
	return m, nil
}

func (r *InMemoryRetailerProductRepository) GetByRetailer(retailerID uuid.UUID) ([]models.RetailerProduct, error) {
	var mappings []models.RetailerProduct
	for _, m := range r.mappings {
		if m.RetailerID == retailerID {
			mappings = append(mappings, m)
		}
	}
	return mappings, nil
}

func (r *InMemoryRetailerProductRepository) GetByID(id uuid.UUID) (models.RetailerProduct, error) {
	for _, m := range r.mappings {
		if m.ID == id {
			return m, nil
		}
	}
	return models.RetailerProduct{}, ErrMappingNotFound
}

func (r *InMemoryRetailerProductRepository) GetRetailerVariant(retailerID, variantID uuid.UUID) (models.RetailerProduct, error) {
	for _, m := range r.mappings {
		if m.RetailerID == retailerID && m.ProductVariantID == variantID {
			return m, nil
		}
	}
	return models.RetailerProduct{}, ErrMappingNotFound
}

func (r *InMemoryRetailerProductRepository) Update(m models.RetailerProduct) (models.RetailerProduct, error) {
	for i, existing := range r.mappings {
		if existing.ID == m.ID {
			now := time.Now().UTC()
			m.RetailerID = existing.RetailerID
			m.ProductVariantID = existing.ProductVariantID
			m.CreatedAt = existing.CreatedAt
			m.UpdatedAt = &now
			r.mappings[i] = m
			return m, nil
		}
	}
	return models.RetailerProduct{}, ErrMappingNotFound
}

func (r *InMemoryRetailerProductRepository) Clear() {
	r.mappings = []models.RetailerProduct{}
}
