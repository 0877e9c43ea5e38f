package repo

import (
	"time"

	"github.com/google/uuid"
	"github.com/princesinghgemini-dotcom/veto/internal/models"
)

// InMemoryProductRepository is an in-memory implementation of ProductRepository.
type InMemoryProductRepository struct {
	products []models.Product
}

func NewInMemoryProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{products: []models.Product{}}
}

func (r *InMemoryProductRepository) Create(p models.Product) (models.Product, error) {
	p.ID = uuid.New()
	p.CreatedAt = time.Now().UTC()
	r.products = append(r.products, p)
	return p, nil
}

func (r *InMemoryProductRepository) GetAll(filter ProductFilter) ([]models.Product, error) {
	var products []models.Product
	for _, p := range r.products {
		if filter.CategoryID != nil && (p.CategoryID == nil || *p.CategoryID != *filter.CategoryID) {
			continue
		}
		if filter.IsActive != nil && p.IsActive != *filter.IsActive {
			continue
		}
		products = append(products, p)
	}
	return products, nil
}

func (r *InMemoryProductRepository) GetByID(id uuid.UUID) (models.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

func (r *InMemoryProductRepository) Update(p models.Product) (models.Product, error) {
	for i, existing := range r.products {
		if existing.ID == p.ID {
			now := time.Now().UTC()
			p.CreatedAt = existing.CreatedAt
			p.UpdatedAt = &now
			r.products[i] = p
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

func (r *InMemoryProductRepository) Clear() {
	r.products = []models.Product{}
}
