package repo

import (
	"time"

	"github.com/google/uuid"
	"github.com/princesinghgemini-dotcom/veto/internal/models"
)

// InMemoryCategoryRepository is an in-memory implementation of CategoryRepository.
type InMemoryCategoryRepository struct {
	categories []models.ProductCategory
}

func NewInMemoryCategoryRepository() *InMemoryCategoryRepository {
	return &InMemoryCategoryRepository{categories: []models.ProductCategory{}}
}

func (r *InMemoryCategoryRepository) Create(c models.ProductCategory) (models.ProductCategory, error) {
	c.ID = uuid.New()
	c.CreatedAt = time.Now().UTC()
	r.categories = append(r.categories, c)
	return c, nil
}

func (r *InMemoryCategoryRepository) GetAll() ([]models.ProductCategory, error) {
	return r.categories, nil
}

func (r *InMemoryCategoryRepository) GetChildren(parentID uuid.UUID) ([]models.ProductCategory, error) {
	var children []models.ProductCategory
	for _, c := range r.categories {
		if c.ParentID != nil && *c.ParentID == parentID {
			children = append(children, c)
		}
	}
	return children, nil
}

func (r *InMemoryCategoryRepository) GetByID(id uuid.UUID) (models.ProductCategory, error) {
	for _, c := range r.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return models.ProductCategory{}, ErrCategoryNotFound
}

func (r *InMemoryCategoryRepository) Update(c models.ProductCategory) (models.ProductCategory, error) {
	for i, existing := range r.categories {
		if existing.ID == c.ID {
			c.CreatedAt = existing.CreatedAt
			r.categories[i] = c
			return c, nil
		}
	}
	return models.ProductCategory{}, ErrCategoryNotFound
}

func (r *InMemoryCategoryRepository) Clear() {
	r.categories = []models.ProductCategory{}
}
