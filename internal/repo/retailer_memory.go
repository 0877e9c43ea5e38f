package repo

import (
	"time"

	"github.com/google/uuid"
	"github.com/princesinghgemini-dotcom/veto/internal/models"
)

// InMemoryRetailerRepository is an in-memory implementation of RetailerRepository.
type InMemoryRetailerRepository struct {
	retailers []models.Retailer
}

func NewInMemoryRetailerRepository() *InMemoryRetailerRepository {
	return &InMemoryRetailerRepository{retailers: []models.Retailer{}}
}

func (r *InMemoryRetailerRepository) Create(rt models.Retailer) (models.Retailer, error) {
	rt.ID = uuid.New()
	rt.CreatedAt = time.Now().UTC()
	r.retailers = append(r.retailers, rt)
	return rt, nil
}

func (r *InMemoryRetailerRepository) GetAll() ([]models.Retailer, error) {
	return r.retailers, nil
}

func (r *InMemoryRetailerRepository) GetByID(id uuid.UUID) (models.Retailer, error) {
	for _, rt := range r.retailers {
		if rt.ID == id {
			return rt, nil
		}
	}
	return models.Retailer{}, ErrRetailerNotFound
}

func (r *InMemoryRetailerRepository) Update(rt models.Retailer) (models.Retailer, error) {
	for i, existing := range r.retailers {
		if existing.ID == rt.ID {
			rt.CreatedAt = existing.CreatedAt
			r.retailers[i] = rt
			return rt, nil
		}
	}
	return models.Retailer{}, ErrRetailerNotFound
}

func (r *InMemoryRetailerRepository) Clear() {
	r.retailers = []models.Retailer{}
}
