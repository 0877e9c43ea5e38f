package repo

import (
	"time"

	"github.com/google/uuid"
	"github.com/princesinghgemini-dotcom/veto/internal/models"
)

// InMemoryOrderRepository is an in-memory implementation of OrderRepository.
type InMemoryOrderRepository struct {
	orders []models.Order
	items  map[uuid.UUID][]models.OrderItem
}

func NewInMemoryOrderRepository() *InMemoryOrderRepository {
	return &InMemoryOrderRepository{
		orders: []models.Order{},
		items:  map[uuid.UUID][]models.OrderItem{},
	}
}

func (r *InMemoryOrderRepository) Create(o models.Order, items []models.OrderItem) (models.Order, []models.OrderItem, error) {
	o.ID = uuid.New()
	o.CreatedAt = time.Now().UTC()

	created := make([]models.OrderItem, len(items))
	for i, item := range items {
		item.ID = uuid.New()
		item.OrderID = o.ID
		item.CreatedAt = o.CreatedAt
		created[i] = item
	}

	r.orders = append(r.orders, o)
	r.items[o.ID] = created
	return o, created, nil
}

func (r *InMemoryOrderRepository) GetAll(filter OrderFilter) ([]models.Order, error) {
	var orders []models.Order
	for _, o := range r.orders {
		if filter.Status != nil && o.Status != *filter.Status {
			continue
		}
		if filter.RetailerID != nil && o.RetailerID != *filter.RetailerID {
			continue
		}
		if filter.FarmerID != nil && o.FarmerID != *filter.FarmerID {
			continue
		}
		orders = append(orders, o)
	}

	// Newest first, matching the Postgres ordering.
	for i, j := 0, len(orders)-1; i < j; i, j = i+1, j-1 {
		orders[i], orders[j] = orders[j], orders[i]
	}

	offset := 0
	if filter.Offset != nil && *filter.Offset > 0 {
		offset = *filter.Offset
	}
	if offset >= len(orders) {
		return nil, nil
	}
	orders = orders[offset:]

	if filter.Limit != nil && *filter.Limit > 0 && *filter.Limit < len(orders) {
		orders = orders[:*filter.Limit]
	}
	return orders, nil
}

func (r *InMemoryOrderRepository) GetWithItems(id uuid.UUID) (models.Order, []models.OrderItem, error) {
	for _, o := range r.orders {
		if o.ID == id {
			return o, r.items[id], nil
		}
	}
	return models.Order{}, nil, ErrOrderNotFound
}

func (r *InMemoryOrderRepository) UpdateStatus(id uuid.UUID, status string, notes *string) (models.Order, error) {
	for i, o := range r.orders {
		if o.ID == id {
			now := time.Now().UTC()
			o.Status = status
			if notes != nil {
				o.Notes = notes
			}
			o.UpdatedAt = &now
			r.orders[i] = o
			return o, nil
		}
	}
	return models.Order{}, ErrOrderNotFound
}

func (r *InMemoryOrderRepository) Clear() {
	r.orders = []models.Order{}
	r.items = map[uuid.UUID][]models.OrderItem{}
}
