package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/princesinghgemini-dotcom/veto/internal/cache"
	"github.com/princesinghgemini-dotcom/veto/internal/models"
	"github.com/princesinghgemini-dotcom/veto/internal/orders"
	"github.com/princesinghgemini-dotcom/veto/internal/repo"
)

// GetOrdersHandler godoc
// @Summary List orders
// @Description Lists orders with optional status, retailer and farmer filters
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status"
// @Param retailer_id query string false "Filter by retailer"
// @Param farmer_id query string false "Filter by farmer"
// @Param offset query int false "Offset for pagination"
// @Param limit query int false "Limit for pagination"
// @Success 200 {array} models.Order
// @Failure 400 {string} string "Invalid query"
// @Failure 500 {string} string "Internal error"
// @Router /admin/orders [get]
func GetOrdersHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var filter repo.OrderFilter
	if s := q.Get("status"); s != "" {
		filter.Status = &s
	}
	if s := q.Get("retailer_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			http.Error(w, "invalid retailer_id", http.StatusBadRequest)
			return
		}
		filter.RetailerID = &id
	}
	if s := q.Get("farmer_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			http.Error(w, "invalid farmer_id", http.StatusBadRequest)
			return
		}
		filter.FarmerID = &id
	}
	if s := q.Get("offset"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 0 {
			http.Error(w, "offset must be zero or positive", http.StatusBadRequest)
			return
		}
		filter.Offset = &v
	}
	if s := q.Get("limit"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v <= 0 {
			http.Error(w, "limit must be greater than zero", http.StatusBadRequest)
			return
		}
		filter.Limit = &v
	}

	unfiltered := filter.Status == nil && filter.RetailerID == nil && filter.FarmerID == nil &&
		filter.Offset == nil && filter.Limit == nil
	if unfiltered && serveCachedList(w, cache.KeyOrders) {
		return
	}

	results, err := orderRepo.GetAll(filter)
	if err != nil {
		http.Error(w, "could not fetch orders", http.StatusInternalServerError)
		return
	}
	if results == nil {
		results = []models.Order{}
	}

	key := ""
	if unfiltered {
		key = cache.KeyOrders
	}
	writeListJSON(w, key, results)
}

// GetOrderByIDHandler godoc
// @Summary Get order details with items
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} OrderDetailResponse
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /admin/orders/{id} [get]
func GetOrderByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		http.Error(w, "invalid order ID", http.StatusBadRequest)
		return
	}

	order, items, err := orderRepo.GetWithItems(id)
	if err != nil {
		if errors.Is(err, repo.ErrOrderNotFound) {
			http.Error(w, "order not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch order", http.StatusInternalServerError)
		return
	}
	if items == nil {
		items = []models.OrderItem{}
	}

	writeJSON(w, http.StatusOK, OrderDetailResponse{Order: order, Items: items})
}

// CreateOrderHandler godoc
// @Summary Create an order on behalf of a farmer
// @Description Prices every item from the retailer mapping and checks stock
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param order body OrderCreateRequest true "Order to create"
// @Success 201 {object} OrderDetailResponse
// @Failure 400 {string} string "Invalid input"
// @Failure 500 {string} string "Internal error"
// @Router /admin/orders [post]
func CreateOrderHandler(w http.ResponseWriter, r *http.Request) {
	var req OrderCreateRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateOrder(req)
	if len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	retailer, err := retailerRepo.GetByID(req.RetailerID)
	if err != nil {
		if errors.Is(err, repo.ErrRetailerNotFound) {
			http.Error(w, "retailer not found", http.StatusBadRequest)
			return
		}
		http.Error(w, "could not fetch retailer", http.StatusInternalServerError)
		return
	}
	if !retailer.IsActive {
		http.Error(w, "retailer is not active", http.StatusBadRequest)
		return
	}

	items, total, err := priceOrderItems(req.RetailerID, req.Items)
	if err != nil {
		var pe *pricingError
		if errors.As(err, &pe) {
			http.Error(w, pe.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "could not price order items", http.StatusInternalServerError)
		return
	}

	order, createdItems, err := orderRepo.Create(models.Order{
		FarmerID:        req.FarmerID,
		RetailerID:      req.RetailerID,
		DiagnosisCaseID: req.DiagnosisCaseID,
		SourceType:      req.SourceType,
		Status:          models.OrderStatusPending,
		TotalAmount:     total,
		DeliveryAddress: req.DeliveryAddress,
		Notes:           req.Notes,
	}, items)
	if err != nil {
		http.Error(w, "could not create order", http.StatusInternalServerError)
		return
	}

	invalidateLists(cache.KeyOrders)
	writeJSON(w, http.StatusCreated, OrderDetailResponse{Order: order, Items: createdItems})
}

// UpdateOrderStatusHandler godoc
// @Summary Apply a status action to an order
// @Description Actions: accept, reject, fulfill, cancel
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param action body OrderStatusUpdateRequest true "Action to apply"
// @Success 200 {object} models.Order
// @Failure 400 {string} string "Invalid action"
// @Failure 404 {string} string "Not found"
// @Failure 409 {string} string "Transition not allowed"
// @Failure 500 {string} string "Internal error"
// @Router /admin/orders/{id} [patch]
func UpdateOrderStatusHandler(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		http.Error(w, "invalid order ID", http.StatusBadRequest)
		return
	}

	var req OrderStatusUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	target, err := orders.StatusForAction(req.Action)
	if err != nil {
		msg := fmt.Sprintf("invalid action %q, valid actions: %s", req.Action, strings.Join(orders.Actions(), ", "))
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	order, _, err := orderRepo.GetWithItems(id)
	if err != nil {
		if errors.Is(err, repo.ErrOrderNotFound) {
			http.Error(w, "order not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch order", http.StatusInternalServerError)
		return
	}

	if err := orders.ValidateTransition(order.Status, target); err != nil {
		msg := fmt.Sprintf("cannot %s an order with status %q", req.Action, order.Status)
		http.Error(w, msg, http.StatusConflict)
		return
	}

	updated, err := orderRepo.UpdateStatus(id, target, req.Notes)
	if err != nil {
		if errors.Is(err, repo.ErrOrderNotFound) {
			http.Error(w, "order not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not update order", http.StatusInternalServerError)
		return
	}

	invalidateLists(cache.KeyOrders)
	writeJSON(w, http.StatusOK, updated)
}

// pricingError marks item validation failures that map to a 400 response.
type pricingError struct {
	msg string
}

func (e *pricingError) Error() string { return e.msg }

// priceOrderItems validates every requested item against the catalog and
// the retailer's mappings and prices it from the retailer-specific price.
func priceOrderItems(retailerID uuid.UUID, reqs []OrderItemRequest) ([]models.OrderItem, float64, error) {
	items := make([]models.OrderItem, 0, len(reqs))
	var total float64

	for _, item := range reqs {
		variant, err := variantRepo.GetByID(item.ProductVariantID)
		if err != nil {
			if errors.Is(err, repo.ErrVariantNotFound) {
				return nil, 0, &pricingError{msg: fmt.Sprintf("product variant not found: %s", item.ProductVariantID)}
			}
			return nil, 0, err
		}
		if !variant.IsActive {
			return nil, 0, &pricingError{msg: fmt.Sprintf("product variant is not active: %s", item.ProductVariantID)}
		}

		mapping, err := retailerProductRepo.GetRetailerVariant(retailerID, item.ProductVariantID)
		if err != nil {
			if errors.Is(err, repo.ErrMappingNotFound) {
				return nil, 0, &pricingError{msg: fmt.Sprintf("product %s not available at retailer", item.ProductVariantID)}
			}
			return nil, 0, err
		}
		if !mapping.IsAvailable {
			return nil, 0, &pricingError{msg: fmt.Sprintf("product %s is unavailable", item.ProductVariantID)}
		}
		if mapping.StockQuantity < item.Quantity {
			return nil, 0, &pricingError{msg: fmt.Sprintf("insufficient stock for %s, available: %d", item.ProductVariantID, mapping.StockQuantity)}
		}

		items = append(items, models.OrderItem{
			ProductVariantID: item.ProductVariantID,
			Quantity:         item.Quantity,
			UnitPrice:        mapping.Price,
		})
		total += mapping.Price * float64(item.Quantity)
	}

	return items, total, nil
}
