package handlers_test_suite

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	api "github.com/princesinghgemini-dotcom/veto/internal/http"
	handler "github.com/princesinghgemini-dotcom/veto/internal/http/handlers"
	"github.com/princesinghgemini-dotcom/veto/internal/models"
)

func placeOrder(t *testing.T, r http.Handler, retailerID, variantID uuid.UUID, quantity int) handler.OrderDetailResponse {
	t.Helper()

	w := createOrder(r, handler.OrderCreateRequest{
		FarmerID:   uuid.New(),
		RetailerID: retailerID,
		Items:      []handler.OrderItemRequest{{ProductVariantID: variantID, Quantity: quantity}},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created for order, got %d: %s", w.Code, w.Body.String())
	}

	order, err := decodeBody[handler.OrderDetailResponse](w)
	if err != nil {
		t.Fatalf("error decoding order: %v", err)
	}
	return order
}

func TestCreateOrderHandler_PricedFromMapping(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	retailer, variant, _, err := mustSetupCatalog(r)
	if err != nil {
		t.Fatalf("error setting up catalog: %v", err)
	}

	order := placeOrder(t, r, retailer.ID, variant.ID, 3)

	if order.Status != models.OrderStatusPending {
		t.Errorf("expected status pending, got %v", order.Status)
	}
	// Priced from the 15.0 retailer price, not the 12.5 base price.
	if order.TotalAmount != 45.0 {
		t.Errorf("expected total 45.0, got %v", order.TotalAmount)
	}
	if len(order.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(order.Items))
	}
	if order.Items[0].UnitPrice != 15.0 {
		t.Errorf("expected unit price 15.0, got %v", order.Items[0].UnitPrice)
	}
}

func TestCreateOrderHandler_Invalid(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	retailer, variant, mapping, err := mustSetupCatalog(r)
	if err != nil {
		t.Fatalf("error setting up catalog: %v", err)
	}

	tests := []struct {
		name       string
		payload    handler.OrderCreateRequest
		expectCode int
	}{
		{
			name: "No items",
			payload: handler.OrderCreateRequest{
				FarmerID:   uuid.New(),
				RetailerID: retailer.ID,
			},
			expectCode: http.StatusBadRequest,
		},
		{
			name: "Zero quantity",
			payload: handler.OrderCreateRequest{
				FarmerID:   uuid.New(),
				RetailerID: retailer.ID,
				Items:      []handler.OrderItemRequest{{ProductVariantID: variant.ID, Quantity: 0}},
			},
			expectCode: http.StatusBadRequest,
		},
		{
			name: "Unknown retailer",
			payload: handler.OrderCreateRequest{
				FarmerID:   uuid.New(),
				RetailerID: uuid.New(),
				Items:      []handler.OrderItemRequest{{ProductVariantID: variant.ID, Quantity: 1}},
			},
			expectCode: http.StatusBadRequest,
		},
		{
			name: "Unknown variant",
			payload: handler.OrderCreateRequest{
				FarmerID:   uuid.New(),
				RetailerID: retailer.ID,
				Items:      []handler.OrderItemRequest{{ProductVariantID: uuid.New(), Quantity: 1}},
			},
			expectCode: http.StatusBadRequest,
		},
		{
			name: "Quantity above stock",
			payload: handler.OrderCreateRequest{
				FarmerID:   uuid.New(),
				RetailerID: retailer.ID,
				Items:      []handler.OrderItemRequest{{ProductVariantID: variant.ID, Quantity: mapping.StockQuantity + 1}},
			},
			expectCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := createOrder(r, tt.payload)
			if w.Code != tt.expectCode {
				t.Errorf("expected status %d, got %d: %s", tt.expectCode, w.Code, w.Body.String())
			}
		})
	}
}

func TestCreateOrderHandler_InactiveRetailer(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	retailer, variant, _, err := mustSetupCatalog(r)
	if err != nil {
		t.Fatalf("error setting up catalog: %v", err)
	}

	inactive := false
	doAdmin(r, http.MethodPatch, fmt.Sprintf("/admin/retailers/%s", retailer.ID),
		handler.RetailerUpdateRequest{IsActive: &inactive})

	w := createOrder(r, handler.OrderCreateRequest{
		FarmerID:   uuid.New(),
		RetailerID: retailer.ID,
		Items:      []handler.OrderItemRequest{{ProductVariantID: variant.ID, Quantity: 1}},
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 Bad Request for inactive retailer, got %d", w.Code)
	}
}

func TestGetOrdersHandler_Filtered(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	retailer, variant, _, err := mustSetupCatalog(r)
	if err != nil {
		t.Fatalf("error setting up catalog: %v", err)
	}

	order := placeOrder(t, r, retailer.ID, variant.ID, 1)
	placeOrder(t, r, retailer.ID, variant.ID, 2)

	doAdmin(r, http.MethodPatch, fmt.Sprintf("/admin/orders/%s", order.ID),
		handler.OrderStatusUpdateRequest{Action: "accept"})

	w := doAdmin(r, http.MethodGet, "/admin/orders?status=accepted", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	accepted, err := decodeBody[[]models.Order](w)
	if err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(accepted) != 1 || accepted[0].ID != order.ID {
		t.Errorf("expected only the accepted order, got %v", accepted)
	}

	w = doAdmin(r, http.MethodGet, "/admin/orders?limit=1", nil)
	limited, err := decodeBody[[]models.Order](w)
	if err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("expected 1 order with limit=1, got %d", len(limited))
	}
}

func TestGetOrderByIDHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	retailer, variant, _, err := mustSetupCatalog(r)
	if err != nil {
		t.Fatalf("error setting up catalog: %v", err)
	}
	order := placeOrder(t, r, retailer.ID, variant.ID, 2)

	w := doAdmin(r, http.MethodGet, fmt.Sprintf("/admin/orders/%s", order.ID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	detail, err := decodeBody[handler.OrderDetailResponse](w)
	if err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if detail.ID != order.ID {
		t.Errorf("expected order %v, got %v", order.ID, detail.ID)
	}
	if len(detail.Items) != 1 {
		t.Errorf("expected 1 item, got %d", len(detail.Items))
	}
}

func TestGetOrderByIDHandler_NotFound(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	w := doAdmin(r, http.MethodGet, fmt.Sprintf("/admin/orders/%s", uuid.New()), nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 Not Found, got %d", w.Code)
	}
}

func TestUpdateOrderStatusHandler_Lifecycle(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	retailer, variant, _, err := mustSetupCatalog(r)
	if err != nil {
		t.Fatalf("error setting up catalog: %v", err)
	}
	order := placeOrder(t, r, retailer.ID, variant.ID, 1)

	w := doAdmin(r, http.MethodPatch, fmt.Sprintf("/admin/orders/%s", order.ID),
		handler.OrderStatusUpdateRequest{Action: "accept"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK for accept, got %d: %s", w.Code, w.Body.String())
	}
	accepted, err := decodeBody[models.Order](w)
	if err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if accepted.Status != models.OrderStatusAccepted {
		t.Errorf("expected status accepted, got %v", accepted.Status)
	}

	notes := "picked up at the counter"
	w = doAdmin(r, http.MethodPatch, fmt.Sprintf("/admin/orders/%s", order.ID),
		handler.OrderStatusUpdateRequest{Action: "fulfill", Notes: &notes})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK for fulfill, got %d: %s", w.Code, w.Body.String())
	}
	fulfilled, err := decodeBody[models.Order](w)
	if err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if fulfilled.Status != models.OrderStatusFulfilled {
		t.Errorf("expected status fulfilled, got %v", fulfilled.Status)
	}
	if fulfilled.Notes == nil || *fulfilled.Notes != notes {
		t.Errorf("expected notes %q, got %v", notes, fulfilled.Notes)
	}
}

func TestUpdateOrderStatusHandler_InvalidAction(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	retailer, variant, _, err := mustSetupCatalog(r)
	if err != nil {
		t.Fatalf("error setting up catalog: %v", err)
	}
	order := placeOrder(t, r, retailer.ID, variant.ID, 1)

	w := doAdmin(r, http.MethodPatch, fmt.Sprintf("/admin/orders/%s", order.ID),
		handler.OrderStatusUpdateRequest{Action: "ship"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 Bad Request for unknown action, got %d", w.Code)
	}
}

func TestUpdateOrderStatusHandler_InvalidTransition(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	retailer, variant, _, err := mustSetupCatalog(r)
	if err != nil {
		t.Fatalf("error setting up catalog: %v", err)
	}
	order := placeOrder(t, r, retailer.ID, variant.ID, 1)

	// A pending order cannot be fulfilled directly.
	w := doAdmin(r, http.MethodPatch, fmt.Sprintf("/admin/orders/%s", order.ID),
		handler.OrderStatusUpdateRequest{Action: "fulfill"})
	if w.Code != http.StatusConflict {
		t.Errorf("expected 409 Conflict, got %d", w.Code)
	}

	doAdmin(r, http.MethodPatch, fmt.Sprintf("/admin/orders/%s", order.ID),
		handler.OrderStatusUpdateRequest{Action: "reject"})

	// Rejected is terminal.
	w = doAdmin(r, http.MethodPatch, fmt.Sprintf("/admin/orders/%s", order.ID),
		handler.OrderStatusUpdateRequest{Action: "accept"})
	if w.Code != http.StatusConflict {
		t.Errorf("expected 409 Conflict for terminal order, got %d", w.Code)
	}
}

func TestCreateOrderHandler_DoesNotDecrementStock(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	retailer, variant, mapping, err := mustSetupCatalog(r)
	if err != nil {
		t.Fatalf("error setting up catalog: %v", err)
	}

	placeOrder(t, r, retailer.ID, variant.ID, 5)

	w := doAdmin(r, http.MethodGet, fmt.Sprintf("/admin/retailers/%s/products", retailer.ID), nil)
	mappings, err := decodeBody[[]models.RetailerProduct](w)
	if err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(mappings) != 1 || mappings[0].StockQuantity != mapping.StockQuantity {
		t.Errorf("expected stock %d untouched, got %v", mapping.StockQuantity, mappings)
	}
}
