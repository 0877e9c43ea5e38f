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

func TestCreateMappingHandler_Valid(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	retailer, variant, mapping, err := mustSetupCatalog(r)
	if err != nil {
		t.Fatalf("error setting up catalog: %v", err)
	}

	if mapping.RetailerID != retailer.ID {
		t.Errorf("expected mapping bound to retailer %v, got %v", retailer.ID, mapping.RetailerID)
	}
	if mapping.ProductVariantID != variant.ID {
		t.Errorf("expected mapping bound to variant %v, got %v", variant.ID, mapping.ProductVariantID)
	}
	if mapping.Price != 15.0 {
		t.Errorf("expected retailer price 15.0, got %v", mapping.Price)
	}
	if !mapping.IsAvailable {
		t.Error("expected new mapping to default to available")
	}
}

func TestCreateMappingHandler_Duplicate(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	retailer, variant, _, err := mustSetupCatalog(r)
	if err != nil {
		t.Fatalf("error setting up catalog: %v", err)
	}

	w := createMapping(r, retailer.ID, handler.RetailerProductCreateRequest{
		ProductVariantID: variant.ID,
		Price:            14.0,
		StockQuantity:    5,
	})
	if w.Code != http.StatusConflict {
		t.Errorf("expected 409 Conflict for duplicate mapping, got %d", w.Code)
	}
}

func TestCreateMappingHandler_UnknownVariant(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	wr := createRetailer(r, handler.RetailerCreateRequest{Name: "AgroVet Store"})
	retailer, err := decodeBody[models.Retailer](wr)
	if err != nil {
		t.Fatalf("error decoding retailer: %v", err)
	}

	w := createMapping(r, retailer.ID, handler.RetailerProductCreateRequest{
		ProductVariantID: uuid.New(),
		Price:            10.0,
		StockQuantity:    5,
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 Bad Request, got %d", w.Code)
	}
}

func TestCreateMappingHandler_UnknownRetailer(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	w := createMapping(r, uuid.New(), handler.RetailerProductCreateRequest{
		ProductVariantID: uuid.New(),
		Price:            10.0,
		StockQuantity:    5,
	})
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 Not Found, got %d", w.Code)
	}
}

func TestGetRetailerProductsHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	retailer, _, _, err := mustSetupCatalog(r)
	if err != nil {
		t.Fatalf("error setting up catalog: %v", err)
	}

	w := doAdmin(r, http.MethodGet, fmt.Sprintf("/admin/retailers/%s/products", retailer.ID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	mappings, err := decodeBody[[]models.RetailerProduct](w)
	if err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(mappings) != 1 {
		t.Errorf("expected 1 mapping, got %d", len(mappings))
	}
}

func TestUpdateMappingHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	_, _, mapping, err := mustSetupCatalog(r)
	if err != nil {
		t.Fatalf("error setting up catalog: %v", err)
	}

	stock := 50
	w := doAdmin(r, http.MethodPatch, fmt.Sprintf("/admin/retailer-products/%s", mapping.ID),
		handler.RetailerProductUpdateRequest{StockQuantity: &stock})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	updated, err := decodeBody[models.RetailerProduct](w)
	if err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if updated.StockQuantity != 50 {
		t.Errorf("expected stock 50, got %d", updated.StockQuantity)
	}
	if updated.Price != 15.0 {
		t.Errorf("expected untouched price, got %v", updated.Price)
	}
}

func TestUpdateMappingHandler_InvalidPrice(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	_, _, mapping, err := mustSetupCatalog(r)
	if err != nil {
		t.Fatalf("error setting up catalog: %v", err)
	}

	price := 0.0
	w := doAdmin(r, http.MethodPatch, fmt.Sprintf("/admin/retailer-products/%s", mapping.ID),
		handler.RetailerProductUpdateRequest{Price: &price})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 Bad Request, got %d", w.Code)
	}
}
