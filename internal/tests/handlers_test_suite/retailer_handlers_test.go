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

func TestCreateRetailerHandler_Valid(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	phone := "+254700000000"
	w := createRetailer(r, handler.RetailerCreateRequest{Name: "AgroVet Store", Phone: &phone})

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}

	retailer, err := decodeBody[models.Retailer](w)
	if err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if retailer.Name != "AgroVet Store" {
		t.Errorf("expected name 'AgroVet Store', got %v", retailer.Name)
	}
	if !retailer.IsActive {
		t.Error("expected new retailer to default to active")
	}
}

func TestCreateRetailerHandler_MissingName(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	w := createRetailer(r, handler.RetailerCreateRequest{Name: ""})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 Bad Request, got %d", w.Code)
	}
}

func TestGetRetailersHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	createRetailer(r, handler.RetailerCreateRequest{Name: "AgroVet Store"})
	createRetailer(r, handler.RetailerCreateRequest{Name: "Farm Supplies Ltd"})

	w := doAdmin(r, http.MethodGet, "/admin/retailers", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	retailers, err := decodeBody[[]models.Retailer](w)
	if err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(retailers) != 2 {
		t.Errorf("expected 2 retailers, got %d", len(retailers))
	}
}

func TestUpdateRetailerHandler_Deactivate(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	wr := createRetailer(r, handler.RetailerCreateRequest{Name: "AgroVet Store"})
	retailer, err := decodeBody[models.Retailer](wr)
	if err != nil {
		t.Fatalf("error decoding retailer: %v", err)
	}

	inactive := false
	w := doAdmin(r, http.MethodPatch, fmt.Sprintf("/admin/retailers/%s", retailer.ID),
		handler.RetailerUpdateRequest{IsActive: &inactive})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	updated, err := decodeBody[models.Retailer](w)
	if err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if updated.IsActive {
		t.Error("expected retailer to be deactivated")
	}
}

func TestUpdateRetailerHandler_NotFound(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	name := "Anything"
	w := doAdmin(r, http.MethodPatch, fmt.Sprintf("/admin/retailers/%s", uuid.New()),
		handler.RetailerUpdateRequest{Name: &name})
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 Not Found, got %d", w.Code)
	}
}
