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

func TestCreateVariantHandler_Valid(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	wp := createProduct(r, handler.ProductCreateRequest{Name: "Oxytetracycline LA"})
	product, err := decodeBody[models.Product](wp)
	if err != nil {
		t.Fatalf("error decoding product: %v", err)
	}

	price := 12.5
	w := createVariant(r, product.ID, handler.VariantCreateRequest{
		SKU:       "OXY-LA-100",
		UnitSize:  ptr("100"),
		UnitType:  ptr("ml"),
		BasePrice: &price,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}

	variant, err := decodeBody[models.ProductVariant](w)
	if err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if variant.SKU != "OXY-LA-100" {
		t.Errorf("expected SKU 'OXY-LA-100', got %v", variant.SKU)
	}
	if variant.ProductID != product.ID {
		t.Errorf("expected variant bound to product %v, got %v", product.ID, variant.ProductID)
	}
}

func TestCreateVariantHandler_DuplicateSKU(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	wp := createProduct(r, handler.ProductCreateRequest{Name: "Oxytetracycline LA"})
	product, err := decodeBody[models.Product](wp)
	if err != nil {
		t.Fatalf("error decoding product: %v", err)
	}

	w1 := createVariant(r, product.ID, handler.VariantCreateRequest{SKU: "OXY-LA-100"})
	if w1.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w1.Code)
	}

	w2 := createVariant(r, product.ID, handler.VariantCreateRequest{SKU: "OXY-LA-100"})
	if w2.Code != http.StatusConflict {
		t.Errorf("expected 409 Conflict for duplicate SKU, got %d", w2.Code)
	}
}

func TestCreateVariantHandler_ProductNotFound(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	w := createVariant(r, uuid.New(), handler.VariantCreateRequest{SKU: "ORPHAN-1"})
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 Not Found, got %d", w.Code)
	}
}

func TestGetVariantsHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	wp := createProduct(r, handler.ProductCreateRequest{Name: "Oxytetracycline LA"})
	product, err := decodeBody[models.Product](wp)
	if err != nil {
		t.Fatalf("error decoding product: %v", err)
	}

	createVariant(r, product.ID, handler.VariantCreateRequest{SKU: "OXY-LA-100"})
	createVariant(r, product.ID, handler.VariantCreateRequest{SKU: "OXY-LA-250"})

	w := doAdmin(r, http.MethodGet, fmt.Sprintf("/admin/products/%s/variants", product.ID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	variants, err := decodeBody[[]models.ProductVariant](w)
	if err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(variants) != 2 {
		t.Errorf("expected 2 variants, got %d", len(variants))
	}
}

func TestUpdateVariantHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	wp := createProduct(r, handler.ProductCreateRequest{Name: "Oxytetracycline LA"})
	product, err := decodeBody[models.Product](wp)
	if err != nil {
		t.Fatalf("error decoding product: %v", err)
	}

	wv := createVariant(r, product.ID, handler.VariantCreateRequest{SKU: "OXY-LA-100"})
	variant, err := decodeBody[models.ProductVariant](wv)
	if err != nil {
		t.Fatalf("error decoding variant: %v", err)
	}

	price := 13.75
	w := doAdmin(r, http.MethodPatch, fmt.Sprintf("/admin/products/variants/%s", variant.ID),
		handler.VariantUpdateRequest{BasePrice: &price})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	updated, err := decodeBody[models.ProductVariant](w)
	if err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if updated.BasePrice == nil || *updated.BasePrice != 13.75 {
		t.Errorf("expected base price 13.75, got %v", updated.BasePrice)
	}
	if updated.SKU != "OXY-LA-100" {
		t.Errorf("expected untouched SKU, got %v", updated.SKU)
	}
}

func TestUpdateVariantHandler_SKUTakenByOther(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	wp := createProduct(r, handler.ProductCreateRequest{Name: "Oxytetracycline LA"})
	product, err := decodeBody[models.Product](wp)
	if err != nil {
		t.Fatalf("error decoding product: %v", err)
	}

	createVariant(r, product.ID, handler.VariantCreateRequest{SKU: "OXY-LA-100"})
	wv := createVariant(r, product.ID, handler.VariantCreateRequest{SKU: "OXY-LA-250"})
	variant, err := decodeBody[models.ProductVariant](wv)
	if err != nil {
		t.Fatalf("error decoding variant: %v", err)
	}

	taken := "OXY-LA-100"
	w := doAdmin(r, http.MethodPatch, fmt.Sprintf("/admin/products/variants/%s", variant.ID),
		handler.VariantUpdateRequest{SKU: &taken})
	if w.Code != http.StatusConflict {
		t.Errorf("expected 409 Conflict, got %d", w.Code)
	}
}
