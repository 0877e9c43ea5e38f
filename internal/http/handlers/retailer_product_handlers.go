package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/princesinghgemini-dotcom/veto/internal/cache"
	"github.com/princesinghgemini-dotcom/veto/internal/models"
	"github.com/princesinghgemini-dotcom/veto/internal/repo"
)

func retailerProductsKey(retailerID string) string {
	return cache.OwnedKey(cache.KeyRetailers+":products", retailerID)
}

// GetRetailerProductsHandler godoc
// @Summary List product mappings of a retailer
// @Tags retailer-products
// @Produce json
// @Security BearerAuth
// @Param id path string true "Retailer ID"
// @Success 200 {array} models.RetailerProduct
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Retailer not found"
// @Failure 500 {string} string "Internal error"
// @Router /admin/retailers/{id}/products [get]
func GetRetailerProductsHandler(w http.ResponseWriter, r *http.Request) {
	retailerID, err := uuidParam(r, "id")
	if err != nil {
		http.Error(w, "invalid retailer ID", http.StatusBadRequest)
		return
	}

	if _, err := retailerRepo.GetByID(retailerID); err != nil {
		if errors.Is(err, repo.ErrRetailerNotFound) {
			http.Error(w, "retailer not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch retailer", http.StatusInternalServerError)
		return
	}

	key := retailerProductsKey(retailerID.String())
	if serveCachedList(w, key) {
		return
	}

	mappings, err := retailerProductRepo.GetByRetailer(retailerID)
	if err != nil {
		http.Error(w, "could not fetch retailer products", http.StatusInternalServerError)
		return
	}
	if mappings == nil {
		mappings = []models.RetailerProduct{}
	}
	writeListJSON(w, key, mappings)
}

// CreateRetailerProductHandler godoc
// @Summary Map a product variant to a retailer
// @Tags retailer-products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Retailer ID"
// @Param mapping body RetailerProductCreateRequest true "Mapping to add"
// @Success 201 {object} models.RetailerProduct
// @Failure 400 {object} []ValidationError
// @Failure 404 {string} string "Retailer not found"
// @Failure 409 {string} string "Mapping already exists"
// @Failure 500 {string} string "Internal error"
// @Router /admin/retailers/{id}/products [post]
func CreateRetailerProductHandler(w http.ResponseWriter, r *http.Request) {
	retailerID, err := uuidParam(r, "id")
	if err != nil {
		http.Error(w, "invalid retailer ID", http.StatusBadRequest)
		return
	}

	var req RetailerProductCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateRetailerProduct(req)
	if len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	if _, err := retailerRepo.GetByID(retailerID); err != nil {
		if errors.Is(err, repo.ErrRetailerNotFound) {
			http.Error(w, "retailer not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch retailer", http.StatusInternalServerError)
		return
	}

	if _, err := variantRepo.GetByID(req.ProductVariantID); err != nil {
		if errors.Is(err, repo.ErrVariantNotFound) {
			http.Error(w, "product variant not found", http.StatusBadRequest)
			return
		}
		http.Error(w, "could not fetch variant", http.StatusInternalServerError)
		return
	}

	if _, err := retailerProductRepo.GetRetailerVariant(retailerID, req.ProductVariantID); err == nil {
		http.Error(w, "product already mapped to this retailer", http.StatusConflict)
		return
	} else if !errors.Is(err, repo.ErrMappingNotFound) {
		http.Error(w, "could not check mapping", http.StatusInternalServerError)
		return
	}

	isAvailable := true
	if req.IsAvailable != nil {
		isAvailable = *req.IsAvailable
	}

	created, err := retailerProductRepo.Create(models.RetailerProduct{
		RetailerID:       retailerID,
		ProductVariantID: req.ProductVariantID,
		Price:            req.Price,
		StockQuantity:    req.StockQuantity,
		IsAvailable:      isAvailable,
	})
	if err != nil {
		if errors.Is(err, repo.ErrDuplicatedValueUnique) {
			http.Error(w, "product already mapped to this retailer", http.StatusConflict)
			return
		}
		http.Error(w, "could not create retailer product", http.StatusInternalServerError)
		return
	}

	invalidateLists(retailerProductsKey(retailerID.String()))
	writeJSON(w, http.StatusCreated, created)
}

// UpdateRetailerProductHandler godoc
// @Summary Update a retailer-product mapping
// @Tags retailer-products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Mapping ID"
// @Param mapping body RetailerProductUpdateRequest true "Fields to update"
// @Success 200 {object} models.RetailerProduct
// @Failure 400 {string} string "Invalid input"
// @Failure 404 {string} string "Mapping not found"
// @Failure 500 {string} string "Internal error"
// @Router /admin/retailer-products/{id} [patch]
func UpdateRetailerProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		http.Error(w, "invalid mapping ID", http.StatusBadRequest)
		return
	}

	var req RetailerProductUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	mapping, err := retailerProductRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrMappingNotFound) {
			http.Error(w, "mapping not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch mapping", http.StatusInternalServerError)
		return
	}

	if req.Price != nil {
		if *req.Price <= 0 {
			http.Error(w, "price must be greater than zero", http.StatusBadRequest)
			return
		}
		mapping.Price = *req.Price
	}
	if req.StockQuantity != nil {
		if *req.StockQuantity < 0 {
			http.Error(w, "stock quantity cannot be negative", http.StatusBadRequest)
			return
		}
		mapping.StockQuantity = *req.StockQuantity
	}
	if req.IsAvailable != nil {
		mapping.IsAvailable = *req.IsAvailable
	}

	updated, err := retailerProductRepo.Update(mapping)
	if err != nil {
		if errors.Is(err, repo.ErrMappingNotFound) {
			http.Error(w, "mapping not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not update mapping", http.StatusInternalServerError)
		return
	}

	invalidateLists(retailerProductsKey(mapping.RetailerID.String()))
	writeJSON(w, http.StatusOK, updated)
}
