package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/princesinghgemini-dotcom/veto/internal/cache"
	"github.com/princesinghgemini-dotcom/veto/internal/models"
	"github.com/princesinghgemini-dotcom/veto/internal/repo"
)

// GetVariantsHandler godoc
// @Summary List variants of a product
// @Tags variants
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {array} models.ProductVariant
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Product not found"
// @Failure 500 {string} string "Internal error"
// @Router /admin/products/{id}/variants [get]
func GetVariantsHandler(w http.ResponseWriter, r *http.Request) {
	productID, err := uuidParam(r, "id")
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	if _, err := productRepo.GetByID(productID); err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch product", http.StatusInternalServerError)
		return
	}

	key := cache.OwnedKey(cache.KeyProducts+":variants", productID.String())
	if serveCachedList(w, key) {
		return
	}

	variants, err := variantRepo.GetByProduct(productID)
	if err != nil {
		http.Error(w, "could not fetch variants", http.StatusInternalServerError)
		return
	}
	if variants == nil {
		variants = []models.ProductVariant{}
	}
	writeListJSON(w, key, variants)
}

// CreateVariantHandler godoc
// @Summary Create a variant for a product
// @Tags variants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param variant body VariantCreateRequest true "Variant to add"
// @Success 201 {object} models.ProductVariant
// @Failure 400 {object} []ValidationError
// @Failure 404 {string} string "Product not found"
// @Failure 409 {string} string "SKU already exists"
// @Failure 500 {string} string "Internal error"
// @Router /admin/products/{id}/variants [post]
func CreateVariantHandler(w http.ResponseWriter, r *http.Request) {
	productID, err := uuidParam(r, "id")
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	var req VariantCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateVariant(req)
	if len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	if _, err := productRepo.GetByID(productID); err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch product", http.StatusInternalServerError)
		return
	}

	if _, err := variantRepo.GetBySKU(req.SKU); err == nil {
		http.Error(w, "SKU already exists", http.StatusConflict)
		return
	} else if !errors.Is(err, repo.ErrVariantNotFound) {
		http.Error(w, "could not check SKU", http.StatusInternalServerError)
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	created, err := variantRepo.Create(models.ProductVariant{
		ProductID: productID,
		SKU:       req.SKU,
		Name:      req.Name,
		UnitSize:  req.UnitSize,
		UnitType:  req.UnitType,
		BasePrice: req.BasePrice,
		IsActive:  isActive,
	})
	if err != nil {
		if errors.Is(err, repo.ErrDuplicatedValueUnique) {
			http.Error(w, "SKU already exists", http.StatusConflict)
			return
		}
		http.Error(w, "could not create variant", http.StatusInternalServerError)
		return
	}

	invalidateLists(cache.OwnedKey(cache.KeyProducts+":variants", productID.String()))
	writeJSON(w, http.StatusCreated, created)
}

// UpdateVariantHandler godoc
// @Summary Update a variant
// @Tags variants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Variant ID"
// @Param variant body VariantUpdateRequest true "Fields to update"
// @Success 200 {object} models.ProductVariant
// @Failure 400 {string} string "Invalid input"
// @Failure 404 {string} string "Variant not found"
// @Failure 409 {string} string "SKU already exists"
// @Failure 500 {string} string "Internal error"
// @Router /admin/products/variants/{id} [patch]
func UpdateVariantHandler(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		http.Error(w, "invalid variant ID", http.StatusBadRequest)
		return
	}

	var req VariantUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	variant, err := variantRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrVariantNotFound) {
			http.Error(w, "variant not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch variant", http.StatusInternalServerError)
		return
	}

	if req.SKU != nil && *req.SKU != variant.SKU {
		if _, err := variantRepo.GetBySKU(*req.SKU); err == nil {
			http.Error(w, "SKU already exists", http.StatusConflict)
			return
		} else if !errors.Is(err, repo.ErrVariantNotFound) {
			http.Error(w, "could not check SKU", http.StatusInternalServerError)
			return
		}
		variant.SKU = *req.SKU
	}
	if req.Name != nil {
		variant.Name = req.Name
	}
	if req.UnitSize != nil {
		variant.UnitSize = req.UnitSize
	}
	if req.UnitType != nil {
		variant.UnitType = req.UnitType
	}
	if req.BasePrice != nil {
		variant.BasePrice = req.BasePrice
	}
	if req.IsActive != nil {
		variant.IsActive = *req.IsActive
	}

	updated, err := variantRepo.Update(variant)
	if err != nil {
		if errors.Is(err, repo.ErrVariantNotFound) {
			http.Error(w, "variant not found", http.StatusNotFound)
			return
		}
		if errors.Is(err, repo.ErrDuplicatedValueUnique) {
			http.Error(w, "SKU already exists", http.StatusConflict)
			return
		}
		http.Error(w, "could not update variant", http.StatusInternalServerError)
		return
	}

	invalidateLists(cache.OwnedKey(cache.KeyProducts+":variants", variant.ProductID.String()))
	writeJSON(w, http.StatusOK, updated)
}
