package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/princesinghgemini-dotcom/veto/internal/cache"
	"github.com/princesinghgemini-dotcom/veto/internal/models"
	"github.com/princesinghgemini-dotcom/veto/internal/repo"
)

// GetProductsHandler godoc
// @Summary List products
// @Description Lists all products, optionally filtered by category and active flag
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param category_id query string false "Filter by category"
// @Param is_active query bool false "Filter by active flag"
// @Success 200 {array} models.Product
// @Failure 400 {string} string "Invalid query"
// @Failure 500 {string} string "Internal error"
// @Router /admin/products [get]
func GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var filter repo.ProductFilter
	if s := q.Get("category_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			http.Error(w, "invalid category_id", http.StatusBadRequest)
			return
		}
		filter.CategoryID = &id
	}
	if s := q.Get("is_active"); s != "" {
		active, err := strconv.ParseBool(s)
		if err != nil {
			http.Error(w, "invalid is_active", http.StatusBadRequest)
			return
		}
		filter.IsActive = &active
	}

	unfiltered := filter.CategoryID == nil && filter.IsActive == nil
	if unfiltered && serveCachedList(w, cache.KeyProducts) {
		return
	}

	products, err := productRepo.GetAll(filter)
	if err != nil {
		http.Error(w, "could not fetch products", http.StatusInternalServerError)
		return
	}
	if products == nil {
		products = []models.Product{}
	}

	key := ""
	if unfiltered {
		key = cache.KeyProducts
	}
	writeListJSON(w, key, products)
}

// CreateProductHandler godoc
// @Summary Create a product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param product body ProductCreateRequest true "Product to add"
// @Success 201 {object} models.Product
// @Failure 400 {object} []ValidationError
// @Failure 500 {string} string "Internal error"
// @Router /admin/products [post]
func CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	var req ProductCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateProduct(req)
	if len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	if req.CategoryID != nil {
		if _, err := categoryRepo.GetByID(*req.CategoryID); err != nil {
			if errors.Is(err, repo.ErrCategoryNotFound) {
				http.Error(w, "category not found", http.StatusBadRequest)
				return
			}
			http.Error(w, "could not fetch category", http.StatusInternalServerError)
			return
		}
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	created, err := productRepo.Create(models.Product{
		CategoryID:   req.CategoryID,
		Name:         req.Name,
		Description:  req.Description,
		Manufacturer: req.Manufacturer,
		IsActive:     isActive,
	})
	if err != nil {
		http.Error(w, "could not create product", http.StatusInternalServerError)
		return
	}

	invalidateLists(cache.KeyProducts)
	writeJSON(w, http.StatusCreated, created)
}

// UpdateProductHandler godoc
// @Summary Update a product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param product body ProductUpdateRequest true "Fields to update"
// @Success 200 {object} models.Product
// @Failure 400 {string} string "Invalid input"
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /admin/products/{id} [patch]
func UpdateProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	var req ProductUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	product, err := productRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch product", http.StatusInternalServerError)
		return
	}

	if req.CategoryID != nil {
		if _, err := categoryRepo.GetByID(*req.CategoryID); err != nil {
			if errors.Is(err, repo.ErrCategoryNotFound) {
				http.Error(w, "category not found", http.StatusBadRequest)
				return
			}
			http.Error(w, "could not fetch category", http.StatusInternalServerError)
			return
		}
		product.CategoryID = req.CategoryID
	}
	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = req.Description
	}
	if req.Manufacturer != nil {
		product.Manufacturer = req.Manufacturer
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	updated, err := productRepo.Update(product)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not update product", http.StatusInternalServerError)
		return
	}

	invalidateLists(cache.KeyProducts)
	writeJSON(w, http.StatusOK, updated)
}
