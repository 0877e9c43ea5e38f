package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/princesinghgemini-dotcom/veto/internal/cache"
	"github.com/princesinghgemini-dotcom/veto/internal/models"
	"github.com/princesinghgemini-dotcom/veto/internal/repo"
)

// GetCategoriesHandler godoc
// @Summary List categories
// @Description Lists all categories, optionally filtered by parent
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Param parent_id query string false "Filter by parent category"
// @Success 200 {array} models.ProductCategory
// @Failure 400 {string} string "Invalid parent_id"
// @Failure 500 {string} string "Internal error"
// @Router /admin/categories [get]
func GetCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	parentStr := r.URL.Query().Get("parent_id")
	if parentStr != "" {
		parentID, err := uuid.Parse(parentStr)
		if err != nil {
			http.Error(w, "invalid parent_id", http.StatusBadRequest)
			return
		}
		children, err := categoryRepo.GetChildren(parentID)
		if err != nil {
			http.Error(w, "could not fetch categories", http.StatusInternalServerError)
			return
		}
		if children == nil {
			children = []models.ProductCategory{}
		}
		writeListJSON(w, "", children)
		return
	}

	if serveCachedList(w, cache.KeyCategories) {
		return
	}

	categories, err := categoryRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch categories", http.StatusInternalServerError)
		return
	}
	if categories == nil {
		categories = []models.ProductCategory{}
	}
	writeListJSON(w, cache.KeyCategories, categories)
}

// CreateCategoryHandler godoc
// @Summary Create a category
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param category body CategoryCreateRequest true "Category to add"
// @Success 201 {object} models.ProductCategory
// @Failure 400 {object} []ValidationError
// @Failure 500 {string} string "Internal error"
// @Router /admin/categories [post]
func CreateCategoryHandler(w http.ResponseWriter, r *http.Request) {
	var req CategoryCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateCategory(req)
	if len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	if req.ParentID != nil {
		if _, err := categoryRepo.GetByID(*req.ParentID); err != nil {
			if errors.Is(err, repo.ErrCategoryNotFound) {
				http.Error(w, "parent category not found", http.StatusBadRequest)
				return
			}
			http.Error(w, "could not fetch parent category", http.StatusInternalServerError)
			return
		}
	}

	created, err := categoryRepo.Create(models.ProductCategory{
		Name:        req.Name,
		Description: req.Description,
		ParentID:    req.ParentID,
	})
	if err != nil {
		http.Error(w, "could not create category", http.StatusInternalServerError)
		return
	}

	invalidateLists(cache.KeyCategories)
	writeJSON(w, http.StatusCreated, created)
}

// UpdateCategoryHandler godoc
// @Summary Update a category
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Param category body CategoryUpdateRequest true "Fields to update"
// @Success 200 {object} models.ProductCategory
// @Failure 400 {string} string "Invalid input"
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /admin/categories/{id} [patch]
func UpdateCategoryHandler(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		http.Error(w, "invalid category ID", http.StatusBadRequest)
		return
	}

	var req CategoryUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	category, err := categoryRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrCategoryNotFound) {
			http.Error(w, "category not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch category", http.StatusInternalServerError)
		return
	}

	if req.ParentID != nil {
		if *req.ParentID == id {
			http.Error(w, "category cannot be its own parent", http.StatusBadRequest)
			return
		}
		if _, err := categoryRepo.GetByID(*req.ParentID); err != nil {
			if errors.Is(err, repo.ErrCategoryNotFound) {
				http.Error(w, "parent category not found", http.StatusBadRequest)
				return
			}
			http.Error(w, "could not fetch parent category", http.StatusInternalServerError)
			return
		}
		category.ParentID = req.ParentID
	}
	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Description != nil {
		category.Description = req.Description
	}

	updated, err := categoryRepo.Update(category)
	if err != nil {
		if errors.Is(err, repo.ErrCategoryNotFound) {
			http.Error(w, "category not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not update category", http.StatusInternalServerError)
		return
	}

	invalidateLists(cache.KeyCategories)
	writeJSON(w, http.StatusOK, updated)
}
