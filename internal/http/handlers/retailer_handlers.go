package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/princesinghgemini-dotcom/veto/internal/cache"
	"github.com/princesinghgemini-dotcom/veto/internal/models"
	"github.com/princesinghgemini-dotcom/veto/internal/repo"
)

// GetRetailersHandler godoc
// @Summary List retailers
// @Tags retailers
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Retailer
// @Failure 500 {string} string "Internal error"
// @Router /admin/retailers [get]
func GetRetailersHandler(w http.ResponseWriter, r *http.Request) {
	if serveCachedList(w, cache.KeyRetailers) {
		return
	}

	retailers, err := retailerRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch retailers", http.StatusInternalServerError)
		return
	}
	if retailers == nil {
		retailers = []models.Retailer{}
	}
	writeListJSON(w, cache.KeyRetailers, retailers)
}

// CreateRetailerHandler godoc
// @Summary Create a retailer
// @Tags retailers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param retailer body RetailerCreateRequest true "Retailer to add"
// @Success 201 {object} models.Retailer
// @Failure 400 {object} []ValidationError
// @Failure 500 {string} string "Internal error"
// @Router /admin/retailers [post]
func CreateRetailerHandler(w http.ResponseWriter, r *http.Request) {
	var req RetailerCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateRetailer(req)
	if len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	created, err := retailerRepo.Create(models.Retailer{
		Name:        req.Name,
		Phone:       req.Phone,
		Email:       req.Email,
		Address:     req.Address,
		LocationLat: req.LocationLat,
		LocationLng: req.LocationLng,
		IsActive:    isActive,
	})
	if err != nil {
		http.Error(w, "could not create retailer", http.StatusInternalServerError)
		return
	}

	invalidateLists(cache.KeyRetailers)
	writeJSON(w, http.StatusCreated, created)
}

// UpdateRetailerHandler godoc
// @Summary Update a retailer
// @Tags retailers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Retailer ID"
// @Param retailer body RetailerUpdateRequest true "Fields to update"
// @Success 200 {object} models.Retailer
// @Failure 400 {string} string "Invalid input"
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /admin/retailers/{id} [patch]
func UpdateRetailerHandler(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		http.Error(w, "invalid retailer ID", http.StatusBadRequest)
		return
	}

	var req RetailerUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	retailer, err := retailerRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrRetailerNotFound) {
			http.Error(w, "retailer not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch retailer", http.StatusInternalServerError)
		return
	}

	if req.Name != nil {
		retailer.Name = *req.Name
	}
	if req.Phone != nil {
		retailer.Phone = req.Phone
	}
	if req.Email != nil {
		retailer.Email = req.Email
	}
	if req.Address != nil {
		retailer.Address = req.Address
	}
	if req.LocationLat != nil {
		retailer.LocationLat = req.LocationLat
	}
	if req.LocationLng != nil {
		retailer.LocationLng = req.LocationLng
	}
	if req.IsActive != nil {
		retailer.IsActive = *req.IsActive
	}

	updated, err := retailerRepo.Update(retailer)
	if err != nil {
		if errors.Is(err, repo.ErrRetailerNotFound) {
			http.Error(w, "retailer not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not update retailer", http.StatusInternalServerError)
		return
	}

	invalidateLists(cache.KeyRetailers)
	writeJSON(w, http.StatusOK, updated)
}
