package handlers

import (
	"strings"
)

type ValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func validateCategory(req CategoryCreateRequest) []ValidationError {
	errs := []ValidationError{}
	if strings.TrimSpace(req.Name) == "" {
		errs = append(errs, ValidationError{Field: "Name", Description: "Name is required"})
	}
	return errs
}

func validateProduct(req ProductCreateRequest) []ValidationError {
	errs := []ValidationError{}
	if strings.TrimSpace(req.Name) == "" {
		errs = append(errs, ValidationError{Field: "Name", Description: "Name is required"})
	}
	return errs
}

func validateVariant(req VariantCreateRequest) []ValidationError {
	errs := []ValidationError{}
	if strings.TrimSpace(req.SKU) == "" {
		errs = append(errs, ValidationError{Field: "SKU", Description: "SKU is required"})
	}
	if req.BasePrice != nil && *req.BasePrice < 0 {
		errs = append(errs, ValidationError{Field: "BasePrice", Description: "Base price cannot be negative"})
	}
	return errs
}

func validateRetailer(req RetailerCreateRequest) []ValidationError {
	errs := []ValidationError{}
	if strings.TrimSpace(req.Name) == "" {
		errs = append(errs, ValidationError{Field: "Name", Description: "Name is required"})
	}
	return errs
}

func validateRetailerProduct(req RetailerProductCreateRequest) []ValidationError {
	errs := []ValidationError{}
	if req.Price <= 0 {
		errs = append(errs, ValidationError{Field: "Price", Description: "Price must be greater than zero"})
	}
	if req.StockQuantity < 0 {
		errs = append(errs, ValidationError{Field: "StockQuantity", Description: "Stock quantity cannot be negative"})
	}
	return errs
}

func validateOrder(req OrderCreateRequest) []ValidationError {
	errs := []ValidationError{}
	if len(req.Items) == 0 {
		errs = append(errs, ValidationError{Field: "Items", Description: "Order must have at least one item"})
	}
	for _, item := range req.Items {
		if item.Quantity <= 0 {
			errs = append(errs, ValidationError{Field: "Items", Description: "Item quantity must be greater than zero"})
			break
		}
	}
	return errs
}
