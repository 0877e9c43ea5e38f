package repo

import "errors"

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrVariantNotFound  = errors.New("variant not found")
	ErrRetailerNotFound = errors.New("retailer not found")
	ErrMappingNotFound  = errors.New("retailer product not found")
	ErrOrderNotFound    = errors.New("order not found")
	ErrUserNotFound     = errors.New("user not found")

	// ErrDuplicatedValueUnique is returned when an insert or update violates
	// a unique constraint (variant SKU, retailer/variant mapping, username).
	ErrDuplicatedValueUnique = errors.New("duplicated value for unique column")
)
