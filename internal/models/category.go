package models

import (
	"time"

	"github.com/google/uuid"
)

// ProductCategory is a catalog category with a self-referential hierarchy.
type ProductCategory struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Description *string    `json:"description,omitempty"`
	ParentID    *uuid.UUID `json:"parent_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}
