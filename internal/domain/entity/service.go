package entity

import (
	"time"

	"github.com/google/uuid"
)

// Service is a catalog category (e.g. "plumbing") that workers register
// under. Name uniqueness is a product expectation, not a store constraint.
type Service struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
