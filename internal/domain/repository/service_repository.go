package repository

import (
	"context"
	"errors"

	"fixly/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrServiceNotFound is a domain-specific error returned when no service
// category matches the lookup key.
var ErrServiceNotFound = errors.New("service not found")

// ServiceUsage pairs a category with the number of workers referencing it.
type ServiceUsage struct {
	Service     *entity.Service
	WorkerCount int
}

// ServiceRepository defines the standard operations for service category
// persistence.
type ServiceRepository interface {
	// FindByID retrieves a category by id.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Service, error)

	// Create persists a new category.
	Create(ctx context.Context, service *entity.Service) error

	// Update modifies an existing category (rename). Worker position fields
	// denormalized from the old name are deliberately left alone.
	Update(ctx context.Context, service *entity.Service) error

	// Delete removes a category row. Callers must check CountAssociations
	// first; the guard lives in the use case, not here.
	Delete(ctx context.Context, id uuid.UUID) error

	// List returns all categories ordered by id.
	List(ctx context.Context) ([]*entity.Service, error)

	// ListWithUsage returns all categories with their association counts,
	// ordered by name.
	ListWithUsage(ctx context.Context) ([]*ServiceUsage, error)

	// CountAssociations returns the number of worker-service rows
	// referencing the category.
	CountAssociations(ctx context.Context, serviceID uuid.UUID) (int, error)

	// Count returns the total number of categories.
	Count(ctx context.Context) (int, error)
}
