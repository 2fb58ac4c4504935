// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"fixly/internal/domain/entity"
	"fixly/internal/domain/repository"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateServiceInput defines the data required to add a service category.
type CreateServiceInput struct {
	Name string
}

// RenameServiceInput defines the data required to rename a service category.
// Worker position fields denormalized from the old name are left untouched.
type RenameServiceInput struct {
	ID   uuid.UUID
	Name string
}

// --- Output DTOs ---

// AdminStats aggregates the counts shown on the admin dashboard.
type AdminStats struct {
	TotalClients   int      `json:"totalUsers"`
	TotalWorkers   int      `json:"totalWorkers"`
	ActiveWorkers  int      `json:"activeWorkers"`
	TotalServices  int      `json:"totalServices"`
	TotalFeedbacks int      `json:"totalFeedbacks"`
	RecentSignups  int      `json:"recentSignups"`
	AverageRating  *float64 `json:"averageRating"`
}

// CatalogUsecase defines the interface for catalog browsing and the
// administrative operations that mutate it.
type CatalogUsecase interface {
	// ListServices returns all categories ordered by id.
	ListServices(ctx context.Context) ([]*entity.Service, error)

	// ListServicesWithUsage returns categories with worker counts, by name.
	ListServicesWithUsage(ctx context.Context) ([]*repository.ServiceUsage, error)

	CreateService(ctx context.Context, input CreateServiceInput) (*entity.Service, error)
	RenameService(ctx context.Context, input RenameServiceInput) (*entity.Service, error)

	// DeleteService removes a category only when no worker references it.
	DeleteService(ctx context.Context, id uuid.UUID) error

	// ListWorkers returns the public worker catalog with derived ratings.
	ListWorkers(ctx context.Context) ([]*WorkerWithRating, error)

	// GetWorker returns one worker with its derived rating.
	GetWorker(ctx context.Context, id uuid.UUID) (*WorkerWithRating, error)

	// ToggleWorkerActive flips the availability flag and returns the new value.
	ToggleWorkerActive(ctx context.Context, id uuid.UUID) (*entity.Worker, error)

	// RemoveWorker deletes association rows, then the worker row, then makes a
	// best-effort attempt to remove the provider identity.
	RemoveWorker(ctx context.Context, id uuid.UUID) error

	// ListClients returns all client profiles (admin view).
	ListClients(ctx context.Context) ([]*entity.Client, error)

	// RemoveClient deletes a client profile and best-effort its identity.
	RemoveClient(ctx context.Context, id uuid.UUID) error

	// ListAllFeedback returns every feedback row (admin moderation view).
	ListAllFeedback(ctx context.Context) ([]*entity.Feedback, error)

	// RemoveFeedback deletes a feedback row.
	RemoveFeedback(ctx context.Context, id uuid.UUID) error

	// Stats computes the admin dashboard aggregates.
	Stats(ctx context.Context) (*AdminStats, error)
}
