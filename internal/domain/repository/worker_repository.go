package repository

import (
	"context"
	"errors"

	"fixly/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrWorkerNotFound is a domain-specific error returned when no worker
// profile matches the lookup key.
var ErrWorkerNotFound = errors.New("worker not found")

// WorkerRepository defines the standard operations for worker persistence.
type WorkerRepository interface {
	// FindByIdentityUID retrieves a worker by the identity provider's uid,
	// with its service associations preloaded.
	FindByIdentityUID(ctx context.Context, identityUID string) (*entity.Worker, error)

	// FindByID retrieves a worker by its row id, with associations preloaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Worker, error)

	// Create persists a new worker profile together with one association row
	// per entry in worker.Services, in a single logical step.
	Create(ctx context.Context, worker *entity.Worker) error

	// Update modifies an existing worker profile (associations untouched).
	Update(ctx context.Context, worker *entity.Worker) error

	// DeleteAssociations removes the worker's service association rows.
	// Must be called before Delete; the store enforces the foreign key.
	DeleteAssociations(ctx context.Context, workerID uuid.UUID) error

	// Delete removes the worker row itself.
	Delete(ctx context.Context, id uuid.UUID) error

	// List returns all workers, newest first, with associations preloaded.
	List(ctx context.Context) ([]*entity.Worker, error)

	// Count returns the total number of worker profiles.
	Count(ctx context.Context) (int, error)

	// CountActive returns the number of workers with the availability flag set.
	CountActive(ctx context.Context) (int, error)
}
