// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

import (
	"context"
	"errors"
	"time"

	"fixly/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrClientNotFound is a domain-specific error returned when no client
// profile matches the lookup key.
var ErrClientNotFound = errors.New("client not found")

// ClientRepository defines the standard operations for client persistence.
type ClientRepository interface {
	// FindByIdentityUID retrieves a client by the identity provider's uid.
	FindByIdentityUID(ctx context.Context, identityUID string) (*entity.Client, error)

	// FindByID retrieves a client by its row id.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Client, error)

	// Create persists a new client profile.
	Create(ctx context.Context, client *entity.Client) error

	// Update modifies an existing client profile.
	Update(ctx context.Context, client *entity.Client) error

	// Delete removes a client profile. Clients have no downstream
	// references, so no ordering applies.
	Delete(ctx context.Context, id uuid.UUID) error

	// List returns all clients, newest first.
	List(ctx context.Context) ([]*entity.Client, error)

	// Count returns the total number of client profiles.
	Count(ctx context.Context) (int, error)

	// CountCreatedSince returns the number of clients created at or after t.
	CountCreatedSince(ctx context.Context, t time.Time) (int, error)
}
