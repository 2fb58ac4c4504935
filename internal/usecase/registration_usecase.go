// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"fixly/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
// ServiceID is only consulted when Role is "worker".
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Phone     string
	Address   string
	Role      string
	ServiceID uuid.UUID
}

// --- Output DTOs ---

// RegisterOutput returns the newly created profile.
type RegisterOutput struct {
	Profile *entity.Profile
}

// RegistrationUsecase defines the interface for account creation. Creation
// spans the identity provider and the profile store, so the implementation
// is a compensating sequence rather than a single transaction.
type RegistrationUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error)
}
