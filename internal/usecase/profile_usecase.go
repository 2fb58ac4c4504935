// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"fixly/internal/domain/entity"
)

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	// Resolve finds the profile owning the identity uid, checking the client
	// table before the worker table.
	Resolve(ctx context.Context, identityUID string) (*entity.Profile, error)

	// ResolveWithRetry is Resolve with a bounded retry on the not-found case,
	// covering the window between identity creation and the profile write.
	ResolveWithRetry(ctx context.Context, identityUID string) (*entity.Profile, error)

	// UpdateProfile applies a partial update to whichever profile variant owns
	// the identity uid and returns the updated profile.
	UpdateProfile(ctx context.Context, identityUID string, input *UpdateProfileInput) (*entity.Profile, error)
}

// --- Input DTOs ---

// UpdateProfileInput defines the data for a partial profile update. Nil
// fields keep their stored values. The worker-only fields are ignored for
// client profiles.
type UpdateProfileInput struct {
	FirstName *string   `json:"firstName,omitempty"`
	LastName  *string   `json:"lastName,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	Address   *string   `json:"address,omitempty"`
	Image     *string   `json:"image,omitempty"`
	Bio       *string   `json:"bio,omitempty"`
	Age       *int      `json:"age,omitempty"`
	Skills    *[]string `json:"skills,omitempty"`
	Languages *[]string `json:"languages,omitempty"`
	IsActive  *bool     `json:"isActive,omitempty"`
}
