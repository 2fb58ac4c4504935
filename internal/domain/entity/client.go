// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Client is the profile of a person who browses the catalog and rates
// workers. It is keyed by the identity provider's uid (a back-reference,
// not an ownership relation): credentials live in the provider, never here.
type Client struct {
	ID          uuid.UUID `json:"id"`          // The unique ID for this profile row.
	IdentityUID string    `json:"identityUid"` // The identity provider's uid this profile belongs to.
	Email       string    `json:"email"`       // Denormalized from the identity for display and admin listings.
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Phone       string    `json:"phone"`
	Address     string    `json:"address"`
	Image       string    `json:"image"` // Avatar reference (URL or storage key).
	Role        Role      `json:"role"`  // Role marker; admins are clients with RoleAdmin.
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
