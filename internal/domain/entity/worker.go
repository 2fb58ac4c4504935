package entity

import (
	"time"

	"github.com/google/uuid"
)

// Worker is the profile of a service professional. Like Client it is keyed
// by the identity provider's uid; for a given uid at most one of the two
// profile kinds exists.
type Worker struct {
	ID          uuid.UUID `json:"id"`
	IdentityUID string    `json:"identityUid"`
	Email       string    `json:"email"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Phone       string    `json:"phone"`
	Address     string    `json:"address"`
	Image       string    `json:"image"`
	Bio         string    `json:"bio"`
	Age         int       `json:"age"`
	Skills      []string  `json:"skills"`
	Languages   []string  `json:"languages"`
	// Position is the display name of the service category the worker
	// registered under, denormalized at registration time. It is not kept
	// in sync with later category renames.
	Position  string     `json:"position"`
	IsActive  bool       `json:"isActive"`
	Services  []*Service `json:"services"` // Categories this worker is associated with.
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// FullName returns the worker's display name.
func (w *Worker) FullName() string {
	if w.FirstName == "" {
		return w.LastName
	}
	if w.LastName == "" {
		return w.FirstName
	}

	return w.FirstName + " " + w.LastName
}
