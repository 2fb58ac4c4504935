package entity

import (
	"time"

	"github.com/google/uuid"
)

// Feedback is a single rating a client left for a worker. Rows are
// append-only from the client side; only administrative moderation removes
// them. No aggregate is ever stored alongside them.
type Feedback struct {
	ID        uuid.UUID `json:"id"`
	WorkerID  uuid.UUID `json:"workerId"`
	ClientID  uuid.UUID `json:"clientId"`
	Rating    int       `json:"rating"`  // 1..5 inclusive.
	Comment   string    `json:"comment"` // Optional free text.
	Author    *Client   `json:"author,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
