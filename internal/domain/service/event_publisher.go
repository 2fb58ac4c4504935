package service

import (
	"context"
	"time"
)

// OrphanedIdentityEvent records an identity that exists at the provider but
// has no profile row, and whose compensating delete also failed. Consumers
// retry the cleanup out of band.
type OrphanedIdentityEvent struct {
	RequestID   string    `json:"request_id,omitempty"` // For distributed tracing
	IdentityUID string    `json:"identity_uid"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	Reason      string    `json:"reason"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrphanedIdentity publishes an orphaned identity event for async cleanup
	PublishOrphanedIdentity(ctx context.Context, event *OrphanedIdentityEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
