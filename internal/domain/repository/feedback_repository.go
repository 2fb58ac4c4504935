package repository

import (
	"context"
	"errors"

	"fixly/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrFeedbackNotFound is a domain-specific error returned when no feedback
// row matches the lookup key.
var ErrFeedbackNotFound = errors.New("feedback not found")

// FeedbackRepository defines the standard operations for feedback
// persistence. Feedback is append-only from the client side; the only
// mutation besides Create is the administrative Delete.
type FeedbackRepository interface {
	// Create persists a new feedback row.
	Create(ctx context.Context, feedback *entity.Feedback) error

	// ListByWorker returns a worker's feedback newest first, with the
	// authoring client preloaded.
	ListByWorker(ctx context.Context, workerID uuid.UUID) ([]*entity.Feedback, error)

	// RatingsByWorker returns just the rating values for one worker.
	RatingsByWorker(ctx context.Context, workerID uuid.UUID) ([]int, error)

	// RatingsByWorkers returns rating values grouped by worker id, for
	// summarizing a whole catalog page without N+1 queries.
	RatingsByWorkers(ctx context.Context, workerIDs []uuid.UUID) (map[uuid.UUID][]int, error)

	// ListAll returns every feedback row newest first, with authors
	// preloaded (admin moderation view).
	ListAll(ctx context.Context) ([]*entity.Feedback, error)

	// AllRatings returns every rating value in the store.
	AllRatings(ctx context.Context) ([]int, error)

	// Delete removes a feedback row (administrative moderation).
	Delete(ctx context.Context, id uuid.UUID) error

	// Count returns the total number of feedback rows.
	Count(ctx context.Context) (int, error)
}
