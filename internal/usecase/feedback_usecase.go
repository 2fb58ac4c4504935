// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"fixly/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// AddFeedbackInput defines the data required to leave feedback for a worker.
type AddFeedbackInput struct {
	WorkerID uuid.UUID
	ClientID uuid.UUID
	Rating   int
	Comment  string
}

// --- Output DTOs ---

// WorkerWithRating pairs a worker with its derived rating summary. The
// summary is recomputed from feedback rows on every read.
type WorkerWithRating struct {
	Worker *entity.Worker       `json:"worker"`
	Rating entity.RatingSummary `json:"rating"`
}

// FeedbackUsecase defines the interface for feedback and rating operations.
type FeedbackUsecase interface {
	AddFeedback(ctx context.Context, input AddFeedbackInput) (*entity.Feedback, error)
	ListWorkerFeedback(ctx context.Context, workerID uuid.UUID) ([]*entity.Feedback, error)
	SummarizeWorker(ctx context.Context, workerID uuid.UUID) (entity.RatingSummary, error)
}
