package impl

import (
	"context"
	"log/slog"

	deliverycontext "fixly/internal/delivery/context"
	"fixly/internal/domain/entity"
	domainerrors "fixly/internal/domain/errors"
	"fixly/internal/domain/repository"
	"fixly/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// feedbackService implements the FeedbackUsecase interface. Ratings are never
// stored as aggregates; every summary is folded from the feedback rows at
// read time, so a moderation delete is reflected immediately.
type feedbackService struct {
	txManager    repository.TransactionManager
	feedbackRepo repository.FeedbackRepository
	workerRepo   repository.WorkerRepository
	logger       *slog.Logger
}

// FeedbackServiceParams holds dependencies for feedbackService, injected by Fx.
type FeedbackServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	FeedbackRepo repository.FeedbackRepository
	WorkerRepo   repository.WorkerRepository
	Logger       *slog.Logger
}

// NewFeedbackService is the constructor for feedbackService.
func NewFeedbackService(params FeedbackServiceParams) usecase.FeedbackUsecase {
	return &feedbackService{
		txManager:    params.TxManager,
		feedbackRepo: params.FeedbackRepo,
		workerRepo:   params.WorkerRepo,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *feedbackService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddFeedback validates and appends one feedback row for a worker.
func (srv *feedbackService) AddFeedback(ctx context.Context, input usecase.AddFeedbackInput) (*entity.Feedback, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, errors.Wrap(domainerrors.ErrInvalidRating, "rating out of range")
	}

	var created *entity.Feedback
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.WorkerRepo().FindByID(ctx, input.WorkerID); err != nil {
			if errors.Is(err, repository.ErrWorkerNotFound) {
				return errors.Wrap(domainerrors.ErrWorkerNotFound, "cannot add feedback")
			}

			return errors.Wrap(err, "failed to look up worker for feedback")
		}

		feedback := &entity.Feedback{
			WorkerID: input.WorkerID,
			ClientID: input.ClientID,
			Rating:   input.Rating,
			Comment:  input.Comment,
		}
		if err := repoFactory.FeedbackRepo().Create(ctx, feedback); err != nil {
			return errors.Wrap(err, "failed to create feedback")
		}
		created = feedback

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to add feedback", slog.Any("workerID", input.WorkerID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Feedback added", slog.Any("workerID", input.WorkerID), slog.Int("rating", input.Rating))

	return created, nil
}

// ListWorkerFeedback returns a worker's feedback newest first with the
// authoring client attached.
func (srv *feedbackService) ListWorkerFeedback(ctx context.Context, workerID uuid.UUID) ([]*entity.Feedback, error) {
	feedbacks, err := srv.feedbackRepo.ListByWorker(ctx, workerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list worker feedback")
	}

	return feedbacks, nil
}

// SummarizeWorker folds the worker's ratings into the derived summary.
func (srv *feedbackService) SummarizeWorker(ctx context.Context, workerID uuid.UUID) (entity.RatingSummary, error) {
	ratings, err := srv.feedbackRepo.RatingsByWorker(ctx, workerID)
	if err != nil {
		return entity.RatingSummary{}, errors.Wrap(err, "failed to load worker ratings")
	}

	return entity.SummarizeRatings(ratings), nil
}
