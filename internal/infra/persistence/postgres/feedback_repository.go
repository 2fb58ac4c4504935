package postgres

import (
	"context"

	"fixly/internal/domain/entity"
	domainerrors "fixly/internal/domain/errors"
	"fixly/internal/domain/repository"
	"fixly/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// feedbackRepository implements the repository.FeedbackRepository interface.
type feedbackRepository struct {
	db *gorm.DB
}

// NewFeedbackRepository is the constructor for feedbackRepository.
func NewFeedbackRepository(db *gorm.DB) repository.FeedbackRepository {
	return &feedbackRepository{
		db: db,
	}
}

// Create persists a new feedback row.
func (repo *feedbackRepository) Create(ctx context.Context, feedback *entity.Feedback) error {
	feedbackM := fromFeedbackDomain(feedback)

	if err := repo.db.WithContext(ctx).Create(feedbackM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidRating
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrWorkerNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required feedback information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create feedback")
	}

	// Update the entity with generated values
	feedback.ID = feedbackM.ID
	feedback.CreatedAt = feedbackM.CreatedAt

	return nil
}

// ListByWorker returns a worker's feedback newest first, with the
// authoring client preloaded.
func (repo *feedbackRepository) ListByWorker(ctx context.Context, workerID uuid.UUID) ([]*entity.Feedback, error) {
	var feedbackModels []*model.FeedbackModel

	if err := repo.db.WithContext(ctx).
		Preload("Author").
		Where("worker_id = ?", workerID).
		Order("created_at DESC").
		Find(&feedbackModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list feedback by worker")
	}

	feedbacks := make([]*entity.Feedback, 0, len(feedbackModels))
	for _, feedbackM := range feedbackModels {
		feedbacks = append(feedbacks, toFeedbackDomain(feedbackM))
	}

	return feedbacks, nil
}

// RatingsByWorker returns just the rating values for one worker.
func (repo *feedbackRepository) RatingsByWorker(ctx context.Context, workerID uuid.UUID) ([]int, error) {
	var ratings []int

	if err := repo.db.WithContext(ctx).
		Model(&model.FeedbackModel{}).
		Where("worker_id = ?", workerID).
		Pluck("rating", &ratings).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load ratings by worker")
	}

	return ratings, nil
}

// RatingsByWorkers returns rating values grouped by worker id. One query
// for the whole page instead of one per worker.
func (repo *feedbackRepository) RatingsByWorkers(ctx context.Context, workerIDs []uuid.UUID) (map[uuid.UUID][]int, error) {
	grouped := make(map[uuid.UUID][]int, len(workerIDs))
	if len(workerIDs) == 0 {
		return grouped, nil
	}

	var rows []struct {
		WorkerID uuid.UUID
		Rating   int
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.FeedbackModel{}).
		Select("worker_id, rating").
		Where("worker_id IN ?", workerIDs).
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load ratings by workers")
	}

	for _, row := range rows {
		grouped[row.WorkerID] = append(grouped[row.WorkerID], row.Rating)
	}

	return grouped, nil
}

// ListAll returns every feedback row newest first, with authors preloaded.
func (repo *feedbackRepository) ListAll(ctx context.Context) ([]*entity.Feedback, error) {
	var feedbackModels []*model.FeedbackModel

	if err := repo.db.WithContext(ctx).
		Preload("Author").
		Order("created_at DESC").
		Find(&feedbackModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list all feedback")
	}

	feedbacks := make([]*entity.Feedback, 0, len(feedbackModels))
	for _, feedbackM := range feedbackModels {
		feedbacks = append(feedbacks, toFeedbackDomain(feedbackM))
	}

	return feedbacks, nil
}

// AllRatings returns every rating value in the store.
func (repo *feedbackRepository) AllRatings(ctx context.Context) ([]int, error) {
	var ratings []int

	if err := repo.db.WithContext(ctx).
		Model(&model.FeedbackModel{}).
		Pluck("rating", &ratings).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load all ratings")
	}

	return ratings, nil
}

// Delete removes a feedback row.
func (repo *feedbackRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.FeedbackModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete feedback")
	}
	if result.RowsAffected == 0 {
		return repository.ErrFeedbackNotFound
	}

	return nil
}

// Count returns the total number of feedback rows.
func (repo *feedbackRepository) Count(ctx context.Context) (int, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.FeedbackModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count feedback")
	}

	return int(count), nil
}

// fromFeedbackDomain converts a domain entity to its persistence model.
func fromFeedbackDomain(feedback *entity.Feedback) *model.FeedbackModel {
	return &model.FeedbackModel{
		ID:        feedback.ID,
		WorkerID:  feedback.WorkerID,
		ClientID:  feedback.ClientID,
		Rating:    feedback.Rating,
		Comment:   feedback.Comment,
		CreatedAt: feedback.CreatedAt,
	}
}

// toFeedbackDomain converts a persistence model back to its domain entity.
func toFeedbackDomain(feedbackM *model.FeedbackModel) *entity.Feedback {
	feedback := &entity.Feedback{
		ID:        feedbackM.ID,
		WorkerID:  feedbackM.WorkerID,
		ClientID:  feedbackM.ClientID,
		Rating:    feedbackM.Rating,
		Comment:   feedbackM.Comment,
		CreatedAt: feedbackM.CreatedAt,
	}
	if feedbackM.Author != nil {
		feedback.Author = toClientDomain(feedbackM.Author)
	}

	return feedback
}
