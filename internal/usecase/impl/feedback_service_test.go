package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"fixly/internal/domain/entity"
	domainerrors "fixly/internal/domain/errors"
	"fixly/internal/domain/repository"
	mockRepo "fixly/internal/mocks/repository"
	"fixly/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// feedbackServiceFixtures holds all test dependencies for feedback service tests.
type feedbackServiceFixtures struct {
	service      usecase.FeedbackUsecase
	txManager    *mockRepo.MockTransactionManager
	feedbackRepo *mockRepo.MockFeedbackRepository
	workerRepo   *mockRepo.MockWorkerRepository
}

func createTestFeedbackService(t *testing.T) feedbackServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	feedbackRepo := mockRepo.NewMockFeedbackRepository(t)
	workerRepo := mockRepo.NewMockWorkerRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewFeedbackService(FeedbackServiceParams{
		TxManager:    txManager,
		FeedbackRepo: feedbackRepo,
		WorkerRepo:   workerRepo,
		Logger:       logger,
	})

	return feedbackServiceFixtures{
		service:      svc,
		txManager:    txManager,
		feedbackRepo: feedbackRepo,
		workerRepo:   workerRepo,
	}
}

func TestFeedbackService_AddFeedback_Success(t *testing.T) {
	fx := createTestFeedbackService(t)

	ctx := context.Background()
	workerID := uuid.New()
	clientID := uuid.New()
	input := usecase.AddFeedbackInput{
		WorkerID: workerID,
		ClientID: clientID,
		Rating:   5,
		Comment:  "Fixed the leak in one visit",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockWorkerRepo := mockRepo.NewMockWorkerRepository(t)
			mockFeedbackRepo := mockRepo.NewMockFeedbackRepository(t)

			mockFactory.EXPECT().WorkerRepo().Return(mockWorkerRepo)
			mockFactory.EXPECT().FeedbackRepo().Return(mockFeedbackRepo)
			mockWorkerRepo.EXPECT().FindByID(ctx, workerID).Return(&entity.Worker{ID: workerID}, nil)
			mockFeedbackRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Feedback")).
				Run(func(ctx context.Context, feedback *entity.Feedback) {
					feedback.ID = uuid.New()
				}).
				Return(nil)

			return fn(mockFactory)
		})

	feedback, err := fx.service.AddFeedback(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, workerID, feedback.WorkerID)
	assert.Equal(t, clientID, feedback.ClientID)
	assert.Equal(t, 5, feedback.Rating)
}

func TestFeedbackService_AddFeedback_RatingOutOfRange(t *testing.T) {
	fx := createTestFeedbackService(t)

	ctx := context.Background()

	for _, rating := range []int{0, 6, -1} {
		input := usecase.AddFeedbackInput{
			WorkerID: uuid.New(),
			ClientID: uuid.New(),
			Rating:   rating,
		}

		feedback, err := fx.service.AddFeedback(ctx, input)

		require.Error(t, err)
		assert.Nil(t, feedback)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidRating)
	}
}

func TestFeedbackService_AddFeedback_WorkerMissing(t *testing.T) {
	fx := createTestFeedbackService(t)

	ctx := context.Background()
	workerID := uuid.New()
	input := usecase.AddFeedbackInput{
		WorkerID: workerID,
		ClientID: uuid.New(),
		Rating:   3,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockWorkerRepo := mockRepo.NewMockWorkerRepository(t)

			mockFactory.EXPECT().WorkerRepo().Return(mockWorkerRepo)
			mockWorkerRepo.EXPECT().FindByID(ctx, workerID).Return(nil, repository.ErrWorkerNotFound)

			return fn(mockFactory)
		})

	feedback, err := fx.service.AddFeedback(ctx, input)

	require.Error(t, err)
	assert.Nil(t, feedback)
	assert.ErrorIs(t, err, domainerrors.ErrWorkerNotFound)
}

func TestFeedbackService_SummarizeWorker_RoundsToOneDecimal(t *testing.T) {
	fx := createTestFeedbackService(t)

	ctx := context.Background()
	workerID := uuid.New()

	fx.feedbackRepo.EXPECT().RatingsByWorker(ctx, workerID).Return([]int{3, 4, 4}, nil)

	summary, err := fx.service.SummarizeWorker(ctx, workerID)

	require.NoError(t, err)
	require.NotNil(t, summary.Average)
	assert.InDelta(t, 3.7, *summary.Average, 0.0001)
	assert.Equal(t, 3, summary.Count)
}

func TestFeedbackService_SummarizeWorker_EmptyHasNilAverage(t *testing.T) {
	fx := createTestFeedbackService(t)

	ctx := context.Background()
	workerID := uuid.New()

	fx.feedbackRepo.EXPECT().RatingsByWorker(ctx, workerID).Return(nil, nil)

	summary, err := fx.service.SummarizeWorker(ctx, workerID)

	require.NoError(t, err)
	assert.Nil(t, summary.Average)
	assert.Equal(t, 0, summary.Count)
}

func TestFeedbackService_ListWorkerFeedback(t *testing.T) {
	fx := createTestFeedbackService(t)

	ctx := context.Background()
	workerID := uuid.New()
	expected := []*entity.Feedback{
		{ID: uuid.New(), WorkerID: workerID, Rating: 5},
		{ID: uuid.New(), WorkerID: workerID, Rating: 2},
	}

	fx.feedbackRepo.EXPECT().ListByWorker(ctx, workerID).Return(expected, nil)

	feedbacks, err := fx.service.ListWorkerFeedback(ctx, workerID)

	require.NoError(t, err)
	assert.Equal(t, expected, feedbacks)
}
