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
	mockService "fixly/internal/mocks/service"
	"fixly/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// catalogServiceFixtures holds all test dependencies for catalog service tests.
type catalogServiceFixtures struct {
	service      usecase.CatalogUsecase
	txManager    *mockRepo.MockTransactionManager
	serviceRepo  *mockRepo.MockServiceRepository
	workerRepo   *mockRepo.MockWorkerRepository
	clientRepo   *mockRepo.MockClientRepository
	feedbackRepo *mockRepo.MockFeedbackRepository
	identity     *mockService.MockIdentityProvider
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	serviceRepo := mockRepo.NewMockServiceRepository(t)
	workerRepo := mockRepo.NewMockWorkerRepository(t)
	clientRepo := mockRepo.NewMockClientRepository(t)
	feedbackRepo := mockRepo.NewMockFeedbackRepository(t)
	identity := mockService.NewMockIdentityProvider(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewCatalogService(CatalogServiceParams{
		TxManager:    txManager,
		ServiceRepo:  serviceRepo,
		WorkerRepo:   workerRepo,
		ClientRepo:   clientRepo,
		FeedbackRepo: feedbackRepo,
		Identity:     identity,
		Logger:       logger,
	})

	return catalogServiceFixtures{
		service:      svc,
		txManager:    txManager,
		serviceRepo:  serviceRepo,
		workerRepo:   workerRepo,
		clientRepo:   clientRepo,
		feedbackRepo: feedbackRepo,
		identity:     identity,
	}
}

func TestCatalogService_DeleteService_RejectedWhileInUse(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	serviceID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockServiceRepo := mockRepo.NewMockServiceRepository(t)

			mockFactory.EXPECT().ServiceRepo().Return(mockServiceRepo)
			mockServiceRepo.EXPECT().FindByID(ctx, serviceID).Return(&entity.Service{ID: serviceID, Name: "Plumbing"}, nil)
			mockServiceRepo.EXPECT().CountAssociations(ctx, serviceID).Return(3, nil)
			// No Delete expectation: the guard must reject before any mutation.

			return fn(mockFactory)
		})

	err := fx.service.DeleteService(ctx, serviceID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrServiceInUse)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Cannot delete service. 3 worker(s) are using this service.", appErr.Details())
}

func TestCatalogService_DeleteService_SucceedsWhenUnused(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	serviceID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockServiceRepo := mockRepo.NewMockServiceRepository(t)

			mockFactory.EXPECT().ServiceRepo().Return(mockServiceRepo)
			mockServiceRepo.EXPECT().FindByID(ctx, serviceID).Return(&entity.Service{ID: serviceID, Name: "Tiling"}, nil)
			mockServiceRepo.EXPECT().CountAssociations(ctx, serviceID).Return(0, nil)
			mockServiceRepo.EXPECT().Delete(ctx, serviceID).Return(nil)

			return fn(mockFactory)
		})

	err := fx.service.DeleteService(ctx, serviceID)

	require.NoError(t, err)
}

func TestCatalogService_DeleteService_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	serviceID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockServiceRepo := mockRepo.NewMockServiceRepository(t)

			mockFactory.EXPECT().ServiceRepo().Return(mockServiceRepo)
			mockServiceRepo.EXPECT().FindByID(ctx, serviceID).Return(nil, repository.ErrServiceNotFound)

			return fn(mockFactory)
		})

	err := fx.service.DeleteService(ctx, serviceID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrServiceNotFound)
}

func TestCatalogService_RemoveWorker_DeletesAssociationsFirst(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	workerID := uuid.New()
	worker := &entity.Worker{ID: workerID, IdentityUID: "uid-w-1"}

	var order []string
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockWorkerRepo := mockRepo.NewMockWorkerRepository(t)

			mockFactory.EXPECT().WorkerRepo().Return(mockWorkerRepo)
			mockWorkerRepo.EXPECT().FindByID(ctx, workerID).Return(worker, nil)
			mockWorkerRepo.EXPECT().
				DeleteAssociations(ctx, workerID).
				Run(func(ctx context.Context, workerID uuid.UUID) {
					order = append(order, "associations")
				}).
				Return(nil)
			mockWorkerRepo.EXPECT().
				Delete(ctx, workerID).
				Run(func(ctx context.Context, id uuid.UUID) {
					order = append(order, "worker")
				}).
				Return(nil)

			return fn(mockFactory)
		})

	fx.identity.EXPECT().DeleteIdentity(ctx, "uid-w-1").Return(nil)

	err := fx.service.RemoveWorker(ctx, workerID)

	require.NoError(t, err)
	assert.Equal(t, []string{"associations", "worker"}, order)
}

func TestCatalogService_RemoveWorker_IdentityDeleteFailureIsNotFatal(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	workerID := uuid.New()
	worker := &entity.Worker{ID: workerID, IdentityUID: "uid-w-2"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockWorkerRepo := mockRepo.NewMockWorkerRepository(t)

			mockFactory.EXPECT().WorkerRepo().Return(mockWorkerRepo)
			mockWorkerRepo.EXPECT().FindByID(ctx, workerID).Return(worker, nil)
			mockWorkerRepo.EXPECT().DeleteAssociations(ctx, workerID).Return(nil)
			mockWorkerRepo.EXPECT().Delete(ctx, workerID).Return(nil)

			return fn(mockFactory)
		})

	fx.identity.EXPECT().DeleteIdentity(ctx, "uid-w-2").Return(assertableError("provider down"))

	err := fx.service.RemoveWorker(ctx, workerID)

	require.NoError(t, err)
}

func TestCatalogService_ToggleWorkerActive(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	workerID := uuid.New()
	worker := &entity.Worker{ID: workerID, IsActive: true}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockWorkerRepo := mockRepo.NewMockWorkerRepository(t)

			mockFactory.EXPECT().WorkerRepo().Return(mockWorkerRepo)
			mockWorkerRepo.EXPECT().FindByID(ctx, workerID).Return(worker, nil)
			mockWorkerRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Worker")).Return(nil)

			return fn(mockFactory)
		})

	toggled, err := fx.service.ToggleWorkerActive(ctx, workerID)

	require.NoError(t, err)
	assert.False(t, toggled.IsActive)
}

func TestCatalogService_ListWorkers_MapsRatingsPerWorker(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	rated := &entity.Worker{ID: uuid.New(), Position: "Plumbing"}
	unrated := &entity.Worker{ID: uuid.New(), Position: "Painting"}

	fx.workerRepo.EXPECT().List(ctx).Return([]*entity.Worker{rated, unrated}, nil)
	fx.feedbackRepo.EXPECT().
		RatingsByWorkers(ctx, []uuid.UUID{rated.ID, unrated.ID}).
		Return(map[uuid.UUID][]int{rated.ID: {4, 5}}, nil)

	workers, err := fx.service.ListWorkers(ctx)

	require.NoError(t, err)
	require.Len(t, workers, 2)

	require.NotNil(t, workers[0].Rating.Average)
	assert.InDelta(t, 4.5, *workers[0].Rating.Average, 0.0001)
	assert.Equal(t, 2, workers[0].Rating.Count)

	// A worker with no feedback shows no average, not a zero.
	assert.Nil(t, workers[1].Rating.Average)
	assert.Equal(t, 0, workers[1].Rating.Count)
}

func TestCatalogService_Stats(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()

	fx.clientRepo.EXPECT().Count(ctx).Return(12, nil)
	fx.workerRepo.EXPECT().Count(ctx).Return(7, nil)
	fx.workerRepo.EXPECT().CountActive(ctx).Return(5, nil)
	fx.serviceRepo.EXPECT().Count(ctx).Return(4, nil)
	fx.feedbackRepo.EXPECT().Count(ctx).Return(9, nil)
	fx.clientRepo.EXPECT().CountCreatedSince(ctx, mock.AnythingOfType("time.Time")).Return(2, nil)
	fx.feedbackRepo.EXPECT().AllRatings(ctx).Return([]int{5, 4, 4}, nil)

	stats, err := fx.service.Stats(ctx)

	require.NoError(t, err)
	assert.Equal(t, 12, stats.TotalClients)
	assert.Equal(t, 7, stats.TotalWorkers)
	assert.Equal(t, 5, stats.ActiveWorkers)
	assert.Equal(t, 4, stats.TotalServices)
	assert.Equal(t, 9, stats.TotalFeedbacks)
	assert.Equal(t, 2, stats.RecentSignups)
	require.NotNil(t, stats.AverageRating)
	assert.InDelta(t, 4.3, *stats.AverageRating, 0.0001)
}

func TestCatalogService_CreateService_RequiresName(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()

	created, err := fx.service.CreateService(ctx, usecase.CreateServiceInput{})

	require.Error(t, err)
	assert.Nil(t, created)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

// assertableError is a minimal error for exercising non-domain failures.
type assertableError string

func (e assertableError) Error() string { return string(e) }
