package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"fixly/config"
	"fixly/internal/domain/entity"
	domainerrors "fixly/internal/domain/errors"
	"fixly/internal/domain/repository"
	mockRepo "fixly/internal/mocks/repository"
	"fixly/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service    usecase.ProfileUsecase
	txManager  *mockRepo.MockTransactionManager
	clientRepo *mockRepo.MockClientRepository
	workerRepo *mockRepo.MockWorkerRepository
}

func createTestProfileService(t *testing.T, reconcile *config.ReconcileConfig) profileServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	clientRepo := mockRepo.NewMockClientRepository(t)
	workerRepo := mockRepo.NewMockWorkerRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewProfileService(ProfileServiceParams{
		TxManager:  txManager,
		ClientRepo: clientRepo,
		WorkerRepo: workerRepo,
		Config:     &config.Config{Reconcile: reconcile},
		Logger:     logger,
	})

	return profileServiceFixtures{
		service:    svc,
		txManager:  txManager,
		clientRepo: clientRepo,
		workerRepo: workerRepo,
	}
}

// testReconcile keeps retry waits down at microseconds so exhaustion tests
// stay fast.
func testReconcile(attempts int) *config.ReconcileConfig {
	return &config.ReconcileConfig{
		MaxAttempts: attempts,
		BaseDelay:   time.Microsecond,
	}
}

func TestProfileService_Resolve_ClientTableFirst(t *testing.T) {
	fx := createTestProfileService(t, testReconcile(5))

	ctx := context.Background()
	expectedClient := &entity.Client{
		ID:          uuid.New(),
		IdentityUID: "uid-1",
		Email:       "jane@example.com",
	}

	// Worker table is never consulted when the client table answers.
	fx.clientRepo.EXPECT().FindByIdentityUID(ctx, "uid-1").Return(expectedClient, nil)

	profile, err := fx.service.Resolve(ctx, "uid-1")

	require.NoError(t, err)
	assert.Equal(t, entity.ProfileKindClient, profile.Kind)
	assert.Equal(t, expectedClient, profile.Client)
	assert.Nil(t, profile.Worker)
}

func TestProfileService_Resolve_FallsBackToWorkerTable(t *testing.T) {
	fx := createTestProfileService(t, testReconcile(5))

	ctx := context.Background()
	expectedWorker := &entity.Worker{
		ID:          uuid.New(),
		IdentityUID: "uid-2",
		Position:    "Electrician",
	}

	fx.clientRepo.EXPECT().FindByIdentityUID(ctx, "uid-2").Return(nil, repository.ErrClientNotFound)
	fx.workerRepo.EXPECT().FindByIdentityUID(ctx, "uid-2").Return(expectedWorker, nil)

	profile, err := fx.service.Resolve(ctx, "uid-2")

	require.NoError(t, err)
	assert.Equal(t, entity.ProfileKindWorker, profile.Kind)
	assert.Equal(t, expectedWorker, profile.Worker)
}

func TestProfileService_Resolve_NotFoundInEitherTable(t *testing.T) {
	fx := createTestProfileService(t, testReconcile(5))

	ctx := context.Background()

	fx.clientRepo.EXPECT().FindByIdentityUID(ctx, "uid-3").Return(nil, repository.ErrClientNotFound)
	fx.workerRepo.EXPECT().FindByIdentityUID(ctx, "uid-3").Return(nil, repository.ErrWorkerNotFound)

	profile, err := fx.service.Resolve(ctx, "uid-3")

	require.Error(t, err)
	assert.Nil(t, profile)
	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}

func TestProfileService_ResolveWithRetry_SucceedsOnLaterAttempt(t *testing.T) {
	fx := createTestProfileService(t, testReconcile(5))

	ctx := context.Background()
	expectedClient := &entity.Client{ID: uuid.New(), IdentityUID: "uid-4"}

	// Two attempts miss, the third lands: the profile row was still
	// propagating when resolution started.
	fx.clientRepo.EXPECT().FindByIdentityUID(ctx, "uid-4").Return(nil, repository.ErrClientNotFound).Twice()
	fx.workerRepo.EXPECT().FindByIdentityUID(ctx, "uid-4").Return(nil, repository.ErrWorkerNotFound).Twice()
	fx.clientRepo.EXPECT().FindByIdentityUID(ctx, "uid-4").Return(expectedClient, nil).Once()

	profile, err := fx.service.ResolveWithRetry(ctx, "uid-4")

	require.NoError(t, err)
	assert.Equal(t, expectedClient, profile.Client)
}

func TestProfileService_ResolveWithRetry_ExhaustsAttempts(t *testing.T) {
	fx := createTestProfileService(t, testReconcile(3))

	ctx := context.Background()

	fx.clientRepo.EXPECT().FindByIdentityUID(ctx, "uid-5").Return(nil, repository.ErrClientNotFound).Times(3)
	fx.workerRepo.EXPECT().FindByIdentityUID(ctx, "uid-5").Return(nil, repository.ErrWorkerNotFound).Times(3)

	profile, err := fx.service.ResolveWithRetry(ctx, "uid-5")

	require.Error(t, err)
	assert.Nil(t, profile)
	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}

func TestProfileService_ResolveWithRetry_DoesNotRetryOtherErrors(t *testing.T) {
	fx := createTestProfileService(t, testReconcile(5))

	ctx := context.Background()
	dbErr := errors.New("connection refused")

	fx.clientRepo.EXPECT().FindByIdentityUID(ctx, "uid-6").Return(nil, dbErr).Once()

	profile, err := fx.service.ResolveWithRetry(ctx, "uid-6")

	require.Error(t, err)
	assert.Nil(t, profile)
	assert.NotErrorIs(t, err, domainerrors.ErrProfileNotFound)
	assert.ErrorIs(t, err, dbErr)
}

func TestProfileService_ResolveWithRetry_RespectsCancellation(t *testing.T) {
	fx := createTestProfileService(t, &config.ReconcileConfig{
		MaxAttempts: 5,
		BaseDelay:   time.Hour,
	})

	ctx, cancel := context.WithCancel(context.Background())

	fx.clientRepo.EXPECT().
		FindByIdentityUID(ctx, "uid-7").
		Run(func(ctx context.Context, identityUID string) {
			cancel()
		}).
		Return(nil, repository.ErrClientNotFound).
		Once()
	fx.workerRepo.EXPECT().FindByIdentityUID(ctx, "uid-7").Return(nil, repository.ErrWorkerNotFound).Once()

	done := make(chan struct{})
	var err error
	go func() {
		_, err = fx.service.ResolveWithRetry(ctx, "uid-7")
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("retry loop did not observe cancellation")
	}

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestProfileService_UpdateProfile_ClientPartialUpdate(t *testing.T) {
	fx := createTestProfileService(t, testReconcile(5))

	ctx := context.Background()
	phone := "555-0202"
	existingClient := &entity.Client{
		ID:          uuid.New(),
		IdentityUID: "uid-8",
		FirstName:   "Jane",
		Phone:       "555-0101",
		Address:     "12 Elm St",
	}
	input := &usecase.UpdateProfileInput{Phone: &phone}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockClientRepo := mockRepo.NewMockClientRepository(t)

			mockFactory.EXPECT().ClientRepo().Return(mockClientRepo)
			mockClientRepo.EXPECT().FindByIdentityUID(ctx, "uid-8").Return(existingClient, nil)
			mockClientRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Client")).Return(nil)

			return fn(mockFactory)
		})

	profile, err := fx.service.UpdateProfile(ctx, "uid-8", input)

	require.NoError(t, err)
	assert.Equal(t, "555-0202", profile.Client.Phone)
	// Omitted fields keep their stored values.
	assert.Equal(t, "Jane", profile.Client.FirstName)
	assert.Equal(t, "12 Elm St", profile.Client.Address)
}

func TestProfileService_UpdateProfile_WorkerFieldsApplied(t *testing.T) {
	fx := createTestProfileService(t, testReconcile(5))

	ctx := context.Background()
	bio := "Twenty years of pipe work"
	age := 43
	skills := []string{"soldering", "diagnostics"}
	inactive := false
	existingWorker := &entity.Worker{
		ID:          uuid.New(),
		IdentityUID: "uid-9",
		Bio:         "old bio",
		Age:         42,
		Languages:   []string{"en"},
		IsActive:    true,
	}
	input := &usecase.UpdateProfileInput{
		Bio:      &bio,
		Age:      &age,
		Skills:   &skills,
		IsActive: &inactive,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockClientRepo := mockRepo.NewMockClientRepository(t)
			mockWorkerRepo := mockRepo.NewMockWorkerRepository(t)

			mockFactory.EXPECT().ClientRepo().Return(mockClientRepo)
			mockFactory.EXPECT().WorkerRepo().Return(mockWorkerRepo)
			mockClientRepo.EXPECT().FindByIdentityUID(ctx, "uid-9").Return(nil, repository.ErrClientNotFound)
			mockWorkerRepo.EXPECT().FindByIdentityUID(ctx, "uid-9").Return(existingWorker, nil)
			mockWorkerRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Worker")).Return(nil)

			return fn(mockFactory)
		})

	profile, err := fx.service.UpdateProfile(ctx, "uid-9", input)

	require.NoError(t, err)
	worker := profile.Worker
	assert.Equal(t, bio, worker.Bio)
	assert.Equal(t, 43, worker.Age)
	assert.Equal(t, skills, worker.Skills)
	assert.False(t, worker.IsActive)
	// Languages were omitted and keep the stored value.
	assert.Equal(t, []string{"en"}, worker.Languages)
}

func TestProfileService_UpdateProfile_NotFound(t *testing.T) {
	fx := createTestProfileService(t, testReconcile(5))

	ctx := context.Background()
	input := &usecase.UpdateProfileInput{}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockClientRepo := mockRepo.NewMockClientRepository(t)
			mockWorkerRepo := mockRepo.NewMockWorkerRepository(t)

			mockFactory.EXPECT().ClientRepo().Return(mockClientRepo)
			mockFactory.EXPECT().WorkerRepo().Return(mockWorkerRepo)
			mockClientRepo.EXPECT().FindByIdentityUID(ctx, "uid-10").Return(nil, repository.ErrClientNotFound)
			mockWorkerRepo.EXPECT().FindByIdentityUID(ctx, "uid-10").Return(nil, repository.ErrWorkerNotFound)

			return fn(mockFactory)
		})

	profile, err := fx.service.UpdateProfile(ctx, "uid-10", input)

	require.Error(t, err)
	assert.Nil(t, profile)
	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}
