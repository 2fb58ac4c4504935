package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"fixly/internal/domain/entity"
	domainerrors "fixly/internal/domain/errors"
	"fixly/internal/domain/repository"
	"fixly/internal/domain/service"
	mockRepo "fixly/internal/mocks/repository"
	mockService "fixly/internal/mocks/service"
	"fixly/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// registrationServiceFixtures holds all test dependencies for registration service tests.
type registrationServiceFixtures struct {
	service   usecase.RegistrationUsecase
	txManager *mockRepo.MockTransactionManager
	identity  *mockService.MockIdentityProvider
	publisher *mockService.MockEventPublisher
}

func createTestRegistrationService(t *testing.T) registrationServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	identity := mockService.NewMockIdentityProvider(t)
	publisher := mockService.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewRegistrationService(RegistrationServiceParams{
		TxManager: txManager,
		Identity:  identity,
		Publisher: publisher,
		Logger:    logger,
	})

	return registrationServiceFixtures{
		service:   svc,
		txManager: txManager,
		identity:  identity,
		publisher: publisher,
	}
}

func clientRegisterInput() usecase.RegisterInput {
	return usecase.RegisterInput{
		Email:     "jane@example.com",
		Password:  "secret123",
		FirstName: "Jane",
		LastName:  "Doe",
		Phone:     "555-0101",
		Address:   "12 Elm St",
		Role:      "client",
	}
}

func workerRegisterInput(serviceID uuid.UUID) usecase.RegisterInput {
	input := clientRegisterInput()
	input.Email = "bob@example.com"
	input.FirstName = "Bob"
	input.LastName = "Smith"
	input.Role = "worker"
	input.ServiceID = serviceID

	return input
}

func TestRegistrationService_Register_ClientSuccess(t *testing.T) {
	fx := createTestRegistrationService(t)

	ctx := context.Background()
	input := clientRegisterInput()

	fx.identity.EXPECT().
		CreateIdentity(ctx, input.Email, input.Password, "Jane Doe").
		Return("uid-client-1", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockClientRepo := mockRepo.NewMockClientRepository(t)

			mockFactory.EXPECT().ClientRepo().Return(mockClientRepo)
			mockClientRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Client")).
				Run(func(ctx context.Context, client *entity.Client) {
					client.ID = uuid.New()
				}).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, entity.ProfileKindClient, output.Profile.Kind)
	assert.Equal(t, "uid-client-1", output.Profile.Client.IdentityUID)
	assert.Equal(t, entity.RoleUser, output.Profile.Client.Role)
}

func TestRegistrationService_Register_EmailTaken(t *testing.T) {
	fx := createTestRegistrationService(t)

	ctx := context.Background()
	input := clientRegisterInput()

	fx.identity.EXPECT().
		CreateIdentity(ctx, input.Email, input.Password, "Jane Doe").
		Return("", service.ErrEmailExists)

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
}

func TestRegistrationService_Register_WorkerSuccess(t *testing.T) {
	fx := createTestRegistrationService(t)

	ctx := context.Background()
	serviceID := uuid.New()
	input := workerRegisterInput(serviceID)
	category := &entity.Service{ID: serviceID, Name: "Plumbing"}

	fx.identity.EXPECT().
		CreateIdentity(ctx, input.Email, input.Password, "Bob Smith").
		Return("uid-worker-1", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockServiceRepo := mockRepo.NewMockServiceRepository(t)
			mockWorkerRepo := mockRepo.NewMockWorkerRepository(t)

			mockFactory.EXPECT().ServiceRepo().Return(mockServiceRepo)
			mockFactory.EXPECT().WorkerRepo().Return(mockWorkerRepo)
			mockServiceRepo.EXPECT().FindByID(ctx, serviceID).Return(category, nil)
			mockWorkerRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Worker")).Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.Equal(t, entity.ProfileKindWorker, output.Profile.Kind)
	assert.Equal(t, "Plumbing", output.Profile.Worker.Position)
	assert.True(t, output.Profile.Worker.IsActive)
	require.Len(t, output.Profile.Worker.Services, 1)
	assert.Equal(t, serviceID, output.Profile.Worker.Services[0].ID)
}

func TestRegistrationService_Register_InvalidServiceCompensates(t *testing.T) {
	fx := createTestRegistrationService(t)

	ctx := context.Background()
	serviceID := uuid.New()
	input := workerRegisterInput(serviceID)

	fx.identity.EXPECT().
		CreateIdentity(ctx, input.Email, input.Password, "Bob Smith").
		Return("uid-worker-2", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockServiceRepo := mockRepo.NewMockServiceRepository(t)

			mockFactory.EXPECT().ServiceRepo().Return(mockServiceRepo)
			mockServiceRepo.EXPECT().FindByID(ctx, serviceID).Return(nil, repository.ErrServiceNotFound)

			return fn(mockFactory)
		})

	// The compensating delete undoes the identity created in step one.
	fx.identity.EXPECT().DeleteIdentity(ctx, "uid-worker-2").Return(nil)

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidService)
	assert.NotErrorIs(t, err, domainerrors.ErrOrphanedIdentity)
}

func TestRegistrationService_Register_MissingServiceIDRejectedBeforeProvider(t *testing.T) {
	fx := createTestRegistrationService(t)

	ctx := context.Background()
	input := workerRegisterInput(uuid.Nil)

	// No identity call is expected: validation fails first.
	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidService)
}

func TestRegistrationService_Register_OrphanedIdentityPublished(t *testing.T) {
	fx := createTestRegistrationService(t)

	ctx := context.Background()
	input := clientRegisterInput()
	writeErr := errors.New("connection reset")

	fx.identity.EXPECT().
		CreateIdentity(ctx, input.Email, input.Password, "Jane Doe").
		Return("uid-orphan-1", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockClientRepo := mockRepo.NewMockClientRepository(t)

			mockFactory.EXPECT().ClientRepo().Return(mockClientRepo)
			mockClientRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Client")).Return(writeErr)

			return fn(mockFactory)
		})

	// The compensating delete fails too, leaving the identity orphaned.
	fx.identity.EXPECT().DeleteIdentity(ctx, "uid-orphan-1").Return(errors.New("provider unavailable"))

	var published *service.OrphanedIdentityEvent
	fx.publisher.EXPECT().
		PublishOrphanedIdentity(ctx, mock.AnythingOfType("*service.OrphanedIdentityEvent")).
		Run(func(ctx context.Context, event *service.OrphanedIdentityEvent) {
			published = event
		}).
		Return(nil)

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrOrphanedIdentity)

	require.NotNil(t, published)
	assert.Equal(t, "uid-orphan-1", published.IdentityUID)
	assert.Equal(t, input.Email, published.Email)
	assert.Contains(t, published.Reason, "connection reset")
}

func TestRegistrationService_Register_PublishFailureStillReturnsOrphanError(t *testing.T) {
	fx := createTestRegistrationService(t)

	ctx := context.Background()
	input := clientRegisterInput()

	fx.identity.EXPECT().
		CreateIdentity(ctx, input.Email, input.Password, "Jane Doe").
		Return("uid-orphan-2", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(errors.New("insert failed"))

	fx.identity.EXPECT().DeleteIdentity(ctx, "uid-orphan-2").Return(errors.New("still down"))
	fx.publisher.EXPECT().
		PublishOrphanedIdentity(ctx, mock.AnythingOfType("*service.OrphanedIdentityEvent")).
		Return(errors.New("topic unavailable"))

	_, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOrphanedIdentity)
}

func TestRegistrationService_Register_UnknownRoleRejected(t *testing.T) {
	fx := createTestRegistrationService(t)

	ctx := context.Background()
	input := clientRegisterInput()
	input.Role = "merchant"

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
