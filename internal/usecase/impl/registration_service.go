// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "fixly/internal/delivery/context"
	"fixly/internal/domain/entity"
	domainerrors "fixly/internal/domain/errors"
	"fixly/internal/domain/repository"
	"fixly/internal/domain/service"
	"fixly/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// registrationService implements the RegistrationUsecase interface. Account
// creation spans two stores that share no transaction: the identity provider
// owns credentials, the profile store owns everything else. The identity is
// created first and deleted again when any later step fails, so a registered
// email never points at a missing profile.
type registrationService struct {
	txManager repository.TransactionManager
	identity  service.IdentityProvider
	publisher service.EventPublisher
	logger    *slog.Logger
}

// RegistrationServiceParams holds dependencies for registrationService, injected by Fx.
type RegistrationServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Identity  service.IdentityProvider
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewRegistrationService is the constructor for registrationService.
func NewRegistrationService(params RegistrationServiceParams) usecase.RegistrationUsecase {
	return &registrationService{
		txManager: params.TxManager,
		identity:  params.Identity,
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *registrationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete registration sequence. Steps after the
// identity creation are compensated by deleting the identity; a compensation
// failure is published for out-of-band cleanup instead of being swallowed.
func (srv *registrationService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("role", input.Role), slog.String("email", input.Email))

	if err := validateRegisterInput(&input); err != nil {
		srv.log(ctx).Warn("Registration input rejected", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	// Step 1: create the identity. An email conflict is terminal and leaves
	// nothing to undo.
	identityUID, err := srv.identity.CreateIdentity(ctx, input.Email, input.Password, input.FirstName+" "+input.LastName)
	if err != nil {
		if errors.Is(err, service.ErrEmailExists) {
			srv.log(ctx).Warn("Registration email already taken", slog.String("email", input.Email))

			return nil, errors.Wrap(domainerrors.ErrEmailTaken, "registration failed")
		}

		srv.log(ctx).Error("Identity creation failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrProviderFailure, err.Error())
	}

	// Step 2: create the profile row. Any failure from here on triggers the
	// compensating identity delete.
	profile, err := srv.createProfile(ctx, identityUID, &input)
	if err != nil {
		return nil, srv.compensate(ctx, identityUID, &input, err)
	}

	srv.log(ctx).Debug("Registration completed", slog.String("role", input.Role), slog.String("identityUID", identityUID))

	return &usecase.RegisterOutput{Profile: profile}, nil
}

func validateRegisterInput(input *usecase.RegisterInput) error {
	if input.Email == "" || input.Password == "" || input.FirstName == "" || input.LastName == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed, "missing required registration fields")
	}

	switch input.Role {
	case entity.ProfileKindClient.String():
	case entity.ProfileKindWorker.String():
		if input.ServiceID == uuid.Nil {
			return errors.Wrap(domainerrors.ErrInvalidService, "worker registration requires a service category")
		}
	default:
		return errors.Wrap(domainerrors.ErrValidationFailed, "unknown registration role")
	}

	return nil
}

// createProfile writes the profile row (and, for workers, the service
// association) in one transaction.
func (srv *registrationService) createProfile(ctx context.Context, identityUID string, input *usecase.RegisterInput) (*entity.Profile, error) {
	var profile *entity.Profile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if input.Role == entity.ProfileKindWorker.String() {
			return srv.createWorkerProfile(ctx, repoFactory, identityUID, input, &profile)
		}

		return srv.createClientProfile(ctx, repoFactory, identityUID, input, &profile)
	})
	if err != nil {
		return nil, err
	}

	return profile, nil
}

func (srv *registrationService) createClientProfile(
	ctx context.Context,
	repoFactory repository.RepositoryFactory,
	identityUID string,
	input *usecase.RegisterInput,
	profile **entity.Profile,
) error {
	newClient := &entity.Client{
		IdentityUID: identityUID,
		Email:       input.Email,
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Phone:       input.Phone,
		Address:     input.Address,
		Role:        entity.RoleUser,
	}

	if err := repoFactory.ClientRepo().Create(ctx, newClient); err != nil {
		return errors.Wrap(err, "failed to create client profile during registration")
	}

	*profile = entity.ClientProfile(newClient)

	return nil
}

func (srv *registrationService) createWorkerProfile(
	ctx context.Context,
	repoFactory repository.RepositoryFactory,
	identityUID string,
	input *usecase.RegisterInput,
	profile **entity.Profile,
) error {
	// The category must exist before the worker row is written; its name is
	// denormalized into the worker's position at this moment.
	category, err := repoFactory.ServiceRepo().FindByID(ctx, input.ServiceID)
	if err != nil {
		if errors.Is(err, repository.ErrServiceNotFound) {
			return errors.Wrap(domainerrors.ErrInvalidService, "registration failed")
		}

		return errors.Wrap(err, "failed to look up service category during registration")
	}

	newWorker := &entity.Worker{
		IdentityUID: identityUID,
		Email:       input.Email,
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Phone:       input.Phone,
		Address:     input.Address,
		Position:    category.Name,
		IsActive:    true,
		Services:    []*entity.Service{category},
	}

	if err := repoFactory.WorkerRepo().Create(ctx, newWorker); err != nil {
		return errors.Wrap(err, "failed to create worker profile during registration")
	}

	*profile = entity.WorkerProfile(newWorker)

	return nil
}

// compensate deletes the identity created earlier in the sequence. When the
// delete also fails the identity is orphaned: the failure is logged and
// published so cleanup can happen out of band, and the caller sees a distinct
// error class.
func (srv *registrationService) compensate(ctx context.Context, identityUID string, input *usecase.RegisterInput, cause error) error {
	srv.log(ctx).Warn("Registration failed after identity creation, compensating",
		slog.String("identityUID", identityUID), slog.Any("error", cause))

	if delErr := srv.identity.DeleteIdentity(ctx, identityUID); delErr != nil {
		srv.log(ctx).Error("Compensating identity delete failed, identity orphaned",
			slog.String("identityUID", identityUID),
			slog.String("email", input.Email),
			slog.Any("deleteError", delErr),
			slog.Any("cause", cause))

		event := &service.OrphanedIdentityEvent{
			RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
			IdentityUID: identityUID,
			Email:       input.Email,
			Role:        input.Role,
			Reason:      cause.Error(),
			OccurredAt:  time.Now().UTC(),
		}
		if pubErr := srv.publisher.PublishOrphanedIdentity(ctx, event); pubErr != nil {
			srv.log(ctx).Error("Failed to publish orphaned identity event",
				slog.String("identityUID", identityUID), slog.Any("error", pubErr))
		}

		return errors.Wrap(domainerrors.ErrOrphanedIdentity, cause.Error())
	}

	srv.log(ctx).Debug("Compensating identity delete succeeded", slog.String("identityUID", identityUID))

	return errors.Wrap(cause, "registration rolled back")
}
