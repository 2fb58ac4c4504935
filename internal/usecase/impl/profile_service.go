package impl

import (
	"context"
	"log/slog"
	"time"

	"fixly/config"
	deliverycontext "fixly/internal/delivery/context"
	"fixly/internal/domain/entity"
	domainerrors "fixly/internal/domain/errors"
	"fixly/internal/domain/repository"
	"fixly/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface. It owns the
// identity-to-profile mapping: the provider only knows a uid, the profile
// store knows which table that uid lives in.
type profileService struct {
	txManager  repository.TransactionManager
	clientRepo repository.ClientRepository
	workerRepo repository.WorkerRepository
	reconcile  *config.ReconcileConfig
	logger     *slog.Logger
}

// ProfileServiceParams holds dependencies for profileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	ClientRepo repository.ClientRepository
	WorkerRepo repository.WorkerRepository
	Config     *config.Config
	Logger     *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	reconcile := config.DefaultReconcile()
	if params.Config != nil && params.Config.Reconcile != nil {
		reconcile = params.Config.Reconcile
	}

	return &profileService{
		txManager:  params.TxManager,
		clientRepo: params.ClientRepo,
		workerRepo: params.WorkerRepo,
		reconcile:  reconcile,
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Resolve maps an identity uid to its profile. The client table is checked
// first, then the worker table; a uid in neither is a not-found, never an
// invented default.
func (srv *profileService) Resolve(ctx context.Context, identityUID string) (*entity.Profile, error) {
	client, err := srv.clientRepo.FindByIdentityUID(ctx, identityUID)
	if err == nil {
		return entity.ClientProfile(client), nil
	}
	if !errors.Is(err, repository.ErrClientNotFound) {
		return nil, errors.Wrap(err, "failed to look up client profile")
	}

	worker, err := srv.workerRepo.FindByIdentityUID(ctx, identityUID)
	if err == nil {
		return entity.WorkerProfile(worker), nil
	}
	if !errors.Is(err, repository.ErrWorkerNotFound) {
		return nil, errors.Wrap(err, "failed to look up worker profile")
	}

	return nil, errors.Wrap(domainerrors.ErrProfileNotFound, "identity has no profile row")
}

// ResolveWithRetry retries Resolve on the not-found case only, absorbing the
// write lag between identity creation and the profile row landing. The wait
// before attempt n+1 is n times the base delay. Exhaustion surfaces the same
// not-found the caller would have seen without retries.
func (srv *profileService) ResolveWithRetry(ctx context.Context, identityUID string) (*entity.Profile, error) {
	maxAttempts := srv.reconcile.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		profile, err := srv.Resolve(ctx, identityUID)
		if err == nil {
			if attempt > 1 {
				srv.log(ctx).Debug("Profile resolved after retry",
					slog.String("identityUID", identityUID), slog.Int("attempt", attempt))
			}

			return profile, nil
		}

		// Only the propagation window is worth retrying. Anything else is a
		// real failure and repeating it would just repeat the failure.
		if !errors.Is(err, domainerrors.ErrProfileNotFound) {
			return nil, err
		}
		lastErr = err

		if attempt == maxAttempts {
			break
		}

		srv.log(ctx).Debug("Profile not yet visible, retrying",
			slog.String("identityUID", identityUID), slog.Int("attempt", attempt))

		timer := time.NewTimer(time.Duration(attempt) * srv.reconcile.BaseDelay)
		select {
		case <-ctx.Done():
			timer.Stop()

			return nil, errors.Wrap(ctx.Err(), "profile resolution cancelled")
		case <-timer.C:
		}
	}

	srv.log(ctx).Warn("Profile resolution exhausted retries",
		slog.String("identityUID", identityUID), slog.Int("attempts", maxAttempts))

	return nil, lastErr
}

// UpdateProfile applies a partial update to whichever variant owns the uid.
// Omitted fields keep their stored values; worker-only fields are ignored for
// client profiles.
func (srv *profileService) UpdateProfile(ctx context.Context, identityUID string, input *usecase.UpdateProfileInput) (*entity.Profile, error) {
	var updated *entity.Profile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		client, err := repoFactory.ClientRepo().FindByIdentityUID(ctx, identityUID)
		if err == nil {
			applyClientUpdate(client, input)
			if err := repoFactory.ClientRepo().Update(ctx, client); err != nil {
				return errors.Wrap(err, "failed to update client profile")
			}
			updated = entity.ClientProfile(client)

			return nil
		}
		if !errors.Is(err, repository.ErrClientNotFound) {
			return errors.Wrap(err, "failed to look up client profile for update")
		}

		worker, err := repoFactory.WorkerRepo().FindByIdentityUID(ctx, identityUID)
		if err != nil {
			if errors.Is(err, repository.ErrWorkerNotFound) {
				return errors.Wrap(domainerrors.ErrProfileNotFound, "identity has no profile row")
			}

			return errors.Wrap(err, "failed to look up worker profile for update")
		}

		applyWorkerUpdate(worker, input)
		if err := repoFactory.WorkerRepo().Update(ctx, worker); err != nil {
			return errors.Wrap(err, "failed to update worker profile")
		}
		updated = entity.WorkerProfile(worker)

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Profile update failed", slog.String("identityUID", identityUID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Profile updated", slog.String("identityUID", identityUID), slog.String("kind", updated.Kind.String()))

	return updated, nil
}

func applyClientUpdate(client *entity.Client, input *usecase.UpdateProfileInput) {
	if input.FirstName != nil {
		client.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		client.LastName = *input.LastName
	}
	if input.Phone != nil {
		client.Phone = *input.Phone
	}
	if input.Address != nil {
		client.Address = *input.Address
	}
	if input.Image != nil {
		client.Image = *input.Image
	}
}

func applyWorkerUpdate(worker *entity.Worker, input *usecase.UpdateProfileInput) {
	if input.FirstName != nil {
		worker.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		worker.LastName = *input.LastName
	}
	if input.Phone != nil {
		worker.Phone = *input.Phone
	}
	if input.Address != nil {
		worker.Address = *input.Address
	}
	if input.Image != nil {
		worker.Image = *input.Image
	}
	if input.Bio != nil {
		worker.Bio = *input.Bio
	}
	if input.Age != nil {
		worker.Age = *input.Age
	}
	if input.Skills != nil {
		worker.Skills = *input.Skills
	}
	if input.Languages != nil {
		worker.Languages = *input.Languages
	}
	if input.IsActive != nil {
		worker.IsActive = *input.IsActive
	}
}
