package impl

import (
	"context"
	"fmt"
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

// recentSignupWindow is the lookback used for the dashboard signup counter.
const recentSignupWindow = 7 * 24 * time.Hour

// catalogService implements the CatalogUsecase interface. It covers the
// public worker catalog and the administrative mutations on categories,
// workers, clients and feedback.
type catalogService struct {
	txManager    repository.TransactionManager
	serviceRepo  repository.ServiceRepository
	workerRepo   repository.WorkerRepository
	clientRepo   repository.ClientRepository
	feedbackRepo repository.FeedbackRepository
	identity     service.IdentityProvider
	logger       *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	ServiceRepo  repository.ServiceRepository
	WorkerRepo   repository.WorkerRepository
	ClientRepo   repository.ClientRepository
	FeedbackRepo repository.FeedbackRepository
	Identity     service.IdentityProvider
	Logger       *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		txManager:    params.TxManager,
		serviceRepo:  params.ServiceRepo,
		workerRepo:   params.WorkerRepo,
		clientRepo:   params.ClientRepo,
		feedbackRepo: params.FeedbackRepo,
		identity:     params.Identity,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// --- Service categories ---

// ListServices returns all categories ordered by id.
func (srv *catalogService) ListServices(ctx context.Context) ([]*entity.Service, error) {
	services, err := srv.serviceRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list service categories")
	}

	return services, nil
}

// ListServicesWithUsage returns categories with worker counts, by name.
func (srv *catalogService) ListServicesWithUsage(ctx context.Context) ([]*repository.ServiceUsage, error) {
	usages, err := srv.serviceRepo.ListWithUsage(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list service categories with usage")
	}

	return usages, nil
}

// CreateService adds a new category.
func (srv *catalogService) CreateService(ctx context.Context, input usecase.CreateServiceInput) (*entity.Service, error) {
	if input.Name == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "service name is required")
	}

	newService := &entity.Service{Name: input.Name}
	if err := srv.serviceRepo.Create(ctx, newService); err != nil {
		srv.log(ctx).Error("Failed to create service category", slog.String("name", input.Name), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create service category")
	}

	srv.log(ctx).Info("Service category created", slog.Any("serviceID", newService.ID), slog.String("name", newService.Name))

	return newService, nil
}

// RenameService changes a category's display name. Worker position fields
// denormalized from the old name keep their historical value.
func (srv *catalogService) RenameService(ctx context.Context, input usecase.RenameServiceInput) (*entity.Service, error) {
	if input.Name == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "service name is required")
	}

	var renamed *entity.Service
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		category, err := repoFactory.ServiceRepo().FindByID(ctx, input.ID)
		if err != nil {
			if errors.Is(err, repository.ErrServiceNotFound) {
				return errors.Wrap(domainerrors.ErrServiceNotFound, "cannot rename service")
			}

			return errors.Wrap(err, "failed to load service category for rename")
		}

		category.Name = input.Name
		if err := repoFactory.ServiceRepo().Update(ctx, category); err != nil {
			return errors.Wrap(err, "failed to rename service category")
		}
		renamed = category

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Service category renamed", slog.Any("serviceID", renamed.ID), slog.String("name", renamed.Name))

	return renamed, nil
}

// DeleteService removes a category only when no worker references it. The
// check and the delete run in one transaction so no association can appear
// between them.
func (srv *catalogService) DeleteService(ctx context.Context, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		serviceRepo := repoFactory.ServiceRepo()

		if _, err := serviceRepo.FindByID(ctx, id); err != nil {
			if errors.Is(err, repository.ErrServiceNotFound) {
				return errors.Wrap(domainerrors.ErrServiceNotFound, "cannot delete service")
			}

			return errors.Wrap(err, "failed to load service category for delete")
		}

		count, err := serviceRepo.CountAssociations(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to count service associations")
		}
		if count > 0 {
			return domainerrors.ErrServiceInUse.WithDetails(
				fmt.Sprintf("Cannot delete service. %d worker(s) are using this service.", count))
		}

		if err := serviceRepo.Delete(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete service category")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Service category delete rejected", slog.Any("serviceID", id), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Service category deleted", slog.Any("serviceID", id))

	return nil
}

// --- Workers ---

// ListWorkers returns the public catalog with each worker's derived rating.
// Ratings are fetched grouped to avoid one query per worker.
func (srv *catalogService) ListWorkers(ctx context.Context) ([]*usecase.WorkerWithRating, error) {
	workers, err := srv.workerRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list workers")
	}

	workerIDs := make([]uuid.UUID, 0, len(workers))
	for _, worker := range workers {
		workerIDs = append(workerIDs, worker.ID)
	}

	ratingsByWorker, err := srv.feedbackRepo.RatingsByWorkers(ctx, workerIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load worker ratings")
	}

	result := make([]*usecase.WorkerWithRating, 0, len(workers))
	for _, worker := range workers {
		result = append(result, &usecase.WorkerWithRating{
			Worker: worker,
			Rating: entity.SummarizeRatings(ratingsByWorker[worker.ID]),
		})
	}

	return result, nil
}

// GetWorker returns one worker with its derived rating.
func (srv *catalogService) GetWorker(ctx context.Context, id uuid.UUID) (*usecase.WorkerWithRating, error) {
	worker, err := srv.workerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrWorkerNotFound) {
			return nil, errors.Wrap(domainerrors.ErrWorkerNotFound, "worker lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find worker")
	}

	ratings, err := srv.feedbackRepo.RatingsByWorker(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load worker ratings")
	}

	return &usecase.WorkerWithRating{
		Worker: worker,
		Rating: entity.SummarizeRatings(ratings),
	}, nil
}

// ToggleWorkerActive flips the availability flag and returns the worker with
// the new value.
func (srv *catalogService) ToggleWorkerActive(ctx context.Context, id uuid.UUID) (*entity.Worker, error) {
	var toggled *entity.Worker
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		worker, err := repoFactory.WorkerRepo().FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrWorkerNotFound) {
				return errors.Wrap(domainerrors.ErrWorkerNotFound, "cannot toggle worker")
			}

			return errors.Wrap(err, "failed to load worker for toggle")
		}

		worker.IsActive = !worker.IsActive
		if err := repoFactory.WorkerRepo().Update(ctx, worker); err != nil {
			return errors.Wrap(err, "failed to update worker availability")
		}
		toggled = worker

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Worker availability toggled", slog.Any("workerID", id), slog.Bool("isActive", toggled.IsActive))

	return toggled, nil
}

// RemoveWorker deletes the association rows first, then the worker row. The
// store enforces the foreign key, so the order is load-bearing. The provider
// identity is removed best-effort afterwards; the profile delete stands
// either way.
func (srv *catalogService) RemoveWorker(ctx context.Context, id uuid.UUID) error {
	var identityUID string
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		workerRepo := repoFactory.WorkerRepo()

		worker, err := workerRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrWorkerNotFound) {
				return errors.Wrap(domainerrors.ErrWorkerNotFound, "cannot remove worker")
			}

			return errors.Wrap(err, "failed to load worker for removal")
		}
		identityUID = worker.IdentityUID

		if err := workerRepo.DeleteAssociations(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete worker service associations")
		}
		if err := workerRepo.Delete(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete worker")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.deleteIdentityBestEffort(ctx, identityUID)
	srv.log(ctx).Info("Worker removed", slog.Any("workerID", id))

	return nil
}

// --- Clients ---

// ListClients returns all client profiles for the admin view.
func (srv *catalogService) ListClients(ctx context.Context) ([]*entity.Client, error) {
	clients, err := srv.clientRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list clients")
	}

	return clients, nil
}

// RemoveClient deletes a client profile and best-effort its identity.
func (srv *catalogService) RemoveClient(ctx context.Context, id uuid.UUID) error {
	var identityUID string
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		client, err := repoFactory.ClientRepo().FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrClientNotFound) {
				return errors.Wrap(domainerrors.ErrProfileNotFound, "cannot remove client")
			}

			return errors.Wrap(err, "failed to load client for removal")
		}
		identityUID = client.IdentityUID

		if err := repoFactory.ClientRepo().Delete(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete client")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.deleteIdentityBestEffort(ctx, identityUID)
	srv.log(ctx).Info("Client removed", slog.Any("clientID", id))

	return nil
}

// deleteIdentityBestEffort removes the provider identity after a profile
// delete. A missing identity is already the desired end state; other
// failures are logged and left for out-of-band cleanup.
func (srv *catalogService) deleteIdentityBestEffort(ctx context.Context, identityUID string) {
	if identityUID == "" {
		return
	}

	if err := srv.identity.DeleteIdentity(ctx, identityUID); err != nil && !errors.Is(err, service.ErrIdentityNotFound) {
		srv.log(ctx).Error("Failed to delete provider identity after profile removal",
			slog.String("identityUID", identityUID), slog.Any("error", err))
	}
}

// --- Feedback moderation ---

// ListAllFeedback returns every feedback row for the moderation view.
func (srv *catalogService) ListAllFeedback(ctx context.Context) ([]*entity.Feedback, error) {
	feedbacks, err := srv.feedbackRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list feedback")
	}

	return feedbacks, nil
}

// RemoveFeedback deletes one feedback row. Summaries pick the change up on
// the next read because nothing aggregated is stored.
func (srv *catalogService) RemoveFeedback(ctx context.Context, id uuid.UUID) error {
	if err := srv.feedbackRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrFeedbackNotFound) {
			return errors.Wrap(domainerrors.ErrFeedbackNotFound, "cannot remove feedback")
		}

		return errors.Wrap(err, "failed to delete feedback")
	}

	srv.log(ctx).Info("Feedback removed", slog.Any("feedbackID", id))

	return nil
}

// --- Dashboard ---

// Stats computes the admin dashboard aggregates. The average rating reuses
// the same fold as per-worker summaries, over all feedback rows.
func (srv *catalogService) Stats(ctx context.Context) (*usecase.AdminStats, error) {
	totalClients, err := srv.clientRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count clients")
	}

	totalWorkers, err := srv.workerRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count workers")
	}

	activeWorkers, err := srv.workerRepo.CountActive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count active workers")
	}

	totalServices, err := srv.serviceRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count service categories")
	}

	totalFeedbacks, err := srv.feedbackRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count feedback")
	}

	recentSignups, err := srv.clientRepo.CountCreatedSince(ctx, time.Now().Add(-recentSignupWindow))
	if err != nil {
		return nil, errors.Wrap(err, "failed to count recent signups")
	}

	ratings, err := srv.feedbackRepo.AllRatings(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load ratings for stats")
	}

	return &usecase.AdminStats{
		TotalClients:   totalClients,
		TotalWorkers:   totalWorkers,
		ActiveWorkers:  activeWorkers,
		TotalServices:  totalServices,
		TotalFeedbacks: totalFeedbacks,
		RecentSignups:  recentSignups,
		AverageRating:  entity.SummarizeRatings(ratings).Average,
	}, nil
}
