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

// workerRepository implements the repository.WorkerRepository interface.
type workerRepository struct {
	db *gorm.DB
}

// NewWorkerRepository is the constructor for workerRepository.
func NewWorkerRepository(db *gorm.DB) repository.WorkerRepository {
	return &workerRepository{
		db: db,
	}
}

// FindByIdentityUID retrieves a worker by the identity provider's uid.
func (repo *workerRepository) FindByIdentityUID(ctx context.Context, identityUID string) (*entity.Worker, error) {
	var workerM model.WorkerModel

	if err := repo.db.WithContext(ctx).
		Preload("Services").
		Where("identity_uid = ?", identityUID).
		First(&workerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrWorkerNotFound
		}

		return nil, errors.Wrap(err, "failed to find worker by identity uid")
	}

	return toWorkerDomain(&workerM), nil
}

// FindByID retrieves a worker by its row id.
func (repo *workerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Worker, error) {
	var workerM model.WorkerModel

	if err := repo.db.WithContext(ctx).
		Preload("Services").
		Where("id = ?", id).
		First(&workerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrWorkerNotFound
		}

		return nil, errors.Wrap(err, "failed to find worker by ID")
	}

	return toWorkerDomain(&workerM), nil
}

// Create persists a new worker profile together with its service
// association rows. Associations are inserted explicitly rather than
// through GORM's many2many upsert so the rows stay plain inserts.
func (repo *workerRepository) Create(ctx context.Context, worker *entity.Worker) error {
	workerM := fromWorkerDomain(worker)

	if err := repo.db.WithContext(ctx).
		Omit("Services").
		Create(workerM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("a profile already exists for this identity")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required profile information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create worker profile")
	}

	for _, service := range worker.Services {
		association := &model.WorkerServiceModel{
			WorkerID:  workerM.ID,
			ServiceID: service.ID,
		}
		if err := repo.db.WithContext(ctx).Create(association).Error; err != nil {
			if isForeignKeyConstraintViolation(err) {
				return domainerrors.ErrInvalidService.WrapMessage("unknown service reference")
			}

			return domainerrors.NewDatabaseExecuteError(err, "failed to create worker service association")
		}
	}

	// Update the entity with generated values
	worker.ID = workerM.ID
	worker.CreatedAt = workerM.CreatedAt
	worker.UpdatedAt = workerM.UpdatedAt

	return nil
}

// Update modifies an existing worker profile. Service associations are
// left untouched.
func (repo *workerRepository) Update(ctx context.Context, worker *entity.Worker) error {
	workerM := fromWorkerDomain(worker)

	result := repo.db.WithContext(ctx).
		Model(&model.WorkerModel{}).
		Where("id = ?", worker.ID).
		Omit("Services").
		Select("email", "first_name", "last_name", "phone", "address", "image",
			"bio", "age", "skills", "languages", "position", "is_active").
		Updates(workerM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update worker profile")
	}
	if result.RowsAffected == 0 {
		return repository.ErrWorkerNotFound
	}

	return nil
}

// DeleteAssociations removes the worker's service association rows. The
// foreign key on worker_services means this must run before Delete.
func (repo *workerRepository) DeleteAssociations(ctx context.Context, workerID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("worker_id = ?", workerID).
		Delete(&model.WorkerServiceModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete worker service associations")
	}

	return nil
}

// Delete removes the worker row itself.
func (repo *workerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.WorkerModel{})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrConflict.WrapMessage("worker still has dependent rows")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete worker profile")
	}
	if result.RowsAffected == 0 {
		return repository.ErrWorkerNotFound
	}

	return nil
}

// List returns all workers, newest first, with associations preloaded.
func (repo *workerRepository) List(ctx context.Context) ([]*entity.Worker, error) {
	var workerModels []*model.WorkerModel

	if err := repo.db.WithContext(ctx).
		Preload("Services").
		Order("created_at DESC").
		Find(&workerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list workers")
	}

	workers := make([]*entity.Worker, 0, len(workerModels))
	for _, workerM := range workerModels {
		workers = append(workers, toWorkerDomain(workerM))
	}

	return workers, nil
}

// Count returns the total number of worker profiles.
func (repo *workerRepository) Count(ctx context.Context) (int, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.WorkerModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count workers")
	}

	return int(count), nil
}

// CountActive returns the number of workers with the availability flag set.
func (repo *workerRepository) CountActive(ctx context.Context) (int, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.WorkerModel{}).
		Where("is_active = ?", true).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count active workers")
	}

	return int(count), nil
}

// fromWorkerDomain converts a domain entity to its persistence model.
func fromWorkerDomain(worker *entity.Worker) *model.WorkerModel {
	return &model.WorkerModel{
		ID:          worker.ID,
		IdentityUID: worker.IdentityUID,
		Email:       worker.Email,
		FirstName:   worker.FirstName,
		LastName:    worker.LastName,
		Phone:       worker.Phone,
		Address:     worker.Address,
		Image:       worker.Image,
		Bio:         worker.Bio,
		Age:         worker.Age,
		Skills:      worker.Skills,
		Languages:   worker.Languages,
		Position:    worker.Position,
		IsActive:    worker.IsActive,
		CreatedAt:   worker.CreatedAt,
		UpdatedAt:   worker.UpdatedAt,
	}
}

// toWorkerDomain converts a persistence model back to its domain entity.
func toWorkerDomain(workerM *model.WorkerModel) *entity.Worker {
	services := make([]*entity.Service, 0, len(workerM.Services))
	for _, serviceM := range workerM.Services {
		services = append(services, toServiceDomain(serviceM))
	}

	return &entity.Worker{
		ID:          workerM.ID,
		IdentityUID: workerM.IdentityUID,
		Email:       workerM.Email,
		FirstName:   workerM.FirstName,
		LastName:    workerM.LastName,
		Phone:       workerM.Phone,
		Address:     workerM.Address,
		Image:       workerM.Image,
		Bio:         workerM.Bio,
		Age:         workerM.Age,
		Skills:      workerM.Skills,
		Languages:   workerM.Languages,
		Position:    workerM.Position,
		IsActive:    workerM.IsActive,
		Services:    services,
		CreatedAt:   workerM.CreatedAt,
		UpdatedAt:   workerM.UpdatedAt,
	}
}
