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

// serviceRepository implements the repository.ServiceRepository interface.
type serviceRepository struct {
	db *gorm.DB
}

// NewServiceRepository is the constructor for serviceRepository.
func NewServiceRepository(db *gorm.DB) repository.ServiceRepository {
	return &serviceRepository{
		db: db,
	}
}

// FindByID retrieves a category by id.
func (repo *serviceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
	var serviceM model.ServiceModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&serviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrServiceNotFound
		}

		return nil, errors.Wrap(err, "failed to find service by ID")
	}

	return toServiceDomain(&serviceM), nil
}

// Create persists a new category.
func (repo *serviceRepository) Create(ctx context.Context, service *entity.Service) error {
	serviceM := fromServiceDomain(service)

	if err := repo.db.WithContext(ctx).Create(serviceM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing service name")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create service")
	}

	// Update the entity with generated values
	service.ID = serviceM.ID
	service.CreatedAt = serviceM.CreatedAt
	service.UpdatedAt = serviceM.UpdatedAt

	return nil
}

// Update modifies an existing category (rename).
func (repo *serviceRepository) Update(ctx context.Context, service *entity.Service) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ServiceModel{}).
		Where("id = ?", service.ID).
		Update("name", service.Name)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update service")
	}
	if result.RowsAffected == 0 {
		return repository.ErrServiceNotFound
	}

	return nil
}

// Delete removes a category row. The in-use guard runs in the use case;
// the foreign key check here is the backstop for racing registrations.
func (repo *serviceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ServiceModel{})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrServiceInUse
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete service")
	}
	if result.RowsAffected == 0 {
		return repository.ErrServiceNotFound
	}

	return nil
}

// List returns all categories ordered by id.
func (repo *serviceRepository) List(ctx context.Context) ([]*entity.Service, error) {
	var serviceModels []*model.ServiceModel

	if err := repo.db.WithContext(ctx).
		Order("id").
		Find(&serviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list services")
	}

	services := make([]*entity.Service, 0, len(serviceModels))
	for _, serviceM := range serviceModels {
		services = append(services, toServiceDomain(serviceM))
	}

	return services, nil
}

// ListWithUsage returns all categories with their association counts,
// ordered by name.
func (repo *serviceRepository) ListWithUsage(ctx context.Context) ([]*repository.ServiceUsage, error) {
	var rows []struct {
		model.ServiceModel
		WorkerCount int
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.ServiceModel{}).
		Select("services.*, COUNT(worker_services.id) AS worker_count").
		Joins("LEFT JOIN worker_services ON worker_services.service_id = services.id").
		Group("services.id").
		Order("services.name").
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list services with usage")
	}

	usages := make([]*repository.ServiceUsage, 0, len(rows))
	for i := range rows {
		usages = append(usages, &repository.ServiceUsage{
			Service:     toServiceDomain(&rows[i].ServiceModel),
			WorkerCount: rows[i].WorkerCount,
		})
	}

	return usages, nil
}

// CountAssociations returns the number of worker-service rows referencing
// the category.
func (repo *serviceRepository) CountAssociations(ctx context.Context, serviceID uuid.UUID) (int, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.WorkerServiceModel{}).
		Where("service_id = ?", serviceID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count service associations")
	}

	return int(count), nil
}

// Count returns the total number of categories.
func (repo *serviceRepository) Count(ctx context.Context) (int, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ServiceModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count services")
	}

	return int(count), nil
}

// fromServiceDomain converts a domain entity to its persistence model.
func fromServiceDomain(service *entity.Service) *model.ServiceModel {
	return &model.ServiceModel{
		ID:        service.ID,
		Name:      service.Name,
		CreatedAt: service.CreatedAt,
		UpdatedAt: service.UpdatedAt,
	}
}

// toServiceDomain converts a persistence model back to its domain entity.
func toServiceDomain(serviceM *model.ServiceModel) *entity.Service {
	return &entity.Service{
		ID:        serviceM.ID,
		Name:      serviceM.Name,
		CreatedAt: serviceM.CreatedAt,
		UpdatedAt: serviceM.UpdatedAt,
	}
}
