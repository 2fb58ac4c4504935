package postgres

import (
	"context"
	"time"

	"fixly/internal/domain/entity"
	domainerrors "fixly/internal/domain/errors"
	"fixly/internal/domain/repository"
	"fixly/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// clientRepository implements the repository.ClientRepository interface.
type clientRepository struct {
	db *gorm.DB
}

// NewClientRepository is the constructor for clientRepository.
func NewClientRepository(db *gorm.DB) repository.ClientRepository {
	return &clientRepository{
		db: db,
	}
}

// FindByIdentityUID retrieves a client by the identity provider's uid.
func (repo *clientRepository) FindByIdentityUID(ctx context.Context, identityUID string) (*entity.Client, error) {
	var clientM model.ClientModel

	if err := repo.db.WithContext(ctx).
		Where("identity_uid = ?", identityUID).
		First(&clientM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrClientNotFound
		}

		return nil, errors.Wrap(err, "failed to find client by identity uid")
	}

	return toClientDomain(&clientM), nil
}

// FindByID retrieves a client by its row id.
func (repo *clientRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Client, error) {
	var clientM model.ClientModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&clientM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrClientNotFound
		}

		return nil, errors.Wrap(err, "failed to find client by ID")
	}

	return toClientDomain(&clientM), nil
}

// Create persists a new client profile.
func (repo *clientRepository) Create(ctx context.Context, client *entity.Client) error {
	clientM := fromClientDomain(client)

	if err := repo.db.WithContext(ctx).Create(clientM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("a profile already exists for this identity")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required profile information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create client profile")
	}

	// Update the entity with generated values
	client.ID = clientM.ID
	client.CreatedAt = clientM.CreatedAt
	client.UpdatedAt = clientM.UpdatedAt

	return nil
}

// Update modifies an existing client profile.
func (repo *clientRepository) Update(ctx context.Context, client *entity.Client) error {
	clientM := fromClientDomain(client)

	result := repo.db.WithContext(ctx).
		Model(&model.ClientModel{}).
		Where("id = ?", client.ID).
		Updates(clientM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update client profile")
	}
	if result.RowsAffected == 0 {
		return repository.ErrClientNotFound
	}

	return nil
}

// Delete removes a client profile.
func (repo *clientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ClientModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete client profile")
	}
	if result.RowsAffected == 0 {
		return repository.ErrClientNotFound
	}

	return nil
}

// List returns all clients, newest first.
func (repo *clientRepository) List(ctx context.Context) ([]*entity.Client, error) {
	var clientModels []*model.ClientModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&clientModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list clients")
	}

	clients := make([]*entity.Client, 0, len(clientModels))
	for _, clientM := range clientModels {
		clients = append(clients, toClientDomain(clientM))
	}

	return clients, nil
}

// Count returns the total number of client profiles.
func (repo *clientRepository) Count(ctx context.Context) (int, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ClientModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count clients")
	}

	return int(count), nil
}

// CountCreatedSince returns the number of clients created at or after t.
func (repo *clientRepository) CountCreatedSince(ctx context.Context, t time.Time) (int, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ClientModel{}).
		Where("created_at >= ?", t).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count recent clients")
	}

	return int(count), nil
}

// fromClientDomain converts a domain entity to its persistence model.
func fromClientDomain(client *entity.Client) *model.ClientModel {
	return &model.ClientModel{
		ID:          client.ID,
		IdentityUID: client.IdentityUID,
		Email:       client.Email,
		FirstName:   client.FirstName,
		LastName:    client.LastName,
		Phone:       client.Phone,
		Address:     client.Address,
		Image:       client.Image,
		Role:        client.Role.String(),
		CreatedAt:   client.CreatedAt,
		UpdatedAt:   client.UpdatedAt,
	}
}

// toClientDomain converts a persistence model back to its domain entity.
func toClientDomain(clientM *model.ClientModel) *entity.Client {
	return &entity.Client{
		ID:          clientM.ID,
		IdentityUID: clientM.IdentityUID,
		Email:       clientM.Email,
		FirstName:   clientM.FirstName,
		LastName:    clientM.LastName,
		Phone:       clientM.Phone,
		Address:     clientM.Address,
		Image:       clientM.Image,
		Role:        entity.Role(clientM.Role),
		CreatedAt:   clientM.CreatedAt,
		UpdatedAt:   clientM.UpdatedAt,
	}
}
