package model

import (
	"time"

	"github.com/google/uuid"
)

// WorkerModel mirrors the 'workers' table. Skills and languages are stored
// as jsonb through GORM's json serializer. Position carries the category
// name captured at registration and is not updated on category renames.
type WorkerModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	IdentityUID string    `gorm:"type:varchar(128);uniqueIndex;not null"`
	Email       string    `gorm:"type:varchar(255);not null"`
	FirstName   string    `gorm:"type:varchar(100);not null"`
	LastName    string    `gorm:"type:varchar(100);not null"`
	Phone       string    `gorm:"type:varchar(32)"`
	Address     string    `gorm:"type:text"`
	Image       string    `gorm:"type:text"`
	Bio         string    `gorm:"type:text"`
	Age         int
	Skills      []string `gorm:"type:jsonb;serializer:json"`
	Languages   []string `gorm:"type:jsonb;serializer:json"`
	Position    string   `gorm:"type:varchar(100)"`
	IsActive    bool     `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Services []*ServiceModel `gorm:"many2many:worker_services;joinForeignKey:WorkerID;joinReferences:ServiceID"`
}

// TableName explicitly sets the table name for GORM.
func (WorkerModel) TableName() string {
	return "workers"
}

// WorkerServiceModel mirrors the 'worker_services' join table. Rows are
// written and deleted explicitly so the delete ordering against the worker
// row stays under repository control.
type WorkerServiceModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	WorkerID  uuid.UUID `gorm:"type:uuid;not null;index"`
	ServiceID uuid.UUID `gorm:"type:uuid;not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (WorkerServiceModel) TableName() string {
	return "worker_services"
}
