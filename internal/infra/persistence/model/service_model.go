package model

import (
	"time"

	"github.com/google/uuid"
)

// ServiceModel mirrors the 'services' table. Category names carry no unique
// constraint; uniqueness is an operator expectation, not a schema rule.
type ServiceModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string    `gorm:"type:varchar(100);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ServiceModel) TableName() string {
	return "services"
}
