package model

import (
	"time"

	"github.com/google/uuid"
)

// ClientModel mirrors the 'clients' table. PostgreSQL generates UUIDs via
// uuid_generate_v7(). The identity_uid column holds the identity provider's
// uid; it is the join key between the two account stores and is unique here.
type ClientModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	IdentityUID string    `gorm:"type:varchar(128);uniqueIndex;not null"`
	Email       string    `gorm:"type:varchar(255);not null"`
	FirstName   string    `gorm:"type:varchar(100);not null"`
	LastName    string    `gorm:"type:varchar(100);not null"`
	Phone       string    `gorm:"type:varchar(32)"`
	Address     string    `gorm:"type:text"`
	Image       string    `gorm:"type:text"`
	Role        string    `gorm:"type:varchar(16);not null;default:'USER'"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ClientModel) TableName() string {
	return "clients"
}
