package model

import (
	"time"

	"github.com/google/uuid"
)

// FeedbackModel mirrors the 'feedbacks' table. Ratings are constrained to
// 1..5 at the schema level as well; aggregates are never stored.
type FeedbackModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	WorkerID  uuid.UUID `gorm:"type:uuid;not null;index"`
	ClientID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Rating    int       `gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Comment   string    `gorm:"type:text"`
	CreatedAt time.Time

	Author *ClientModel `gorm:"foreignKey:ClientID"`
}

// TableName explicitly sets the table name for GORM.
func (FeedbackModel) TableName() string {
	return "feedbacks"
}
