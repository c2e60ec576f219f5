package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserProfile is app-side profile data keyed by the identity-provider subject
// id (Mongoose User.js). Created lazily on first profile view.
type UserProfile struct {
	ProfileID uuid.UUID `gorm:"column:profile_id;type:uuid;primaryKey" json:"profile_id"`
	SubjectID string    `gorm:"column:subject_id;not null;uniqueIndex" json:"firebase_uid"`
	Email     string    `gorm:"column:email;not null" json:"email"`
	Name      string    `gorm:"column:name" json:"name"`
	Contact   string    `gorm:"column:contact" json:"contact"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (UserProfile) TableName() string {
	return "UserProfiles"
}

func (u *UserProfile) BeforeCreate(tx *gorm.DB) error {
	if u.ProfileID == uuid.Nil {
		u.ProfileID = uuid.New()
	}
	return nil
}
