package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Event is an admin-managed event listing (Mongoose Event.js). Registrations
// live in their own collection keyed by EventID; the embedded array of the
// original schema was never written to and is not carried over.
type Event struct {
	EventID     uuid.UUID `gorm:"column:event_id;type:uuid;primaryKey" json:"event_id"`
	Title       string    `gorm:"column:title;not null" json:"title"`
	Date        string    `gorm:"column:date" json:"date"`
	Description string    `gorm:"column:description" json:"description"`
	ImageURL    string    `gorm:"column:image_url" json:"imageUrl"`
	ButtonText  string    `gorm:"column:button_text" json:"buttonText"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (Event) TableName() string {
	return "Events"
}

func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.EventID == uuid.Nil {
		e.EventID = uuid.New()
	}
	return nil
}

// Registration is an event sign-up (Mongoose Registration.js). The referenced
// event must exist at creation time; the check is done by the service, not the
// datastore.
type Registration struct {
	RegistrationID uuid.UUID `gorm:"column:registration_id;type:uuid;primaryKey" json:"registration_id"`
	EventID        uuid.UUID `gorm:"column:event_id;type:uuid;not null;index" json:"eventId"`
	Name           string    `gorm:"column:name;not null" json:"name"`
	Contact        string    `gorm:"column:contact;not null" json:"contact"`
	Email          string    `gorm:"column:email;not null" json:"email"`
	RegisteredAt   time.Time `gorm:"column:registered_at" json:"registeredAt"`
}

func (Registration) TableName() string {
	return "Registrations"
}

func (r *Registration) BeforeCreate(tx *gorm.DB) error {
	if r.RegistrationID == uuid.Nil {
		r.RegistrationID = uuid.New()
	}
	return nil
}
