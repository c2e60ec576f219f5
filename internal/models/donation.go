package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Donation is a pending donation awaiting collection (Mongoose Donation.js).
// Items and Images are JSON arrays of strings.
type Donation struct {
	DonationID    uuid.UUID      `gorm:"column:donation_id;type:uuid;primaryKey" json:"donation_id"`
	Items         datatypes.JSON `gorm:"column:items;not null" json:"items"`
	OtherItems    string         `gorm:"column:other_items" json:"other_items"`
	DonorName     string         `gorm:"column:donor_name;not null" json:"donor_name"`
	DonorEmail    string         `gorm:"column:donor_email;not null" json:"donor_email"`
	DonorContact  string         `gorm:"column:donor_contact;not null" json:"donor_contact"`
	Pickup        string         `gorm:"column:pickup;not null" json:"pickup"`
	OtherLocation string         `gorm:"column:other_location" json:"other_location,omitempty"`
	Images        datatypes.JSON `gorm:"column:images;not null" json:"images"`
	CreatedAt     time.Time      `json:"createdAt"`
}

func (Donation) TableName() string {
	return "Donations"
}

func (d *Donation) BeforeCreate(tx *gorm.DB) error {
	if d.DonationID == uuid.Nil {
		d.DonationID = uuid.New()
	}
	return nil
}
