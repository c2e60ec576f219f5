package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CollectedDonation is a donation after pickup (Mongoose Donated.js). It is
// only ever created by the Collect transition and keeps the source donation's
// id so retried transitions are detected instead of duplicated. The donor's
// other_location field is deliberately not carried over.
type CollectedDonation struct {
	DonationID   uuid.UUID      `gorm:"column:donation_id;type:uuid;primaryKey" json:"donation_id"`
	DonorName    string         `gorm:"column:donor_name" json:"donor_name"`
	DonorEmail   string         `gorm:"column:donor_email" json:"donor_email"`
	DonorContact string         `gorm:"column:donor_contact" json:"donor_contact"`
	Pickup       string         `gorm:"column:pickup" json:"pickup"`
	Items        datatypes.JSON `gorm:"column:items" json:"items"`
	OtherItems   string         `gorm:"column:other_items" json:"other_items"`
	Images       datatypes.JSON `gorm:"column:images" json:"images"`
	CollectedAt  time.Time      `gorm:"column:collected_at" json:"collectedAt"`
}

func (CollectedDonation) TableName() string {
	return "CollectedDonations"
}
