package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Beneficiary records a distributed donation together with its recipient
// (Mongoose Beneficiary.js). Created only by the Distribute transition; keeps
// the donation id from the collected stage.
type Beneficiary struct {
	DonationID    uuid.UUID      `gorm:"column:donation_id;type:uuid;primaryKey" json:"donation_id"`
	Name          string         `gorm:"column:name;not null" json:"name"`
	Contact       string         `gorm:"column:contact" json:"contact"`
	Address       string         `gorm:"column:address;not null" json:"address"`
	DonorName     string         `gorm:"column:donor_name" json:"donor_name"`
	DonorEmail    string         `gorm:"column:donor_email" json:"donor_email"`
	DonorContact  string         `gorm:"column:donor_contact" json:"donor_contact"`
	Pickup        string         `gorm:"column:pickup" json:"pickup"`
	Items         datatypes.JSON `gorm:"column:items" json:"items"`
	OtherItems    string         `gorm:"column:other_items" json:"other_items"`
	Images        datatypes.JSON `gorm:"column:images" json:"images"`
	CollectedAt   time.Time      `gorm:"column:collected_at" json:"collectedAt"`
	DistributedAt time.Time      `gorm:"column:distributed_at" json:"donatedAt"`
}

func (Beneficiary) TableName() string {
	return "Beneficiaries"
}
