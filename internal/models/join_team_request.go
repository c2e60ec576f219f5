package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Join-team request statuses. Approved requests are deleted, not marked.
const (
	JoinTeamStatusPending  = "Pending"
	JoinTeamStatusRejected = "Rejected"
)

// JoinTeamRequest is a volunteer application (Mongoose joinTeam.js).
// Year is "1".."4"; Interest is one of collection/sorting/distribution/awareness/event.
type JoinTeamRequest struct {
	RequestID  uuid.UUID `gorm:"column:request_id;type:uuid;primaryKey" json:"request_id"`
	Name       string    `gorm:"column:name;not null" json:"name"`
	Email      string    `gorm:"column:email;not null" json:"email"`
	Phone      string    `gorm:"column:phone;not null" json:"phone"`
	Department string    `gorm:"column:department;not null" json:"department"`
	Year       string    `gorm:"column:year;not null" json:"year"`
	Interest   string    `gorm:"column:interest;not null" json:"interest"`
	Message    string    `gorm:"column:message;not null" json:"message"`
	Status     string    `gorm:"column:status;default:Pending" json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (JoinTeamRequest) TableName() string {
	return "JoinTeamRequests"
}

func (j *JoinTeamRequest) BeforeCreate(tx *gorm.DB) error {
	if j.RequestID == uuid.Nil {
		j.RequestID = uuid.New()
	}
	return nil
}
