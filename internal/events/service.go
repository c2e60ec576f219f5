package events

import (
	"context"
	"errors"
	"time"

	"regive-backend/internal/models"
	"regive-backend/internal/pkg/apperrors"
	"regive-backend/internal/pkg/validation"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service manages event listings and their registrations. Registrations live
// in their own collection so a sign-up never mutates the event record.
type Service struct {
	DB *gorm.DB
}

// CreateInput is the typed shape of an event submission.
type CreateInput struct {
	Title       string `json:"title"`
	Date        string `json:"date"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	ButtonText  string `json:"buttonText"`
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*models.Event, error) {
	if in.Title == "" {
		return nil, apperrors.NewValidation("title", "Event title is required")
	}
	if in.ImageURL == "" {
		return nil, apperrors.NewValidation("imageUrl", "Please upload an image")
	}
	event := &models.Event{
		Title:       in.Title,
		Date:        in.Date,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		ButtonText:  in.ButtonText,
	}
	if err := s.DB.WithContext(ctx).Create(event).Error; err != nil {
		return nil, apperrors.NewStorage("create event", err)
	}
	return event, nil
}

// List returns all events, newest first.
func (s *Service) List(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	if err := s.DB.WithContext(ctx).Order("created_at DESC").Find(&events).Error; err != nil {
		return nil, apperrors.NewStorage("list events", err)
	}
	return events, nil
}

// RegisterInput is the typed shape of an event registration.
type RegisterInput struct {
	EventID uuid.UUID `json:"eventId"`
	Name    string    `json:"name"`
	Contact string    `json:"contact"`
	Email   string    `json:"email"`
}

// Register creates a registration after verifying the event exists. The
// existence check is the guard; the datastore does not enforce the reference.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*models.Registration, error) {
	if in.EventID == uuid.Nil || in.Name == "" || in.Contact == "" || in.Email == "" {
		return nil, apperrors.NewValidation("", "All fields are required")
	}
	if !validation.IsValidRegistrationEmail(in.Email) {
		return nil, apperrors.NewValidation("email", "Please use a valid Gmail address")
	}

	var event models.Event
	if err := s.DB.WithContext(ctx).Where("event_id = ?", in.EventID).First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("Event")
		}
		return nil, apperrors.NewStorage("find event", err)
	}

	registration := &models.Registration{
		EventID:      in.EventID,
		Name:         in.Name,
		Contact:      in.Contact,
		Email:        in.Email,
		RegisteredAt: time.Now(),
	}
	if err := s.DB.WithContext(ctx).Create(registration).Error; err != nil {
		return nil, apperrors.NewStorage("create registration", err)
	}
	return registration, nil
}

// Participants returns all registrations for an event.
func (s *Service) Participants(ctx context.Context, eventID uuid.UUID) ([]models.Registration, error) {
	var registrations []models.Registration
	if err := s.DB.WithContext(ctx).Where("event_id = ?", eventID).Find(&registrations).Error; err != nil {
		return nil, apperrors.NewStorage("list participants", err)
	}
	return registrations, nil
}

// Delete removes an event and cascades to its registrations in one
// transaction. Registrations for other events are untouched.
func (s *Service) Delete(ctx context.Context, eventID uuid.UUID) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.Event{}, "event_id = ?", eventID)
		if res.Error != nil {
			return apperrors.NewStorage("delete event", res.Error)
		}
		if res.RowsAffected == 0 {
			return apperrors.NewNotFound("Event")
		}
		if err := tx.Delete(&models.Registration{}, "event_id = ?", eventID).Error; err != nil {
			return apperrors.NewStorage("delete registrations", err)
		}
		return nil
	})
}
