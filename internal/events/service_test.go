package events

import (
	"context"
	"testing"

	"regive-backend/internal/models"
	"regive-backend/internal/pkg/apperrors"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupEventsTest(t *testing.T) (*Service, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Event{}, &models.Registration{}))
	return &Service{DB: db}, db
}

func createEvent(t *testing.T, s *Service) *models.Event {
	t.Helper()
	event, err := s.Create(context.Background(), CreateInput{
		Title:       "Cleanup Drive",
		Date:        "2026-09-01",
		Description: "Community cleanup",
		ImageURL:    "https://cdn.example.com/ev.jpg",
		ButtonText:  "Join",
	})
	require.NoError(t, err)
	return event
}

func TestCreate_RequiresImage(t *testing.T) {
	s, _ := setupEventsTest(t)
	_, err := s.Create(context.Background(), CreateInput{Title: "No image"})
	var ve *apperrors.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "imageUrl", ve.Field)
}

func TestRegister_EventNotFound(t *testing.T) {
	s, db := setupEventsTest(t)
	_, err := s.Register(context.Background(), RegisterInput{
		EventID: uuid.New(),
		Name:    "Jane",
		Contact: "0123",
		Email:   "jane@gmail.com",
	})
	var nf *apperrors.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "Event", nf.Entity)

	// No registration must exist after a failed guard check.
	var count int64
	db.Model(&models.Registration{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestRegister_InvalidEmail(t *testing.T) {
	s, _ := setupEventsTest(t)
	event := createEvent(t, s)
	_, err := s.Register(context.Background(), RegisterInput{
		EventID: event.EventID,
		Name:    "Jane",
		Contact: "0123",
		Email:   "jane@yahoo.com",
	})
	var ve *apperrors.ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestRegister_Success(t *testing.T) {
	s, _ := setupEventsTest(t)
	event := createEvent(t, s)

	registration, err := s.Register(context.Background(), RegisterInput{
		EventID: event.EventID,
		Name:    "Jane",
		Contact: "0123",
		Email:   "jane@gmail.com",
	})
	require.NoError(t, err)
	assert.Equal(t, event.EventID, registration.EventID)
	assert.False(t, registration.RegisteredAt.IsZero())

	participants, err := s.Participants(context.Background(), event.EventID)
	require.NoError(t, err)
	require.Len(t, participants, 1)
	assert.Equal(t, "Jane", participants[0].Name)
}

func TestDelete_CascadesOnlyOwnRegistrations(t *testing.T) {
	s, db := setupEventsTest(t)
	ctx := context.Background()
	eventA := createEvent(t, s)
	eventB := createEvent(t, s)

	for _, ev := range []*models.Event{eventA, eventB} {
		_, err := s.Register(ctx, RegisterInput{
			EventID: ev.EventID,
			Name:    "Jane",
			Contact: "0123",
			Email:   "jane@gmail.com",
		})
		require.NoError(t, err)
	}

	require.NoError(t, s.Delete(ctx, eventA.EventID))

	var events int64
	db.Model(&models.Event{}).Count(&events)
	assert.EqualValues(t, 1, events)

	var remaining []models.Registration
	require.NoError(t, db.Find(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.Equal(t, eventB.EventID, remaining[0].EventID)
}

func TestDelete_NotFound(t *testing.T) {
	s, _ := setupEventsTest(t)
	var nf *apperrors.NotFoundError
	require.ErrorAs(t, s.Delete(context.Background(), uuid.New()), &nf)
}
