package events

import (
	"regive-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type Handlers struct {
	Service *Service
}

// Create POST /api/v1/events
func (h *Handlers) Create(c *fiber.Ctx) error {
	var in CreateInput
	if err := c.BodyParser(&in); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}
	event, err := h.Service.Create(c.Context(), in)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.SuccessCreated(c, "Event added successfully", event)
}

// List GET /api/v1/events
func (h *Handlers) List(c *fiber.Ctx) error {
	events, err := h.Service.List(c.Context())
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Events fetched successfully", events)
}

// Register POST /api/v1/events/register
func (h *Handlers) Register(c *fiber.Ctx) error {
	var body struct {
		EventID string `json:"eventId"`
		Name    string `json:"name"`
		Contact string `json:"contact"`
		Email   string `json:"email"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}
	if body.EventID == "" || body.Name == "" || body.Contact == "" || body.Email == "" {
		return response.Error(c, "All fields are required", fiber.StatusBadRequest, nil)
	}
	eventID, err := uuid.Parse(body.EventID)
	if err != nil {
		return response.Error(c, "Invalid event id", fiber.StatusBadRequest, nil)
	}
	registration, err := h.Service.Register(c.Context(), RegisterInput{
		EventID: eventID,
		Name:    body.Name,
		Contact: body.Contact,
		Email:   body.Email,
	})
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Registered successfully", registration)
}

// Participants GET /api/v1/events/:id/participants
func (h *Handlers) Participants(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, "Invalid event id", fiber.StatusBadRequest, nil)
	}
	participants, err := h.Service.Participants(c.Context(), eventID)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Participants fetched successfully", participants)
}

// Delete DELETE /api/v1/events/:id
func (h *Handlers) Delete(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, "Invalid event id", fiber.StatusBadRequest, nil)
	}
	if err := h.Service.Delete(c.Context(), eventID); err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Event deleted successfully", nil)
}
