package jointeam

import (
	"regive-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type Handlers struct {
	Service *Service
}

// Apply POST /api/v1/join-team
func (h *Handlers) Apply(c *fiber.Ctx) error {
	var in ApplyInput
	if err := c.BodyParser(&in); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}
	request, err := h.Service.Apply(c.Context(), in)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Application submitted successfully!", request)
}

// List GET /api/v1/join-team
func (h *Handlers) List(c *fiber.Ctx) error {
	requests, err := h.Service.List(c.Context())
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Join requests fetched successfully", requests)
}

// Approve POST /api/v1/join-team/:id/approve
func (h *Handlers) Approve(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, "Invalid request id", fiber.StatusBadRequest, nil)
	}
	if err := h.Service.Approve(c.Context(), id); err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Request approved", nil)
}

// Reject POST /api/v1/join-team/:id/reject
func (h *Handlers) Reject(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, "Invalid request id", fiber.StatusBadRequest, nil)
	}
	if err := h.Service.Reject(c.Context(), id); err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Request rejected", nil)
}

// Delete DELETE /api/v1/join-team/:id
func (h *Handlers) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, "Invalid request id", fiber.StatusBadRequest, nil)
	}
	if err := h.Service.Delete(c.Context(), id); err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Request deleted", nil)
}
