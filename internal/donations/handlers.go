package donations

import (
	"regive-backend/internal/middleware"
	"regive-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type Handlers struct {
	Service *Service
}

// Submit POST /api/v1/donations
func (h *Handlers) Submit(c *fiber.Ctx) error {
	var in SubmitInput
	if err := c.BodyParser(&in); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}
	donation, err := h.Service.Submit(c.Context(), in)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.SuccessCreated(c, "Donation submitted successfully", donation)
}

// MyDonations GET /api/v1/donations/mine — the caller's own pending donations.
func (h *Handlers) MyDonations(c *fiber.Ctx) error {
	account := middleware.AccountFrom(c)
	if account == nil {
		return response.Unauthorized(c, "Unauthorized")
	}
	donations, err := h.Service.ListByDonor(c.Context(), account.Email)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Donations fetched successfully", donations)
}

// ListPending GET /api/v1/donations — admin listing.
func (h *Handlers) ListPending(c *fiber.Ctx) error {
	donations, err := h.Service.ListPending(c.Context())
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Donations fetched successfully", donations)
}

// Collect POST /api/v1/donations/:id/collect
func (h *Handlers) Collect(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, "Invalid donation id", fiber.StatusBadRequest, nil)
	}
	collected, err := h.Service.Collect(c.Context(), id)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Donation marked as collected", collected)
}

// Discard DELETE /api/v1/donations/:id
func (h *Handlers) Discard(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, "Invalid donation id", fiber.StatusBadRequest, nil)
	}
	if err := h.Service.DiscardPending(c.Context(), id, actorEmail(c)); err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Donation deleted", nil)
}

// ListCollected GET /api/v1/collected
func (h *Handlers) ListCollected(c *fiber.Ctx) error {
	collected, err := h.Service.ListCollected(c.Context())
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Collected donations fetched successfully", collected)
}

// Distribute POST /api/v1/collected/:id/distribute
func (h *Handlers) Distribute(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, "Invalid donation id", fiber.StatusBadRequest, nil)
	}
	var in DistributeInput
	if err := c.BodyParser(&in); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}
	beneficiary, err := h.Service.Distribute(c.Context(), id, in)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Item marked as donated successfully", beneficiary)
}

// DiscardCollected DELETE /api/v1/collected/:id
func (h *Handlers) DiscardCollected(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, "Invalid donation id", fiber.StatusBadRequest, nil)
	}
	if err := h.Service.DiscardCollected(c.Context(), id, actorEmail(c)); err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Collected donation deleted", nil)
}

// ListBeneficiaries GET /api/v1/beneficiaries
func (h *Handlers) ListBeneficiaries(c *fiber.Ctx) error {
	beneficiaries, err := h.Service.ListBeneficiaries(c.Context())
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Beneficiaries fetched successfully", beneficiaries)
}

func actorEmail(c *fiber.Ctx) string {
	if account := middleware.AccountFrom(c); account != nil {
		return account.Email
	}
	return ""
}
