package users

import (
	"regive-backend/internal/middleware"
	"regive-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Service *Service
}

// Profile GET /api/v1/users/profile
func (h *Handlers) Profile(c *fiber.Ctx) error {
	account := middleware.AccountFrom(c)
	if account == nil {
		return response.Unauthorized(c, "Unauthorized")
	}
	profile, err := h.Service.Profile(c.Context(), account.UID, account.Email)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Profile fetched successfully", profile)
}

// UpdateProfile PUT /api/v1/users/profile
func (h *Handlers) UpdateProfile(c *fiber.Ctx) error {
	account := middleware.AccountFrom(c)
	if account == nil {
		return response.Unauthorized(c, "Unauthorized")
	}
	var in UpdateProfileInput
	if err := c.BodyParser(&in); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}
	profile, err := h.Service.UpdateProfile(c.Context(), account.UID, account.Email, in)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Profile updated successfully", profile)
}

// ListAccounts GET /api/v1/users — admin view of provider accounts.
func (h *Handlers) ListAccounts(c *fiber.Ctx) error {
	accounts, err := h.Service.ListAccounts(c.Context())
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Users fetched successfully", accounts)
}

// ListAdmins GET /api/v1/users/admins
func (h *Handlers) ListAdmins(c *fiber.Ctx) error {
	admins, err := h.Service.ListAdmins(c.Context())
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Admins fetched successfully", admins)
}

// Promote POST /api/v1/users/:uid/promote
func (h *Handlers) Promote(c *fiber.Ctx) error {
	uid := c.Params("uid")
	if uid == "" {
		return response.Error(c, "Missing user id", fiber.StatusBadRequest, nil)
	}
	if err := h.Service.Promote(c.Context(), uid); err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "User promoted to admin", nil)
}

// DeleteAccount DELETE /api/v1/users/:uid
func (h *Handlers) DeleteAccount(c *fiber.Ctx) error {
	uid := c.Params("uid")
	if uid == "" {
		return response.Error(c, "Missing user id", fiber.StatusBadRequest, nil)
	}
	if err := h.Service.DeleteAccount(c.Context(), uid); err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "User deleted successfully", nil)
}
