package admin

import (
	"regive-backend/internal/donations"
	"regive-backend/internal/jointeam"
	"regive-backend/internal/pkg/response"
	"regive-backend/internal/users"

	"github.com/gofiber/fiber/v2"
)

// Handlers serves the admin dashboard counters.
type Handlers struct {
	Donations *donations.Service
	JoinTeam  *jointeam.Service
	Users     *users.Service
}

// Dashboard GET /api/v1/admin/dashboard — pending donations, volunteers and
// identity-provider account totals.
func (h *Handlers) Dashboard(c *fiber.Ctx) error {
	totalDonations, err := h.Donations.CountPending(c.Context())
	if err != nil {
		return response.FromError(c, err)
	}
	totalVolunteers, err := h.JoinTeam.CountVolunteers(c.Context())
	if err != nil {
		return response.FromError(c, err)
	}
	totalUsers, err := h.Users.CountAccounts(c.Context())
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Dashboard fetched successfully", fiber.Map{
		"totalDonations":  totalDonations,
		"totalVolunteers": totalVolunteers,
		"totalUsers":      totalUsers,
	})
}
