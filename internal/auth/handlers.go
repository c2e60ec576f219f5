package auth

import (
	"time"

	"regive-backend/internal/middleware"
	"regive-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// Handlers manages the token cookie. Sign-in itself happens against the
// identity provider on the client; this service only stores the issued token
// and verifies it per request.
type Handlers struct {
	IsProduction bool
}

type setTokenRequest struct {
	Token string `json:"token"`
}

// SetToken POST /auth/set-token — stores the provider-issued token in an
// HttpOnly cookie for 7 days.
func (h *Handlers) SetToken(c *fiber.Ctx) error {
	var req setTokenRequest
	if err := c.BodyParser(&req); err != nil || req.Token == "" {
		return response.Error(c, "No token provided", fiber.StatusBadRequest, nil)
	}
	c.Cookie(&fiber.Cookie{
		Name:     middleware.TokenCookieName,
		Value:    req.Token,
		Path:     "/",
		MaxAge:   int((7 * 24 * time.Hour).Seconds()),
		HTTPOnly: true,
		Secure:   h.IsProduction,
		SameSite: "Lax",
	})
	return response.Success(c, "Token saved successfully", nil)
}

// Logout GET /auth/logout — clears the token cookie.
func (h *Handlers) Logout(c *fiber.Ctx) error {
	c.ClearCookie(middleware.TokenCookieName)
	return response.Success(c, "Logged out", nil)
}

// Me GET /auth/me — the freshly verified account for the request.
func (h *Handlers) Me(c *fiber.Ctx) error {
	account := middleware.AccountFrom(c)
	if account == nil {
		return response.Unauthorized(c, "Unauthorized")
	}
	return response.Success(c, "Authenticated", account)
}
