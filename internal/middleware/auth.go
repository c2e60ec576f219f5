package middleware

import (
	"strings"

	"regive-backend/internal/identity"
	"regive-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

const accountLocal = "account"

// TokenCookieName is the session token cookie set by /auth/set-token.
const TokenCookieName = "token"

// Authenticate verifies the request token against the identity provider on
// every request. Claims are read from the fresh verification, never from a
// cached session, so a revoked admin loses access on the next request.
// A missing or invalid token leaves the request anonymous.
func Authenticate(provider identity.Provider) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(TokenCookieName)
		if token == "" {
			if auth := c.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
				token = strings.TrimPrefix(auth, "Bearer ")
			}
		}
		if token == "" {
			return c.Next()
		}

		account, err := provider.VerifyToken(c.Context(), token)
		if err != nil {
			log.Warn().Err(err).Msg("Invalid/expired token")
			c.ClearCookie(TokenCookieName)
			return c.Next()
		}
		c.Locals(accountLocal, account)
		return c.Next()
	}
}

// RequireAuth ensures the request is authenticated. 401 otherwise.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if AccountFrom(c) == nil {
			return response.Unauthorized(c, "Unauthorized")
		}
		return c.Next()
	}
}

// RequireAdmin ensures the freshly verified account carries the admin claim.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		account := AccountFrom(c)
		if account == nil {
			return response.Unauthorized(c, "Unauthorized")
		}
		if !account.Admin {
			return response.Forbidden(c, "Access denied. Admins only.")
		}
		return c.Next()
	}
}

// AccountFrom returns the verified account for the request (nil if anonymous).
func AccountFrom(c *fiber.Ctx) *identity.Account {
	account, _ := c.Locals(accountLocal).(*identity.Account)
	return account
}

// SetAccount stores the verified account in Locals (used by tests).
func SetAccount(c *fiber.Ctx, account *identity.Account) {
	c.Locals(accountLocal, account)
}
