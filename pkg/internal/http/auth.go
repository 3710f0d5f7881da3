package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/solarvale/agora/pkg/internal/services"
)

const CookieAuthSession = "agora_session"

// authMiddleware loads the session referenced by the request's bearer
// token (or session cookie) and exposes the account via Locals. Requests
// without a resolvable session pass through unauthenticated.
func authMiddleware(c *fiber.Ctx) error {
	token := strings.TrimPrefix(c.Get(fiber.HeaderAuthorization), "Bearer ")
	if len(token) == 0 {
		token = c.Cookies(CookieAuthSession)
	}

	if len(token) > 0 {
		if session, err := services.GetSessionWithToken(token); err == nil {
			c.Locals("session", session)
			c.Locals("user", session.Account)
		}
	}

	return c.Next()
}
