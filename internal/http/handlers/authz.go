package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/PePetrov96/epicbyte/internal/domain"
	applog "github.com/PePetrov96/epicbyte/internal/log"
	"github.com/PePetrov96/epicbyte/internal/services"
	"github.com/PePetrov96/epicbyte/internal/web"
)

// RequireUser enforces that a user is logged in; otherwise redirect to login.
func RequireUser(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies("sid")
		if sid == "" {
			return c.Redirect("/login")
		}
		u, err := auth.CurrentUser(sid)
		if err != nil || u == nil {
			return c.Redirect("/login")
		}
		c.Locals("user", u)
		return c.Next()
	}
}

// RequireModerator gates product CRUD behind the MODERATOR role.
func RequireModerator(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies("sid")
		if sid == "" {
			return c.Redirect("/login")
		}
		u, err := auth.CurrentUser(sid)
		if err != nil || u == nil || !u.HasRole(domain.RoleModerator) {
			applog.Security(c, "access.denied.moderator", map[string]any{"sid": sid})
			return c.Status(fiber.StatusForbidden).Render(web.ViewError, fiber.Map{
				"ErrorType": "Access denied",
				"ErrorText": "You do not have permission to do that.",
			})
		}
		c.Locals("user", u)
		return c.Next()
	}
}
