package web

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

const flashCookie = "flash"

// SetFlash stores a one-time message carried across the next redirect.
func SetFlash(c *fiber.Ctx, msg string) {
	c.Cookie(&fiber.Cookie{
		Name:     flashCookie,
		Value:    msg,
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Expires:  time.Now().Add(time.Minute),
	})
}

// PopFlash reads and clears the pending flash message, if any.
func PopFlash(c *fiber.Ctx) string {
	msg := c.Cookies(flashCookie)
	if msg == "" {
		return ""
	}
	c.Cookie(&fiber.Cookie{
		Name:     flashCookie,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Expires:  time.Now().Add(-time.Hour),
	})
	return msg
}
