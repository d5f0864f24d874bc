package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/PePetrov96/epicbyte/internal/i18n"
	"github.com/PePetrov96/epicbyte/internal/web"
)

func render(c *fiber.Ctx, tmpl string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	if u := c.Locals("user"); u != nil {
		data["User"] = u
	}
	if tok, _ := c.Locals("CSRFToken").(string); tok != "" {
		data["CSRFToken"] = tok
	} else if cookTok := c.Cookies("csrf_"); cookTok != "" {
		data["CSRFToken"] = cookTok
	}
	if msg := web.PopFlash(c); msg != "" {
		data["Flash"] = msg
	}
	data["Locale"] = locale(c)
	return c.Render(tmpl, data)
}

// locale picks the display language: lang cookie first, then the configured
// default, then en.
func locale(c *fiber.Ctx) string {
	if l := c.Cookies("lang"); i18n.Supported(l) {
		return l
	}
	if l, ok := c.Locals("defaultLocale").(string); ok && i18n.Supported(l) {
		return l
	}
	return i18n.DefaultLocale
}

func homeLabel(c *fiber.Ctx) string {
	return i18n.Resolve("home.text", locale(c))
}

// errorPage renders the generic error view. Domain details never reach it.
func errorPage(c *fiber.Ctx, status int) error {
	return c.Status(status).Render(web.ViewError, fiber.Map{
		"ErrorType": "Oops...",
		"ErrorText": "Something went wrong!",
	})
}
