package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	applog "github.com/PePetrov96/epicbyte/internal/log"
	"github.com/PePetrov96/epicbyte/internal/services"
	"github.com/PePetrov96/epicbyte/internal/web"
)

type SubscriberHandler struct {
	Subscribers *services.SubscriberService
}

// Subscribe handles the newsletter form in the footer. The outcome travels
// back as a flash message on the redirect.
func (h *SubscriberHandler) Subscribe(c *fiber.Ctx) error {
	email := c.FormValue("email")

	fieldErrs, err := h.Subscribers.Subscribe(email, locale(c))
	switch {
	case errors.Is(err, services.ErrEmailTaken):
		web.SetFlash(c, fieldErrs["email"])
	case err != nil:
		applog.Error(c, "subscribe.fail", err, nil)
		return errorPage(c, fiber.StatusInternalServerError)
	case len(fieldErrs) > 0:
		web.SetFlash(c, fieldErrs["email"])
	default:
		applog.Audit(c, "subscribe", map[string]any{"email": email})
		web.SetFlash(c, "Thank you for subscribing!")
	}
	return c.Redirect(backTo(c))
}

func backTo(c *fiber.Ctx) string {
	ref := c.Get("Referer")
	if ref == "" {
		return "/"
	}
	return ref
}
