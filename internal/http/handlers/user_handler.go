package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/PePetrov96/epicbyte/internal/domain"
	"github.com/PePetrov96/epicbyte/internal/forms"
	applog "github.com/PePetrov96/epicbyte/internal/log"
	"github.com/PePetrov96/epicbyte/internal/services"
	"github.com/PePetrov96/epicbyte/internal/web"
)

type UserHandler struct {
	Users *services.UserService
	Auth  *services.AuthService
}

func (h *UserHandler) RegisterForm(c *fiber.Ctx) error {
	return render(c, web.ViewRegister, fiber.Map{"Form": forms.RegisterForm{}, "Errors": map[string]string{}})
}

func (h *UserHandler) Register(c *fiber.Ctx) error {
	var form forms.RegisterForm
	if err := c.BodyParser(&form); err != nil {
		applog.Security(c, "user.register.badbody", nil)
		return render(c, web.ViewRegister, fiber.Map{"Form": form, "Errors": map[string]string{"form": "Invalid submission"}})
	}

	fieldErrs, err := h.Users.Register(form, locale(c))
	if err != nil {
		applog.Error(c, "user.register.fail", err, map[string]any{"username": form.Username})
		return errorPage(c, fiber.StatusInternalServerError)
	}
	if len(fieldErrs) > 0 {
		return render(c, web.ViewRegister, fiber.Map{"Form": form, "Errors": fieldErrs})
	}

	applog.Audit(c, "user.register", map[string]any{"username": form.Username})
	return c.Redirect("/login")
}

// ProfileForm shows the profile page populated with the current data.
func (h *UserHandler) ProfileForm(c *fiber.Ctx) error {
	u := c.Locals("user").(*domain.User)
	current, err := h.Users.Profile(u.Username)
	if err != nil {
		applog.Error(c, "user.profile.load.fail", err, map[string]any{"username": u.Username})
		return errorPage(c, fiber.StatusInternalServerError)
	}
	return render(c, web.ViewProfile, fiber.Map{
		"Form": forms.ProfileForm{
			Username:  current.Username,
			Email:     current.Email,
			FirstName: current.FirstName,
			LastName:  current.LastName,
		},
		"Errors":      map[string]string{},
		"Breadcrumbs": web.Trail(homeLabel(c), "Profile", "/profile"),
	})
}

func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	u := c.Locals("user").(*domain.User)

	var form forms.ProfileForm
	if err := c.BodyParser(&form); err != nil {
		applog.Security(c, "user.profile.badbody", nil)
		return render(c, web.ViewProfile, fiber.Map{"Form": form, "Errors": map[string]string{"form": "Invalid submission"},
			"Breadcrumbs": web.Trail(homeLabel(c), "Profile", "/profile")})
	}

	fieldErrs, loggedOut, err := h.Users.UpdateProfile(u.ID, form, locale(c))
	switch {
	case errors.Is(err, services.ErrUsernameTaken):
		return render(c, web.ViewProfile, fiber.Map{"Form": form, "Errors": fieldErrs,
			"Breadcrumbs": web.Trail(homeLabel(c), "Profile", "/profile")})
	case errors.Is(err, services.ErrNotFound):
		return errorPage(c, fiber.StatusNotFound)
	case err != nil && loggedOut:
		// The rename is durable; a failed session sweep must not turn it
		// into a fault. Log and continue to the login redirect.
		applog.Error(c, "user.profile.revoke.fail", err, map[string]any{"user_id": u.ID})
	case err != nil:
		applog.Error(c, "user.profile.update.fail", err, map[string]any{"user_id": u.ID})
		return errorPage(c, fiber.StatusInternalServerError)
	}

	if len(fieldErrs) > 0 {
		return render(c, web.ViewProfile, fiber.Map{"Form": form, "Errors": fieldErrs,
			"Breadcrumbs": web.Trail(homeLabel(c), "Profile", "/profile")})
	}

	applog.Audit(c, "user.profile.update", map[string]any{"user_id": u.ID, "logged_out": loggedOut})
	if loggedOut {
		return c.Redirect("/login")
	}
	web.SetFlash(c, "Profile updated successfully")
	return c.Redirect("/profile")
}
