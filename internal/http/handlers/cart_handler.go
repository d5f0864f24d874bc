package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/PePetrov96/epicbyte/internal/domain"
	applog "github.com/PePetrov96/epicbyte/internal/log"
	"github.com/PePetrov96/epicbyte/internal/services"
	"github.com/PePetrov96/epicbyte/internal/validate"
	"github.com/PePetrov96/epicbyte/internal/web"
)

type CartHandler struct {
	Cart *services.CartService
}

func (h *CartHandler) View(c *fiber.Ctx) error {
	u := c.Locals("user").(*domain.User)
	cv, err := h.Cart.View(u.ID)
	if err != nil {
		applog.Error(c, "cart.view.fail", err, map[string]any{"user_id": u.ID})
		return errorPage(c, fiber.StatusInternalServerError)
	}
	return render(c, web.ViewCart, fiber.Map{"Cart": cv})
}

func (h *CartHandler) Add(c *fiber.Ctx) error {
	u := c.Locals("user").(*domain.User)
	productID, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "productId"})
		return errorPage(c, fiber.StatusBadRequest)
	}
	qty := validate.Qty(c.FormValue("qty"))

	if err := h.Cart.Add(u.ID, productID, qty); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return errorPage(c, fiber.StatusNotFound)
		}
		applog.Error(c, "cart.add.fail", err, map[string]any{"user_id": u.ID, "product_id": productID})
		return errorPage(c, fiber.StatusInternalServerError)
	}
	applog.Info(c, "cart.add", map[string]any{"user_id": u.ID, "product_id": productID, "qty": qty})
	return c.Redirect("/cart")
}

func (h *CartHandler) Clear(c *fiber.Ctx) error {
	u := c.Locals("user").(*domain.User)
	if err := h.Cart.Clear(u.ID); err != nil {
		applog.Error(c, "cart.clear.fail", err, map[string]any{"user_id": u.ID})
		return errorPage(c, fiber.StatusInternalServerError)
	}
	applog.Info(c, "cart.clear", map[string]any{"user_id": u.ID})
	return c.Redirect("/cart")
}

func (h *CartHandler) Remove(c *fiber.Ctx) error {
	u := c.Locals("user").(*domain.User)
	itemID, ok := validate.ID(c.Params("id"))
	if !ok {
		return errorPage(c, fiber.StatusBadRequest)
	}
	if err := h.Cart.Remove(u.ID, itemID); err != nil {
		applog.Error(c, "cart.remove.fail", err, map[string]any{"user_id": u.ID, "item_id": itemID})
		return errorPage(c, fiber.StatusInternalServerError)
	}
	return c.Redirect("/cart")
}
