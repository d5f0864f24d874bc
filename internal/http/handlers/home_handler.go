package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/PePetrov96/epicbyte/internal/domain"
	applog "github.com/PePetrov96/epicbyte/internal/log"
	"github.com/PePetrov96/epicbyte/internal/services"
	"github.com/PePetrov96/epicbyte/internal/web"
)

type HomeHandler struct {
	Products *services.ProductService
}

// Section is one storefront shelf on the home page.
type Section struct {
	Label    string
	Path     string
	Products []domain.Product
}

func (h *HomeHandler) Home(c *fiber.Ctx) error {
	loc := locale(c)
	sections := []struct {
		t    domain.ProductType
		path string
	}{
		{domain.TypeBook, "/products/books"},
		{domain.TypeMovie, "/products/movies"},
		{domain.TypeToy, "/products/toys"},
	}

	out := make([]Section, 0, len(sections))
	for _, s := range sections {
		products, err := h.Products.ListAll(s.t, "")
		if err != nil {
			applog.Error(c, "home.list.fail", err, map[string]any{"type": s.t})
			return errorPage(c, fiber.StatusInternalServerError)
		}
		if len(products) > 4 {
			products = products[:4]
		}
		out = append(out, Section{Label: services.SectionLabel(s.t, loc), Path: s.path, Products: products})
	}
	return render(c, web.ViewHome, fiber.Map{"Sections": out})
}
