package handlers

import (
	"errors"
	"io"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	"github.com/PePetrov96/epicbyte/internal/domain"
	"github.com/PePetrov96/epicbyte/internal/forms"
	applog "github.com/PePetrov96/epicbyte/internal/log"
	"github.com/PePetrov96/epicbyte/internal/services"
	"github.com/PePetrov96/epicbyte/internal/validate"
	"github.com/PePetrov96/epicbyte/internal/web"
)

type ProductHandler struct {
	Products *services.ProductService
}

// sectionTypes maps the :type path segment to the product type tag.
var sectionTypes = map[string]domain.ProductType{
	"books":  domain.TypeBook,
	"movies": domain.TypeMovie,
	"toys":   domain.TypeToy,
}

func sectionType(c *fiber.Ctx) (domain.ProductType, bool) {
	t, ok := sectionTypes[c.Params("type")]
	return t, ok
}

func (h *ProductHandler) List(c *fiber.Ctx) error {
	t, ok := sectionType(c)
	if !ok {
		return errorPage(c, fiber.StatusNotFound)
	}
	sort := validate.Sort(c.Query("sort"))
	products, err := h.Products.ListAll(t, sort)
	if err != nil {
		applog.Error(c, "products.list.fail", err, map[string]any{"type": t})
		return errorPage(c, fiber.StatusInternalServerError)
	}
	section := services.SectionLabel(t, locale(c))
	return render(c, web.ViewProductsAll, fiber.Map{
		"Section":      section,
		"SectionPath":  "/products/" + c.Params("type"),
		"Products":     products,
		"SelectedSort": sort,
		"SortOptions":  web.SortOptions(),
		"Breadcrumbs":  web.Trail(homeLabel(c), section, "/products/"+c.Params("type")),
	})
}

func (h *ProductHandler) Detail(c *fiber.Ctx) error {
	t, ok := sectionType(c)
	if !ok {
		return errorPage(c, fiber.StatusNotFound)
	}
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "product_id"})
		return errorPage(c, fiber.StatusNotFound)
	}
	p, details, err := h.Products.Detail(id, locale(c))
	if errors.Is(err, services.ErrNotFound) || (err == nil && p.Type != t) {
		return errorPage(c, fiber.StatusNotFound)
	}
	if err != nil {
		applog.Error(c, "products.detail.fail", err, map[string]any{"id": id})
		return errorPage(c, fiber.StatusInternalServerError)
	}
	section := services.SectionLabel(t, locale(c))
	return render(c, web.ViewProductDetails, fiber.Map{
		"Product":     p,
		"Details":     details,
		"Breadcrumbs": web.Trail(homeLabel(c), section, "/products/"+c.Params("type"), p.Name),
	})
}

func (h *ProductHandler) AddForm(c *fiber.Ctx) error {
	t, ok := sectionType(c)
	if !ok {
		return errorPage(c, fiber.StatusNotFound)
	}
	meta := h.Products.AddForm(t, locale(c))
	return render(c, web.ViewProductAdd, fiber.Map{"Meta": meta, "Errors": map[string]string{}, "Values": fiber.Map{}})
}

func (h *ProductHandler) Add(c *fiber.Ctx) error {
	t, ok := sectionType(c)
	if !ok {
		return errorPage(c, fiber.StatusNotFound)
	}
	loc := locale(c)

	image, imageName := formImage(c)
	if image != nil {
		defer image.Close()
	}

	var (
		fieldErrs map[string]string
		err       error
	)
	switch t {
	case domain.TypeBook:
		var form forms.BookForm
		if perr := c.BodyParser(&form); perr != nil {
			return h.rerenderAdd(c, t, nil, map[string]string{"form": "Invalid submission"})
		}
		fieldErrs, err = h.Products.AddBook(c.Context(), form, readerOrNil(image), imageName, loc)
	case domain.TypeMovie:
		var form forms.MovieForm
		if perr := c.BodyParser(&form); perr != nil {
			return h.rerenderAdd(c, t, nil, map[string]string{"form": "Invalid submission"})
		}
		fieldErrs, err = h.Products.AddMovie(c.Context(), form, readerOrNil(image), imageName, loc)
	default:
		var form forms.ToyForm
		if perr := c.BodyParser(&form); perr != nil {
			return h.rerenderAdd(c, t, nil, map[string]string{"form": "Invalid submission"})
		}
		fieldErrs, err = h.Products.AddToy(c.Context(), form, readerOrNil(image), imageName, loc)
	}

	if err != nil {
		applog.Error(c, "products.add.fail", err, map[string]any{"type": t})
		return errorPage(c, fiber.StatusInternalServerError)
	}
	if len(fieldErrs) > 0 {
		applog.Security(c, "validation.fail", map[string]any{"type": t, "fields": len(fieldErrs)})
		return h.rerenderAdd(c, t, nil, fieldErrs)
	}

	applog.Audit(c, "products.add", map[string]any{"type": t})
	meta := h.Products.AddForm(t, loc)
	return render(c, web.ViewDisplayText, fiber.Map{
		"PageType": "Completed Successfully",
		"PageText": meta.TypeLabel + " added successfully!",
	})
}

func (h *ProductHandler) rerenderAdd(c *fiber.Ctx, t domain.ProductType, values fiber.Map, errs map[string]string) error {
	meta := h.Products.AddForm(t, locale(c))
	if values == nil {
		values = fiber.Map{}
	}
	return render(c, web.ViewProductAdd, fiber.Map{"Meta": meta, "Errors": errs, "Values": values})
}

func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	t, ok := sectionType(c)
	if !ok {
		return errorPage(c, fiber.StatusNotFound)
	}
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return errorPage(c, fiber.StatusNotFound)
	}
	if err := h.Products.Delete(c.Context(), id); err != nil {
		applog.Error(c, "products.delete.fail", err, map[string]any{"id": id})
		return errorPage(c, fiber.StatusInternalServerError)
	}
	applog.Audit(c, "products.delete", map[string]any{"id": id, "type": t})
	return c.Redirect("/products/" + c.Params("type"))
}

func formImage(c *fiber.Ctx) (multipart.File, string) {
	fh, err := c.FormFile("image")
	if err != nil || fh == nil {
		return nil, ""
	}
	f, err := fh.Open()
	if err != nil {
		return nil, ""
	}
	return f, fh.Filename
}

func readerOrNil(f multipart.File) io.Reader {
	if f == nil {
		return nil
	}
	return f
}
