package services

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/PePetrov96/epicbyte/internal/domain"
	"github.com/PePetrov96/epicbyte/internal/forms"
	"github.com/PePetrov96/epicbyte/internal/i18n"
	"github.com/PePetrov96/epicbyte/internal/images"
	"github.com/PePetrov96/epicbyte/internal/repos"
)

// ProductService covers the add/list/detail/delete use cases for every
// product type; the type tag selects form metadata and the entity payload.
type ProductService struct {
	Products *repos.ProductRepo
	Images   images.Store
}

func NewProductService(products *repos.ProductRepo, imgs images.Store) *ProductService {
	return &ProductService{Products: products, Images: imgs}
}

// AddFormMeta is everything the add-form template needs besides the
// submitted values: labeled fields and enum choices for select widgets.
type AddFormMeta struct {
	Type        domain.ProductType
	TypeLabel   string
	Fields      []forms.Field
	Labels      map[string]string
	EnumChoices []string
}

func (s *ProductService) AddForm(t domain.ProductType, locale string) AddFormMeta {
	fields := forms.FieldsFor(t)
	labels := make(map[string]string, len(fields))
	for _, f := range fields {
		labels[f.Name] = i18n.Resolve(f.LabelKey, locale)
	}
	return AddFormMeta{
		Type:        t,
		TypeLabel:   i18n.Resolve(typeKey(t, false), locale),
		Fields:      fields,
		Labels:      labels,
		EnumChoices: forms.EnumChoicesFor(t),
	}
}

// AddBook validates and persists a new book. Field errors mean nothing was
// written and the form should be re-rendered.
func (s *ProductService) AddBook(ctx context.Context, form forms.BookForm, image io.Reader, imageName, locale string) (map[string]string, error) {
	if errs := forms.Check(form, locale); len(errs) > 0 {
		return errs, nil
	}
	p := s.newProduct(domain.TypeBook, form.ProductBase)
	p.Author = sql.NullString{String: form.Author, Valid: true}
	p.Publisher = sql.NullString{String: form.Publisher, Valid: true}
	p.PublicationDate = sql.NullString{String: form.PublicationDate, Valid: true}
	p.Language = sql.NullString{String: form.Language, Valid: true}
	p.PrintLength = sql.NullInt64{Int64: int64(form.PrintLength), Valid: true}
	p.Dimensions = sql.NullString{String: form.Dimensions, Valid: true}
	return nil, s.persist(ctx, p, image, imageName)
}

func (s *ProductService) AddMovie(ctx context.Context, form forms.MovieForm, image io.Reader, imageName, locale string) (map[string]string, error) {
	if errs := forms.Check(form, locale); len(errs) > 0 {
		return errs, nil
	}
	p := s.newProduct(domain.TypeMovie, form.ProductBase)
	p.Genre = sql.NullString{String: form.Genre, Valid: true}
	p.Carrier = sql.NullString{String: form.Carrier, Valid: true}
	p.Resolution = sql.NullString{String: form.Resolution, Valid: true}
	return nil, s.persist(ctx, p, image, imageName)
}

func (s *ProductService) AddToy(ctx context.Context, form forms.ToyForm, image io.Reader, imageName, locale string) (map[string]string, error) {
	if errs := forms.Check(form, locale); len(errs) > 0 {
		return errs, nil
	}
	p := s.newProduct(domain.TypeToy, form.ProductBase)
	p.Brand = sql.NullString{String: form.Brand, Valid: true}
	return nil, s.persist(ctx, p, image, imageName)
}

func (s *ProductService) newProduct(t domain.ProductType, base forms.ProductBase) *domain.Product {
	return &domain.Product{
		ID:          uuid.NewString(),
		Type:        t,
		Name:        base.Name,
		Description: base.Description,
		Price:       base.Price,
		IsNew:       true,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	}
}

func (s *ProductService) persist(ctx context.Context, p *domain.Product, image io.Reader, imageName string) error {
	if image != nil {
		url, err := s.Images.Upload(ctx, imageName, image)
		if err != nil {
			return fmt.Errorf("upload image: %w", err)
		}
		p.ImageURL = url
	}
	return s.Products.Create(p)
}

// ListAll returns the products of one type ordered by the sort key:
// lowest/highest by price, alphabetical by name, anything else newest-first.
func (s *ProductService) ListAll(t domain.ProductType, sort string) ([]domain.Product, error) {
	return s.Products.ListByType(t, sort)
}

// DetailRow is one localized label/value pair of a product detail view.
type DetailRow struct {
	Label string
	Value string
}

// Detail fetches a product and assembles its type-specific attribute rows.
func (s *ProductService) Detail(id, locale string) (*domain.Product, []DetailRow, error) {
	p, err := s.Products.Get(id)
	if err != nil {
		return nil, nil, err
	}
	if p == nil {
		return nil, nil, ErrNotFound
	}
	return p, detailRows(p, locale), nil
}

func detailRows(p *domain.Product, locale string) []DetailRow {
	t := func(key string) string { return i18n.Resolve(key, locale) }
	var rows []DetailRow
	add := func(labelKey string, v sql.NullString) {
		if v.Valid && v.String != "" {
			rows = append(rows, DetailRow{Label: t(labelKey), Value: v.String})
		}
	}
	switch p.Type {
	case domain.TypeBook:
		add("author.text", p.Author)
		add("publisher.text", p.Publisher)
		add("publicationDate.text", p.PublicationDate)
		add("language.text", p.Language)
		if p.PrintLength.Valid {
			rows = append(rows, DetailRow{
				Label: t("printLength.text"),
				Value: fmt.Sprintf("%d %s", p.PrintLength.Int64, t("pages.text")),
			})
		}
		add("dimensions.text", p.Dimensions)
	case domain.TypeMovie:
		add("genre.text", p.Genre)
		add("carrier.text", p.Carrier)
		add("resolution.text", p.Resolution)
	case domain.TypeToy:
		add("brand.text", p.Brand)
	}
	return rows
}

// Delete removes the hosted image, the product row and every cart item
// referencing it. A nonexistent id is a graceful no-op.
func (s *ProductService) Delete(ctx context.Context, id string) error {
	p, err := s.Products.Get(id)
	if err != nil {
		return err
	}
	if p == nil {
		return nil
	}
	if p.ImageURL != "" {
		if err := s.Images.Delete(ctx, p.ImageURL); err != nil {
			return fmt.Errorf("delete image: %w", err)
		}
	}
	return s.Products.DeleteCascade(id)
}

func typeKey(t domain.ProductType, plural bool) string {
	var base string
	switch t {
	case domain.TypeBook:
		base = "book"
	case domain.TypeMovie:
		base = "movie"
	default:
		base = "toy"
	}
	if plural {
		return base + "s.text"
	}
	return base + ".text"
}

// SectionLabel is the localized plural heading for a product type.
func SectionLabel(t domain.ProductType, locale string) string {
	return i18n.Resolve(typeKey(t, true), locale)
}
