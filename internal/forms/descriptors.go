package forms

import "github.com/PePetrov96/epicbyte/internal/domain"

// Field describes one input of a product add form: the form field name, the
// message key for its label and the widget used to render it. Static tables
// per product type, no runtime introspection.
type Field struct {
	Name     string
	LabelKey string
	Widget   string // text | number | date | select | textarea | file
}

var commonFields = []Field{
	{Name: "name", LabelKey: "name.text", Widget: "text"},
	{Name: "price", LabelKey: "price.text", Widget: "number"},
	{Name: "description", LabelKey: "description.text", Widget: "textarea"},
	{Name: "image", LabelKey: "image.text", Widget: "file"},
}

var typeFields = map[domain.ProductType][]Field{
	domain.TypeBook: {
		{Name: "author", LabelKey: "author.text", Widget: "text"},
		{Name: "publisher", LabelKey: "publisher.text", Widget: "text"},
		{Name: "publicationDate", LabelKey: "publicationDate.text", Widget: "date"},
		{Name: "language", LabelKey: "language.text", Widget: "select"},
		{Name: "printLength", LabelKey: "printLength.text", Widget: "number"},
		{Name: "dimensions", LabelKey: "dimensions.text", Widget: "text"},
	},
	domain.TypeMovie: {
		{Name: "genre", LabelKey: "genre.text", Widget: "text"},
		{Name: "carrier", LabelKey: "carrier.text", Widget: "select"},
		{Name: "resolution", LabelKey: "resolution.text", Widget: "text"},
	},
	domain.TypeToy: {
		{Name: "brand", LabelKey: "brand.text", Widget: "text"},
	},
}

// FieldsFor returns the ordered add-form fields for a product type: the
// common attribute set followed by the type payload.
func FieldsFor(t domain.ProductType) []Field {
	out := make([]Field, 0, len(commonFields)+len(typeFields[t]))
	out = append(out, commonFields...)
	out = append(out, typeFields[t]...)
	return out
}

// EnumChoicesFor returns the select-widget choices a type needs, or nil.
func EnumChoicesFor(t domain.ProductType) []string {
	switch t {
	case domain.TypeBook:
		langs := domain.Languages()
		out := make([]string, len(langs))
		for i, l := range langs {
			out[i] = string(l)
		}
		return out
	case domain.TypeMovie:
		carriers := domain.Carriers()
		out := make([]string, len(carriers))
		for i, ca := range carriers {
			out[i] = string(ca)
		}
		return out
	default:
		return nil
	}
}
