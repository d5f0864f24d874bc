// Package web holds the presentation vocabulary shared by services and
// handlers: template names, breadcrumbs, sort options and flash state.
package web

// Template names. Every render call goes through these constants.
const (
	ViewHome           = "home"
	ViewLogin          = "login"
	ViewRegister       = "register"
	ViewProfile        = "profile"
	ViewProductAdd     = "product_add"
	ViewProductsAll    = "products_all"
	ViewProductDetails = "product_details"
	ViewDisplayText    = "display_text"
	ViewCart           = "cart"
	ViewError          = "error"
)

// Crumb is one element of the navigational trail.
type Crumb struct {
	Label string
	URL   string
}

// Trail builds Home -> section [-> item].
func Trail(homeLabel, sectionLabel, sectionURL string, item ...string) []Crumb {
	crumbs := []Crumb{
		{Label: homeLabel, URL: "/"},
		{Label: sectionLabel, URL: sectionURL},
	}
	for _, it := range item {
		crumbs = append(crumbs, Crumb{Label: it})
	}
	return crumbs
}

// SortOption is one entry of the list-view sort selector.
type SortOption struct {
	Key   string
	Label string
}

// SortOptions lists the selectable orderings in display order. The empty key
// is the newest-first default.
func SortOptions() []SortOption {
	return []SortOption{
		{Key: "", Label: "Newest"},
		{Key: "lowest", Label: "Price: low to high"},
		{Key: "highest", Label: "Price: high to low"},
		{Key: "alphabetical", Label: "Alphabetical"},
	}
}
