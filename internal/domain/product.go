package domain

import "database/sql"

type ProductType string

const (
	TypeBook  ProductType = "BOOK"
	TypeMovie ProductType = "MOVIE"
	TypeToy   ProductType = "TOY"
)

type Language string

const (
	LangEnglish   Language = "ENGLISH"
	LangBulgarian Language = "BULGARIAN"
	LangGerman    Language = "GERMAN"
	LangFrench    Language = "FRENCH"
	LangSpanish   Language = "SPANISH"
)

func Languages() []Language {
	return []Language{LangEnglish, LangBulgarian, LangGerman, LangFrench, LangSpanish}
}

type Carrier string

const (
	CarrierDVD    Carrier = "DVD"
	CarrierBluRay Carrier = "BLU_RAY"
)

func Carriers() []Carrier {
	return []Carrier{CarrierDVD, CarrierBluRay}
}

// Product is a tagged variant: the common attribute set plus a nullable
// type-specific payload. Which payload columns are meaningful is fixed by
// Type at creation and never changes.
type Product struct {
	ID          string      `db:"id"`
	Type        ProductType `db:"product_type"`
	Name        string      `db:"name"`
	Description string      `db:"description"`
	Price       float64     `db:"price"`
	ImageURL    string      `db:"image_url"`
	IsNew       bool        `db:"is_new"`
	CreatedAt   string      `db:"created_at"`

	// Book payload
	Author          sql.NullString `db:"author"`
	Publisher       sql.NullString `db:"publisher"`
	PublicationDate sql.NullString `db:"publication_date"`
	Language        sql.NullString `db:"language"`
	PrintLength     sql.NullInt64  `db:"print_length"`
	Dimensions      sql.NullString `db:"dimensions"`

	// Movie payload
	Genre      sql.NullString `db:"genre"`
	Carrier    sql.NullString `db:"carrier"`
	Resolution sql.NullString `db:"resolution"`

	// Toy payload
	Brand sql.NullString `db:"brand"`
}
