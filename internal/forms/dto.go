package forms

type RegisterForm struct {
	Username        string `form:"username" validate:"required,min=3,max=20"`
	Email           string `form:"email" validate:"required,email"`
	FirstName       string `form:"firstName" validate:"required"`
	LastName        string `form:"lastName" validate:"required"`
	Password        string `form:"password" validate:"required,min=5,max=20"`
	ConfirmPassword string `form:"confirmPassword" validate:"required,eqfield=Password"`
}

type ProfileForm struct {
	Username  string `form:"username" validate:"required,min=3,max=20"`
	Email     string `form:"email" validate:"required,email"`
	FirstName string `form:"firstName" validate:"required"`
	LastName  string `form:"lastName" validate:"required"`
}

// ProductBase holds the attributes shared by every product type.
type ProductBase struct {
	Name        string  `form:"name" validate:"required"`
	Price       float64 `form:"price" validate:"gte=0"`
	Description string  `form:"description"`
}

type BookForm struct {
	ProductBase
	Author          string `form:"author" validate:"required"`
	Publisher       string `form:"publisher" validate:"required"`
	PublicationDate string `form:"publicationDate" validate:"required"`
	Language        string `form:"language" validate:"required,oneof=ENGLISH BULGARIAN GERMAN FRENCH SPANISH"`
	PrintLength     int    `form:"printLength" validate:"required,gt=0"`
	Dimensions      string `form:"dimensions" validate:"required"`
}

type MovieForm struct {
	ProductBase
	Genre      string `form:"genre" validate:"required"`
	Carrier    string `form:"carrier" validate:"required,oneof=DVD BLU_RAY"`
	Resolution string `form:"resolution" validate:"required"`
}

type ToyForm struct {
	ProductBase
	Brand string `form:"brand" validate:"required"`
}

type SubscribeForm struct {
	Email string `form:"email" validate:"required,email"`
}
