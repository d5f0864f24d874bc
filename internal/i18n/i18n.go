// Package i18n resolves message keys against static per-locale tables.
package i18n

var messages = map[string]map[string]string{
	"en": {
		"book.text":   "Book",
		"books.text":  "Books",
		"movie.text":  "Movie",
		"movies.text": "Movies",
		"toy.text":    "Toy",
		"toys.text":   "Toys",

		"name.text":            "Name",
		"price.text":           "Price",
		"description.text":     "Description",
		"image.text":           "Image",
		"author.text":          "Author",
		"publisher.text":       "Publisher",
		"publicationDate.text": "Publication date",
		"language.text":        "Language",
		"printLength.text":     "Print length",
		"dimensions.text":      "Dimensions",
		"genre.text":           "Genre",
		"carrier.text":         "Carrier",
		"resolution.text":      "Resolution",
		"brand.text":           "Brand",

		"home.text":  "Home",
		"pages.text": "pages",

		"error.required":        "This field is required",
		"error.email":           "Must be a valid email address",
		"error.price":           "Price must be zero or positive",
		"error.password.length": "Password must be between 5 and 20 characters",
		"error.password.match":  "Passwords do not match",
		"error.username.taken":  "Username is already taken",
		"error.email.taken":     "This email is already subscribed",
	},
	"bg": {
		"book.text":   "Книга",
		"books.text":  "Книги",
		"movie.text":  "Филм",
		"movies.text": "Филми",
		"toy.text":    "Играчка",
		"toys.text":   "Играчки",

		"name.text":            "Име",
		"price.text":           "Цена",
		"description.text":     "Описание",
		"image.text":           "Изображение",
		"author.text":          "Автор",
		"publisher.text":       "Издателство",
		"publicationDate.text": "Дата на издаване",
		"language.text":        "Език",
		"printLength.text":     "Брой страници",
		"dimensions.text":      "Размери",
		"genre.text":           "Жанр",
		"carrier.text":         "Носител",
		"resolution.text":      "Резолюция",
		"brand.text":           "Марка",

		"home.text":  "Начало",
		"pages.text": "страници",

		"error.required":        "Полето е задължително",
		"error.email":           "Невалиден имейл адрес",
		"error.price":           "Цената трябва да е нула или положителна",
		"error.password.length": "Паролата трябва да е между 5 и 20 знака",
		"error.password.match":  "Паролите не съвпадат",
		"error.username.taken":  "Потребителското име е заето",
		"error.email.taken":     "Този имейл вече е абониран",
	},
}

const DefaultLocale = "en"

// Resolve returns the message for key in the given locale, falling back to
// the default locale and finally to the key itself.
func Resolve(key, locale string) string {
	if table, ok := messages[locale]; ok {
		if msg, ok := table[key]; ok {
			return msg
		}
	}
	if msg, ok := messages[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// Supported reports whether a locale has a message table.
func Supported(locale string) bool {
	_, ok := messages[locale]
	return ok
}
