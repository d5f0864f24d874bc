package repos

import (
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/PePetrov96/epicbyte/internal/domain"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

const productCols = `
  id, product_type, name, description, price, image_url, is_new, created_at,
  author, publisher, publication_date, language, print_length, dimensions,
  genre, carrier, resolution, brand`

// Sort keys resolved to ORDER BY clauses. Unknown keys fall back to
// newest-first; the caller never sees an error for a bad sort value.
var sortClauses = map[string]string{
	"lowest":       `price ASC, created_at DESC`,
	"highest":      `price DESC, created_at DESC`,
	"alphabetical": `LOWER(name) ASC`,
}

const defaultSort = `created_at DESC, id DESC`

func (r *ProductRepo) ListByType(t domain.ProductType, sort string) ([]domain.Product, error) {
	order, ok := sortClauses[sort]
	if !ok {
		order = defaultSort
	}
	out := []domain.Product{}
	err := r.db.Select(&out, `SELECT `+productCols+` FROM products WHERE product_type = ? ORDER BY `+order, string(t))
	return out, err
}

func (r *ProductRepo) Get(id string) (*domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `SELECT `+productCols+` FROM products WHERE id = ?`, id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepo) Create(p *domain.Product) error {
	_, err := r.db.NamedExec(`
	  INSERT INTO products(
	    id, product_type, name, description, price, image_url, is_new, created_at,
	    author, publisher, publication_date, language, print_length, dimensions,
	    genre, carrier, resolution, brand
	  ) VALUES (
	    :id, :product_type, :name, :description, :price, :image_url, :is_new, :created_at,
	    :author, :publisher, :publication_date, :language, :print_length, :dimensions,
	    :genre, :carrier, :resolution, :brand
	  )`, p)
	return err
}

// DeleteCascade removes the product row and every cart item referencing it in
// one transaction.
func (r *ProductRepo) DeleteCascade(id string) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM products WHERE id=?`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM cart_items WHERE product_id=?`, id); err != nil {
		return err
	}
	return tx.Commit()
}
