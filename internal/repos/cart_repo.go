package repos

import (
	"github.com/jmoiron/sqlx"

	"github.com/PePetrov96/epicbyte/internal/domain"
)

type CartRepo struct{ db *sqlx.DB }

func NewCartRepo(db *sqlx.DB) *CartRepo { return &CartRepo{db: db} }

// CartItemRow is a cart line joined with the product it references.
type CartItemRow struct {
	ID          string  `db:"id"`
	ProductID   string  `db:"product_id"`
	ProductType string  `db:"product_type"`
	Name        string  `db:"name"`
	Price       float64 `db:"price"`
	ImageURL    string  `db:"image_url"`
	Quantity    int     `db:"quantity"`
	Subtotal    float64 `db:"subtotal"`
}

// Upsert inserts a cart line or bumps the quantity of an existing one. The
// stored quantity never exceeds 50, no matter how often the product is added.
func (r *CartRepo) Upsert(it domain.CartItem) error {
	_, err := r.db.Exec(`
	  INSERT INTO cart_items(id,user_id,product_id,quantity,created_at)
	  VALUES(?,?,?,?,CURRENT_TIMESTAMP)
	  ON CONFLICT(user_id,product_id) DO UPDATE SET quantity = MIN(50, cart_items.quantity + excluded.quantity)
	`, it.ID, it.UserID, it.ProductID, it.Quantity)
	return err
}

func (r *CartRepo) ItemsForUser(userID string) ([]CartItemRow, error) {
	rows := []CartItemRow{}
	err := r.db.Select(&rows, `
	  SELECT ci.id, ci.product_id, p.product_type, p.name, p.price, p.image_url,
	         ci.quantity, (ci.quantity * p.price) AS subtotal
	  FROM cart_items ci
	  JOIN products p ON p.id = ci.product_id
	  WHERE ci.user_id = ?
	  ORDER BY ci.created_at`, userID)
	return rows, err
}

func (r *CartRepo) Remove(userID, itemID string) error {
	_, err := r.db.Exec(`DELETE FROM cart_items WHERE id=? AND user_id=?`, itemID, userID)
	return err
}

func (r *CartRepo) Clear(userID string) error {
	_, err := r.db.Exec(`DELETE FROM cart_items WHERE user_id=?`, userID)
	return err
}
