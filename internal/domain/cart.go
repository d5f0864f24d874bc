package domain

// CartItem references Product and User by id only; rows are removed when the
// referenced product is deleted.
type CartItem struct {
	ID        string `db:"id"`
	UserID    string `db:"user_id"`
	ProductID string `db:"product_id"`
	Quantity  int    `db:"quantity"`
	CreatedAt string `db:"created_at"`
}

type Subscriber struct {
	ID        string `db:"id"`
	Email     string `db:"email"`
	CreatedAt string `db:"created_at"`
}
