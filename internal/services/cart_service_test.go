package services_test

import (
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"github.com/PePetrov96/epicbyte/internal/repos"
	"github.com/PePetrov96/epicbyte/internal/services"
)

func cartdb(t *testing.T) (*sqlx.DB, *services.CartService) {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, services.NewCartService(repos.NewCartRepo(db), repos.NewProductRepo(db))
}

func TestCartAdd_MissingProductRejected(t *testing.T) {
	_, svc := cartdb(t)
	assert.ErrorIs(t, svc.Add("u-1", "no-such-product", 1), services.ErrNotFound)
}

func TestCartAdd_QuantityCappedAtFifty(t *testing.T) {
	db, svc := cartdb(t)
	db.MustExec(`INSERT INTO products(id,product_type,name,price) VALUES('toy-1','TOY','Rubik Cube',9.99)`)

	require.NoError(t, svc.Add("u-1", "toy-1", 30))
	require.NoError(t, svc.Add("u-1", "toy-1", 30))

	var qty int
	require.NoError(t, db.Get(&qty, `SELECT quantity FROM cart_items WHERE user_id='u-1' AND product_id='toy-1'`))
	assert.Equal(t, 50, qty, "repeated adds must not push the quantity past the cap")
}

func TestCartClear_RemovesOnlyOwnRows(t *testing.T) {
	db, svc := cartdb(t)
	db.MustExec(`INSERT INTO products(id,product_type,name,price) VALUES('toy-1','TOY','Rubik Cube',9.99)`)
	require.NoError(t, svc.Add("u-1", "toy-1", 2))
	require.NoError(t, svc.Add("u-2", "toy-1", 1))

	require.NoError(t, svc.Clear("u-1"))

	var n int
	require.NoError(t, db.Get(&n, `SELECT COUNT(*) FROM cart_items WHERE user_id='u-1'`))
	assert.Zero(t, n)
	require.NoError(t, db.Get(&n, `SELECT COUNT(*) FROM cart_items WHERE user_id='u-2'`))
	assert.Equal(t, 1, n, "other carts must be untouched")
}
