package repos

import (
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Roles are a fixed enum set; make sure both rows exist (idempotent).
	if err := seedRoles(db); err != nil {
		return nil, err
	}
	// Ensure a moderator account exists so product CRUD is reachable.
	if err := seedModerator(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Users & roles
CREATE TABLE IF NOT EXISTS users(
  id TEXT PRIMARY KEY,
  username TEXT NOT NULL UNIQUE,
  email TEXT NOT NULL,
  password_hash TEXT NOT NULL,
  first_name TEXT NOT NULL DEFAULT '',
  last_name TEXT NOT NULL DEFAULT '',
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_users_username_nocase ON users(LOWER(username));

CREATE TABLE IF NOT EXISTS user_roles(
  id TEXT PRIMARY KEY,
  role TEXT NOT NULL UNIQUE CHECK (role IN ('USER','MODERATOR'))
);

CREATE TABLE IF NOT EXISTS users_roles(
  user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
  role_id TEXT NOT NULL REFERENCES user_roles(id) ON DELETE CASCADE,
  PRIMARY KEY (user_id, role_id)
);

-- Products: common columns plus per-type payload columns
CREATE TABLE IF NOT EXISTS products(
  id TEXT PRIMARY KEY,
  product_type TEXT NOT NULL CHECK (product_type IN ('BOOK','MOVIE','TOY')),
  name TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  price NUMERIC NOT NULL CHECK (price >= 0),
  image_url TEXT NOT NULL DEFAULT '',
  is_new INTEGER NOT NULL DEFAULT 1,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  author TEXT,
  publisher TEXT,
  publication_date TEXT,
  language TEXT,
  print_length INTEGER,
  dimensions TEXT,
  genre TEXT,
  carrier TEXT,
  resolution TEXT,
  brand TEXT
);
CREATE INDEX IF NOT EXISTS idx_products_type       ON products(product_type);
CREATE INDEX IF NOT EXISTS idx_products_name       ON products(LOWER(name));
CREATE INDEX IF NOT EXISTS idx_products_created_at ON products(created_at);

-- Cart items: weak references by id, cleaned up on product delete
CREATE TABLE IF NOT EXISTS cart_items(
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL,
  product_id TEXT NOT NULL,
  quantity INTEGER NOT NULL DEFAULT 1 CHECK (quantity >= 1),
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  UNIQUE (user_id, product_id)
);
CREATE INDEX IF NOT EXISTS idx_cart_items_user    ON cart_items(user_id);
CREATE INDEX IF NOT EXISTS idx_cart_items_product ON cart_items(product_id);

-- Newsletter subscribers
CREATE TABLE IF NOT EXISTS subscribers(
  id TEXT PRIMARY KEY,
  email TEXT NOT NULL UNIQUE,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_subscribers_email_nocase ON subscribers(LOWER(email));

-- Sessions: same value as the 'sid' cookie
CREATE TABLE IF NOT EXISTS sessions(
  id TEXT PRIMARY KEY,
  user_id TEXT NULL REFERENCES users(id) ON DELETE SET NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  last_seen TEXT
);
CREATE INDEX IF NOT EXISTS idx_sessions_user ON sessions(user_id);
`
	_, err := db.Exec(schema)
	return err
}

func seedRoles(db *sqlx.DB) error {
	_, err := db.Exec(`
		INSERT INTO user_roles(id, role) VALUES
		  ('role-user','USER'),
		  ('role-moderator','MODERATOR')
		ON CONFLICT(role) DO NOTHING
	`)
	return err
}

func seedModerator(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM users WHERE username='moderator'`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	logrus.Info("seeding moderator account")
	h, err := bcrypt.GenerateFromPassword([]byte("Moderat0r!"), 12)
	if err != nil {
		return err
	}

	tx := db.MustBegin()
	defer func() { _ = tx.Rollback() }()

	tx.MustExec(`INSERT INTO users(id,username,email,password_hash,first_name,last_name)
	             VALUES('u-moderator','moderator','moderator@epicbyte.test',?,'Epic','Byte')`, string(h))
	tx.MustExec(`INSERT INTO users_roles(user_id,role_id) VALUES
	  ('u-moderator','role-user'),
	  ('u-moderator','role-moderator')`)

	return tx.Commit()
}
