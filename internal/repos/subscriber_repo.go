package repos

import (
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/PePetrov96/epicbyte/internal/domain"
)

type SubscriberRepo struct{ db *sqlx.DB }

func NewSubscriberRepo(db *sqlx.DB) *SubscriberRepo { return &SubscriberRepo{db: db} }

// EmailTaken reports whether the email is already subscribed. Only a
// zero-row lookup counts as free.
func (r *SubscriberRepo) EmailTaken(email string) (bool, error) {
	var id string
	err := r.db.Get(&id, `SELECT id FROM subscribers WHERE LOWER(email)=LOWER(?)`, email)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *SubscriberRepo) Create(s *domain.Subscriber) error {
	_, err := r.db.Exec(`INSERT INTO subscribers(id,email) VALUES(?,?)`, s.ID, s.Email)
	return err
}
