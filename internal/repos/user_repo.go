package repos

import (
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/PePetrov96/epicbyte/internal/domain"
)

type UserRepo struct{ DB *sqlx.DB }

func NewUserRepo(db *sqlx.DB) *UserRepo { return &UserRepo{DB: db} }

func (r *UserRepo) ByUsername(username string) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `SELECT id,username,email,password_hash,first_name,last_name,created_at
	                     FROM users WHERE LOWER(username)=LOWER(?)`, username)
	if err != nil {
		return nil, err
	}
	if err := r.loadRoles(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) ByID(id string) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `SELECT id,username,email,password_hash,first_name,last_name,created_at
	                     FROM users WHERE id=?`, id)
	if err != nil {
		return nil, err
	}
	if err := r.loadRoles(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) loadRoles(u *domain.User) error {
	var rows []domain.UserRole
	if err := r.DB.Select(&rows, `
	  SELECT ur.id, ur.role FROM users_roles j
	  JOIN user_roles ur ON ur.id=j.role_id
	  WHERE j.user_id=?`, u.ID); err != nil {
		return err
	}
	u.Roles = u.Roles[:0]
	for _, row := range rows {
		u.Roles = append(u.Roles, row.Role)
	}
	return nil
}

// UsernameTaken reports whether another user already holds the username.
// Only a zero-row lookup counts as free.
func (r *UserRepo) UsernameTaken(username, excludeID string) (bool, error) {
	var id string
	err := r.DB.Get(&id, `SELECT id FROM users WHERE LOWER(username)=LOWER(?) AND id != ?`,
		username, excludeID)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Create inserts the user and attaches the given roles in one transaction.
func (r *UserRepo) Create(u *domain.User, roles []domain.Role) error {
	tx, err := r.DB.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`INSERT INTO users(id,username,email,password_hash,first_name,last_name)
	                      VALUES(?,?,?,?,?,?)`,
		u.ID, u.Username, u.Email, u.Hash, u.FirstName, u.LastName); err != nil {
		return err
	}
	for _, role := range roles {
		if _, err := tx.Exec(`INSERT INTO users_roles(user_id,role_id)
		                      SELECT ?, id FROM user_roles WHERE role=?`, u.ID, string(role)); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// UpdateProfile persists the mutable profile fields.
func (r *UserRepo) UpdateProfile(u *domain.User) error {
	_, err := r.DB.Exec(`UPDATE users SET username=?,email=?,first_name=?,last_name=? WHERE id=?`,
		u.Username, u.Email, u.FirstName, u.LastName, u.ID)
	return err
}

// ---------- Sessions ----------

func (r *UserRepo) BindSession(sid, userID string) error {
	_, err := r.DB.Exec(`INSERT INTO sessions(id,user_id,last_seen)
	                     VALUES(?,?,CURRENT_TIMESTAMP)
	                     ON CONFLICT(id) DO UPDATE SET user_id=excluded.user_id,last_seen=CURRENT_TIMESTAMP`,
		sid, userID)
	return err
}

func (r *UserRepo) SessionUser(sid string) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `
	  SELECT u.id,u.username,u.email,u.password_hash,u.first_name,u.last_name,u.created_at
	  FROM sessions s
	  JOIN users u ON u.id=s.user_id
	  WHERE s.id=?`, sid)
	if err != nil {
		return nil, err
	}
	if err := r.loadRoles(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) UnbindSession(sid string) error {
	_, err := r.DB.Exec(`UPDATE sessions SET user_id=NULL,last_seen=CURRENT_TIMESTAMP WHERE id=?`, sid)
	return err
}

// RevokeUserSessions drops every session bound to the user. Used for the
// forced logout after a username change.
func (r *UserRepo) RevokeUserSessions(userID string) error {
	_, err := r.DB.Exec(`DELETE FROM sessions WHERE user_id=?`, userID)
	return err
}
