package domain

type Role string

const (
	RoleUser      Role = "USER"
	RoleModerator Role = "MODERATOR"
)

type UserRole struct {
	ID   string `db:"id"`
	Role Role   `db:"role"`
}

type User struct {
	ID        string `db:"id"`
	Username  string `db:"username"`
	Email     string `db:"email"`
	Hash      string `db:"password_hash"`
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`
	CreatedAt string `db:"created_at"`
	Roles     []Role `db:"-"`
}

// HasRole reports whether the user carries the given role.
func (u *User) HasRole(r Role) bool {
	for _, have := range u.Roles {
		if have == r {
			return true
		}
	}
	return false
}
