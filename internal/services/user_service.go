package services

import (
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/PePetrov96/epicbyte/internal/domain"
	"github.com/PePetrov96/epicbyte/internal/forms"
	"github.com/PePetrov96/epicbyte/internal/i18n"
	"github.com/PePetrov96/epicbyte/internal/repos"
)

var (
	ErrUsernameTaken = errors.New("username already exists")
	ErrNotFound      = errors.New("not found")
)

type UserService struct {
	Users *repos.UserRepo
}

func NewUserService(users *repos.UserRepo) *UserService {
	return &UserService{Users: users}
}

// Register validates the form and persists a new user with the default USER
// role. On failure the returned map carries field-scoped messages and no row
// is written.
func (s *UserService) Register(form forms.RegisterForm, locale string) (map[string]string, error) {
	fieldErrs := forms.Check(form, locale)
	if taken, err := s.Users.UsernameTaken(form.Username, ""); err != nil {
		return nil, err
	} else if taken {
		fieldErrs["username"] = i18n.Resolve("error.username.taken", locale)
	}
	if len(fieldErrs) > 0 {
		return fieldErrs, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(form.Password), 12)
	if err != nil {
		return nil, err
	}
	u := &domain.User{
		ID:        uuid.NewString(),
		Username:  form.Username,
		Email:     form.Email,
		Hash:      string(hash),
		FirstName: form.FirstName,
		LastName:  form.LastName,
	}
	if err := s.Users.Create(u, []domain.Role{domain.RoleUser}); err != nil {
		return nil, err
	}
	return nil, nil
}

// Profile loads the current data for the profile form.
func (s *UserService) Profile(username string) (*domain.User, error) {
	u, err := s.Users.ByUsername(username)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return u, err
}

// UpdateProfile applies the form to the stored user. A username change is
// rejected with ErrUsernameTaken when another user holds the name; otherwise
// it persists and the caller must force a logout (loggedOut=true). Session
// revocation happens here so the stale session token cannot outlive the
// rename; a revocation failure is logged by the caller and does not undo the
// already-persisted update.
func (s *UserService) UpdateProfile(userID string, form forms.ProfileForm, locale string) (fieldErrs map[string]string, loggedOut bool, err error) {
	fieldErrs = forms.Check(form, locale)
	if len(fieldErrs) > 0 {
		return fieldErrs, false, nil
	}

	u, err := s.Users.ByID(userID)
	if err == sql.ErrNoRows {
		return nil, false, ErrNotFound
	}
	if err != nil {
		return nil, false, err
	}

	usernameChanged := u.Username != form.Username
	if usernameChanged {
		taken, err := s.Users.UsernameTaken(form.Username, u.ID)
		if err != nil {
			return nil, false, err
		}
		if taken {
			return map[string]string{
				"username": i18n.Resolve("error.username.taken", locale),
			}, false, ErrUsernameTaken
		}
	}

	u.Username = form.Username
	u.Email = form.Email
	u.FirstName = form.FirstName
	u.LastName = form.LastName
	if err := s.Users.UpdateProfile(u); err != nil {
		return nil, false, err
	}

	if usernameChanged {
		if err := s.Users.RevokeUserSessions(u.ID); err != nil {
			return nil, true, err
		}
		return nil, true, nil
	}
	return nil, false, nil
}
