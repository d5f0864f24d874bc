package services_test

import (
	"strings"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"github.com/PePetrov96/epicbyte/internal/domain"
	"github.com/PePetrov96/epicbyte/internal/forms"
	"github.com/PePetrov96/epicbyte/internal/repos"
	"github.com/PePetrov96/epicbyte/internal/services"
)

func userdb(t *testing.T) (*sqlx.DB, *repos.UserRepo, *services.UserService) {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	userRepo := repos.NewUserRepo(db)
	return db, userRepo, services.NewUserService(userRepo)
}

func validRegister() forms.RegisterForm {
	return forms.RegisterForm{
		Username:        "alice",
		Email:           "alice@example.com",
		FirstName:       "Alice",
		LastName:        "Doe",
		Password:        "s3cret",
		ConfirmPassword: "s3cret",
	}
}

func TestRegister_ValidationFailureWritesNothing(t *testing.T) {
	db, _, svc := userdb(t)

	form := validRegister()
	form.Email = "not-an-email"
	form.ConfirmPassword = "different"

	fieldErrs, err := svc.Register(form, "en")
	require.NoError(t, err)
	assert.Contains(t, fieldErrs, "email")
	assert.Contains(t, fieldErrs, "confirmPassword")

	var n int
	require.NoError(t, db.Get(&n, `SELECT COUNT(*) FROM users WHERE username='alice'`))
	assert.Zero(t, n)
}

func TestRegister_CreatesHashedUserWithDefaultRole(t *testing.T) {
	db, userRepo, svc := userdb(t)

	fieldErrs, err := svc.Register(validRegister(), "en")
	require.NoError(t, err)
	require.Empty(t, fieldErrs)

	u, err := userRepo.ByUsername("alice")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", u.Hash)
	assert.True(t, strings.HasPrefix(u.Hash, "$2"), "password must be stored bcrypt-hashed")
	assert.Equal(t, []domain.Role{domain.RoleUser}, u.Roles)

	var n int
	require.NoError(t, db.Get(&n, `SELECT COUNT(*) FROM users WHERE username='alice'`))
	assert.Equal(t, 1, n)
}

func TestRegister_DuplicateUsernameRejected(t *testing.T) {
	_, _, svc := userdb(t)

	_, err := svc.Register(validRegister(), "en")
	require.NoError(t, err)

	again := validRegister()
	again.Email = "other@example.com"
	fieldErrs, err := svc.Register(again, "en")
	require.NoError(t, err)
	assert.Contains(t, fieldErrs, "username")
}

func TestUpdateProfile_NonUsernameChangeKeepsSession(t *testing.T) {
	db, userRepo, svc := userdb(t)
	_, err := svc.Register(validRegister(), "en")
	require.NoError(t, err)
	u, err := userRepo.ByUsername("alice")
	require.NoError(t, err)
	require.NoError(t, userRepo.BindSession("sid-1", u.ID))

	fieldErrs, loggedOut, err := svc.UpdateProfile(u.ID, forms.ProfileForm{
		Username: "alice", Email: "new@example.com", FirstName: "Alice", LastName: "Smith",
	}, "en")
	require.NoError(t, err)
	assert.Empty(t, fieldErrs)
	assert.False(t, loggedOut)

	got, err := userRepo.ByID(u.ID)
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", got.Email)
	assert.Equal(t, "Smith", got.LastName)

	var n int
	require.NoError(t, db.Get(&n, `SELECT COUNT(*) FROM sessions WHERE user_id=?`, u.ID))
	assert.Equal(t, 1, n, "session must survive a non-username update")
}

func TestUpdateProfile_TakenUsernameRejectedWithoutMutation(t *testing.T) {
	_, userRepo, svc := userdb(t)
	_, err := svc.Register(validRegister(), "en")
	require.NoError(t, err)
	bob := validRegister()
	bob.Username = "bob"
	bob.Email = "bob@example.com"
	_, err = svc.Register(bob, "en")
	require.NoError(t, err)

	u, err := userRepo.ByUsername("alice")
	require.NoError(t, err)

	fieldErrs, loggedOut, err := svc.UpdateProfile(u.ID, forms.ProfileForm{
		Username: "bob", Email: "stolen@example.com", FirstName: "Alice", LastName: "Doe",
	}, "en")
	assert.ErrorIs(t, err, services.ErrUsernameTaken)
	assert.Contains(t, fieldErrs, "username")
	assert.False(t, loggedOut)

	got, err := userRepo.ByID(u.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)
	assert.Equal(t, "alice@example.com", got.Email, "record must not be mutated on conflict")
}

func TestUpdateProfile_UsernameChangeForcesLogout(t *testing.T) {
	db, userRepo, svc := userdb(t)
	_, err := svc.Register(validRegister(), "en")
	require.NoError(t, err)
	u, err := userRepo.ByUsername("alice")
	require.NoError(t, err)
	require.NoError(t, userRepo.BindSession("sid-1", u.ID))
	require.NoError(t, userRepo.BindSession("sid-2", u.ID))

	fieldErrs, loggedOut, err := svc.UpdateProfile(u.ID, forms.ProfileForm{
		Username: "alice2", Email: "alice@example.com", FirstName: "Alice", LastName: "Doe",
	}, "en")
	require.NoError(t, err)
	assert.Empty(t, fieldErrs)
	assert.True(t, loggedOut)

	got, err := userRepo.ByID(u.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice2", got.Username)

	var n int
	require.NoError(t, db.Get(&n, `SELECT COUNT(*) FROM sessions WHERE user_id=?`, u.ID))
	assert.Zero(t, n, "all sessions must be revoked after a rename")
}
