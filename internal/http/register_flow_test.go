package handlers_test

import (
	"net/http"
	"net/url"
	"testing"
)

func registerForm(username string) url.Values {
	return url.Values{
		"username":        {username},
		"email":           {username + "@example.com"},
		"firstName":       {"Test"},
		"lastName":        {"User"},
		"password":        {"s3cret"},
		"confirmPassword": {"s3cret"},
	}
}

func TestRegister_SuccessRedirectsToLogin(t *testing.T) {
	app, db := newApp(t)
	s := newSession(t, app)

	resp := s.postForm(t, app, "/register", registerForm("alice"))
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("want redirect, got %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/login" {
		t.Fatalf("want /login, got %s", loc)
	}

	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM users WHERE username='alice'`); err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Fatalf("want 1 user, got %d", n)
	}
}

func TestRegister_ValidationFailureRerendersWithoutWrite(t *testing.T) {
	app, db := newApp(t)
	s := newSession(t, app)

	form := registerForm("bob")
	form.Set("confirmPassword", "not-the-same")
	resp := s.postForm(t, app, "/register", form)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("want re-rendered form, got %d", resp.StatusCode)
	}

	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM users WHERE username='bob'`); err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Fatalf("no user must be created, got %d", n)
	}
}

func TestRegister_DuplicateUsernameRerenders(t *testing.T) {
	app, db := newApp(t)
	s := newSession(t, app)

	if resp := s.postForm(t, app, "/register", registerForm("alice")); resp.StatusCode != http.StatusFound {
		t.Fatalf("first registration must pass, got %d", resp.StatusCode)
	}
	resp := s.postForm(t, app, "/register", registerForm("alice"))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("duplicate must re-render the form, got %d", resp.StatusCode)
	}

	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM users WHERE username='alice'`); err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Fatalf("want exactly 1 user, got %d", n)
	}
}

func TestProfile_UsernameChangeForcesLogoutRedirect(t *testing.T) {
	app, _ := newApp(t)
	s := newSession(t, app)

	if resp := s.postForm(t, app, "/register", registerForm("carol")); resp.StatusCode != http.StatusFound {
		t.Fatalf("register failed: %d", resp.StatusCode)
	}
	login := url.Values{"username": {"carol"}, "password": {"s3cret"}}
	if resp := s.postForm(t, app, "/login", login); resp.StatusCode != http.StatusFound {
		t.Fatalf("login failed: %d", resp.StatusCode)
	}

	if resp := s.get(t, app, "/profile"); resp.StatusCode != http.StatusOK {
		t.Fatalf("profile must render when logged in, got %d", resp.StatusCode)
	}

	update := url.Values{
		"username":  {"carol2"},
		"email":     {"carol@example.com"},
		"firstName": {"Test"},
		"lastName":  {"User"},
	}
	resp := s.postForm(t, app, "/profile", update)
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("want forced-logout redirect, got %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/login" {
		t.Fatalf("want /login, got %s", loc)
	}

	// the old session token is dead now
	if resp := s.get(t, app, "/profile"); resp.StatusCode != http.StatusFound {
		t.Fatalf("revoked session must redirect to login, got %d", resp.StatusCode)
	}
}
