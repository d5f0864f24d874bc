package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"
	"github.com/jmoiron/sqlx"

	"github.com/PePetrov96/epicbyte/internal/config"
	"github.com/PePetrov96/epicbyte/internal/http/handlers"
	"github.com/PePetrov96/epicbyte/internal/repos"
	"github.com/PePetrov96/epicbyte/internal/services"
	"github.com/PePetrov96/epicbyte/internal/web"
)

// newApp builds a minimal app mirroring the production route table.
func newApp(t *testing.T) (*fiber.App, *sqlx.DB) {
	t.Helper()
	return newAppCfg(t, config.Config{DBDSN: ":memory:", MediaDir: t.TempDir(), Locale: "en"})
}

func newAppCfg(t *testing.T, cfg config.Config) (*fiber.App, *sqlx.DB) {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	userRepo := repos.NewUserRepo(db)
	authSvc := &services.AuthService{Users: userRepo}
	authH := &handlers.AuthHandler{Auth: authSvc}

	engine := html.New("../../web/templates", ".html")
	app := fiber.New(fiber.Config{Views: engine})
	app.Use(requestid.New())
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("defaultLocale", cfg.Locale)
		if sid := c.Cookies("sid"); sid != "" {
			if u, err := authSvc.CurrentUser(sid); err == nil && u != nil {
				c.Locals("user", u)
			}
		}
		return c.Next()
	})
	app.Use(csrf.New(csrf.Config{KeyLookup: "form:csrf", CookieName: "csrf_", CookieSameSite: "Lax"}))

	deps := handlers.NewDeps(db, cfg, authSvc)
	app.Get("/login", authH.LoginForm)
	app.Post("/login", authH.Login)
	app.Post("/logout", authH.Logout)
	app.Get("/register", deps.UserHandler.RegisterForm)
	app.Post("/register", deps.UserHandler.Register)
	app.Get("/profile", handlers.RequireUser(authSvc), deps.UserHandler.ProfileForm)
	app.Post("/profile", handlers.RequireUser(authSvc), deps.UserHandler.UpdateProfile)
	app.Get("/products/:type/add", handlers.RequireModerator(authSvc), deps.ProductHandler.AddForm)
	app.Post("/products/:type/add", handlers.RequireModerator(authSvc), deps.ProductHandler.Add)
	app.Get("/products/:type", deps.ProductHandler.List)
	app.Get("/products/:type/:id", deps.ProductHandler.Detail)
	app.Post("/products/:type/:id/delete", handlers.RequireModerator(authSvc), deps.ProductHandler.Delete)
	app.Get("/cart", handlers.RequireUser(authSvc), deps.CartHandler.View)
	app.Post("/cart", handlers.RequireUser(authSvc), deps.CartHandler.Add)
	app.Post("/cart/clear", handlers.RequireUser(authSvc), deps.CartHandler.Clear)
	app.Post("/cart/:id/delete", handlers.RequireUser(authSvc), deps.CartHandler.Remove)
	app.Post("/subscribe", deps.SubscriberHandler.Subscribe)
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(404).Render(web.ViewError, fiber.Map{"ErrorType": "Not found", "ErrorText": "Page not found"})
	})

	return app, db
}

func cookieValue(resp *http.Response, name string) string {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c.Value
		}
	}
	return ""
}

// session fetches a csrf token and keeps the cookies needed for posting.
type session struct {
	csrf string
	sid  string
}

func newSession(t *testing.T, app *fiber.App) *session {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", "/login", nil))
	if err != nil {
		t.Fatal(err)
	}
	tok := cookieValue(resp, "csrf_")
	if tok == "" {
		t.Fatal("csrf token missing")
	}
	return &session{csrf: tok}
}

func (s *session) postForm(t *testing.T, app *fiber.App, path string, form url.Values) *http.Response {
	t.Helper()
	form.Set("csrf", s.csrf)
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: "csrf_", Value: s.csrf})
	if s.sid != "" {
		req.AddCookie(&http.Cookie{Name: "sid", Value: s.sid})
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if sid := cookieValue(resp, "sid"); sid != "" {
		s.sid = sid
	}
	return resp
}

func (s *session) get(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	req.AddCookie(&http.Cookie{Name: "csrf_", Value: s.csrf})
	if s.sid != "" {
		req.AddCookie(&http.Cookie{Name: "sid", Value: s.sid})
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	return resp
}
