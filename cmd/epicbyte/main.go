package main

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"
	"github.com/sirupsen/logrus"

	"github.com/PePetrov96/epicbyte/internal/config"
	"github.com/PePetrov96/epicbyte/internal/http/handlers"
	applog "github.com/PePetrov96/epicbyte/internal/log"
	"github.com/PePetrov96/epicbyte/internal/repos"
	"github.com/PePetrov96/epicbyte/internal/services"
	"github.com/PePetrov96/epicbyte/internal/web"
)

func main() {
	cfg := config.Load()

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		logrus.WithError(err).Fatal("open database")
	}

	// Auth wiring
	userRepo := repos.NewUserRepo(db)
	authSvc := &services.AuthService{Users: userRepo}
	authH := &handlers.AuthHandler{Auth: authSvc}

	// Templates & app
	engine := html.New("./web/templates", ".html")

	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			// No domain detail leaks past this point.
			if rerr := c.Status(fiber.StatusInternalServerError).Render(web.ViewError, fiber.Map{
				"ErrorType": "Oops...",
				"ErrorText": "Something went wrong!",
			}); rerr != nil {
				return c.Status(fiber.StatusInternalServerError).SendString("Something went wrong!")
			}
			return nil
		},
	})
	app.Server().MaxRequestBodySize = 8 << 20 // product images come in as form uploads

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	// Attach the configured locale and the user, if logged in
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("defaultLocale", cfg.Locale)
		if sid := c.Cookies("sid"); sid != "" {
			if u, err := authSvc.CurrentUser(sid); err == nil && u != nil {
				c.Locals("user", u)
			}
		}
		return c.Next()
	})
	app.Use(csrf.New(csrf.Config{
		KeyLookup:      "form:csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		CookieSecure:   false, // set true behind HTTPS
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Security(c, "csrf.fail", nil)
			return c.Status(fiber.StatusForbidden).Render(web.ViewError, fiber.Map{
				"ErrorType": "Security check failed",
				"ErrorText": "Please refresh and try again.",
			})
		},
	}))
	app.Use(func(c *fiber.Ctx) error {
		if tok := c.Locals("csrf"); tok != nil {
			c.Locals("CSRFToken", tok.(string))
		}
		return c.Next()
	})

	// ---------- Static assets ----------
	mediaDir := cfg.MediaDir
	if !filepath.IsAbs(mediaDir) {
		if abs, err := filepath.Abs(mediaDir); err == nil {
			mediaDir = abs
		}
	}
	app.Static("/static", "./web/static")
	// Guarded media to avoid traversal
	app.Get("/media/*", func(c *fiber.Ctx) error {
		path := c.Params("*")
		rawLower := strings.ToLower(path)
		if strings.Contains(rawLower, "..") || strings.Contains(rawLower, "%2e") || strings.Contains(rawLower, "\x00") {
			applog.Security(c, "media.traversal.block", map[string]any{"path": path})
			return c.SendStatus(fiber.StatusNotFound)
		}
		clean := filepath.Clean(path)
		if clean == "." || strings.Contains(clean, "..") || filepath.IsAbs(clean) {
			applog.Security(c, "media.traversal.block", map[string]any{"path": path})
			return c.SendStatus(fiber.StatusNotFound)
		}
		return c.SendFile(filepath.Join(mediaDir, clean), true)
	})

	// ---------- App handlers ----------
	deps := handlers.NewDeps(db, cfg, authSvc)

	// Public pages
	app.Get("/", deps.HomeHandler.Home)

	// Auth (login throttled)
	app.Get("/login", authH.LoginForm)
	app.Post("/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).Render(web.ViewLogin, fiber.Map{
				"Err":      "Too many attempts. Please try again later.",
				"Username": "",
			})
		},
	}), authH.Login)
	app.Post("/logout", authH.Logout)
	app.Get("/register", deps.UserHandler.RegisterForm)
	app.Post("/register", deps.UserHandler.Register)

	// Profile
	app.Get("/profile", handlers.RequireUser(authSvc), deps.UserHandler.ProfileForm)
	app.Post("/profile", handlers.RequireUser(authSvc), deps.UserHandler.UpdateProfile)

	// Products (add/delete gated behind the moderator role; the add routes
	// must register before the :id routes)
	app.Get("/products/:type/add", handlers.RequireModerator(authSvc), deps.ProductHandler.AddForm)
	app.Post("/products/:type/add", handlers.RequireModerator(authSvc), deps.ProductHandler.Add)
	app.Get("/products/:type", deps.ProductHandler.List)
	app.Get("/products/:type/:id", deps.ProductHandler.Detail)
	app.Post("/products/:type/:id/delete", handlers.RequireModerator(authSvc), deps.ProductHandler.Delete)

	// Cart
	app.Get("/cart", handlers.RequireUser(authSvc), deps.CartHandler.View)
	app.Post("/cart", handlers.RequireUser(authSvc), deps.CartHandler.Add)
	app.Post("/cart/clear", handlers.RequireUser(authSvc), deps.CartHandler.Clear)
	app.Post("/cart/:id/delete", handlers.RequireUser(authSvc), deps.CartHandler.Remove)

	// Newsletter
	app.Post("/subscribe", deps.SubscriberHandler.Subscribe)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).Render(web.ViewError, fiber.Map{
			"ErrorType": "Not found",
			"ErrorText": "Page not found",
		})
	})

	logrus.Fatal(app.Listen(":" + cfg.Port))
}
