package main

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/fiber/v2/middleware/session"

	"userblock/app/config"
	"userblock/app/database"
	"userblock/app/handlers"
	"userblock/app/mail"
	"userblock/app/middleware"
	"userblock/app/render"
	"userblock/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.Environment)

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	app := fiber.New(fiber.Config{
		Views: render.New(cfg.ViewsPath),
	})

	app.Use(compress.New())
	app.Use(helmet.New())
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(healthcheck.New())

	store := session.New()
	mailer := mail.NewMailer(cfg.MailgunDomain, cfg.MailgunAPIKey, cfg.MailgunAPIBase, cfg.MailFrom)

	app.Use(func(c *fiber.Ctx) error {
		c.Locals("config", cfg)
		c.Locals("db", db)
		c.Locals("store", store)
		c.Locals("mailer", mail.Mailer(mailer))
		return c.Next()
	})

	// data route, admin-scoped like the rest of the block's data surface
	app.Get("/data/user/get", middleware.RequireAuth, middleware.RequireRole(database.RoleAdmin), handlers.GetUsers)

	// page routes
	app.Get("/user/login", handlers.Login)
	app.Post("/user/login", handlers.LoginPost)
	app.Get("/user/signup", handlers.Signup)
	app.Post("/user/signup", handlers.SignupPost)
	app.Get("/user/logout", handlers.Logout)
	app.Get("/user/profile", middleware.RequireLogin, handlers.GetProfile)
	app.Post("/user/profile", middleware.RequireLogin, handlers.UpdateProfile)
	app.Get("/user/password/reset", handlers.ResetPassword)
	app.Post("/user/password/reset_post", handlers.ResetPasswordPost)
	app.Post("/user/password/change_post", handlers.ChangePasswordPost)

	app.Use(func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNotFound)
	})

	log.Fatal().Err(app.Listen(fmt.Sprintf(":%d", cfg.ServerPort))).Msg("server stopped")
}
