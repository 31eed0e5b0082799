package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"gorm.io/gorm"

	"userblock/app/auth"
	"userblock/app/config"
	"userblock/app/database"
	puser "userblock/app/platform/user"
)

// RequireLogin guards page routes. Anonymous requests are sent to the
// login form with the original URL so login can redirect back.
func RequireLogin(c *fiber.Ctx) error {
	store := c.Locals("store").(*session.Store)

	sess, err := store.Get(c)
	if err != nil {
		return err
	}

	userID, ok := sess.Get("user_id").(string)
	if !ok || userID == "" {
		return c.Redirect("/user/login?url=" + c.OriginalURL())
	}

	cfg := c.Locals("config").(*config.Config)
	db := c.Locals("db").(*gorm.DB)
	userService := puser.NewService(db, cfg.TokenSecret)

	user, err := userService.GetByID(userID)
	if err != nil {
		sess.Destroy()
		return c.Redirect("/user/login?url=" + c.OriginalURL())
	}

	c.Locals("user", *user)
	return c.Next()
}

// RequireAuth guards data routes. It accepts either a logged-in session
// or the account's api_token as a Bearer token.
func RequireAuth(c *fiber.Ctx) error {
	cfg := c.Locals("config").(*config.Config)
	db := c.Locals("db").(*gorm.DB)

	authHeader := c.Get(fiber.HeaderAuthorization)
	if strings.HasPrefix(authHeader, "Bearer ") {
		token := strings.TrimPrefix(authHeader, "Bearer ")

		username, err := auth.VerifyAPIToken(token, cfg.TokenSecret)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized",
			})
		}

		userService := puser.NewService(db, cfg.TokenSecret)
		user, err := userService.FindByUsername(username)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized",
			})
		}

		c.Locals("user", *user)
		return c.Next()
	}

	store := c.Locals("store").(*session.Store)
	sess, err := store.Get(c)
	if err != nil {
		return err
	}

	userID, ok := sess.Get("user_id").(string)
	if !ok || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Unauthorized",
		})
	}

	userService := puser.NewService(db, cfg.TokenSecret)
	user, err := userService.GetByID(userID)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Unauthorized",
		})
	}

	c.Locals("user", *user)
	return c.Next()
}

// RequireRole rejects authenticated users missing the given role.
func RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := c.Locals("user").(database.User)

		if !user.HasRole(role) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized",
			})
		}

		return c.Next()
	}
}
