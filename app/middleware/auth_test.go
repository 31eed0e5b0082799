package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"userblock/app/config"
)

func testApp() *fiber.App {
	app := fiber.New()
	store := session.New()
	cfg := &config.Config{TokenSecret: "test-secret"}

	app.Use(func(c *fiber.Ctx) error {
		c.Locals("config", cfg)
		c.Locals("store", store)
		c.Locals("db", (*gorm.DB)(nil))
		return c.Next()
	})

	app.Get("/user/profile", RequireLogin, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	app.Get("/data/user/get", RequireAuth, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	return app
}

func TestRequireLoginRedirectsAnonymous(t *testing.T) {
	app := testApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/user/profile", nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/user/login?url=/user/profile", resp.Header.Get(fiber.HeaderLocation))
}

func TestRequireAuthRejectsAnonymous(t *testing.T) {
	app := testApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/data/user/get", nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAuthRejectsForgedToken(t *testing.T) {
	app := testApp()

	req := httptest.NewRequest("GET", "/data/user/get", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer not-a-token")

	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
