package handlers

import (
	"github.com/gofiber/fiber/v2"

	"userblock/app/database"
)

// Page is the context every template receives.
type Page struct {
	Title    string
	Message  string
	Redirect string
	User     *database.User
	Key      string
}

func newPage(c *fiber.Ctx, title string) Page {
	return Page{Title: title, Redirect: c.Query("url")}
}

// renderInfo renders the generic info page. Every failed page flow ends
// here instead of raising; no error is fatal to the process.
func renderInfo(c *fiber.Ctx, title, message string) error {
	return c.Render("info", fiber.Map{"page": Page{Title: title, Message: message}})
}
