package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"userblock/app/config"
	"userblock/app/database"
	puser "userblock/app/platform/user"
)

func GetProfile(c *fiber.Ctx) error {
	user := c.Locals("user").(database.User)

	page := newPage(c, "User Profile")
	page.User = &user
	return c.Render("user/profile", fiber.Map{"page": page})
}

func UpdateProfile(c *fiber.Ctx) error {
	cfg := c.Locals("config").(*config.Config)
	db := c.Locals("db").(*gorm.DB)
	user := c.Locals("user").(database.User)

	userService := puser.NewService(db, cfg.TokenSecret)

	formValue := func(name string) *string {
		if v := c.FormValue(name); v != "" {
			return &v
		}
		return nil
	}

	input := puser.ProfileInput{
		Username:       formValue("username"),
		Firstname:      formValue("firstname"),
		Lastname:       formValue("lastname"),
		Phone:          formValue("phone"),
		PhoneSecondary: formValue("phone_secondary"),
	}

	if err := userService.UpdateProfile(&user, input, user.ID); err != nil {
		return renderInfo(c, "User Profile", "Error in updating your profile")
	}

	return c.Redirect("/user/profile")
}

// GetUsers serves the data route. The query string is the condition:
// id, username, email and status are honored, everything else ignored.
func GetUsers(c *fiber.Ctx) error {
	cfg := c.Locals("config").(*config.Config)
	db := c.Locals("db").(*gorm.DB)

	userService := puser.NewService(db, cfg.TokenSecret)

	condition := map[string]any{}
	for _, field := range []string{"id", "username", "email", "status"} {
		if v := c.Query(field); v != "" {
			condition[field] = v
		}
	}

	users, err := userService.Query(condition)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}

	return c.JSON(users)
}
