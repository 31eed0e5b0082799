package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"userblock/app/config"
	"userblock/app/database"
	puser "userblock/app/platform/user"
)

func Login(c *fiber.Ctx) error {
	page := newPage(c, "login")
	return c.Render("user/login", fiber.Map{"page": page})
}

func LoginPost(c *fiber.Ctx) error {
	cfg := c.Locals("config").(*config.Config)
	db := c.Locals("db").(*gorm.DB)
	store := c.Locals("store").(*session.Store)

	type LoginInput struct {
		Email    string `validate:"required,email"`
		Password string `validate:"required"`
	}

	input := LoginInput{
		Email:    c.FormValue("email"),
		Password: c.FormValue("password"),
	}
	if err := config.Validate.Struct(input); err != nil {
		return renderInfo(c, "Login failed", "Incorrect username or password")
	}

	userService := puser.NewService(db, cfg.TokenSecret)

	user, info, err := userService.Login(input.Email, input.Password)
	if err != nil {
		log.Error().Err(err).Msg("login query failed")
	}
	if err != nil || !info.Success {
		return renderInfo(c, "Login failed", "Incorrect username or password")
	}

	if err := saveSessionUser(c, store, user); err != nil {
		return err
	}

	nextURL := c.FormValue("redirect")
	if nextURL == "" {
		nextURL = "/"
	}
	return c.Redirect(nextURL)
}

func Signup(c *fiber.Ctx) error {
	page := newPage(c, "User Signup")
	return c.Render("user/signup", fiber.Map{"page": page})
}

func SignupPost(c *fiber.Ctx) error {
	cfg := c.Locals("config").(*config.Config)
	db := c.Locals("db").(*gorm.DB)
	store := c.Locals("store").(*session.Store)

	type SignupInput struct {
		Username       string
		Firstname      string
		Lastname       string
		Email          string `validate:"required,email"`
		Phone          string
		PhoneSecondary string
		Password       string `validate:"required"`
		InviteCode     string
	}

	input := SignupInput{
		Username:       c.FormValue("username"),
		Firstname:      c.FormValue("firstname"),
		Lastname:       c.FormValue("lastname"),
		Email:          c.FormValue("email"),
		Phone:          c.FormValue("phone"),
		PhoneSecondary: c.FormValue("phone_secondary"),
		Password:       c.FormValue("password"),
		InviteCode:     c.FormValue("invite_code"),
	}
	if err := config.Validate.Struct(input); err != nil {
		return renderInfo(c, "Signup Error", err.Error())
	}

	roles := rolesForInviteCode(cfg, input.InviteCode)
	if len(roles) == 0 {
		return renderInfo(c, "Signup Error", "Incorrect invite code")
	}

	userService := puser.NewService(db, cfg.TokenSecret)

	user, err := userService.Create(puser.CreateInput{
		Username:       input.Username,
		Firstname:      optional(input.Firstname),
		Lastname:       optional(input.Lastname),
		Email:          input.Email,
		Phone:          optional(input.Phone),
		PhoneSecondary: optional(input.PhoneSecondary),
		Password:       input.Password,
		Roles:          roles,
		Actor:          "signup",
	})
	if err != nil {
		// duplicate email and data-layer failures both end on the info page
		if !errors.Is(err, puser.ErrUserExists) {
			log.Error().Err(err).Msg("failed to create user")
		}
		return renderInfo(c, "Signup Error", "Error in adding a new user")
	}

	if err := saveSessionUser(c, store, user); err != nil {
		return err
	}

	nextURL := c.FormValue("redirect")
	if nextURL == "" {
		nextURL = "/"
	}
	return c.Redirect(nextURL)
}

func Logout(c *fiber.Ctx) error {
	store := c.Locals("store").(*session.Store)

	sess, err := store.Get(c)
	if err != nil {
		return err
	}

	if err := sess.Destroy(); err != nil {
		return err
	}

	return c.Redirect("/")
}

// rolesForInviteCode maps the posted invite code to the role set a new
// signup receives. An unrecognized code yields no roles.
func rolesForInviteCode(cfg *config.Config, code string) []string {
	if code == "" {
		return nil
	}
	switch code {
	case cfg.InviteCodeUser:
		return []string{database.RoleUser}
	case cfg.InviteCodeAdmin:
		return []string{database.RoleAdmin, database.RoleUser}
	}
	return nil
}

// saveSessionUser marks the session authenticated. Only the user id is
// stored; salt and password hash never leave the database row.
func saveSessionUser(c *fiber.Ctx, store *session.Store, user *database.User) error {
	sess, err := store.Get(c)
	if err != nil {
		return err
	}

	sess.Set("authenticated", true)
	sess.Set("user_id", user.ID)
	return sess.Save()
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
