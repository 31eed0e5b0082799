package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"userblock/app/config"
	"userblock/app/mail"
	puser "userblock/app/platform/user"
)

// resetMessage is reported for found and not-found emails alike so the
// endpoint cannot be used to probe which addresses have accounts.
const resetMessage = "Check your email for password reset information"

// ResetPassword renders the reset-request form, or, when called with a
// key, the change-password form pre-seeded with the referenced user.
func ResetPassword(c *fiber.Ctx) error {
	key := c.Query("key")
	if key == "" {
		page := newPage(c, "Password Reset")
		return c.Render("user/password_reset", fiber.Map{"page": page})
	}

	userID, _, err := puser.DecodePasswordResetKey(key)
	if err != nil {
		return renderInfo(c, "Password Reset", "Invalid password reset key")
	}

	cfg := c.Locals("config").(*config.Config)
	db := c.Locals("db").(*gorm.DB)
	userService := puser.NewService(db, cfg.TokenSecret)

	user, err := userService.GetByID(userID)
	if err != nil {
		return renderInfo(c, "Password Reset", "User is not found for reset key")
	}

	page := newPage(c, "Password Change")
	page.User = user
	page.Key = key
	return c.Render("user/password_change", fiber.Map{"page": page})
}

// ResetPasswordPost mails a reset link to the entered address. The mail
// send is fire-and-forget: failures are logged, never surfaced.
func ResetPasswordPost(c *fiber.Ctx) error {
	cfg := c.Locals("config").(*config.Config)
	db := c.Locals("db").(*gorm.DB)
	mailer := c.Locals("mailer").(mail.Mailer)

	userService := puser.NewService(db, cfg.TokenSecret)

	user, err := userService.GetByEmail(c.FormValue("email"))
	if err != nil {
		if !errors.Is(err, puser.ErrNotFound) {
			log.Error().Err(err).Msg("failed to look up user for password reset")
		}
		return renderInfo(c, "Password Reset", resetMessage)
	}

	resetKey := puser.PasswordResetKey(user)
	resetURL := cfg.BaseURL + "/user/password/reset?key=" + resetKey

	message := mail.Email{
		To:      user.Email,
		Subject: "Account password reset request",
		Content: "Here is link to reset your password:<br>\r\n<br>\r\n" + resetURL,
		IsHTML:  true,
	}
	if err := mailer.SendMail(&message); err != nil {
		log.Error().Err(err).Str("email", user.Email).Msg("failed to send password reset email")
	}

	return renderInfo(c, "Password Reset", resetMessage)
}

// ChangePasswordPost applies the new password for the account encoded in
// the reset key. The key is trusted beyond its structure, see the
// platform package.
func ChangePasswordPost(c *fiber.Ctx) error {
	cfg := c.Locals("config").(*config.Config)
	db := c.Locals("db").(*gorm.DB)

	userID, _, err := puser.DecodePasswordResetKey(c.FormValue("key"))
	if err != nil {
		return renderInfo(c, "Password Change", "Invalid password reset key")
	}

	password := c.FormValue("password")
	if password == "" {
		return renderInfo(c, "Password Change", "Password is required")
	}

	userService := puser.NewService(db, cfg.TokenSecret)

	if err := userService.UpdatePassword(userID, password, "password-reset"); err != nil {
		log.Error().Err(err).Msg("failed to change password")
		return renderInfo(c, "Password Change", "Error in changing your password")
	}

	return renderInfo(c, "Password Change", "Your password is changed successfully.")
}
