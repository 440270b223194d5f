package user

import (
	"github.com/gofiber/fiber/v2"
	"github.com/svera/corkboard/internal/webserver/model"
)

// New renders the registration form
func (u *Controller) New(c *fiber.Ctx) error {
	return c.Render("user/new", fiber.Map{
		"Title":             "Register",
		"MinPasswordLength": u.config.MinPasswordLength,
		"UsernamePattern":   model.UsernamePattern,
		"Errors":            map[string]string{},
		"User":              model.User{},
	}, "layout")
}
