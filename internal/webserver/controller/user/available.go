package user

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/svera/corkboard/internal/webserver/controller"
	"github.com/svera/corkboard/internal/webserver/model"
)

// Available tells whether the username or email in the query string can be
// taken by the requester, used to validate forms while typing
func (u *Controller) Available(c *fiber.Ctx) error {
	var (
		user *model.User
		err  error
	)

	switch {
	case c.Query("username") != "":
		user, err = u.usersRepository.FindByUsername(strings.TrimSpace(c.Query("username")))
	case c.Query("email") != "":
		user, err = u.usersRepository.FindByEmail(strings.TrimSpace(c.Query("email")))
	default:
		return fiber.ErrBadRequest
	}
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.JSON(fiber.Map{
		"available": user == nil || user.ID == controller.Session(c).ID,
	})
}
