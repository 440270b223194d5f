package user

import (
	"github.com/gofiber/fiber/v2"
)

// Show returns the public data of a user as JSON, used to display content authors
func (u *Controller) Show(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.ErrNotFound
	}

	user, err := u.usersRepository.FindByID(uint(id))
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if user == nil {
		return fiber.ErrNotFound
	}

	return c.JSON(fiber.Map{
		"id":       user.ID,
		"name":     user.Name,
		"username": user.Username,
	})
}
