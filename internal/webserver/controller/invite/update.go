package invite

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/svera/corkboard/internal/webserver/controller"
	"github.com/svera/corkboard/internal/webserver/model"
)

// UpdateType changes the access type of the invite sent to an email
func (i *Controller) UpdateType(c *fiber.Ctx) error {
	board, err := i.owned(c, false)
	if err != nil {
		return err
	}

	email := strings.TrimSpace(c.FormValue("email"))
	accessType := c.FormValue("type")
	if accessType != model.AccessView && accessType != model.AccessEdit {
		return fiber.NewError(fiber.StatusBadRequest, "Incorrect access type")
	}

	updated, err := i.invitesRepository.UpdateType(board.ID, email, accessType)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if !updated {
		return fiber.ErrNotFound
	}

	if controller.WantsJSON(c) {
		return c.JSON(fiber.Map{"email": strings.ToLower(email), "type": accessType})
	}
	return backToBoard(c, board.ID)
}
