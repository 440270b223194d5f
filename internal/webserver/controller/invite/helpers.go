package invite

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/svera/corkboard/internal/webserver/controller"
	"github.com/svera/corkboard/internal/webserver/model"
)

// owned loads the board in the route and checks the requester owns it
func (i *Controller) owned(c *fiber.Ctx, allowExpired bool) (*model.Board, error) {
	id, err := controller.BoardID(c)
	if err != nil {
		return nil, err
	}

	board, err := i.boardsRepository.Find(id)
	if err != nil {
		return nil, controller.Status(err)
	}

	if err := i.gate.AuthorizeOwner(board, controller.Caller(c), allowExpired); err != nil {
		return nil, controller.Status(err)
	}
	return board, nil
}

func inviteLink(c *fiber.Ctx, boardID uint, token string) string {
	fqdn, _ := c.Locals("fqdn").(string)
	return fmt.Sprintf("%s/boards/%d?invite=%s", fqdn, boardID, token)
}

func backToBoard(c *fiber.Ctx, boardID uint) error {
	return c.Redirect(fmt.Sprintf("/boards/%d", boardID))
}
