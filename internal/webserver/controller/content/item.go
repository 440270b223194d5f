package content

import (
	"github.com/gofiber/fiber/v2"
	"github.com/svera/corkboard/internal/webserver/controller"
	"github.com/svera/corkboard/internal/webserver/model"
	"go.uber.org/zap"
)

func (d *Controller) names() *controller.Names {
	return controller.NewNames(d.usersRepository)
}

// board loads the board in the route, failing with not found if there is none
func (d *Controller) board(c *fiber.Ctx) (*model.Board, error) {
	id, err := controller.BoardID(c)
	if err != nil {
		return nil, err
	}

	board, err := d.boardsRepository.Find(id)
	if err != nil {
		return nil, controller.Status(err)
	}
	if board == nil {
		return nil, fiber.ErrNotFound
	}
	return board, nil
}

// editable loads the content item in the route, which must be one that can be changed.
// The caller must have been checked to have access to board beforehand, so
// missing and chat items are not disclosed to strangers.
func (d *Controller) editable(c *fiber.Ctx, board *model.Board) (*model.Content, error) {
	id, err := c.ParamsInt("cid")
	if err != nil || id <= 0 {
		return nil, fiber.ErrNotFound
	}

	content, err := d.contentRepository.Find(board.ID, uint(id))
	if err != nil {
		return nil, fiber.ErrInternalServerError
	}
	if content == nil || content.Deleted {
		return nil, fiber.ErrNotFound
	}
	if content.Type == model.TypeChat {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Chat messages cannot be changed.")
	}
	return content, nil
}

func (d *Controller) index(content model.Content) {
	if err := d.idx.AddContent(content); err != nil {
		zap.L().Error("error indexing content", zap.Uint("content", content.ID), zap.Error(err))
	}
}
