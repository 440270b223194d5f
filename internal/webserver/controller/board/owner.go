package board

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/svera/corkboard/internal/webserver/controller"
	"github.com/svera/corkboard/internal/webserver/model"
	"go.uber.org/zap"
)

// UpdateTitle renames a board
func (b *Controller) UpdateTitle(c *fiber.Ctx) error {
	board, err := b.owned(c, false)
	if err != nil {
		return err
	}

	title := controller.Sanitize(c.FormValue("title"))
	if errs := model.ValidateTitle(title); len(errs) > 0 {
		return fiber.NewError(fiber.StatusBadRequest, errs["title"])
	}

	if err := b.boardsRepository.UpdateTitle(board.ID, title); err != nil {
		return fiber.ErrInternalServerError
	}

	if controller.WantsJSON(c) {
		return c.JSON(fiber.Map{"title": title})
	}
	return c.Redirect(fmt.Sprintf("/boards/%d", board.ID))
}

// Done closes a board for changes right away by moving its expiry to now.
// Expiry is never extended.
func (b *Controller) Done(c *fiber.Ctx) error {
	board, err := b.owned(c, false)
	if err != nil {
		return err
	}

	if err := b.boardsRepository.Expire(board.ID, b.gate.Now()); err != nil {
		return fiber.ErrInternalServerError
	}

	zap.L().Info("board marked as done", zap.Uint("board", board.ID))
	if controller.WantsJSON(c) {
		return c.JSON(fiber.Map{"expired": true})
	}
	return c.Redirect(fmt.Sprintf("/boards/%d", board.ID))
}

// Delete removes a board along with its invites and content. Expired boards can be deleted.
func (b *Controller) Delete(c *fiber.Ctx) error {
	board, err := b.owned(c, true)
	if err != nil {
		return err
	}

	if err := b.boardsRepository.Delete(board.ID); err != nil {
		return fiber.ErrInternalServerError
	}

	if err := b.idx.RemoveBoard(board.ID); err != nil {
		zap.L().Error("error removing board from index", zap.Uint("board", board.ID), zap.Error(err))
	}

	zap.L().Info("board deleted", zap.Uint("board", board.ID))
	if controller.WantsJSON(c) {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.Redirect("/")
}

func (b *Controller) owned(c *fiber.Ctx, allowExpired bool) (*model.Board, error) {
	id, err := controller.BoardID(c)
	if err != nil {
		return nil, err
	}

	board, err := b.boardsRepository.Find(id)
	if err != nil {
		return nil, controller.Status(err)
	}

	if err := b.gate.AuthorizeOwner(board, controller.Caller(c), allowExpired); err != nil {
		return nil, controller.Status(err)
	}
	return board, nil
}
