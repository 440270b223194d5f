package invite

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/svera/corkboard/internal/webserver/controller"
	"go.uber.org/zap"
)

// Delete revokes the invite sent to an email. Invites of expired boards can be revoked too.
func (i *Controller) Delete(c *fiber.Ctx) error {
	board, err := i.owned(c, true)
	if err != nil {
		return err
	}

	deleted, err := i.invitesRepository.Delete(board.ID, strings.TrimSpace(c.FormValue("email")))
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if !deleted {
		return fiber.ErrNotFound
	}

	zap.L().Info("invite revoked", zap.Uint("board", board.ID))
	if controller.WantsJSON(c) {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return backToBoard(c, board.ID)
}

// Leave removes the invite of the signed in user from the board
func (i *Controller) Leave(c *fiber.Ctx) error {
	id, err := controller.BoardID(c)
	if err != nil {
		return err
	}

	board, err := i.boardsRepository.Find(id)
	if err != nil {
		return controller.Status(err)
	}

	session := controller.Session(c)
	grant, err := i.gate.Read(board, controller.Caller(c))
	if err != nil {
		return controller.Status(err)
	}
	if grant.IsOwner {
		return fiber.NewError(fiber.StatusBadRequest, "Owners cannot leave their own boards.")
	}

	deleted, err := i.invitesRepository.Delete(board.ID, grant.Email)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if !deleted {
		return fiber.ErrNotFound
	}

	zap.L().Info("user left board", zap.Uint("board", board.ID), zap.Uint("user", session.ID))
	if controller.WantsJSON(c) {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.Redirect("/")
}
