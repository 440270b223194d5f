package board

import (
	"github.com/gofiber/fiber/v2"
	"github.com/svera/corkboard/internal/access"
	"github.com/svera/corkboard/internal/webserver/controller"
	"github.com/svera/corkboard/internal/webserver/model"
)

// Show renders a board with its live content. Expired boards can still be read.
func (b *Controller) Show(c *fiber.Ctx) error {
	board, grant, err := b.readable(c)
	if err != nil {
		return err
	}

	contents, err := b.contentRepository.Live(board.ID)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	var invites []model.Invite
	if grant.IsOwner {
		if invites, err = b.invitesRepository.List(board.ID); err != nil {
			return fiber.ErrInternalServerError
		}
	}

	return c.Render("board/show", fiber.Map{
		"Title":        board.Title,
		"Board":        board,
		"Access":       grant,
		"Contents":     contents,
		"Invites":      invites,
		"InviteToken":  controller.Caller(c).InviteToken,
		"Expired":      b.gate.Expired(board),
		"Locked":       b.gate.Locked(board, grant.Identity),
		"LeaseSeconds": int(b.config.Lease.Seconds()),
		"ContentTypes": model.ContentTypes,
		"AccessTypes":  []string{model.AccessView, model.AccessEdit},
	}, "layout")
}

// readable loads the board in the route and checks the requester can see it
func (b *Controller) readable(c *fiber.Ctx) (*model.Board, access.Access, error) {
	id, err := controller.BoardID(c)
	if err != nil {
		return nil, access.Access{}, err
	}

	board, err := b.boardsRepository.Find(id)
	if err != nil {
		return nil, access.Access{}, controller.Status(err)
	}

	grant, err := b.gate.Read(board, controller.Caller(c))
	if err != nil {
		return nil, grant, controller.Status(err)
	}
	return board, grant, nil
}
