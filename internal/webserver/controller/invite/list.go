package invite

import (
	"github.com/gofiber/fiber/v2"
)

type inviteView struct {
	Email   string `json:"email"`
	Type    string `json:"type"`
	Link    string `json:"link"`
	Created string `json:"created"`
}

// List returns the invites of a board as JSON
func (i *Controller) List(c *fiber.Ctx) error {
	board, err := i.owned(c, true)
	if err != nil {
		return err
	}

	invites, err := i.invitesRepository.List(board.ID)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	views := make([]inviteView, 0, len(invites))
	for _, invite := range invites {
		views = append(views, inviteView{
			Email:   invite.Email,
			Type:    invite.Type,
			Link:    inviteLink(c, board.ID, invite.ID),
			Created: invite.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
		})
	}

	return c.JSON(fiber.Map{"invites": views})
}
