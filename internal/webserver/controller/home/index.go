package home

import (
	"github.com/gofiber/fiber/v2"
	"github.com/svera/corkboard/internal/webserver/controller"
	"github.com/svera/corkboard/internal/webserver/model"
)

// Index shows the latest boards of the signed in user and the ones they were
// invited to, or a landing page for anonymous visitors
func (d *Controller) Index(c *fiber.Ctx) error {
	session := controller.Session(c)
	if session.ID == 0 {
		return c.Render("index", fiber.Map{
			"Title":      "Corkboard",
			"HomeNavbar": true,
		}, "layout")
	}

	owned, err := d.boardsRepository.Owned(session.ID, 1, d.config.LatestBoardsLimit)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	var invited []model.Board
	if session.Email != "" {
		if invited, err = d.boardsRepository.Invited(session.Email); err != nil {
			return fiber.ErrInternalServerError
		}
	}

	return c.Render("index", fiber.Map{
		"Title":      "Corkboard",
		"HomeNavbar": true,
		"Owned":      owned.Hits(),
		"Invited":    invited,
		"Now":        d.clock.Now(),
	}, "layout")
}
