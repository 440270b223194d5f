package board

import (
	"github.com/gofiber/fiber/v2"
	"github.com/svera/corkboard/internal/webserver/model"
)

// New renders the form to create a board
func (b *Controller) New(c *fiber.Ctx) error {
	return c.Render("board/new", fiber.Map{
		"Title":          "New board",
		"MaxTitleLength": model.MaxTitleLength,
		"MaxHours":       int(b.config.MaxLifetime.Hours()),
		"Hours":          int(b.config.MaxLifetime.Hours()),
		"Errors":         map[string]string{},
	}, "layout")
}
