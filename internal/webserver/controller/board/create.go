package board

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/svera/corkboard/internal/webserver/controller"
	"github.com/svera/corkboard/internal/webserver/model"
	"go.uber.org/zap"
)

// Create opens a new board owned by the signed in user, which stays writable
// for the number of hours chosen in the form
func (b *Controller) Create(c *fiber.Ctx) error {
	session := controller.Session(c)
	title := controller.Sanitize(c.FormValue("title"))
	maxHours := int(b.config.MaxLifetime.Hours())

	errs := model.ValidateTitle(title)
	hours := maxHours
	if value := c.FormValue("hours"); value != "" {
		var err error
		if hours, err = strconv.Atoi(value); err != nil || hours < 1 || hours > maxHours {
			errs["hours"] = "Boards can last between 1 and %d hours"
		}
	}

	if len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).Render("board/new", fiber.Map{
			"Title":          "New board",
			"BoardTitle":     title,
			"MaxTitleLength": model.MaxTitleLength,
			"MaxHours":       maxHours,
			"Hours":          hours,
			"Errors":         errs,
		}, "layout")
	}

	board := model.NewBoard(title, session.ID, b.gate.Now(), time.Duration(hours)*time.Hour)
	if err := b.boardsRepository.Create(board); err != nil {
		return fiber.ErrInternalServerError
	}

	zap.L().Info("board created", zap.Uint("board", board.ID), zap.Uint("owner", session.ID))
	return c.Redirect(fmt.Sprintf("/boards/%d", board.ID))
}
