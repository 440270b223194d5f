package content

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/svera/corkboard/internal/webserver/controller"
)

// List returns the items of the board changed after the stamp in the since
// query parameter, deleted ones included, along with the state of the board lease
func (d *Controller) List(c *fiber.Ctx) error {
	board, err := d.board(c)
	if err != nil {
		return err
	}

	grant, err := d.gate.Read(board, controller.Caller(c))
	if err != nil {
		return controller.Status(err)
	}

	var since int64
	if value := c.Query("since"); value != "" {
		if since, err = strconv.ParseInt(value, 10, 64); err != nil || since < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Incorrect since value")
		}
	}

	contents, err := d.contentRepository.ModifiedSince(board.ID, since)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	names := d.names()
	latest := since
	for _, content := range contents {
		if content.Modified > latest {
			latest = content.Modified
		}
	}

	locked := d.gate.Locked(board, grant.Identity)
	lockedBy := ""
	if locked {
		lockedBy = names.Of(board.LockedBy)
	}

	return c.JSON(fiber.Map{
		"components": names.Items(contents),
		"since":      latest,
		"locked":     locked,
		"lockedBy":   lockedBy,
		"expired":    d.gate.Expired(board),
		"canEdit":    grant.CanEdit(),
	})
}
