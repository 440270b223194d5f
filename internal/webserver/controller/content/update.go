package content

import (
	"github.com/gofiber/fiber/v2"
	"github.com/svera/corkboard/internal/webserver/controller"
	"github.com/svera/corkboard/internal/webserver/model"
)

// Update changes the body or the position of an item, which requires holding the board lease
func (d *Controller) Update(c *fiber.Ctx) error {
	board, err := d.board(c)
	if err != nil {
		return err
	}

	if _, err := d.gate.Read(board, controller.Caller(c)); err != nil {
		return controller.Status(err)
	}

	content, err := d.editable(c, board)
	if err != nil {
		return err
	}

	message, position := c.FormValue("message"), c.FormValue("position")
	if message == "" && position == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Nothing to change")
	}
	if message != "" {
		content.Body = controller.Sanitize(message)
		if errs := model.ValidateBody(content.Body); len(errs) > 0 {
			return fiber.NewError(fiber.StatusBadRequest, errs["message"])
		}
	}
	if position != "" {
		content.Position = position
	}

	grant, err := d.gate.Authorize(board, controller.Caller(c), true)
	if err != nil {
		return controller.Status(err)
	}

	d.touch(content, grant.Identity)
	if err := d.contentRepository.Update(content); err != nil {
		return fiber.ErrInternalServerError
	}
	d.index(*content)

	return c.JSON(d.names().Item(*content))
}

// Delete flags an item as deleted, which requires holding the board lease
func (d *Controller) Delete(c *fiber.Ctx) error {
	board, err := d.board(c)
	if err != nil {
		return err
	}

	if _, err := d.gate.Read(board, controller.Caller(c)); err != nil {
		return controller.Status(err)
	}

	content, err := d.editable(c, board)
	if err != nil {
		return err
	}

	grant, err := d.gate.Authorize(board, controller.Caller(c), true)
	if err != nil {
		return controller.Status(err)
	}

	d.touch(content, grant.Identity)
	content.Deleted = true
	if err := d.contentRepository.SoftDelete(content); err != nil {
		return fiber.ErrInternalServerError
	}
	d.index(*content)

	return c.JSON(d.names().Item(*content))
}

// touch records who changes the item and when. The repository turns the
// instant into the stamp pollers see.
func (d *Controller) touch(content *model.Content, identity string) {
	now := d.gate.Now()
	content.UpdatedAt = now
	content.Modified = now.UnixNano()
	content.LastModifiedBy = identity
}
