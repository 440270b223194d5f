package content

import (
	"github.com/gofiber/fiber/v2"
	"github.com/svera/corkboard/internal/webserver/controller"
	"github.com/svera/corkboard/internal/webserver/model"
	"go.uber.org/zap"
	"golang.org/x/exp/slices"
)

// Create adds an item to the board. Chat messages only need access to the
// board, any other item needs edit access and the board lease.
func (d *Controller) Create(c *fiber.Ctx) error {
	board, err := d.board(c)
	if err != nil {
		return err
	}

	contentType := c.FormValue("type", model.TypeText)
	if !slices.Contains(model.ContentTypes, contentType) {
		return fiber.NewError(fiber.StatusBadRequest, "Incorrect content type")
	}

	body := controller.Sanitize(c.FormValue("message"))
	if errs := model.ValidateBody(body); len(errs) > 0 {
		return fiber.NewError(fiber.StatusBadRequest, errs["message"])
	}

	grant, err := d.gate.Authorize(board, controller.Caller(c), contentType != model.TypeChat)
	if err != nil {
		return controller.Status(err)
	}

	now := d.gate.Now()
	content := model.Content{
		CreatedAt:      now,
		UpdatedAt:      now,
		BoardID:        board.ID,
		Body:           body,
		Type:           contentType,
		Position:       c.FormValue("position"),
		LastModifiedBy: grant.Identity,
		Modified:       now.UnixNano(),
	}
	if session := controller.Session(c); session.ID > 0 {
		content.UserID = &session.ID
	} else {
		email := grant.Email
		content.UserEmail = &email
	}

	if err := d.contentRepository.Create(&content); err != nil {
		return fiber.ErrInternalServerError
	}
	d.index(content)

	zap.L().Debug("content created", zap.Uint("board", board.ID), zap.Uint("content", content.ID), zap.String("type", contentType))
	return c.Status(fiber.StatusCreated).JSON(d.names().Item(content))
}
