package invite

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/svera/corkboard/internal/errs"
	"github.com/svera/corkboard/internal/webserver/controller"
	"github.com/svera/corkboard/internal/webserver/infrastructure"
	"github.com/svera/corkboard/internal/webserver/model"
	"go.uber.org/zap"
)

// Create invites an email to the board with view or edit access, and mails
// the invitation link to it if email sending is configured
func (i *Controller) Create(c *fiber.Ctx) error {
	board, err := i.owned(c, false)
	if err != nil {
		return err
	}

	email := strings.ToLower(strings.TrimSpace(c.FormValue("email")))
	accessType := c.FormValue("type", model.AccessView)
	if validationErrs := model.ValidateInvite(email, accessType); len(validationErrs) > 0 {
		if msg, ok := validationErrs["email"]; ok {
			return fiber.NewError(fiber.StatusBadRequest, msg)
		}
		return fiber.NewError(fiber.StatusBadRequest, validationErrs["type"])
	}

	owner, err := i.usersRepository.FindByID(board.OwnerID)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if owner != nil && strings.EqualFold(owner.Email, email) {
		return fiber.NewError(fiber.StatusBadRequest, "You cannot invite yourself.")
	}

	invite := &model.Invite{
		ID:      uuid.NewString(),
		BoardID: board.ID,
		Email:   email,
		Type:    accessType,
	}
	if err := i.invitesRepository.Create(invite); err != nil {
		if errors.Is(err, errs.ErrAlreadyExists) {
			return fiber.NewError(fiber.StatusConflict, "This email has already been invited to this board.")
		}
		return fiber.ErrInternalServerError
	}

	link := inviteLink(c, board.ID, invite.ID)
	if err := i.sendInvitation(c, board, owner, invite, link); err != nil {
		zap.L().Error("error sending invitation email", zap.Uint("board", board.ID), zap.Error(err))
	}

	zap.L().Info("invite created", zap.Uint("board", board.ID), zap.String("type", invite.Type))
	if controller.WantsJSON(c) {
		return c.Status(fiber.StatusCreated).JSON(inviteView{
			Email:   invite.Email,
			Type:    invite.Type,
			Link:    link,
			Created: invite.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
		})
	}
	return backToBoard(c, board.ID)
}

func (i *Controller) sendInvitation(c *fiber.Ctx, board *model.Board, owner *model.User, invite *model.Invite, link string) error {
	if _, ok := i.sender.(*infrastructure.NoEmail); ok {
		return nil
	}

	inviter := ""
	if owner != nil {
		inviter = owner.Username
	}
	lang, _ := c.Locals("Lang").(string)

	if err := c.Render("board/invitation-email", fiber.Map{
		"Lang":       lang,
		"BoardTitle": board.Title,
		"Inviter":    inviter,
		"Type":       invite.Type,
		"Link":       link,
	}); err != nil {
		return err
	}
	body := string(c.Response().Body())
	c.Response().ResetBody()

	return i.sender.Send(
		invite.Email,
		i.translator.T(lang, "You've been invited to the board %s", board.Title),
		body,
	)
}
