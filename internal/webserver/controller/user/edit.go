package user

import (
	"github.com/gofiber/fiber/v2"
	"github.com/svera/corkboard/internal/webserver/controller"
	"github.com/svera/corkboard/internal/webserver/model"
	"github.com/svera/corkboard/internal/webserver/view"
	"go.uber.org/zap"
)

// Edit renders the profile page of the signed in user, along with the boards they own or were invited to
func (u *Controller) Edit(c *fiber.Ctx) error {
	session := controller.Session(c)
	user, err := u.usersRepository.FindByID(session.ID)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if user == nil {
		return fiber.ErrNotFound
	}

	return u.renderEdit(c, user, map[string]string{}, "")
}

func (u *Controller) renderEdit(c *fiber.Ctx, user *model.User, validationErrs map[string]string, message string) error {
	page := c.QueryInt("page", 1)

	owned, err := u.boardsRepository.Owned(user.ID, page, model.BoardsPerPage)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	invited, err := u.boardsRepository.Invited(user.Email)
	if err != nil {
		zap.L().Error("error listing invited boards", zap.Uint("user", user.ID), zap.Error(err))
		return fiber.ErrInternalServerError
	}

	status := fiber.StatusOK
	if len(validationErrs) > 0 {
		status = fiber.StatusBadRequest
	}

	return c.Status(status).Render("user/edit", fiber.Map{
		"Title":             "Profile",
		"User":              user,
		"Owned":             owned,
		"Paginator":         view.Pagination(view.MaxPagesNavigator, owned, map[string]string{}),
		"Invited":           invited,
		"MinPasswordLength": u.config.MinPasswordLength,
		"UsernamePattern":   model.UsernamePattern,
		"Errors":            validationErrs,
		"ActiveTab":         c.FormValue("tab", "profile"),
		"Message":           message,
	}, "layout")
}
