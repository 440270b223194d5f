package user

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/svera/corkboard/internal/webserver/controller"
	"github.com/svera/corkboard/internal/webserver/controller/auth"
	"github.com/svera/corkboard/internal/webserver/model"
	"go.uber.org/zap"
)

// Update gathers information from the profile form and updates user data.
// Invites addressed to the previous email follow the user to the new one.
func (u *Controller) Update(c *fiber.Ctx) error {
	user, session, err := u.current(c)
	if err != nil {
		return err
	}

	previousEmail := user.Email
	user.Name = c.FormValue("name")
	user.Username = c.FormValue("username")
	user.Email = c.FormValue("email")
	user.Normalize()

	validationErrs := user.ValidateProfile()
	if exists, err := u.taken(u.usersRepository.FindByUsername, user.Username, user.ID); err != nil {
		return fiber.ErrInternalServerError
	} else if exists {
		validationErrs["username"] = "A user with this username already exists"
	}
	if exists, err := u.taken(u.usersRepository.FindByEmail, user.Email, user.ID); err != nil {
		return fiber.ErrInternalServerError
	} else if exists {
		validationErrs["email"] = "A user with this email address already exists"
	}

	if len(validationErrs) > 0 {
		return u.renderEdit(c, user, validationErrs, "")
	}

	if err := u.usersRepository.UpdateProfile(user, previousEmail); err != nil {
		return controller.Status(err)
	}

	if err := u.refreshSession(c, session, user); err != nil {
		return err
	}

	return u.renderEdit(c, user, map[string]string{}, "Profile updated")
}

// UpdatePassword changes the password of the signed in user, who must provide the current one
func (u *Controller) UpdatePassword(c *fiber.Ctx) error {
	user, _, err := u.current(c)
	if err != nil {
		return err
	}

	candidate := *user
	candidate.Password = c.FormValue("password")
	validationErrs := candidate.Validate(u.config.MinPasswordLength)

	if !user.CheckPassword(c.FormValue("old-password")) {
		validationErrs["oldpassword"] = "The current password is not correct"
	}

	if validationErrs = candidate.ConfirmPassword(c.FormValue("confirm-password"), validationErrs); len(validationErrs) > 0 {
		return u.renderEdit(c, user, validationErrs, "")
	}

	hashed, err := model.Hash(candidate.Password)
	if err != nil {
		zap.L().Error("error hashing password", zap.Error(err))
		return fiber.ErrInternalServerError
	}
	user.Password = hashed

	if err := u.usersRepository.Update(user); err != nil {
		return fiber.ErrInternalServerError
	}

	return u.renderEdit(c, user, map[string]string{}, "Password changed")
}

func (u *Controller) current(c *fiber.Ctx) (*model.User, model.Session, error) {
	session := controller.Session(c)
	user, err := u.usersRepository.FindByID(session.ID)
	if err != nil {
		return nil, session, fiber.ErrInternalServerError
	}
	if user == nil {
		return nil, session, fiber.ErrNotFound
	}
	return user, session, nil
}

// taken reports whether value already belongs to a user other than the one with the passed ID
func (u *Controller) taken(find func(string) (*model.User, error), value string, userID uint) (bool, error) {
	user, err := find(value)
	if err != nil {
		return true, err
	}
	return user != nil && user.ID != userID, nil
}

func (u *Controller) refreshSession(c *fiber.Ctx, session model.Session, user *model.User) error {
	timeout := time.Until(time.Unix(int64(session.Exp), 0))
	if timeout <= 0 {
		timeout = u.config.SessionTimeout
	}
	if err := auth.SetSessionCookie(c, user, timeout, u.config.Secret); err != nil {
		return err
	}

	session.Name = user.Name
	session.Username = user.Username
	session.Email = user.Email
	c.Locals("Session", session)
	return nil
}
