package user

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/svera/corkboard/internal/errs"
	"github.com/svera/corkboard/internal/webserver/controller/auth"
	"github.com/svera/corkboard/internal/webserver/model"
	"go.uber.org/zap"
)

// Create gathers information coming from the registration form, creates a new user and signs them in
func (u *Controller) Create(c *fiber.Ctx) error {
	user := model.User{
		Name:     c.FormValue("name"),
		Username: c.FormValue("username"),
		Email:    c.FormValue("email"),
		Password: c.FormValue("password"),
		Uuid:     uuid.NewString(),
	}
	user.Normalize()

	validationErrs := user.Validate(u.config.MinPasswordLength)
	if exist, _ := u.usersRepository.FindByEmail(user.Email); exist != nil {
		validationErrs["email"] = "A user with this email address already exists"
	}

	if exist, _ := u.usersRepository.FindByUsername(user.Username); exist != nil {
		validationErrs["username"] = "A user with this username already exists"
	}

	if validationErrs = user.ConfirmPassword(c.FormValue("confirm-password"), validationErrs); len(validationErrs) > 0 {
		return u.renderNew(c, user, validationErrs)
	}

	hashed, err := model.Hash(user.Password)
	if err != nil {
		zap.L().Error("error hashing password", zap.Error(err))
		return fiber.ErrInternalServerError
	}
	user.Password = hashed

	if err := u.usersRepository.Create(&user); err != nil {
		if errors.Is(err, errs.ErrAlreadyExists) {
			return u.renderNew(c, user, map[string]string{"email": "A user with this email address already exists"})
		}
		return fiber.ErrInternalServerError
	}

	zap.L().Info("user registered", zap.Uint("user", user.ID))
	if err := auth.SetSessionCookie(c, &user, u.config.SessionTimeout, u.config.Secret); err != nil {
		return err
	}
	return c.Redirect("/")
}

func (u *Controller) renderNew(c *fiber.Ctx, user model.User, validationErrs map[string]string) error {
	user.Password = ""
	return c.Status(fiber.StatusBadRequest).Render("user/new", fiber.Map{
		"Title":             "Register",
		"MinPasswordLength": u.config.MinPasswordLength,
		"UsernamePattern":   model.UsernamePattern,
		"Errors":            validationErrs,
		"User":              user,
	}, "layout")
}
