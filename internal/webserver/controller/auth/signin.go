package auth

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/svera/corkboard/internal/webserver/model"
	"go.uber.org/zap"
)

// Signs in a user and gives them a JWT.
func (a *Controller) SignIn(c *fiber.Ctx) error {
	// If email or password are incorrect, do not allow access.
	user, err := a.repository.FindByEmail(c.FormValue("email"))
	if err != nil {
		return fiber.ErrInternalServerError
	}

	if user == nil || !user.CheckPassword(c.FormValue("password")) {
		return c.Status(fiber.StatusUnauthorized).Render("auth/login", fiber.Map{
			"Title":            "Login",
			"Error":            "Wrong email or password",
			"Email":            c.FormValue("email"),
			"Next":             c.FormValue("next"),
			"DisableLoginLink": true,
		}, "layout")
	}

	if err := SetSessionCookie(c, user, a.config.SessionTimeout, a.config.Secret); err != nil {
		return err
	}

	zap.L().Info("user signed in", zap.Uint("user", user.ID))
	return c.Redirect(safeRedirect(c.FormValue("next")))
}

// SetSessionCookie generates a JWT for the user and sends it back as the session cookie
func SetSessionCookie(c *fiber.Ctx, user *model.User, timeout time.Duration, secret []byte) error {
	expiration := time.Now().Add(timeout)
	signedToken, err := GenerateToken(user, expiration, secret)
	if err != nil {
		zap.L().Error("error signing session token", zap.Error(err))
		return fiber.ErrInternalServerError
	}

	c.Cookie(sessionCookie(signedToken, expiration))
	return nil
}

func sessionCookie(value string, expiration time.Time) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     "session",
		Value:    value,
		Path:     "/",
		Expires:  expiration,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	}
}

func GenerateToken(user *model.User, expiration time.Time, secret []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userdata": model.Session{
			ID:       user.ID,
			Uuid:     user.Uuid,
			Name:     user.Name,
			Username: user.Username,
			Email:    user.Email,
		},
		"exp": jwt.NewNumericDate(expiration),
	})

	return token.SignedString(secret)
}

// safeRedirect only allows redirecting to paths of this application
func safeRedirect(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return "/"
	}
	return next
}
