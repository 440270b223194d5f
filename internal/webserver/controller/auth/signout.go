package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SignOut expires the session cookie
func (a *Controller) SignOut(c *fiber.Ctx) error {
	cookie := sessionCookie("", time.Unix(0, 0))
	cookie.MaxAge = -1
	c.Cookie(cookie)

	zap.L().Debug("user signed out")
	return c.Redirect("/")
}
