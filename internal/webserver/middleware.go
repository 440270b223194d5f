package webserver

import (
	"fmt"
	"net/url"

	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/svera/corkboard/internal/webserver/controller"
	"github.com/svera/corkboard/internal/webserver/view"
)

// SetFQDN composes the Fully Qualified Domain Name of the host running the app and sets it
// as a local variable of the request
func SetFQDN(cfg Config) func(*fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		c.Locals("fqdn", fmt.Sprintf("%s://%s%s",
			c.Protocol(),
			cfg.FQDN,
			controller.UrlPort(c.Protocol(), cfg.Port),
		))
		return c.Next()
	}
}

// SetLanguage picks the language of the response from the Accept-Language header
func SetLanguage(supportedLanguages []string) func(*fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		c.Locals("Lang", controller.BestLanguage(c, supportedLanguages))
		c.Locals("Version", c.App().Config().AppName)
		return c.Next()
	}
}

// JSONResponses marks the requests of a route as API ones, whose errors are answered with JSON
func JSONResponses(c *fiber.Ctx) error {
	c.Locals("JSON", true)
	return c.Next()
}

// AllowIfNotLoggedIn only allows processing the request if there is no session
func AllowIfNotLoggedIn(jwtSecret []byte) func(*fiber.Ctx) error {
	return jwtware.New(jwtware.Config{
		SigningKey:    jwtSecret,
		SigningMethod: "HS256",
		TokenLookup:   "cookie:session",
		SuccessHandler: func(c *fiber.Ctx) error {
			return c.Redirect("/")
		},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Next()
		},
	})
}

// AlwaysRequireAuthentication redirects to the login page, or returns unauthorized
// to API requests, if the user trying to access has not logged in
func AlwaysRequireAuthentication(jwtSecret []byte) func(*fiber.Ctx) error {
	return jwtware.New(jwtware.Config{
		SigningKey:    jwtSecret,
		SigningMethod: "HS256",
		TokenLookup:   "cookie:session",
		SuccessHandler: func(c *fiber.Ctx) error {
			c.Locals("Session", sessionData(c))
			return c.Next()
		},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if controller.WantsJSON(c) || c.Method() != fiber.MethodGet {
				return fiber.ErrUnauthorized
			}
			return c.Redirect("/login?next=" + url.QueryEscape(view.URL(c)))
		},
	})
}

// OptionalAuthentication loads the session if there is one, letting anonymous requests through
func OptionalAuthentication(jwtSecret []byte) func(*fiber.Ctx) error {
	return jwtware.New(jwtware.Config{
		SigningKey:    jwtSecret,
		SigningMethod: "HS256",
		TokenLookup:   "cookie:session",
		SuccessHandler: func(c *fiber.Ctx) error {
			c.Locals("Session", sessionData(c))
			return c.Next()
		},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Next()
		},
	})
}
