// Package controller holds the helpers shared by the controllers of every area
package controller

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

const (
	defaultHttpPort  = 80
	defaultHttpsPort = 443
)

func UrlPort(protocol string, port int) string {
	urlPort := fmt.Sprintf(":%d", port)
	if port == 0 ||
		(port == defaultHttpPort && protocol == "http") ||
		(port == defaultHttpsPort && protocol == "https") {
		urlPort = ""
	}
	return urlPort
}

// BoardID returns the board ID in the route, failing with not found if it is not a valid one
func BoardID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, fiber.ErrNotFound
	}
	return uint(id), nil
}

// WantsJSON reports whether the response to the request must be JSON instead of HTML
func WantsJSON(c *fiber.Ctx) bool {
	if v, ok := c.Locals("JSON").(bool); ok && v {
		return true
	}
	return c.XHR() || c.Accepts(fiber.MIMETextHTML, fiber.MIMEApplicationJSON) == fiber.MIMEApplicationJSON
}
