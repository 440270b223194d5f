package view

import (
	"github.com/gofiber/fiber/v2"
)

// URL returns the current path along with the query string
func URL(c *fiber.Ctx) string {
	url := c.Path()
	qs := string(c.Request().URI().QueryString())
	if qs != "" {
		url += "?" + qs
	}
	return url
}
