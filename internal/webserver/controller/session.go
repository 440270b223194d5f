package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/svera/corkboard/internal/access"
	"github.com/svera/corkboard/internal/webserver/model"
)

// Session returns the data of the signed in user, or an empty session for anonymous requests
func Session(c *fiber.Ctx) model.Session {
	if session, ok := c.Locals("Session").(model.Session); ok {
		return session
	}
	return model.Session{}
}

// Caller builds the identity of whoever performs the request. The invitation
// token is looked up in the query string first, then in the form.
func Caller(c *fiber.Ctx) access.Caller {
	token := c.Query("invite")
	if token == "" {
		token = c.FormValue("invite")
	}
	return access.Caller{
		UserID:      Session(c).ID,
		InviteToken: token,
	}
}
