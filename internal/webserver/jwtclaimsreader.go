package webserver

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/svera/corkboard/internal/webserver/model"
)

func sessionData(c *fiber.Ctx) model.Session {
	var session model.Session

	t, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return session
	}

	claims, ok := t.Claims.(jwt.MapClaims)
	if !ok {
		return session
	}
	userDataMap, ok := claims["userdata"].(map[string]any)
	if !ok {
		return session
	}

	if value, ok := userDataMap["ID"].(float64); ok {
		session.ID = uint(value)
	}
	if value, ok := userDataMap["Uuid"].(string); ok {
		session.Uuid = value
	}
	if value, ok := userDataMap["Name"].(string); ok {
		session.Name = value
	}
	if value, ok := userDataMap["Username"].(string); ok {
		session.Username = value
	}
	if value, ok := userDataMap["Email"].(string); ok {
		session.Email = value
	}
	if value, ok := claims["exp"].(float64); ok {
		session.Exp = value
	}

	return session
}
