package jwtclaimsreader

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// Session holds the user data stored in the session token
type Session struct {
	ID       uint
	Name     string
	Username string
	Uuid     string
}

func SessionData(c *fiber.Ctx) Session {
	var session Session
	if t, ok := c.Locals("user").(*jwt.Token); ok {
		claims := t.Claims.(jwt.MapClaims)
		userDataMap, ok := claims["userdata"].(map[string]interface{})
		if !ok {
			return session
		}
		if value, ok := userDataMap["ID"].(float64); ok {
			session.ID = uint(value)
		}
		if value, ok := userDataMap["Name"].(string); ok {
			session.Name = value
		}
		if value, ok := userDataMap["Username"].(string); ok {
			session.Username = value
		}
		if value, ok := userDataMap["Uuid"].(string); ok {
			session.Uuid = value
		}
	}

	return session
}
