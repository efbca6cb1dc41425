package view

import (
	"github.com/gofiber/fiber/v2"
)

// QueryParams returns every value of every query string parameter of the request
func QueryParams(c *fiber.Ctx) map[string][]string {
	params := map[string][]string{}
	c.Request().URI().QueryArgs().VisitAll(func(key, value []byte) {
		params[string(key)] = append(params[string(key)], string(value))
	})
	return params
}
