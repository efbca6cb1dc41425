package resource

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/svera/sitesearch/internal/cms"
	"github.com/svera/sitesearch/internal/webserver/jwtclaimsreader"
)

// Touch sets the last modification date of a resource on behalf of the session user and
// indexes the touched resources again. The date is taken from the "timestamp" form value,
// in RFC 3339 format, and defaults to the current time.
func (r *Controller) Touch(c *fiber.Ctx) error {
	path := strings.TrimSpace(c.FormValue("path"))
	if path == "" {
		return fiber.ErrBadRequest
	}
	timestamp := time.Now().UTC()
	if value := c.FormValue("timestamp"); value != "" {
		var err error
		if timestamp, err = time.Parse(time.RFC3339, value); err != nil {
			return fiber.ErrBadRequest
		}
	}
	recursive := c.FormValue("recursive") == "true"

	session := jwtclaimsreader.SessionData(c)
	reqCtx, err := cms.NewRequestContext(c.UserContext(), r.db, session.Uuid)
	if errors.Is(err, cms.ErrUserNotFound) {
		return fiber.ErrForbidden
	}
	if err != nil {
		log.Println(err)
		return fiber.ErrInternalServerError
	}

	obj := cms.NewObject(&cms.ResourceRepository{DB: r.db}, reqCtx)
	touched, err := obj.Touch(c.UserContext(), path, timestamp, recursive)
	switch {
	case errors.Is(err, cms.ErrResourceNotFound):
		return fiber.ErrNotFound
	case errors.Is(err, cms.ErrPermissionDenied):
		return fiber.ErrForbidden
	case err != nil:
		log.Println(err)
		return fiber.ErrInternalServerError
	}

	for _, resource := range touched {
		if err := r.idx.IndexResource(resource); err != nil {
			log.Printf("Error indexing touched resource %s: %s\n", resource.Path, err)
		}
	}

	return c.SendStatus(fiber.StatusNoContent)
}
