package resource

import (
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/svera/sitesearch/internal/webserver/jwtclaimsreader"
	"github.com/svera/sitesearch/internal/webserver/view"
)

// List renders a page of the CMS resources, most recently modified first
func (r *Controller) List(c *fiber.Ctx) error {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		page = 1
	}

	resources, err := r.repository.List(page, r.config.ResultsPerPage)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Render("resources", fiber.Map{
		"Title":     "Resources",
		"Resources": resources,
		"Paginator": view.Pagination(r.config.MaxPagesNavigator, resources, url.Values{}),
		"Session":   jwtclaimsreader.SessionData(c),
	}, "layout")
}
