package results

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/svera/sitesearch/internal/search"
	"github.com/svera/sitesearch/internal/search/controller"
	"github.com/svera/sitesearch/internal/search/result"
	"github.com/svera/sitesearch/internal/webserver/jwtclaimsreader"
	"github.com/svera/sitesearch/internal/webserver/view"
)

// Search renders the results of the search described by the query string. A failed search is
// rendered as an empty result along with its error.
func (s *Controller) Search(c *fiber.Ctx) error {
	form := controller.NewMain(s.form)
	form.UpdateFromRequestParameters(view.QueryParams(c))
	q := form.Query()

	var (
		snapshot *search.Snapshot
		err      error
	)
	if q.Keywords != "" {
		if snapshot, err = s.idx.Search(c.UserContext(), q); err != nil {
			log.Printf("error searching for '%s': %s\n", q.Keywords, err)
			snapshot = nil
		}
	}

	count, countErr := s.idx.Count()
	if countErr != nil {
		return fiber.ErrInternalServerError
	}

	wrapper := result.NewWrapper(form, snapshot, q, s.resolver, err)
	return c.Render("search", fiber.Map{
		"Title":     "Search",
		"Results":   wrapper,
		"Form":      view.NewSearchPage(wrapper),
		"Searched":  snapshot != nil,
		"Paginator": view.SearchPagination(wrapper),
		"Count":     count,
		"Session":   jwtclaimsreader.SessionData(c),
	}, "layout")
}
