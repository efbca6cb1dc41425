package results

import (
	"context"

	"github.com/svera/sitesearch/internal/search"
	"github.com/svera/sitesearch/internal/search/controller"
	"github.com/svera/sitesearch/internal/search/result"
)

type IdxReader interface {
	Search(ctx context.Context, q search.Query) (*search.Snapshot, error)
	Count() (uint64, error)
}

type Controller struct {
	idx      IdxReader
	resolver result.ContentResolver
	form     controller.Config
}

// NewController creates the search page controller. form is the search form configuration
// every request builds its own form controllers from.
func NewController(idx IdxReader, resolver result.ContentResolver, form controller.Config) *Controller {
	return &Controller{
		idx:      idx,
		resolver: resolver,
		form:     form,
	}
}
