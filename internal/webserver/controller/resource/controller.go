package resource

import (
	"github.com/svera/sitesearch/internal/cms"
	"github.com/svera/sitesearch/internal/result"
	"gorm.io/gorm"
)

type resourceRepository interface {
	List(page int, resultsPerPage int) (result.Paginated[[]cms.Resource], error)
}

// IdxWriter keeps the index in sync with the resources changed through the web
type IdxWriter interface {
	IndexResource(r cms.Resource) error
}

type Config struct {
	ResultsPerPage    int
	MaxPagesNavigator int
}

type Controller struct {
	db         *gorm.DB
	repository resourceRepository
	idx        IdxWriter
	config     Config
}

func NewController(db *gorm.DB, repository resourceRepository, idx IdxWriter, cfg Config) *Controller {
	return &Controller{
		db:         db,
		repository: repository,
		idx:        idx,
		config:     cfg,
	}
}
