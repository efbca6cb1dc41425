package index

import (
	"time"

	"github.com/svera/sitesearch/internal/cms"
)

// Document is the indexed representation of a CMS resource. Its ID is the resource path.
type Document struct {
	Path             string
	UUID             string
	Name             string
	Title            string
	Description      string
	Content          string
	Type             string
	Category         string
	Tags             []string
	Locale           string
	State            string
	DateLastModified time.Time
	UserLastModified string
}

// BleveType is part of the bleve.Classifier interface and its purpose is to tell the indexer
// the type of the document, which will be used to decide which mapping applies to it.
func (d Document) BleveType() string {
	return resourceType
}

func NewDocument(r cms.Resource) Document {
	return Document{
		Path:             r.Path,
		UUID:             r.UUID,
		Name:             r.Name,
		Title:            r.Title,
		Description:      r.Description,
		Content:          r.Content,
		Type:             r.Type,
		Category:         r.Category,
		Tags:             r.Tags,
		Locale:           r.Locale,
		State:            r.StateName(),
		DateLastModified: r.DateLastModified,
		UserLastModified: r.UserLastModified,
	}
}
