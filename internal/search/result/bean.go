package result

import (
	"context"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/svera/sitesearch/internal/cms"
	"github.com/svera/sitesearch/internal/search"
)

// ContentResolver reads the CMS resource a search result points to
type ContentResolver interface {
	ReadResource(ctx context.Context, path string) (cms.Resource, error)
}

// highlights only keep the marks set by the engine
var highlightPolicy = bluemonday.NewPolicy().AllowElements("mark")

// ResourceBean is a search result as shown in result pages. The CMS resource behind it is only
// read when asked for, and then kept.
type ResourceBean struct {
	doc        search.Document
	highlights map[string][]string
	resolver   ContentResolver

	resource *cms.Resource
	err      error
}

func NewResourceBean(doc search.Document, highlights map[string][]string, resolver ContentResolver) *ResourceBean {
	return &ResourceBean{
		doc:        doc,
		highlights: highlights,
		resolver:   resolver,
	}
}

// ID returns the path of the resource
func (r *ResourceBean) ID() string {
	return r.doc.ID
}

func (r *ResourceBean) Score() float64 {
	return r.doc.Score
}

func (r *ResourceBean) Fields() map[string]any {
	return r.doc.Fields
}

// Field returns the stored value of a field as a string, lists being comma separated
func (r *ResourceBean) Field(name string) string {
	switch v := r.doc.Fields[name].(type) {
	case nil:
		return ""
	case string:
		return v
	case []any:
		var s string
		for i, item := range v {
			if i > 0 {
				s += ", "
			}
			s += fmt.Sprint(item)
		}
		return s
	default:
		return fmt.Sprint(v)
	}
}

// Highlights returns the sanitized highlighted fragments of each field
func (r *ResourceBean) Highlights() map[string][]string {
	sanitized := make(map[string][]string, len(r.highlights))
	for field, fragments := range r.highlights {
		sanitized[field] = make([]string, len(fragments))
		for i, fragment := range fragments {
			sanitized[field][i] = highlightPolicy.Sanitize(fragment)
		}
	}
	return sanitized
}

// Resource reads the CMS resource of the result. It is read only once, later calls return
// the same resource or error.
func (r *ResourceBean) Resource(ctx context.Context) (cms.Resource, error) {
	if r.resource == nil && r.err == nil {
		r.resolve(ctx)
	}
	if r.err != nil {
		return cms.Resource{}, r.err
	}
	return *r.resource, nil
}

func (r *ResourceBean) resolve(ctx context.Context) {
	if r.resolver == nil {
		r.err = fmt.Errorf("no content resolver for %s", r.doc.ID)
		return
	}
	resource, err := r.resolver.ReadResource(ctx, r.doc.ID)
	if err != nil {
		r.err = fmt.Errorf("error reading resource %s: %w", r.doc.ID, err)
		return
	}
	r.resource = &resource
}
