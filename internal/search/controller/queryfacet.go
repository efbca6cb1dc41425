package controller

import (
	"fmt"
	"strings"

	"github.com/svera/sitesearch/internal/search"
	"golang.org/x/exp/slices"
)

type QueryFacetState struct {
	CheckedEntries []string
}

// QueryFacetController counts the documents matching each configured query. The facet queries
// are sent with an "{!ex=label}" prefix so the counts ignore the facet's own filter.
type QueryFacetController struct {
	config QueryFacetConfig
	state  QueryFacetState
}

func NewQueryFacet(cfg QueryFacetConfig) *QueryFacetController {
	return &QueryFacetController{config: cfg}
}

func (f *QueryFacetController) Config() QueryFacetConfig {
	return f.config
}

func (f *QueryFacetController) State() *QueryFacetState {
	return &f.state
}

func (f *QueryFacetController) IsChecked(query string) bool {
	return slices.Contains(f.state.CheckedEntries, query)
}

func (f *QueryFacetController) AddQueryParts(q *search.Query) {
	for _, item := range f.config.Items {
		q.FacetQueries = append(q.FacetQueries, fmt.Sprintf("{!ex=%s}%s", f.config.Label, item.Query))
	}
	if len(f.state.CheckedEntries) == 0 {
		return
	}
	q.AddFilter(search.Filter{
		Tag:   f.config.Label,
		Query: strings.Join(f.state.CheckedEntries, " "),
	})
}

func (f *QueryFacetController) AddParametersForCurrentState(params map[string][]string) {
	if len(f.state.CheckedEntries) > 0 {
		params[f.config.Param] = slices.Clone(f.state.CheckedEntries)
	}
}

// UpdateFromRequestParameters only accepts checked entries that are configured items
func (f *QueryFacetController) UpdateFromRequestParameters(params map[string][]string, isReloaded bool) {
	f.state.CheckedEntries = nil
	if !isReloaded {
		return
	}
	for _, value := range params[f.config.Param] {
		if f.isItem(value) && !slices.Contains(f.state.CheckedEntries, value) {
			f.state.CheckedEntries = append(f.state.CheckedEntries, value)
		}
	}
}

func (f *QueryFacetController) isItem(query string) bool {
	for _, item := range f.config.Items {
		if item.Query == query {
			return true
		}
	}
	return false
}
