package controller

import (
	"github.com/svera/sitesearch/internal/search"
)

// Controller is implemented by every part of the search form
type Controller interface {
	// AddQueryParts adds to q whatever the controller's configuration and state require
	AddQueryParts(q *search.Query)
	// AddParametersForCurrentState writes the request parameters that reproduce the current state
	AddParametersForCurrentState(params map[string][]string)
	// UpdateFromRequestParameters sets the state from the request. isReloaded tells whether
	// the request comes from a result page of the same query, rather than from a new search.
	UpdateFromRequestParameters(params map[string][]string, isReloaded bool)
}

type Common interface {
	Controller
	Config() CommonConfig
	State() *CommonState
}

type Sorting interface {
	Controller
	Config() SortingConfig
	State() *SortingState
}

type Pagination interface {
	Controller
	Config() PaginationConfig
	State() *PaginationState
}

type FieldFacets interface {
	Controller
	// FieldFacetController returns the controllers of all configured field facets, keyed by field
	FieldFacetController() map[string]FieldFacet
	// Fields returns the configured fields, in configuration order
	Fields() []string
}

type FieldFacet interface {
	Controller
	Config() FieldFacetConfig
	State() *FieldFacetState
	IsChecked(value string) bool
}

type QueryFacet interface {
	Controller
	Config() QueryFacetConfig
	State() *QueryFacetState
	IsChecked(query string) bool
}

type DidYouMean interface {
	Controller
	Config() DidYouMeanConfig
	State() *DidYouMeanState
}

type Highlighting interface {
	Controller
	Config() HighlightConfig
}

// Main bundles the controllers of a search form. Every field but Common may be nil, which
// means the feature is not configured.
type Main struct {
	Common       Common
	Sorting      Sorting
	Pagination   Pagination
	FieldFacets  FieldFacets
	QueryFacet   QueryFacet
	DidYouMean   DidYouMean
	Highlighting Highlighting
}

// NewMain creates the controllers for the passed configuration. Parameter names and sizes
// left empty get their default values.
func NewMain(cfg Config) *Main {
	cfg.setDefaults()
	m := &Main{
		Common: NewCommon(cfg.Common),
	}
	if cfg.Sorting != nil {
		m.Sorting = NewSorting(*cfg.Sorting)
	}
	if cfg.Pagination != nil {
		m.Pagination = NewPagination(*cfg.Pagination)
	}
	if len(cfg.FieldFacets) > 0 {
		m.FieldFacets = NewFieldFacets(cfg.FieldFacets)
	}
	if cfg.QueryFacet != nil {
		m.QueryFacet = NewQueryFacet(*cfg.QueryFacet)
	}
	if cfg.DidYouMean != nil {
		m.DidYouMean = NewDidYouMean(*cfg.DidYouMean, m.Common)
	}
	if cfg.Highlighting != nil {
		m.Highlighting = NewHighlighting(*cfg.Highlighting)
	}
	return m
}

func (m *Main) controllers() []Controller {
	var list []Controller
	if m.Common != nil {
		list = append(list, m.Common)
	}
	if m.Sorting != nil {
		list = append(list, m.Sorting)
	}
	if m.Pagination != nil {
		list = append(list, m.Pagination)
	}
	if m.FieldFacets != nil {
		list = append(list, m.FieldFacets)
	}
	if m.QueryFacet != nil {
		list = append(list, m.QueryFacet)
	}
	if m.DidYouMean != nil {
		list = append(list, m.DidYouMean)
	}
	if m.Highlighting != nil {
		list = append(list, m.Highlighting)
	}
	return list
}

func (m *Main) AddQueryParts(q *search.Query) {
	for _, c := range m.controllers() {
		c.AddQueryParts(q)
	}
}

func (m *Main) AddParametersForCurrentState(params map[string][]string) {
	for _, c := range m.controllers() {
		c.AddParametersForCurrentState(params)
	}
}

// UpdateFromRequestParameters updates all controllers. The request counts as reloaded when it
// carries the reloaded marker and its query equals the last query shown.
func (m *Main) UpdateFromRequestParameters(params map[string][]string) {
	cfg := m.Common.Config()
	isReloaded := false
	if _, ok := params[cfg.ReloadedParam]; ok {
		isReloaded = true
		if last, ok := params[cfg.LastQueryParam]; ok && first(last) != first(params[cfg.QueryParam]) {
			isReloaded = false
		}
	}
	for _, c := range m.controllers() {
		c.UpdateFromRequestParameters(params, isReloaded)
	}
}

// Query builds the engine query for the current state
func (m *Main) Query() search.Query {
	var q search.Query
	m.AddQueryParts(&q)
	return q
}

func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
