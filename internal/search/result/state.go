package result

import (
	"net/url"
	"strconv"

	"github.com/svera/sitesearch/internal/search/controller"
	"golang.org/x/exp/slices"
)

// StateParameters are the request parameters reproducing a search. The With* methods return
// modified copies, so templates can build links from the same value.
type StateParameters struct {
	params     map[string][]string
	controller *controller.Main
}

func NewStateParameters(params map[string][]string, ctrl *controller.Main) StateParameters {
	return StateParameters{params: params, controller: ctrl}
}

// Values returns a copy of the parameters
func (s StateParameters) Values() map[string][]string {
	return s.clone().params
}

func (s StateParameters) Get(param string) []string {
	return slices.Clone(s.params[param])
}

// String encodes the parameters as a query string, sorted by key
func (s StateParameters) String() string {
	return url.Values(s.params).Encode()
}

func (s StateParameters) WithPage(page int) StateParameters {
	if s.controller == nil || s.controller.Pagination == nil {
		return s
	}
	c := s.clone()
	c.params[s.controller.Pagination.Config().PageParam] = []string{strconv.Itoa(page)}
	return c
}

// Page returns the query string of the passed page
func (s StateParameters) Page(page int) string {
	return s.WithPage(page).String()
}

// WithQuery sets a new query. Page and facet selections are reset, as for any new search.
func (s StateParameters) WithQuery(query string) StateParameters {
	c := s.ResetFacets().resetPage()
	if s.controller == nil || s.controller.Common == nil {
		return c
	}
	cfg := s.controller.Common.Config()
	c.params[cfg.QueryParam] = []string{query}
	c.params[cfg.LastQueryParam] = []string{query}
	return c
}

func (s StateParameters) WithSortOption(value string) StateParameters {
	if s.controller == nil || s.controller.Sorting == nil {
		return s
	}
	c := s.resetPage()
	c.params[s.controller.Sorting.Config().Param] = []string{value}
	return c
}

// WithCheckedFacetItem adds value to the checked entries of the field facet
func (s StateParameters) WithCheckedFacetItem(field, value string) StateParameters {
	param, ok := s.fieldFacetParam(field)
	if !ok || slices.Contains(s.params[param], value) {
		return s
	}
	c := s.resetPage()
	c.params[param] = append(c.params[param], value)
	return c
}

// WithoutCheckedFacetItem removes value from the checked entries of the field facet
func (s StateParameters) WithoutCheckedFacetItem(field, value string) StateParameters {
	param, ok := s.fieldFacetParam(field)
	if !ok {
		return s
	}
	c := s.resetPage()
	c.params[param] = without(c.params[param], value)
	if len(c.params[param]) == 0 {
		delete(c.params, param)
	}
	return c
}

// WithToggledFacetItem checks value if it is not checked, and unchecks it otherwise
func (s StateParameters) WithToggledFacetItem(field, value string) StateParameters {
	param, ok := s.fieldFacetParam(field)
	if ok && slices.Contains(s.params[param], value) {
		return s.WithoutCheckedFacetItem(field, value)
	}
	return s.WithCheckedFacetItem(field, value)
}

// WithToggledQueryFacetItem checks or unchecks a query facet item
func (s StateParameters) WithToggledQueryFacetItem(query string) StateParameters {
	if s.controller == nil || s.controller.QueryFacet == nil {
		return s
	}
	param := s.controller.QueryFacet.Config().Param
	c := s.resetPage()
	if slices.Contains(c.params[param], query) {
		c.params[param] = without(c.params[param], query)
		if len(c.params[param]) == 0 {
			delete(c.params, param)
		}
		return c
	}
	c.params[param] = append(c.params[param], query)
	return c
}

// ResetFacets unchecks the entries of all field and query facets
func (s StateParameters) ResetFacets() StateParameters {
	c := s.clone()
	if s.controller == nil {
		return c
	}
	if s.controller.FieldFacets != nil {
		for _, ctrl := range s.controller.FieldFacets.FieldFacetController() {
			delete(c.params, ctrl.Config().Param)
		}
	}
	if s.controller.QueryFacet != nil {
		delete(c.params, s.controller.QueryFacet.Config().Param)
	}
	return c
}

func (s StateParameters) resetPage() StateParameters {
	c := s.clone()
	if s.controller != nil && s.controller.Pagination != nil {
		delete(c.params, s.controller.Pagination.Config().PageParam)
	}
	return c
}

func (s StateParameters) fieldFacetParam(field string) (string, bool) {
	if s.controller == nil || s.controller.FieldFacets == nil {
		return "", false
	}
	ctrl, ok := s.controller.FieldFacets.FieldFacetController()[field]
	if !ok {
		return "", false
	}
	return ctrl.Config().Param, true
}

func (s StateParameters) clone() StateParameters {
	params := make(map[string][]string, len(s.params))
	for k, v := range s.params {
		params[k] = slices.Clone(v)
	}
	return StateParameters{params: params, controller: s.controller}
}

func without(values []string, value string) []string {
	kept := make([]string, 0, len(values))
	for _, v := range values {
		if v != value {
			kept = append(kept, v)
		}
	}
	return kept
}
