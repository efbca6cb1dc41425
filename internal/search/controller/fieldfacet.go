package controller

import (
	"github.com/svera/sitesearch/internal/search"
	"golang.org/x/exp/slices"
)

type FieldFacetState struct {
	CheckedEntries []string
}

// FieldFacetController handles the facet of a single field. Checked entries become a filter
// tagged with the field name, which the facet itself excludes so all its values stay selectable.
type FieldFacetController struct {
	config FieldFacetConfig
	state  FieldFacetState
}

func NewFieldFacet(cfg FieldFacetConfig) *FieldFacetController {
	return &FieldFacetController{config: cfg}
}

func (f *FieldFacetController) Config() FieldFacetConfig {
	return f.config
}

func (f *FieldFacetController) State() *FieldFacetState {
	return &f.state
}

func (f *FieldFacetController) IsChecked(value string) bool {
	return slices.Contains(f.state.CheckedEntries, value)
}

func (f *FieldFacetController) AddQueryParts(q *search.Query) {
	q.FieldFacets = append(q.FieldFacets, search.FieldFacetRequest{
		Field:       f.config.Field,
		Limit:       f.config.Limit,
		MinCount:    f.config.MinCount,
		ExcludeTags: []string{f.config.Field},
	})
	if len(f.state.CheckedEntries) == 0 {
		return
	}
	q.AddFilter(search.Filter{
		Tag:    f.config.Field,
		Field:  f.config.Field,
		Values: slices.Clone(f.state.CheckedEntries),
	})
}

func (f *FieldFacetController) AddParametersForCurrentState(params map[string][]string) {
	if len(f.state.CheckedEntries) > 0 {
		params[f.config.Param] = slices.Clone(f.state.CheckedEntries)
	}
}

func (f *FieldFacetController) UpdateFromRequestParameters(params map[string][]string, isReloaded bool) {
	f.state.CheckedEntries = nil
	if !isReloaded {
		return
	}
	for _, value := range params[f.config.Param] {
		if value != "" && !slices.Contains(f.state.CheckedEntries, value) {
			f.state.CheckedEntries = append(f.state.CheckedEntries, value)
		}
	}
}

// FieldFacetsController groups the controllers of all field facets
type FieldFacetsController struct {
	controllers map[string]FieldFacet
	fields      []string
}

func NewFieldFacets(cfgs []FieldFacetConfig) *FieldFacetsController {
	f := &FieldFacetsController{
		controllers: make(map[string]FieldFacet, len(cfgs)),
		fields:      make([]string, 0, len(cfgs)),
	}
	for _, cfg := range cfgs {
		if _, ok := f.controllers[cfg.Field]; ok {
			continue
		}
		f.controllers[cfg.Field] = NewFieldFacet(cfg)
		f.fields = append(f.fields, cfg.Field)
	}
	return f
}

func (f *FieldFacetsController) FieldFacetController() map[string]FieldFacet {
	return f.controllers
}

func (f *FieldFacetsController) Fields() []string {
	return f.fields
}

func (f *FieldFacetsController) AddQueryParts(q *search.Query) {
	for _, field := range f.fields {
		f.controllers[field].AddQueryParts(q)
	}
}

func (f *FieldFacetsController) AddParametersForCurrentState(params map[string][]string) {
	for _, field := range f.fields {
		f.controllers[field].AddParametersForCurrentState(params)
	}
}

func (f *FieldFacetsController) UpdateFromRequestParameters(params map[string][]string, isReloaded bool) {
	for _, field := range f.fields {
		f.controllers[field].UpdateFromRequestParameters(params, isReloaded)
	}
}
