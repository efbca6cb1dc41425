package view

import (
	"fmt"
	"html/template"

	searchresult "github.com/svera/sitesearch/internal/search/result"
)

// FacetItem is an entry of a facet along with the link that toggles it
type FacetItem struct {
	Label   string
	Count   int64
	Checked bool
	// Missing entries are checked but were not returned by the engine
	Missing bool
	Link    template.URL
}

type Facet struct {
	Field string
	Label string
	Items []FacetItem
}

type SortOption struct {
	Label   string
	Checked bool
	Link    template.URL
}

// Suggestion is a did-you-mean proposal and the link searching for it
type Suggestion struct {
	Text string
	Link template.URL
}

// SearchPage holds everything the search results template shows beyond the result list
type SearchPage struct {
	Query       string
	Facets      []Facet
	QueryFacets []FacetItem
	SortOptions []SortOption
	DidYouMean  *Suggestion
	Collated    *Suggestion
	Error       string
}

// NewSearchPage builds the view of the search form state and results held by w
func NewSearchPage(w *searchresult.Wrapper) SearchPage {
	state := w.StateParameters()
	ctrl := w.Controller()
	page := SearchPage{}
	if ctrl == nil {
		return page
	}
	page.Query = ctrl.Common.State().Query
	if w.Err() != nil {
		page.Error = w.Err().Error()
	}

	if ctrl.FieldFacets != nil {
		for _, field := range ctrl.FieldFacets.Fields() {
			ffc := ctrl.FieldFacets.FieldFacetController()[field]
			facet := Facet{Field: field, Label: ffc.Config().Label}
			for _, value := range w.FieldFacet(field).Values {
				facet.Items = append(facet.Items, FacetItem{
					Label:   value.Name,
					Count:   value.Count,
					Checked: ffc.IsChecked(value.Name),
					Link:    link(state.WithToggledFacetItem(field, value.Name)),
				})
			}
			for _, missing := range w.MissingSelectedFieldFacetEntries(field) {
				facet.Items = append(facet.Items, FacetItem{
					Label:   missing,
					Checked: true,
					Missing: true,
					Link:    link(state.WithoutCheckedFacetItem(field, missing)),
				})
			}
			if len(facet.Items) > 0 {
				page.Facets = append(page.Facets, facet)
			}
		}
	}

	if ctrl.QueryFacet != nil {
		counts := w.FacetQuery()
		for _, item := range ctrl.QueryFacet.Config().Items {
			page.QueryFacets = append(page.QueryFacets, FacetItem{
				Label:   item.Label,
				Count:   int64(counts[item.Query]),
				Checked: ctrl.QueryFacet.IsChecked(item.Query),
				Link:    link(state.WithToggledQueryFacetItem(item.Query)),
			})
		}
	}

	if ctrl.Sorting != nil {
		checked := ctrl.Sorting.State().CheckedOption
		for i, option := range ctrl.Sorting.Config().Options {
			page.SortOptions = append(page.SortOptions, SortOption{
				Label:   option.Label,
				Checked: option.ParamValue == checked || (checked == "" && i == 0),
				Link:    link(state.WithSortOption(option.ParamValue)),
			})
		}
	}

	if suggestion, ok := w.DidYouMeanSuggestion(); ok {
		page.DidYouMean = &Suggestion{
			Text: suggestion.Suggested,
			Link: link(state.WithQuery(suggestion.Suggested)),
		}
	}
	if collated, ok := w.DidYouMeanCollated(); ok {
		page.Collated = &Suggestion{
			Text: collated,
			Link: link(state.WithQuery(collated)),
		}
	}

	return page
}

func link(params fmt.Stringer) template.URL {
	return template.URL(fmt.Sprintf("?%s", params.String()))
}
