// Package result adapts the snapshot of a search to what result pages need to render it:
// pagination, facets with their checked entries, spelling suggestions and highlighting.
package result

import (
	"unicode/utf8"

	"github.com/svera/sitesearch/internal/search"
	"github.com/svera/sitesearch/internal/search/controller"
)

// Wrapper exposes a search snapshot along with the state of the form that produced it.
// The facet maps are filled lazily and are not safe for concurrent use: a wrapper serves
// a single request.
type Wrapper struct {
	controller *controller.Main
	snapshot   *search.Snapshot
	query      search.Query
	resolver   ContentResolver
	err        error

	results    []*ResourceBean
	start      search.Optional[int64]
	end        int
	numFound   int64
	maxScore   search.Optional[float64]
	facetQuery map[string]int

	fieldFacets    map[string]search.FacetField
	missingEntries map[string][]string
}

// NewWrapper creates the wrapper of a search. snapshot is nil when the search failed, in which
// case err may tell why.
func NewWrapper(ctrl *controller.Main, snapshot *search.Snapshot, query search.Query, resolver ContentResolver, err error) *Wrapper {
	w := &Wrapper{
		controller:     ctrl,
		snapshot:       snapshot,
		query:          query,
		resolver:       resolver,
		err:            err,
		facetQuery:     map[string]int{},
		fieldFacets:    map[string]search.FacetField{},
		missingEntries: map[string][]string{},
	}
	if snapshot == nil {
		return w
	}

	w.results = make([]*ResourceBean, len(snapshot.Documents))
	for i, doc := range snapshot.Documents {
		w.results[i] = NewResourceBean(doc, snapshot.Highlighting[doc.ID], resolver)
	}
	start := int64(1)
	if s, ok := snapshot.Start.Get(); ok {
		start = s + 1
	}
	w.start = search.Some(start)
	w.end = snapshot.End
	w.numFound = snapshot.NumFound
	w.maxScore = snapshot.MaxScore
	for key, count := range snapshot.FacetQuery {
		w.facetQuery[search.RemoveLocalParamPrefix(key)] = count
	}
	return w
}

// Start returns the 1-based position of the first result in the page, absent if there is no result snapshot
func (w *Wrapper) Start() search.Optional[int64] {
	return w.start
}

func (w *Wrapper) End() int {
	return w.end
}

func (w *Wrapper) NumFound() int64 {
	return w.numFound
}

func (w *Wrapper) MaxScore() search.Optional[float64] {
	return w.maxScore
}

func (w *Wrapper) SearchResults() []*ResourceBean {
	return w.results
}

// FacetQuery returns the counts of the query facets, keyed by query without its local params
func (w *Wrapper) FacetQuery() map[string]int {
	return w.facetQuery
}

func (w *Wrapper) Highlighting() map[string]map[string][]string {
	if w.snapshot == nil {
		return nil
	}
	return w.snapshot.Highlighting
}

// FieldFacets returns every field facet of the snapshot, in request order
func (w *Wrapper) FieldFacets() []search.FacetField {
	if w.snapshot == nil {
		return nil
	}
	return w.snapshot.FacetFields
}

// FieldFacet returns the facet of the passed field. An empty facet is returned if the
// snapshot holds none for it.
func (w *Wrapper) FieldFacet(field string) search.FacetField {
	if facet, ok := w.fieldFacets[field]; ok {
		return facet
	}
	facet, ok := w.snapshot.FacetField(field)
	if !ok {
		facet = search.FacetField{Name: field}
	}
	w.fieldFacets[field] = facet
	return facet
}

// MissingSelectedFieldFacetEntries returns the checked entries of a field facet which are not
// among the values returned for it, in the order they were checked
func (w *Wrapper) MissingSelectedFieldFacetEntries(field string) []string {
	if missing, ok := w.missingEntries[field]; ok {
		return missing
	}
	missing := []string{}
	if ctrl := w.fieldFacetController(field); ctrl != nil {
		returned := map[string]struct{}{}
		for _, name := range w.FieldFacet(field).ValueNames() {
			returned[name] = struct{}{}
		}
		for _, entry := range ctrl.State().CheckedEntries {
			if _, ok := returned[entry]; !ok {
				missing = append(missing, entry)
			}
		}
	}
	w.missingEntries[field] = missing
	return missing
}

func (w *Wrapper) fieldFacetController(field string) controller.FieldFacet {
	if w.controller == nil || w.controller.FieldFacets == nil {
		return nil
	}
	return w.controller.FieldFacets.FieldFacetController()[field]
}

// DidYouMeanSuggestion picks, among the spelling suggestions, the one whose token length is the
// closest to the length of the query, both counted in characters. The first one wins on ties.
func (w *Wrapper) DidYouMeanSuggestion() (search.Suggestion, bool) {
	if w.controller == nil || w.controller.DidYouMean == nil || w.snapshot == nil || w.snapshot.SpellCheck == nil {
		return search.Suggestion{}, false
	}
	queryLength := utf8.RuneCountInString(w.controller.DidYouMean.State().Query())
	minDistance := queryLength + 1
	var (
		chosen search.Suggestion
		found  bool
	)
	for _, suggestion := range w.snapshot.SpellCheck.Suggestions {
		distance := abs(queryLength - utf8.RuneCountInString(suggestion.Token))
		if distance < minDistance {
			chosen = suggestion
			found = true
			minDistance = distance
		}
	}
	return chosen, found
}

// DidYouMeanCollated returns the query with all misspelled tokens corrected, if collation is enabled
func (w *Wrapper) DidYouMeanCollated() (string, bool) {
	if w.controller == nil || w.controller.DidYouMean == nil || !w.controller.DidYouMean.Config().Collate {
		return "", false
	}
	if w.snapshot == nil || w.snapshot.SpellCheck == nil {
		return "", false
	}
	return w.snapshot.SpellCheck.CollatedResult, true
}

// NumPages returns the number of result pages, which is never less than 1
func (w *Wrapper) NumPages() int {
	if w.snapshot == nil {
		return 1
	}
	pageSize := w.pageSize()
	if w.numFound <= 0 {
		return 1
	}
	return int((w.numFound-1)/int64(pageSize)) + 1
}

// PageNavFirst returns the first page of the navigation strip around the current page
func (w *Wrapper) PageNavFirst() int {
	first := w.currentPage() - (w.pageNavLength()-1)/2
	if first < 1 {
		return 1
	}
	return first
}

// PageNavLast returns the last page of the navigation strip around the current page
func (w *Wrapper) PageNavLast() int {
	last := w.currentPage() + w.pageNavLength()/2
	if numPages := w.NumPages(); last > numPages {
		return numPages
	}
	return last
}

// CurrentPage returns the page being shown
func (w *Wrapper) CurrentPage() int {
	return w.currentPage()
}

func (w *Wrapper) currentPage() int {
	if w.controller == nil || w.controller.Pagination == nil {
		return 1
	}
	return w.controller.Pagination.State().CurrentPage
}

func (w *Wrapper) pageSize() int {
	if w.controller == nil || w.controller.Pagination == nil {
		return int(max(w.numFound, 1))
	}
	return w.controller.Pagination.Config().PageSize
}

func (w *Wrapper) pageNavLength() int {
	if w.controller == nil || w.controller.Pagination == nil {
		return 1
	}
	return w.controller.Pagination.Config().PageNavLength
}

// Err returns the error of a failed search
func (w *Wrapper) Err() error {
	return w.err
}

// FinalQuery returns the query sent to the search engine
func (w *Wrapper) FinalQuery() search.Query {
	return w.query
}

func (w *Wrapper) Controller() *controller.Main {
	return w.controller
}

// StateParameters returns the request parameters that reproduce the current search
func (w *Wrapper) StateParameters() StateParameters {
	params := map[string][]string{}
	if w.controller != nil {
		w.controller.AddParametersForCurrentState(params)
	}
	return NewStateParameters(params, w.controller)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
