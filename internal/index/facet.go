package index

import (
	blevesearch "github.com/blevesearch/bleve/v2/search"
	"github.com/svera/sitesearch/internal/search"
)

func facetSize(ff search.FieldFacetRequest) int {
	if ff.Limit < 1 {
		return defaultRows
	}
	return ff.Limit
}

func facetField(name string, fr *blevesearch.FacetResult) search.FacetField {
	facet := search.FacetField{Name: name}
	if fr == nil || fr.Terms == nil {
		return facet
	}
	for _, term := range fr.Terms.Terms() {
		facet.Values = append(facet.Values, search.Count{Name: term.Term, Count: int64(term.Count)})
	}
	return facet
}

func withMinCount(values []search.Count, minCount int64) []search.Count {
	if minCount <= 0 {
		return values
	}
	kept := values[:0:0]
	for _, v := range values {
		if v.Count >= minCount {
			kept = append(kept, v)
		}
	}
	return kept
}
