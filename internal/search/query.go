package search

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// MatchAll is the keyword string that matches every document
const MatchAll = "*"

// Query is the complete request sent to the search engine
type Query struct {
	Keywords        string
	Start           int
	Rows            int
	Sort            []string
	FieldFacets     []FieldFacetRequest
	FacetQueries    []string
	Filters         []Filter
	Highlight       bool
	HighlightFields []string
	SpellCheck      bool
	SpellCheckCount int
	Collate         bool
}

// FieldFacetRequest asks the engine for the value counts of a field
type FieldFacetRequest struct {
	Field    string
	Limit    int
	MinCount int64
	// Filters tagged with any of these tags are ignored when counting this facet
	ExcludeTags []string
}

// Filter restricts the documents a query matches. If Query is set it is parsed with the engine's
// query string syntax, otherwise the document must hold one of Values in Field.
type Filter struct {
	Tag    string
	Field  string
	Values []string
	Query  string
}

// String renders the filter the same way it is shown in the query parameters
func (f Filter) String() string {
	var b strings.Builder
	if f.Tag != "" {
		fmt.Fprintf(&b, "{!tag=%s}", f.Tag)
	}
	if f.Query != "" {
		b.WriteString(f.Query)
		return b.String()
	}
	quoted := make([]string, len(f.Values))
	for i, v := range f.Values {
		quoted[i] = strconv.Quote(v)
	}
	fmt.Fprintf(&b, "%s:(%s)", f.Field, strings.Join(quoted, " OR "))
	return b.String()
}

// AddFilter appends a filter to the query
func (q *Query) AddFilter(f Filter) {
	q.Filters = append(q.Filters, f)
}

// Params renders the query as request parameters, for diagnostics and display
func (q Query) Params() url.Values {
	params := url.Values{}
	params.Set("q", q.Keywords)
	params.Set("start", strconv.Itoa(q.Start))
	params.Set("rows", strconv.Itoa(q.Rows))
	if len(q.Sort) > 0 {
		params.Set("sort", strings.Join(q.Sort, ","))
	}
	for _, ff := range q.FieldFacets {
		field := ff.Field
		if len(ff.ExcludeTags) > 0 {
			field = fmt.Sprintf("{!ex=%s}%s", strings.Join(ff.ExcludeTags, ","), ff.Field)
		}
		params.Add("facet.field", field)
	}
	for _, fq := range q.FacetQueries {
		params.Add("facet.query", fq)
	}
	for _, f := range q.Filters {
		params.Add("fq", f.String())
	}
	if q.Highlight {
		params.Set("hl", "true")
		if len(q.HighlightFields) > 0 {
			params.Set("hl.fl", strings.Join(q.HighlightFields, ","))
		}
	}
	if q.SpellCheck {
		params.Set("spellcheck", "true")
		params.Set("spellcheck.count", strconv.Itoa(q.SpellCheckCount))
		params.Set("spellcheck.collate", strconv.FormatBool(q.Collate))
	}
	return params
}

// String returns the encoded parameters of the query
func (q Query) String() string {
	return q.Params().Encode()
}
