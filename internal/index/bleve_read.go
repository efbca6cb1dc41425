package index

import (
	"context"
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/search/highlight/format/html"
	"github.com/blevesearch/bleve/v2/search/query"
	"github.com/svera/sitesearch/internal/search"
	"golang.org/x/exp/slices"
)

var fieldPrefixes = []string{"Title:", "Description:", "Content:", "Type:", "Category:", "Tags:", "Locale:", "Path:"}

// Search runs q against the index and returns the snapshot of its results: hits, field facets,
// facet query counts, highlighting and spelling suggestions
func (b *BleveIndexer) Search(ctx context.Context, q search.Query) (*search.Snapshot, error) {
	rows := q.Rows
	if rows < 1 {
		rows = defaultRows
	}
	start := q.Start
	if start < 0 {
		start = 0
	}
	base := keywordsQuery(q.Keywords)

	req := bleve.NewSearchRequestOptions(b.filtered(base, q.Filters, nil), rows, start, false)
	req.Fields = []string{"*"}
	if len(q.Sort) > 0 {
		req.SortBy(q.Sort)
	}
	if q.Highlight {
		req.Highlight = bleve.NewHighlightWithStyle(html.Name)
		req.Highlight.Fields = q.HighlightFields
	}

	// facets excluding some filter need their own request
	var excluding []search.FieldFacetRequest
	for _, ff := range q.FieldFacets {
		if excludesAny(ff.ExcludeTags, q.Filters) {
			excluding = append(excluding, ff)
			continue
		}
		req.AddFacet(ff.Field, bleve.NewFacetRequest(ff.Field, facetSize(ff)))
	}

	res, err := b.idx.SearchInContext(ctx, req)
	if err != nil {
		return nil, err
	}

	snapshot := &search.Snapshot{
		Documents:    make([]search.Document, len(res.Hits)),
		Start:        search.Some(int64(start)),
		End:          start + len(res.Hits),
		NumFound:     int64(res.Total),
		FacetQuery:   map[string]int{},
		Highlighting: map[string]map[string][]string{},
	}
	if len(res.Hits) > 0 {
		snapshot.MaxScore = search.Some(res.MaxScore)
	}
	for i, hit := range res.Hits {
		snapshot.Documents[i] = search.Document{
			ID:     hit.ID,
			Score:  hit.Score,
			Fields: hit.Fields,
		}
		if len(hit.Fragments) > 0 {
			snapshot.Highlighting[hit.ID] = map[string][]string(hit.Fragments)
		}
	}

	facets := make(map[string]search.FacetField, len(q.FieldFacets))
	for name, fr := range res.Facets {
		facets[name] = facetField(name, fr)
	}
	for _, ff := range excluding {
		facet, err := b.excludedFacet(ctx, base, q.Filters, ff)
		if err != nil {
			return nil, err
		}
		facets[ff.Field] = facet
	}
	for _, ff := range q.FieldFacets {
		facet := facets[ff.Field]
		facet.Name = ff.Field
		facet.Values = withMinCount(facet.Values, ff.MinCount)
		snapshot.FacetFields = append(snapshot.FacetFields, facet)
	}

	for _, fq := range q.FacetQueries {
		count, err := b.facetQueryCount(ctx, base, q.Filters, fq)
		if err != nil {
			return nil, err
		}
		snapshot.FacetQuery[fq] = count
	}

	if q.SpellCheck && strings.TrimSpace(q.Keywords) != search.MatchAll {
		if snapshot.SpellCheck, err = b.checker.Check(q.Keywords, q.SpellCheckCount); err != nil {
			return nil, err
		}
	}

	return snapshot, nil
}

func (b *BleveIndexer) excludedFacet(ctx context.Context, base query.Query, filters []search.Filter, ff search.FieldFacetRequest) (search.FacetField, error) {
	req := bleve.NewSearchRequestOptions(b.filtered(base, filters, ff.ExcludeTags), 0, 0, false)
	req.AddFacet(ff.Field, bleve.NewFacetRequest(ff.Field, facetSize(ff)))
	res, err := b.idx.SearchInContext(ctx, req)
	if err != nil {
		return search.FacetField{}, err
	}
	return facetField(ff.Field, res.Facets[ff.Field]), nil
}

// facetQueryCount counts the documents matching the base query, its filters and the facet query.
// Filters tagged with a tag the facet query excludes through its "{!ex=...}" prefix are ignored.
func (b *BleveIndexer) facetQueryCount(ctx context.Context, base query.Query, filters []search.Filter, fq string) (int, error) {
	params, rest := search.ParseLocalParams(fq)
	facetQuery := b.filtered(base, filters, params.Excluded())
	if strings.TrimSpace(rest) != "" {
		facetQuery = bleve.NewConjunctionQuery(facetQuery, bleve.NewQueryStringQuery(rest))
	}
	req := bleve.NewSearchRequestOptions(facetQuery, 0, 0, false)
	res, err := b.idx.SearchInContext(ctx, req)
	if err != nil {
		return 0, err
	}
	return int(res.Total), nil
}

// filtered combines the base query with all filters not tagged with one of the excluded tags
func (b *BleveIndexer) filtered(base query.Query, filters []search.Filter, excluded []string) query.Query {
	queries := []query.Query{base}
	for _, f := range filters {
		if f.Tag != "" && slices.Contains(excluded, f.Tag) {
			continue
		}
		queries = append(queries, filterQuery(f))
	}
	if len(queries) == 1 {
		return base
	}
	return bleve.NewConjunctionQuery(queries...)
}

func keywordsQuery(keywords string) query.Query {
	keywords = strings.TrimSpace(keywords)
	if keywords == "" || keywords == search.MatchAll {
		return bleve.NewMatchAllQuery()
	}

	for _, prefix := range fieldPrefixes {
		if strings.HasPrefix(keywords, prefix) {
			return bleve.NewQueryStringQuery(keywords)
		}
	}

	splitted := strings.Fields(keywords)
	fieldQueries := make([]query.Query, 0, len(TextFields))
	for _, field := range TextFields {
		var termQueries []query.Query
		for _, keyword := range splitted {
			q := bleve.NewMatchQuery(keyword)
			q.SetField(field)
			termQueries = append(termQueries, q)
		}
		compound := bleve.NewConjunctionQuery(termQueries...)
		if field == "Title" {
			compound.SetBoost(10)
		}
		fieldQueries = append(fieldQueries, compound)
	}
	return bleve.NewDisjunctionQuery(fieldQueries...)
}

func filterQuery(f search.Filter) query.Query {
	if f.Query != "" {
		return bleve.NewQueryStringQuery(f.Query)
	}
	values := make([]query.Query, len(f.Values))
	for i, v := range f.Values {
		q := bleve.NewTermQuery(v)
		q.SetField(f.Field)
		values[i] = q
	}
	return bleve.NewDisjunctionQuery(values...)
}

func excludesAny(tags []string, filters []search.Filter) bool {
	for _, f := range filters {
		if f.Tag != "" && slices.Contains(tags, f.Tag) {
			return true
		}
	}
	return false
}
