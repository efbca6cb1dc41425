package controller_test

import (
	"reflect"
	"testing"

	"github.com/svera/sitesearch/internal/search"
	"github.com/svera/sitesearch/internal/search/controller"
)

func TestQuery(t *testing.T) {
	var cases = []struct {
		name     string
		params   map[string][]string
		expected search.Query
	}{
		{
			"Empty query searches for everything",
			map[string][]string{},
			search.Query{
				Keywords: search.MatchAll,
				Rows:     10,
				Sort:     []string{"-_score"},
			},
		},
		{
			"New query ignores page and facets",
			map[string][]string{
				"q":          {"release"},
				"lastquery":  {"install"},
				"reloaded":   {"true"},
				"page":       {"3"},
				"facet_Type": {"html"},
				"sort":       {"newest"},
			},
			search.Query{
				Keywords: "release",
				Rows:     10,
				Sort:     []string{"-DateLastModified", "-_score"},
			},
		},
		{
			"Reloaded query keeps page and facets",
			map[string][]string{
				"q":          {"release"},
				"lastquery":  {"release"},
				"reloaded":   {"true"},
				"page":       {"3"},
				"facet_Type": {"html", "text", "html"},
			},
			search.Query{
				Keywords: "release",
				Start:    20,
				Rows:     10,
				Sort:     []string{"-_score"},
				Filters: []search.Filter{
					{Tag: "Type", Field: "Type", Values: []string{"html", "text"}},
				},
			},
		},
	}

	for _, tcase := range cases {
		t.Run(tcase.name, func(t *testing.T) {
			cfg := controller.DefaultConfig()
			cfg.FieldFacets = cfg.FieldFacets[:1]
			cfg.DidYouMean = nil
			cfg.Highlighting = nil
			ctrl := controller.NewMain(cfg)
			ctrl.UpdateFromRequestParameters(tcase.params)

			q := ctrl.Query()
			q.FieldFacets = nil
			if !reflect.DeepEqual(q, tcase.expected) {
				t.Errorf("Wrong query, expected %#v, got %#v", tcase.expected, q)
			}
		})
	}
}

func TestFieldFacetRequests(t *testing.T) {
	ctrl := controller.NewMain(controller.DefaultConfig())
	ctrl.UpdateFromRequestParameters(map[string][]string{})

	expected := []search.FieldFacetRequest{
		{Field: "Type", Limit: 10, ExcludeTags: []string{"Type"}},
		{Field: "Category", Limit: 10, ExcludeTags: []string{"Category"}},
		{Field: "Tags", Limit: 10, ExcludeTags: []string{"Tags"}},
	}
	if q := ctrl.Query(); !reflect.DeepEqual(q.FieldFacets, expected) {
		t.Errorf("Wrong facet requests, expected %v, got %v", expected, q.FieldFacets)
	}
	if !reflect.DeepEqual(ctrl.FieldFacets.Fields(), []string{"Type", "Category", "Tags"}) {
		t.Errorf("Wrong fields order: %v", ctrl.FieldFacets.Fields())
	}
}

func TestQueryFacet(t *testing.T) {
	cfg := controller.DefaultConfig()
	cfg.QueryFacet = &controller.QueryFacetConfig{
		Label: "period",
		Param: "qfacet",
		Items: []controller.QueryFacetItem{
			{Query: "Category:news", Label: "News"},
			{Query: "Category:docs", Label: "Docs"},
		},
	}
	ctrl := controller.NewMain(cfg)
	ctrl.UpdateFromRequestParameters(map[string][]string{
		"q":         {"cms"},
		"lastquery": {"cms"},
		"reloaded":  {"true"},
		"qfacet":    {"Category:news", "Category:unknown"},
	})
	q := ctrl.Query()

	expectedQueries := []string{"{!ex=period}Category:news", "{!ex=period}Category:docs"}
	if !reflect.DeepEqual(q.FacetQueries, expectedQueries) {
		t.Errorf("Wrong facet queries, expected %v, got %v", expectedQueries, q.FacetQueries)
	}
	expectedFilters := []search.Filter{{Tag: "period", Query: "Category:news"}}
	if !reflect.DeepEqual(q.Filters, expectedFilters) {
		t.Errorf("Wrong filters, expected %v, got %v", expectedFilters, q.Filters)
	}
	if !ctrl.QueryFacet.IsChecked("Category:news") || ctrl.QueryFacet.IsChecked("Category:unknown") {
		t.Errorf("Only configured items can be checked, got %v", ctrl.QueryFacet.State().CheckedEntries)
	}
}

func TestCommon(t *testing.T) {
	var cases = []struct {
		name             string
		config           controller.CommonConfig
		query            string
		expectedKeywords string
	}{
		{"Query modifier wraps the query", controller.CommonConfig{QueryModifier: "Title:%(query)"}, "release", "Title:release"},
		{"Empty query without search for empty query", controller.CommonConfig{}, "  ", ""},
		{"Empty query with search for empty query", controller.CommonConfig{SearchForEmptyQuery: true}, "", search.MatchAll},
	}

	for _, tcase := range cases {
		t.Run(tcase.name, func(t *testing.T) {
			cfg := controller.Config{Common: tcase.config}
			ctrl := controller.NewMain(cfg)
			ctrl.UpdateFromRequestParameters(map[string][]string{"q": {tcase.query}})
			if q := ctrl.Query(); q.Keywords != tcase.expectedKeywords {
				t.Errorf("Wrong keywords, expected '%s', got '%s'", tcase.expectedKeywords, q.Keywords)
			}
		})
	}
}

func TestDidYouMean(t *testing.T) {
	ctrl := controller.NewMain(controller.DefaultConfig())
	ctrl.UpdateFromRequestParameters(map[string][]string{"q": {"relese"}})

	if ctrl.DidYouMean.State().Query() != "relese" {
		t.Errorf("Expected did you mean query 'relese', got '%s'", ctrl.DidYouMean.State().Query())
	}
	q := ctrl.Query()
	if !q.SpellCheck || !q.Collate || q.SpellCheckCount != 5 {
		t.Errorf("Spell checking not requested: %#v", q)
	}
}

func TestParametersForCurrentState(t *testing.T) {
	ctrl := controller.NewMain(controller.DefaultConfig())
	ctrl.UpdateFromRequestParameters(map[string][]string{
		"q":              {"release"},
		"lastquery":      {"release"},
		"reloaded":       {"true"},
		"page":           {"2"},
		"facet_Category": {"news"},
	})

	params := map[string][]string{}
	ctrl.AddParametersForCurrentState(params)
	expected := map[string][]string{
		"q":              {"release"},
		"lastquery":      {"release"},
		"reloaded":       {"true"},
		"page":           {"2"},
		"facet_Category": {"news"},
	}
	if !reflect.DeepEqual(params, expected) {
		t.Errorf("Wrong parameters, expected %v, got %v", expected, params)
	}
}

func TestParseConfig(t *testing.T) {
	data := []byte(`
common:
  queryparam: query
  searchforemptyquery: true
pagination:
  pagesize: 20
fieldfacets:
  - field: Category
    mincount: 2
didyoumean:
  collate: true
`)
	cfg, err := controller.ParseConfig(data)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Common.QueryParam != "query" || cfg.Common.ReloadedParam != "reloaded" {
		t.Errorf("Wrong common config: %#v", cfg.Common)
	}
	expectedPagination := controller.PaginationConfig{PageParam: "page", PageSize: 20, PageNavLength: 5}
	if !reflect.DeepEqual(*cfg.Pagination, expectedPagination) {
		t.Errorf("Wrong pagination, expected %v, got %v", expectedPagination, *cfg.Pagination)
	}
	expectedFacets := []controller.FieldFacetConfig{{Field: "Category", Label: "Category", Param: "facet_Category", Limit: 10, MinCount: 2}}
	if !reflect.DeepEqual(cfg.FieldFacets, expectedFacets) {
		t.Errorf("Wrong facets, expected %v, got %v", expectedFacets, cfg.FieldFacets)
	}
	if cfg.Sorting != nil || cfg.QueryFacet != nil || cfg.Highlighting != nil {
		t.Errorf("Expected parts not present in the configuration to be disabled")
	}
	if cfg.DidYouMean.Count != 5 {
		t.Errorf("Expected default spell check count, got %d", cfg.DidYouMean.Count)
	}

	if _, err := controller.ParseConfig([]byte("fieldfacets:\n  - label: Nothing\n")); err == nil {
		t.Errorf("Expected error for facet without field")
	}
}
