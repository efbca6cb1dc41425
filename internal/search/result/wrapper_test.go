package result_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/svera/sitesearch/internal/cms"
	"github.com/svera/sitesearch/internal/search"
	"github.com/svera/sitesearch/internal/search/controller"
	"github.com/svera/sitesearch/internal/search/result"
)

func newController(params map[string][]string) *controller.Main {
	ctrl := controller.NewMain(controller.DefaultConfig())
	ctrl.UpdateFromRequestParameters(params)
	return ctrl
}

func reloaded(query string, extra map[string][]string) map[string][]string {
	params := map[string][]string{
		"q":         {query},
		"lastquery": {query},
		"reloaded":  {"true"},
	}
	for k, v := range extra {
		params[k] = v
	}
	return params
}

type resolverMock struct {
	calls int
	err   error
}

func (r *resolverMock) ReadResource(ctx context.Context, path string) (cms.Resource, error) {
	r.calls++
	if r.err != nil {
		return cms.Resource{}, r.err
	}
	return cms.Resource{Path: path, Title: "Title of " + path}, nil
}

func TestStart(t *testing.T) {
	var cases = []struct {
		name     string
		snapshot *search.Snapshot
		expected search.Optional[int64]
	}{
		{"No snapshot", nil, search.None[int64]()},
		{"Snapshot without start", &search.Snapshot{}, search.Some[int64](1)},
		{"Snapshot at first result", &search.Snapshot{Start: search.Some[int64](0)}, search.Some[int64](1)},
		{"Snapshot at result 20", &search.Snapshot{Start: search.Some[int64](20)}, search.Some[int64](21)},
	}

	for _, tcase := range cases {
		t.Run(tcase.name, func(t *testing.T) {
			w := result.NewWrapper(newController(nil), tcase.snapshot, search.Query{}, nil, nil)
			if w.Start() != tcase.expected {
				t.Errorf("Wrong start, expected %v, got %v", tcase.expected, w.Start())
			}
		})
	}
}

func TestNilSnapshotDefaults(t *testing.T) {
	searchErr := errors.New("engine down")
	query := search.Query{Keywords: "cms"}
	w := result.NewWrapper(newController(nil), nil, query, nil, searchErr)

	if w.End() != 0 || w.NumFound() != 0 {
		t.Errorf("Expected end and numFound to be 0, got %d and %d", w.End(), w.NumFound())
	}
	if w.MaxScore().IsSet() {
		t.Errorf("Expected no max score")
	}
	if len(w.SearchResults()) != 0 {
		t.Errorf("Expected no results, got %d", len(w.SearchResults()))
	}
	if w.NumPages() != 1 {
		t.Errorf("Expected 1 page, got %d", w.NumPages())
	}
	if !errors.Is(w.Err(), searchErr) {
		t.Errorf("Expected error '%v', got '%v'", searchErr, w.Err())
	}
	if !reflect.DeepEqual(w.FinalQuery(), query) {
		t.Errorf("Wrong final query, expected %v, got %v", query, w.FinalQuery())
	}
	if _, ok := w.DidYouMeanSuggestion(); ok {
		t.Errorf("Expected no suggestion")
	}
	if facet := w.FieldFacet("Type"); len(facet.Values) != 0 {
		t.Errorf("Expected empty facet, got %v", facet)
	}
}

func TestCopiedValues(t *testing.T) {
	snapshot := &search.Snapshot{
		Start:    search.Some[int64](10),
		End:      12,
		NumFound: 12,
		MaxScore: search.Some(1.5),
		Documents: []search.Document{
			{ID: "/a.html", Score: 1.5},
			{ID: "/b.html", Score: 0.7},
		},
	}
	w := result.NewWrapper(newController(nil), snapshot, search.Query{}, nil, nil)

	if w.End() != 12 || w.NumFound() != 12 {
		t.Errorf("Expected end and numFound to be 12, got %d and %d", w.End(), w.NumFound())
	}
	if score, _ := w.MaxScore().Get(); score != 1.5 {
		t.Errorf("Expected max score 1.5, got %f", score)
	}
	ids := []string{}
	for _, bean := range w.SearchResults() {
		ids = append(ids, bean.ID())
	}
	if !reflect.DeepEqual(ids, []string{"/a.html", "/b.html"}) {
		t.Errorf("Wrong results: %v", ids)
	}
}

func TestFacetQueryKeys(t *testing.T) {
	snapshot := &search.Snapshot{
		FacetQuery: map[string]int{
			"{ex=dummy}category":    3,
			"{!ex=qfacet}Type:html": 2,
			"type":                  4,
		},
	}
	w := result.NewWrapper(newController(nil), snapshot, search.Query{}, nil, nil)

	expected := map[string]int{"category": 3, "Type:html": 2, "type": 4}
	if !reflect.DeepEqual(w.FacetQuery(), expected) {
		t.Errorf("Wrong facet query, expected %v, got %v", expected, w.FacetQuery())
	}
}

func TestDidYouMeanSuggestion(t *testing.T) {
	var cases = []struct {
		name        string
		query       string
		suggestions []search.Suggestion
		expected    string
		found       bool
	}{
		{
			"First candidate wins ties",
			"abcd",
			[]search.Suggestion{
				{Token: "abc", Suggested: "first"},
				{Token: "abcde", Suggested: "second"},
				{Token: "abcdf", Suggested: "third"},
			},
			"first",
			true,
		},
		{
			"Closer candidate replaces earlier one",
			"abcd",
			[]search.Suggestion{
				{Token: "ab", Suggested: "first"},
				{Token: "abcf", Suggested: "second"},
			},
			"second",
			true,
		},
		{
			"Lengths are counted in characters",
			"ééé",
			[]search.Suggestion{
				{Token: "abcdef", Suggested: "six letters"},
				{Token: "ab", Suggested: "two letters"},
			},
			"two letters",
			true,
		},
		{
			"Candidates too far from the query length are ignored",
			"ab",
			[]search.Suggestion{{Token: "abcdefgh", Suggested: "long"}},
			"",
			false,
		},
		{
			"No suggestions",
			"abcd",
			nil,
			"",
			false,
		},
	}

	for _, tcase := range cases {
		t.Run(tcase.name, func(t *testing.T) {
			snapshot := &search.Snapshot{SpellCheck: &search.SpellCheck{Suggestions: tcase.suggestions}}
			w := result.NewWrapper(newController(reloaded(tcase.query, nil)), snapshot, search.Query{}, nil, nil)
			suggestion, found := w.DidYouMeanSuggestion()
			if found != tcase.found {
				t.Fatalf("Expected found to be %t, got %t", tcase.found, found)
			}
			if suggestion.Suggested != tcase.expected {
				t.Errorf("Wrong suggestion, expected '%s', got '%s'", tcase.expected, suggestion.Suggested)
			}
		})
	}
}

func TestDidYouMeanWithoutController(t *testing.T) {
	ctrl := newController(reloaded("abcd", nil))
	ctrl.DidYouMean = nil
	snapshot := &search.Snapshot{SpellCheck: &search.SpellCheck{
		CollatedResult: "abc",
		Suggestions:    []search.Suggestion{{Token: "abc", Suggested: "abd"}},
	}}
	w := result.NewWrapper(ctrl, snapshot, search.Query{}, nil, nil)

	if _, ok := w.DidYouMeanSuggestion(); ok {
		t.Errorf("Expected no suggestion without did you mean controller")
	}
	if _, ok := w.DidYouMeanCollated(); ok {
		t.Errorf("Expected no collated result without did you mean controller")
	}
}

func TestDidYouMeanCollated(t *testing.T) {
	var cases = []struct {
		name       string
		collate    bool
		spellCheck *search.SpellCheck
		expected   string
		found      bool
	}{
		{"Collation enabled", true, &search.SpellCheck{CollatedResult: "release notes"}, "release notes", true},
		{"Collation disabled", false, &search.SpellCheck{CollatedResult: "release notes"}, "", false},
		{"No spell check payload", true, nil, "", false},
	}

	for _, tcase := range cases {
		t.Run(tcase.name, func(t *testing.T) {
			cfg := controller.DefaultConfig()
			cfg.DidYouMean.Collate = tcase.collate
			ctrl := controller.NewMain(cfg)
			w := result.NewWrapper(ctrl, &search.Snapshot{SpellCheck: tcase.spellCheck}, search.Query{}, nil, nil)
			collated, found := w.DidYouMeanCollated()
			if found != tcase.found || collated != tcase.expected {
				t.Errorf("Expected ('%s', %t), got ('%s', %t)", tcase.expected, tcase.found, collated, found)
			}
		})
	}
}

func TestMissingSelectedFieldFacetEntries(t *testing.T) {
	ctrl := newController(reloaded("cms", map[string][]string{"facet_Type": {"a", "b", "c"}}))
	snapshot := &search.Snapshot{
		FacetFields: []search.FacetField{
			{Name: "Type", Values: []search.Count{{Name: "a", Count: 2}, {Name: "c", Count: 1}}},
		},
	}
	w := result.NewWrapper(ctrl, snapshot, search.Query{}, nil, nil)

	var cases = []struct {
		name     string
		field    string
		expected []string
	}{
		{"Checked entries not returned are missing", "Type", []string{"b"}},
		{"Field without checked entries", "Category", []string{}},
		{"Field without controller", "Unknown", []string{}},
	}

	for _, tcase := range cases {
		t.Run(tcase.name, func(t *testing.T) {
			if missing := w.MissingSelectedFieldFacetEntries(tcase.field); !reflect.DeepEqual(missing, tcase.expected) {
				t.Errorf("Wrong missing entries, expected %v, got %v", tcase.expected, missing)
			}
		})
	}

	t.Run("Missing entries are computed once", func(t *testing.T) {
		ctrl.FieldFacets.FieldFacetController()["Type"].State().CheckedEntries = []string{"d"}
		if missing := w.MissingSelectedFieldFacetEntries("Type"); !reflect.DeepEqual(missing, []string{"b"}) {
			t.Errorf("Expected cached missing entries [b], got %v", missing)
		}
	})
}

func TestFieldFacet(t *testing.T) {
	facet := search.FacetField{Name: "Type", Values: []search.Count{{Name: "html", Count: 2}}}
	w := result.NewWrapper(newController(nil), &search.Snapshot{FacetFields: []search.FacetField{facet}}, search.Query{}, nil, nil)

	if got := w.FieldFacet("Type"); !reflect.DeepEqual(got, facet) {
		t.Errorf("Wrong facet, expected %v, got %v", facet, got)
	}
	if got := w.FieldFacet("Category"); got.Name != "Category" || len(got.Values) != 0 {
		t.Errorf("Expected empty Category facet, got %v", got)
	}
}

func TestNumPages(t *testing.T) {
	var cases = []struct {
		name     string
		snapshot *search.Snapshot
		expected int
	}{
		{"No snapshot", nil, 1},
		{"No results", &search.Snapshot{NumFound: 0}, 1},
		{"One result", &search.Snapshot{NumFound: 1}, 1},
		{"Exactly one page", &search.Snapshot{NumFound: 10}, 1},
		{"Two full pages", &search.Snapshot{NumFound: 20}, 2},
		{"One result on the third page", &search.Snapshot{NumFound: 21}, 3},
	}

	for _, tcase := range cases {
		t.Run(tcase.name, func(t *testing.T) {
			w := result.NewWrapper(newController(nil), tcase.snapshot, search.Query{}, nil, nil)
			if w.NumPages() != tcase.expected {
				t.Errorf("Wrong number of pages, expected %d, got %d", tcase.expected, w.NumPages())
			}
		})
	}
}

func TestPageNavigation(t *testing.T) {
	var cases = []struct {
		name          string
		page          string
		numFound      int64
		expectedFirst int
		expectedLast  int
	}{
		{"First page", "1", 100, 1, 3},
		{"Second page", "2", 100, 1, 4},
		{"Middle page", "5", 100, 3, 7},
		{"Last page", "10", 100, 8, 10},
		{"Single page", "1", 3, 1, 1},
	}

	for _, tcase := range cases {
		t.Run(tcase.name, func(t *testing.T) {
			ctrl := newController(reloaded("cms", map[string][]string{"page": {tcase.page}}))
			w := result.NewWrapper(ctrl, &search.Snapshot{NumFound: tcase.numFound}, search.Query{}, nil, nil)
			if w.PageNavFirst() != tcase.expectedFirst {
				t.Errorf("Wrong first page, expected %d, got %d", tcase.expectedFirst, w.PageNavFirst())
			}
			if w.PageNavLast() != tcase.expectedLast {
				t.Errorf("Wrong last page, expected %d, got %d", tcase.expectedLast, w.PageNavLast())
			}
		})
	}
}

func TestResourceIsReadOnce(t *testing.T) {
	resolver := &resolverMock{}
	snapshot := &search.Snapshot{Documents: []search.Document{{ID: "/news/a.html"}}}
	w := result.NewWrapper(newController(nil), snapshot, search.Query{}, resolver, nil)
	bean := w.SearchResults()[0]

	for i := 0; i < 2; i++ {
		resource, err := bean.Resource(context.Background())
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if resource.Title != "Title of /news/a.html" {
			t.Errorf("Wrong resource title: %s", resource.Title)
		}
	}
	if resolver.calls != 1 {
		t.Errorf("Expected resource to be read once, got %d reads", resolver.calls)
	}
}

func TestResourceError(t *testing.T) {
	resolver := &resolverMock{err: cms.ErrResourceNotFound}
	bean := result.NewResourceBean(search.Document{ID: "/gone.html"}, nil, resolver)

	if _, err := bean.Resource(context.Background()); !errors.Is(err, cms.ErrResourceNotFound) {
		t.Errorf("Expected not found error, got %v", err)
	}
	bean.Resource(context.Background())
	if resolver.calls != 1 {
		t.Errorf("Expected resource to be read once, got %d reads", resolver.calls)
	}
}

func TestBeanFieldsAndHighlights(t *testing.T) {
	bean := result.NewResourceBean(
		search.Document{ID: "/a.html", Fields: map[string]any{
			"Title": "Release",
			"Tags":  []any{"cms", "search"},
		}},
		map[string][]string{"Content": {"new <mark>release</mark><script>alert(1)</script>"}},
		nil,
	)

	if bean.Field("Title") != "Release" {
		t.Errorf("Wrong title: %s", bean.Field("Title"))
	}
	if bean.Field("Tags") != "cms, search" {
		t.Errorf("Wrong tags: %s", bean.Field("Tags"))
	}
	if bean.Field("Missing") != "" {
		t.Errorf("Expected empty missing field, got %s", bean.Field("Missing"))
	}
	expected := map[string][]string{"Content": {"new <mark>release</mark>"}}
	if !reflect.DeepEqual(bean.Highlights(), expected) {
		t.Errorf("Wrong highlights, expected %v, got %v", expected, bean.Highlights())
	}
}
