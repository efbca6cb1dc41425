package search

// Snapshot is the immutable result of a single search execution, as returned by the engine
type Snapshot struct {
	Documents    []Document
	Start        Optional[int64]
	End          int
	NumFound     int64
	MaxScore     Optional[float64]
	FacetFields  []FacetField
	FacetQuery   map[string]int
	Highlighting map[string]map[string][]string
	SpellCheck   *SpellCheck
}

// Document is a raw hit as returned by the search engine
type Document struct {
	ID     string
	Score  float64
	Fields map[string]any
}

// FacetField holds the value counts of a field facet, in the order returned by the engine
type FacetField struct {
	Name   string
	Values []Count
}

// Count is a facet bucket
type Count struct {
	Name  string
	Count int64
}

// SpellCheck is the did-you-mean payload of a search
type SpellCheck struct {
	CollatedResult string
	Suggestions    []Suggestion
}

// Suggestion pairs a misspelled token of the query with a replacement for it
type Suggestion struct {
	Token     string
	Suggested string
	Distance  int
	Frequency int
}

// FacetField looks up the field facet with the passed name
func (s *Snapshot) FacetField(name string) (FacetField, bool) {
	if s == nil {
		return FacetField{}, false
	}
	for _, f := range s.FacetFields {
		if f.Name == name {
			return f, true
		}
	}
	return FacetField{}, false
}

// ValueNames returns the names of all buckets of the facet
func (f FacetField) ValueNames() []string {
	names := make([]string, len(f.Values))
	for i, v := range f.Values {
		names[i] = v.Name
	}
	return names
}
