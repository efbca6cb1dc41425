package controller

import (
	"fmt"

	"gopkg.in/yaml.v2"
)

const (
	defaultQueryParam     = "q"
	defaultReloadedParam  = "reloaded"
	defaultLastQueryParam = "lastquery"
	defaultSortParam      = "sort"
	defaultPageParam      = "page"
	defaultQueryFacetParm = "qfacet"
	defaultPageSize       = 10
	defaultPageNavLength  = 5
	defaultFacetLimit     = 10
	defaultSpellCount     = 5
	fieldFacetParamPrefix = "facet_"
	queryPlaceholder      = "%(query)"
)

// Config holds the search form configuration. Sub-controllers are only created for the parts that
// are present, so leaving out e.g. DidYouMean disables spelling suggestions.
type Config struct {
	Common       CommonConfig       `yaml:"common"`
	Sorting      *SortingConfig     `yaml:"sorting"`
	Pagination   *PaginationConfig  `yaml:"pagination"`
	FieldFacets  []FieldFacetConfig `yaml:"fieldfacets"`
	QueryFacet   *QueryFacetConfig  `yaml:"queryfacet"`
	DidYouMean   *DidYouMeanConfig  `yaml:"didyoumean"`
	Highlighting *HighlightConfig   `yaml:"highlighting"`
}

type CommonConfig struct {
	QueryParam     string `yaml:"queryparam"`
	ReloadedParam  string `yaml:"reloadedparam"`
	LastQueryParam string `yaml:"lastqueryparam"`
	// QueryModifier is applied to the user's query, "%(query)" being replaced by it
	QueryModifier        string            `yaml:"querymodifier"`
	SearchForEmptyQuery  bool              `yaml:"searchforemptyquery"`
	AdditionalParameters map[string]string `yaml:"additionalparameters"`
}

type SortingConfig struct {
	Param   string       `yaml:"param"`
	Options []SortOption `yaml:"options"`
}

// SortOption is a selectable sort order. Sort is a comma separated list of engine sort fields,
// "-" prefixed for descending order.
type SortOption struct {
	Label      string `yaml:"label"`
	ParamValue string `yaml:"paramvalue"`
	Sort       string `yaml:"sort"`
}

type PaginationConfig struct {
	PageParam     string `yaml:"pageparam"`
	PageSize      int    `yaml:"pagesize"`
	PageNavLength int    `yaml:"pagenavlength"`
}

type FieldFacetConfig struct {
	Field    string `yaml:"field"`
	Label    string `yaml:"label"`
	Param    string `yaml:"param"`
	Limit    int    `yaml:"limit"`
	MinCount int64  `yaml:"mincount"`
}

type QueryFacetConfig struct {
	Label string           `yaml:"label"`
	Param string           `yaml:"param"`
	Items []QueryFacetItem `yaml:"items"`
}

type QueryFacetItem struct {
	Query string `yaml:"query"`
	Label string `yaml:"label"`
}

type DidYouMeanConfig struct {
	Collate bool `yaml:"collate"`
	Count   int  `yaml:"count"`
}

type HighlightConfig struct {
	Fields []string `yaml:"fields"`
}

// DefaultConfig returns the configuration used when no search form configuration is provided
func DefaultConfig() Config {
	cfg := Config{
		Common: CommonConfig{SearchForEmptyQuery: true},
		Sorting: &SortingConfig{
			Options: []SortOption{
				{Label: "Relevance", ParamValue: "relevance", Sort: "-_score"},
				{Label: "Newest", ParamValue: "newest", Sort: "-DateLastModified,-_score"},
				{Label: "Title", ParamValue: "title", Sort: "Title"},
			},
		},
		Pagination: &PaginationConfig{},
		FieldFacets: []FieldFacetConfig{
			{Field: "Type", Label: "Type"},
			{Field: "Category", Label: "Category"},
			{Field: "Tags", Label: "Tags"},
		},
		DidYouMean:   &DidYouMeanConfig{Collate: true},
		Highlighting: &HighlightConfig{Fields: []string{"Title", "Content"}},
	}
	cfg.setDefaults()
	return cfg
}

// ParseConfig reads a YAML search form configuration
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("error parsing search form configuration: %w", err)
	}
	for i, ff := range cfg.FieldFacets {
		if ff.Field == "" {
			return Config{}, fmt.Errorf("field facet %d has no field", i)
		}
	}
	cfg.setDefaults()
	return cfg, nil
}

func (c *Config) setDefaults() {
	if c.Common.QueryParam == "" {
		c.Common.QueryParam = defaultQueryParam
	}
	if c.Common.ReloadedParam == "" {
		c.Common.ReloadedParam = defaultReloadedParam
	}
	if c.Common.LastQueryParam == "" {
		c.Common.LastQueryParam = defaultLastQueryParam
	}
	if c.Sorting != nil && c.Sorting.Param == "" {
		c.Sorting.Param = defaultSortParam
	}
	if c.Pagination != nil {
		if c.Pagination.PageParam == "" {
			c.Pagination.PageParam = defaultPageParam
		}
		if c.Pagination.PageSize < 1 {
			c.Pagination.PageSize = defaultPageSize
		}
		if c.Pagination.PageNavLength < 1 {
			c.Pagination.PageNavLength = defaultPageNavLength
		}
	}
	for i := range c.FieldFacets {
		if c.FieldFacets[i].Param == "" {
			c.FieldFacets[i].Param = fieldFacetParamPrefix + c.FieldFacets[i].Field
		}
		if c.FieldFacets[i].Label == "" {
			c.FieldFacets[i].Label = c.FieldFacets[i].Field
		}
		if c.FieldFacets[i].Limit == 0 {
			c.FieldFacets[i].Limit = defaultFacetLimit
		}
	}
	if c.QueryFacet != nil && c.QueryFacet.Param == "" {
		c.QueryFacet.Param = defaultQueryFacetParm
	}
	if c.QueryFacet != nil && c.QueryFacet.Label == "" {
		c.QueryFacet.Label = c.QueryFacet.Param
	}
	if c.DidYouMean != nil && c.DidYouMean.Count < 1 {
		c.DidYouMean.Count = defaultSpellCount
	}
}
