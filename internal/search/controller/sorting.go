package controller

import (
	"strings"

	"github.com/svera/sitesearch/internal/search"
)

type SortingState struct {
	CheckedOption string
}

type SortingController struct {
	config SortingConfig
	state  SortingState
}

func NewSorting(cfg SortingConfig) *SortingController {
	return &SortingController{config: cfg}
}

func (s *SortingController) Config() SortingConfig {
	return s.config
}

func (s *SortingController) State() *SortingState {
	return &s.state
}

// Option returns the currently selected sort option, the first configured one by default
func (s *SortingController) Option() (SortOption, bool) {
	for _, o := range s.config.Options {
		if o.ParamValue == s.state.CheckedOption {
			return o, true
		}
	}
	if len(s.config.Options) > 0 {
		return s.config.Options[0], true
	}
	return SortOption{}, false
}

func (s *SortingController) AddQueryParts(q *search.Query) {
	option, ok := s.Option()
	if !ok || option.Sort == "" {
		return
	}
	for _, field := range strings.Split(option.Sort, ",") {
		if field = strings.TrimSpace(field); field != "" {
			q.Sort = append(q.Sort, field)
		}
	}
}

func (s *SortingController) AddParametersForCurrentState(params map[string][]string) {
	if s.state.CheckedOption != "" {
		params[s.config.Param] = []string{s.state.CheckedOption}
	}
}

func (s *SortingController) UpdateFromRequestParameters(params map[string][]string, isReloaded bool) {
	s.state.CheckedOption = first(params[s.config.Param])
}
