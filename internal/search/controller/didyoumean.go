package controller

import "github.com/svera/sitesearch/internal/search"

type DidYouMeanState struct {
	query string
}

// Query returns the query the user typed, before any modifier is applied
func (s *DidYouMeanState) Query() string {
	return s.query
}

type DidYouMeanController struct {
	config DidYouMeanConfig
	state  DidYouMeanState
	common Common
}

func NewDidYouMean(cfg DidYouMeanConfig, common Common) *DidYouMeanController {
	return &DidYouMeanController{config: cfg, common: common}
}

func (d *DidYouMeanController) Config() DidYouMeanConfig {
	return d.config
}

func (d *DidYouMeanController) State() *DidYouMeanState {
	return &d.state
}

func (d *DidYouMeanController) AddQueryParts(q *search.Query) {
	q.SpellCheck = true
	q.SpellCheckCount = d.config.Count
	q.Collate = d.config.Collate
}

func (d *DidYouMeanController) AddParametersForCurrentState(params map[string][]string) {}

func (d *DidYouMeanController) UpdateFromRequestParameters(params map[string][]string, isReloaded bool) {
	d.state.query = first(params[d.common.Config().QueryParam])
}
