package controller

import "github.com/svera/sitesearch/internal/search"

type HighlightingController struct {
	config HighlightConfig
}

func NewHighlighting(cfg HighlightConfig) *HighlightingController {
	return &HighlightingController{config: cfg}
}

func (h *HighlightingController) Config() HighlightConfig {
	return h.config
}

func (h *HighlightingController) AddQueryParts(q *search.Query) {
	q.Highlight = true
	q.HighlightFields = append(q.HighlightFields, h.config.Fields...)
}

func (h *HighlightingController) AddParametersForCurrentState(params map[string][]string) {}

func (h *HighlightingController) UpdateFromRequestParameters(params map[string][]string, isReloaded bool) {
}
