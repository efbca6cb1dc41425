package controller

import (
	"strconv"

	"github.com/svera/sitesearch/internal/search"
)

type PaginationState struct {
	CurrentPage int
}

type PaginationController struct {
	config PaginationConfig
	state  PaginationState
}

func NewPagination(cfg PaginationConfig) *PaginationController {
	return &PaginationController{config: cfg, state: PaginationState{CurrentPage: 1}}
}

func (p *PaginationController) Config() PaginationConfig {
	return p.config
}

func (p *PaginationController) State() *PaginationState {
	return &p.state
}

func (p *PaginationController) AddQueryParts(q *search.Query) {
	q.Rows = p.config.PageSize
	q.Start = (p.state.CurrentPage - 1) * p.config.PageSize
}

func (p *PaginationController) AddParametersForCurrentState(params map[string][]string) {
	params[p.config.PageParam] = []string{strconv.Itoa(p.state.CurrentPage)}
}

// UpdateFromRequestParameters reads the page number. A new search always starts at page 1.
func (p *PaginationController) UpdateFromRequestParameters(params map[string][]string, isReloaded bool) {
	p.state.CurrentPage = 1
	if !isReloaded {
		return
	}
	page, err := strconv.Atoi(first(params[p.config.PageParam]))
	if err != nil || page < 1 {
		return
	}
	p.state.CurrentPage = page
}
