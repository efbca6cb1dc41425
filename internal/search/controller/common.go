package controller

import (
	"strings"

	"github.com/svera/sitesearch/internal/search"
)

type CommonState struct {
	Query     string
	LastQuery string
}

// CommonController handles the query string and the parameters every request carries
type CommonController struct {
	config CommonConfig
	state  CommonState
}

func NewCommon(cfg CommonConfig) *CommonController {
	return &CommonController{config: cfg}
}

func (c *CommonController) Config() CommonConfig {
	return c.config
}

func (c *CommonController) State() *CommonState {
	return &c.state
}

func (c *CommonController) AddQueryParts(q *search.Query) {
	query := strings.TrimSpace(c.state.Query)
	if query == "" {
		if c.config.SearchForEmptyQuery {
			q.Keywords = search.MatchAll
		}
		return
	}
	if c.config.QueryModifier != "" {
		query = strings.ReplaceAll(c.config.QueryModifier, queryPlaceholder, query)
	}
	q.Keywords = query
}

func (c *CommonController) AddParametersForCurrentState(params map[string][]string) {
	params[c.config.QueryParam] = []string{c.state.Query}
	params[c.config.LastQueryParam] = []string{c.state.Query}
	params[c.config.ReloadedParam] = []string{"true"}
	for k, v := range c.config.AdditionalParameters {
		params[k] = []string{v}
	}
}

func (c *CommonController) UpdateFromRequestParameters(params map[string][]string, isReloaded bool) {
	c.state.Query = first(params[c.config.QueryParam])
	c.state.LastQuery = first(params[c.config.LastQueryParam])
}
