package view

import (
	"fmt"
	"html/template"
	"net/url"
	"strconv"

	"github.com/svera/sitesearch/internal/result"
	searchresult "github.com/svera/sitesearch/internal/search/result"
)

// Page holds the URL of a results page, and if that page is the current one being shown
type Page struct {
	Link      template.URL
	IsCurrent bool
}

// PagesNavigator contains all pages links, as well as links to the previous and next pages from the current one
type PagesNavigator struct {
	Pages        map[int]Page
	PreviousLink template.URL
	NextLink     template.URL
}

// Pagination builds the navigator of a paginated list, showing at most size pages around the current one
func Pagination[T any](size int, results result.Paginated[T], params url.Values) PagesNavigator {
	start, end := 1, results.TotalPages()
	if results.TotalPages() > size {
		if results.Page() > size/2 {
			start = results.Page() - size/2
		}
		end = start + size - 1
		if end > results.TotalPages() {
			end = results.TotalPages()
			start = end - size + 1
		}
	}
	return navigator(start, end, results.Page(), results.TotalPages(), func(page int) template.URL {
		if params == nil {
			params = url.Values{}
		}
		params.Set("page", strconv.Itoa(page))
		return template.URL(fmt.Sprintf("?%s", params.Encode()))
	})
}

// SearchPagination builds the navigator of a search results page from the strip computed by the wrapper.
// Pages past the last one, as requested by outdated links, show the strip of the last page.
func SearchPagination(w *searchresult.Wrapper) PagesNavigator {
	state := w.StateParameters()
	first, last, current, total := w.PageNavFirst(), w.PageNavLast(), w.CurrentPage(), w.NumPages()
	if current > total {
		current = total
		first = max(1, total-(w.Controller().Pagination.Config().PageNavLength-1)/2)
		last = total
	}
	return navigator(first, last, current, total, func(page int) template.URL {
		return template.URL(fmt.Sprintf("?%s", state.Page(page)))
	})
}

func navigator(start, end, current, total int, link func(page int) template.URL) PagesNavigator {
	nav := PagesNavigator{
		Pages: make(map[int]Page, end-start+1),
	}
	for i := start; i <= end; i++ {
		nav.Pages[i] = Page{
			Link:      link(i),
			IsCurrent: i == current,
		}
	}
	if current > 1 {
		nav.PreviousLink = link(current - 1)
	}
	if current < total {
		nav.NextLink = link(current + 1)
	}
	return nav
}
