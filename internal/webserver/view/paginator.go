package view

import (
	"strconv"

	"github.com/svera/corkboard/internal/result"
)

// MaxPagesNavigator is the maximum number of page links shown at once
const MaxPagesNavigator = 5

// Page holds the URL of a results page, and if that page is the current one being shown
type Page struct {
	Link      string
	IsCurrent bool
}

// PagesNavigator contains all pages links, as well as links to the previous and next pages from the current one
type PagesNavigator struct {
	Pages        map[int]Page
	PreviousLink string
	NextLink     string
}

// Pagination builds the navigator of a paginated listing, showing at most size page links
// around the current one. params are kept in every link.
func Pagination[T any](size int, results result.Paginated[T], params map[string]string) PagesNavigator {
	total := results.TotalPages()
	start, end := 1, total
	if total > size {
		end = size
		if results.Page() > size/2 {
			start = results.Page() - size/2
			end = start + size - 1
			if end > total {
				start = total - size + 1
				end = total
			}
		}
	}

	nav := PagesNavigator{
		Pages: make(map[int]Page, end-start+1),
	}
	link := func(page int) string {
		values := make(map[string]string, len(params)+1)
		for k, v := range params {
			values[k] = v
		}
		values["page"] = strconv.Itoa(page)
		return "?" + string(ToQueryString(values))
	}

	for i := start; i <= end; i++ {
		p := Page{Link: link(i)}
		if i == results.Page() {
			p.IsCurrent = true
			if results.HasPrevious() {
				nav.PreviousLink = link(i - 1)
			}
			if results.HasNext() {
				nav.NextLink = link(i + 1)
			}
		}
		nav.Pages[i] = p
	}
	return nav
}
