package view_test

import (
	"testing"

	"github.com/svera/corkboard/internal/result"
	"github.com/svera/corkboard/internal/webserver/view"
)

func TestPagination(t *testing.T) {
	var cases = []struct {
		name          string
		page          int
		totalHits     int
		expectedPages []int
		previous      string
		next          string
	}{
		{"Single page has no previous nor next links", 1, 5, []int{1}, "", ""},
		{"First page of many", 1, 200, []int{1, 2, 3, 4, 5}, "", "?page=2&q=sprint"},
		{"Middle page is centered", 6, 200, []int{4, 5, 6, 7, 8}, "?page=5&q=sprint", "?page=7&q=sprint"},
		{"Last page", 10, 200, []int{6, 7, 8, 9, 10}, "?page=9&q=sprint", ""},
	}

	for _, tcase := range cases {
		t.Run(tcase.name, func(t *testing.T) {
			results := result.NewPaginated(20, tcase.page, tcase.totalHits, []uint{})
			nav := view.Pagination(view.MaxPagesNavigator, results, map[string]string{"q": "sprint"})

			if len(nav.Pages) != len(tcase.expectedPages) {
				t.Fatalf("Wrong number of pages, expected %d, got %d", len(tcase.expectedPages), len(nav.Pages))
			}
			for _, page := range tcase.expectedPages {
				if _, ok := nav.Pages[page]; !ok {
					t.Errorf("Expected page %d to be in the navigator", page)
				}
			}
			if !nav.Pages[tcase.page].IsCurrent {
				t.Errorf("Expected page %d to be the current one", tcase.page)
			}
			if nav.PreviousLink != tcase.previous {
				t.Errorf("Wrong previous link, expected %q, got %q", tcase.previous, nav.PreviousLink)
			}
			if nav.NextLink != tcase.next {
				t.Errorf("Wrong next link, expected %q, got %q", tcase.next, nav.NextLink)
			}
		})
	}
}
