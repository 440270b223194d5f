package index_test

import (
	"reflect"
	"testing"

	"github.com/blevesearch/bleve/v2"
	"github.com/svera/corkboard/internal/index"
	"github.com/svera/corkboard/internal/webserver/model"
	"golang.org/x/exp/slices"
)

func newIndex(t *testing.T) *index.BleveIndexer {
	t.Helper()

	indexMem, err := bleve.NewMemOnly(index.Mapping())
	if err != nil {
		t.Fatalf("Error initialising index: %s", err)
	}
	idx := index.NewBleve(indexMem)
	t.Cleanup(func() {
		idx.Close()
	})
	return idx
}

func fixtures() []model.Content {
	owner := uint(1)
	guest := "guest@example.com"

	return []model.Content{
		{ID: 1, BoardID: 1, UserID: &owner, Body: "Sprint retrospective notes", Type: model.TypeNote},
		{ID: 2, BoardID: 1, UserEmail: &guest, Body: "Café con leche para todos", Type: model.TypeChat},
		{ID: 3, BoardID: 1, UserID: &owner, Body: "Next sprint goals", Type: model.TypeText},
		{ID: 4, BoardID: 2, UserID: &owner, Body: "Sprint planning on another board", Type: model.TypeText},
	}
}

func TestSearch(t *testing.T) {
	var cases = []struct {
		name     string
		boardID  uint
		keywords string
		expected []uint
	}{
		{"Only content from the requested board is returned", 1, "sprint", []uint{1, 3}},
		{"All keywords must match", 1, "sprint goals", []uint{3}},
		{"Search is case and accent insensitive", 1, "CAFE", []uint{2}},
		{"Empty searches return nothing", 1, "  ", []uint{}},
		{"Searches without matches return nothing", 2, "leche", []uint{}},
	}

	idx := newIndex(t)
	for _, content := range fixtures() {
		if err := idx.AddContent(content); err != nil {
			t.Fatalf("Error indexing: %s", err)
		}
	}

	for _, tcase := range cases {
		t.Run(tcase.name, func(t *testing.T) {
			res, err := idx.Search(tcase.boardID, tcase.keywords, 1, 10)
			if err != nil {
				t.Fatalf("Error searching: %s", err)
			}
			hits := res.Hits()
			slices.Sort(hits)
			if !reflect.DeepEqual(hits, tcase.expected) {
				t.Errorf("Wrong result returned, expected %v, got %v", tcase.expected, hits)
			}
			if res.TotalHits() != len(tcase.expected) {
				t.Errorf("Wrong total hits, expected %d, got %d", len(tcase.expected), res.TotalHits())
			}
		})
	}
}

func TestDeletedContentIsRemoved(t *testing.T) {
	idx := newIndex(t)
	content := fixtures()[0]

	if err := idx.AddContent(content); err != nil {
		t.Fatalf("Error indexing: %s", err)
	}

	content.Deleted = true
	if err := idx.AddContent(content); err != nil {
		t.Fatalf("Error indexing: %s", err)
	}

	res, err := idx.Search(1, "retrospective", 1, 10)
	if err != nil {
		t.Fatalf("Error searching: %s", err)
	}
	if res.TotalHits() != 0 {
		t.Errorf("Expected deleted content not to be found, got %v", res.Hits())
	}
}

func TestRemoveBoard(t *testing.T) {
	idx := newIndex(t)
	for _, content := range fixtures() {
		if err := idx.AddContent(content); err != nil {
			t.Fatalf("Error indexing: %s", err)
		}
	}

	if err := idx.RemoveBoard(1); err != nil {
		t.Fatalf("Error removing board: %s", err)
	}

	count, err := idx.Count()
	if err != nil {
		t.Fatalf("Error counting: %s", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 document left in the index, got %d", count)
	}

	res, err := idx.Search(2, "sprint", 1, 10)
	if err != nil {
		t.Fatalf("Error searching: %s", err)
	}
	if !reflect.DeepEqual(res.Hits(), []uint{4}) {
		t.Errorf("Expected content of other boards to be kept, got %v", res.Hits())
	}
}
