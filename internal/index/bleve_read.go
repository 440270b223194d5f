package index

import (
	"strconv"
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/search/query"
	"github.com/svera/corkboard/internal/result"
)

// Search looks for content of the passed board which matches all the passed keywords.
// Returns a maximum of <resultsPerPage> content IDs, offset by <page>, best matches first.
func (b *BleveIndexer) Search(boardID uint, keywords string, page, resultsPerPage int) (result.Paginated[[]uint], error) {
	if page < 1 {
		page = 1
	}

	words := strings.Fields(keywords)
	if len(words) == 0 {
		return result.NewPaginated(resultsPerPage, page, 0, []uint{}), nil
	}

	queries := []query.Query{boardQuery(boardID)}
	for _, word := range words {
		q := bleve.NewMatchQuery(word)
		q.SetField("Body")
		queries = append(queries, q)
	}

	req := bleve.NewSearchRequestOptions(bleve.NewConjunctionQuery(queries...), resultsPerPage, (page-1)*resultsPerPage, false)
	req.SortBy([]string{"-_score", "_id"})
	res, err := b.idx.Search(req)
	if err != nil {
		return result.Paginated[[]uint]{}, err
	}

	ids := make([]uint, 0, len(res.Hits))
	for _, hit := range res.Hits {
		id, err := strconv.ParseUint(hit.ID, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, uint(id))
	}

	return result.NewPaginated(resultsPerPage, page, int(res.Total), ids), nil
}

func boardQuery(boardID uint) query.Query {
	q := bleve.NewTermQuery(boardKey(boardID))
	q.SetField("Board")
	return q
}
