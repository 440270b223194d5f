package index

import (
	"fmt"
	"strconv"

	"github.com/blevesearch/bleve/v2"
	"github.com/svera/corkboard/internal/webserver/model"
)

const removalBatchSize = 500

// Document is the indexed representation of a content item
type Document struct {
	Board  string
	Body   string
	Type   string
	Author string
}

// AddContent indexes a content item, replacing any previous version of it.
// Deleted items are removed instead.
func (b *BleveIndexer) AddContent(content model.Content) error {
	if content.Deleted {
		return b.RemoveContent(content.ID)
	}

	doc := Document{
		Board:  boardKey(content.BoardID),
		Body:   content.Body,
		Type:   content.Type,
		Author: content.Author(),
	}
	if err := b.idx.Index(contentKey(content.ID), doc); err != nil {
		return fmt.Errorf("error indexing content %d: %w", content.ID, err)
	}
	return nil
}

// RemoveContent removes a content item from the index
func (b *BleveIndexer) RemoveContent(id uint) error {
	return b.idx.Delete(contentKey(id))
}

// RemoveBoard removes every content item of a board from the index
func (b *BleveIndexer) RemoveBoard(boardID uint) error {
	for {
		req := bleve.NewSearchRequestOptions(boardQuery(boardID), removalBatchSize, 0, false)
		res, err := b.idx.Search(req)
		if err != nil {
			return err
		}
		if len(res.Hits) == 0 {
			return nil
		}

		batch := b.idx.NewBatch()
		for _, hit := range res.Hits {
			batch.Delete(hit.ID)
		}
		if err = b.idx.Batch(batch); err != nil {
			return err
		}
	}
}

func contentKey(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func boardKey(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
