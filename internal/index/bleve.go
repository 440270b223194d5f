package index

import (
	"log"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/custom"
	"github.com/blevesearch/bleve/v2/analysis/char/asciifolding"
	"github.com/blevesearch/bleve/v2/analysis/token/lowercase"
	"github.com/blevesearch/bleve/v2/analysis/tokenizer/unicode"
	"github.com/blevesearch/bleve/v2/mapping"
)

// BleveIndexer keeps a full text index of the live content of every board
type BleveIndexer struct {
	idx bleve.Index
}

// NewBleve creates a new BleveIndexer instance using the passed index
func NewBleve(index bleve.Index) *BleveIndexer {
	return &BleveIndexer{
		idx: index,
	}
}

func Mapping() *mapping.IndexMappingImpl {
	indexMapping := bleve.NewIndexMapping()

	err := indexMapping.AddCustomAnalyzer("content",
		map[string]any{
			"type": custom.Name,
			"char_filters": []string{
				asciifolding.Name,
			},
			"tokenizer": unicode.Name,
			"token_filters": []string{
				lowercase.Name,
			},
		})
	if err != nil {
		log.Fatal(err)
	}
	indexMapping.DefaultAnalyzer = "content"

	boardFieldMapping := bleve.NewKeywordFieldMapping()
	indexMapping.DefaultMapping.AddFieldMappingsAt("Board", boardFieldMapping)
	typeFieldMapping := bleve.NewKeywordFieldMapping()
	indexMapping.DefaultMapping.AddFieldMappingsAt("Type", typeFieldMapping)
	authorFieldMapping := bleve.NewTextFieldMapping()
	authorFieldMapping.Index = false
	indexMapping.DefaultMapping.AddFieldMappingsAt("Author", authorFieldMapping)

	return indexMapping
}

// Count returns the number of indexed content items
func (b *BleveIndexer) Count() (uint64, error) {
	return b.idx.DocCount()
}

// Close closes the index
func (b *BleveIndexer) Close() error {
	return b.idx.Close()
}
