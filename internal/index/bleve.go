package index

import (
	"log"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/custom"
	"github.com/blevesearch/bleve/v2/analysis/char/asciifolding"
	"github.com/blevesearch/bleve/v2/analysis/token/lowercase"
	"github.com/blevesearch/bleve/v2/analysis/tokenizer/unicode"
	"github.com/blevesearch/bleve/v2/mapping"
	"github.com/svera/sitesearch/internal/spellcheck"
)

const (
	defaultRows      = 10
	resourceType     = "resource"
	contentAnalyzer  = "content"
	defaultBatchSize = 100
)

// TextFields are the analyzed fields keywords are looked up in
var TextFields = []string{"Title", "Description", "Content"}

type BleveIndexer struct {
	idx     bleve.Index
	checker *spellcheck.Checker
}

// NewBleve creates a new BleveIndexer instance using the passed index
func NewBleve(index bleve.Index) *BleveIndexer {
	b := &BleveIndexer{idx: index}
	b.checker = spellcheck.NewChecker(b, spellcheck.WithTokenizer(b.analyze))
	return b
}

// Mapping returns the mapping of CMS resources: text fields are folded to ASCII and lowercased,
// facetable fields are indexed as single keywords
func Mapping() *mapping.IndexMappingImpl {
	indexMapping := bleve.NewIndexMapping()

	err := indexMapping.AddCustomAnalyzer(contentAnalyzer,
		map[string]interface{}{
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
	indexMapping.DefaultAnalyzer = contentAnalyzer

	resourceMapping := bleve.NewDocumentMapping()
	for _, field := range TextFields {
		resourceMapping.AddFieldMappingsAt(field, bleve.NewTextFieldMapping())
	}
	for _, field := range []string{"Path", "UUID", "Name", "Type", "Category", "Tags", "Locale", "State", "UserLastModified"} {
		resourceMapping.AddFieldMappingsAt(field, bleve.NewKeywordFieldMapping())
	}
	resourceMapping.AddFieldMappingsAt("DateLastModified", bleve.NewDateTimeFieldMapping())

	indexMapping.AddDocumentMapping(resourceType, resourceMapping)
	indexMapping.DefaultType = resourceType
	indexMapping.DefaultMapping = resourceMapping

	return indexMapping
}

// Close closes the index
func (b *BleveIndexer) Close() error {
	return b.idx.Close()
}

// Count returns the number of indexed resources
func (b *BleveIndexer) Count() (uint64, error) {
	return b.idx.DocCount()
}
