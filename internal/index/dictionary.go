package index

import (
	bleveindex "github.com/blevesearch/bleve_index_api"
	"github.com/svera/sitesearch/internal/spellcheck"
)

// Terms returns every term of the text fields along with the number of documents containing it,
// so the index can be used as the spell checker's dictionary
func (b *BleveIndexer) Terms() ([]spellcheck.Term, error) {
	counts := map[string]int{}
	var order []string
	for _, field := range TextFields {
		dict, err := b.idx.FieldDict(field)
		if err != nil {
			return nil, err
		}
		err = readDict(dict, counts, &order)
		dict.Close()
		if err != nil {
			return nil, err
		}
	}

	terms := make([]spellcheck.Term, len(order))
	for i, term := range order {
		terms[i] = spellcheck.Term{Text: term, Frequency: counts[term]}
	}
	return terms, nil
}

func readDict(dict bleveindex.FieldDict, counts map[string]int, order *[]string) error {
	for {
		entry, err := dict.Next()
		if err != nil {
			return err
		}
		if entry == nil {
			return nil
		}
		if _, ok := counts[entry.Term]; !ok {
			*order = append(*order, entry.Term)
		}
		counts[entry.Term] += int(entry.Count)
	}
}

// analyze splits text into terms with the analyzer used for the text fields, so query terms
// can be compared with the dictionary ones
func (b *BleveIndexer) analyze(text string) []string {
	analyzer := b.idx.Mapping().AnalyzerNamed(contentAnalyzer)
	if analyzer == nil {
		return spellcheck.Tokenize(text)
	}
	tokens := analyzer.Analyze([]byte(text))
	terms := make([]string, len(tokens))
	for i, token := range tokens {
		terms[i] = string(token.Term)
	}
	return terms
}
