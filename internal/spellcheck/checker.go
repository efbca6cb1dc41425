// Package spellcheck builds did-you-mean suggestions from the terms stored in the search index.
package spellcheck

import (
	"sort"
	"strings"
	"sync"
	"unicode"

	"github.com/svera/sitesearch/internal/search"
)

// Term is an indexed term and the number of documents containing it
type Term struct {
	Text      string
	Frequency int
}

// Dictionary provides the terms suggestions are picked from
type Dictionary interface {
	Terms() ([]Term, error)
}

type Checker struct {
	dictionary  Dictionary
	tokenize    func(string) []string
	maxDistance int
	minFreq     int

	mu         sync.RWMutex
	terms      map[string]int
	valid      bool
	generation uint64
}

type Option func(*Checker)

// WithMaxDistance sets the maximum edit distance between a token and its suggestions
func WithMaxDistance(d int) Option {
	return func(c *Checker) {
		if d > 0 {
			c.maxDistance = d
		}
	}
}

// WithMinFrequency ignores terms found in less than f documents
func WithMinFrequency(f int) Option {
	return func(c *Checker) {
		if f >= 0 {
			c.minFreq = f
		}
	}
}

// WithTokenizer sets how queries are split into the terms looked up in the dictionary. It must
// produce terms the same way they were stored in it.
func WithTokenizer(tokenize func(string) []string) Option {
	return func(c *Checker) {
		if tokenize != nil {
			c.tokenize = tokenize
		}
	}
}

func NewChecker(dictionary Dictionary, opts ...Option) *Checker {
	c := &Checker{
		dictionary:  dictionary,
		tokenize:    Tokenize,
		maxDistance: 2,
		minFreq:     1,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Invalidate drops the cached terms, so the next check reads them again from the dictionary.
// Must be called whenever the index changes.
func (c *Checker) Invalidate() {
	c.mu.Lock()
	c.valid = false
	c.terms = nil
	c.generation++
	c.mu.Unlock()
}

func (c *Checker) load() (map[string]int, error) {
	c.mu.RLock()
	if c.valid {
		terms := c.terms
		c.mu.RUnlock()
		return terms, nil
	}
	generation := c.generation
	c.mu.RUnlock()

	list, err := c.dictionary.Terms()
	if err != nil {
		return nil, err
	}
	terms := make(map[string]int, len(list))
	for _, t := range list {
		terms[strings.ToLower(t.Text)] += t.Frequency
	}

	// Terms read before an invalidation are returned but not kept
	c.mu.Lock()
	if c.generation == generation {
		c.terms = terms
		c.valid = true
	}
	c.mu.Unlock()
	return terms, nil
}

// Check looks for misspelled tokens in query and returns up to count suggestions for each of
// them, best first. The collated result is the query with every misspelled token replaced by
// its best suggestion. Returns nil if no token could be corrected.
func (c *Checker) Check(query string, count int) (*search.SpellCheck, error) {
	terms, err := c.load()
	if err != nil {
		return nil, err
	}
	if count < 1 {
		count = 1
	}

	spellCheck := &search.SpellCheck{}
	tokens := c.tokenize(query)
	collated := make([]string, len(tokens))
	for i, token := range tokens {
		collated[i] = token
		if _, ok := terms[token]; ok {
			continue
		}
		suggestions := c.suggest(terms, token)
		if len(suggestions) == 0 {
			continue
		}
		if len(suggestions) > count {
			suggestions = suggestions[:count]
		}
		collated[i] = suggestions[0].Suggested
		spellCheck.Suggestions = append(spellCheck.Suggestions, suggestions...)
	}

	if len(spellCheck.Suggestions) == 0 {
		return nil, nil
	}
	spellCheck.CollatedResult = strings.Join(collated, " ")
	return spellCheck, nil
}

func (c *Checker) suggest(terms map[string]int, token string) []search.Suggestion {
	var suggestions []search.Suggestion
	tokenLength := len([]rune(token))
	for term, freq := range terms {
		if freq < c.minFreq {
			continue
		}
		lenDiff := len([]rune(term)) - tokenLength
		if lenDiff < 0 {
			lenDiff = -lenDiff
		}
		if lenDiff > c.maxDistance {
			continue
		}
		if distance := LevenshteinDistance(token, term); distance <= c.maxDistance {
			suggestions = append(suggestions, search.Suggestion{
				Token:     token,
				Suggested: term,
				Distance:  distance,
				Frequency: freq,
			})
		}
	}

	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].Distance != suggestions[j].Distance {
			return suggestions[i].Distance < suggestions[j].Distance
		}
		if suggestions[i].Frequency != suggestions[j].Frequency {
			return suggestions[i].Frequency > suggestions[j].Frequency
		}
		return suggestions[i].Suggested < suggestions[j].Suggested
	})
	return suggestions
}

// Tokenize splits a query into lowercase words
func Tokenize(query string) []string {
	return strings.FieldsFunc(strings.ToLower(query), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
