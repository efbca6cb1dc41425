// Package language guesses the locale of resources which do not declare one.
package language

import (
	"slices"
	"strings"
	"sync"

	"github.com/pemistahl/lingua-go"
)

var languages = []lingua.Language{
	lingua.Spanish,
	lingua.English,
	lingua.German,
	lingua.French,
	lingua.Italian,
	lingua.Portuguese,
}

var detector = sync.OnceValue(func() lingua.LanguageDetector {
	return lingua.NewLanguageDetectorBuilder().
		FromLanguages(languages...).
		Build()
})

// Detect returns the two-letter code of the language text is written in, or an empty
// string if it is not one of the supported ones
func Detect(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	if language, exists := detector().DetectLanguageOf(text); exists {
		if slices.Contains(languages, language) {
			return strings.ToLower(language.IsoCode639_1().String())
		}
	}

	return ""
}

// Normalize reduces a language tag such as "en-GB" to its two-letter code
func Normalize(tag string) string {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if i := strings.IndexAny(tag, "-_"); i >= 0 {
		tag = tag[:i]
	}
	return tag
}
