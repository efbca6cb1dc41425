package controller

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/text/language"
)

// Root redirects to the search page in the language that best matches the request
func Root(c *fiber.Ctx, supportedLanguages []string) error {
	return c.Redirect(fmt.Sprintf("/%s/search", ChooseBestLanguage(c, supportedLanguages)))
}

// ChooseBestLanguage matches the Accept-Language header against the supported languages.
// The first supported language is returned when nothing matches.
func ChooseBestLanguage(c *fiber.Ctx, supportedLanguages []string) string {
	if lang, ok := c.Locals("Lang").(string); ok && lang != "" {
		return lang
	}
	acceptHeader := c.Get(fiber.HeaderAcceptLanguage)
	tags := make([]language.Tag, len(supportedLanguages))
	for i, lang := range supportedLanguages {
		tags[i] = language.Make(lang)
	}
	languageMatcher := language.NewMatcher(tags)

	t, _, _ := language.ParseAcceptLanguage(acceptHeader)
	_, index, _ := languageMatcher.Match(t...)
	return supportedLanguages[index]
}
