package controller

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/text/language"
)

// BestLanguage picks the supported language which best matches the Accept-Language header of the request
func BestLanguage(c *fiber.Ctx, supportedLanguages []string) string {
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
