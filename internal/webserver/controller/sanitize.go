package controller

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// Sanitize strips any markup from user provided text, which is stored and
// served as plain text
func Sanitize(text string) string {
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(text)))
}
