package controller_test

import (
	"testing"

	"github.com/svera/corkboard/internal/webserver/controller"
)

func TestSanitize(t *testing.T) {
	var cases = []struct {
		input    string
		expected string
	}{
		{"Plain text", "Plain text"},
		{"  Q&A session ", "Q&A session"},
		{"<b>Bold</b> move", "Bold move"},
		{"<script>alert(1)</script>Hi", "Hi"},
	}

	for _, tcase := range cases {
		if got := controller.Sanitize(tcase.input); got != tcase.expected {
			t.Errorf("Wrong sanitized text for %q, expected %q, got %q", tcase.input, tcase.expected, got)
		}
	}
}
