package view

import (
	"html/template"
	"net/url"
)

// ToQueryString encodes m as a query string, with its keys sorted
func ToQueryString(m map[string]string) template.URL {
	if len(m) == 0 {
		return ""
	}
	values := make(url.Values, len(m))
	for k, v := range m {
		values.Set(k, v)
	}
	return template.URL(values.Encode())
}
