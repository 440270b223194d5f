package i18n

import (
	"embed"
	"io/fs"

	"golang.org/x/exp/slices"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const DefaultLanguage = "en"

//go:embed translations
var translationsFS embed.FS

// Languages lists the languages the application is translated to
var Languages = []string{"en", "es"}

// Translations returns the embedded translation files
func Translations() fs.FS {
	dir, _ := fs.Sub(translationsFS, "translations")
	return dir
}

func Printers(dir fs.FS, fallbackLang string) (map[string]*message.Printer, error) {
	cat, err := NewCatalogFromFolder(dir, fallbackLang)
	if err != nil {
		return nil, err
	}

	printers := make(map[string]*message.Printer, len(Languages))
	for _, lang := range Languages {
		printers[lang] = message.NewPrinter(language.MustParse(lang), message.Catalog(cat))
	}
	return printers, nil
}

// Translator renders translation keys in any of the supported languages,
// falling back to DefaultLanguage for unknown ones.
type Translator struct {
	printers map[string]*message.Printer
}

func NewTranslator(printers map[string]*message.Printer) *Translator {
	return &Translator{printers: printers}
}

func (t *Translator) T(lang, key string, values ...any) string {
	if !slices.Contains(Languages, lang) {
		lang = DefaultLanguage
	}
	return t.printers[lang].Sprintf(key, values...)
}

func (t *Translator) Printers() map[string]*message.Printer {
	return t.printers
}
