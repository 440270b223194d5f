package infrastructure

import (
	"html/template"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/template/html/v2"
	"github.com/gosimple/slug"
	"github.com/svera/corkboard/internal/i18n"
	"go.uber.org/zap"
)

func TemplateEngine(viewsFS fs.FS, translator *i18n.Translator) (*html.Engine, error) {
	engine := html.NewFileSystem(http.FS(viewsFS), ".html")

	engine.AddFunc("t", func(lang, key string, values ...any) template.HTML {
		return template.HTML(template.HTMLEscapeString(translator.T(lang, key, values...)))
	})

	engine.AddFunc("dict", func(values ...any) map[string]any {
		if len(values)%2 != 0 {
			zap.L().Warn("invalid dict call")
			return nil
		}
		dict := make(map[string]any, len(values)/2)
		for i := 0; i < len(values); i += 2 {
			key, ok := values[i].(string)
			if !ok {
				zap.L().Warn("dict keys must be strings")
				return nil
			}
			dict[key] = values[i+1]
		}
		return dict
	})

	engine.AddFunc("uppercase", func(text string) string {
		return strings.ToUpper(text)
	})

	engine.AddFunc("slugify", func(text string) string {
		return slug.Make(text)
	})

	engine.AddFunc("datetime", func(t time.Time) string {
		return t.UTC().Format("2006-01-02 15:04 MST")
	})

	return engine, nil
}
