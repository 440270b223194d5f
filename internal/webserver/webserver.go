package webserver

import (
	"embed"
	"io/fs"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/svera/corkboard/internal/i18n"
	"github.com/svera/corkboard/internal/webserver/infrastructure"
	"go.uber.org/zap"
)

var (
	//go:embed embedded
	embedded embed.FS
	cssFS    fs.FS
	jsFS     fs.FS
	viewsFS  fs.FS
)

type Config struct {
	Version           string
	FQDN              string
	Port              int
	SessionTimeout    time.Duration
	JwtSecret         []byte
	MinPasswordLength int
	BoardLifetime     time.Duration
	Lease             time.Duration
	LatestBoardsLimit int
	RequestLogs       bool
}

type Sender interface {
	Send(address, subject, body string) error
	From() string
}

func init() {
	var err error

	cssFS, err = fs.Sub(embedded, "embedded/css")
	if err != nil {
		zap.L().Fatal("error loading stylesheets", zap.Error(err))
	}

	jsFS, err = fs.Sub(embedded, "embedded/js")
	if err != nil {
		zap.L().Fatal("error loading scripts", zap.Error(err))
	}

	viewsFS, err = fs.Sub(embedded, "embedded/views")
	if err != nil {
		zap.L().Fatal("error loading views", zap.Error(err))
	}
}

// New builds a new Fiber application and set up the required routes
func New(cfg Config, controllers Controllers, translator *i18n.Translator) *fiber.App {
	engine, err := infrastructure.TemplateEngine(viewsFS, translator)
	if err != nil {
		zap.L().Fatal("error building template engine", zap.Error(err))
	}

	app := fiber.New(fiber.Config{
		Views:                 engine,
		DisableStartupMessage: true,
		AppName:               cfg.Version,
		PassLocalsToViews:     true,
		ErrorHandler:          errorHandler(translator),
	})

	app.Use(recover.New())
	if cfg.RequestLogs {
		app.Use(logger.New())
	}

	app.Use("/css", filesystem.New(filesystem.Config{
		Root: http.FS(cssFS),
	}))

	app.Use("/js", filesystem.New(filesystem.Config{
		Root: http.FS(jsFS),
	}))

	app.Use(SetFQDN(cfg))
	app.Use(SetLanguage(i18n.Languages))

	routes(app, controllers, cfg.JwtSecret)
	return app
}

// NewSender returns the SMTP sender if a server has been configured, or a no-op one otherwise
func NewSender(server string, port int, user, password string) Sender {
	if server == "" || user == "" {
		return &infrastructure.NoEmail{}
	}
	return &infrastructure.SMTP{
		Server:   server,
		Port:     port,
		User:     user,
		Password: password,
	}
}
