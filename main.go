package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"
	"github.com/spf13/afero"
	"github.com/svera/corkboard/internal/access"
	"github.com/svera/corkboard/internal/i18n"
	"github.com/svera/corkboard/internal/webserver"
	"github.com/svera/corkboard/internal/webserver/infrastructure"
	"go.uber.org/zap"
)

var version string = "unknown"

func main() {
	var input CLIInput
	kong.Parse(&input, kong.Vars{"version": version})

	logger, err := newLogger(input.Verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error initialising logger: %s\n", err)
		os.Exit(1)
	}
	zap.ReplaceGlobals(logger)
	defer func() { _ = logger.Sync() }()

	appFs := afero.NewOsFs()
	dataDir, err := dataDir(input.DataDir)
	if err != nil {
		logger.Fatal("error retrieving user home dir", zap.Error(err))
	}
	if err = appFs.MkdirAll(dataDir, os.ModePerm); err != nil {
		logger.Fatal("couldn't create data dir", zap.String("path", dataDir), zap.Error(err))
	}

	db, err := infrastructure.Connect(appFs, filepath.Join(dataDir, "corkboard.db"))
	if err != nil {
		logger.Fatal("error connecting to database", zap.Error(err))
	}

	idx, err := openIndex(appFs, filepath.Join(dataDir, "index"))
	if err != nil {
		logger.Fatal("error opening index", zap.Error(err))
	}
	defer idx.Close()

	printers, err := i18n.Printers(i18n.Translations(), i18n.DefaultLanguage)
	if err != nil {
		logger.Fatal("error loading translations", zap.Error(err))
	}
	translator := i18n.NewTranslator(printers)

	if input.JwtSecret == "" {
		logger.Warn("no JWT secret set, sessions will not survive restarts")
		input.JwtSecret = uuid.NewString()
	}

	webserverConfig := webserver.Config{
		Version:           version,
		FQDN:              input.FQDN,
		Port:              input.Port,
		SessionTimeout:    time.Duration(input.SessionTimeout * float64(time.Hour)),
		JwtSecret:         []byte(input.JwtSecret),
		MinPasswordLength: input.MinPasswordLength,
		BoardLifetime:     time.Duration(input.BoardLifetime) * time.Hour,
		Lease:             time.Duration(input.Lease) * time.Second,
		RequestLogs:       input.Verbose,
	}

	sender := webserver.NewSender(input.SmtpServer, input.SmtpPort, input.SmtpUser, input.SmtpPassword)
	controllers := webserver.SetupControllers(webserverConfig, db, idx, sender, translator, access.SystemClock{})
	app := webserver.New(webserverConfig, controllers, translator)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("corkboard started", zap.String("version", version), zap.Int("port", input.Port))
		errCh <- app.Listen(fmt.Sprintf(":%d", input.Port))
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			logger.Error("error shutting down", zap.Error(err))
		}
	case err := <-errCh:
		if err != nil {
			logger.Fatal("server stopped", zap.Error(err))
		}
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func dataDir(configured string) (string, error) {
	if configured != "" {
		return configured, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".corkboard"), nil
}
