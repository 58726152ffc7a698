package main

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vistaarbengaluru/vistaar/internal/config"
	"github.com/vistaarbengaluru/vistaar/internal/contact"
	"github.com/vistaarbengaluru/vistaar/internal/content"
	"github.com/vistaarbengaluru/vistaar/internal/database"
	"github.com/vistaarbengaluru/vistaar/internal/relay"
	"github.com/vistaarbengaluru/vistaar/server"
)

var (
	version = "dev"
)

//go:embed templates/*.html
var templatesFiles embed.FS

//go:embed static
var staticFiles embed.FS

func main() {

	var (
		tmplFunc server.ExecuteTemplateFunc
		assets   http.FileSystem
		db       database.Database
		recorder contact.Recorder
	)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Errorf("failed to load config: %w", err))
	}

	tmpl, err := template.New("").Funcs(templateFuncs).ParseFS(templatesFiles, "templates/*.html")
	if err != nil {
		panic(fmt.Errorf("failed to parse templates: %w", err))
	}
	tmplFunc = tmpl.ExecuteTemplate
	assets = http.FS(staticFiles)

	if cfg.DatabaseURL != "" {
		store, err := database.NewDatabase(ctx, cfg.DatabaseURL)
		if err != nil {
			panic(fmt.Errorf("failed to initialize database: %w", err))
		}
		defer store.Close()

		if cfg.AdminPassword != "" {
			if err := store.EnsurePassword(ctx, cfg.AdminPassword); err != nil {
				panic(fmt.Errorf("failed to seed admin password: %w", err))
			}
		}
		db = store
		recorder = store
	} else {
		slog.Info("DATABASE_URL not set, inquiries will not be recorded")
	}

	submitter := contact.NewService(relay.NewClient(cfg.Relay()), recorder, cfg.Recipient)

	srv := server.NewServer(server.Options{
		Version:      version,
		Port:         cfg.Port,
		Assets:       assets,
		TmplFunc:     tmplFunc,
		Site:         content.Site(),
		Contact:      submitter,
		ContactLimit: cfg.ContactRateLimit,
		DB:           db,
	})

	go srv.Start()

	slog.Info("Started server", slog.String("listen_addr", ":"+cfg.Port), slog.String("version", version))
	slog.Debug(server.FormatBuildVersion(version))
	si := make(chan os.Signal, 1)
	signal.Notify(si, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-si
	slog.Info("Shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Failed to shut down cleanly", "error", err)
	}
}

var templateFuncs = template.FuncMap{
	"add": func(a, b int) int { return a + b },
}
