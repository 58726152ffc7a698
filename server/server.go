package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"runtime"
	"sync"
	"time"

	"github.com/vistaarbengaluru/vistaar/internal/database"
	"github.com/vistaarbengaluru/vistaar/internal/models"
)

type ExecuteTemplateFunc func(wr io.Writer, name string, data any) error

// Submitter handles a contact-form draft. *contact.Service implements it.
type Submitter interface {
	Submit(ctx context.Context, d models.Draft) error
}

type Server struct {
	version      string
	port         string
	server       *http.Server
	assets       http.FileSystem
	tmplFunc     ExecuteTemplateFunc
	site         models.Site
	contact      Submitter
	contactLimit int
	sessions     map[string]time.Time
	sessionsMu   sync.RWMutex
	db           database.Database
}

type Options struct {
	Version      string
	Port         string
	Assets       http.FileSystem
	TmplFunc     ExecuteTemplateFunc
	Site         models.Site
	Contact      Submitter
	ContactLimit int
	// DB is optional. Without it the admin inbox is not mounted.
	DB database.Database
}

func NewServer(opts Options) *Server {

	s := &Server{
		version:      opts.Version,
		port:         opts.Port,
		assets:       opts.Assets,
		tmplFunc:     opts.TmplFunc,
		site:         opts.Site,
		contact:      opts.Contact,
		contactLimit: opts.ContactLimit,
		sessions:     make(map[string]time.Time),
		sessionsMu:   sync.RWMutex{},
		db:           opts.DB,
	}

	s.server = &http.Server{
		Addr:              ":" + opts.Port,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s
}

func (s *Server) Start() {
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		panic(err)
	}
}

// Shutdown waits for in-flight requests, including relay calls, until ctx ends.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func FormatBuildVersion(version string) string {
	return fmt.Sprintf("Go Version: %s\nVersion: %s\nOS/Arch: %s/%s", runtime.Version(), version, runtime.GOOS, runtime.GOARCH)
}
