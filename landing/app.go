// Package landing serves the dashboard landing page: a grid of cards
// linking to the sibling deployments, resolved from the link table at
// startup.
package landing

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/darkspy3580/interface/internal"
	"github.com/darkspy3580/interface/internal/config"
)

//go:embed templates/* static/*
var embeddedFiles embed.FS

// App is the landing page application
type App struct {
	router    *chi.Mux
	templates *template.Template
	cards     []config.Card
	logger    *internal.Logger
}

// Config holds landing application settings
type Config struct {
	Cards []config.Card
}

// NewApp creates a new landing application
func NewApp(cfg Config, logger *internal.Logger) (*App, error) {
	if logger == nil {
		logger = internal.DefaultLogger
	}

	templates, err := template.ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	app := &App{
		router:    chi.NewRouter(),
		templates: templates,
		cards:     cfg.Cards,
		logger:    logger.Named("Landing"),
	}

	app.setupMiddleware()
	app.setupRoutes()

	return app, nil
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))

	staticFS := http.FileServer(http.FS(embeddedFiles))
	a.router.Handle("/static/*", staticFS)
}

// setupRoutes configures the application routes
func (a *App) setupRoutes() {
	a.router.Get("/", a.handleIndex)
}

// Handler exposes the router for tests and embedding
func (a *App) Handler() http.Handler {
	return a.router
}

// Start starts the landing server
func (a *App) Start(addr string) error {
	a.logger.Info("starting landing page on http://%s", addr)
	return http.ListenAndServe(addr, a.router)
}

func (a *App) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	data := struct {
		Cards []config.Card
	}{Cards: a.cards}

	if err := a.templates.ExecuteTemplate(w, "index.html", data); err != nil {
		a.logger.Error("template error: %v", err)
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
	}
}
