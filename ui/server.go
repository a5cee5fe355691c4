package ui

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/darkspy3580/interface/internal"
	"github.com/darkspy3580/interface/internal/pipeline"
)

//go:embed templates/* static/* help/*
var embeddedFiles embed.FS

// maxUploadBytes bounds the multipart form memory for uploads
const maxUploadBytes = 32 << 20

// Server is the analyzer web application: upload a topology-feature table,
// classify or score it, view the distribution, download the results.
type Server struct {
	router       *gin.Engine
	templates    *template.Template
	orchestrator *pipeline.Orchestrator
	helpHTML     template.HTML
	logger       *internal.Logger
}

// Config holds analyzer server settings
type Config struct {
	GinMode string
}

// NewServer creates the analyzer server around a pipeline orchestrator
func NewServer(cfg Config, orchestrator *pipeline.Orchestrator, logger *internal.Logger) (*Server, error) {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}
	if logger == nil {
		logger = internal.DefaultLogger
	}

	s := &Server{
		router:       gin.Default(),
		orchestrator: orchestrator,
		logger:       logger.Named("UI"),
	}

	funcMap := template.FuncMap{
		"pct": func(count, total int) float64 {
			if total == 0 {
				return 0
			}
			return 100 * float64(count) / float64(total)
		},
		"fmt4": func(v float64) string { return fmt.Sprintf("%.4f", v) },
	}

	templates, err := template.New("").Funcs(funcMap).ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	s.templates = templates

	helpHTML, err := renderHelp(embeddedFiles)
	if err != nil {
		return nil, fmt.Errorf("failed to render help panel: %w", err)
	}
	s.helpHTML = helpHTML

	s.setupMiddleware()
	s.setupRoutes()

	return s, nil
}

// setupMiddleware serves static assets from the embedded filesystem
func (s *Server) setupMiddleware() {
	s.router.MaxMultipartMemory = maxUploadBytes

	staticFS, err := fs.Sub(embeddedFiles, "static")
	if err != nil {
		s.logger.Error("failed to create static filesystem: %v", err)
		return
	}
	s.router.StaticFS("/static", http.FS(staticFS))
}

// setupRoutes configures the application routes
func (s *Server) setupRoutes() {
	s.router.GET("/", s.handleIndex)
	s.router.POST("/analyze", s.handleAnalyze)
	s.router.GET("/healthz", s.handleHealth)
}

// Handler exposes the router for tests and embedding
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the web server
func (s *Server) Start(addr string) error {
	s.logger.Info("starting analyzer on http://%s", addr)
	return s.router.Run(addr)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":           "ok",
		"classifier_ready": s.orchestrator.ClassifierReady(),
	})
}

// renderTemplate writes a template or a 500 if rendering fails
func (s *Server) renderTemplate(c *gin.Context, name string, data interface{}) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(c.Writer, name, data); err != nil {
		s.logger.Error("template %s: %v", name, err)
		c.AbortWithStatus(http.StatusInternalServerError)
	}
}
