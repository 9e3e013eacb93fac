package ui

import (
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"questgen/domain/question"
	"questgen/internal"
	"questgen/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/nats-io/nuid"
)

// Server is the web front end: the generator page, the worksheet builder
// and the JSON API, served by gin.
type Server struct {
	router    *gin.Engine
	cfg       *config.Config
	state     *serviceState
	templates *template.Template
	logger    *internal.Logger
	instance  string
	startedAt time.Time
}

// NewServer creates a web server instance
func NewServer(cfg *config.Config) *Server {
	gin.SetMode(cfg.Server.GinMode)
	return &Server{
		router:    gin.Default(),
		cfg:       cfg,
		logger:    internal.DefaultLogger.WithTag("Server"),
		instance:  nuid.Next(),
		startedAt: time.Now(),
	}
}

// Initialize wires dependencies, parses templates and registers routes.
// The bank load starts in the background; pages render a loading state
// until it finishes.
func (s *Server) Initialize(deps Deps) error {
	s.state = newServiceState(deps)

	templates, err := template.New("").Funcs(templateFuncs()).ParseFS(embeddedFiles, "templates/*.html", "templates/fragments/*.html")
	if err != nil {
		return fmt.Errorf("failed to parse templates: %w", err)
	}
	s.templates = templates

	s.setupMiddleware()
	s.setupRoutes()
	s.state.startLoader()

	return nil
}

// templateFuncs returns the helper set shared by pages and fragments
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"add":   func(a, b int) int { return a + b },
		"lower": strings.ToLower,
		"title": func(v question.Variation) string { return v.DisplayName() },
		"difficultyLabel": func(d int) string {
			return question.Difficulty(d).Label()
		},
		"until": func(n int) []int {
			res := make([]int, n)
			for i := range res {
				res[i] = i
			}
			return res
		},
		"truncate": func(s string, n int) string {
			if len(s) <= n {
				return s
			}
			return s[:n] + "…"
		},
	}
}

// setupMiddleware configures Gin middleware
func (s *Server) setupMiddleware() {
	staticFS, err := fs.Sub(embeddedFiles, "static")
	if err != nil {
		s.logger.Error("static filesystem unavailable: %v", err)
		return
	}
	s.router.StaticFS("/static", http.FS(staticFS))
}

// setupRoutes configures the application routes
func (s *Server) setupRoutes() {
	// Pages
	s.router.GET("/", s.handleIndex)
	s.router.GET("/worksheets", s.handleWorksheetBuilder)
	s.router.GET("/history", s.handleHistoryPage)
	s.router.GET("/worksheets/:code", s.handleWorksheetByCode)

	// JSON API
	s.router.GET("/api/bank/status", s.handleBankStatus)
	s.router.POST("/api/bank/reload", s.handleBankReload)
	s.router.GET("/api/contexts", s.handleListContexts)
	s.router.GET("/api/contexts/:id", s.handleContextDetail)
	s.router.POST("/api/questions/generate", s.handleGenerate)
	s.router.POST("/api/worksheets", s.handleBuildWorksheet)
	s.router.GET("/api/history/questions", s.handleQuestionHistory)
	s.router.GET("/api/history/worksheets", s.handleWorksheetHistory)
	s.router.GET("/healthz", s.handleHealthz)

	// HTMX fragments for the generator page
	s.router.GET("/fragments/contexts", s.handleFragmentContexts)
	s.router.POST("/fragments/generate", s.handleFragmentGenerate)
	s.router.GET("/fragments/history", s.handleFragmentHistory)
}

// Start starts the web server
func (s *Server) Start(addr string) error {
	s.logger.Info("starting question generator UI on http://%s", addr)
	return s.router.Run(addr)
}

// Router exposes the underlying engine, used by tests
func (s *Server) Router() *gin.Engine { return s.router }
