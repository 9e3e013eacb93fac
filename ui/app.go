package ui

import (
	"embed"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/nats-io/nuid"

	"questgen/domain/core"
	"questgen/domain/question"
	"questgen/internal/assembly"
	"questgen/models"
)

//go:embed templates/* static/*
var embeddedFiles embed.FS

// App is the headless JSON API served by chi, for embedding and automation.
// It exposes the same API surface as the web server without pages.
type App struct {
	router    *chi.Mux
	state     *serviceState
	instance  string
	startedAt time.Time
}

// NewAPI creates the headless API application and starts the bank load
func NewAPI(deps Deps) *App {
	a := &App{
		router:    chi.NewRouter(),
		state:     newServiceState(deps),
		instance:  nuid.Next(),
		startedAt: time.Now(),
	}

	a.setupMiddleware()
	a.setupRoutes()
	a.state.startLoader()

	return a
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))
}

// setupRoutes configures the API routes
func (a *App) setupRoutes() {
	a.router.Get("/api/bank/status", a.handleBankStatus)
	a.router.Post("/api/bank/reload", a.handleBankReload)
	a.router.Get("/api/contexts", a.handleListContexts)
	a.router.Get("/api/contexts/{id}", a.handleContextDetail)
	a.router.Post("/api/questions/generate", a.handleGenerate)
	a.router.Post("/api/worksheets", a.handleBuildWorksheet)
	a.router.Get("/worksheets/{code}", a.handleWorksheetByCode)
	a.router.Get("/api/history/questions", a.handleQuestionHistory)
	a.router.Get("/api/history/worksheets", a.handleWorksheetHistory)
	a.router.Get("/healthz", a.handleHealthz)
}

// Start starts the HTTP server
func (a *App) Start(addr string) error {
	log.Printf("Starting question generator API on %s", addr)
	return http.ListenAndServe(addr, a.router)
}

// Router exposes the chi mux so cmd/api can run it under its own server
func (a *App) Router() *chi.Mux { return a.router }

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[API] error encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func (a *App) handleBankStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.state.status())
}

func (a *App) handleBankReload(w http.ResponseWriter, r *http.Request) {
	if !a.state.reload() {
		writeError(w, http.StatusConflict, "A bank load is already running")
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "reloading"})
}

func (a *App) handleListContexts(w http.ResponseWriter, r *http.Request) {
	eng, ok := a.state.engine()
	if !ok {
		writeError(w, http.StatusServiceUnavailable, "Context bank is still loading")
		return
	}

	raw := r.URL.Query().Get("variation")
	if raw == "" {
		writeJSON(w, http.StatusOK, map[string]interface{}{"groups": eng.Bank().Grouped()})
		return
	}

	v, err := question.ParseVariation(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"variation": v, "groups": eng.Bank().GroupedCompatible(v)})
}

func (a *App) handleContextDetail(w http.ResponseWriter, r *http.Request) {
	eng, ok := a.state.engine()
	if !ok {
		writeError(w, http.StatusServiceUnavailable, "Context bank is still loading")
		return
	}

	ctx, err := eng.Bank().Get(core.ContextID(chi.URLParam(r, "id")))
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, ctx)
}

func (a *App) handleGenerate(w http.ResponseWriter, r *http.Request) {
	generator, _, ok := a.state.services()
	if !ok {
		writeError(w, http.StatusServiceUnavailable, "Context bank is still loading")
		return
	}

	var req models.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	q, err := generator.Generate(r.Context(), req.Params())
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, models.NewQuestionResponse(q, req.ShowAnswer))
}

func (a *App) handleBuildWorksheet(w http.ResponseWriter, r *http.Request) {
	_, assessments, ok := a.state.services()
	if !ok {
		writeError(w, http.StatusServiceUnavailable, "Context bank is still loading")
		return
	}

	var req models.WorksheetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	built, err := assessments.BuildAssessment(r.Context(), req.Spec())
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}

	resp := models.NewWorksheetResponse(built)
	resp.HTML = string(assembly.RenderHTML(built))
	writeJSON(w, http.StatusCreated, resp)
}

func (a *App) handleWorksheetByCode(w http.ResponseWriter, r *http.Request) {
	_, assessments, ok := a.state.services()
	if !ok {
		writeError(w, http.StatusServiceUnavailable, "Context bank is still loading")
		return
	}

	built, err := assessments.WorksheetByCode(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(assembly.RenderHTML(built))
}

func (a *App) handleQuestionHistory(w http.ResponseWriter, r *http.Request) {
	generator, _, ok := a.state.services()
	if !ok {
		writeError(w, http.StatusServiceUnavailable, "Context bank is still loading")
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	recent, err := generator.RecentQuestions(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	out := make([]models.QuestionResponse, len(recent))
	for i, q := range recent {
		out[i] = models.NewQuestionResponse(q, true)
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"questions": out})
}

func (a *App) handleWorksheetHistory(w http.ResponseWriter, r *http.Request) {
	_, assessments, ok := a.state.services()
	if !ok {
		writeError(w, http.StatusServiceUnavailable, "Context bank is still loading")
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	recent, err := assessments.RecentWorksheets(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	out := make([]models.WorksheetResponse, len(recent))
	for i, built := range recent {
		out[i] = models.NewWorksheetResponse(built)
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"worksheets": out})
}

func (a *App) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":   "ok",
		"instance": a.instance,
		"uptime":   time.Since(a.startedAt).Round(time.Second).String(),
		"bank":     a.state.status().State,
	})
}
