package ui

import (
	"net/http"
	"strconv"
	"time"

	"questgen/domain/core"
	"questgen/domain/question"
	"questgen/internal/assembly"
	"questgen/models"

	"github.com/gin-gonic/gin"
)

// statusFor maps domain errors onto HTTP status codes
func statusFor(err error) int {
	switch {
	case core.IsNotFoundError(err):
		return http.StatusNotFound
	case core.IsValidationError(err):
		return http.StatusBadRequest
	case core.IsGenerationError(err):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// handleIndex renders the generator page. Before the bank finishes loading
// the page carries a loading card that polls the status endpoint.
func (s *Server) handleIndex(c *gin.Context) {
	data := gin.H{
		"Ready":             false,
		"Variations":        question.AllVariations(),
		"Levels":            question.AllLevels(),
		"DefaultLevel":      question.Level(s.cfg.Generator.DefaultLevel),
		"DefaultDifficulty": s.cfg.Generator.DefaultDifficulty,
	}

	if eng, ok := s.state.engine(); ok {
		data["Ready"] = true
		data["Groups"] = eng.Bank().Grouped()
		data["Summary"] = eng.Bank().Summarize()
	}

	s.renderTemplate(c, "index.html", data)
}

// handleWorksheetBuilder renders the assessment builder page
func (s *Server) handleWorksheetBuilder(c *gin.Context) {
	data := gin.H{
		"Ready":      false,
		"Variations": question.AllVariations(),
		"Levels":     question.AllLevels(),
	}

	if eng, ok := s.state.engine(); ok {
		data["Ready"] = true
		data["Skills"] = eng.Bank().Skills()
		data["Groups"] = eng.Bank().Grouped()
	}

	s.renderTemplate(c, "worksheets.html", data)
}

// handleHistoryPage renders the recent generations page
func (s *Server) handleHistoryPage(c *gin.Context) {
	s.renderTemplate(c, "history.html", gin.H{})
}

// handleWorksheetByCode serves the printable document for a share code
func (s *Server) handleWorksheetByCode(c *gin.Context) {
	_, assessments, ok := s.state.services()
	if !ok {
		c.String(http.StatusServiceUnavailable, "The question bank is still loading, try again shortly.")
		return
	}

	a, err := assessments.WorksheetByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		if core.IsNotFoundError(err) {
			c.String(http.StatusNotFound, "No worksheet under that code.")
			return
		}
		c.String(http.StatusInternalServerError, "Could not load the worksheet.")
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", assembly.RenderHTML(a))
}

// handleBankStatus reports the bank loading lifecycle
func (s *Server) handleBankStatus(c *gin.Context) {
	c.JSON(http.StatusOK, s.state.status())
}

// handleBankReload re-reads the data files without a restart. The current
// bank keeps serving until the new one is ready.
func (s *Server) handleBankReload(c *gin.Context) {
	if !s.state.reload() {
		c.JSON(http.StatusConflict, gin.H{"error": "A bank load is already running"})
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "reloading"})
}

// handleListContexts lists contexts grouped by category, filtered down to
// one variation's compatible set when ?variation= is given
func (s *Server) handleListContexts(c *gin.Context) {
	eng, ok := s.state.engine()
	if !ok {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Context bank is still loading"})
		return
	}

	raw := c.Query("variation")
	if raw == "" {
		c.JSON(http.StatusOK, gin.H{"groups": eng.Bank().Grouped()})
		return
	}

	v, err := question.ParseVariation(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"variation": v, "groups": eng.Bank().GroupedCompatible(v)})
}

// handleContextDetail returns one context's metadata
func (s *Server) handleContextDetail(c *gin.Context) {
	eng, ok := s.state.engine()
	if !ok {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Context bank is still loading"})
		return
	}

	ctx, err := eng.Bank().Get(core.ContextID(c.Param("id")))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, ctx)
}

// handleGenerate builds one question from a JSON request
func (s *Server) handleGenerate(c *gin.Context) {
	generator, _, ok := s.state.services()
	if !ok {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Context bank is still loading"})
		return
	}

	var req models.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	q, err := generator.Generate(c.Request.Context(), req.Params())
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.NewQuestionResponse(q, req.ShowAnswer))
}

// handleBuildWorksheet builds an assessment and returns its share code
// together with the rendered document
func (s *Server) handleBuildWorksheet(c *gin.Context) {
	_, assessments, ok := s.state.services()
	if !ok {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Context bank is still loading"})
		return
	}

	var req models.WorksheetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	a, err := assessments.BuildAssessment(c.Request.Context(), req.Spec())
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	resp := models.NewWorksheetResponse(a)
	resp.HTML = string(assembly.RenderHTML(a))
	c.JSON(http.StatusCreated, resp)
}

// handleQuestionHistory lists recent generations, answers included
func (s *Server) handleQuestionHistory(c *gin.Context) {
	generator, _, ok := s.state.services()
	if !ok {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Context bank is still loading"})
		return
	}

	limit, _ := strconv.Atoi(c.Query("limit"))
	recent, err := generator.RecentQuestions(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := make([]models.QuestionResponse, len(recent))
	for i, q := range recent {
		out[i] = models.NewQuestionResponse(q, true)
	}
	c.JSON(http.StatusOK, gin.H{"questions": out})
}

// handleWorksheetHistory lists recently built assessments
func (s *Server) handleWorksheetHistory(c *gin.Context) {
	_, assessments, ok := s.state.services()
	if !ok {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Context bank is still loading"})
		return
	}

	limit, _ := strconv.Atoi(c.Query("limit"))
	recent, err := assessments.RecentWorksheets(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := make([]models.WorksheetResponse, len(recent))
	for i, a := range recent {
		out[i] = models.NewWorksheetResponse(a)
	}
	c.JSON(http.StatusOK, gin.H{"worksheets": out})
}

// handleHealthz reports instance identity and bank readiness
func (s *Server) handleHealthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"instance": s.instance,
		"uptime":   time.Since(s.startedAt).Round(time.Second).String(),
		"bank":     s.state.status().State,
	})
}
