package ui

import (
	"net/http"
	"strconv"

	"questgen/domain/core"
	"questgen/domain/question"
	"questgen/internal/engine"
	"questgen/models"

	"github.com/gin-gonic/gin"
)

// handleFragmentContexts returns the context <select> options for the
// chosen variation, swapped in by HTMX when the variation changes
func (s *Server) handleFragmentContexts(c *gin.Context) {
	eng, ok := s.state.engine()
	if !ok {
		c.String(http.StatusServiceUnavailable, "loading")
		return
	}

	v, err := question.ParseVariation(c.Query("variation"))
	if err != nil {
		c.String(http.StatusBadRequest, "unknown variation")
		return
	}

	s.renderTemplate(c, "context_options.html", gin.H{
		"Groups": eng.Bank().GroupedCompatible(v),
	})
}

// handleFragmentGenerate builds one question from the generator form and
// returns the question card. The mode field distinguishes a plain generate
// from the two regenerate buttons on the card.
func (s *Server) handleFragmentGenerate(c *gin.Context) {
	generator, _, ok := s.state.services()
	if !ok {
		s.renderTemplate(c, "question_card.html", gin.H{"Error": "The question bank is still loading."})
		return
	}

	difficulty, _ := strconv.Atoi(c.PostForm("difficulty"))
	seed, _ := strconv.ParseInt(c.PostForm("seed"), 10, 64)
	params := engine.Params{
		Variation:  question.Variation(c.PostForm("variation")),
		ContextID:  core.ContextID(c.PostForm("context_id")),
		Level:      question.Level(c.PostForm("level")),
		Difficulty: question.Difficulty(difficulty),
		Seed:       seed,
	}

	var (
		q   *question.Question
		err error
	)
	switch c.PostForm("mode") {
	case "same_context":
		q, err = generator.Regenerate(c.Request.Context(), params)
	case "random_context":
		q, err = generator.RandomContext(c.Request.Context(), params)
	default:
		q, err = generator.Generate(c.Request.Context(), params)
	}

	if err != nil {
		s.renderTemplate(c, "question_card.html", gin.H{"Error": err.Error()})
		return
	}

	s.renderTemplate(c, "question_card.html", gin.H{
		"Q": models.NewQuestionResponse(q, true),
	})
}

// handleFragmentHistory returns the recent generations table body
func (s *Server) handleFragmentHistory(c *gin.Context) {
	generator, _, ok := s.state.services()
	if !ok {
		c.String(http.StatusServiceUnavailable, "loading")
		return
	}

	recent, err := generator.RecentQuestions(c.Request.Context(), 10)
	if err != nil {
		c.String(http.StatusInternalServerError, "history unavailable")
		return
	}

	out := make([]models.QuestionResponse, len(recent))
	for i, q := range recent {
		out[i] = models.NewQuestionResponse(q, true)
	}
	s.renderTemplate(c, "history_rows.html", gin.H{"Questions": out})
}
