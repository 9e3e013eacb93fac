package ui

import (
	"bytes"
	"log"

	"github.com/gin-gonic/gin"
)

// renderTemplate executes a template into a buffer first so a render error
// becomes a clean 500 instead of a half-written page
func (s *Server) renderTemplate(c *gin.Context, templateName string, data interface{}) {
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, templateName, data); err != nil {
		log.Printf("[Template] error rendering %s: %v", templateName, err)
		c.AbortWithStatusJSON(500, gin.H{"error": "Template rendering failed"})
		return
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Writer.WriteHeader(200)
	if _, err := buf.WriteTo(c.Writer); err != nil {
		log.Printf("[Template] error writing %s response: %v", templateName, err)
	}
}

// isHTMX reports whether the request came from an HTMX swap
func isHTMX(c *gin.Context) bool {
	return c.GetHeader("HX-Request") == "true"
}
