package ui

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"math"
	"strings"

	"launchdash/ui/templates/fragments"

	"github.com/gin-gonic/gin"
)

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"kg": func(v float64) string { return fmt.Sprintf("%.0f kg", v) },
		// Slider ends are widened to whole steps; the API clamps them back.
		"floorStep": func(v, step float64) float64 { return math.Floor(v/step) * step },
		"ceilStep":  func(v, step float64) float64 { return math.Ceil(v/step) * step },
		"upper":     strings.ToUpper,
	}
}

// parseTemplates loads every registered template from ui/templates.
func (s *Server) parseTemplates() error {
	templatesFS, err := fs.Sub(s.files, "ui/templates")
	if err != nil {
		return fmt.Errorf("failed to create templates filesystem: %w", err)
	}

	s.templates = template.New("").Funcs(templateFuncs())
	for _, name := range fragments.GetAllTemplatePaths() {
		content, err := fs.ReadFile(templatesFS, name)
		if err != nil {
			return fmt.Errorf("failed to read template %s: %w", name, err)
		}
		if _, err := s.templates.New(name).Parse(string(content)); err != nil {
			return fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		s.logger.Trace("[TemplateInit] Parsed %s template %s", fragments.GetTemplateCategory(name), name)
	}
	return nil
}

// renderTemplate executes a template with the given data
func (s *Server) renderTemplate(c *gin.Context, templateName string, data interface{}) {
	// Render to a buffer first so a failing template never sends a partial page
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, templateName, data); err != nil {
		s.logger.Error("[Template] %s failed: %v", templateName, err)
		c.AbortWithStatusJSON(500, gin.H{"error": "Template rendering failed", "details": err.Error()})
		return
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Writer.WriteHeader(200)
	if _, err := buf.WriteTo(c.Writer); err != nil {
		s.logger.Warn("[Template] Error writing %s response: %v", templateName, err)
	}
}
