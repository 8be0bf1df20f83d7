package ui

import (
	"html/template"
	"net/http"
	"time"

	"launchdash/domain/launch"
	"launchdash/internal/api"

	"github.com/gin-gonic/gin"
)

// IndexPageData feeds the dashboard template.
type IndexPageData struct {
	Title      string
	Sites      []api.SiteOption
	Default    string
	Slider     api.Slider
	Summary    launch.PayloadSummary
	Records    int
	SnapshotID string
	Source     string
	Notes      template.HTML
}

// handleIndex renders the dashboard with controls at their defaults.
func (s *Server) handleIndex(c *gin.Context) {
	ds := s.result.Dataset
	s.renderTemplate(c, "index.html", IndexPageData{
		Title:      s.opts.Title,
		Sites:      api.SiteOptions(ds),
		Default:    launch.AllSites,
		Slider:     api.NewSlider(ds, s.opts.PayloadStep),
		Summary:    s.result.Summary,
		Records:    ds.Len(),
		SnapshotID: ds.ID().String(),
		Source:     ds.Source(),
		Notes:      s.notes,
	})
}

func (s *Server) handleHealth(c *gin.Context) {
	ds := s.result.Dataset
	c.JSON(http.StatusOK, gin.H{
		"status":      "ok",
		"snapshot_id": ds.ID().String(),
		"fingerprint": ds.Fingerprint().Short(),
		"records":     ds.Len(),
		"loaded_at":   ds.LoadedAt().Format(time.RFC3339),
	})
}
