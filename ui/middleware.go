package ui

import (
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
)

// setupMiddleware configures static file serving
func (s *Server) setupMiddleware() {
	staticFS, err := fs.Sub(s.files, "ui/static")
	if err != nil {
		s.logger.Warn("[Static] No static assets available: %v", err)
		s.router.GET("/static/*filepath", func(c *gin.Context) {
			c.String(http.StatusNotFound, "static assets not embedded")
		})
		return
	}
	s.logger.Debug("[Static] Serving static files from embedded FS at /static")
	s.router.StaticFS("/static", http.FS(staticFS))
}
