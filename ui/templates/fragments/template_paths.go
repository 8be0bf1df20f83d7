// Package fragments provides template path constants for organized template management
package fragments

import "strings"

// Template path constants for organized fragment access
const (
	// Pages
	IndexPage = "index.html"

	// Layout templates
	Header     = "layout/header.html"
	NotesPanel = "layout/notes_panel.html"

	// Control templates
	SiteDropdown  = "controls/site_dropdown.html"
	PayloadSlider = "controls/payload_slider.html"
)

// GetAllTemplatePaths returns all template paths for registration.
// Partials come first so pages can reference them.
func GetAllTemplatePaths() []string {
	return []string{
		// Layout
		Header,
		NotesPanel,

		// Controls
		SiteDropdown,
		PayloadSlider,

		// Pages
		IndexPage,
	}
}

// GetTemplateCategory returns the category for a given template path
func GetTemplateCategory(templatePath string) string {
	switch {
	case strings.HasPrefix(templatePath, "layout/"):
		return "layout"
	case strings.HasPrefix(templatePath, "controls/"):
		return "controls"
	case !strings.Contains(templatePath, "/"):
		return "page"
	default:
		return "unknown"
	}
}
