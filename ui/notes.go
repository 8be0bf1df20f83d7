package ui

import (
	"fmt"
	"html/template"
	"io/fs"
	"os"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

const embeddedNotes = "ui/templates/notes.md"

// loadNotes renders the notes panel, preferring NotesFile over the embedded copy.
func (s *Server) loadNotes() (template.HTML, error) {
	var (
		src []byte
		err error
	)
	if s.opts.NotesFile != "" {
		src, err = os.ReadFile(s.opts.NotesFile)
		if err != nil {
			return "", fmt.Errorf("failed to read notes file %s: %w", s.opts.NotesFile, err)
		}
	} else {
		src, err = fs.ReadFile(s.files, embeddedNotes)
		if err != nil {
			s.logger.Debug("[Notes] No embedded notes: %v", err)
			return "", nil
		}
	}
	return RenderMarkdown(src), nil
}

// RenderMarkdown converts markdown to HTML. Raw HTML in the source is skipped.
func RenderMarkdown(src []byte) template.HTML {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	r := html.NewRenderer(html.RendererOptions{
		Flags: html.CommonFlags | html.HrefTargetBlank | html.SkipHTML,
	})
	return template.HTML(markdown.ToHTML(src, p, r))
}
