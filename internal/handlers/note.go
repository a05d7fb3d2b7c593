package handlers

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	ghhtml "github.com/yuin/goldmark/renderer/html"

	"worldforge/internal/contextutil"
	"worldforge/internal/service"
)

// NoteHandler serves project notes as rendered HTML pages.
type NoteHandler struct {
	worldService service.WorldService
	parser       goldmark.Markdown
	template     *template.Template
}

// notePageData holds template data for rendered note pages.
type notePageData struct {
	Title     string
	ProjectID int
	Type      string
	Content   template.HTML
}

// NewNoteHandler creates a new handler for serving notes.
func NewNoteHandler(worldService service.WorldService) *NoteHandler {
	tmpl := template.Must(template.New("note").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{.Title}} &middot; project {{.ProjectID}}</title>
  <style>
    body {
      font-family: Georgia, 'Times New Roman', serif;
      margin: 0 auto;
      padding: 2rem;
      max-width: 820px;
      line-height: 1.65;
      background: #f7f2e8;
      color: #2b2418;
    }
    header {
      border-bottom: 2px solid #c9b38a;
      margin-bottom: 1.5rem;
    }
    h1 {
      margin: 0 0 0.25rem;
      font-size: 2rem;
    }
    .meta {
      color: #7a6a4f;
      font-size: 0.9rem;
    }
    pre, code {
      font-family: Menlo, Consolas, monospace;
      background: #ece3d0;
      border-radius: 4px;
    }
    pre {
      padding: 0.75rem;
      overflow-x: auto;
    }
    blockquote {
      margin-left: 0;
      padding-left: 1rem;
      border-left: 3px solid #c9b38a;
      color: #5c4d33;
    }
  </style>
</head>
<body>
  <header>
    <h1>{{.Title}}</h1>
    <p class="meta">Project {{.ProjectID}}{{if .Type}} &middot; {{.Type}}{{end}}</p>
  </header>
  <article>{{.Content}}</article>
</body>
</html>`))

	return &NoteHandler{
		worldService: worldService,
		parser: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				extension.Table,
				extension.TaskList,
				extension.Strikethrough,
				extension.Linkify,
				extension.Typographer,
			),
			// Raw HTML in notes is escaped.
			goldmark.WithRendererOptions(
				ghhtml.WithHardWraps(),
			),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
		),
		template: tmpl,
	}
}

// ServeHTTP renders the requested note as HTML.
func (h *NoteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	projectID, err := intParam(r, "projectID")
	if err != nil {
		http.Error(w, "invalid project", http.StatusBadRequest)
		return
	}
	noteID, err := intParam(r, "noteID")
	if err != nil {
		http.Error(w, "invalid note", http.StatusBadRequest)
		return
	}

	note, err := h.worldService.GetNote(ctx, projectID, noteID)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to load note")
		return
	}

	htmlContent, err := h.renderMarkdown([]byte(note.Content))
	if err != nil {
		logger.ErrorContext(ctx, "failed to render markdown", "note_id", noteID, "error", err)
		http.Error(w, "failed to render note", http.StatusInternalServerError)
		return
	}

	pageData := notePageData{
		Title:     note.Title,
		ProjectID: projectID,
		Type:      note.Type,
		Content:   template.HTML(htmlContent),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.template.Execute(w, pageData); err != nil {
		logger.ErrorContext(ctx, "failed to execute note template", "note_id", noteID, "error", err)
		http.Error(w, "failed to render note", http.StatusInternalServerError)
		return
	}
}

func (h *NoteHandler) renderMarkdown(content []byte) (string, error) {
	var buf bytes.Buffer
	if err := h.parser.Convert(content, &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return buf.String(), nil
}
