package rendering

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"maps"
	"strings"

	domaintemplate "github.com/invoicer/backend/internal/domain/template"
)

//go:embed templates/*.html
var templateFS embed.FS

const partialsFile = "templates/partials.html"

// Error codes for rendering failures
const (
	ErrCodeRenderFailed   = "RENDER_FAILED"
	ErrCodeInvalidHTML    = "INVALID_HTML"
	ErrCodeUnknownLayout  = "UNKNOWN_LAYOUT"
	ErrCodeRenderCanceled = "RENDER_CANCELED"
)

// RenderError represents an error during HTML rendering
type RenderError struct {
	Code    string
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

// NewRenderError creates a new RenderError
func NewRenderError(code, message string, cause error) *RenderError {
	return &RenderError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// HTMLRenderer renders template views into standalone HTML documents.
// Each layout has its own page file; shared blocks live in partials.html.
type HTMLRenderer struct {
	funcMap template.FuncMap
	pages   map[string]*template.Template
}

// HTMLRendererOption configures the renderer
type HTMLRendererOption func(*HTMLRenderer)

// WithFuncs adds extra template functions
func WithFuncs(funcs template.FuncMap) HTMLRendererOption {
	return func(r *HTMLRenderer) {
		maps.Copy(r.funcMap, funcs)
	}
}

// NewHTMLRenderer parses the embedded page of every layout.
// A layout without a page file is an error.
func NewHTMLRenderer(opts ...HTMLRendererOption) (*HTMLRenderer, error) {
	r := &HTMLRenderer{
		funcMap: template.FuncMap{
			"upper":   strings.ToUpper,
			"safeCSS": safeCSS,
		},
		pages: make(map[string]*template.Template),
	}
	for _, opt := range opts {
		opt(r)
	}

	base, err := template.New("partials").Funcs(r.funcMap).ParseFS(templateFS, partialsFile)
	if err != nil {
		return nil, NewRenderError(ErrCodeInvalidHTML, "failed to parse partials", err)
	}

	for _, layout := range domaintemplate.AllLayouts() {
		page, err := base.Clone()
		if err != nil {
			return nil, NewRenderError(ErrCodeInvalidHTML, "failed to clone partials", err)
		}
		if _, err := page.ParseFS(templateFS, pageFile(layout.ID())); err != nil {
			return nil, NewRenderError(ErrCodeInvalidHTML,
				fmt.Sprintf("failed to parse page for layout %q", layout.ID()), err)
		}
		r.pages[layout.ID()] = page
	}
	return r, nil
}

// RenderHTML renders view with the page of its layout
func (r *HTMLRenderer) RenderHTML(ctx context.Context, view *domaintemplate.View) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", NewRenderError(ErrCodeRenderCanceled, "render canceled", err)
	}
	if view == nil {
		return "", NewRenderError(ErrCodeRenderFailed, "view is nil", nil)
	}
	page, ok := r.pages[view.Layout]
	if !ok {
		return "", NewRenderError(ErrCodeUnknownLayout, fmt.Sprintf("no page for layout %q", view.Layout), nil)
	}

	var buf bytes.Buffer
	if err := page.ExecuteTemplate(&buf, "page", view); err != nil {
		return "", NewRenderError(ErrCodeRenderFailed, "failed to execute template", err)
	}
	return buf.String(), nil
}

// Layouts returns the layout IDs the renderer has pages for
func (r *HTMLRenderer) Layouts() []string {
	ids := make([]string, 0, len(r.pages))
	for _, layout := range domaintemplate.AllLayouts() {
		if _, ok := r.pages[layout.ID()]; ok {
			ids = append(ids, layout.ID())
		}
	}
	return ids
}

func pageFile(layoutID string) string {
	return "templates/" + layoutID + ".html"
}

// safeCSS marks a theme value as safe for a style attribute. Values reach
// here only after theme validation.
func safeCSS(s string) template.CSS {
	return template.CSS(s)
}
