package template

import (
	"context"
	"fmt"
	"strings"

	"github.com/invoicer/backend/internal/domain/shared"
)

// Renderer turns an invoice document into a presentation-neutral view
// following one design and theme
type Renderer interface {
	Design() Design
	Theme() Theme
	Render(ctx context.Context, doc *Document) (*View, error)
}

// CompleteTemplate pairs a design with a theme
type CompleteTemplate struct {
	Design Design
	Theme  Theme
}

// DefaultTemplate is used when an invoice carries no template identifier
var DefaultTemplate = CompleteTemplate{Design: DesignModernClean, Theme: ThemeClassicBlue}

// ID returns the persisted identifier "<design-id>/<theme-id>"
func (t CompleteTemplate) ID() string {
	return t.Design.ID() + "/" + t.Theme.ID
}

// Renderer selects the renderer for the pair
func (t CompleteTemplate) Renderer() (Renderer, error) {
	return Select(t.Design, t.Theme)
}

// ParseTemplateID resolves an identifier produced by CompleteTemplate.ID.
// A bare design ID is paired with the default theme.
func ParseTemplateID(id string) (CompleteTemplate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return DefaultTemplate, nil
	}

	designID, themeID, hasTheme := strings.Cut(id, "/")
	design, ok := DesignByID(designID)
	if !ok {
		return CompleteTemplate{}, shared.NewUnknownDesignError(designID)
	}

	theme := DefaultTemplate.Theme
	if hasTheme {
		theme, ok = ThemeByID(themeID)
		if !ok {
			return CompleteTemplate{}, shared.NewDomainError(shared.CodeUnknownTheme,
				fmt.Sprintf("unknown template theme %q", themeID))
		}
	}
	return CompleteTemplate{Design: design, Theme: theme}, nil
}

// Select returns the renderer for a design, parameterised by theme.
// Every catalog design carries its layout, so the only failure for a
// design is the zero value. Custom themes are validated here.
func Select(design Design, theme Theme) (Renderer, error) {
	if design.IsZero() || design.layout.IsZero() {
		return nil, shared.NewUnknownDesignError(design.id)
	}
	if err := theme.Validate(); err != nil {
		return nil, err
	}
	return &blueprintRenderer{design: design, theme: theme}, nil
}
