package template

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/invoicer/backend/internal/domain/shared"
)

// FontFamily is the typeface family a theme asks for
type FontFamily string

const (
	FontSans  FontFamily = "sans"
	FontSerif FontFamily = "serif"
	FontMono  FontFamily = "mono"
)

// Stack returns a CSS font stack for the family
func (f FontFamily) Stack() string {
	switch f {
	case FontSerif:
		return `Georgia, "Times New Roman", serif`
	case FontMono:
		return `"SFMono-Regular", Menlo, Consolas, monospace`
	default:
		return `-apple-system, "Helvetica Neue", Arial, sans-serif`
	}
}

// Theme holds the colour and typography parameters applied to a design
type Theme struct {
	ID              string     `json:"id" validate:"required,max=50,lowercase"`
	Name            string     `json:"name" validate:"required,max=100"`
	PrimaryColor    string     `json:"primary_color" validate:"required,hexcolor"`
	AccentColor     string     `json:"accent_color" validate:"required,hexcolor"`
	TextColor       string     `json:"text_color" validate:"required,hexcolor"`
	BackgroundColor string     `json:"background_color" validate:"required,hexcolor"`
	FontFamily      FontFamily `json:"font_family" validate:"required,oneof=sans serif mono"`
	// FontScale multiplies the base font size
	FontScale float64 `json:"font_scale" validate:"gte=0.75,lte=1.5"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks colours, font family and scale
func (t Theme) Validate() error {
	if err := validate.Struct(t); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return shared.NewInvalidInputError("theme."+toSnake(fe.Field()),
				fmt.Sprintf("failed on the '%s' rule", fe.Tag()))
		}
		return shared.NewInvalidInputError("theme", err.Error())
	}
	return nil
}

// IsZero reports whether t is the zero value
func (t Theme) IsZero() bool {
	return t.ID == ""
}

// NewCustomTheme builds and validates a user-defined theme
func NewCustomTheme(id, name, primary, accent, text, background string, font FontFamily, scale float64) (Theme, error) {
	t := Theme{
		ID:              strings.ToLower(strings.TrimSpace(id)),
		Name:            strings.TrimSpace(name),
		PrimaryColor:    primary,
		AccentColor:     accent,
		TextColor:       text,
		BackgroundColor: background,
		FontFamily:      font,
		FontScale:       scale,
	}
	if err := t.Validate(); err != nil {
		return Theme{}, err
	}
	return t, nil
}

// Theme catalog
var (
	ThemeClassicBlue = Theme{ID: "classic-blue", Name: "Classic Blue", PrimaryColor: "#1f4e8c", AccentColor: "#4a90d9", TextColor: "#1a1a1a", BackgroundColor: "#ffffff", FontFamily: FontSans, FontScale: 1}
	ThemeEmerald     = Theme{ID: "emerald", Name: "Emerald", PrimaryColor: "#0f7b5f", AccentColor: "#34c49a", TextColor: "#1c2622", BackgroundColor: "#ffffff", FontFamily: FontSans, FontScale: 1}
	ThemeCrimson     = Theme{ID: "crimson", Name: "Crimson", PrimaryColor: "#a4161a", AccentColor: "#e5383b", TextColor: "#161a1d", BackgroundColor: "#ffffff", FontFamily: FontSerif, FontScale: 1}
	ThemeCharcoal    = Theme{ID: "charcoal", Name: "Charcoal", PrimaryColor: "#333333", AccentColor: "#888888", TextColor: "#222222", BackgroundColor: "#fafafa", FontFamily: FontSans, FontScale: 0.95}
	ThemeSunset      = Theme{ID: "sunset", Name: "Sunset", PrimaryColor: "#e76f51", AccentColor: "#f4a261", TextColor: "#264653", BackgroundColor: "#fffaf5", FontFamily: FontSans, FontScale: 1.05}
	ThemeOcean       = Theme{ID: "ocean", Name: "Ocean", PrimaryColor: "#005f73", AccentColor: "#0a9396", TextColor: "#001219", BackgroundColor: "#ffffff", FontFamily: FontSans, FontScale: 1}
	ThemeLavender    = Theme{ID: "lavender", Name: "Lavender", PrimaryColor: "#5a189a", AccentColor: "#9d4edd", TextColor: "#240046", BackgroundColor: "#fcfaff", FontFamily: FontSerif, FontScale: 1}
	ThemeMonochrome  = Theme{ID: "monochrome", Name: "Monochrome", PrimaryColor: "#000000", AccentColor: "#000000", TextColor: "#000000", BackgroundColor: "#ffffff", FontFamily: FontMono, FontScale: 0.9}
)

var themeCatalog = []Theme{
	ThemeClassicBlue,
	ThemeEmerald,
	ThemeCrimson,
	ThemeCharcoal,
	ThemeSunset,
	ThemeOcean,
	ThemeLavender,
	ThemeMonochrome,
}

// AllThemes returns the built-in themes
func AllThemes() []Theme {
	out := make([]Theme, len(themeCatalog))
	copy(out, themeCatalog)
	return out
}

// ThemeByID looks a built-in theme up by its identifier
func ThemeByID(id string) (Theme, bool) {
	id = strings.ToLower(strings.TrimSpace(id))
	for _, t := range themeCatalog {
		if t.ID == id {
			return t, true
		}
	}
	return Theme{}, false
}

func toSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}
