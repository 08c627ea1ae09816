package theme

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Swatch saturation/lightness. The picker preview renders the raw hue at
// these fixed values so the swatch tracks the slider continuously.
const (
	swatchSat   = 0.70
	swatchLight = 0.55
)

// Styles holds the display colors derived from a theme's anchor hue.
type Styles struct {
	BG     lipgloss.Color
	FG     lipgloss.Color
	Muted  lipgloss.Color
	Accent lipgloss.Color
	Cursor lipgloss.Color
}

// NewStyles derives the full role set for a theme.
func NewStyles(t Theme) Styles {
	h := AnchorHue(t)
	return Styles{
		BG:     hslColor(h, 0.45, 0.08),
		FG:     hslColor(h, 0.25, 0.85),
		Muted:  hslColor(h, 0.30, 0.35),
		Accent: hslColor(h, swatchSat, swatchLight),
		Cursor: hslColor(h, 0.85, 0.65),
	}
}

// Swatch returns the preview color for an arbitrary hue.
func Swatch(hue float64) lipgloss.Color {
	return hslColor(hue, swatchSat, swatchLight)
}

func hslColor(h, s, l float64) lipgloss.Color {
	return lipgloss.Color(colorful.Hsl(h, s, l).Hex())
}
