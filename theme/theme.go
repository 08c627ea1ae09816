package theme

import "math"

// Theme is one of the fixed named color identities of the UI.
type Theme string

const (
	Purple Theme = "purple"
	Pink   Theme = "pink"
	Red    Theme = "red"
	Orange Theme = "orange"
	Green  Theme = "green"
	Cyan   Theme = "cyan"
	Blue   Theme = "blue"
)

// anchor pairs a theme with its canonical hue on the 0-360 circle.
type anchor struct {
	theme Theme
	hue   float64
}

// anchors is the nearest-neighbor table. Order matters: when two anchors
// are exactly equidistant from a hue, the earlier entry wins.
var anchors = [...]anchor{
	{Purple, 280},
	{Pink, 320},
	{Red, 0},
	{Orange, 30},
	{Green, 140},
	{Cyan, 190},
	{Blue, 220},
}

// anchorHues is the inverse lookup. Kept as its own table rather than
// derived from anchors at runtime.
var anchorHues = map[Theme]float64{
	Purple: 280,
	Pink:   320,
	Red:    0,
	Orange: 30,
	Green:  140,
	Cyan:   190,
	Blue:   220,
}

// Themes returns every theme in declaration order.
func Themes() []Theme {
	out := make([]Theme, len(anchors))
	for i, a := range anchors {
		out[i] = a.theme
	}
	return out
}

// Resolve maps any hue to the nearest theme on the color circle. Values
// outside [0,360) wrap, so Resolve is total over the reals.
func Resolve(hue float64) Theme {
	h := math.Mod(hue, 360)
	if h < 0 {
		h += 360
	}

	best := anchors[0].theme
	bestDist := math.MaxFloat64
	for _, a := range anchors {
		d := math.Abs(a.hue - h)
		if d > 180 {
			d = 360 - d // shorter arc
		}
		if d < bestDist {
			bestDist = d
			best = a.theme
		}
	}
	return best
}

// AnchorHue returns the canonical hue for a theme.
func AnchorHue(t Theme) float64 {
	return anchorHues[t]
}
