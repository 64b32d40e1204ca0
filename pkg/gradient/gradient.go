// Package gradient resolves colors along piecewise-linear multi-stop gradients.
//
// Stops are static configuration; Resolve and Mix are pure and never fail.
// Out-of-range inputs are clamped rather than rejected.
package gradient

// ColorStop anchors a color at a position in [0,1].
type ColorStop struct {
	Position float64
	Color    RGB
}

// Stops is an ordered list of color stops, ascending by position.
type Stops []ColorStop

// DefaultHeadline is the headline gradient used by the hero section.
var DefaultHeadline = Stops{
	{Position: 0, Color: RGB{R: 37, G: 99, B: 235}},
	{Position: 0.32, Color: RGB{R: 56, G: 189, B: 248}},
	{Position: 0.68, Color: RGB{R: 168, G: 85, B: 247}},
	{Position: 1, Color: RGB{R: 236, G: 72, B: 153}},
}

// Resolve returns the color at t along stops.
//
// An empty list resolves to White. Two stops sharing a position form a
// zero-width segment whose denominator is taken as 1, which snaps to the
// earlier stop's color.
func Resolve(stops Stops, t float64) RGB {
	if len(stops) == 0 {
		return White
	}

	t = clamp01(t)
	if t <= stops[0].Position {
		return stops[0].Color
	}

	for i := 1; i < len(stops); i++ {
		cur := stops[i]
		if cur.Position < t {
			continue
		}
		prev := stops[i-1]
		span := cur.Position - prev.Position
		if span == 0 {
			span = 1
		}
		return Mix(prev.Color, cur.Color, (t-prev.Position)/span)
	}

	return stops[len(stops)-1].Color
}

// Resolve is a convenience wrapper around the package-level Resolve.
func (s Stops) Resolve(t float64) RGB {
	return Resolve(s, t)
}

// Position maps a character index to its gradient position across length characters.
func Position(index, length int) float64 {
	if length <= 1 {
		return 0
	}
	return clamp01(float64(index) / float64(length-1))
}

// Colorize returns one resolved color per rune of text.
func Colorize(stops Stops, text string) []RGB {
	runes := []rune(text)
	colors := make([]RGB, len(runes))
	for i := range runes {
		colors[i] = Resolve(stops, Position(i, len(runes)))
	}
	return colors
}
