// Package gradient builds CSS gradients from color stops.
package gradient

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

type Kind int

const (
	Linear Kind = iota
	Radial
)

func (k Kind) String() string {
	if k == Radial {
		return "Radial"
	}
	return "Linear"
}

type Stop struct {
	Color    colorful.Color
	Hex      string
	Position int
}

type Gradient struct {
	Kind  Kind
	Angle int
	X, Y  int
	Stops []Stop
}

// Default is red to blue at 90 degrees.
func Default() Gradient {
	g := Gradient{Angle: 90, X: 50, Y: 50}
	g.Stops, _ = ParseStops(DefaultStops)
	return g
}

const DefaultStops = "#FF0000 0, #0000FF 100"

// ParseStops reads a comma separated list of "color position" pairs, like
// "#FF0000 0, #00FF00 50". Stops come back sorted by position.
func ParseStops(raw string) ([]Stop, error) {
	var stops []Stop
	for _, part := range strings.Split(raw, ",") {
		fields := strings.Fields(part)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return nil, fmt.Errorf("Invalid color stop %q", strings.TrimSpace(part))
		}
		c, err := colorful.Hex(fields[0])
		if err != nil {
			return nil, fmt.Errorf("Invalid color %q", fields[0])
		}
		pos, err := percent(strings.TrimSuffix(fields[1], "%"))
		if err != nil {
			return nil, err
		}
		stops = append(stops, Stop{Color: c, Hex: strings.ToUpper(fields[0]), Position: pos})
	}
	if len(stops) < 2 {
		return nil, fmt.Errorf("A gradient needs at least two color stops")
	}
	sort.SliceStable(stops, func(i, j int) bool {
		return stops[i].Position < stops[j].Position
	})
	return stops, nil
}

func percent(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > 100 {
		return 0, fmt.Errorf("Position must be between 0 and 100, got %q", s)
	}
	return n, nil
}

func ParseAngle(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSuffix(strings.TrimSpace(raw), "deg"))
	if err != nil || n < 0 || n > 360 {
		return 0, fmt.Errorf("Angle must be between 0 and 360")
	}
	return n, nil
}

// ParseCenter reads a radial center as "x y" percentages.
func ParseCenter(raw string) (x, y int, err error) {
	fields := strings.Fields(raw)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("Center must be two percentages, like \"50 50\"")
	}
	if x, err = percent(strings.TrimSuffix(fields[0], "%")); err != nil {
		return 0, 0, err
	}
	if y, err = percent(strings.TrimSuffix(fields[1], "%")); err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

func (g Gradient) CSS() string {
	stops := make([]string, len(g.Stops))
	for i, s := range g.Stops {
		stops[i] = fmt.Sprintf("%s %d%%", s.Hex, s.Position)
	}
	if g.Kind == Radial {
		return fmt.Sprintf("radial-gradient(at %d%% %d%%, %s)", g.X, g.Y, strings.Join(stops, ", "))
	}
	return fmt.Sprintf("linear-gradient(%ddeg, %s)", g.Angle, strings.Join(stops, ", "))
}

// At returns the color at position p in [0, 100], blended in Lab space.
// Before the first stop and after the last one the color is flat.
func (g Gradient) At(p float64) colorful.Color {
	first, last := g.Stops[0], g.Stops[len(g.Stops)-1]
	if p <= float64(first.Position) {
		return first.Color
	}
	if p >= float64(last.Position) {
		return last.Color
	}
	for i := 1; i < len(g.Stops); i++ {
		a, b := g.Stops[i-1], g.Stops[i]
		if p > float64(b.Position) {
			continue
		}
		span := float64(b.Position - a.Position)
		if span == 0 {
			return b.Color
		}
		return a.Color.BlendLab(b.Color, (p-float64(a.Position))/span).Clamped()
	}
	return last.Color
}

// Samples returns n evenly spaced colors from start to end of the gradient.
func (g Gradient) Samples(n int) []colorful.Color {
	out := make([]colorful.Color, n)
	for i := range out {
		p := 50.0
		if n > 1 {
			p = float64(i) * 100 / float64(n-1)
		}
		out[i] = g.At(p)
	}
	return out
}
