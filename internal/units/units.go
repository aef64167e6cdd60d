// Package units converts values between units of the same measure.
package units

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Unit maps a value to its measure's base unit as v*factor + offset.
type Unit struct {
	Abbr   string
	Name   string
	factor float64
	offset float64
}

func (u Unit) toBase(v float64) float64 {
	return v*u.factor + u.offset
}

func (u Unit) fromBase(v float64) float64 {
	return (v - u.offset) / u.factor
}

type Measure struct {
	Name  string
	Units []Unit
}

func unit(abbr, name string, factor float64) Unit {
	return Unit{Abbr: abbr, Name: name, factor: factor}
}

var Measures = []Measure{
	{"length", []Unit{
		unit("mm", "Millimeter", 0.001),
		unit("cm", "Centimeter", 0.01),
		unit("m", "Meter", 1),
		unit("km", "Kilometer", 1000),
		unit("in", "Inch", 0.0254),
		unit("ft", "Foot", 0.3048),
		unit("yd", "Yard", 0.9144),
		unit("mi", "Mile", 1609.344),
	}},
	{"area", []Unit{
		unit("mm2", "Square Millimeter", 1e-6),
		unit("cm2", "Square Centimeter", 1e-4),
		unit("m2", "Square Meter", 1),
		unit("ha", "Hectare", 1e4),
		unit("km2", "Square Kilometer", 1e6),
		unit("in2", "Square Inch", 0.00064516),
		unit("ft2", "Square Foot", 0.09290304),
		unit("ac", "Acre", 4046.8564224),
		unit("mi2", "Square Mile", 2589988.110336),
	}},
	{"mass", []Unit{
		unit("mg", "Milligram", 0.001),
		unit("g", "Gram", 1),
		unit("kg", "Kilogram", 1000),
		unit("t", "Metric Tonne", 1e6),
		unit("oz", "Ounce", 28.349523125),
		unit("lb", "Pound", 453.59237),
	}},
	{"volume", []Unit{
		unit("ml", "Millilitre", 0.001),
		unit("l", "Litre", 1),
		unit("m3", "Cubic Meter", 1000),
		unit("tsp", "Teaspoon", 0.00492892159375),
		unit("Tbs", "Tablespoon", 0.01478676478125),
		unit("cup", "Cup", 0.2365882365),
		unit("pnt", "Pint", 0.473176473),
		unit("qt", "Quart", 0.946352946),
		unit("gal", "Gallon", 3.785411784),
	}},
	{"temperature", []Unit{
		unit("C", "Degrees Celsius", 1),
		{Abbr: "F", Name: "Degrees Fahrenheit", factor: 5.0 / 9, offset: -160.0 / 9},
		{Abbr: "K", Name: "Degrees Kelvin", factor: 1, offset: -273.15},
	}},
	{"time", []Unit{
		unit("ms", "Millisecond", 0.001),
		unit("s", "Second", 1),
		unit("min", "Minute", 60),
		unit("h", "Hour", 3600),
		unit("d", "Day", 86400),
		unit("week", "Week", 604800),
		unit("month", "Month", 2628000),
		unit("year", "Year", 31536000),
	}},
	{"speed", []Unit{
		unit("m/s", "Metre per second", 1),
		unit("km/h", "Kilometre per hour", 1 / 3.6),
		unit("m/h", "Mile per hour", 0.44704),
		unit("knot", "Knot", 1852.0 / 3600),
		unit("ft/s", "Foot per second", 0.3048),
	}},
	{"digital", []Unit{
		unit("b", "Bit", 1),
		unit("Kb", "Kilobit", 1 << 10),
		unit("Mb", "Megabit", 1 << 20),
		unit("Gb", "Gigabit", 1 << 30),
		unit("Tb", "Terabit", 1 << 40),
		unit("B", "Byte", 8),
		unit("KB", "Kilobyte", 8 << 10),
		unit("MB", "Megabyte", 8 << 20),
		unit("GB", "Gigabyte", 8 << 30),
		unit("TB", "Terabyte", 8 << 40),
	}},
	{"pressure", []Unit{
		unit("Pa", "Pascal", 1),
		unit("kPa", "Kilopascal", 1000),
		unit("MPa", "Megapascal", 1e6),
		unit("bar", "Bar", 1e5),
		unit("torr", "Torr", 101325.0 / 760),
		unit("psi", "Pound per square inch", 6894.757293168),
	}},
}

// Title is the measure name as shown on the page.
func (m *Measure) Title() string {
	return strings.ToUpper(m.Name[:1]) + m.Name[1:]
}

// Find looks a unit up by abbreviation. Case only matters where two units
// differ by case alone, as with bits and bytes.
func (m *Measure) Find(abbr string) (Unit, bool) {
	abbr = strings.TrimSpace(abbr)
	for _, u := range m.Units {
		if u.Abbr == abbr {
			return u, true
		}
	}
	var found []Unit
	for _, u := range m.Units {
		if strings.EqualFold(u.Abbr, abbr) {
			found = append(found, u)
		}
	}
	if len(found) == 1 {
		return found[0], true
	}
	return Unit{}, false
}

// Next returns the unit after abbr, wrapping around.
func (m *Measure) Next(abbr string) Unit {
	for i, u := range m.Units {
		if u.Abbr == abbr {
			return m.Units[(i+1)%len(m.Units)]
		}
	}
	return m.Units[0]
}

// Convert converts v between two units of m.
func (m *Measure) Convert(v float64, from, to string) (float64, error) {
	src, ok := m.Find(from)
	if !ok {
		return 0, fmt.Errorf("Unsupported %s unit %q", m.Name, from)
	}
	dst, ok := m.Find(to)
	if !ok {
		return 0, fmt.Errorf("Unsupported %s unit %q", m.Name, to)
	}
	if src.Abbr == dst.Abbr {
		return v, nil
	}
	return dst.fromBase(src.toBase(v)), nil
}

// ParseValue accepts decimal and exponent notation.
func ParseValue(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("Invalid number %q", raw)
	}
	return v, nil
}

// Format prints v with up to 12 significant digits, trimming float noise such
// as 0.30000000000000004.
func Format(v float64) string {
	if v == 0 {
		return "0"
	}
	abs := math.Abs(v)
	if abs >= 1e21 || abs < 1e-7 {
		return strconv.FormatFloat(v, 'g', 12, 64)
	}
	r, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'g', 12, 64), 64)
	return strconv.FormatFloat(r, 'f', -1, 64)
}
