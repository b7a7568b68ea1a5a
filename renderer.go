package charts

import (
	"cmp"
	"math"
	"slices"
)

const maxBarWidth = 50.0

// place resolves a point against both outputs. The category comes from the
// X value of the point and is laid out on the Y axis when horizontal is set.
func place(p Point, x, y DrawnOutput, horizontal bool) (float64, float64, bool) {
	cat, val := x, y
	if horizontal {
		cat, val = y, x
	}
	cx, ok := cat.Closest(p.X, !horizontal)
	if !ok {
		logger.Warn("point not found", "axis", "category", "value", p.X.String())
		return 0, 0, false
	}
	vx, ok := val.Closest(p.Y, horizontal)
	if !ok {
		logger.Warn("point not found", "axis", "value", "value", p.Y.String())
		return 0, 0, false
	}
	return cx, vx, true
}

func barWidth(cat DrawnOutput) float64 {
	gap := cat.gap()
	if gap <= 0 {
		return maxBarWidth
	}
	return math.Min(gap/2, maxBarWidth)
}

// bar gives the rectangle of a bar going from the axis line at base to
// value. Along is the pixel of its category and width its thickness.
func bar(along, base, value, width float64, horizontal bool) Rect {
	var (
		lo = math.Min(base, value)
		n  = math.Abs(value - base)
	)
	if horizontal {
		return NewRect(lo, along-width/2, n, width)
	}
	return NewRect(along-width/2, lo, width, n)
}

type BarOptions struct {
	Horizontal bool
}

type Bar struct {
	Point Point
	Title string
	Color string
}

func NewBar(p Point, title, color string) Bar {
	return Bar{
		Point: p,
		Title: title,
		Color: color,
	}
}

func (b Bar) Label() string {
	return b.Title
}

func (b Bar) Draw(s Surface, x, y DrawnOutput, opts BarOptions) {
	along, value, ok := place(b.Point, x, y, opts.Horizontal)
	if !ok {
		return
	}
	var (
		cat  = x
		base = x.AxisPos
	)
	if opts.Horizontal {
		cat, base = y, y.AxisPos
	}
	s.FillRect(bar(along, base, value, barWidth(cat), opts.Horizontal), b.Color)
}

func (b Bar) DrawLegend(s Surface, bounds Rect, color string, index int, _ BarOptions) {
	drawLegendEntry(s, legendRow(bounds, index), b.Color, color, b.Title)
}

type StackedOptions struct {
	Horizontal bool
	// LegendID is the ID of the bar drawing the legend of the chart. All the
	// bars share the same label to color mapping.
	LegendID int
}

// StackedBar is a bar split in segments. Fractions give the share of each
// segment in the total of the bar.
type StackedBar struct {
	ID        int
	Point     Point
	Fractions map[string]float64
	Colors    map[string]string
}

func NewStackedBar(id int, p Point, fractions map[string]float64, colors map[string]string) StackedBar {
	return StackedBar{
		ID:        id,
		Point:     p,
		Fractions: fractions,
		Colors:    colors,
	}
}

func (b StackedBar) Label() string {
	return ""
}

func (b StackedBar) InLegend(opts StackedOptions) bool {
	return b.ID == opts.LegendID && len(b.Colors) > 0
}

type Segment struct {
	Label    string
	Fraction float64
}

// Segments gives the segments of the bar, the largest first. Segments of
// equal share are ordered by label.
func (b StackedBar) Segments() []Segment {
	list := make([]Segment, 0, len(b.Fractions))
	for k, f := range b.Fractions {
		list = append(list, Segment{Label: k, Fraction: f})
	}
	slices.SortFunc(list, func(a, b Segment) int {
		if c := cmp.Compare(b.Fraction, a.Fraction); c != 0 {
			return c
		}
		return cmp.Compare(a.Label, b.Label)
	})
	return list
}

func (b StackedBar) color(label string) string {
	if c, ok := b.Colors[label]; ok {
		return c
	}
	return "black"
}

func (b StackedBar) Draw(s Surface, x, y DrawnOutput, opts StackedOptions) {
	along, value, ok := place(b.Point, x, y, opts.Horizontal)
	if !ok {
		return
	}
	var (
		cat  = x
		base = x.AxisPos
	)
	if opts.Horizontal {
		cat, base = y, y.AxisPos
	}
	var (
		width = barWidth(cat)
		total = value - base
	)
	for _, seg := range b.Segments() {
		next := base + seg.Fraction*total
		s.FillRect(bar(along, base, next, width, opts.Horizontal), b.color(seg.Label))
		base = next
	}
}

func (b StackedBar) DrawLegend(s Surface, bounds Rect, color string, _ int, _ StackedOptions) {
	labels := make([]string, 0, len(b.Colors))
	for k := range b.Colors {
		labels = append(labels, k)
	}
	slices.Sort(labels)
	for i, k := range labels {
		drawLegendEntry(s, legendRow(bounds, i), b.Colors[k], color, k)
	}
}
