package charts

import (
	"github.com/midbel/slices"
)

type TextPosition int

const (
	TextNone TextPosition = iota
	TextBefore
	TextAfter
)

// LineKind tells which parts of a line are drawn.
type LineKind int

const (
	LineStroke LineKind = iota
	LinePoint
	LineStrokePoint
)

// ParseLineKind accepts "line", "point" and "line-point". An empty string
// gives LineStroke.
func ParseLineKind(str string) (LineKind, bool) {
	switch str {
	case "", "line":
		return LineStroke, true
	case "point":
		return LinePoint, true
	case "line-point":
		return LineStrokePoint, true
	default:
		return LineStroke, false
	}
}

func (k LineKind) segments() bool {
	return k != LinePoint
}

func (k LineKind) points() bool {
	return k != LineStroke
}

type LineOptions struct {
	Kind    LineKind
	Markers bool
	Marker  MarkerFunc
	Width   float64
	Text    TextPosition
}

// Line is a serie of points joined by segments.
type Line struct {
	Title  string
	Color  string
	Points []Point
}

func NewLine(title, color string, points []Point) Line {
	return Line{
		Title:  title,
		Color:  color,
		Points: points,
	}
}

func (i Line) Label() string {
	return i.Title
}

// Draw joins the points it can locate on both axes. Points that can not be
// located are skipped and the line continues from the last drawn point.
// With LinePoint, only the markers are drawn.
func (i Line) Draw(s Surface, x, y DrawnOutput, opts LineOptions) {
	var (
		stroke = NewStroke(i.Color, opts.Width)
		marker = opts.Marker
		pos    []Pos
	)
	if stroke.Width <= 0 {
		stroke.Width = 1
	}
	if marker == nil {
		marker = Circle
	}
	for _, pt := range i.Points {
		px, ok := x.Closest(pt.X, true)
		if !ok {
			logger.Warn("point not found", "line", i.Title, "axis", "x", "value", pt.X.String())
			continue
		}
		py, ok := y.Closest(pt.Y, false)
		if !ok {
			logger.Warn("point not found", "line", i.Title, "axis", "y", "value", pt.Y.String())
			continue
		}
		pos = append(pos, NewPos(px, py))
	}
	for j := 1; opts.Kind.segments() && j < len(pos); j++ {
		s.StrokeLine(pos[j-1], pos[j], stroke)
	}
	if opts.Markers || opts.Kind.points() {
		for _, p := range pos {
			marker(s, p, i.Color)
		}
	}
	if len(pos) == 0 {
		return
	}
	switch opts.Text {
	case TextBefore:
		s.FillText(lineText(i.Title, i.Color, slices.Fst(pos), true))
	case TextAfter:
		s.FillText(lineText(i.Title, i.Color, slices.Lst(pos), false))
	default:
	}
}

func (i Line) DrawLegend(s Surface, bounds Rect, color string, index int, _ LineOptions) {
	drawLegendEntry(s, legendRow(bounds, index), i.Color, color, i.Title)
}

func lineText(str, color string, pos Pos, before bool) Text {
	txt := Text{
		Content:  str,
		Pos:      pos,
		Size:     FontSize,
		Color:    color,
		Anchor:   AnchorEnd,
		Baseline: BaselineMiddle,
	}
	if !before {
		txt.Anchor = AnchorStart
		txt.Pos.X += FontSize * 0.4
	} else {
		txt.Pos.X -= FontSize * 0.4
	}
	return txt
}
