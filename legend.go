package charts

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var ErrLegend = errors.New("unknown legend position")

type LegendPosition int

const (
	LegendTopLeft LegendPosition = iota
	LegendTopCenter
	LegendTopRight
	LegendCenterLeft
	LegendCenter
	LegendCenterRight
	LegendBottomLeft
	LegendBottomCenter
	LegendBottomRight
	LegendNone
)

const DefaultLegend = LegendTopRight

var legendNames = map[LegendPosition]string{
	LegendTopLeft:      "top-left",
	LegendTopCenter:    "top-center",
	LegendTopRight:     "top-right",
	LegendCenterLeft:   "center-left",
	LegendCenter:       "center",
	LegendCenterRight:  "center-right",
	LegendBottomLeft:   "bottom-left",
	LegendBottomCenter: "bottom-center",
	LegendBottomRight:  "bottom-right",
	LegendNone:         "none",
}

func (p LegendPosition) String() string {
	if str, ok := legendNames[p]; ok {
		return str
	}
	return "unknown"
}

// ParseLegendPosition accepts the names given by String. Spaces and
// underscores may be used instead of the dash. An empty string gives the
// default position.
func ParseLegendPosition(str string) (LegendPosition, error) {
	str = strings.ToLower(strings.TrimSpace(str))
	if str == "" {
		return DefaultLegend, nil
	}
	str = strings.NewReplacer(" ", "-", "_", "-").Replace(str)
	for p, name := range legendNames {
		if name == str {
			return p, nil
		}
	}
	return LegendNone, fmt.Errorf("%w: %s", ErrLegend, str)
}

func (p LegendPosition) Visible() bool {
	return p != LegendNone && p.String() != "unknown"
}

// Position gives the top left corner of a legend box of the given size
// placed inside bounds. LegendNone gives a point at positive infinity.
func (p LegendPosition) Position(bounds Rect, size Size) Pos {
	if !p.Visible() {
		return NewPos(math.Inf(1), math.Inf(1))
	}
	var (
		padx   = bounds.W * 0.01
		pady   = bounds.H * 0.01
		corner = math.Max(padx, pady)
		left   = bounds.X
		right  = bounds.Right() - size.W
		top    = bounds.Y
		bottom = bounds.Bottom() - size.H
		midx   = bounds.X + (bounds.W-size.W)/2
		midy   = bounds.Y + (bounds.H-size.H)/2
		pos    Pos
	)
	switch p {
	case LegendTopLeft:
		pos = NewPos(left+corner, top+corner)
	case LegendTopCenter:
		pos = NewPos(midx, top+pady)
	case LegendTopRight:
		pos = NewPos(right-corner, top+corner)
	case LegendCenterLeft:
		pos = NewPos(left+padx, midy)
	case LegendCenter:
		pos = NewPos(midx, midy)
	case LegendCenterRight:
		pos = NewPos(right-padx, midy)
	case LegendBottomLeft:
		pos = NewPos(left+corner, bottom-corner)
	case LegendBottomCenter:
		pos = NewPos(midx, bottom-pady)
	case LegendBottomRight:
		pos = NewPos(right-corner, bottom-corner)
	}
	pos.X = clamp(pos.X, left, right)
	pos.Y = clamp(pos.Y, top, bottom)
	return pos
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	return math.Max(lo, math.Min(v, hi))
}

const (
	legendMaxWidth = 175
	legendHeader   = 25
	legendRowSize  = 20
	legendPadX     = 5
	legendPadY     = 2.5
)

// LegendSize gives the size of a legend box showing the given number of
// rows inside bounds.
func LegendSize(bounds Rect, rows int) Size {
	return NewSize(
		math.Min(bounds.W*0.15, legendMaxWidth),
		legendHeader+legendRowSize*float64(rows),
	)
}
