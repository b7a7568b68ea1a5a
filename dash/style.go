package dash

import (
	"github.com/modav/charts"
)

const (
	TextBefore = "text-before"
	TextAfter  = "text-after"
)

// Style holds the drawing options of the lines of a chart.
type Style struct {
	Type    string  `yaml:"type"`
	Width   float64 `yaml:"width"`
	Markers bool    `yaml:"markers"`
	Marker  string  `yaml:"marker"`
	Text    string  `yaml:"text"`
}

func (s Style) getTextPosition() charts.TextPosition {
	var pos charts.TextPosition
	switch s.Text {
	case TextBefore:
		pos = charts.TextBefore
	case TextAfter:
		pos = charts.TextAfter
	default:
	}
	return pos
}

func (s Style) getMarker() charts.MarkerFunc {
	fn, ok := charts.ParseMarker(s.Marker)
	if !ok {
		return charts.Circle
	}
	return fn
}

func (s Style) lineOptions() charts.LineOptions {
	kind, _ := charts.ParseLineKind(s.Type)
	return charts.LineOptions{
		Kind:    kind,
		Markers: s.Markers || s.Marker != "",
		Marker:  s.getMarker(),
		Width:   s.Width,
		Text:    s.getTextPosition(),
	}
}
