package charts

var DefaultSize float64 = 4

// MarkerFunc draws the marker of a point.
type MarkerFunc func(Surface, Pos, string)

func Circle(s Surface, pos Pos, color string) {
	s.FillCircle(pos, DefaultSize/2, color)
}

func Square(s Surface, pos Pos, color string) {
	half := DefaultSize / 2
	s.FillRect(NewRect(pos.X-half, pos.Y-half, DefaultSize, DefaultSize), color)
}

// Cross draws two strokes crossing at pos.
func Cross(s Surface, pos Pos, color string) {
	var (
		half   = DefaultSize / 2
		stroke = NewStroke(color, 1)
	)
	s.StrokeLine(NewPos(pos.X-half, pos.Y-half), NewPos(pos.X+half, pos.Y+half), stroke)
	s.StrokeLine(NewPos(pos.X-half, pos.Y+half), NewPos(pos.X+half, pos.Y-half), stroke)
}

func ParseMarker(str string) (MarkerFunc, bool) {
	switch str {
	case "", "circle":
		return Circle, true
	case "square":
		return Square, true
	case "cross":
		return Cross, true
	default:
		return nil, false
	}
}
