package charts

// Point is one datum plotted against both axes.
type Point struct {
	X Value
	Y Value
}

func NewPoint(x, y Value) Point {
	return Point{
		X: x,
		Y: y,
	}
}
