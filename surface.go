package charts

// Pos is a pixel position, Y growing downward.
type Pos struct {
	X float64
	Y float64
}

func NewPos(x, y float64) Pos {
	return Pos{
		X: x,
		Y: y,
	}
}

type Size struct {
	W float64
	H float64
}

func NewSize(w, h float64) Size {
	return Size{
		W: w,
		H: h,
	}
}

type Rect struct {
	Pos
	Size
}

func NewRect(x, y, w, h float64) Rect {
	return Rect{
		Pos:  NewPos(x, y),
		Size: NewSize(w, h),
	}
}

func (r Rect) Right() float64 {
	return r.X + r.W
}

func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

type Stroke struct {
	Color   string
	Width   float64
	Opacity float64
}

func NewStroke(color string, width float64) Stroke {
	return Stroke{
		Color: color,
		Width: width,
	}
}

const (
	AnchorStart  = "start"
	AnchorMiddle = "middle"
	AnchorEnd    = "end"

	BaselineAuto    = "auto"
	BaselineMiddle  = "middle"
	BaselineHanging = "hanging"
)

type Text struct {
	Content  string
	Pos      Pos
	Size     float64
	Color    string
	Anchor   string
	Baseline string
	// Rotate is an angle in degrees around Pos.
	Rotate float64
	Italic bool
}

// Surface is the drawing capability the engine renders through.
type Surface interface {
	Width() float64
	Height() float64

	StrokeLine(Pos, Pos, Stroke)
	StrokeRect(Rect, Stroke)
	FillRect(Rect, string)
	FillCircle(Pos, float64, string)
	FillText(Text)
}

type discard struct {
	width  float64
	height float64
}

func (d discard) Width() float64 {
	return d.width
}

func (d discard) Height() float64 {
	return d.height
}

func (discard) StrokeLine(Pos, Pos, Stroke)     {}
func (discard) StrokeRect(Rect, Stroke)         {}
func (discard) FillRect(Rect, string)           {}
func (discard) FillCircle(Pos, float64, string) {}
func (discard) FillText(Text)                   {}
