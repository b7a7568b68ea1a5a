package charts

const FontSize = 12.0

type Orientation int

const (
	OrientTop Orientation = 1 << iota
	OrientRight
	OrientBottom
	OrientLeft
)

func (o Orientation) Vertical() bool {
	return o == OrientLeft || o == OrientRight
}

// Reverse reports whether the axis line sits on the far edge of the plot,
// top for an X axis and right for a Y axis, with its ticks drawn outward.
func (o Orientation) Reverse() bool {
	return o == OrientRight || o == OrientTop
}

// Axis is the immutable description of one chart axis. Cross is the zero
// crossing fraction of the perpendicular axis: it tells where the line of
// this axis sits across the plot.
type Axis struct {
	Kind    AxisKind
	Label   string
	Caption string
	Clean   bool
	Cross   float64
}

func NewAxis(scale Scale, sequential bool) (Axis, error) {
	kind, err := Classify(scale, sequential)
	if err != nil {
		return Axis{}, err
	}
	a := Axis{
		Kind:  kind,
		Cross: 1,
	}
	return a, nil
}

func (a Axis) Fraction() float64 {
	return a.Kind.Fraction()
}

func (a Axis) WithLabel(label string) Axis {
	a.Label = label
	return a
}

func (a Axis) WithCaption(caption string) Axis {
	a.Caption = caption
	return a
}

func (a Axis) WithClean(clean bool) Axis {
	a.Clean = clean
	return a
}

type AxisOptions struct {
	SequentialX bool
	SequentialY bool
	Clean       bool
	LabelX      string
	LabelY      string
	Caption     string
	// Horizontal swaps the scales before building the axes: the X scale
	// is laid out vertically and the Y scale horizontally.
	Horizontal bool
}

// NewAxes builds the X and Y axes of a chart and wires each one to the zero
// crossing of the other.
func NewAxes(xs, ys Scale, opts AxisOptions) (Axis, Axis, error) {
	var (
		xseq = opts.SequentialX
		yseq = opts.SequentialY
		xlab = opts.LabelX
		ylab = opts.LabelY
	)
	if opts.Horizontal {
		xs, ys = ys, xs
		xseq, yseq = yseq, xseq
		xlab, ylab = ylab, xlab
	}
	x, err := NewAxis(xs, xseq)
	if err != nil {
		return x, x, err
	}
	y, err := NewAxis(ys, yseq)
	if err != nil {
		return x, y, err
	}
	x.Cross = y.Fraction()
	y.Cross = x.Fraction()

	x = x.WithLabel(xlab).WithCaption(opts.Caption).WithClean(opts.Clean)
	y = y.WithLabel(ylab).WithClean(opts.Clean)
	return x, y, nil
}

// Layout computes the DrawnOutput of the axis for a surface of the given
// dimension without drawing anything.
func (a Axis) Layout(orient Orientation, width, height float64) DrawnOutput {
	return a.walk(discard{width: width, height: height}, orient, DefaultStyle())
}

// Draw lays out the axis on the surface and draws its line, ticks,
// outlines and texts.
func (a Axis) Draw(s Surface, orient Orientation, style Style) DrawnOutput {
	return a.walk(s, orient, style)
}
