package charts

import (
	"math"
)

const (
	paddingX   = 0.05
	offsetIn   = 0.045
	offsetOut  = 0.015
	paddingTop = 0.025
	offsetY    = 0.025
	stumpRatio = 0.01
)

// Outline density tiers: number of outlines drawn per tick.
const (
	DensityLow    = 1
	DensityMedium = 5
	DensityHigh   = 10
)

// Density returns the number of outlines per tick for a tick spacing of dx
// pixels.
func Density(dx float64) int {
	switch {
	case dx < 50:
		return DensityLow
	case dx < 250:
		return DensityMedium
	default:
		return DensityHigh
	}
}

// frame splits a surface into paddings, inner offsets and tick runs.
type frame struct {
	width  float64
	height float64

	left   float64
	right  float64
	top    float64
	bottom float64

	xlength float64
	xin     float64
	xout    float64
	xrun    float64

	ylength float64
	yin     float64
	yout    float64
	yrun    float64
}

func newFrame(width, height float64) frame {
	f := frame{
		width:  width,
		height: height,
	}
	f.left = paddingX * width
	f.right = f.left
	f.xlength = width - f.left - f.right
	f.xin = offsetIn * f.xlength
	f.xout = offsetOut * f.xlength
	f.xrun = f.xlength - f.xin - f.xout

	f.top = paddingTop * height
	f.bottom = 2.5 * f.top
	f.ylength = height - f.top - f.bottom
	f.yin = offsetY * f.ylength
	f.yout = f.yin
	f.yrun = f.ylength - f.yin - f.yout
	return f
}

// zero returns the pixel of the zero crossing along the axis run.
func (f frame) zero(vertical bool, fraction float64) float64 {
	if vertical {
		return f.top + f.yin + fraction*f.yrun
	}
	return f.left + f.xin + (1-fraction)*f.xrun
}

// line returns the perpendicular pixel of the axis line.
func (f frame) line(vertical bool, cross float64) float64 {
	if vertical {
		return f.left + f.xin + (1-cross)*f.xrun
	}
	return f.top + f.yin + cross*f.yrun
}

func (f frame) run(vertical bool) float64 {
	if vertical {
		return f.yrun
	}
	return f.xrun
}

type tickRun struct {
	points []Value
	origin float64
	dir    float64
	shared bool
}

type walker struct {
	Surface
	frame
	style    Style
	vertical bool
	reverse  bool
	clean    bool
	axis     float64
	dx       float64
	density  int

	record map[Value]float64
	prev   struct {
		value Value
		pixel float64
		count int
	}
	step    float64
	spacing float64
}

func (a Axis) walk(s Surface, orient Orientation, style Style) DrawnOutput {
	var (
		vertical = orient.Vertical()
		fr       = newFrame(s.Width(), s.Height())
		cross    = a.Cross
	)
	if orient.Reverse() {
		cross = 0
	}
	w := walker{
		Surface:  s,
		frame:    fr,
		style:    style,
		vertical: vertical,
		reverse:  orient.Reverse(),
		clean:    a.Clean,
		axis:     fr.line(vertical, cross),
		record:   make(map[Value]float64),
	}
	w.drawLine()

	if slots := a.Kind.Slots(); slots > 0 {
		w.dx = fr.run(vertical) / float64(slots)
	}
	w.density = Density(w.dx)

	for _, r := range a.runs(fr, vertical) {
		w.walk(r)
	}
	if vertical {
		w.drawVerticalLabel(a.Label)
	} else {
		w.drawHorizontalLabel(a.Label, a.Caption)
	}
	return DrawnOutput{
		Record:     w.record,
		AxisPos:    w.axis,
		Spacing:    w.spacing,
		Step:       w.step,
		Horizontal: !vertical,
	}
}

// runs gives the tick runs of the axis: one for a single sided axis, two
// sharing the zero crossing for a split one.
func (a Axis) runs(fr frame, vertical bool) []tickRun {
	var (
		zero = fr.zero(vertical, a.Fraction())
		pos  = 1.0
		neg  = -1.0
	)
	if vertical {
		pos, neg = neg, pos
	}
	var list []tickRun
	if len(a.Kind.Positives) > 0 {
		list = append(list, tickRun{
			points: a.Kind.Positives,
			origin: zero,
			dir:    pos,
			shared: a.Kind.Shared(),
		})
	}
	if len(a.Kind.Negatives) > 0 {
		list = append(list, tickRun{
			points: a.Kind.Negatives,
			origin: zero,
			dir:    neg,
		})
	}
	return list
}

func (w *walker) walk(r tickRun) {
	points := r.points
	if r.shared && len(points) > 0 {
		w.place(points[0], r.origin)
		points = points[1:]
	}
	if w.dx <= 0 {
		return
	}
	var (
		micro = w.dx / float64(w.density)
		total = len(points) * w.density
		next  int
	)
	for c := 1; c <= total; c++ {
		px := r.origin + r.dir*micro*float64(c)
		if c%w.density == 0 && next < len(points) {
			w.place(points[next], px)
			next++
			continue
		}
		if !w.clean {
			w.drawOutline(px)
		}
	}
}

func (w *walker) place(v Value, px float64) {
	w.record[v] = px
	w.drawTick(v, px)
	if !w.clean {
		w.drawOutline(px)
	}
	if !v.IsNumeric() {
		return
	}
	if w.prev.count > 0 {
		if diff, ok := v.Diff(w.prev.value); ok {
			w.step = math.Abs(diff)
			w.spacing = math.Abs(px - w.prev.pixel)
		}
	}
	w.prev.value = v
	w.prev.pixel = px
	w.prev.count++
}

func (w *walker) drawLine() {
	var from, to Pos
	if w.vertical {
		from = NewPos(w.axis, w.top)
		to = NewPos(w.axis, w.top+w.ylength)
	} else {
		from = NewPos(w.left, w.axis)
		to = NewPos(w.left+w.xlength, w.axis)
	}
	w.StrokeLine(from, to, w.style.axisStroke())
}

func (w *walker) drawOutline(px float64) {
	var from, to Pos
	if w.vertical {
		from = NewPos(w.left, px)
		to = NewPos(w.left+w.xlength, px)
	} else {
		from = NewPos(px, w.top)
		to = NewPos(px, w.top+w.ylength)
	}
	w.StrokeLine(from, to, w.style.outlineStroke())
}

func (w *walker) drawTick(v Value, px float64) {
	var (
		stump = stumpRatio * w.height
		text  = Text{
			Content: v.String(),
			Size:    w.style.Text.Size,
			Color:   w.style.Text.Color,
		}
		from, to Pos
	)
	switch {
	case w.vertical && w.reverse:
		from = NewPos(w.axis, px)
		to = NewPos(w.axis+stump, px)
		text.Pos = NewPos(w.axis+stump+FontSize*0.4, px)
		text.Anchor = AnchorStart
		text.Baseline = BaselineMiddle
	case w.vertical:
		from = NewPos(w.axis, px)
		to = NewPos(w.axis-stump, px)
		text.Pos = NewPos(w.axis-stump-FontSize*0.4, px)
		text.Anchor = AnchorEnd
		text.Baseline = BaselineMiddle
	case w.reverse:
		from = NewPos(px, w.axis)
		to = NewPos(px, w.axis-stump)
		text.Pos = NewPos(px, w.axis-stump-FontSize*0.2)
		text.Anchor = AnchorMiddle
		text.Baseline = BaselineAuto
	default:
		from = NewPos(px, w.axis)
		to = NewPos(px, w.axis+stump)
		text.Pos = NewPos(px, w.axis+stump+FontSize*0.2)
		text.Anchor = AnchorMiddle
		text.Baseline = BaselineHanging
	}
	w.StrokeLine(from, to, w.style.axisStroke())
	w.FillText(text)
}

func (w *walker) drawHorizontalLabel(label, caption string) {
	y := w.height - 0.5*w.bottom
	if w.reverse {
		y = 0.5 * w.top
	}
	if label != "" {
		w.FillText(Text{
			Content:  label,
			Pos:      NewPos(w.left+w.xin+w.xrun/2, y),
			Size:     w.style.Label.Size,
			Color:    w.style.Label.Color,
			Anchor:   AnchorMiddle,
			Baseline: BaselineMiddle,
		})
	}
	if caption != "" {
		w.FillText(Text{
			Content:  caption,
			Pos:      NewPos(w.left+w.xin+w.xrun*0.8, y),
			Size:     w.style.Caption.Size,
			Color:    w.style.Label.Color,
			Anchor:   AnchorMiddle,
			Baseline: BaselineMiddle,
			Italic:   true,
		})
	}
}

func (w *walker) drawVerticalLabel(label string) {
	if label == "" {
		return
	}
	txt := Text{
		Content:  label,
		Pos:      NewPos(0.5*w.left, w.top+0.5*w.ylength),
		Size:     w.style.Label.Size,
		Color:    w.style.Label.Color,
		Anchor:   AnchorMiddle,
		Baseline: BaselineMiddle,
		Rotate:   -90,
	}
	if w.reverse {
		txt.Pos.X = w.width - 0.5*w.right
		txt.Rotate = 90
	}
	w.FillText(txt)
}
