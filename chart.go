package charts

// Graphable is one item of a chart. D carries the data shared by all the
// items of the same chart.
type Graphable[D any] interface {
	Label() string
	Draw(s Surface, x, y DrawnOutput, data D)
	DrawLegend(s Surface, bounds Rect, color string, index int, data D)
}

// LegendFilter is implemented by items deciding on their own whether they
// have an entry in the legend.
type LegendFilter[D any] interface {
	InLegend(data D) bool
}

func inLegend[G Graphable[D], D any](g G, data D) bool {
	if f, ok := any(g).(LegendFilter[D]); ok {
		return f.InLegend(data)
	}
	return g.Label() != ""
}

// Graph is a chart made of items of one type drawn over a pair of axes.
type Graph[G Graphable[D], D any] struct {
	Title string
	X     Axis
	Y     Axis
	Items []G
	Data  D

	Legend LegendPosition
	// LegendRows overrides the number of rows used to size the legend box.
	LegendRows int
	Style      Style
}

func NewGraph[G Graphable[D], D any](x, y Axis, items []G, data D) Graph[G, D] {
	return Graph[G, D]{
		X:      x,
		Y:      y,
		Items:  items,
		Data:   data,
		Legend: DefaultLegend,
		Style:  DefaultStyle(),
	}
}

// Layout gives the outputs of both axes without drawing.
func (g Graph[G, D]) Layout(width, height float64) (DrawnOutput, DrawnOutput) {
	var (
		x = g.X.Layout(OrientBottom, width, height)
		y = g.Y.Layout(OrientLeft, width, height)
	)
	return x, y
}

// Render draws the title and the axes, then every item in order, then the
// legend.
func (g Graph[G, D]) Render(s Surface) {
	g.drawTitle(s)
	var (
		x = g.X.Draw(s, OrientBottom, g.Style)
		y = g.Y.Draw(s, OrientLeft, g.Style)
	)
	for _, it := range g.Items {
		it.Draw(s, x, y, g.Data)
	}
	g.drawLegend(s)
}

func (g Graph[G, D]) drawTitle(s Surface) {
	if g.Title == "" {
		return
	}
	fr := newFrame(s.Width(), s.Height())
	s.FillText(Text{
		Content:  g.Title,
		Pos:      NewPos(s.Width()/2, fr.top/2),
		Size:     g.Style.Label.Size,
		Color:    g.Style.Text.Color,
		Anchor:   AnchorMiddle,
		Baseline: BaselineMiddle,
	})
}

func (g Graph[G, D]) legendItems() []G {
	var list []G
	for _, it := range g.Items {
		if inLegend(it, g.Data) {
			list = append(list, it)
		}
	}
	return list
}

func (g Graph[G, D]) drawLegend(s Surface) {
	if !g.Legend.Visible() {
		return
	}
	items := g.legendItems()
	if len(items) == 0 {
		return
	}
	rows := g.LegendRows
	if rows <= 0 {
		rows = len(items)
	}
	var (
		bounds = NewRect(0, 0, s.Width(), s.Height())
		size   = LegendSize(bounds, rows)
		pos    = g.Legend.Position(bounds, size)
		box    = Rect{Pos: pos, Size: size}
	)
	s.FillRect(box, g.Style.Legend.Background)
	s.StrokeRect(box, NewStroke(g.Style.Legend.Border, 1))
	s.FillText(Text{
		Content:  "Legend",
		Pos:      NewPos(pos.X+size.W/2, pos.Y+legendPadY+g.Style.Legend.Header/2),
		Size:     g.Style.Legend.Header,
		Color:    g.Style.Legend.Color,
		Anchor:   AnchorMiddle,
		Baseline: BaselineMiddle,
	})
	content := NewRect(
		pos.X+legendPadX,
		pos.Y+legendHeader,
		size.W-2*legendPadX,
		size.H-legendHeader-legendPadY,
	)
	for i, it := range items {
		it.DrawLegend(s, content, g.Style.Legend.Color, i, g.Data)
	}
}

// legendRow gives the bounds of the index-th row of a legend.
func legendRow(bounds Rect, index int) Rect {
	return NewRect(bounds.X, bounds.Y+float64(index)*legendRowSize, bounds.W, legendRowSize)
}

// drawLegendEntry draws a color swatch followed by a label in a legend row.
func drawLegendEntry(s Surface, row Rect, swatch, color, label string) {
	var (
		side = row.H * 0.6
		box  = NewRect(row.X, row.Y+(row.H-side)/2, side, side)
	)
	s.FillRect(box, swatch)
	s.FillText(Text{
		Content:  label,
		Pos:      NewPos(box.Right()+legendPadX, row.Y+row.H/2),
		Size:     FontSize,
		Color:    color,
		Anchor:   AnchorStart,
		Baseline: BaselineMiddle,
	})
}
