package dash

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/modav/charts"
)

// Chart is a chart ready to be drawn.
type Chart struct {
	Title  string
	Width  float64
	Height float64
	Dark   bool

	draw func(charts.Surface)
}

// Draw renders the chart on any surface.
func (c Chart) Draw(s charts.Surface) {
	if c.draw != nil {
		c.draw(s)
	}
}

// Render writes the chart as an svg document.
func (c Chart) Render(w io.Writer) error {
	cv := charts.NewCanvas(c.Width, c.Height)
	cv.Title = c.Title
	if c.Dark {
		cv.Background = charts.DarkStyle().Legend.Background
	}
	c.Draw(cv)
	return cv.Render(w)
}

// Build loads the data file of the configuration and assembles its chart.
func Build(cfg Config) (Chart, error) {
	if err := cfg.Validate(); err != nil {
		return Chart{}, err
	}
	t, err := Open(cfg.File, cfg.sourceOptions())
	if err != nil {
		return Chart{}, err
	}
	return BuildTable(cfg, t)
}

// BuildTable assembles the chart described by the configuration from the
// rows of t.
func BuildTable(cfg Config, t Table) (Chart, error) {
	t = t.Exclude(cfg.Exclude)
	if t.Len() == 0 {
		return Chart{}, ErrEmpty
	}
	var (
		draw func(charts.Surface)
		err  error
	)
	switch cfg.Kind {
	case KindBar:
		draw, err = buildBar(cfg, t)
	case KindLine:
		draw, err = buildLine(cfg, t)
	case KindStacked:
		draw, err = buildStacked(cfg, t)
	default:
		err = fmt.Errorf("%w: %q", ErrKind, cfg.Kind)
	}
	if err != nil {
		return Chart{}, fmt.Errorf("%s: %w", cfg.Title, err)
	}
	c := Chart{
		Title:  cfg.Title,
		Width:  cfg.Width,
		Height: cfg.Height,
		Dark:   cfg.Dark,
		draw:   draw,
	}
	return c, nil
}

func buildBar(cfg Config, t Table) (func(charts.Surface), error) {
	xs, err := t.Column(cfg.X.Index)
	if err != nil {
		return nil, err
	}
	cols := []int(cfg.Series)
	if len(cols) == 0 {
		cols = []int{cfg.Y.Index}
	}
	var (
		sel = Select(cols)
		ys  = make(charts.Scale, 0, t.Len())
	)
	for j, row := range t.Rows {
		v, err := sel.Select(row)
		if err != nil {
			return nil, atRow(err, j)
		}
		ys = append(ys, v)
	}
	ys = Unify(ys)

	var labels []string
	if cfg.Labels >= 0 {
		col, err := t.Column(cfg.Labels)
		if err != nil {
			return nil, err
		}
		for _, v := range col {
			labels = append(labels, v.String())
		}
	}
	var (
		engine = cfg.colors().Count(t.Len())
		bars   = make([]charts.Bar, 0, t.Len())
	)
	for i := range xs {
		var title string
		if i < len(labels) {
			title = labels[i]
		}
		bars = append(bars, charts.NewBar(charts.NewPoint(xs[i], ys[i]), title, engine.Next()))
	}
	if cfg.Order {
		slices.SortStableFunc(bars, func(a, b charts.Bar) int {
			return a.Point.Y.Compare(b.Point.Y)
		})
	}
	x, y, err := charts.NewAxes(xs, ys, cfg.axisOptions())
	if err != nil {
		return nil, err
	}
	g := charts.NewGraph(x, y, bars, charts.BarOptions{Horizontal: cfg.Horizontal})
	g.Title = cfg.Title
	g.Legend = cfg.legend()
	g.Style = cfg.style()
	return g.Render, nil
}

func buildLine(cfg Config, t Table) (func(charts.Surface), error) {
	xs, err := t.Column(cfg.X.Index)
	if err != nil {
		return nil, err
	}
	cols := []int(cfg.Series)
	if len(cols) == 0 {
		cols = []int{cfg.Y.Index}
	}
	var (
		engine = cfg.colors().Count(len(cols))
		lines  = make([]charts.Line, 0, len(cols))
		ys     charts.Scale
		values = make([][]charts.Value, len(cols))
	)
	for i, c := range cols {
		sel := SelectSingle(c)
		for j, row := range t.Rows {
			v, err := sel.Select(row)
			if errors.Is(err, ErrMissing) || errors.Is(err, ErrIndex) {
				charts.Logger().Debug("missing value", "column", c, "row", j+1)
				v = charts.Value{}
			} else if err != nil {
				return nil, atRow(err, j)
			} else {
				ys = append(ys, v)
			}
			values[i] = append(values[i], v)
		}
	}
	if len(ys) == 0 {
		return nil, ErrEmpty
	}
	ys = Unify(ys)
	kind := ys[0].Kind()
	for i, c := range cols {
		var points []charts.Point
		for j, v := range values[i] {
			if !v.IsNumeric() {
				continue
			}
			if kind == charts.KindFloat {
				f, _ := v.Float64()
				v = charts.Float(f)
			}
			points = append(points, charts.NewPoint(xs[j], v))
		}
		lines = append(lines, charts.NewLine(t.Name(c), engine.Next(), points))
	}
	x, y, err := charts.NewAxes(xs, ys, cfg.axisOptions())
	if err != nil {
		return nil, err
	}
	g := charts.NewGraph(x, y, lines, cfg.Style.lineOptions())
	g.Title = cfg.Title
	g.Legend = cfg.legend()
	g.Style = cfg.style()
	return g.Render, nil
}

func buildStacked(cfg Config, t Table) (func(charts.Surface), error) {
	xs, err := t.Column(cfg.X.Index)
	if err != nil {
		return nil, err
	}
	var (
		labels = make([]string, 0, len(cfg.Stack))
		totals = make(charts.Scale, 0, t.Len())
		parts  = make([]map[string]float64, 0, t.Len())
		sum    = SelectSum(cfg.Stack)
	)
	for _, c := range cfg.Stack {
		labels = append(labels, t.Name(c))
	}
	for j, row := range t.Rows {
		total, err := sum.Select(row)
		if err != nil {
			return nil, atRow(err, j)
		}
		var (
			all, _ = total.Float64()
			set    = make(map[string]float64, len(cfg.Stack))
		)
		for i, c := range cfg.Stack {
			v, _ := SelectSingle(c).Select(row)
			f, _ := v.Float64()
			if all != 0 {
				set[labels[i]] = f / all
			}
		}
		totals = append(totals, total)
		parts = append(parts, set)
	}
	totals = Unify(totals)

	var (
		engine = cfg.colors().Gradual(cfg.Gradual || cfg.Order).Count(len(labels))
		colors = engine.Assign(labels)
		bars   = make([]charts.StackedBar, 0, t.Len())
	)
	for i := range xs {
		bars = append(bars, charts.NewStackedBar(i, charts.NewPoint(xs[i], totals[i]), parts[i], colors))
	}
	if cfg.Order {
		slices.SortStableFunc(bars, func(a, b charts.StackedBar) int {
			return a.Point.Y.Compare(b.Point.Y)
		})
	}
	x, y, err := charts.NewAxes(xs, totals, cfg.axisOptions())
	if err != nil {
		return nil, err
	}
	opts := charts.StackedOptions{
		Horizontal: cfg.Horizontal,
		LegendID:   bars[0].ID,
	}
	g := charts.NewGraph(x, y, bars, opts)
	g.Title = cfg.Title
	g.Legend = cfg.legend()
	g.LegendRows = len(colors)
	g.Style = cfg.style()
	return g.Render, nil
}

func atRow(err error, row int) error {
	var e ColumnError
	if errors.As(err, &e) {
		e.Row = row
		return e
	}
	return err
}
