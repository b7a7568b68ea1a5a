package charts_test

import (
	"fmt"
	"os"

	"github.com/modav/charts"
)

func ExampleGraph() {
	var (
		months = charts.Labels("Jan", "Feb", "Mar")
		sales  = charts.Integers(12, -4, 30)
		colors = charts.NewColorEngine(0.5, false)
		bars   []charts.Bar
	)
	for i := range months {
		p := charts.NewPoint(months[i], sales[i])
		bars = append(bars, charts.NewBar(p, months[i].String(), colors.Next()))
	}
	x, y, err := charts.NewAxes(months, sales, charts.AxisOptions{
		LabelX: "month",
		LabelY: "sales",
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	var (
		cv = charts.NewCanvas(800, 600)
		g  = charts.NewGraph(x, y, bars, charts.BarOptions{})
	)
	g.Legend = charts.LegendBottomRight
	g.Render(cv)
	if err := cv.Render(os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
}

func ExampleAxis_Layout() {
	axis, err := charts.NewAxis(charts.Integers(0, 5, 10), false)
	if err != nil {
		return
	}
	out := axis.Layout(charts.OrientBottom, 400, 300)
	fmt.Println(out.Len(), out.Step)
	// Output: 3 5
}

func ExampleColorEngine_Gradual() {
	engine := charts.NewColorEngine(0.25, false).Gradual(true).Count(3)
	for _, c := range engine.Take(3) {
		fmt.Println(len(c))
	}
	// Output:
	// 7
	// 7
	// 7
}
