package charts

type Style struct {
	Axis struct {
		Color string
		Width float64
	}
	Outline struct {
		Color   string
		Width   float64
		Opacity float64
	}
	Text struct {
		Color string
		Size  float64
	}
	Label struct {
		Color string
		Size  float64
	}
	Caption struct {
		Size float64
	}
	Legend struct {
		Background string
		Border     string
		Color      string
		Header     float64
	}
	Dark bool
}

func DefaultStyle() Style {
	var s Style
	s.Axis.Color = "black"
	s.Axis.Width = 2
	s.Outline.Color = "#c8c8c8"
	s.Outline.Width = 0.5
	s.Outline.Opacity = 1
	s.Text.Color = "black"
	s.Text.Size = FontSize
	s.Label.Color = "#5e7ce2"
	s.Label.Size = 16
	s.Caption.Size = 14
	s.Legend.Background = "#f2f2f2"
	s.Legend.Border = "black"
	s.Legend.Color = "black"
	s.Legend.Header = 16
	return s
}

func DarkStyle() Style {
	s := DefaultStyle()
	s.Dark = true
	s.Axis.Color = "#e6e6e6"
	s.Outline.Color = "#474a51"
	s.Text.Color = "#e6e6e6"
	s.Label.Color = "#a3b3f0"
	s.Legend.Background = "#2b2d31"
	s.Legend.Border = "#e6e6e6"
	s.Legend.Color = "#e6e6e6"
	return s
}

func (s Style) axisStroke() Stroke {
	return NewStroke(s.Axis.Color, s.Axis.Width)
}

func (s Style) outlineStroke() Stroke {
	k := NewStroke(s.Outline.Color, s.Outline.Width)
	k.Opacity = s.Outline.Opacity
	return k
}
