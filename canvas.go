package charts

import (
	"bufio"
	"io"

	"github.com/midbel/svg"
)

// Canvas is a Surface collecting svg elements.
type Canvas struct {
	width      float64
	height     float64
	Title      string
	Background string

	elements []svg.Element
}

func NewCanvas(width, height float64) *Canvas {
	return &Canvas{
		width:  width,
		height: height,
	}
}

func (c *Canvas) Width() float64 {
	return c.width
}

func (c *Canvas) Height() float64 {
	return c.height
}

func (c *Canvas) Len() int {
	return len(c.elements)
}

func (c *Canvas) StrokeLine(from, to Pos, stroke Stroke) {
	li := svg.NewLine(toPos(from), toPos(to))
	li.Stroke = toStroke(stroke)
	c.append(li.AsElement())
}

func (c *Canvas) StrokeRect(r Rect, stroke Stroke) {
	var pat svg.Path
	pat.Rendering = "geometricPrecision"
	pat.Stroke = toStroke(stroke)
	pat.Fill = svg.NewFill("none")
	pat.AbsMoveTo(svg.NewPos(r.X, r.Y))
	pat.AbsLineTo(svg.NewPos(r.Right(), r.Y))
	pat.AbsLineTo(svg.NewPos(r.Right(), r.Bottom()))
	pat.AbsLineTo(svg.NewPos(r.X, r.Bottom()))
	pat.ClosePath()
	c.append(pat.AsElement())
}

func (c *Canvas) FillRect(r Rect, color string) {
	var el svg.Rect
	el.Pos = svg.NewPos(r.X, r.Y)
	el.Dim = svg.NewDim(r.W, r.H)
	el.Fill = svg.NewFill(color)
	c.append(el.AsElement())
}

func (c *Canvas) FillCircle(center Pos, radius float64, color string) {
	var el svg.Circle
	el.Pos = toPos(center)
	el.Radius = radius
	el.Fill = svg.NewFill(color)
	c.append(el.AsElement())
}

func (c *Canvas) FillText(t Text) {
	size := t.Size
	if size <= 0 {
		size = FontSize
	}
	txt := svg.NewText(t.Content)
	txt.Font = svg.NewFont(size)
	txt.Anchor = t.Anchor
	txt.Baseline = t.Baseline

	var grp svg.Group
	grp.Fill = svg.NewFill(t.Color)
	if t.Italic {
		grp.Class = append(grp.Class, "caption")
	}
	if t.Rotate != 0 {
		grp.Transform = svg.Translate(t.Pos.X, t.Pos.Y)
		grp.Transform.RA = t.Rotate
	} else {
		txt.Pos = toPos(t.Pos)
	}
	grp.Append(txt.AsElement())
	c.append(grp.AsElement())
}

func (c *Canvas) append(el svg.Element) {
	c.elements = append(c.elements, el)
}

// Render writes the svg document of the canvas to w.
func (c *Canvas) Render(w io.Writer) error {
	el := svg.NewSVG(svg.WithDimension(c.width, c.height))
	el.OmitProlog = true
	if c.Background != "" {
		var bg svg.Rect
		bg.Dim = svg.NewDim(c.width, c.height)
		bg.Fill = svg.NewFill(c.Background)
		el.Append(bg.AsElement())
	}
	if c.Title != "" {
		var grp svg.Group
		grp.Id = c.Title
		for _, e := range c.elements {
			grp.Append(e)
		}
		el.Append(grp.AsElement())
	} else {
		for _, e := range c.elements {
			el.Append(e)
		}
	}
	bw := bufio.NewWriter(w)
	el.Render(bw)
	return bw.Flush()
}

func toPos(p Pos) svg.Pos {
	return svg.NewPos(p.X, p.Y)
}

func toStroke(s Stroke) svg.Stroke {
	k := svg.NewStroke(s.Color, s.Width)
	if s.Opacity > 0 {
		k.Opacity = s.Opacity
	}
	return k
}
