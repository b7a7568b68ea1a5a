package charts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const delta = 1e-6

func mustAxis(t *testing.T, scale Scale) Axis {
	t.Helper()
	a, err := NewAxis(scale, false)
	require.NoError(t, err)
	return a
}

func TestFrame(t *testing.T) {
	f := newFrame(300, 200)
	assert.InDelta(t, 15, f.left, delta)
	assert.InDelta(t, 270, f.xlength, delta)
	assert.InDelta(t, 12.15, f.xin, delta)
	assert.InDelta(t, 4.05, f.xout, delta)
	assert.InDelta(t, 253.8, f.xrun, delta)

	assert.InDelta(t, 5, f.top, delta)
	assert.InDelta(t, 12.5, f.bottom, delta)
	assert.InDelta(t, 182.5, f.ylength, delta)
	assert.InDelta(t, 4.5625, f.yin, delta)
	assert.InDelta(t, 173.375, f.yrun, delta)
}

func TestDensity(t *testing.T) {
	assert.Equal(t, DensityLow, Density(0))
	assert.Equal(t, DensityLow, Density(49.9))
	assert.Equal(t, DensityMedium, Density(50))
	assert.Equal(t, DensityMedium, Density(249.9))
	assert.Equal(t, DensityHigh, Density(250))

	var (
		width = 1000.0
		prev  = DensityHigh
	)
	for n := 1; n <= 100; n++ {
		curr := Density(newFrame(width, width).xrun / float64(n))
		assert.LessOrEqual(t, curr, prev, "%d points", n)
		prev = curr
	}
}

func TestLayoutCategorical(t *testing.T) {
	var (
		axis = mustAxis(t, Labels("A", "B", "C"))
		out  = axis.Layout(OrientBottom, 300, 200)
	)
	require.Equal(t, 3, out.Len())
	assert.True(t, out.Horizontal)
	assert.InDelta(t, 111.75, out.Record[Label("A")], delta)
	assert.InDelta(t, 196.35, out.Record[Label("B")], delta)
	assert.InDelta(t, 280.95, out.Record[Label("C")], delta)

	ab := out.Record[Label("B")] - out.Record[Label("A")]
	bc := out.Record[Label("C")] - out.Record[Label("B")]
	assert.InDelta(t, ab, bc, 1)

	assert.Zero(t, out.Step)
	assert.Zero(t, out.Spacing)
	assert.InDelta(t, 182.9375, out.AxisPos, delta)
}

func TestLayoutIdempotent(t *testing.T) {
	axis := mustAxis(t, Integers(-5, -2, 0, 3, 7))
	for _, o := range []Orientation{OrientBottom, OrientLeft} {
		fst := axis.Layout(o, 640, 480)
		snd := axis.Layout(o, 640, 480)
		assert.Equal(t, fst, snd)
	}
}

func TestLayoutCompleteness(t *testing.T) {
	var (
		scale = Labels("north", "east", "south", "west")
		axis  = mustAxis(t, scale)
		out   = axis.Layout(OrientBottom, 2000, 400)
	)
	require.Equal(t, len(scale), out.Len())
	for i := 1; i < len(scale); i++ {
		assert.Greater(t, out.Record[scale[i]], out.Record[scale[i-1]])
	}
}

func TestLayoutSplit(t *testing.T) {
	tests := []struct {
		Name  string
		Scale Scale
		Len   int
	}{
		{
			Name:  "without-zero",
			Scale: Integers(-3, -1, 2, 4),
			Len:   4,
		},
		{
			Name:  "shared-zero",
			Scale: Integers(-1, 0, 1),
			Len:   3,
		},
		{
			Name:  "floats",
			Scale: Floats(-0.5, 1.5, 2.5, -10),
			Len:   4,
		},
	}
	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			axis := mustAxis(t, tt.Scale)
			for _, o := range []Orientation{OrientBottom, OrientLeft} {
				var (
					out  = axis.Layout(o, 500, 500)
					fr   = newFrame(500, 500)
					zero = fr.zero(o.Vertical(), axis.Fraction())
				)
				require.Equal(t, tt.Len, out.Len())
				for _, v := range axis.Kind.Positives {
					if v.Sign() == 0 {
						assert.InDelta(t, zero, out.Record[v], delta)
						continue
					}
					for _, n := range axis.Kind.Negatives {
						pos := out.Record[v] - zero
						neg := out.Record[n] - zero
						assert.Less(t, pos*neg, 0.0, "%s and %s on the same side", v, n)
					}
				}
			}
		})
	}
}

func TestLayoutSplitVertical(t *testing.T) {
	var (
		axis = mustAxis(t, Integers(-5, -2, 0, 3, 7))
		out  = axis.Layout(OrientLeft, 400, 400)
	)
	require.Equal(t, 5, out.Len())
	assert.False(t, out.Horizontal)

	assert.InDelta(t, 192.5, out.Record[Integer(0)], delta)
	assert.InDelta(t, 105.8125, out.Record[Integer(3)], delta)
	assert.InDelta(t, 19.125, out.Record[Integer(7)], delta)
	assert.InDelta(t, 279.1875, out.Record[Integer(-2)], delta)
	assert.InDelta(t, 365.875, out.Record[Integer(-5)], delta)

	assert.Equal(t, 3.0, out.Step)
	assert.InDelta(t, 86.6875, out.Spacing, delta)

	px, ok := out.Closest(Integer(5), false)
	require.True(t, ok)
	assert.Greater(t, px, out.Record[Integer(7)])
	assert.Less(t, px, out.Record[Integer(3)])
}

func TestLayoutNegatives(t *testing.T) {
	var (
		axis = mustAxis(t, Integers(-1, -2))
		fr   = newFrame(300, 300)
		out  = axis.Layout(OrientBottom, 300, 300)
	)
	assert.InDelta(t, fr.left+fr.xin+fr.xrun, fr.zero(false, axis.Fraction()), delta)
	assert.Less(t, out.Record[Integer(-2)], out.Record[Integer(-1)])
	assert.Less(t, out.Record[Integer(-1)], fr.left+fr.xin+fr.xrun)
	assert.InDelta(t, fr.left+fr.xin, out.Record[Integer(-2)], delta)
}

func TestLayoutSinglePoint(t *testing.T) {
	out := mustAxis(t, Integers(10)).Layout(OrientBottom, 300, 200)
	require.Equal(t, 1, out.Len())
	assert.Zero(t, out.Step)
	assert.Zero(t, out.Spacing)

	_, ok := out.Closest(Integer(11), true)
	assert.False(t, ok)
}

func TestAxisDraw(t *testing.T) {
	t.Run("outlines", func(t *testing.T) {
		var (
			axis = mustAxis(t, Labels("A", "B", "C"))
			rec  = newRecorder(300, 200)
		)
		axis.Draw(rec, OrientBottom, DefaultStyle())
		// axis line, 3 tick stubs with their outline, 12 micro outlines
		assert.Len(t, rec.lines, 1+3*2+12)
		assert.Len(t, rec.texts, 3)
	})
	t.Run("clean", func(t *testing.T) {
		var (
			axis = mustAxis(t, Labels("A", "B", "C")).WithClean(true)
			rec  = newRecorder(300, 200)
		)
		axis.Draw(rec, OrientBottom, DefaultStyle())
		assert.Len(t, rec.lines, 1+3)
	})
	t.Run("labels", func(t *testing.T) {
		var (
			x   = mustAxis(t, Labels("A", "B")).WithLabel("letters").WithCaption("source")
			y   = mustAxis(t, Integers(1, 2)).WithLabel("count")
			rec = newRecorder(300, 200)
		)
		x.Draw(rec, OrientBottom, DefaultStyle())
		y.Draw(rec, OrientLeft, DefaultStyle())

		lab, ok := rec.text("letters")
		require.True(t, ok)
		assert.InDelta(t, 15+12.15+253.8/2, lab.Pos.X, delta)
		assert.InDelta(t, 200-0.5*12.5, lab.Pos.Y, delta)

		caption, ok := rec.text("source")
		require.True(t, ok)
		assert.True(t, caption.Italic)

		lab, ok = rec.text("count")
		require.True(t, ok)
		assert.Equal(t, -90.0, lab.Rotate)
		assert.InDelta(t, 7.5, lab.Pos.X, delta)
	})
}

func TestNewAxes(t *testing.T) {
	x, y, err := NewAxes(Labels("A", "B"), Integers(-2, 0, 2, 4), AxisOptions{
		LabelX:  "letters",
		LabelY:  "values",
		Caption: "caption",
	})
	require.NoError(t, err)
	assert.Equal(t, ShapeCategorical, x.Kind.Shape)
	assert.Equal(t, ShapeSplit, y.Kind.Shape)
	assert.InDelta(t, y.Fraction(), x.Cross, delta)
	assert.InDelta(t, 1, y.Cross, delta)
	assert.Equal(t, "letters", x.Label)
	assert.Equal(t, "caption", x.Caption)
	assert.Equal(t, "values", y.Label)

	x, y, err = NewAxes(Labels("A", "B"), Integers(1, 2), AxisOptions{
		LabelX:     "letters",
		Horizontal: true,
	})
	require.NoError(t, err)
	assert.Equal(t, ShapeNumeric, x.Kind.Shape)
	assert.Equal(t, ShapeCategorical, y.Kind.Shape)
	assert.Equal(t, "letters", y.Label)

	_, _, err = NewAxes(nil, Integers(1), AxisOptions{})
	assert.ErrorIs(t, err, ErrEmptyScale)
}

func TestAxisLineFollowsSplitAxis(t *testing.T) {
	x, y, err := NewAxes(Labels("A", "B"), Integers(-1, 1), AxisOptions{})
	require.NoError(t, err)

	var (
		fr = newFrame(400, 400)
		xo = x.Layout(OrientBottom, 400, 400)
		yo = y.Layout(OrientLeft, 400, 400)
	)
	assert.InDelta(t, fr.top+fr.yin+0.5*fr.yrun, xo.AxisPos, delta)
	assert.InDelta(t, xo.AxisPos, yo.Record[Integer(1)]+(yo.Record[Integer(-1)]-yo.Record[Integer(1)])/2, delta)
	assert.InDelta(t, fr.left+fr.xin, yo.AxisPos, delta)
}

func TestLayoutReverse(t *testing.T) {
	fr := newFrame(300, 200)
	t.Run("top", func(t *testing.T) {
		var (
			axis   = mustAxis(t, Labels("A", "B"))
			bottom = axis.Layout(OrientBottom, 300, 200)
			rec    = newRecorder(300, 200)
			top    = axis.WithLabel("letters").Draw(rec, OrientTop, DefaultStyle())
		)
		assert.InDelta(t, 182.9375, bottom.AxisPos, delta)
		assert.InDelta(t, fr.top+fr.yin, top.AxisPos, delta)
		assert.Equal(t, bottom.Record, top.Record)

		tick, ok := rec.text("A")
		require.True(t, ok)
		assert.Less(t, tick.Pos.Y, top.AxisPos)
		assert.Equal(t, BaselineAuto, tick.Baseline)

		lab, ok := rec.text("letters")
		require.True(t, ok)
		assert.InDelta(t, fr.top/2, lab.Pos.Y, delta)
	})
	t.Run("right", func(t *testing.T) {
		var (
			axis  = mustAxis(t, Integers(1, 2))
			left  = axis.Layout(OrientLeft, 300, 200)
			rec   = newRecorder(300, 200)
			right = axis.WithLabel("count").Draw(rec, OrientRight, DefaultStyle())
		)
		assert.InDelta(t, fr.left+fr.xin, left.AxisPos, delta)
		assert.InDelta(t, fr.left+fr.xin+fr.xrun, right.AxisPos, delta)
		assert.Equal(t, left.Record, right.Record)
		assert.False(t, right.Horizontal)

		tick, ok := rec.text("1")
		require.True(t, ok)
		assert.Greater(t, tick.Pos.X, right.AxisPos)
		assert.Equal(t, AnchorStart, tick.Anchor)

		lab, ok := rec.text("count")
		require.True(t, ok)
		assert.Equal(t, 90.0, lab.Rotate)
		assert.InDelta(t, 300-0.5*fr.right, lab.Pos.X, delta)
	})
}
