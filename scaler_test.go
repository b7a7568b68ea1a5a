package charts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		Name       string
		Scale      Scale
		Sequential bool
		Shape      Shape
		Positives  Scale
		Negatives  Scale
		Fraction   float64
	}{
		{
			Name:      "labels",
			Scale:     Labels("A", "B", "A", "C"),
			Shape:     ShapeCategorical,
			Positives: Labels("A", "B", "C"),
			Fraction:  1,
		},
		{
			Name:      "positives",
			Scale:     Integers(3, 1, 2, 3),
			Shape:     ShapeNumeric,
			Positives: Integers(1, 2, 3),
			Fraction:  1,
		},
		{
			Name:      "negatives",
			Scale:     Integers(-3, -1),
			Shape:     ShapeNumeric,
			Negatives: Integers(-1, -3),
			Fraction:  0,
		},
		{
			Name:      "split",
			Scale:     Integers(-5, -2, 0, 3, 7),
			Shape:     ShapeSplit,
			Positives: Integers(0, 3, 7),
			Negatives: Integers(-2, -5),
			Fraction:  0.5,
		},
		{
			Name:      "split-without-zero",
			Scale:     Floats(1.5, -1, 2.5, -0.5),
			Shape:     ShapeSplit,
			Positives: Floats(1.5, 2.5),
			Negatives: Floats(-0.5, -1),
			Fraction:  0.5,
		},
		{
			Name:       "sequential-integers",
			Scale:      Integers(1, 5, 10),
			Sequential: true,
			Shape:      ShapeNumeric,
			Positives:  Integers(0, 4, 8, 12),
			Fraction:   1,
		},
		{
			Name:       "sequential-negatives",
			Scale:      Integers(-1, -7),
			Sequential: true,
			Shape:      ShapeNumeric,
			Negatives:  Integers(-4, -8),
			Fraction:   0,
		},
		{
			Name:       "sequential-floats",
			Scale:      Floats(0.5, 2),
			Sequential: true,
			Shape:      ShapeNumeric,
			Positives:  Floats(0, 1, 2),
			Fraction:   1,
		},
		{
			Name:       "sequential-zero-integer",
			Scale:      Integers(0, 0),
			Sequential: true,
			Shape:      ShapeNumeric,
			Positives:  Integers(0),
			Fraction:   1,
		},
		{
			Name:       "sequential-zero-float",
			Scale:      Floats(0),
			Sequential: true,
			Shape:      ShapeNumeric,
			Positives:  Floats(0),
			Fraction:   1,
		},
		{
			Name:       "sequential-labels",
			Scale:      Labels("x", "y"),
			Sequential: true,
			Shape:      ShapeCategorical,
			Positives:  Labels("x", "y"),
			Fraction:   1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			kind, err := Classify(tt.Scale, tt.Sequential)
			require.NoError(t, err)
			assert.Equal(t, tt.Shape, kind.Shape)
			assert.Equal(t, tt.Positives, Scale(kind.Positives))
			assert.Equal(t, tt.Negatives, Scale(kind.Negatives))
			assert.InDelta(t, tt.Fraction, kind.Fraction(), 1e-9)
		})
	}
}

func TestClassifyErrors(t *testing.T) {
	_, err := Classify(nil, false)
	assert.ErrorIs(t, err, ErrEmptyScale)

	_, err = Classify(Scale{Label("a"), Integer(1)}, false)
	assert.ErrorIs(t, err, ErrMixedScale)

	_, err = Classify(Scale{Integer(1), Float(1.5)}, false)
	assert.ErrorIs(t, err, ErrMixedScale)
}

func TestAxisKindSlots(t *testing.T) {
	kind, err := Classify(Integers(-1, 0, 1), false)
	require.NoError(t, err)
	assert.True(t, kind.Shared())
	assert.Equal(t, 3, kind.Len())
	assert.Equal(t, 2, kind.Slots())
	assert.InDelta(t, 0.5, kind.Fraction(), 1e-9)

	kind, err = Classify(Integers(0, 1, 2), false)
	require.NoError(t, err)
	assert.False(t, kind.Shared())
	assert.Equal(t, 3, kind.Slots())
}

func TestNumberDomain(t *testing.T) {
	dom := numberDomain{fst: 0, lst: 10}
	assert.Equal(t, 10.0, dom.Extend())
	assert.Equal(t, []float64{0, 2.5, 5, 7.5, 10}, dom.Values(4))
	assert.Equal(t, []float64{0}, dom.Values(0))
}

func TestParseValue(t *testing.T) {
	assert.Equal(t, Integer(42), ParseValue(" 42 "))
	assert.Equal(t, Float(-1.5), ParseValue("-1.5"))
	assert.Equal(t, Label("2020-01-01"), ParseValue("2020-01-01"))
	assert.Equal(t, Label("NaN"), ParseValue("NaN"))

	diff, ok := Integer(7).Diff(Integer(3))
	assert.True(t, ok)
	assert.Equal(t, 4.0, diff)
	_, ok = Integer(7).Diff(Float(3))
	assert.False(t, ok)
	_, ok = Count(7).Diff(Integer(3))
	assert.False(t, ok)
	assert.Equal(t, Count(3), Count(-3))
}
