package charts

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/midbel/slices"
)

var (
	ErrEmptyScale = errors.New("empty scale")
	ErrMixedScale = errors.New("scale mixes values of different kinds")
)

type Shape int

const (
	ShapeCategorical Shape = iota
	ShapeNumeric
	ShapeSplit
)

func (s Shape) String() string {
	switch s {
	case ShapeCategorical:
		return "categorical"
	case ShapeNumeric:
		return "numeric"
	case ShapeSplit:
		return "split"
	default:
		return "unknown"
	}
}

// AxisKind describes the tick runs of an axis. Positives are sorted
// ascending and Negatives by ascending magnitude, both walking away from
// the zero crossing. A categorical axis only uses Positives.
type AxisKind struct {
	Shape     Shape
	Positives []Value
	Negatives []Value
}

func Categorical(points []Value) AxisKind {
	return AxisKind{
		Shape:     ShapeCategorical,
		Positives: points,
	}
}

// Numeric creates a single run axis. A run made of negative values is
// laid out from the zero end toward the negative end.
func Numeric(points []Value) AxisKind {
	k := AxisKind{Shape: ShapeNumeric}
	if len(points) > 0 && points[0].Sign() < 0 {
		k.Negatives = points
	} else {
		k.Positives = points
	}
	return k
}

func Split(positives, negatives []Value) AxisKind {
	return AxisKind{
		Shape:     ShapeSplit,
		Positives: positives,
		Negatives: negatives,
	}
}

func (k AxisKind) IsSplit() bool {
	return k.Shape == ShapeSplit
}

func (k AxisKind) Len() int {
	return len(k.Positives) + len(k.Negatives)
}

// Shared reports whether the zero point of a split axis is a domain value
// recorded at the crossing itself.
func (k AxisKind) Shared() bool {
	return k.IsSplit() && len(k.Positives) > 0 && k.Positives[0].IsNumeric() && k.Positives[0].Sign() == 0
}

// Slots gives the number of tick intervals the run length is divided into.
func (k AxisKind) Slots() int {
	n := k.Len()
	if k.Shared() {
		n--
	}
	return n
}

// Fraction gives the share of the axis run lying on the positive side of
// the zero crossing.
func (k AxisKind) Fraction() float64 {
	switch k.Shape {
	case ShapeCategorical:
		return 1
	case ShapeNumeric:
		if len(k.Positives) == 0 && len(k.Negatives) > 0 {
			return 0
		}
		return 1
	default:
		slots := k.Slots()
		if slots <= 0 {
			return 1
		}
		pos := len(k.Positives)
		if k.Shared() {
			pos--
		}
		return float64(pos) / float64(slots)
	}
}

// Classify turns a scale into the tick runs of an axis. With sequential set,
// numeric values are replaced by evenly spaced runs covering the same range.
func Classify(scale Scale, sequential bool) (AxisKind, error) {
	if len(scale) == 0 {
		return AxisKind{}, ErrEmptyScale
	}
	kind := scale[0].Kind()
	for _, v := range scale[1:] {
		if v.Kind() != kind {
			return AxisKind{}, fmt.Errorf("%w: %s and %s", ErrMixedScale, kind, v.Kind())
		}
	}
	if kind == KindLabel {
		return Categorical(unique(scale)), nil
	}
	var positives, negatives []Value
	for _, v := range unique(scale) {
		if v.Sign() < 0 {
			negatives = append(negatives, v)
		} else {
			positives = append(positives, v)
		}
	}
	sort.Slice(positives, func(i, j int) bool {
		return positives[i].Compare(positives[j]) < 0
	})
	sort.Slice(negatives, func(i, j int) bool {
		return negatives[i].Compare(negatives[j]) > 0
	})
	if sequential {
		positives = sequence(positives, false)
		negatives = sequence(negatives, true)
	}
	switch {
	case len(positives) > 0 && len(negatives) > 0:
		return Split(positives, negatives), nil
	case len(positives) > 0:
		return Numeric(positives), nil
	case len(negatives) > 0:
		return Numeric(negatives), nil
	default:
		return AxisKind{}, ErrEmptyScale
	}
}

func unique(values []Value) []Value {
	var (
		list  = make([]Value, 0, len(values))
		seen  = make(map[Value]struct{})
		empty = struct{}{}
	)
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		list = append(list, v)
		seen[v] = empty
	}
	return list
}

type numberDomain struct {
	fst float64
	lst float64
}

func (n numberDomain) Extend() float64 {
	return n.lst - n.fst
}

// Values splits the domain in c intervals and returns their c+1 bounds.
func (n numberDomain) Values(c int) []float64 {
	if c <= 0 {
		return []float64{n.fst}
	}
	var (
		all  = make([]float64, c)
		step = n.Extend() / float64(c)
	)
	for i := 0; i < c; i++ {
		all[i] = n.fst + float64(i)*step
	}
	all = append(all, n.lst)
	return all
}

// sequence replaces a sorted partition by an evenly spaced run of the same
// kind, going from zero toward the extreme value of the partition. The
// positive run keeps zero as its first point, the negative run does not.
func sequence(points []Value, negative bool) []Value {
	if len(points) == 0 {
		return nil
	}
	var (
		last    = slices.Lst(points).abs()
		kind    = last.Kind()
		extreme float64
		count   = len(points)
	)
	extreme, _ = last.Float64()
	if extreme == 0 {
		if negative {
			return nil
		}
		return []Value{makeValue(kind, 0)}
	}
	if kind != KindFloat {
		step := math.Ceil(extreme / float64(count))
		if step < 1 {
			step = 1
		}
		extreme = step * float64(count)
	}
	var (
		dom  = numberDomain{fst: 0, lst: extreme}
		list []Value
	)
	for i, f := range dom.Values(count) {
		if negative && i == 0 {
			continue
		}
		if negative {
			f = -f
		}
		list = append(list, makeValue(kind, f))
	}
	return list
}

func makeValue(kind Kind, f float64) Value {
	switch kind {
	case KindInteger:
		return Integer(int64(math.Round(f)))
	case KindCount:
		return Count(int64(math.Round(f)))
	default:
		return Float(f)
	}
}
