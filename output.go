package charts

import (
	"math"
	"slices"
)

// DrawnOutput is the result of laying out one axis on a surface. Record maps
// every placed domain value to its pixel along the axis; AxisPos is the
// perpendicular pixel of the axis line. Step and Spacing are the domain and
// pixel distances between the last two numeric ticks, both 0 when the axis
// has less than two of them.
type DrawnOutput struct {
	Record     map[Value]float64
	AxisPos    float64
	Spacing    float64
	Step       float64
	Horizontal bool
}

func (d DrawnOutput) Len() int {
	return len(d.Record)
}

// Locate is Closest using the orientation the output was laid out with.
func (d DrawnOutput) Locate(v Value) (float64, bool) {
	return d.Closest(v, d.Horizontal)
}

// Closest returns the pixel of v. Values without a tick of their own are
// interpolated from the nearest tick of the same kind.
func (d DrawnOutput) Closest(v Value, isX bool) (float64, bool) {
	if px, ok := d.Record[v]; ok {
		return px, true
	}
	if d.Step == 0 || !v.IsNumeric() {
		return 0, false
	}
	var (
		key   Value
		found bool
		best  = math.Inf(1)
	)
	for k := range d.Record {
		diff, ok := v.Diff(k)
		if !ok {
			continue
		}
		diff = math.Abs(diff)
		if diff < best || (diff == best && k.Compare(key) < 0) {
			key, best, found = k, diff, true
		}
	}
	if !found {
		return 0, false
	}
	var (
		diff, _ = v.Diff(key)
		ratio   = diff / d.Step
		px      = d.Record[key]
	)
	if isX {
		return px + ratio*d.Spacing, true
	}
	return px - ratio*d.Spacing, true
}

// gap is the pixel distance between two neighbour ticks. Categorical axes
// have no Spacing, so the smallest distance between recorded pixels is used.
func (d DrawnOutput) gap() float64 {
	if d.Spacing > 0 {
		return d.Spacing
	}
	pixels := make([]float64, 0, len(d.Record))
	for _, px := range d.Record {
		pixels = append(pixels, px)
	}
	slices.Sort(pixels)

	var gap float64
	for i := 1; i < len(pixels); i++ {
		diff := pixels[i] - pixels[i-1]
		if diff > 0 && (gap == 0 || diff < gap) {
			gap = diff
		}
	}
	return gap
}
