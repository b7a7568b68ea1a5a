package charts

import (
	"cmp"
	"math"
	"strconv"
	"strings"
)

type Kind int

const (
	KindLabel Kind = iota
	KindInteger
	KindFloat
	KindCount
)

func (k Kind) String() string {
	switch k {
	case KindLabel:
		return "label"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindCount:
		return "count"
	default:
		return "unknown"
	}
}

// Value is one domain value of a scale. Values are comparable and are used
// as keys of a DrawnOutput record.
type Value struct {
	kind  Kind
	label string
	whole int64
	real  float64
}

func Label(s string) Value {
	return Value{kind: KindLabel, label: s}
}

func Integer(i int64) Value {
	return Value{kind: KindInteger, whole: i}
}

func Float(f float64) Value {
	return Value{kind: KindFloat, real: f}
}

func Count(n int64) Value {
	if n < 0 {
		n = -n
	}
	return Value{kind: KindCount, whole: n}
}

// ParseValue guesses the kind of a raw cell: integer first, then float,
// anything else is a label.
func ParseValue(str string) Value {
	str = strings.TrimSpace(str)
	if i, err := strconv.ParseInt(str, 10, 64); err == nil {
		return Integer(i)
	}
	if f, err := strconv.ParseFloat(str, 64); err == nil && !math.IsNaN(f) {
		return Float(f)
	}
	return Label(str)
}

func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) IsNumeric() bool {
	return v.kind != KindLabel
}

func (v Value) Float64() (float64, bool) {
	switch v.kind {
	case KindInteger, KindCount:
		return float64(v.whole), true
	case KindFloat:
		return v.real, true
	default:
		return 0, false
	}
}

func (v Value) Sign() int {
	switch v.kind {
	case KindInteger, KindCount:
		return cmp.Compare(v.whole, 0)
	case KindFloat:
		return cmp.Compare(v.real, 0)
	default:
		return 0
	}
}

// Diff returns v - other. It is only defined for two values of the same
// numeric kind.
func (v Value) Diff(other Value) (float64, bool) {
	if !v.IsNumeric() || v.kind != other.kind {
		return 0, false
	}
	if v.kind == KindFloat {
		return v.real - other.real, true
	}
	return float64(v.whole - other.whole), true
}

// Compare orders values of the same kind. Values of different kinds are
// ordered by kind.
func (v Value) Compare(other Value) int {
	if v.kind != other.kind {
		return cmp.Compare(v.kind, other.kind)
	}
	switch v.kind {
	case KindLabel:
		return strings.Compare(v.label, other.label)
	case KindFloat:
		return cmp.Compare(v.real, other.real)
	default:
		return cmp.Compare(v.whole, other.whole)
	}
}

func (v Value) abs() Value {
	if v.Sign() >= 0 {
		return v
	}
	x := v
	x.whole = -x.whole
	x.real = -x.real
	return x
}

func (v Value) String() string {
	switch v.kind {
	case KindLabel:
		return v.label
	case KindFloat:
		return strconv.FormatFloat(v.real, 'f', -1, 64)
	default:
		return strconv.FormatInt(v.whole, 10)
	}
}

// Scale is the ordered list of domain values of one axis.
type Scale []Value

func Labels(str ...string) Scale {
	s := make(Scale, 0, len(str))
	for i := range str {
		s = append(s, Label(str[i]))
	}
	return s
}

func Integers(list ...int64) Scale {
	s := make(Scale, 0, len(list))
	for i := range list {
		s = append(s, Integer(list[i]))
	}
	return s
}

func Floats(list ...float64) Scale {
	s := make(Scale, 0, len(list))
	for i := range list {
		s = append(s, Float(list[i]))
	}
	return s
}
