package charts

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

type Palette []string

// At returns the color at index i, cycling over the palette.
func (p Palette) At(i int) string {
	if len(p) == 0 {
		return "black"
	}
	if i < 0 {
		i = -i
	}
	return p[i%len(p)]
}

var (
	Category10 Palette
	Tableau10  Palette
)

func init() {
	Category10 = splitColorString("1f77b4ff7f0e2ca02cd627289467bd8c564be377c27f7f7fbcbd2217becf")
	Tableau10 = splitColorString("4e79a7f28e2ce1575976b7b259a14fedc949af7aa1ff9da79c755fbab0ab")
}

func splitColorString(str string) Palette {
	var arr Palette
	for i := 0; i+6 <= len(str); i += 6 {
		arr = append(arr, "#"+str[i:i+6])
	}
	return arr
}

const (
	hueRatio     = 0.60
	defaultCount = 5
)

// hues, saturations and values are kept in [0, 1]; go-colorful expects hues
// in degrees.
type hsv struct {
	h float64
	s float64
	v float64
}

func (c hsv) color() colorful.Color {
	return colorful.Hsv(c.h*360, c.s, c.v)
}

var seedColor = colorful.Hsv(228, 0.58, 0.89)

// ColorEngine generates a deterministic sequence of colors from a seed.
// In normal mode each color is far from the previous one; in gradual mode
// the colors share the same hue and grow darker on a light theme, lighter
// on a dark one.
type ColorEngine struct {
	seed    hsv
	random  float64
	dark    bool
	gradual bool
	stable  float64
	count   int
}

// NewColorEngine creates an engine. Only the first four decimals of seed
// are used.
func NewColorEngine(seed float64, dark bool) *ColorEngine {
	var (
		rng     = math.Trunc(seed*10000) / 10000
		h, s, v = seedColor.Hsv()
		base    = hsv{h: h / 360, s: s, v: v}
	)
	return &ColorEngine{
		seed:   base,
		random: rng,
		dark:   dark,
		stable: math.Mod(rng+hueRatio+base.h, 1),
		count:  defaultCount,
	}
}

func (e *ColorEngine) Seed() float64 {
	return e.random
}

// Count sets the number of colors a gradual engine spreads its values
// over. Non positive counts are ignored.
func (e *ColorEngine) Count(n int) *ColorEngine {
	if n > 0 {
		e.count = n
	}
	return e
}

func (e *ColorEngine) Gradual(gradual bool) *ColorEngine {
	e.gradual = gradual
	if !gradual {
		return e
	}
	if e.dark {
		e.seed.v = 0.15
	} else {
		e.seed.v = 0.85
	}
	return e
}

// Next returns the next color as an hexadecimal string.
func (e *ColorEngine) Next() string {
	var next hsv
	if e.gradual {
		diff := 0.85 / float64(e.count)
		next = hsv{h: e.stable, s: 0.8}
		if e.dark {
			next.v = math.Min(e.seed.v+diff, 0.925)
		} else {
			next.v = math.Max(e.seed.v-diff, 0.125)
		}
	} else {
		h := math.Mod(e.random+hueRatio+e.seed.h, 1)
		if e.dark {
			next = hsv{h: h, s: 0.8, v: 0.5}
		} else {
			next = hsv{h: h, s: 0.69, v: 0.85}
		}
	}
	e.seed = next
	return next.color().Hex()
}

func (e *ColorEngine) Take(n int) []string {
	list := make([]string, 0, max(n, 0))
	for i := 0; i < n; i++ {
		list = append(list, e.Next())
	}
	return list
}

// Assign gives a color to each label, in order.
func (e *ColorEngine) Assign(labels []string) map[string]string {
	set := make(map[string]string, len(labels))
	for _, k := range labels {
		if _, ok := set[k]; ok {
			continue
		}
		set[k] = e.Next()
	}
	return set
}
