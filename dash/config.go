package dash

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/modav/charts"
	"gopkg.in/yaml.v3"
)

const (
	KindBar     = "bar"
	KindLine    = "line"
	KindStacked = "stacked"
)

const (
	defaultWidth  = 800
	defaultHeight = 600
)

var (
	ErrKind   = errors.New("unsupported chart kind")
	ErrConfig = errors.New("invalid configuration")
)

// Column describes the column feeding one axis.
type Column struct {
	Index      int    `yaml:"column"`
	Label      string `yaml:"label"`
	Sequential bool   `yaml:"sequential"`
}

// Columns is a list of column indexes. In yaml it is either a sequence of
// integers or a string of comma separated indexes and ranges ("1-3,5").
type Columns []int

func (c *Columns) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var list []int
		if err := node.Decode(&list); err != nil {
			return err
		}
		*c = list
	case yaml.ScalarNode:
		list, err := ParseColumns(node.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		*c = list
	default:
		return fmt.Errorf("line %d: %w: columns should be a list or a string", node.Line, ErrConfig)
	}
	return nil
}

// ParseColumns parses a list of indexes and ranges separated by commas.
func ParseColumns(str string) ([]int, error) {
	var list []int
	for _, part := range strings.Split(str, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		fst, lst, ok := strings.Cut(part, "-")
		beg, err := strconv.Atoi(strings.TrimSpace(fst))
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrIndex, part)
		}
		if !ok {
			list = append(list, beg)
			continue
		}
		end, err := strconv.Atoi(strings.TrimSpace(lst))
		if err != nil || end < beg {
			return nil, fmt.Errorf("%w: %s", ErrIndex, part)
		}
		list = append(list, ExpandRange(beg, end)...)
	}
	return list, nil
}

// Config is the description of one chart.
type Config struct {
	Title string `yaml:"title"`
	Kind  string `yaml:"kind"`

	File     string  `yaml:"file"`
	Sheet    string  `yaml:"sheet"`
	NoHeader bool    `yaml:"no-header"`
	Flexible bool    `yaml:"flexible"`
	Exclude  Columns `yaml:"exclude"`

	X Column `yaml:"x"`
	Y Column `yaml:"y"`
	// Series are the columns of a line chart, one line per column. With a
	// bar chart, they are summed into the value of the bar.
	Series Columns `yaml:"series"`
	// Stack are the columns accumulated in the bars of a stacked chart.
	Stack Columns `yaml:"stack"`
	// Labels is the column giving the label of each bar, -1 for none.
	Labels int `yaml:"labels"`

	Clean      bool   `yaml:"clean"`
	Horizontal bool   `yaml:"horizontal"`
	Order      bool   `yaml:"order"`
	Legend     string `yaml:"legend"`
	Caption    string `yaml:"caption"`

	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Gradual bool    `yaml:"gradual"`
	Seed    float64 `yaml:"seed"`
	Dark    bool    `yaml:"dark"`
	Style   Style   `yaml:"style"`

	Output string `yaml:"output"`
}

func Default() Config {
	return Config{
		Kind:   KindBar,
		X:      Column{Index: 0},
		Y:      Column{Index: 1},
		Labels: -1,
		Legend: charts.DefaultLegend.String(),
		Width:  defaultWidth,
		Height: defaultHeight,
		Seed:   0.5,
	}
}

// Load reads the configuration at path. The data file and the output are
// resolved against the directory of the configuration.
func Load(path string) (Config, error) {
	r, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer r.Close()

	cfg, err := Decode(r)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	dir := filepath.Dir(path)
	if cfg.File != "" && !filepath.IsAbs(cfg.File) {
		cfg.File = filepath.Join(dir, cfg.File)
	}
	if cfg.Output != "" && !filepath.IsAbs(cfg.Output) {
		cfg.Output = filepath.Join(dir, cfg.Output)
	}
	if cfg.Title == "" {
		cfg.Title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return cfg, nil
}

func Decode(r io.Reader) (Config, error) {
	var (
		cfg = Default()
		dec = yaml.NewDecoder(r)
	)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, err
	}
	cfg.Kind = strings.ToLower(strings.TrimSpace(cfg.Kind))
	if cfg.Width <= 0 {
		cfg.Width = defaultWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = defaultHeight
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch c.Kind {
	case KindBar, KindLine:
	case KindStacked:
		if len(c.Stack) == 0 {
			return fmt.Errorf("%w: stacked chart without stack columns", ErrConfig)
		}
	default:
		return fmt.Errorf("%w: %q", ErrKind, c.Kind)
	}
	if _, err := charts.ParseLegendPosition(c.Legend); err != nil {
		return err
	}
	if _, ok := charts.ParseMarker(c.Style.Marker); !ok {
		return fmt.Errorf("%w: unknown marker %q", ErrConfig, c.Style.Marker)
	}
	if _, ok := charts.ParseLineKind(c.Style.Type); !ok {
		return fmt.Errorf("%w: unknown line type %q", ErrConfig, c.Style.Type)
	}
	if c.X.Index < 0 || c.Y.Index < 0 {
		return fmt.Errorf("%w: negative column", ErrIndex)
	}
	return nil
}

// Name gives the base name of the svg file produced for the chart.
func (c Config) Name() string {
	if c.Output != "" {
		return filepath.Base(c.Output)
	}
	name := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '/', '\\':
			return '-'
		default:
			return r
		}
	}, strings.ToLower(c.Title))
	if name == "" {
		name = "chart"
	}
	return name + ".svg"
}

func (c Config) legend() charts.LegendPosition {
	pos, _ := charts.ParseLegendPosition(c.Legend)
	return pos
}

func (c Config) axisOptions() charts.AxisOptions {
	return charts.AxisOptions{
		SequentialX: c.X.Sequential,
		SequentialY: c.Y.Sequential,
		Clean:       c.Clean,
		LabelX:      c.X.Label,
		LabelY:      c.Y.Label,
		Caption:     c.Caption,
		Horizontal:  c.Horizontal,
	}
}

func (c Config) style() charts.Style {
	if c.Dark {
		return charts.DarkStyle()
	}
	return charts.DefaultStyle()
}

func (c Config) colors() *charts.ColorEngine {
	return charts.NewColorEngine(c.Seed, c.Dark).Gradual(c.Gradual)
}
