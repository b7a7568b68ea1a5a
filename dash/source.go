package dash

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/modav/charts"
	"github.com/xuri/excelize/v2"
)

var (
	ErrFormat = errors.New("unsupported file format")
	ErrEmpty  = errors.New("no data")
)

// Table is the content of a data file. Rows hold the raw cells, the header
// excluded.
type Table struct {
	Header []string
	Rows   [][]string
}

// Name gives the header of column i, or a default name when the file has
// no header.
func (t Table) Name(i int) string {
	if i >= 0 && i < len(t.Header) && t.Header[i] != "" {
		return t.Header[i]
	}
	return fmt.Sprintf("column %d", i+1)
}

func (t Table) Len() int {
	return len(t.Rows)
}

// Column gives the values of column i. A column mixing labels and numbers
// is made of labels only; one mixing integers and floats, of floats only.
func (t Table) Column(i int) (charts.Scale, error) {
	list := make(charts.Scale, 0, len(t.Rows))
	for j, row := range t.Rows {
		if i < 0 || i >= len(row) {
			return nil, ColumnError{Index: i, Row: j, Err: ErrIndex}
		}
		list = append(list, charts.ParseValue(row[i]))
	}
	return Unify(list), nil
}

// Exclude removes the rows at the given indexes.
func (t Table) Exclude(rows []int) Table {
	if len(rows) == 0 {
		return t
	}
	var list [][]string
	for i, r := range t.Rows {
		if slices.Contains(rows, i) {
			continue
		}
		list = append(list, r)
	}
	t.Rows = list
	return t
}

type ColumnError struct {
	Index int
	Row   int
	Err   error
}

func (e ColumnError) Error() string {
	return fmt.Sprintf("column %d (row %d): %s", e.Index, e.Row+1, e.Err)
}

func (e ColumnError) Unwrap() error {
	return e.Err
}

// Unify converts the values of a list to a single kind.
func Unify(list []charts.Value) []charts.Value {
	var labels, floats bool
	for _, v := range list {
		switch v.Kind() {
		case charts.KindLabel:
			labels = true
		case charts.KindFloat:
			floats = true
		default:
		}
	}
	if !labels && !floats {
		return list
	}
	for i, v := range list {
		if labels {
			list[i] = charts.Label(v.String())
			continue
		}
		if f, ok := v.Float64(); ok {
			list[i] = charts.Float(f)
		}
	}
	return list
}

type Options struct {
	Sheet    string
	NoHeader bool
	Flexible bool
}

func (c Config) sourceOptions() Options {
	return Options{
		Sheet:    c.Sheet,
		NoHeader: c.NoHeader,
		Flexible: c.Flexible,
	}
}

// Open reads a csv or xlsx file, chosen by its extension.
func Open(path string, opts Options) (Table, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv", ".txt", "":
		r, err := os.Open(path)
		if err != nil {
			return Table{}, err
		}
		defer r.Close()
		return ReadCSV(r, opts)
	case ".xlsx", ".xlsm":
		return ReadXLSX(path, opts)
	default:
		return Table{}, fmt.Errorf("%w: %s", ErrFormat, ext)
	}
}

func ReadCSV(r io.Reader, opts Options) (Table, error) {
	rs := csv.NewReader(r)
	rs.TrimLeadingSpace = true
	if opts.Flexible {
		rs.FieldsPerRecord = -1
	}
	var rows [][]string
	for {
		row, err := rs.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return Table{}, err
		}
		rows = append(rows, row)
	}
	return makeTable(rows, opts)
}

// ReadXLSX reads the rows of a sheet of a workbook. The first sheet is used
// when no sheet is given.
func ReadXLSX(path string, opts Options) (Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return Table{}, err
	}
	defer f.Close()

	sheet := opts.Sheet
	if sheet == "" {
		list := f.GetSheetList()
		if len(list) == 0 {
			return Table{}, ErrEmpty
		}
		sheet = list[0]
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return Table{}, fmt.Errorf("%s: %w", sheet, err)
	}
	return makeTable(rows, opts)
}

func makeTable(rows [][]string, opts Options) (Table, error) {
	var t Table
	if !opts.NoHeader && len(rows) > 0 {
		t.Header, rows = rows[0], rows[1:]
	}
	for _, r := range rows {
		if isBlank(r) {
			continue
		}
		for i := range r {
			r[i] = strings.TrimSpace(r[i])
		}
		t.Rows = append(t.Rows, r)
	}
	if len(t.Rows) == 0 {
		return t, ErrEmpty
	}
	return t, nil
}

func isBlank(row []string) bool {
	return !slices.ContainsFunc(row, func(s string) bool {
		return strings.TrimSpace(s) != ""
	})
}
