package dash

import (
	"errors"
	"strings"

	"github.com/modav/charts"
)

var (
	ErrIndex   = errors.New("invalid index")
	ErrColumn  = errors.New("not a numeric column")
	ErrMissing = errors.New("missing value")
)

type Indexer interface {
	Columns() []int
}

// Selector extracts the value of a row.
type Selector interface {
	Select([]string) (charts.Value, error)
	Indexer
}

type summer struct {
	index []int
}

// SelectSum gives the sum of the numeric columns of a row. The sum is an
// integer unless one of the cells is a float.
func SelectSum(list []int) Selector {
	return summer{
		index: list,
	}
}

func (s summer) Columns() []int {
	return s.index
}

func (s summer) Select(row []string) (charts.Value, error) {
	var (
		whole int64
		real  float64
		float bool
	)
	for _, i := range s.index {
		v, err := numeric(row, i)
		if err != nil {
			return v, err
		}
		f, _ := v.Float64()
		real += f
		if v.Kind() == charts.KindFloat {
			float = true
		} else {
			whole += int64(f)
		}
	}
	if float {
		return charts.Float(real), nil
	}
	return charts.Integer(whole), nil
}

type single struct {
	index int
}

func SelectSingle(i int) Selector {
	return single{
		index: i,
	}
}

func (s single) Columns() []int {
	return []int{s.index}
}

func (s single) Select(row []string) (charts.Value, error) {
	return numeric(row, s.index)
}

// Select picks the selector matching a list of columns: the column itself
// when there is only one, their sum otherwise.
func Select(list []int) Selector {
	if len(list) == 1 {
		return SelectSingle(list[0])
	}
	return SelectSum(list)
}

func numeric(row []string, i int) (charts.Value, error) {
	if i < 0 || i >= len(row) {
		return charts.Value{}, ColumnError{Index: i, Err: ErrIndex}
	}
	if strings.TrimSpace(row[i]) == "" {
		return charts.Value{}, ColumnError{Index: i, Err: ErrMissing}
	}
	v := charts.ParseValue(row[i])
	if !v.IsNumeric() {
		return v, ColumnError{Index: i, Err: ErrColumn}
	}
	return v, nil
}

func ExpandRange(fst, lst int) []int {
	var list []int
	for i := fst; i <= lst; i++ {
		list = append(list, i)
	}
	return list
}
