package trackdf

import (
	"fmt"
	"io"
	"math"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/marinapapa/trackdf/crs"
)

// Column names every track table carries. ColZ is present only on
// 3-dimensional tables.
const (
	ColID   = "id"
	ColTime = "time"
	ColX    = "x"
	ColY    = "y"
	ColZ    = "z"
)

// Fix is one observation: a tracked entity, a timestamp and
// coordinates. Z is nil for 2-dimensional data.
type Fix struct {
	ID   string
	Time int64 // epoch seconds
	X    float64
	Y    float64
	Z    *float64
}

// Table is a table of fixes with an attached coordinate reference
// system. The dataframe is the single canonical row representation;
// the projection is a table-wide attribute and changes only through
// SetProjection.
//
// Methods that mutate the receiver assume exclusive ownership; use
// Project for the copying form.
type Table struct {
	df   dataframe.DataFrame
	proj crs.CRS
}

// New builds a track table over an existing dataframe. The frame must
// carry id, time, x and y columns with numeric x and y; a z column
// makes the table 3-dimensional. The frame is copied, never aliased.
func New(df dataframe.DataFrame, proj crs.CRS) (*Table, error) {
	if df.Error() != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotTrackTable, df.Error())
	}
	if err := checkColumns(df); err != nil {
		return nil, err
	}
	return &Table{df: df.Copy(), proj: proj}, nil
}

// NewFromFixes builds a track table from fix records in order. The
// table is 3-dimensional when any fix carries a Z; fixes without one
// get a missing z value.
func NewFromFixes(fixes []Fix, proj crs.CRS) (*Table, error) {
	if len(fixes) == 0 {
		return nil, fmt.Errorf("%w: no fixes", ErrNotTrackTable)
	}
	threeD := false
	for _, f := range fixes {
		if f.Z != nil {
			threeD = true
			break
		}
	}

	ids := make([]string, len(fixes))
	times := make([]int, len(fixes))
	xs := make([]float64, len(fixes))
	ys := make([]float64, len(fixes))
	var zs []float64
	if threeD {
		zs = make([]float64, len(fixes))
	}
	for i, f := range fixes {
		ids[i] = f.ID
		times[i] = int(f.Time)
		xs[i] = f.X
		ys[i] = f.Y
		if threeD {
			if f.Z != nil {
				zs[i] = *f.Z
			} else {
				zs[i] = math.NaN()
			}
		}
	}

	cols := []series.Series{
		series.New(ids, series.String, ColID),
		series.New(times, series.Int, ColTime),
		series.New(xs, series.Float, ColX),
		series.New(ys, series.Float, ColY),
	}
	if threeD {
		cols = append(cols, series.New(zs, series.Float, ColZ))
	}
	df := dataframe.New(cols...)
	if df.Error() != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotTrackTable, df.Error())
	}
	return &Table{df: df, proj: proj}, nil
}

// ReadCSV builds a track table from CSV data via the dataframe
// engine's reader. The header must name the required columns.
func ReadCSV(r io.Reader, proj crs.CRS) (*Table, error) {
	df := dataframe.ReadCSV(r)
	if df.Error() != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotTrackTable, df.Error())
	}
	return New(df, proj)
}

// DataFrame returns a copy of the underlying frame.
func (t *Table) DataFrame() dataframe.DataFrame { return t.df.Copy() }

// NRows returns the number of fixes.
func (t *Table) NRows() int {
	if t == nil {
		return 0
	}
	return t.df.Nrow()
}

// valid guards exported operations against nil receivers and frames
// that lost the required structure.
func (t *Table) valid() error {
	if t == nil {
		return ErrNotTrackTable
	}
	return checkColumns(t.df)
}

func checkColumns(df dataframe.DataFrame) error {
	types := map[string]series.Type{}
	names := df.Names()
	dfTypes := df.Types()
	for i, n := range names {
		types[n] = dfTypes[i]
	}
	for _, required := range []string{ColID, ColTime, ColX, ColY} {
		if _, ok := types[required]; !ok {
			return fmt.Errorf("%w: missing column %q", ErrNotTrackTable, required)
		}
	}
	for _, coord := range []string{ColX, ColY} {
		if ct := types[coord]; ct != series.Float && ct != series.Int {
			return fmt.Errorf("%w: column %q must be numeric, got %s", ErrNotTrackTable, coord, ct)
		}
	}
	return nil
}

func (t *Table) hasColumn(name string) bool {
	for _, n := range t.df.Names() {
		if n == name {
			return true
		}
	}
	return false
}
