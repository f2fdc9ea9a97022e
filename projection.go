package trackdf

import (
	"fmt"
	"math"

	"github.com/go-gota/gota/series"

	"github.com/marinapapa/trackdf/crs"
)

// Projection returns the table's coordinate reference system.
func (t *Table) Projection() (crs.CRS, error) {
	if err := t.valid(); err != nil {
		return crs.CRS{}, err
	}
	return t.proj, nil
}

// SetProjection changes the table's coordinate reference system. The
// spec is a projection string (PROJ parameters, an EPSG reference or
// a registered alias) or a crs.CRS value.
//
// When the current projection is defined, every x/y pair is
// reprojected through crs.Default and the coordinate columns are
// rewritten; the rewrite is all-or-nothing, so on error the table is
// unchanged. Rows with a missing x or y cannot be transformed and
// fail the whole operation. When the current projection is
// unprojected there is nothing to transform and only the attribute
// changes.
func (t *Table) SetProjection(spec any) error {
	if err := t.valid(); err != nil {
		return err
	}
	target, err := resolveSpec(spec)
	if err != nil {
		return err
	}
	if t.proj.Equal(target) {
		return nil
	}

	if t.proj.IsDefined() && target.IsDefined() {
		xs := t.df.Col(ColX).Float()
		ys := t.df.Col(ColY).Float()
		for i := range xs {
			if math.IsNaN(xs[i]) || math.IsNaN(ys[i]) {
				return fmt.Errorf("%w: row %d has a missing x or y", ErrIncompleteCoordinates, i)
			}
		}
		if err := crs.Default.Transform(t.proj, target, xs, ys); err != nil {
			return fmt.Errorf("reprojecting %s to %s: %w", t.proj, target, err)
		}
		df := t.df.
			Mutate(series.New(xs, series.Float, ColX)).
			Mutate(series.New(ys, series.Float, ColY))
		if df.Error() != nil {
			return fmt.Errorf("rewriting coordinate columns: %w", df.Error())
		}
		t.df = df
	}
	t.proj = target
	return nil
}

// Project is the functional form of SetProjection: the receiver is
// left untouched and a reprojected copy is returned.
func (t *Table) Project(spec any) (*Table, error) {
	if err := t.valid(); err != nil {
		return nil, err
	}
	out := &Table{df: t.df.Copy(), proj: t.proj}
	if err := out.SetProjection(spec); err != nil {
		return nil, err
	}
	return out, nil
}

func resolveSpec(spec any) (crs.CRS, error) {
	switch v := spec.(type) {
	case crs.CRS:
		return v, nil
	case string:
		c, err := crs.Resolve(v)
		if err != nil {
			return crs.CRS{}, fmt.Errorf("%w: %v", ErrInvalidProjectionSpec, err)
		}
		return c, nil
	case nil:
		return crs.CRS{}, fmt.Errorf("%w: projection must be given explicitly", ErrInvalidProjectionSpec)
	default:
		return crs.CRS{}, fmt.Errorf("%w: unsupported type %T", ErrInvalidProjectionSpec, spec)
	}
}
