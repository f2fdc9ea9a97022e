package trackdf

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Bind concatenates track tables row-wise. Each input is a single
// *Table or a []*Table; nested slices are flattened so the result is
// the ordered concatenation of every table's rows. All inputs must
// share the same projection and the same column schema. Inputs are
// never modified.
func Bind(inputs ...any) (*Table, error) {
	tables, err := flatten(inputs)
	if err != nil {
		return nil, err
	}
	if len(tables) == 0 {
		return nil, ErrEmptyInput
	}

	first := tables[0]
	if err := first.valid(); err != nil {
		return nil, fmt.Errorf("input 0: %w", err)
	}
	for i, tb := range tables[1:] {
		if err := tb.valid(); err != nil {
			return nil, fmt.Errorf("input %d: %w", i+1, err)
		}
		if !first.proj.Equal(tb.proj) {
			return nil, fmt.Errorf("%w: input 0 has %s, input %d has %s",
				ErrProjectionMismatch, first.proj, i+1, tb.proj)
		}
		if err := sameSchema(first.df, tb.df); err != nil {
			return nil, fmt.Errorf("input %d: %w", i+1, err)
		}
	}

	out := first.df.Copy()
	for _, tb := range tables[1:] {
		out = out.RBind(tb.df)
		if out.Error() != nil {
			return nil, fmt.Errorf("%w: %v", ErrSchemaMismatch, out.Error())
		}
	}
	return &Table{df: out, proj: first.proj}, nil
}

func flatten(inputs []any) ([]*Table, error) {
	var out []*Table
	for i, in := range inputs {
		switch v := in.(type) {
		case *Table:
			if v == nil {
				return nil, fmt.Errorf("input %d: %w", i, ErrNotTrackTable)
			}
			out = append(out, v)
		case []*Table:
			for _, tb := range v {
				if tb == nil {
					return nil, fmt.Errorf("input %d: %w", i, ErrNotTrackTable)
				}
				out = append(out, tb)
			}
		default:
			return nil, fmt.Errorf("input %d: %w: %T", i, ErrNotTrackTable, in)
		}
	}
	return out, nil
}

func sameSchema(a, b dataframe.DataFrame) error {
	at, bt := schemaOf(a), schemaOf(b)
	if len(at) != len(bt) {
		return fmt.Errorf("%w: %d columns vs %d", ErrSchemaMismatch, len(at), len(bt))
	}
	for name, typ := range at {
		other, ok := bt[name]
		if !ok {
			return fmt.Errorf("%w: column %q absent", ErrSchemaMismatch, name)
		}
		if other != typ {
			return fmt.Errorf("%w: column %q is %s vs %s", ErrSchemaMismatch, name, typ, other)
		}
	}
	return nil
}

func schemaOf(df dataframe.DataFrame) map[string]series.Type {
	m := make(map[string]series.Type, df.Ncol())
	types := df.Types()
	for i, n := range df.Names() {
		m[n] = types[i]
	}
	return m
}
