package trackdf

// IsGeo reports whether the table's coordinates are expressed in a
// defined coordinate reference system rather than raw numeric units.
func (t *Table) IsGeo() (bool, error) {
	if err := t.valid(); err != nil {
		return false, err
	}
	return t.proj.IsDefined(), nil
}

// NDims returns 3 when the table carries a z column, 2 otherwise.
func (t *Table) NDims() (int, error) {
	if err := t.valid(); err != nil {
		return 0, err
	}
	if t.hasColumn(ColZ) {
		return 3, nil
	}
	return 2, nil
}

// NTracks returns the number of distinct tracked entities.
func (t *Table) NTracks() (int, error) {
	if err := t.valid(); err != nil {
		return 0, err
	}
	seen := map[string]struct{}{}
	for _, id := range t.df.Col(ColID).Records() {
		seen[id] = struct{}{}
	}
	return len(seen), nil
}
