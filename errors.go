package trackdf

import "errors"

// Track table operation errors. Detail sites wrap these with %w, so
// callers match with errors.Is.
var (
	ErrNotTrackTable         = errors.New("not a track table")
	ErrInvalidProjectionSpec = errors.New("invalid projection specification")
	ErrIncompleteCoordinates = errors.New("incomplete coordinates")
	ErrProjectionMismatch    = errors.New("projection mismatch")
	ErrSchemaMismatch        = errors.New("schema mismatch")
	ErrEmptyInput            = errors.New("no track tables to bind")
)
