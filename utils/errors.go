package utils

import (
	"errors"
	"fmt"
)

// StatusOK is the placeholder error code meaning "nothing to report".
const StatusOK = "OK"

// ErrLengthMismatch is returned when element-wise operations receive
// sequences of different lengths.
var ErrLengthMismatch = errors.New("length mismatch")

// AppendError merges a new set of per-row error codes into an
// existing one, element-wise. An existing StatusOK placeholder is
// replaced outright; any other code accumulates the new one with a
// "+" separator.
func AppendError(existing, added []string) ([]string, error) {
	if len(existing) != len(added) {
		return nil, fmt.Errorf("%w: %d existing codes vs %d new",
			ErrLengthMismatch, len(existing), len(added))
	}
	out := make([]string, len(existing))
	for i := range existing {
		if existing[i] == StatusOK {
			out[i] = added[i]
		} else {
			out[i] = existing[i] + "+" + added[i]
		}
	}
	return out, nil
}
