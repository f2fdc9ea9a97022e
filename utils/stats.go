package utils

// ModeOf returns the most frequent value(s) of a collection. Values
// equal to any of the given missing sentinels are dropped before
// counting. All ties for the maximum frequency are included; their
// order is unspecified. An empty or all-missing collection yields nil.
func ModeOf[T comparable](values []T, missing ...T) []T {
	counts := make(map[T]int, len(values))
	for _, v := range values {
		dropped := false
		for _, m := range missing {
			if v == m {
				dropped = true
				break
			}
		}
		if dropped {
			continue
		}
		counts[v]++
	}

	max := 0
	for _, c := range counts {
		if c > max {
			max = c
		}
	}
	if max == 0 {
		return nil
	}
	var modes []T
	for v, c := range counts {
		if c == max {
			modes = append(modes, v)
		}
	}
	return modes
}
