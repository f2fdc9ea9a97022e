package crs

import (
	"fmt"
	"strings"
)

// aliases maps lower-cased registered names to parsed descriptors.
var aliases = map[string]CRS{}

// Register adds a named alias for a projection specification. Later
// registrations of the same name overwrite earlier ones.
func Register(name, spec string) error {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return fmt.Errorf("empty alias name")
	}
	c, err := Parse(spec)
	if err != nil {
		return fmt.Errorf("alias %q: %w", name, err)
	}
	aliases[n] = c
	return nil
}

// Resolve turns a specification string into a CRS, consulting the
// alias registry first and falling back to Parse.
func Resolve(spec string) (CRS, error) {
	if c, ok := aliases[strings.ToLower(strings.TrimSpace(spec))]; ok {
		return c, nil
	}
	return Parse(spec)
}
