package crs

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// CRS is a coordinate reference system descriptor. The zero value is
// the unprojected state. Two CRS values compare equal when their
// normalized definitions match, regardless of parameter order or
// spacing in the original specification.
type CRS struct {
	def string
}

var (
	// Unprojected is the zero CRS: no transform is defined and
	// coordinates are raw numeric values.
	Unprojected = CRS{}

	// LongLat is geographic WGS84 longitude/latitude.
	LongLat = MustParse("+proj=longlat +datum=WGS84 +no_defs")
)

// Parse builds a CRS from a specification string. Accepted forms are
// PROJ parameter strings ("+proj=... +key=value ...") and EPSG
// references ("EPSG:nnnn"). The definition is normalized so that
// structural equality holds across formatting differences.
func Parse(spec string) (CRS, error) {
	s := strings.TrimSpace(spec)
	if s == "" {
		return CRS{}, fmt.Errorf("empty projection specification")
	}
	if code, ok := strings.CutPrefix(strings.ToUpper(s), "EPSG:"); ok {
		if _, err := strconv.Atoi(code); err != nil || code == "" {
			return CRS{}, fmt.Errorf("malformed EPSG reference %q", spec)
		}
		return CRS{def: "EPSG:" + code}, nil
	}
	if strings.HasPrefix(s, "+") {
		return parseProjString(s)
	}
	return CRS{}, fmt.Errorf("unrecognized projection specification %q", spec)
}

// MustParse is Parse panicking on error, for package-level descriptors.
func MustParse(spec string) CRS {
	c, err := Parse(spec)
	if err != nil {
		panic(err)
	}
	return c
}

func parseProjString(s string) (CRS, error) {
	tokens := strings.Fields(s)
	hasProj := false
	for _, tok := range tokens {
		if !strings.HasPrefix(tok, "+") || len(tok) < 2 {
			return CRS{}, fmt.Errorf("malformed parameter %q in %q", tok, s)
		}
		key, _, _ := strings.Cut(tok[1:], "=")
		if key == "" {
			return CRS{}, fmt.Errorf("malformed parameter %q in %q", tok, s)
		}
		if key == "proj" || key == "init" {
			hasProj = true
		}
	}
	if !hasProj {
		return CRS{}, fmt.Errorf("projection string %q has no +proj or +init parameter", s)
	}
	sort.Strings(tokens)
	return CRS{def: strings.Join(tokens, " ")}, nil
}

// IsDefined reports whether the CRS denotes a real coordinate system
// rather than the unprojected state.
func (c CRS) IsDefined() bool { return c.def != "" }

// Equal reports structural equality of two descriptors.
func (c CRS) Equal(other CRS) bool { return c.def == other.def }

// Definition returns the normalized specification, suitable for
// handing to PROJ. Empty for the unprojected state.
func (c CRS) Definition() string { return c.def }

func (c CRS) String() string {
	if c.def == "" {
		return "unprojected"
	}
	return c.def
}

// isLongLat reports whether coordinates in this system are geodetic
// degrees rather than projected units.
func (c CRS) isLongLat() bool {
	if strings.HasPrefix(c.def, "EPSG:") {
		return c.def == "EPSG:4326"
	}
	for _, tok := range strings.Fields(c.def) {
		if tok == "+proj=longlat" || tok == "+proj=latlong" {
			return true
		}
	}
	return false
}
