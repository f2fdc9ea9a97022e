package crs

// Transformer converts coordinate pairs between two reference
// systems. Implementations transform x and y in place, element-wise,
// and must either convert every pair or leave the slices unusable
// behind a returned error; callers commit results only on success.
type Transformer interface {
	Transform(src, dst CRS, x, y []float64) error
}

// Default is the transformer used for reprojection. Tests may swap it
// for a stub to avoid the PROJ system dependency.
var Default Transformer = ProjTransformer{}
