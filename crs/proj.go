package crs

import (
	"fmt"
	"math"

	proj "github.com/pebbe/proj/v5"
)

const (
	degToRad = math.Pi / 180
	radToDeg = 180 / math.Pi
)

// ProjTransformer delegates coordinate conversion to the PROJ
// cartography library. Conversion routes through geodetic
// longitude/latitude: an inverse transform on the source system
// followed by a forward transform on the target. PROJ works in
// radians; longlat systems carry degrees, so the boundary converts.
type ProjTransformer struct{}

func (ProjTransformer) Transform(src, dst CRS, x, y []float64) error {
	if len(x) != len(y) {
		return fmt.Errorf("coordinate slices differ in length: %d vs %d", len(x), len(y))
	}
	if src.Equal(dst) || len(x) == 0 {
		return nil
	}
	if !src.IsDefined() || !dst.IsDefined() {
		return fmt.Errorf("cannot transform with an unprojected endpoint (%s to %s)", src, dst)
	}

	ctx := proj.NewContext()
	defer ctx.Close()

	var srcPJ, dstPJ *proj.Proj
	var err error
	if !src.isLongLat() {
		srcPJ, err = ctx.Create(src.Definition())
		if err != nil {
			return fmt.Errorf("source projection %s: %w", src, err)
		}
		defer srcPJ.Close()
	}
	if !dst.isLongLat() {
		dstPJ, err = ctx.Create(dst.Definition())
		if err != nil {
			return fmt.Errorf("target projection %s: %w", dst, err)
		}
		defer dstPJ.Close()
	}

	for i := range x {
		lon, lat := x[i], y[i]
		if srcPJ != nil {
			lon, lat, err = srcPJ.Trans(proj.Inv, x[i], y[i])
			if err != nil {
				return fmt.Errorf("inverse transform of row %d: %w", i, err)
			}
		} else {
			lon *= degToRad
			lat *= degToRad
		}
		if dstPJ != nil {
			x[i], y[i], err = dstPJ.Trans(proj.Fwd, lon, lat)
			if err != nil {
				return fmt.Errorf("forward transform of row %d: %w", i, err)
			}
		} else {
			x[i] = lon * radToDeg
			y[i] = lat * radToDeg
		}
	}
	return nil
}
