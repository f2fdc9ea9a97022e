// Package trackdf provides a tabular data structure for 2D/3D
// movement-tracking data: animal trajectories, GPS fixes, vehicle
// positions.
//
// A Table is a row-oriented frame of observations (one row per
// tracked entity per timestamp) with an attached coordinate reference
// system. Rows live in a gota dataframe; the projection is a
// table-wide attribute changed only through SetProjection, which
// reprojects the coordinate columns when a real transform is defined.
//
// # Basic Usage
//
//	table, err := trackdf.NewFromFixes(fixes, crs.LongLat)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Reproject in place to UTM zone 32.
//	if err := table.SetProjection("+proj=utm +zone=32 +ellps=GRS80"); err != nil {
//	    log.Fatal(err)
//	}
//
//	// Or keep the original and work on a projected copy.
//	utm, err := table.Project("EPSG:32632")
//
// Tables sharing a projection and schema concatenate with Bind:
//
//	all, err := trackdf.Bind(t1, t2, []*trackdf.Table{t3, t4})
//
// All failures are sentinel errors (ErrProjectionMismatch,
// ErrSchemaMismatch, ...) testable with errors.Is. Operations are
// synchronous and all-or-nothing: on error no partial mutation is
// committed.
package trackdf
