// Package crs models coordinate reference systems for track tables.
//
// A CRS is a parsed, normalized projection descriptor. Descriptors
// come from PROJ parameter strings ("+proj=longlat +datum=WGS84"),
// EPSG references ("EPSG:32632") or names registered through the
// alias registry. The zero CRS is the unprojected state: coordinates
// are raw numeric values with no transform defined.
//
// Coordinate conversion between two systems is delegated to the PROJ
// cartography library through the Transformer interface; this package
// performs no projection math of its own beyond adapting degrees and
// radians at the PROJ boundary.
//
// See: https://proj.org/
package crs
