// Package ingest builds track tables from external position sources.
//
// The supported source is a GTFS-Realtime VehiclePositions feed:
// raw protobuf bytes go in, a trackdf.Table comes out with one fix
// per vehicle entity. Fetching is the caller's concern; the Client
// here is a CLI helper only.
//
// Entities that cannot become a fix (no position, no usable id) are
// skipped, counted and logged once per feed in consolidated form
// rather than per entity.
package ingest
