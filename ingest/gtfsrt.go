package ingest

import (
	"fmt"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"google.golang.org/protobuf/proto"

	"github.com/marinapapa/trackdf"
	"github.com/marinapapa/trackdf/crs"
)

// FromVehiclePositions builds a track table from raw GTFS-RT
// VehiclePositions protobuf bytes. Each vehicle entity with a
// position becomes one fix: the vehicle id is the track id, falling
// back to the trip id when absent; the fix time is the vehicle
// timestamp, falling back to the feed header timestamp. Longitude
// maps to x and latitude to y, so proj is normally crs.LongLat.
//
// Entities without a position or id are skipped and reported through
// the consolidated warning log.
func FromVehiclePositions(data []byte, proj crs.CRS) (*trackdf.Table, error) {
	var fm gtfsrtpb.FeedMessage
	if err := proto.Unmarshal(data, &fm); err != nil {
		return nil, fmt.Errorf("decoding vehicle positions feed: %w", err)
	}

	var headerTS int64
	if fm.Header != nil && fm.Header.Timestamp != nil {
		headerTS = int64(*fm.Header.Timestamp)
	}

	warnings := NewWarningAggregator()
	fixes := make([]trackdf.Fix, 0, len(fm.Entity))
	for _, e := range fm.Entity {
		v := e.Vehicle
		if v == nil {
			continue
		}
		var entityID string
		if e.Id != nil {
			entityID = *e.Id
		}
		if v.Position == nil || v.Position.Latitude == nil || v.Position.Longitude == nil {
			warnings.Add(WarningNoPosition, entityID)
			continue
		}
		var id string
		if v.Vehicle != nil && v.Vehicle.Id != nil {
			id = *v.Vehicle.Id
		}
		if id == "" && v.Trip != nil && v.Trip.TripId != nil {
			id = *v.Trip.TripId
		}
		if id == "" {
			warnings.Add(WarningNoVehicleID, entityID)
			continue
		}
		ts := headerTS
		if v.Timestamp != nil {
			ts = int64(*v.Timestamp)
		} else {
			warnings.Add(WarningNoTimestamp, entityID)
		}
		fixes = append(fixes, trackdf.Fix{
			ID:   id,
			Time: ts,
			X:    float64(*v.Position.Longitude),
			Y:    float64(*v.Position.Latitude),
		})
	}
	warnings.LogAll()

	if len(fixes) == 0 {
		return nil, fmt.Errorf("feed contains no usable vehicle positions")
	}
	return trackdf.NewFromFixes(fixes, proj)
}
