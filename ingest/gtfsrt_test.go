package ingest

import (
	"reflect"
	"testing"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"google.golang.org/protobuf/proto"

	"github.com/marinapapa/trackdf"
	"github.com/marinapapa/trackdf/crs"
)

func marshalFeed(t *testing.T, fm *gtfsrtpb.FeedMessage) []byte {
	t.Helper()
	data, err := proto.Marshal(fm)
	if err != nil {
		t.Fatalf("Failed to marshal feed: %v", err)
	}
	return data
}

func vehicleEntity(entityID, vehicleID, tripID string, lat, lon float32, ts uint64) *gtfsrtpb.FeedEntity {
	vp := &gtfsrtpb.VehiclePosition{
		Position: &gtfsrtpb.Position{
			Latitude:  proto.Float32(lat),
			Longitude: proto.Float32(lon),
		},
	}
	if vehicleID != "" {
		vp.Vehicle = &gtfsrtpb.VehicleDescriptor{Id: proto.String(vehicleID)}
	}
	if tripID != "" {
		vp.Trip = &gtfsrtpb.TripDescriptor{TripId: proto.String(tripID)}
	}
	if ts != 0 {
		vp.Timestamp = proto.Uint64(ts)
	}
	return &gtfsrtpb.FeedEntity{
		Id:      proto.String(entityID),
		Vehicle: vp,
	}
}

func TestFromVehiclePositions(t *testing.T) {
	fm := &gtfsrtpb.FeedMessage{
		Header: &gtfsrtpb.FeedHeader{
			GtfsRealtimeVersion: proto.String("2.0"),
			Timestamp:           proto.Uint64(1700000000),
		},
		Entity: []*gtfsrtpb.FeedEntity{
			vehicleEntity("1", "bus-42", "trip-1", 59.91, 10.75, 1700000100),
			vehicleEntity("2", "bus-43", "", 59.92, 10.76, 1700000200),
			// No vehicle id: falls back to the trip id.
			vehicleEntity("3", "", "trip-9", 59.93, 10.77, 1700000300),
		},
	}

	table, err := FromVehiclePositions(marshalFeed(t, fm), crs.LongLat)
	if err != nil {
		t.Fatalf("FromVehiclePositions failed: %v", err)
	}

	if table.NRows() != 3 {
		t.Errorf("NRows = %d, want 3", table.NRows())
	}
	ids := table.DataFrame().Col(trackdf.ColID).Records()
	want := []string{"bus-42", "bus-43", "trip-9"}
	if !reflect.DeepEqual(ids, want) {
		t.Errorf("ids = %v, want %v", ids, want)
	}

	// Longitude is x, latitude is y.
	xs := table.DataFrame().Col(trackdf.ColX).Float()
	ys := table.DataFrame().Col(trackdf.ColY).Float()
	if xs[0] < 10.74 || xs[0] > 10.76 {
		t.Errorf("x[0] = %v, want ~10.75", xs[0])
	}
	if ys[0] < 59.90 || ys[0] > 59.92 {
		t.Errorf("y[0] = %v, want ~59.91", ys[0])
	}

	geo, err := table.IsGeo()
	if err != nil {
		t.Fatalf("IsGeo failed: %v", err)
	}
	if !geo {
		t.Error("ingested table is not geographic")
	}
}

func TestFromVehiclePositionsSkipsUnusableEntities(t *testing.T) {
	noPosition := &gtfsrtpb.FeedEntity{
		Id: proto.String("no-pos"),
		Vehicle: &gtfsrtpb.VehiclePosition{
			Vehicle: &gtfsrtpb.VehicleDescriptor{Id: proto.String("ghost")},
		},
	}
	noID := vehicleEntity("no-id", "", "", 59.9, 10.7, 1700000100)

	fm := &gtfsrtpb.FeedMessage{
		Header: &gtfsrtpb.FeedHeader{
			GtfsRealtimeVersion: proto.String("2.0"),
			Timestamp:           proto.Uint64(1700000000),
		},
		Entity: []*gtfsrtpb.FeedEntity{
			noPosition,
			noID,
			vehicleEntity("ok", "bus-1", "", 59.95, 10.71, 1700000100),
		},
	}

	table, err := FromVehiclePositions(marshalFeed(t, fm), crs.LongLat)
	if err != nil {
		t.Fatalf("FromVehiclePositions failed: %v", err)
	}
	if table.NRows() != 1 {
		t.Errorf("NRows = %d, want 1", table.NRows())
	}
}

func TestFromVehiclePositionsHeaderTimestampFallback(t *testing.T) {
	fm := &gtfsrtpb.FeedMessage{
		Header: &gtfsrtpb.FeedHeader{
			GtfsRealtimeVersion: proto.String("2.0"),
			Timestamp:           proto.Uint64(1700000000),
		},
		Entity: []*gtfsrtpb.FeedEntity{
			vehicleEntity("1", "bus-1", "", 59.9, 10.7, 0),
		},
	}

	table, err := FromVehiclePositions(marshalFeed(t, fm), crs.LongLat)
	if err != nil {
		t.Fatalf("FromVehiclePositions failed: %v", err)
	}
	times := table.DataFrame().Col(trackdf.ColTime).Records()
	if times[0] != "1700000000" {
		t.Errorf("time = %s, want header timestamp 1700000000", times[0])
	}
}

func TestFromVehiclePositionsErrors(t *testing.T) {
	if _, err := FromVehiclePositions([]byte("not protobuf"), crs.LongLat); err == nil {
		t.Error("garbage bytes accepted")
	}

	empty := &gtfsrtpb.FeedMessage{
		Header: &gtfsrtpb.FeedHeader{GtfsRealtimeVersion: proto.String("2.0")},
	}
	if _, err := FromVehiclePositions(marshalFeed(t, empty), crs.LongLat); err == nil {
		t.Error("feed without positions accepted")
	}
}
