package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/marinapapa/trackdf"
	"github.com/marinapapa/trackdf/config"
	"github.com/marinapapa/trackdf/crs"
	"github.com/marinapapa/trackdf/ingest"
	"github.com/marinapapa/trackdf/utils"
)

func main() {
	configPath := flag.String("config", "config.yml", "configuration file")
	feedName := flag.String("feed", "", "feed name from config.feeds[]")
	url := flag.String("url", "", "GTFS-RT VehiclePositions URL (overrides config)")
	file := flag.String("file", "", "local VehiclePositions protobuf file")
	target := flag.String("proj", "", "target projection (PROJ string, EPSG code or alias)")
	output := flag.String("output", "summary", "summary|csv")
	flag.Parse()

	trackdf.InitLogging()
	if err := config.LoadAppConfig(*configPath); err != nil {
		log.Printf("config %s: %v (continuing without it)", *configPath, err)
	}

	var data []byte
	var err error
	switch {
	case *file != "":
		data, err = os.ReadFile(*file)
	case *url != "":
		data, err = ingest.NewClient().Fetch(*url)
	default:
		feed := config.SelectFeed(*feedName)
		if feed.VehiclePositionsURL == "" {
			log.Fatal("no vehicle positions source; use -url, -file or configure a feed")
		}
		data, err = ingest.NewClient().Fetch(feed.VehiclePositionsURL)
	}
	if err != nil {
		log.Fatalf("reading feed: %v", err)
	}

	table, err := ingest.FromVehiclePositions(data, crs.LongLat)
	if err != nil {
		log.Fatalf("building track table: %v", err)
	}

	spec := *target
	if spec == "" {
		spec = config.Config.TargetProjection
	}
	if spec != "" {
		if err := table.SetProjection(spec); err != nil {
			log.Fatalf("reprojecting: %v", err)
		}
	}

	switch *output {
	case "csv":
		if err := table.DataFrame().WriteCSV(os.Stdout); err != nil {
			log.Fatalf("writing csv: %v", err)
		}
	default:
		printSummary(table)
	}
}

func printSummary(t *trackdf.Table) {
	tracks, _ := t.NTracks()
	dims, _ := t.NDims()
	proj, _ := t.Projection()
	fmt.Printf("generated:  %s\n", utils.Iso8601Now())
	fmt.Printf("rows:       %d\n", t.NRows())
	fmt.Printf("tracks:     %d\n", tracks)
	fmt.Printf("dimensions: %d\n", dims)
	fmt.Printf("projection: %s\n", proj)
}
