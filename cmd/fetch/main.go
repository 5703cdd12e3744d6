package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jusunglee/mds-go/pkg/mds"
	"golang.org/x/sync/errgroup"
)

func main() {
	var (
		baseURL   = flag.String("base-url", "", "MDS provider base URL")
		token     = flag.String("token", "", "MDS provider API token")
		resource  = flag.String("resource", "", "Single resource to fetch (trips, status_changes, events); default all")
		startTime = flag.Int64("start-time", 0, "Filter start time (UNIX seconds)")
		endTime   = flag.Int64("end-time", 0, "Filter end time (UNIX seconds)")
		deviceID  = flag.String("device-id", "", "Filter by device ID")
		vehicleID = flag.String("vehicle-id", "", "Filter by vehicle ID")
		bbox      = flag.String("bbox", "", "Bounding box filter (swLon,swLat,neLon,neLat)")
		firstPage = flag.Bool("first-page", false, "Fetch only the first page")
		sample    = flag.Bool("sample", false, "Print the first record of each resource")
	)
	flag.Parse()

	// Fallback to environment variables if flags not provided
	if *baseURL == "" {
		*baseURL = os.Getenv("MDS_BASE_URL")
	}
	if *baseURL == "" {
		slog.Error("MDS provider base URL required (use -base-url flag or MDS_BASE_URL env var)")
		os.Exit(1)
	}
	if *token == "" {
		*token = os.Getenv("MDS_TOKEN")
	}

	config := mds.DefaultConfig()
	config.BaseURL = *baseURL
	config.Token = *token

	client, err := mds.New(config)
	if err != nil {
		slog.Error("Failed to create MDS client", "error", err)
		os.Exit(1)
	}

	query := mds.Query{
		DeviceID:      *deviceID,
		VehicleID:     *vehicleID,
		BBox:          *bbox,
		FirstPageOnly: *firstPage,
	}
	if *startTime != 0 {
		query.StartTime = time.Unix(*startTime, 0)
	}
	if *endTime != 0 {
		query.EndTime = time.Unix(*endTime, 0)
	}

	fetchers := map[string]func(context.Context, mds.Query) ([]mds.Record, error){
		mds.ResourceTrips:         client.GetTrips,
		mds.ResourceStatusChanges: client.GetStatusChanges,
		mds.ResourceEvents:        client.GetEvents,
	}

	resources := []string{mds.ResourceTrips, mds.ResourceStatusChanges, mds.ResourceEvents}
	if *resource != "" {
		if _, ok := fetchers[*resource]; !ok {
			slog.Error("Unknown resource", "resource", *resource)
			os.Exit(1)
		}
		resources = []string{*resource}
	}

	// The client is immutable after construction, so the three resources can
	// be fetched concurrently. Pages within each resource stay sequential.
	results := make([][]mds.Record, len(resources))
	g, ctx := errgroup.WithContext(context.Background())
	for i, name := range resources {
		i, name := i, name
		g.Go(func() error {
			records, err := fetchers[name](ctx, query)
			if err != nil {
				return fmt.Errorf("fetch %s: %w", name, err)
			}
			results[i] = records
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		slog.Error("Fetch failed", "error", err)
		os.Exit(1)
	}

	for i, name := range resources {
		fmt.Printf("%s: %d records\n", name, len(results[i]))

		if *sample && len(results[i]) > 0 {
			pretty, err := json.MarshalIndent(results[i][0], "  ", "  ")
			if err != nil {
				slog.Error("Failed to render sample record", "resource", name, "error", err)
				continue
			}
			fmt.Printf("  %s\n", pretty)
		}
	}
}
