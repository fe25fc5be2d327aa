package transit

import (
	"context"
	"testing"
	"time"
)

func TestTransitIntegration_Locations(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	client := NewClient()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	locs, err := client.Locations(ctx, "Zürich HB", QueryStation)
	if err != nil {
		t.Fatalf("Failed to fetch locations: %v", err)
	}

	if len(locs.Stations) == 0 {
		t.Fatal("Expected at least one location, got 0")
	}
	for _, loc := range locs.Stations {
		if loc.Name == nil || *loc.Name == "" {
			t.Errorf("Location missing name: %+v", loc)
		}
	}
}

func TestTransitIntegration_Connections(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	client := NewClient()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	conns, err := client.Connections(ctx, ConnectionsParams{From: "Zürich HB", To: "Bern"})
	if err != nil {
		t.Fatalf("Failed to fetch connections: %v", err)
	}

	if len(conns.Connections) == 0 {
		t.Logf("Got 0 connections between Zürich and Bern. This is unusual but possible late at night.")
	}
	for _, c := range conns.Connections {
		if len(c.Sections) == 0 {
			t.Errorf("Connection has no sections: %+v", c)
		}
	}
}

func TestTransitIntegration_Stationboard(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	client := NewClient()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	board, err := client.Stationboard(ctx, StationboardParams{Station: "Aarau", Limit: 10})
	if err != nil {
		t.Fatalf("Failed to fetch stationboard: %v", err)
	}

	if len(board.Stationboard) == 0 {
		t.Logf("Got 0 departures for Aarau. Note: this might happen late at night.")
	}
}
