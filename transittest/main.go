package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/samkass/SwiftzerlandTransportAPI/pkg/transit"
)

// Smoke check against the live API. Set TRANSIT_BASE_URL to probe another deployment.
func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	backend := transit.Production
	if base := os.Getenv("TRANSIT_BASE_URL"); base != "" {
		backend = transit.Custom("probe", base)
	}

	client := transit.NewClient(
		transit.WithBackend(backend),
		transit.WithLogger(log.Logger.Level(zerolog.DebugLevel)),
	)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	fmt.Println("Fetching live departures for Bern...")

	board, err := client.Stationboard(ctx, transit.StationboardParams{Station: "Bern", Limit: 5})
	if err != nil {
		log.Fatal().Err(err).Msg("Stationboard request failed")
	}

	fmt.Println("\n--- 🚆 Next Departures: Bern ---")
	for _, j := range board.Stationboard {
		if j.Stop == nil {
			continue
		}
		when := j.Stop.EffectiveDeparture()
		if when.IsZero() {
			continue
		}

		delayStr := ""
		if j.Stop.Delay != nil && *j.Stop.Delay > 0 {
			delayStr = fmt.Sprintf(" (+%d min delay)", *j.Stop.Delay)
		}

		to := ""
		if j.To != nil {
			to = *j.To
		}
		fmt.Printf("[%s] %s -> %s%s\n", when.Local().Format("15:04"), j.LineName(), to, delayStr)
	}

	conns, err := client.Connections(ctx, transit.ConnectionsParams{From: "Bern", To: "Zürich HB", Limit: 2})
	if err != nil {
		log.Fatal().Err(err).Msg("Connections request failed")
	}
	fmt.Printf("\nFound %d connections Bern -> Zürich HB\n", len(conns.Connections))
}
