package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh/spinner"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"
	"github.com/spf13/cobra"

	"github.com/samkass/SwiftzerlandTransportAPI/pkg/output"
	"github.com/samkass/SwiftzerlandTransportAPI/pkg/transit"
	"github.com/samkass/SwiftzerlandTransportAPI/pkg/tui"
)

const maxParallelBoards = 4

type boardResult struct {
	Station string
	Board   *transit.Stationboard
	Err     error
}

// fetchBoards requests one board per station in parallel. Results keep the
// order of stations.
func fetchBoards(ctx context.Context, client *transit.Client, stations []string, base transit.StationboardParams) []boardResult {
	p := pool.NewWithResults[boardResult]().WithMaxGoroutines(maxParallelBoards)

	for _, station := range stations {
		p.Go(func() boardResult {
			params := base
			params.Station = station
			board, err := client.Stationboard(ctx, params)
			return boardResult{Station: station, Board: board, Err: err}
		})
	}

	results := p.Wait()

	byStation := make(map[string]boardResult, len(results))
	for _, r := range results {
		byStation[r.Station] = r
	}
	ordered := make([]boardResult, 0, len(stations))
	for _, s := range stations {
		ordered = append(ordered, byStation[s])
	}
	return ordered
}

var stationboardCmd = &cobra.Command{
	Use:   "stationboard",
	Short: "View live departures for one or more stations",
	Long:  "Fetch the departure board of a station by name or id. Several comma separated stations are fetched in parallel.",
	RunE: func(cmd *cobra.Command, args []string) error {
		stationFlag, _ := cmd.Flags().GetString("station")
		stationID, _ := cmd.Flags().GetString("id")
		perRoute, _ := cmd.Flags().GetInt("per-route")

		client, cfg, err := newClient()
		if err != nil {
			return err
		}

		base := transit.StationboardParams{StationID: stationID}
		base.DateTime, _ = cmd.Flags().GetString("datetime")
		base.Limit, _ = cmd.Flags().GetInt("limit")
		base.Arrivals, _ = cmd.Flags().GetBool("arrivals")

		transportations, _ := cmd.Flags().GetStringSlice("transport")
		for _, s := range transportations {
			t, err := transit.ParseTransportation(s)
			if err != nil {
				return err
			}
			base.Transportations = append(base.Transportations, t)
		}

		var stations []string
		for _, s := range strings.Split(stationFlag, ",") {
			if s = strings.TrimSpace(s); s != "" {
				stations = append(stations, s)
			}
		}
		if len(stations) == 0 && stationID == "" {
			stations = cfg.FavoriteStations
		}

		var results []boardResult
		if len(stations) == 0 {
			// id only, or nothing at all: let the builder report missing parameters
			_ = spinner.New().
				Title("Fetching live departures...").
				Action(func() {
					board, err := client.Stationboard(cmd.Context(), base)
					results = []boardResult{{Station: stationID, Board: board, Err: err}}
				}).
				Run()
		} else {
			_ = spinner.New().
				Title(fmt.Sprintf("Fetching live departures for %s...", strings.Join(stations, ", "))).
				Action(func() {
					results = fetchBoards(cmd.Context(), client, stations, base)
				}).
				Run()
		}

		format := outputFormat(cmd)
		failed := 0
		for _, r := range results {
			if r.Err != nil {
				failed++
				log.Warn().Err(r.Err).Str("station", r.Station).Msg("Failed to fetch stationboard")
				fmt.Printf("❌ Failed to fetch departures for %s: %v\n", r.Station, r.Err)
				continue
			}

			if format != output.Text {
				if err := output.Encode(os.Stdout, format, r.Board); err != nil {
					return err
				}
				continue
			}

			name := r.Station
			if r.Board.Station != nil && len(r.Board.Station.Stations) > 0 && r.Board.Station.Stations[0].Name != nil {
				name = *r.Board.Station.Stations[0].Name
			}
			tui.PrintStationboard(os.Stdout, name, r.Board, perRoute)
		}

		if failed == len(results) {
			return fmt.Errorf("no stationboard could be fetched")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(stationboardCmd)
	stationboardCmd.Flags().StringP("station", "s", "", "Station name(s), comma separated (defaults to your favorites)")
	stationboardCmd.Flags().String("id", "", "Station id")
	stationboardCmd.Flags().String("datetime", "", "Date and time of the board (YYYY-MM-DD HH:MM)")
	stationboardCmd.Flags().IntP("limit", "l", 0, "Number of board entries")
	stationboardCmd.Flags().BoolP("arrivals", "a", false, "Show arrivals instead of departures")
	stationboardCmd.Flags().StringSlice("transport", nil, "Transport modes, e.g. bus,tramway_underground")
	stationboardCmd.Flags().IntP("per-route", "n", 2, "Departures shown per line and destination")
}
