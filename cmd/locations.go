package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"

	"github.com/samkass/SwiftzerlandTransportAPI/pkg/output"
	"github.com/samkass/SwiftzerlandTransportAPI/pkg/transit"
	"github.com/samkass/SwiftzerlandTransportAPI/pkg/tui"
)

var locationsCmd = &cobra.Command{
	Use:   "locations [query]",
	Short: "Search stations, points of interest and addresses",
	Long:  "Search by name, or list what is near a coordinate with --x and --y.",
	RunE: func(cmd *cobra.Command, args []string) error {
		typeFlag, _ := cmd.Flags().GetString("type")
		byCoordinate := cmd.Flags().Changed("x") || cmd.Flags().Changed("y")

		query := strings.Join(args, " ")
		if query == "" && !byCoordinate {
			return fmt.Errorf("must specify a search query or --x and --y")
		}

		typ, err := transit.ParseQueryType(typeFlag)
		if err != nil {
			return err
		}

		client, _, err := newClient()
		if err != nil {
			return err
		}

		var locs *transit.Locations
		_ = spinner.New().
			Title("Searching locations...").
			Action(func() {
				if byCoordinate {
					x, _ := cmd.Flags().GetFloat64("x")
					y, _ := cmd.Flags().GetFloat64("y")
					locs, err = client.LocationsByCoordinate(cmd.Context(), x, y)
					return
				}
				locs, err = client.Locations(cmd.Context(), query, typ)
			}).
			Run()

		if err != nil {
			return fmt.Errorf("failed to search locations: %w", err)
		}

		if f := outputFormat(cmd); f != output.Text {
			return output.Encode(os.Stdout, f, locs)
		}
		tui.PrintLocations(os.Stdout, locs)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(locationsCmd)
	locationsCmd.Flags().StringP("type", "t", "all", "Location type: all, station, poi or address")
	locationsCmd.Flags().Float64("x", 0, "Latitude for a coordinate search")
	locationsCmd.Flags().Float64("y", 0, "Longitude for a coordinate search")
}
