package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"

	"github.com/samkass/SwiftzerlandTransportAPI/pkg/config"
	"github.com/samkass/SwiftzerlandTransportAPI/pkg/output"
	"github.com/samkass/SwiftzerlandTransportAPI/pkg/transit"
	"github.com/samkass/SwiftzerlandTransportAPI/pkg/tui"
)

var connectionsCmd = &cobra.Command{
	Use:   "connections",
	Short: "Plan a trip between two stations",
	Long:  "Find the next connections from one location to another. --home routes to your saved home station.",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, cfg, err := newClient()
		if err != nil {
			return err
		}

		params, err := connectionsParamsFromFlags(cmd, cfg)
		if err != nil {
			return err
		}

		var conns *transit.Connections
		_ = spinner.New().
			Title(fmt.Sprintf("Routing trip from %s to %s...", params.From, params.To)).
			Action(func() {
				conns, err = client.Connections(cmd.Context(), params)
			}).
			Run()

		if err != nil {
			return fmt.Errorf("failed to fetch connections: %w", err)
		}

		if f := outputFormat(cmd); f != output.Text {
			return output.Encode(os.Stdout, f, conns)
		}
		tui.PrintConnections(os.Stdout, conns)
		return nil
	},
}

// connectionsParamsFromFlags is shared with the export command
func connectionsParamsFromFlags(cmd *cobra.Command, cfg *config.AppConfig) (transit.ConnectionsParams, error) {
	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")
	home, _ := cmd.Flags().GetBool("home")

	if home {
		if cfg.HomeStation == "" {
			return transit.ConnectionsParams{}, fmt.Errorf("home station is not configured. Please run 'transportctl config --set-home \"Your Station\"' first")
		}
		to = cfg.HomeStation
	}

	p := transit.ConnectionsParams{From: from, To: to, Limit: cfg.Limit}
	p.Date, _ = cmd.Flags().GetString("date")
	p.Time, _ = cmd.Flags().GetString("time")

	if cmd.Flags().Changed("limit") {
		p.Limit, _ = cmd.Flags().GetInt("limit")
	}
	p.Page, _ = cmd.Flags().GetInt("page")

	if arrival, _ := cmd.Flags().GetBool("arrival"); arrival {
		p.TimeType = transit.TimeArrival
	}

	transportations, _ := cmd.Flags().GetStringSlice("transport")
	for _, s := range transportations {
		t, err := transit.ParseTransportation(s)
		if err != nil {
			return p, err
		}
		p.Transportations = append(p.Transportations, t)
	}

	accessibility, _ := cmd.Flags().GetString("accessibility")
	a, err := transit.ParseAccessibility(accessibility)
	if err != nil {
		return p, err
	}
	p.Accessibility = a

	options, _ := cmd.Flags().GetStringSlice("option")
	for _, s := range options {
		o, err := transit.ParseOption(s)
		if err != nil {
			return p, err
		}
		p.Options = append(p.Options, o)
	}

	return p, nil
}

func addConnectionsFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("from", "f", "", "Departure station, address or coordinates")
	cmd.Flags().StringP("to", "t", "", "Arrival station, address or coordinates")
	cmd.Flags().BoolP("home", "r", false, "Route to your saved home station")
	cmd.Flags().StringP("date", "d", "", "Date of the connection (YYYY-MM-DD)")
	cmd.Flags().String("time", "", "Time of the connection (HH:MM)")
	cmd.Flags().BoolP("arrival", "a", false, "Interpret date and time as the arrival time")
	cmd.Flags().IntP("limit", "l", transit.DefaultLimit, "Number of connections (1-16)")
	cmd.Flags().Int("page", 0, "Result page, starting at 0")
	cmd.Flags().StringSlice("transport", nil, "Transport modes, e.g. ice_tgv_rj,bus,ship")
	cmd.Flags().String("accessibility", "any", "independent_boarding, assisted_boarding or advanced_notice")
	cmd.Flags().StringSlice("option", nil, "Extra requirements: direct, sleeper, couchette, bike")
}

func init() {
	rootCmd.AddCommand(connectionsCmd)
	addConnectionsFlags(connectionsCmd)
}
