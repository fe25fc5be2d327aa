package cmd

import (
	"fmt"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"

	"github.com/samkass/SwiftzerlandTransportAPI/pkg/exporter"
	"github.com/samkass/SwiftzerlandTransportAPI/pkg/transit"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export connections to an ICS file",
	Long:  `Look up connections between two locations and write them as calendar events without using the interactive TUI.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("file")

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
			Title(fmt.Sprintf("Exporting connections from %s to %s into %s...", params.From, params.To, file)).
			Action(func() {
				conns, err = client.Connections(cmd.Context(), params)
			}).
			Run()

		if err != nil {
			return fmt.Errorf("failed to fetch connections: %w", err)
		}

		if err := exporter.WriteConnectionsFile(file, conns.Connections); err != nil {
			return fmt.Errorf("failed to generate ICS: %w", err)
		}

		fmt.Printf("Successfully exported %d connections to %s\n", len(conns.Connections), file)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	addConnectionsFlags(exportCmd)
	exportCmd.Flags().StringP("file", "F", "connections.ics", "Output file path")
}
