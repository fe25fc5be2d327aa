package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"

	"github.com/samkass/SwiftzerlandTransportAPI/pkg/config"
	"github.com/samkass/SwiftzerlandTransportAPI/pkg/transit"
	"github.com/samkass/SwiftzerlandTransportAPI/pkg/tui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage transportctl configuration",
	Long:  "View or edit your local configuration settings (home station, favorites, API backend).",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		flags := cmd.Flags()
		if !flags.Changed("set-home") && !flags.Changed("backend") && !flags.Changed("base-url") &&
			!flags.Changed("limit") && !flags.Changed("add-favorite") && !flags.Changed("show") {
			// If no flags are given, launch the interactive TUI flow
			return tui.RunConfigTUI()
		}

		if show, _ := flags.GetBool("show"); show {
			tui.PrintConfig(cfg)
			return nil
		}

		if setHome, _ := flags.GetString("set-home"); setHome != "" {
			client := transit.NewClient(transit.WithBackend(cfg.ResolveBackend()))
			var match transit.Location

			_ = spinner.New().
				Title(fmt.Sprintf("Searching transit network for '%s'...", setHome)).
				Action(func() {
					match, err = tui.LookupStation(cmd.Context(), client, setHome)
				}).
				Run()

			if err != nil {
				return err
			}

			cfg.HomeStation = *match.Name
			if match.ID != nil {
				cfg.HomeStationID = *match.ID
			}
		}

		if flags.Changed("backend") {
			cfg.Backend, _ = flags.GetString("backend")
			cfg.BaseURL = ""
		}
		if flags.Changed("base-url") {
			baseURL, _ := flags.GetString("base-url")
			cfg.SetBaseURL(baseURL)
		}
		if flags.Changed("limit") {
			cfg.Limit, _ = flags.GetInt("limit")
		}

		favorites, _ := flags.GetStringSlice("add-favorite")
		for _, s := range favorites {
			if s = strings.TrimSpace(s); s != "" {
				cfg.FavoriteStations = append(cfg.FavoriteStations, s)
			}
		}

		if err := config.Save(cfg); err != nil {
			return err
		}

		fmt.Println(tui.AccentStyle().Render("✅ Configuration saved."))
		tui.PrintConfig(cfg)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().StringP("set-home", "s", "", "Set your home station for routing")
	configCmd.Flags().String("backend", "", "Named API backend (production)")
	configCmd.Flags().String("base-url", "", "Custom API base URL, e.g. a test deployment")
	configCmd.Flags().IntP("limit", "l", 0, "Default number of connections per search (0 uses the API default)")
	configCmd.Flags().StringSlice("add-favorite", nil, "Add favorite stations for the stationboard")
	configCmd.Flags().Bool("show", false, "Print the current configuration")
}
