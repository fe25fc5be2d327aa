package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/samkass/SwiftzerlandTransportAPI/pkg/config"
	"github.com/samkass/SwiftzerlandTransportAPI/pkg/output"
	"github.com/samkass/SwiftzerlandTransportAPI/pkg/transit"
)

var rootCmd = &cobra.Command{
	Use:   "transportctl",
	Short: "A CLI and TUI for Swiss public transport timetables",
	Long: `transportctl queries the transport.opendata.ch API for stations,
connections and live departure boards, and can export trips to an .ics file.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		setupLogging(verbose)

		format, _ := cmd.Flags().GetString("output")
		if _, err := output.ParseFormat(format); err != nil {
			return err
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func setupLogging(verbose bool) {
	if os.Getenv("TRANSPORTCTL_LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	} else {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	if verbose || os.Getenv("TRANSPORTCTL_DEBUG") == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.WarnLevel)
	}
}

// newClient builds a transit client for the configured backend.
func newClient() (*transit.Client, *config.AppConfig, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	backend := cfg.ResolveBackend()
	log.Debug().Str("backend", backend.Name).Str("base_url", backend.BaseURL).Msg("Using backend")

	return transit.NewClient(
		transit.WithBackend(backend),
		transit.WithLogger(log.Logger),
	), cfg, nil
}

func outputFormat(cmd *cobra.Command) output.Format {
	format, _ := cmd.Flags().GetString("output")
	f, _ := output.ParseFormat(format)
	return f
}

func init() {
	rootCmd.PersistentFlags().StringP("output", "o", "text", "Output format: text, json or yaml")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log outgoing requests")
}
