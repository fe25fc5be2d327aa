package tui

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"

	"github.com/samkass/SwiftzerlandTransportAPI/pkg/config"
	"github.com/samkass/SwiftzerlandTransportAPI/pkg/transit"
)

const otherStation = "\x00other"

func newClient(cfg *config.AppConfig) *transit.Client {
	return transit.NewClient(transit.WithBackend(cfg.ResolveBackend()))
}

func required(field string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

// stationOptions offers the home station and favorites before free text entry
func stationOptions(cfg *config.AppConfig) []huh.Option[string] {
	var opts []huh.Option[string]
	if cfg.HomeStation != "" {
		opts = append(opts, huh.NewOption("🏠 "+cfg.HomeStation, cfg.HomeStation))
	}
	for _, s := range cfg.FavoriteStations {
		opts = append(opts, huh.NewOption("⭐ "+s, s))
	}
	return append(opts, huh.NewOption("Other station...", otherStation))
}

func pickStation(cfg *config.AppConfig, title string) (string, error) {
	var station string

	if len(cfg.FavoriteStations) > 0 || cfg.HomeStation != "" {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title(title).
					Options(stationOptions(cfg)...).
					Value(&station),
			),
		).WithTheme(GetTheme())

		if err := form.Run(); err != nil {
			return "", err
		}
		if station != otherStation {
			return station, nil
		}
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Placeholder("e.g. Zürich HB").
				Validate(required("station")).
				Value(&station),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return "", err
	}
	return station, nil
}

// RunStationboardTUI shows the live departure board for a chosen station
func RunStationboardTUI() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	station, err := pickStation(cfg, "Which station are you at?")
	if err != nil {
		return err
	}

	client := newClient(cfg)
	var board *transit.Stationboard

	_ = spinner.New().
		Title(fmt.Sprintf("Fetching live departures for %s...", station)).
		Action(func() {
			board, err = client.Stationboard(context.Background(), transit.StationboardParams{
				Station: station,
				Limit:   30,
			})
		}).
		Run()

	if err != nil {
		return fmt.Errorf("could not fetch departures: %w", err)
	}

	PrintStationboard(os.Stdout, station, board, 2)
	return nil
}

// RunConnectionsTUI plans a trip between two stations
func RunConnectionsTUI() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	from, err := pickStation(cfg, "Where are you starting?")
	if err != nil {
		return err
	}
	to, err := pickStation(cfg, "Where do you want to go?")
	if err != nil {
		return err
	}

	var (
		when     string
		arriveBy bool
		options  []string
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Time (HH:MM, empty for now)").
				Value(&when),
			huh.NewConfirm().
				Title("Is this the arrival time?").
				Value(&arriveBy),
			huh.NewMultiSelect[string]().
				Title("Extra requirements").
				Options(
					huh.NewOption("Direct connections only", string(transit.OptionDirect)),
					huh.NewOption("Sleeper", string(transit.OptionSleeper)),
					huh.NewOption("Couchette", string(transit.OptionCouchette)),
					huh.NewOption("Bike transport", string(transit.OptionBike)),
				).
				Value(&options),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	params := transit.ConnectionsParams{From: from, To: to, Time: when, Limit: cfg.Limit}
	if arriveBy {
		params.TimeType = transit.TimeArrival
	}
	for _, o := range options {
		params.Options = append(params.Options, transit.Option(o))
	}

	client := newClient(cfg)
	var conns *transit.Connections

	_ = spinner.New().
		Title(fmt.Sprintf("Routing trip from %s to %s...", from, to)).
		Action(func() {
			conns, err = client.Connections(context.Background(), params)
		}).
		Run()

	if errors.Is(err, transit.ErrInvalidParameter) {
		fmt.Println(errorStyle.Render(err.Error()))
		return nil
	}
	if err != nil {
		return fmt.Errorf("could not route journey: %w", err)
	}

	PrintConnections(os.Stdout, conns)
	return nil
}

// RunLocationsTUI searches stations, POIs and addresses
func RunLocationsTUI() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	var (
		query string
		typ   = string(transit.QueryAll)
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Search for").
				Validate(required("search")).
				Value(&query),
			huh.NewSelect[string]().
				Title("Type").
				Options(
					huh.NewOption("Everything", string(transit.QueryAll)),
					huh.NewOption("Stations", string(transit.QueryStation)),
					huh.NewOption("Points of interest", string(transit.QueryPOI)),
					huh.NewOption("Addresses", string(transit.QueryAddress)),
				).
				Value(&typ),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	client := newClient(cfg)
	var locs *transit.Locations

	_ = spinner.New().
		Title(fmt.Sprintf("Searching for %s...", query)).
		Action(func() {
			locs, err = client.Locations(context.Background(), query, transit.QueryType(typ))
		}).
		Run()

	if err != nil {
		return fmt.Errorf("could not search locations: %w", err)
	}

	PrintLocations(os.Stdout, locs)
	return nil
}
