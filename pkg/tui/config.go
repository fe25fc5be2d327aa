package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/lipgloss"

	"github.com/samkass/SwiftzerlandTransportAPI/pkg/config"
	"github.com/samkass/SwiftzerlandTransportAPI/pkg/transit"
)

// RunConfigTUI launches the interactive experience for managing configurations
func RunConfigTUI() error {
	for {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		var action string

		initialForm := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Configuration Settings").
					Options(
						huh.NewOption("Set Accent Color (Theme)", "theme"),
						huh.NewOption("Set Home Station", "home"),
						huh.NewOption("Edit Favorite Stations", "favorites"),
						huh.NewOption("Choose API Backend", "backend"),
						huh.NewOption("View Current Config", "view"),
						huh.NewOption("Back to Main Menu", "back"),
					).
					Value(&action),
			),
		).WithTheme(GetTheme())

		if err := initialForm.Run(); err != nil {
			return err
		}

		switch action {
		case "back":
			return nil
		case "theme":
			err = runSetThemeTUI(cfg)
		case "home":
			err = runSetHomeTUI(cfg)
		case "favorites":
			err = runSetFavoritesTUI(cfg)
		case "backend":
			err = runSetBackendTUI(cfg)
		case "view":
			PrintConfig(cfg)
		}

		if err != nil {
			return err
		}
	}
}

// PrintConfig shows the saved settings
func PrintConfig(cfg *config.AppConfig) {
	fmt.Println(accentStyle.Render("\n--- Current Configuration (~/.transportctl.json) ---"))
	if cfg.HomeStation == "" {
		fmt.Println("Home Station: Not set")
	} else {
		fmt.Printf("Home Station: %s (ID: %s)\n", cfg.HomeStation, cfg.HomeStationID)
	}

	backend := cfg.ResolveBackend()
	fmt.Printf("Backend: %s (%s)\n", backend.Name, backend.BaseURL)
	fmt.Printf("Favorite Stations: %s\n", strings.Join(cfg.FavoriteStations, ", "))
	if cfg.Limit > 0 {
		fmt.Printf("Connections per search: %d\n", cfg.Limit)
	}
	fmt.Printf("Accent Color: %s\n", cfg.AccentColor)
	fmt.Println()
}

// LookupStation resolves free text to the best matching station
func LookupStation(ctx context.Context, client *transit.Client, query string) (transit.Location, error) {
	locs, err := client.Locations(ctx, query, transit.QueryStation)
	if err != nil {
		return transit.Location{}, fmt.Errorf("could not lookup station: %w", err)
	}

	// The API sorts by relevance, take the best match with a usable name
	for _, loc := range locs.Stations {
		if loc.Name != nil && *loc.Name != "" {
			return loc, nil
		}
	}
	return transit.Location{}, fmt.Errorf("no matching stations found for '%s'", query)
}

func runSetHomeTUI(cfg *config.AppConfig) error {
	var input string

	inputForm := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Enter your home station").
				Description("This will be saved to your local config for fast routing.").
				Placeholder("e.g. Bern or Zürich, Stauffacher").
				Value(&input),
		),
	).WithTheme(GetTheme())

	if err := inputForm.Run(); err != nil {
		return err
	}

	if input == "" {
		fmt.Println("Operation cancelled: No station provided.")
		return nil
	}

	client := newClient(cfg)
	var match transit.Location
	var fetchErr error

	_ = spinner.New().
		Title(fmt.Sprintf("Searching transit network for '%s'...", input)).
		Action(func() {
			match, fetchErr = LookupStation(context.Background(), client, input)
		}).
		Run()

	if fetchErr != nil {
		fmt.Println(errorStyle.Render("❌ " + fetchErr.Error()))
		return nil
	}

	cfg.HomeStation = deref(match.Name)
	cfg.HomeStationID = deref(match.ID)

	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Successfully saved home station: %s (ID: %s)\n", cfg.HomeStation, cfg.HomeStationID)))
	return nil
}

func runSetFavoritesTUI(cfg *config.AppConfig) error {
	var keep []string
	var added string

	var opts []huh.Option[string]
	for _, s := range cfg.FavoriteStations {
		opts = append(opts, huh.NewOption(s, s).Selected(true))
	}

	var fields []huh.Field
	if len(opts) > 0 {
		fields = append(fields, huh.NewMultiSelect[string]().
			Title("Keep these favorites").
			Description("Space = toggle, Enter = confirm.").
			Options(opts...).
			Value(&keep))
	}
	fields = append(fields, huh.NewInput().
		Title("Add favorite stations").
		Description("Comma separated, leave empty to skip.").
		Value(&added))

	form := huh.NewForm(huh.NewGroup(fields...)).WithTheme(GetTheme())
	if err := form.Run(); err != nil {
		return err
	}

	for _, s := range strings.Split(added, ",") {
		if s = strings.TrimSpace(s); s != "" {
			keep = append(keep, s)
		}
	}

	cfg.FavoriteStations = keep
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Successfully saved %d favorite stations.\n", len(keep))))
	return nil
}

func runSetBackendTUI(cfg *config.AppConfig) error {
	choice := "production"
	if cfg.BaseURL != "" {
		choice = "custom"
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which API deployment should be used?").
				Options(
					huh.NewOption(fmt.Sprintf("Production (%s)", transit.Production.BaseURL), "production"),
					huh.NewOption("Custom base URL (test or beta host)", "custom"),
				).
				Value(&choice),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	if choice == "production" {
		cfg.Backend = transit.Production.Name
		cfg.BaseURL = ""
	} else {
		baseURL := cfg.BaseURL
		urlForm := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Base URL").
					Placeholder("https://transport.example.com/v1").
					Validate(required("base URL")).
					Value(&baseURL),
			),
		).WithTheme(GetTheme())

		if err := urlForm.Run(); err != nil {
			return err
		}
		cfg.SetBaseURL(baseURL)
	}

	if err := config.Save(cfg); err != nil {
		fmt.Println(errorStyle.Render("❌ " + err.Error()))
		return nil
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Backend set to %s.\n", cfg.ResolveBackend().BaseURL)))
	return nil
}

func colorBlock(color string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("██")
}

func runSetThemeTUI(cfg *config.AppConfig) error {
	var input string

	inputForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Choose an Accent Color").
				Description("Select a curated style or choose Custom to enter your own Hex.").
				Options(
					huh.NewOption(fmt.Sprintf("%s Alpine Purple", colorBlock("99")), "99"),
					huh.NewOption(fmt.Sprintf("%s SBB Red", colorBlock("160")), "160"),
					huh.NewOption(fmt.Sprintf("%s Lake Blue", colorBlock("86")), "86"),
					huh.NewOption(fmt.Sprintf("%s Meadow Green", colorBlock("42")), "42"),
					huh.NewOption("✨ Custom Hex Code", "custom"),
				).
				Value(&input),
		),
	).WithTheme(GetTheme())

	if err := inputForm.Run(); err != nil {
		return err
	}

	if input == "custom" {
		var hexInput string
		hexForm := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Enter a Hex Color Code").
					Description("Include the `#` symbol. Example: #FF00FF").
					Placeholder("#").
					Value(&hexInput).
					Validate(validateHex),
			),
		).WithTheme(GetTheme())

		if err := hexForm.Run(); err != nil {
			return err
		}
		cfg.AccentColor = hexInput
	} else {
		cfg.AccentColor = input
	}

	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(GetCustomTheme(cfg.AccentColor).Focused.Title.Render("\n✅ The theme color is now saved.\n"))
	return nil
}

func validateHex(str string) error {
	if len(str) != 7 || !strings.HasPrefix(str, "#") {
		return fmt.Errorf("must be a valid 6-character hex code starting with #")
	}
	for _, r := range str[1:] {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return fmt.Errorf("must be a valid 6-character hex code starting with #")
		}
	}
	return nil
}
