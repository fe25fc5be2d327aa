package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/samkass/SwiftzerlandTransportAPI/pkg/transit"
)

var (
	lineStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	timeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

var titleCaser = cases.Title(language.German)

func clock(t time.Time) string {
	if t.IsZero() {
		return "--:--"
	}
	return t.Local().Format("15:04")
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

// PrintLocations lists search results in relevance order.
func PrintLocations(w io.Writer, locs *transit.Locations) {
	if locs == nil || len(locs.Stations) == 0 {
		fmt.Fprintln(w, errorStyle.Render("No matching locations found."))
		return
	}

	for i, loc := range locs.Stations {
		id := mutedStyle.Render(fmt.Sprintf("(ID: %s)", deref(loc.ID)))
		extra := ""
		if loc.Distance != nil {
			extra = mutedStyle.Render(fmt.Sprintf(" %dm", *loc.Distance))
		}
		fmt.Fprintf(w, "%d. %s %s%s\n", i+1, lineStyle.Render(deref(loc.Name)), id, extra)
	}
}

// PrintConnections prints every connection with its sections.
func PrintConnections(w io.Writer, conns *transit.Connections) {
	if conns == nil || len(conns.Connections) == 0 {
		fmt.Fprintln(w, errorStyle.Render("No connections could be found. It might be too late at night."))
		return
	}

	for n, c := range conns.Connections {
		var from, to transit.Checkpoint
		if c.From != nil {
			from = *c.From
		}
		if c.To != nil {
			to = *c.To
		}

		header := fmt.Sprintf("\n--- 🧭 %s -> %s ---", titleCaser.String(from.StationName()), titleCaser.String(to.StationName()))
		fmt.Fprintln(w, accentStyle.Render(header))

		summary := fmt.Sprintf("Connection %d: %s -> %s", n+1, clock(from.EffectiveDeparture()), clock(to.EffectiveArrival()))
		if d, err := c.ParsedDuration(); err == nil {
			summary += fmt.Sprintf(" (%s)", d)
		}
		fmt.Fprintln(w, summary)

		for i, s := range c.Sections {
			PrintSection(w, i+1, s)
		}
	}
	fmt.Fprintln(w)
}

// PrintSection prints one numbered leg of a connection.
func PrintSection(w io.Writer, n int, s transit.Section) {
	var dep, arr transit.Checkpoint
	if s.Departure != nil {
		dep = *s.Departure
	}
	if s.Arrival != nil {
		arr = *s.Arrival
	}

	lineName := "Walk🚶"
	if s.Journey != nil {
		lineName = s.Journey.LineName()
	} else if s.Walk != nil && s.Walk.Duration != nil {
		lineName = fmt.Sprintf("Walk🚶 %d min", *s.Walk.Duration/60)
	}

	platform := ""
	if dep.Platform != nil && *dep.Platform != "" {
		platform = mutedStyle.Render(" pl. " + *dep.Platform)
	}

	fmt.Fprintf(w, "%d. [%s] %s %s%s -> %s (%s)\n",
		n,
		timeStyle.Render(clock(dep.EffectiveDeparture())),
		lineStyle.Render(lineName),
		dep.StationName(),
		platform,
		arr.StationName(),
		mutedStyle.Render("Arrive: "+clock(arr.EffectiveArrival())))
}

// PrintStationboard prints a summarized departure board, at most maxPerRoute
// entries per line and destination.
func PrintStationboard(w io.Writer, name string, board *transit.Stationboard, maxPerRoute int) {
	fmt.Fprintln(w, accentStyle.Render(fmt.Sprintf("\n--- 🚉 Next Departures: %s ---", titleCaser.String(name))))

	if board == nil || len(board.Stationboard) == 0 {
		fmt.Fprintln(w, errorStyle.Render("No upcoming departures found."))
		return
	}

	for _, route := range transit.SummarizeStationboard(board.Stationboard, maxPerRoute) {
		fmt.Fprintf(w, "\n%s -> %s\n", lineStyle.Render(route.LineName), route.Destination)

		for _, j := range route.Departures {
			delayStr := ""
			if j.Stop.Delay != nil && *j.Stop.Delay > 0 {
				delayStr = errorStyle.Render(fmt.Sprintf(" (+%d min delay)", *j.Stop.Delay))
			}
			platform := ""
			if j.Stop.Platform != nil && *j.Stop.Platform != "" {
				platform = mutedStyle.Render(" pl. " + *j.Stop.Platform)
			}
			fmt.Fprintf(w, "  • [%s]%s%s\n", timeStyle.Render(clock(j.Stop.EffectiveDeparture())), platform, delayStr)
		}
	}
	fmt.Fprintln(w)
}
