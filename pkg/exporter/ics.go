package exporter

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/samkass/SwiftzerlandTransportAPI/pkg/transit"

	ics "github.com/arran4/golang-ical"
)

// ErrNothingToExport is returned when no connection has both a departure and an arrival.
var ErrNothingToExport = errors.New("no connections with departure and arrival times to export")

// WriteConnectionsFile renders the calendar first and only creates path
// once there is something to write.
func WriteConnectionsFile(path string, connections []transit.Connection) error {
	var buf bytes.Buffer
	if err := ConnectionsICS(connections, &buf); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// ConnectionsICS writes one calendar event per connection to w. Connections
// without a scheduled departure or arrival are skipped.
func ConnectionsICS(connections []transit.Connection, w io.Writer) error {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	now := time.Now()
	added := 0

	for i, c := range connections {
		if c.From == nil || c.To == nil || c.From.Departure == nil || c.To.Arrival == nil {
			continue
		}
		start := c.From.Departure.Time
		end := c.To.Arrival.Time

		event := cal.AddEvent(fmt.Sprintf("%s-%d@transportctl", start.UTC().Format("20060102T150405Z"), i))
		event.SetCreatedTime(now)
		event.SetDtStampTime(now)
		event.SetModifiedAt(now)
		event.SetStartAt(start)
		event.SetEndAt(end)
		event.SetSummary(fmt.Sprintf("%s → %s", c.From.StationName(), c.To.StationName()))
		event.SetLocation(departureLocation(*c.From))
		event.SetDescription(describe(c))
		added++
	}

	if added == 0 {
		return ErrNothingToExport
	}

	return cal.SerializeTo(w)
}

func departureLocation(cp transit.Checkpoint) string {
	loc := cp.StationName()
	if cp.Platform != nil && *cp.Platform != "" {
		loc += ", platform " + *cp.Platform
	}
	return loc
}

// describe lists every section with its line, destination and times
func describe(c transit.Connection) string {
	var sb strings.Builder
	if c.Duration != nil {
		if d, err := transit.ParseDuration(*c.Duration); err == nil {
			fmt.Fprintf(&sb, "Duration: %s\n", d)
		}
	}
	if len(c.Products) > 0 {
		fmt.Fprintf(&sb, "Products: %s\n", strings.Join(c.Products, ", "))
	}
	sb.WriteString("\nJourney Details:\n")

	for i, s := range c.Sections {
		from, to := "", ""
		var dep, arr time.Time
		if s.Departure != nil {
			from = s.Departure.StationName()
			dep = s.Departure.EffectiveDeparture()
		}
		if s.Arrival != nil {
			to = s.Arrival.StationName()
			arr = s.Arrival.EffectiveArrival()
		}

		line := "Walk"
		if s.Journey != nil {
			line = s.Journey.LineName()
		}
		fmt.Fprintf(&sb, "%d. [%s] %s %s -> %s (Arrive: %s)\n",
			i+1, clock(dep), line, from, to, clock(arr))
	}
	return sb.String()
}

func clock(t time.Time) string {
	if t.IsZero() {
		return "--:--"
	}
	return t.Format("15:04")
}
