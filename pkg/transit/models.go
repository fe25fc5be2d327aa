package transit

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Every field the API sends is optional, so scalars are pointers and absent
// lists stay nil.

// Coordinates is a geographic point, usually WGS84.
type Coordinates struct {
	Type *string  `json:"type,omitempty" yaml:"type,omitempty"`
	X    *float64 `json:"x,omitempty" yaml:"x,omitempty"`
	Y    *float64 `json:"y,omitempty" yaml:"y,omitempty"`
}

// Location is a stop, POI or address returned by /locations.
type Location struct {
	ID          *string      `json:"id,omitempty" yaml:"id,omitempty"`
	Type        *string      `json:"type,omitempty" yaml:"type,omitempty"`
	Name        *string      `json:"name,omitempty" yaml:"name,omitempty"`
	Score       *int         `json:"score,omitempty" yaml:"score,omitempty"`
	Coordinates *Coordinates `json:"coordinates,omitempty" yaml:"coordinates,omitempty"`
	Distance    *int         `json:"distance,omitempty" yaml:"distance,omitempty"`
}

// Locations is the /locations response, in server relevance order.
type Locations struct {
	Stations []Location `json:"stations,omitempty" yaml:"stations,omitempty"`
}

// Prognosis is the real-time revision of a checkpoint. It overlays the
// scheduled values of its Checkpoint, it never replaces them.
type Prognosis struct {
	Platform    *string    `json:"platform,omitempty" yaml:"platform,omitempty"`
	Arrival     *Timestamp `json:"arrival,omitempty" yaml:"arrival,omitempty"`
	Departure   *Timestamp `json:"departure,omitempty" yaml:"departure,omitempty"`
	Capacity1st *int       `json:"capacity1st,omitempty" yaml:"capacity1st,omitempty"`
	Capacity2nd *int       `json:"capacity2nd,omitempty" yaml:"capacity2nd,omitempty"`
}

// Checkpoint is an arrival or departure at a station. Arrival is absent at
// the origin and Departure is absent at the destination.
type Checkpoint struct {
	Station   *Location  `json:"station,omitempty" yaml:"station,omitempty"`
	Arrival   *Timestamp `json:"arrival,omitempty" yaml:"arrival,omitempty"`
	Departure *Timestamp `json:"departure,omitempty" yaml:"departure,omitempty"`
	Delay     *int       `json:"delay,omitempty" yaml:"delay,omitempty"`
	Platform  *string    `json:"platform,omitempty" yaml:"platform,omitempty"`
	Prognosis *Prognosis `json:"prognosis,omitempty" yaml:"prognosis,omitempty"`
}

// EffectiveDeparture returns the predicted departure if there is one,
// otherwise the scheduled one. The zero time means neither is known.
func (c Checkpoint) EffectiveDeparture() time.Time {
	if c.Prognosis != nil && c.Prognosis.Departure != nil {
		return c.Prognosis.Departure.Time
	}
	if c.Departure != nil {
		return c.Departure.Time
	}
	return time.Time{}
}

// EffectiveArrival is the arrival counterpart of EffectiveDeparture.
func (c Checkpoint) EffectiveArrival() time.Time {
	if c.Prognosis != nil && c.Prognosis.Arrival != nil {
		return c.Prognosis.Arrival.Time
	}
	if c.Arrival != nil {
		return c.Arrival.Time
	}
	return time.Time{}
}

// StationName is a nil-safe accessor used by the renderers.
func (c Checkpoint) StationName() string {
	if c.Station == nil || c.Station.Name == nil {
		return ""
	}
	return *c.Station.Name
}

// Service describes how regularly a connection runs.
type Service struct {
	Regular   *string `json:"regular,omitempty" yaml:"regular,omitempty"`
	Irregular *string `json:"irregular,omitempty" yaml:"irregular,omitempty"`
}

// Journey is one vehicle leg. On a stationboard, Stop holds the
// checkpoint at the board's station.
type Journey struct {
	Name         *string      `json:"name,omitempty" yaml:"name,omitempty"`
	Category     *string      `json:"category,omitempty" yaml:"category,omitempty"`
	CategoryCode *int         `json:"categoryCode,omitempty" yaml:"categoryCode,omitempty"`
	Number       *string      `json:"number,omitempty" yaml:"number,omitempty"`
	Operator     *string      `json:"operator,omitempty" yaml:"operator,omitempty"`
	To           *string      `json:"to,omitempty" yaml:"to,omitempty"`
	PassList     []Checkpoint `json:"passList,omitempty" yaml:"passList,omitempty"`
	Capacity1st  *int         `json:"capacity1st,omitempty" yaml:"capacity1st,omitempty"`
	Capacity2nd  *int         `json:"capacity2nd,omitempty" yaml:"capacity2nd,omitempty"`
	Stop         *Checkpoint  `json:"stop,omitempty" yaml:"stop,omitempty"`
}

// LineName joins category and number ("IC 5"), falling back to Name.
func (j Journey) LineName() string {
	if j.Category != nil && j.Number != nil && *j.Category != "" {
		return *j.Category + " " + *j.Number
	}
	if j.Name != nil {
		return *j.Name
	}
	return ""
}

// Walk is a transfer on foot. Duration is in seconds.
type Walk struct {
	Duration *int `json:"duration,omitempty" yaml:"duration,omitempty"`
}

// Section is one leg of a connection: a journey or a walk.
type Section struct {
	Journey   *Journey    `json:"journey,omitempty" yaml:"journey,omitempty"`
	Walk      *Walk       `json:"walk,omitempty" yaml:"walk,omitempty"`
	Departure *Checkpoint `json:"departure,omitempty" yaml:"departure,omitempty"`
	Arrival   *Checkpoint `json:"arrival,omitempty" yaml:"arrival,omitempty"`
}

func (s Section) IsJourney() bool { return s.Journey != nil }

func (s Section) IsWalk() bool { return s.Walk != nil }

// Validate reports whether exactly one of Journey and Walk is set.
// Decoding does not call it; the API schema allows both to be missing.
func (s Section) Validate() error {
	switch {
	case s.Journey != nil && s.Walk != nil:
		return errors.New("section has both a journey and a walk")
	case s.Journey == nil && s.Walk == nil:
		return errors.New("section has neither a journey nor a walk")
	}
	return nil
}

// Connection is one itinerary from A to B. Sections are in travel order.
type Connection struct {
	From        *Checkpoint `json:"from,omitempty" yaml:"from,omitempty"`
	To          *Checkpoint `json:"to,omitempty" yaml:"to,omitempty"`
	Duration    *string     `json:"duration,omitempty" yaml:"duration,omitempty"`
	Service     *Service    `json:"service,omitempty" yaml:"service,omitempty"`
	Products    []string    `json:"products,omitempty" yaml:"products,omitempty"`
	Capacity1st *int        `json:"capacity1st,omitempty" yaml:"capacity1st,omitempty"`
	Capacity2nd *int        `json:"capacity2nd,omitempty" yaml:"capacity2nd,omitempty"`
	Sections    []Section   `json:"sections,omitempty" yaml:"sections,omitempty"`
}

// ParsedDuration converts the server's "00d01:02:03" format.
func (c Connection) ParsedDuration() (time.Duration, error) {
	if c.Duration == nil {
		return 0, errors.New("connection has no duration")
	}
	return ParseDuration(*c.Duration)
}

var durationPattern = regexp.MustCompile(`^(\d+)d(\d{2}):(\d{2}):(\d{2})$`)

// ParseDuration parses durations of the form "DDdHH:MM:SS".
func ParseDuration(value string) (time.Duration, error) {
	m := durationPattern.FindStringSubmatch(value)
	if m == nil {
		return 0, fmt.Errorf("invalid duration %q", value)
	}
	days, _ := strconv.Atoi(m[1])
	hours, _ := strconv.Atoi(m[2])
	minutes, _ := strconv.Atoi(m[3])
	seconds, _ := strconv.Atoi(m[4])
	return time.Duration(days)*24*time.Hour +
		time.Duration(hours)*time.Hour +
		time.Duration(minutes)*time.Minute +
		time.Duration(seconds)*time.Second, nil
}

// Connections is the /connections response, best match first.
type Connections struct {
	Connections []Connection `json:"connections,omitempty" yaml:"connections,omitempty"`
}

// Stationboard is the /stationboard response.
type Stationboard struct {
	Station      *Locations `json:"station,omitempty" yaml:"station,omitempty"`
	Stationboard []Journey  `json:"stationboard,omitempty" yaml:"stationboard,omitempty"`
}
