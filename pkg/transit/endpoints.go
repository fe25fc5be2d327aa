package transit

import (
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"
)

// queryBuilder keeps parameters in insertion order. url.Values would sort
// the keys and escape the "[]" suffix of list parameters.
type queryBuilder struct {
	sb strings.Builder
}

func (q *queryBuilder) add(key, value string) {
	if q.sb.Len() > 0 {
		q.sb.WriteByte('&')
	}
	q.sb.WriteString(key)
	q.sb.WriteByte('=')
	q.sb.WriteString(url.QueryEscape(value))
}

// addNonEmpty skips empty values so defaults never reach the wire.
func (q *queryBuilder) addNonEmpty(key, value string) {
	if value != "" {
		q.add(key, value)
	}
}

func (q *queryBuilder) flag(key string, on bool) {
	if on {
		q.add(key, "1")
	}
}

func (q *queryBuilder) transportations(values []TransportationType) {
	for _, v := range values {
		q.add("transportations[]", string(v))
	}
}

func (q *queryBuilder) String() string {
	return q.sb.String()
}

// Endpoints builds request URLs for one backend.
type Endpoints struct {
	backend Backend
}

func NewEndpoints(backend Backend) Endpoints {
	return Endpoints{backend: backend}
}

func (e Endpoints) Backend() Backend {
	return e.backend
}

func (e Endpoints) build(path string, q *queryBuilder) (string, error) {
	raw := fmt.Sprintf("%s/%s?%s", strings.TrimRight(e.backend.BaseURL, "/"), path, q)

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrURLConstruction, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("%w: %q has no scheme or host", ErrURLConstruction, raw)
	}
	return raw, nil
}

// Locations builds a location search. It only fails when the backend's base
// URL is unusable.
func (e Endpoints) Locations(query string, typ QueryType) (string, error) {
	if typ == "" {
		typ = QueryAll
	}
	var q queryBuilder
	q.add("query", query)
	q.add("type", string(typ))
	return e.build("locations", &q)
}

// LocationsByCoordinate builds a search for locations near x/y. Coordinates
// are not range checked.
func (e Endpoints) LocationsByCoordinate(x, y float64) (string, error) {
	var q queryBuilder
	q.add("x", strconv.FormatFloat(x, 'f', -1, 64))
	q.add("y", strconv.FormatFloat(y, 'f', -1, 64))
	return e.build("locations", &q)
}

// Connections builds a connection search. Either from or to must be set.
func (e Endpoints) Connections(p ConnectionsParams) (string, error) {
	if p.From == "" && p.To == "" {
		return "", invalidParameter("the parameters from and to are required")
	}

	var q queryBuilder
	q.addNonEmpty("from", p.From)
	q.addNonEmpty("to", p.To)
	if p.Limit > 0 && p.Limit != DefaultLimit {
		q.add("limit", strconv.Itoa(p.Limit))
	}
	if p.Page > 0 {
		q.add("page", strconv.Itoa(p.Page))
	}
	q.addNonEmpty("date", p.Date)
	q.addNonEmpty("time", p.Time)

	caps := e.backend.Capabilities
	if caps.Transportations {
		q.transportations(p.Transportations)
	}
	q.flag("isArrivalTime", p.TimeType == TimeArrival)
	if caps.Accessibility {
		q.addNonEmpty("accessibility", string(p.Accessibility))
	}
	if caps.Options {
		for _, o := range []Option{OptionDirect, OptionSleeper, OptionCouchette, OptionBike} {
			q.flag(string(o), slices.Contains(p.Options, o))
		}
	}

	return e.build("connections", &q)
}

// Stationboard builds a departure board request. A station name or id is required.
func (e Endpoints) Stationboard(p StationboardParams) (string, error) {
	caps := e.backend.Capabilities
	stationID := p.StationID
	if !caps.StationID {
		stationID = ""
	}
	if p.Station == "" && stationID == "" {
		return "", invalidParameter("must supply either station name or id")
	}

	var q queryBuilder
	q.addNonEmpty("station", p.Station)
	q.addNonEmpty("id", stationID)
	if p.Limit > 0 {
		q.add("limit", strconv.Itoa(p.Limit))
	}
	q.addNonEmpty("datetime", p.DateTime)
	if caps.Transportations {
		q.transportations(p.Transportations)
	}
	if p.Arrivals {
		q.add("type", "arrival")
	}

	return e.build("stationboard", &q)
}
