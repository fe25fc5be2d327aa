package transit

import (
	"errors"
	"net/url"
	"strings"
	"testing"
)

func mustParseQuery(t *testing.T, raw string) url.Values {
	t.Helper()
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("endpoint %q does not parse: %v", raw, err)
	}
	return u.Query()
}

func TestEndpoints_Locations_RoundTrip(t *testing.T) {
	e := NewEndpoints(Production)

	queries := []string{
		"Zürich HB",
		"Bern",
		"a&b=c",
		"50% off / #1?",
		"Genève-Aéroport+Gare",
		"",
	}
	types := []QueryType{QueryAll, QueryStation, QueryPOI, QueryAddress}

	for _, query := range queries {
		for _, typ := range types {
			endpoint, err := e.Locations(query, typ)
			if err != nil {
				t.Fatalf("unexpected error for %q/%s: %v", query, typ, err)
			}
			if !strings.HasPrefix(endpoint, "https://transport.opendata.ch/v1/locations?") {
				t.Errorf("unexpected endpoint prefix: %s", endpoint)
			}

			values := mustParseQuery(t, endpoint)
			if got := values.Get("query"); got != query {
				t.Errorf("expected query %q to round-trip, got %q", query, got)
			}
			if got := values.Get("type"); got != string(typ) {
				t.Errorf("expected type %s, got %s", typ, got)
			}
		}
	}
}

func TestEndpoints_Locations_DefaultType(t *testing.T) {
	endpoint, err := NewEndpoints(Production).Locations("Basel", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := mustParseQuery(t, endpoint).Get("type"); got != "all" {
		t.Errorf("expected default type all, got %s", got)
	}
}

func TestEndpoints_LocationsByCoordinate(t *testing.T) {
	endpoint, err := NewEndpoints(Production).LocationsByCoordinate(47.476001, 8.306130)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "https://transport.opendata.ch/v1/locations?x=47.476001&y=8.30613"
	if endpoint != want {
		t.Errorf("expected %s, got %s", want, endpoint)
	}

	// no range validation
	if _, err := NewEndpoints(Production).LocationsByCoordinate(-500, 1e9); err != nil {
		t.Errorf("expected out of range coordinates to be accepted, got %v", err)
	}
}

func TestEndpoints_Connections_RequiresFromOrTo(t *testing.T) {
	e := NewEndpoints(Production)

	cases := []ConnectionsParams{
		{},
		{Limit: 10, Page: 2},
		{Date: "2024-03-25", Time: "17:30", TimeType: TimeArrival},
		{Transportations: []TransportationType{TransportationBus}, Options: []Option{OptionBike}},
		{Accessibility: AccessibilityAdvancedNotice},
	}

	for i, p := range cases {
		_, err := e.Connections(p)
		if !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("case %d: expected ErrInvalidParameter, got %v", i, err)
		}
	}
}

func TestEndpoints_Connections_Minimal(t *testing.T) {
	endpoint, err := NewEndpoints(Production).Connections(ConnectionsParams{From: "Lausanne", To: "Genève"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "https://transport.opendata.ch/v1/connections?from=Lausanne&to=Gen%C3%A8ve"
	if endpoint != want {
		t.Errorf("expected %s, got %s", want, endpoint)
	}
}

func TestEndpoints_Connections_Defaults(t *testing.T) {
	endpoint, err := NewEndpoints(Production).Connections(ConnectionsParams{
		From:  "Zürich",
		To:    "Bern",
		Limit: DefaultLimit,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	values := mustParseQuery(t, endpoint)
	for _, key := range []string{"limit", "page", "date", "time", "isArrivalTime", "accessibility", "transportations[]"} {
		if values.Has(key) {
			t.Errorf("expected default parameter %s to be omitted, got %s", key, endpoint)
		}
	}
}

func TestEndpoints_Connections_AllParameters(t *testing.T) {
	endpoint, err := NewEndpoints(Production).Connections(ConnectionsParams{
		From:     "Zürich HB",
		To:       "Bern",
		Limit:    6,
		Page:     1,
		Date:     "2024-03-25",
		Time:     "17:30",
		TimeType: TimeArrival,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	values := mustParseQuery(t, endpoint)
	expected := map[string]string{
		"from":          "Zürich HB",
		"to":            "Bern",
		"limit":         "6",
		"page":          "1",
		"date":          "2024-03-25",
		"time":          "17:30",
		"isArrivalTime": "1",
	}
	for key, want := range expected {
		if got := values.Get(key); got != want {
			t.Errorf("expected %s=%s, got %q", key, want, got)
		}
	}
}

func TestEndpoints_Connections_Accessibility(t *testing.T) {
	e := NewEndpoints(Production)

	tests := []struct {
		accessibility AccessibilityType
		want          string
	}{
		{AccessibilityAny, ""},
		{AccessibilityIndependentBoarding, "independent_boarding"},
		{AccessibilityAssistedBoarding, "assisted_boarding"},
		{AccessibilityAdvancedNotice, "advanced_notice"},
	}

	for _, tt := range tests {
		endpoint, err := e.Connections(ConnectionsParams{From: "A", To: "B", Accessibility: tt.accessibility})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		values := mustParseQuery(t, endpoint)
		if tt.want == "" {
			if strings.Contains(endpoint, "accessibility") {
				t.Errorf("expected accessibility to be omitted for any, got %s", endpoint)
			}
			continue
		}
		if got := values["accessibility"]; len(got) != 1 || got[0] != tt.want {
			t.Errorf("expected exactly one accessibility=%s, got %v", tt.want, got)
		}
	}
}

func TestEndpoints_Connections_Options(t *testing.T) {
	endpoint, err := NewEndpoints(Production).Connections(ConnectionsParams{
		From:    "A",
		To:      "B",
		Options: []Option{OptionBike, OptionSleeper},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{"bike=1", "sleeper=1"} {
		if !strings.Contains(endpoint, want) {
			t.Errorf("expected %s in %s", want, endpoint)
		}
	}
	for _, unwanted := range []string{"direct=1", "couchette=1"} {
		if strings.Contains(endpoint, unwanted) {
			t.Errorf("did not expect %s in %s", unwanted, endpoint)
		}
	}
}

func TestEndpoints_Connections_TransportationsOrder(t *testing.T) {
	endpoint, err := NewEndpoints(Production).Connections(ConnectionsParams{
		From:            "A",
		To:              "B",
		Transportations: []TransportationType{TransportationBus, TransportationShip},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(endpoint, "transportations[]=bus&transportations[]=ship") {
		t.Errorf("expected repeated transportations[] in input order, got %s", endpoint)
	}

	got := mustParseQuery(t, endpoint)["transportations[]"]
	if len(got) != 2 || got[0] != "bus" || got[1] != "ship" {
		t.Errorf("expected [bus ship], got %v", got)
	}
}

func TestEndpoints_Capabilities(t *testing.T) {
	legacy := Custom("legacy", "https://legacy.example.com/v1")
	legacy.Capabilities = Capabilities{}
	e := NewEndpoints(legacy)

	endpoint, err := e.Connections(ConnectionsParams{
		From:            "A",
		To:              "B",
		Transportations: []TransportationType{TransportationBus},
		Accessibility:   AccessibilityAssistedBoarding,
		Options:         []Option{OptionDirect},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if endpoint != "https://legacy.example.com/v1/connections?from=A&to=B" {
		t.Errorf("expected unsupported parameters to be dropped, got %s", endpoint)
	}

	if _, err := e.Stationboard(StationboardParams{StationID: "8503000"}); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("expected station id to be ignored without capability, got %v", err)
	}
}

func TestEndpoints_Stationboard(t *testing.T) {
	e := NewEndpoints(Production)

	if _, err := e.Stationboard(StationboardParams{DateTime: "2024-03-25 17:30"}); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("expected ErrInvalidParameter without station, got %v", err)
	}

	endpoint, err := e.Stationboard(StationboardParams{
		Station:         "Aarau",
		StationID:       "8502113",
		DateTime:        "2024-03-25 17:30",
		Transportations: []TransportationType{TransportationBus},
		Limit:           10,
		Arrivals:        true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	values := mustParseQuery(t, endpoint)
	expected := map[string]string{
		"station":           "Aarau",
		"id":                "8502113",
		"datetime":          "2024-03-25 17:30",
		"transportations[]": "bus",
		"limit":             "10",
		"type":              "arrival",
	}
	for key, want := range expected {
		if got := values.Get(key); got != want {
			t.Errorf("expected %s=%s, got %q", key, want, got)
		}
	}

	byID, err := e.Stationboard(StationboardParams{StationID: "8502113"})
	if err != nil {
		t.Fatalf("expected id alone to be accepted, got %v", err)
	}
	if byID != "https://transport.opendata.ch/v1/stationboard?id=8502113" {
		t.Errorf("unexpected endpoint %s", byID)
	}
}

func TestEndpoints_URLConstructionError(t *testing.T) {
	e := NewEndpoints(Custom("broken", "not a url"))

	_, err := e.Locations("Bern", QueryAll)
	if !errors.Is(err, ErrURLConstruction) {
		t.Errorf("expected ErrURLConstruction, got %v", err)
	}
}
