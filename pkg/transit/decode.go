package transit

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Result is one of the three response shapes.
type Result interface {
	Locations | Connections | Stationboard
}

// Decode maps a response body onto T. Missing fields are never an error.
// Empty or null bodies, malformed JSON, mismatched field types and non-ISO-8601
// timestamps all fail with ErrObjectSerialization; timestamp failures also
// match *DateError.
func Decode[T Result](payload []byte) (*T, error) {
	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, fmt.Errorf("%w: no data in response", ErrObjectSerialization)
	}

	var out T
	if err := json.Unmarshal(payload, &out); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrObjectSerialization, err)
	}
	return &out, nil
}

func DecodeLocations(payload []byte) (*Locations, error) {
	return Decode[Locations](payload)
}

func DecodeConnections(payload []byte) (*Connections, error) {
	return Decode[Connections](payload)
}

func DecodeStationboard(payload []byte) (*Stationboard, error) {
	return Decode[Stationboard](payload)
}
