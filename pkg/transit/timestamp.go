package transit

import (
	"encoding/json"
	"fmt"
	"time"
)

// The API writes offsets without a colon (2024-03-25T17:34:00+0100), which
// time.RFC3339 rejects, so both offset forms are accepted.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999Z0700",
}

// Timestamp is an ISO-8601 date-time as sent by the API.
type Timestamp struct {
	time.Time
}

// ParseTimestamp parses value using the ISO-8601 profile of the API.
func ParseTimestamp(value string) (Timestamp, error) {
	var lastErr error
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return Timestamp{Time: t}, nil
		}
		lastErr = err
	}
	return Timestamp{}, &DateError{Value: value, Err: lastErr}
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &DateError{Value: string(data), Err: fmt.Errorf("expected a JSON string")}
	}
	parsed, err := ParseTimestamp(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Time.Format(time.RFC3339))
}

// MarshalYAML keeps YAML output in the same form as the JSON output.
func (t Timestamp) MarshalYAML() (interface{}, error) {
	return t.Time.Format(time.RFC3339), nil
}
