package transit

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter is returned before any network call when a required
	// parameter combination is missing.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrURLConstruction is returned when the assembled endpoint is not a valid URL.
	ErrURLConstruction = errors.New("could not construct URL")

	// ErrTransport covers network failures and non-2xx responses.
	ErrTransport = errors.New("transport error")

	// ErrObjectSerialization is returned when a response body cannot be decoded.
	ErrObjectSerialization = errors.New("object serialization")
)

func invalidParameter(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidParameter, reason)
}

// TransportError is reported by the client when the HTTP exchange itself fails.
// StatusCode is zero when no response was received.
type TransportError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("transport error: unexpected status code %d from %s", e.StatusCode, e.URL)
	}
	return fmt.Sprintf("transport error: request to %s failed: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) Is(target error) bool { return target == ErrTransport }

// DateError marks a decode failure caused by a timestamp that is not ISO-8601.
type DateError struct {
	Value string
	Err   error
}

func (e *DateError) Error() string {
	return fmt.Sprintf("invalid ISO-8601 date %q: %v", e.Value, e.Err)
}

func (e *DateError) Unwrap() error { return e.Err }

func (e *DateError) Is(target error) bool { return target == ErrObjectSerialization }
