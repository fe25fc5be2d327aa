package transit

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

const defaultUserAgent = "transportctl/1.0"

// Doer performs HTTP requests. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client interacts with the transport.opendata.ch API. It holds no mutable
// state and is safe for concurrent use.
type Client struct {
	endpoints  Endpoints
	httpClient Doer
	userAgent  string
	logger     zerolog.Logger
}

type ClientOption func(*Client)

// WithBackend points the client at another deployment.
func WithBackend(b Backend) ClientOption {
	return func(c *Client) { c.endpoints = NewEndpoints(b) }
}

// WithHTTPClient replaces the default *http.Client.
func WithHTTPClient(d Doer) ClientOption {
	return func(c *Client) { c.httpClient = d }
}

func WithUserAgent(ua string) ClientOption {
	return func(c *Client) { c.userAgent = ua }
}

// WithLogger enables debug logging of outgoing request URLs.
func WithLogger(l zerolog.Logger) ClientOption {
	return func(c *Client) { c.logger = l }
}

func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		endpoints:  NewEndpoints(Production),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		userAgent:  defaultUserAgent,
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Endpoints() Endpoints {
	return c.endpoints
}

// Locations searches for stations, POIs and addresses matching query.
func (c *Client) Locations(ctx context.Context, query string, typ QueryType) (*Locations, error) {
	reqURL, err := c.endpoints.Locations(query, typ)
	if err != nil {
		return nil, err
	}
	return fetch[Locations](ctx, c, reqURL)
}

// LocationsByCoordinate lists locations close to x/y.
func (c *Client) LocationsByCoordinate(ctx context.Context, x, y float64) (*Locations, error) {
	reqURL, err := c.endpoints.LocationsByCoordinate(x, y)
	if err != nil {
		return nil, err
	}
	return fetch[Locations](ctx, c, reqURL)
}

// Connections plans trips. Invalid parameters are reported without a request.
func (c *Client) Connections(ctx context.Context, p ConnectionsParams) (*Connections, error) {
	reqURL, err := c.endpoints.Connections(p)
	if err != nil {
		return nil, err
	}
	return fetch[Connections](ctx, c, reqURL)
}

// Stationboard fetches the next departures (or arrivals) at one station.
func (c *Client) Stationboard(ctx context.Context, p StationboardParams) (*Stationboard, error) {
	reqURL, err := c.endpoints.Stationboard(p)
	if err != nil {
		return nil, err
	}
	return fetch[Stationboard](ctx, c, reqURL)
}

func fetch[T Result](ctx context.Context, c *Client, reqURL string) (*T, error) {
	body, err := c.get(ctx, reqURL)
	if err != nil {
		return nil, err
	}
	return Decode[T](body)
}

// get performs a single GET. There are no retries; failures go straight
// back to the caller.
func (c *Client) get(ctx context.Context, reqURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrURLConstruction, err)
	}
	// Public APIs often block default Go user agents
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	c.logger.Debug().Str("url", reqURL).Msg("Making request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{URL: reqURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &TransportError{URL: reqURL, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{URL: reqURL, Err: fmt.Errorf("failed to read response body: %w", err)}
	}
	return body, nil
}
