package joke

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// maxBodySize caps how much of a response body is decoded.
const maxBodySize = 1 << 20

// userAgent identifies requests made by the widget.
const userAgent = "LISSTech.Widgets/1 (+joke)"

// Client fetches jokes from a JSON endpoint over HTTP.
type Client struct {
	endpoint string
	client   *http.Client
}

// NewClient creates a Client for endpoint. A zero timeout waits forever.
func NewClient(endpoint string, timeout time.Duration) *Client {
	return &Client{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

// Endpoint returns the URL the client requests.
func (c *Client) Endpoint() string { return c.endpoint }

// Fetch performs one GET and decodes the response. Any failure is returned
// wrapped in ErrFetchFailed together with its cause.
func (c *Client) Fetch(ctx context.Context) (Joke, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return Joke{}, fmt.Errorf("%w: build request: %w", ErrFetchFailed, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return Joke{}, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Joke{}, fmt.Errorf("%w: unexpected status %s", ErrFetchFailed, resp.Status)
	}

	var p payload
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodySize)).Decode(&p); err != nil {
		return Joke{}, fmt.Errorf("%w: decode: %w", ErrFetchFailed, err)
	}
	if p.Setup == nil || p.Punchline == nil {
		return Joke{}, fmt.Errorf("%w: response missing setup or punchline", ErrFetchFailed)
	}
	return Joke{ID: p.ID, Type: p.Type, Setup: *p.Setup, Punchline: *p.Punchline}, nil
}

// payload is the wire form of a Joke. Pointers tell an absent or null
// field apart from an empty string.
type payload struct {
	ID        int     `json:"id"`
	Type      string  `json:"type"`
	Setup     *string `json:"setup"`
	Punchline *string `json:"punchline"`
}
