package relay

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"realtime-relay/domain"
	"realtime-relay/errors"
	"time"
)

const (
	OriginHeader  = "X-Relay-Origin"
	DefaultOrigin = "realtime-relay"
)

// Client posts driver positions to the backend that persists them.
type Client struct {
	url    string
	origin string
	http   *http.Client
}

func NewClient(url, origin string, timeout time.Duration) *Client {
	if origin == "" {
		origin = DefaultOrigin
	}
	return &Client{
		url:    url,
		origin: origin,
		http:   &http.Client{Timeout: timeout},
	}
}

// Forward reports ErrRelayTimeout when the deadline fires first and
// ErrRelayFailure for transport errors and non-2xx answers.
func (c *Client) Forward(ctx context.Context, payload domain.RelayPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrRelayFailure, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrRelayFailure, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(OriginHeader, c.origin)

	resp, err := c.http.Do(req)
	if err != nil {
		if isTimeout(ctx, err) {
			return fmt.Errorf("%w: %v", errors.ErrRelayTimeout, err)
		}
		return fmt.Errorf("%w: %v", errors.ErrRelayFailure, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: status %d", errors.ErrRelayFailure, resp.StatusCode)
	}
	return nil
}

func isTimeout(ctx context.Context, err error) bool {
	if stderrors.Is(ctx.Err(), context.DeadlineExceeded) || stderrors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr interface{ Timeout() bool }
	return stderrors.As(err, &netErr) && netErr.Timeout()
}
