package stats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"stayboard/internal/app/dto"
)

// Client fetches pre-aggregated headline metrics from the statistics
// endpoint. Failures are reported to the caller, which falls back to
// computing the same figures from the snapshot.
type Client struct {
	Endpoint string
	Client   *http.Client
	Logger   *slog.Logger
}

func (c *Client) Fetch(ctx context.Context) (*dto.DashboardStats, error) {
	if c == nil || c.Client == nil {
		return nil, errors.New("stats: http client not configured")
	}
	if c.Endpoint == "" {
		return nil, errors.New("stats: endpoint not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Endpoint, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.Client.Do(req)
	if err != nil {
		var netErr net.Error
		if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
			err = fmt.Errorf("stats: endpoint timeout (%s)", c.Endpoint)
		} else {
			err = fmt.Errorf("stats: endpoint unavailable (%s)", c.Endpoint)
		}
		c.logError("stats request failed", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		err := fmt.Errorf("stats: endpoint returned %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
		c.logError("stats returned error", err)
		return nil, err
	}

	var out dto.DashboardStats
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		c.logError("stats decode failed", err)
		return nil, err
	}
	return &out, nil
}

func (c *Client) logError(msg string, err error) {
	if c.Logger != nil {
		c.Logger.Error(msg, "error", err)
	}
}
