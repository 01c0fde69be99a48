package feed

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"daygrid/internal/logger"
	"daygrid/internal/models"
)

// Client fetches a remote iCalendar feed. It sits strictly upstream of
// the layout engine: failures here degrade to an empty block list at
// the caller, never into the engine's contract.
type Client struct {
	httpClient *http.Client
}

func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// Fetch downloads the feed at url and parses the events between from
// and to. An optional bearer token (kept in the OS keyring by the
// caller) is attached when non-empty.
func (c *Client) Fetch(ctx context.Context, url, token string, loc *time.Location, from, to time.Time) ([]models.ExternalBlock, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid feed URL: %w", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed returned status %d", resp.StatusCode)
	}

	blocks, err := Parse(resp.Body, loc, from, to)
	if err != nil {
		return nil, err
	}
	logger.Debug("Fetched calendar feed", "url", url, "events", len(blocks))
	return blocks, nil
}

// ForDay filters blocks down to those overlapping the calendar day
// beginning at dayStart.
func ForDay(blocks []models.ExternalBlock, dayStart time.Time) []models.ExternalBlock {
	var out []models.ExternalBlock
	for _, b := range blocks {
		if b.OverlapsDay(dayStart) {
			out = append(out, b)
		}
	}
	return out
}
