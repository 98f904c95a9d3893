package client

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/anmicius0/lexicon/internal/config"
)

const (
	healthPath             = "/health"
	characterPositionsPath = "/api/characterpositions"
)

// positionsClient talks to the character positions API.
// It is intentionally unexported so callers use the PositionsClient interface.
type positionsClient struct {
	*HTTPClient
}

// NewPositionsClient creates a client for the API served at baseURL.
func NewPositionsClient(baseURL string, timeout time.Duration) PositionsClient {
	return &positionsClient{
		HTTPClient: NewHTTPClient(baseURL, timeout),
	}
}

// FindPositions posts input and returns the decoded response entries. A nil
// input is sent as an empty body, which the API reports as a missing input.
func (c *positionsClient) FindPositions(input *config.MatchInput) ([]config.CharacterPosition, error) {
	var body any
	if input != nil {
		body = input
	}
	response, err := c.DoReq(http.MethodPost, characterPositionsPath, body)
	if err != nil {
		return nil, fmt.Errorf("find positions: %w", err)
	}
	var positions []config.CharacterPosition
	if err := json.Unmarshal(response.Bytes(), &positions); err != nil {
		return nil, fmt.Errorf("find positions: failed to unmarshal response: %w", err)
	}
	return positions, nil
}

// Info fetches the product info listing.
func (c *positionsClient) Info() ([]config.InfoEntry, error) {
	response, err := c.DoReq(http.MethodGet, characterPositionsPath, nil)
	if err != nil {
		return nil, fmt.Errorf("get info: %w", err)
	}
	var info []config.InfoEntry
	if err := json.Unmarshal(response.Bytes(), &info); err != nil {
		return nil, fmt.Errorf("get info: failed to unmarshal response: %w", err)
	}
	return info, nil
}

// Health checks that the API is up.
func (c *positionsClient) Health() error {
	if _, err := c.DoReq(http.MethodGet, healthPath, nil); err != nil {
		return fmt.Errorf("health check: %w", err)
	}
	return nil
}
