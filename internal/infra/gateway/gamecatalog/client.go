package gamecatalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"tabletop-reserve/internal/usecase/shared"
)

type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client reads game metadata from the remote board game catalog.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

type gameResponse struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

func NewClient(cfg Config) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = 5 * time.Second
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

func (c *Client) FetchGameByExternalID(ctx context.Context, externalID string) (*shared.GameMetadata, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/games/"+url.PathEscape(externalID), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build game request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch game: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, nil
	default:
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var body gameResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode game response: %w", err)
	}
	if body.Name == "" {
		return nil, nil
	}

	return &shared.GameMetadata{
		ExternalID:   externalID,
		Name:         body.Name,
		Description:  body.Description,
		CategoryName: body.Category,
	}, nil
}
