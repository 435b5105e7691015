package billing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/de-tools/time-atlas/pkg/models/store"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog"
)

const (
	defaultBaseURL   = "https://api.nokotime.com/v2"
	defaultUserAgent = "time-atlas/1.0"
)

// Client talks to the billing API using a personal access token.
type Client struct {
	baseURL   string
	userAgent string
	token     string
	http      *http.Client
}

type Options struct {
	BaseURL    string
	UserAgent  string
	HTTPClient *http.Client
}

func NewClient(token string, opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = defaultBaseURL
	}
	if opts.UserAgent == "" {
		opts.UserAgent = defaultUserAgent
	}
	if opts.HTTPClient == nil {
		rc := retryablehttp.NewClient()
		rc.RetryMax = 3
		rc.Logger = nil
		opts.HTTPClient = rc.StandardClient()
	}

	return &Client{
		baseURL:   opts.BaseURL,
		userAgent: opts.UserAgent,
		token:     token,
		http:      opts.HTTPClient,
	}
}

// ListProjects returns the billing projects visible to the token.
func (c *Client) ListProjects(ctx context.Context) ([]store.BillingProject, error) {
	var projects []store.BillingProject
	if err := c.request(ctx, http.MethodGet, "projects", nil, &projects); err != nil {
		return nil, fmt.Errorf("unable to list billing projects: %w", err)
	}
	return projects, nil
}

// GetEntry fetches one previously created billing entry.
func (c *Client) GetEntry(ctx context.Context, id int64) (*store.BillingEntry, error) {
	var entry store.BillingEntry
	if err := c.request(ctx, http.MethodGet, fmt.Sprintf("entries/%d", id), nil, &entry); err != nil {
		return nil, fmt.Errorf("unable to fetch billing entry %d: %w", id, err)
	}
	return &entry, nil
}

// CreateEntry submits one aggregated (day, project) group.
func (c *Client) CreateEntry(ctx context.Context, payload store.BillingEntryPayload) (*store.BillingEntry, error) {
	var entry store.BillingEntry
	if err := c.request(ctx, http.MethodPost, "entries", payload, &entry); err != nil {
		return nil, fmt.Errorf("unable to create billing entry for %s: %w", payload.Date, err)
	}
	return &entry, nil
}

func (c *Client) request(ctx context.Context, method, endpoint string, payload, out any) error {
	logger := zerolog.Ctx(ctx)

	var reqBody io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode %s payload: %w", endpoint, err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/"+endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create %s request: %w", endpoint, err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-NokoToken", c.token)

	logger.Debug().Str("endpoint", endpoint).Str("method", method).Msg("billing API request")
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("billing request %s failed: %w", endpoint, err)
	}
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			logger.Warn().Err(err).Msg("failed to close billing response body")
		}
	}(resp.Body)

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("billing request %s: unexpected status %s", endpoint, resp.Status)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode billing response for %s: %w", endpoint, err)
	}
	return nil
}
