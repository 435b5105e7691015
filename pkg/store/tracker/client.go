package tracker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/de-tools/time-atlas/pkg/adapters"
	"github.com/de-tools/time-atlas/pkg/models/domain"
	"github.com/de-tools/time-atlas/pkg/models/store"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog"
)

const (
	defaultBaseURL   = "https://api.timeular.com/api/v3"
	defaultUserAgent = "time-atlas/1.0"

	// trackerTimeLayout renders window bounds the way the tracker expects:
	// zone-less wall-clock time, millisecond precision.
	trackerTimeLayout = "2006-01-02T15:04:05.000"
)

// Client talks to the tracker API. GET responses go through the injected
// cache; sign-in happens lazily on the first authenticated call.
type Client struct {
	baseURL   string
	userAgent string
	apiKey    string
	apiSecret string
	token     string
	http      *http.Client
	cache     Cache
}

type Options struct {
	APIKey    string
	APISecret string
	BaseURL   string
	UserAgent string
	Cache     Cache
	// HTTPClient overrides the default retrying client, mainly for tests.
	HTTPClient *http.Client
}

func NewClient(opts Options) *Client {
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
		apiKey:    opts.APIKey,
		apiSecret: opts.APISecret,
		http:      opts.HTTPClient,
		cache:     opts.Cache,
	}
}

// SignIn exchanges the configured key/secret for a bearer token. Calling it
// again with a token in hand is a no-op.
func (c *Client) SignIn(ctx context.Context) error {
	if c.token != "" {
		return nil
	}

	var response store.SignInResponse
	err := c.request(ctx, http.MethodPost, "developer/sign-in", store.SignInRequest{
		APIKey:    c.apiKey,
		APISecret: c.apiSecret,
	}, &response)
	if err != nil {
		return fmt.Errorf("unable to authenticate to the tracker API: %w", err)
	}

	c.token = response.Token
	return nil
}

// GetActivities returns the account's tracker activities.
func (c *Client) GetActivities(ctx context.Context) ([]store.Activity, error) {
	if err := c.SignIn(ctx); err != nil {
		return nil, err
	}

	var response store.ActivitiesResponse
	if err := c.request(ctx, http.MethodGet, "activities", nil, &response); err != nil {
		return nil, fmt.Errorf("unable to retrieve activities: %w", err)
	}
	return response.Activities, nil
}

// GetTimeEntries fetches the raw tracked intervals inside [start, end] and
// resolves each entry's activity name. The returned records cover exactly
// the requested window; the aggregation core trusts that filtering.
func (c *Client) GetTimeEntries(ctx context.Context, start, end time.Time) ([]domain.TimeRecord, error) {
	activities, err := c.GetActivities(ctx)
	if err != nil {
		return nil, err
	}
	names := adapters.MapStoreActivityNames(activities)

	endpoint := fmt.Sprintf("time-entries/%s/%s", start.Format(trackerTimeLayout), end.Format(trackerTimeLayout))

	var response store.TimeEntriesResponse
	if err := c.request(ctx, http.MethodGet, endpoint, nil, &response); err != nil {
		return nil, fmt.Errorf("unable to retrieve time entries: %w", err)
	}

	records := make([]domain.TimeRecord, 0, len(response.TimeEntries))
	for _, entry := range response.TimeEntries {
		record, err := adapters.MapStoreTimeEntryToDomainRecord(entry, names)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

func (c *Client) request(ctx context.Context, method, endpoint string, payload, out any) error {
	logger := zerolog.Ctx(ctx)

	if method == http.MethodGet && c.cache != nil {
		if body, ok := c.cache.Get(endpoint); ok {
			logger.Debug().Str("endpoint", endpoint).Msg("tracker response served from cache")
			return json.Unmarshal(body, out)
		}
	}

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
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	logger.Debug().Str("endpoint", endpoint).Str("method", method).Msg("tracker API request")
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("tracker request %s failed: %w", endpoint, err)
	}
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			logger.Warn().Err(err).Msg("failed to close tracker response body")
		}
	}(resp.Body)

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("tracker request %s: unexpected status %s", endpoint, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read tracker response for %s: %w", endpoint, err)
	}

	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("failed to decode tracker response for %s: %w", endpoint, err)
		}
	}

	if method == http.MethodGet && c.cache != nil {
		c.cache.Set(endpoint, body)
	}

	return nil
}
