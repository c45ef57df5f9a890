package directory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"stepboard/internal/config"
	"stepboard/internal/logging"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// maxBodyBytes caps the response body; 100 users are roughly 120KB.
const maxBodyBytes = 8 << 20

// Fetcher is the capability screens depend on.
type Fetcher interface {
	Fetch(ctx context.Context) ([]Payload, error)
}

// Client talks to the random-user directory service.
type Client struct {
	baseURL       string
	results       int
	nationalities []string
	userAgent     string
	client        *http.Client
}

// NewClient creates a client from the directory section of the config.
func NewClient(cfg config.DirectoryConfig, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL:       cfg.BaseURL,
		results:       cfg.Results,
		nationalities: cfg.Nationalities,
		userAgent:     cfg.UserAgent,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// URL returns the request URL: base URL plus results and nat parameters.
func (c *Client) URL() (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid directory base URL: %w", err)
	}
	q := u.Query()
	q.Set("results", strconv.Itoa(c.results))
	if len(c.nationalities) > 0 {
		q.Set("nat", strings.Join(c.nationalities, ","))
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Fetch issues the single GET and decodes the results array.
func (c *Client) Fetch(ctx context.Context) ([]Payload, error) {
	log := logging.Get(logging.CategoryDirectory).With(zap.String("fetch_id", uuid.NewString()))
	start := time.Now()

	target, err := c.URL()
	if err != nil {
		return nil, &FetchError{Op: "request", URL: c.baseURL, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, &FetchError{Op: "request", URL: target, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	log.Debug("fetching users", zap.String("url", target))

	resp, err := c.client.Do(req)
	if err != nil {
		log.Warn("directory request failed", zap.Error(err))
		return nil, &FetchError{Op: "request", URL: target, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		log.Warn("directory returned non-success status", zap.Int("status", resp.StatusCode))
		return nil, &FetchError{Op: "status", URL: target, StatusCode: resp.StatusCode}
	}

	var body response
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&body); err != nil {
		log.Warn("failed to decode directory response", zap.Error(err))
		return nil, &FetchError{Op: "decode", URL: target, Err: err}
	}
	if body.Error != "" {
		return nil, &FetchError{Op: "decode", URL: target, Err: errors.New(body.Error)}
	}
	if body.Results == nil {
		return nil, &FetchError{Op: "decode", URL: target, Err: errors.New("response has no results array")}
	}

	log.Info("fetched users",
		zap.Int("count", len(body.Results)),
		zap.Duration("elapsed", time.Since(start)))

	return body.Results, nil
}
