package superhero

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/phrazzld/hero-api/internal/config"
	"github.com/phrazzld/hero-api/internal/platform/logger"
	"github.com/phrazzld/hero-api/internal/redact"
)

const clientComponent = "superhero_client"

// Errors returned by Client.Search. Transport failures are returned as the
// underlying *url.Error with the token removed from its URL.
var (
	ErrInvalidConfig    = errors.New("invalid superhero client configuration")
	ErrUnexpectedStatus = errors.New("unexpected status from hero directory")
	ErrDecodeResponse   = errors.New("failed to decode hero directory response")
)

// maxBodyBytes bounds how much of a response body is read.
const maxBodyBytes = 1 << 20

// Client searches the hero directory by name.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// NewClient creates a Client from cfg. The base URL and token are required.
// If logger is nil, a default logger will be used.
func NewClient(cfg config.SuperheroConfig, logger *slog.Logger, opts ...Option) (*Client, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, fmt.Errorf("%w: base URL cannot be empty", ErrInvalidConfig)
	}
	if _, err := url.ParseRequestURI(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("%w: invalid base URL: %v", ErrInvalidConfig, err)
	}
	if strings.TrimSpace(cfg.APIToken) == "" {
		return nil, fmt.Errorf("%w: API token cannot be empty", ErrInvalidConfig)
	}

	if logger == nil {
		logger = slog.Default()
	}

	c := &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		token:      cfg.APIToken,
		httpClient: http.DefaultClient,
		logger:     logger.With(slog.String("component", clientComponent)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Search calls GET {base}/{token}/search/{name}. A non-success "response"
// field is not an error; callers inspect SearchResponse.Succeeded.
func (c *Client) Search(ctx context.Context, name string) (*SearchResponse, error) {
	log := logger.ForComponent(ctx, c.logger, clientComponent)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.searchURL(name, url.PathEscape(c.token)), nil)
	if err != nil {
		lookupsTotal.WithLabelValues(outcomeError).Inc()
		return nil, c.scrub(fmt.Errorf("failed to build search request: %w", err), name)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		lookupsTotal.WithLabelValues(outcomeError).Inc()
		err = c.scrub(err, name)
		log.Error("hero directory request failed",
			slog.String("name", name),
			slog.String("error", redact.Error(err)))
		return nil, err
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			log.Warn("failed to close response body", slog.String("error", closeErr.Error()))
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		lookupsTotal.WithLabelValues(outcomeError).Inc()
		log.Error("hero directory returned unexpected status",
			slog.String("name", name),
			slog.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	var out SearchResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&out); err != nil {
		lookupsTotal.WithLabelValues(outcomeError).Inc()
		log.Error("failed to decode hero directory response",
			slog.String("name", name),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %v", ErrDecodeResponse, err)
	}

	if out.Succeeded() {
		lookupsTotal.WithLabelValues(outcomeSuccess).Inc()
	} else {
		lookupsTotal.WithLabelValues(outcomeNotFound).Inc()
	}

	log.Debug("hero directory search completed",
		slog.String("name", name),
		slog.String("response", out.Response),
		slog.Int("results", len(out.Results)))
	return &out, nil
}

func (c *Client) searchURL(name, tokenSegment string) string {
	return c.baseURL + "/" + tokenSegment + "/search/" + url.PathEscape(name)
}

// scrub removes the API token from err, keeping *url.Error intact so callers
// can still inspect timeouts and cancellations.
func (c *Client) scrub(err error, name string) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		urlErr.URL = c.searchURL(name, redact.RedactedTokenPlaceholder)
	}
	if strings.Contains(err.Error(), c.token) {
		return errors.New(strings.ReplaceAll(err.Error(), c.token, redact.RedactedTokenPlaceholder))
	}
	return err
}
