package fetch

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"rollcall/internal/config"
	"rollcall/internal/logging"
	"rollcall/internal/services"
)

// Fetcher retrieves raw provider markup. Implementations must be safe for
// concurrent use.
type Fetcher interface {
	SeriesPage(ctx context.Context, ref string) (string, error)
	SearchPage(ctx context.Context, query string) (string, error)
}

// Client fetches pages with the configured identity and retry policy.
type Client struct {
	http    *resty.Client
	solver  *Solver
	logger  *slog.Logger
	baseURL string
}

// NewClient constructs a Client from configuration. The solver is attached
// only when enabled.
func NewClient(cfg *config.Config, logger *slog.Logger) *Client {
	componentLogger := logging.NewComponentLogger(logger, "fetch")

	http := resty.New().
		SetTimeout(time.Duration(cfg.Provider.RequestTimeout)*time.Second).
		SetRetryCount(cfg.Provider.MaxRetries).
		SetRetryWaitTime(1*time.Second).
		SetRetryMaxWaitTime(15*time.Second).
		SetHeader("User-Agent", cfg.Provider.UserAgent).
		SetHeader("Accept-Language", cfg.Provider.Language).
		SetHeader("Accept", "text/html,application/xhtml+xml")

	client := &Client{
		http:    http,
		logger:  componentLogger,
		baseURL: strings.TrimRight(cfg.Provider.BaseURL, "/"),
	}
	if cfg.Solver.Enabled {
		client.solver = NewSolver(cfg, componentLogger)
	}
	return client
}

// SeriesPage fetches a series page. ref may be a full URL, a site-relative
// path, or a bare series ID.
func (c *Client) SeriesPage(ctx context.Context, ref string) (string, error) {
	return c.Page(ctx, seriesPath(ref))
}

// SearchPage fetches the search results page for a query.
func (c *Client) SearchPage(ctx context.Context, query string) (string, error) {
	return c.Page(ctx, "/search?q="+url.QueryEscape(query))
}

// Page fetches an arbitrary path or absolute URL and returns the response
// body. Challenge responses are routed through the solver when one is
// configured.
func (c *Client) Page(ctx context.Context, ref string) (string, error) {
	target := c.resolve(ref)

	resp, err := c.http.R().SetContext(ctx).Get(target)
	if err != nil {
		return "", services.Wrap(services.ErrTransient, "fetch", "page", target, err)
	}

	body := string(resp.Body())
	status := resp.StatusCode()

	switch {
	case isChallenge(status, body):
		return c.solve(ctx, target)
	case status == 404:
		return "", services.Wrap(services.ErrNotFound, "fetch", "page", target, nil)
	case status >= 500:
		return "", services.Wrap(services.ErrTransient, "fetch", "page",
			fmt.Sprintf("%s returned status %d", target, status), nil)
	case status >= 400:
		return "", services.Wrap(services.ErrTransient, "fetch", "page",
			fmt.Sprintf("%s returned status %d", target, status), nil)
	}

	c.logger.Debug("page fetched",
		logging.String("url", target),
		logging.Int("status", status),
		logging.Int("bytes", len(body)))
	return body, nil
}

func (c *Client) solve(ctx context.Context, target string) (string, error) {
	if c.solver == nil {
		return "", services.Wrap(services.ErrConfiguration, "fetch", "page",
			fmt.Sprintf("%s answered with an anti-bot challenge and no solver is configured", target), nil)
	}
	c.logger.Info("challenge detected, replaying through solver",
		logging.String("url", target))
	return c.solver.Get(ctx, target)
}

func (c *Client) resolve(ref string) string {
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	if !strings.HasPrefix(ref, "/") {
		ref = "/" + ref
	}
	return c.baseURL + ref
}

// seriesPath normalizes a series reference into a site path. Bare IDs become
// /series/<id>; anything already shaped like a path or URL passes through.
func seriesPath(ref string) string {
	if strings.Contains(ref, "/") {
		return ref
	}
	return "/series/" + ref
}

// challengeMarkers are body fragments that identify an anti-bot interstitial
// regardless of status code.
var challengeMarkers = []string{
	"cf-challenge",
	"Just a moment...",
	"_cf_chl_opt",
}

func isChallenge(status int, body string) bool {
	if status != 403 && status != 503 {
		return false
	}
	for _, marker := range challengeMarkers {
		if strings.Contains(body, marker) {
			return true
		}
	}
	return false
}
