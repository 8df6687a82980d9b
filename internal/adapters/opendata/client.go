package opendata

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"restaurant-finder-api/internal/config"
	"restaurant-finder-api/internal/models"
)

// maxBodySize bounds how much of an upstream body is read
const maxBodySize = 64 << 20

// Client issues single, bounded-timeout GET requests to the open-data API.
// It never retries.
type Client struct {
	httpClient     *http.Client
	apiKey         string
	userAgent      string
	defaultTimeout time.Duration
}

// NewClient creates a new upstream client. A nil httpClient uses a client
// without its own timeout; every call is bounded by its context instead.
func NewClient(cfg config.UpstreamConfig, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		httpClient:     httpClient,
		apiKey:         cfg.APIKey,
		userAgent:      cfg.UserAgent,
		defaultTimeout: cfg.Timeout,
	}
}

// Fetch requests one page from src and returns the raw body. A timeout of
// zero uses the configured upstream timeout.
func (c *Client) Fetch(ctx context.Context, src *Source, page models.PageRequest, timeout time.Duration) ([]byte, error) {
	if timeout <= 0 {
		timeout = c.defaultTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src.URL(c.apiKey, page), nil)
	if err != nil {
		return nil, NewUpstreamError("fetch", src.Name, err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	logger := logrus.WithFields(logrus.Fields{
		"source": src.Name,
		"url":    src.Redacted(c.apiKey, page),
	})
	logger.Debug("Calling upstream API")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.transportError(src, err, timeout)
	}
	defer resp.Body.Close()

	logger.WithFields(logrus.Fields{
		"status_code": resp.StatusCode,
		"latency_ms":  time.Since(start).Milliseconds(),
	}).Info("Upstream API responded")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<16))
		return nil, newStatusError(src.Name, resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, c.transportError(src, err, timeout)
	}

	return body, nil
}

// FetchPage requests one page from src and parses it
func (c *Client) FetchPage(ctx context.Context, src *Source, page models.PageRequest, timeout time.Duration) (*Response, error) {
	body, err := c.Fetch(ctx, src, page, timeout)
	if err != nil {
		return nil, err
	}

	parsed, err := Parse(src, body)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"source":      src.Name,
			"body_length": len(body),
			"error":       err,
		}).Warn("Upstream response could not be parsed")
		return nil, err
	}

	return parsed, nil
}

func (c *Client) transportError(src *Source, err error, timeout time.Duration) error {
	logrus.WithFields(logrus.Fields{
		"source":  src.Name,
		"timeout": timeout.String(),
		"error":   err.Error(),
	}).Warn("Upstream transport failed")

	if errors.Is(err, context.DeadlineExceeded) || isNetTimeout(err) {
		return newTimeoutError(src.Name, timeout)
	}
	return NewUpstreamError("fetch", src.Name, fmt.Errorf("%w: %v", ErrNetwork, err))
}

func isNetTimeout(err error) bool {
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
