// Package rest is the shared HTTP plumbing beneath the request/response API
// wrappers. It handles auth headers, query encoding, JSON decode, and the
// platform's structured error responses.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/harunnryd/speechline-go/pkg/errorsx"
	"github.com/harunnryd/speechline-go/pkg/logging"
)

const (
	requestTimeout = 30 * time.Second
	connectTimeout = 10 * time.Second
)

// Config identifies the API endpoint and credential for REST calls.
type Config struct {
	APIKey     string
	BaseURL    string // e.g. "https://api.speechline.com/v1"
	Headers    http.Header
	HTTPClient *http.Client
	Logger     *slog.Logger

	// MaxRetries repeats bodyless requests on transport failures, throttling,
	// and 5xx responses. Zero disables retries. RetryBackoff doubles per
	// attempt, defaulting to 200ms.
	MaxRetries   int
	RetryBackoff time.Duration
}

type Client struct {
	cfg    Config
	http   *http.Client
	logger *slog.Logger
}

func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errorsx.New(errorsx.ReasonConfigMissingKey, "api key is required")
	}
	if cfg.BaseURL == "" {
		return nil, errorsx.New(errorsx.ReasonConfigInvalid, "base url is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: requestTimeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{Timeout: connectTimeout}).DialContext,
			},
		}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		cfg:    cfg,
		http:   httpClient,
		logger: logging.NewComponentLogger(logger, "rest"),
	}, nil
}

// Get issues a GET and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, "", out)
}

// PostJSON issues a POST with a JSON body and decodes the response into out.
func (c *Client) PostJSON(ctx context.Context, path string, query url.Values, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return errorsx.Wrap(fmt.Errorf("encode request body: %w", err), errorsx.ReasonRESTRequest)
	}
	return c.do(ctx, http.MethodPost, path, query, bytes.NewReader(body), "application/json", out)
}

// PostRaw issues a POST streaming an opaque body (e.g. audio bytes).
func (c *Client) PostRaw(ctx context.Context, path string, query url.Values, body io.Reader, contentType string, out any) error {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return c.do(ctx, http.MethodPost, path, query, body, contentType, out)
}

// PatchJSON issues a PATCH with a JSON body.
func (c *Client) PatchJSON(ctx context.Context, path string, query url.Values, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return errorsx.Wrap(fmt.Errorf("encode request body: %w", err), errorsx.ReasonRESTRequest)
	}
	return c.do(ctx, http.MethodPatch, path, query, bytes.NewReader(body), "application/json", out)
}

// PutJSON issues a PUT with a JSON body.
func (c *Client) PutJSON(ctx context.Context, path string, query url.Values, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return errorsx.Wrap(fmt.Errorf("encode request body: %w", err), errorsx.ReasonRESTRequest)
	}
	return c.do(ctx, http.MethodPut, path, query, bytes.NewReader(body), "application/json", out)
}

// Delete issues a DELETE and decodes the JSON response into out.
func (c *Client) Delete(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodDelete, path, query, nil, "", out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string, out any) error {
	// Requests with a body are never retried; the reader is consumed.
	attempts := 1
	if body == nil && c.cfg.MaxRetries > 0 {
		attempts = c.cfg.MaxRetries + 1
	}

	var err error
	for i := 0; i < attempts; i++ {
		if i > 0 {
			if werr := backoffWait(ctx, c.cfg.RetryBackoff, i); werr != nil {
				return werr
			}
			c.logger.Debug("rest_retry",
				slog.String("method", method),
				slog.String("path", path),
				slog.Int("attempt", i+1))
		}
		err = c.doOnce(ctx, method, path, query, body, contentType, out)
		if err == nil || !retryable(err) {
			return err
		}
	}
	return err
}

func (c *Client) doOnce(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string, out any) error {
	u := strings.TrimRight(c.cfg.BaseURL, "/") + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return errorsx.Wrap(fmt.Errorf("build request: %w", err), errorsx.ReasonRESTRequest)
	}
	for k, vals := range c.cfg.Headers {
		req.Header[k] = vals
	}
	req.Header.Set("Authorization", "Token "+c.cfg.APIKey)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("rest_request", slog.String("method", method), slog.String("path", path))
	resp, err := c.http.Do(req)
	if err != nil {
		return errorsx.Wrap(fmt.Errorf("%s %s: %w", method, path, err), errorsx.ReasonRESTRequest)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errorsx.Wrap(fmt.Errorf("read response: %w", err), errorsx.ReasonRESTResponse)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn("rest_api_error",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", resp.StatusCode))
		return decodeError(resp.StatusCode, raw)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return errorsx.Wrap(fmt.Errorf("decode response: %w", err), errorsx.ReasonRESTResponse)
	}
	return nil
}
