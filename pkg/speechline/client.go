// Package speechline is the entry point for the Speechline platform SDK. A
// Client carries the credential and endpoint once and hands out the product
// clients: live streaming, prerecorded transcription, text intelligence,
// project management, and self-hosted distribution.
package speechline

import (
	"log/slog"

	"github.com/harunnryd/speechline-go/pkg/analyze"
	"github.com/harunnryd/speechline-go/pkg/live"
	"github.com/harunnryd/speechline-go/pkg/logging"
	"github.com/harunnryd/speechline-go/pkg/manage"
	"github.com/harunnryd/speechline-go/pkg/prerecorded"
	"github.com/harunnryd/speechline-go/pkg/rest"
	"github.com/harunnryd/speechline-go/pkg/selfhosted"
)

const Version = "1.2.0"

type Client struct {
	opts   ClientOptions
	logger *slog.Logger
}

// New builds the top-level client. Zero-value fields in opts fall back to the
// production endpoint defaults.
func New(opts ClientOptions) (*Client, error) {
	opts = opts.withDefaults()
	if err := opts.validate(); err != nil {
		return nil, err
	}
	return &Client{
		opts:   opts,
		logger: logging.NewLogger(opts.LogLevel, opts.LogFormat),
	}, nil
}

// NewFromEnv builds a client configured entirely from SPEECHLINE_* variables.
func NewFromEnv() (*Client, error) {
	return New(OptionsFromEnv())
}

// Live opens a streaming transcription client. The session is not dialed
// until Connect is called on the returned client.
func (c *Client) Live(opts live.Options) (*live.Client, error) {
	return live.New(live.Config{
		URL:     c.opts.listenURL(),
		APIKey:  c.opts.APIKey,
		Headers: c.opts.Headers,
		Logger:  c.logger,
	}, opts)
}

func (c *Client) Prerecorded() (*prerecorded.Client, error) {
	return prerecorded.New(c.restConfig())
}

func (c *Client) Analyze() (*analyze.Client, error) {
	return analyze.New(c.restConfig())
}

func (c *Client) Manage() (*manage.Client, error) {
	return manage.New(c.restConfig())
}

func (c *Client) SelfHosted() (*selfhosted.Client, error) {
	return selfhosted.New(c.restConfig())
}

// Options returns the resolved client options.
func (c *Client) Options() ClientOptions {
	return c.opts
}

func (c *Client) restConfig() rest.Config {
	return rest.Config{
		APIKey:     c.opts.APIKey,
		BaseURL:    c.opts.restBaseURL(),
		Headers:    c.opts.Headers,
		Logger:     c.logger,
		MaxRetries: 2,
	}
}
