// Package analyze wraps the text intelligence endpoint: summaries, topics,
// intents, and sentiment over submitted text, with no session state.
package analyze

import (
	"context"

	"github.com/harunnryd/speechline-go/pkg/errorsx"
	"github.com/harunnryd/speechline-go/pkg/rest"
)

const readPath = "read"

// URLSource points the platform at remotely hosted text.
type URLSource struct {
	URL string `json:"url"`
}

// TextSource carries the text to analyze inline.
type TextSource struct {
	Text string `json:"text"`
}

type Client struct {
	rest *rest.Client
}

func New(cfg rest.Config) (*Client, error) {
	rc, err := rest.New(cfg)
	if err != nil {
		return nil, err
	}
	return &Client{rest: rc}, nil
}

// AnalyzeURL analyzes remotely hosted text synchronously.
func (c *Client) AnalyzeURL(ctx context.Context, source URLSource, opts Options) (*Response, error) {
	if source.URL == "" {
		return nil, errorsx.New(errorsx.ReasonConfigInvalid, "source url is required")
	}
	if opts.Callback != "" {
		return nil, errorsx.New(errorsx.ReasonConfigInvalid,
			"callback cannot be set on a synchronous analysis; use AnalyzeURLCallback")
	}
	var out Response
	if err := c.rest.PostJSON(ctx, readPath, opts.queryValues(), source, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AnalyzeText analyzes inline text synchronously.
func (c *Client) AnalyzeText(ctx context.Context, source TextSource, opts Options) (*Response, error) {
	if source.Text == "" {
		return nil, errorsx.New(errorsx.ReasonConfigInvalid, "source text is required")
	}
	if opts.Callback != "" {
		return nil, errorsx.New(errorsx.ReasonConfigInvalid,
			"callback cannot be set on a synchronous analysis; use AnalyzeTextCallback")
	}
	var out Response
	if err := c.rest.PostJSON(ctx, readPath, opts.queryValues(), source, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AnalyzeURLCallback submits remotely hosted text for asynchronous analysis;
// results are delivered to the callback URL.
func (c *Client) AnalyzeURLCallback(ctx context.Context, source URLSource, callback string, opts Options) (*AsyncResponse, error) {
	if source.URL == "" {
		return nil, errorsx.New(errorsx.ReasonConfigInvalid, "source url is required")
	}
	if callback == "" {
		return nil, errorsx.New(errorsx.ReasonConfigInvalid, "callback url is required")
	}
	opts.Callback = callback
	var out AsyncResponse
	if err := c.rest.PostJSON(ctx, readPath, opts.queryValues(), source, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AnalyzeTextCallback submits inline text for asynchronous analysis.
func (c *Client) AnalyzeTextCallback(ctx context.Context, source TextSource, callback string, opts Options) (*AsyncResponse, error) {
	if source.Text == "" {
		return nil, errorsx.New(errorsx.ReasonConfigInvalid, "source text is required")
	}
	if callback == "" {
		return nil, errorsx.New(errorsx.ReasonConfigInvalid, "callback url is required")
	}
	opts.Callback = callback
	var out AsyncResponse
	if err := c.rest.PostJSON(ctx, readPath, opts.queryValues(), source, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
