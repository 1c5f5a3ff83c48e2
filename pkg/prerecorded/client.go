// Package prerecorded wraps the batch transcription endpoint: plain
// request/response calls with no session state.
package prerecorded

import (
	"context"
	"io"

	"github.com/harunnryd/speechline-go/pkg/errorsx"
	"github.com/harunnryd/speechline-go/pkg/rest"
)

const listenPath = "listen"

// URLSource points the platform at remotely hosted audio.
type URLSource struct {
	URL string `json:"url"`
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

// TranscribeURL transcribes remotely hosted audio synchronously.
func (c *Client) TranscribeURL(ctx context.Context, source URLSource, opts Options) (*Response, error) {
	if err := validateSync(source, opts); err != nil {
		return nil, err
	}
	var out Response
	if err := c.rest.PostJSON(ctx, listenPath, opts.queryValues(), source, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TranscribeURLCallback submits remotely hosted audio for asynchronous
// transcription; results are delivered to the callback URL.
func (c *Client) TranscribeURLCallback(ctx context.Context, source URLSource, callback string, opts Options) (*AsyncResponse, error) {
	if source.URL == "" {
		return nil, errorsx.New(errorsx.ReasonConfigInvalid, "source url is required")
	}
	if callback == "" {
		return nil, errorsx.New(errorsx.ReasonConfigInvalid, "callback url is required")
	}
	opts.Callback = callback
	var out AsyncResponse
	if err := c.rest.PostJSON(ctx, listenPath, opts.queryValues(), source, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TranscribeFile transcribes audio read from r synchronously. The bytes are
// treated as opaque; contentType may be empty.
func (c *Client) TranscribeFile(ctx context.Context, r io.Reader, contentType string, opts Options) (*Response, error) {
	if opts.Callback != "" {
		return nil, errorsx.New(errorsx.ReasonConfigInvalid,
			"callback cannot be set on a synchronous transcription; use TranscribeFileCallback")
	}
	var out Response
	if err := c.rest.PostRaw(ctx, listenPath, opts.queryValues(), r, contentType, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TranscribeFileCallback submits audio read from r for asynchronous
// transcription.
func (c *Client) TranscribeFileCallback(ctx context.Context, r io.Reader, contentType, callback string, opts Options) (*AsyncResponse, error) {
	if callback == "" {
		return nil, errorsx.New(errorsx.ReasonConfigInvalid, "callback url is required")
	}
	opts.Callback = callback
	var out AsyncResponse
	if err := c.rest.PostRaw(ctx, listenPath, opts.queryValues(), r, contentType, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func validateSync(source URLSource, opts Options) error {
	if source.URL == "" {
		return errorsx.New(errorsx.ReasonConfigInvalid, "source url is required")
	}
	if opts.Callback != "" {
		return errorsx.New(errorsx.ReasonConfigInvalid,
			"callback cannot be set on a synchronous transcription; use TranscribeURLCallback")
	}
	return nil
}
