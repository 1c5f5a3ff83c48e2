// Package selfhosted manages distribution credentials for on-prem
// deployments.
package selfhosted

import (
	"context"
	"net/url"

	"github.com/harunnryd/speechline-go/pkg/rest"
)

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

func (c *Client) ListCredentials(ctx context.Context, projectID string) (*CredentialsResponse, error) {
	var out CredentialsResponse
	if err := c.rest.Get(ctx, credentialsPath(projectID, ""), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetCredentials(ctx context.Context, projectID, credentialsID string) (*Credentials, error) {
	var out Credentials
	if err := c.rest.Get(ctx, credentialsPath(projectID, credentialsID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateCredentials(ctx context.Context, projectID string, opts CredentialsOptions) (*Credentials, error) {
	var out Credentials
	if err := c.rest.PostJSON(ctx, credentialsPath(projectID, ""), nil, opts, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteCredentials(ctx context.Context, projectID, credentialsID string) (*Message, error) {
	var out Message
	if err := c.rest.Delete(ctx, credentialsPath(projectID, credentialsID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func credentialsPath(projectID, credentialsID string) string {
	p := "projects/" + url.PathEscape(projectID) + "/onprem/distribution/credentials"
	if credentialsID != "" {
		p += "/" + url.PathEscape(credentialsID)
	}
	return p
}
