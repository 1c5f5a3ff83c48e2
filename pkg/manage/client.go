// Package manage wraps the account/project management endpoints: one verb-
// per-call REST glue with no session state, sharing the credential/config
// object with the streaming core.
package manage

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

// Projects.

func (c *Client) ListProjects(ctx context.Context) (*ProjectsResponse, error) {
	var out ProjectsResponse
	if err := c.rest.Get(ctx, "projects", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetProject(ctx context.Context, projectID string) (*Project, error) {
	var out Project
	if err := c.rest.Get(ctx, "projects/"+url.PathEscape(projectID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateProject(ctx context.Context, projectID string, opts ProjectUpdateOptions) (*Message, error) {
	var out Message
	if err := c.rest.PatchJSON(ctx, "projects/"+url.PathEscape(projectID), nil, opts, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteProject(ctx context.Context, projectID string) (*Message, error) {
	var out Message
	if err := c.rest.Delete(ctx, "projects/"+url.PathEscape(projectID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// API keys.

func (c *Client) ListKeys(ctx context.Context, projectID string) (*KeysResponse, error) {
	var out KeysResponse
	if err := c.rest.Get(ctx, projectPath(projectID, "keys"), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetKey(ctx context.Context, projectID, keyID string) (*KeyDetail, error) {
	var out KeyDetail
	if err := c.rest.Get(ctx, projectPath(projectID, "keys/"+url.PathEscape(keyID)), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateKey(ctx context.Context, projectID string, opts KeyOptions) (*Key, error) {
	var out Key
	if err := c.rest.PostJSON(ctx, projectPath(projectID, "keys"), nil, opts, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteKey(ctx context.Context, projectID, keyID string) (*Message, error) {
	var out Message
	if err := c.rest.Delete(ctx, projectPath(projectID, "keys/"+url.PathEscape(keyID)), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Members.

func (c *Client) ListMembers(ctx context.Context, projectID string) (*MembersResponse, error) {
	var out MembersResponse
	if err := c.rest.Get(ctx, projectPath(projectID, "members"), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) RemoveMember(ctx context.Context, projectID, memberID string) (*Message, error) {
	var out Message
	if err := c.rest.Delete(ctx, projectPath(projectID, "members/"+url.PathEscape(memberID)), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetMemberScopes(ctx context.Context, projectID, memberID string) (*ScopesResponse, error) {
	var out ScopesResponse
	if err := c.rest.Get(ctx, projectPath(projectID, "members/"+url.PathEscape(memberID)+"/scopes"), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateMemberScope(ctx context.Context, projectID, memberID string, opts ScopeOptions) (*Message, error) {
	var out Message
	if err := c.rest.PutJSON(ctx, projectPath(projectID, "members/"+url.PathEscape(memberID)+"/scopes"), nil, opts, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Invites.

func (c *Client) ListInvites(ctx context.Context, projectID string) (*InvitesResponse, error) {
	var out InvitesResponse
	if err := c.rest.Get(ctx, projectPath(projectID, "invites"), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SendInvite(ctx context.Context, projectID string, opts InviteOptions) (*Message, error) {
	var out Message
	if err := c.rest.PostJSON(ctx, projectPath(projectID, "invites"), nil, opts, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteInvite(ctx context.Context, projectID, email string) (*Message, error) {
	var out Message
	if err := c.rest.Delete(ctx, projectPath(projectID, "invites/"+url.PathEscape(email)), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) LeaveProject(ctx context.Context, projectID string) (*Message, error) {
	var out Message
	if err := c.rest.Delete(ctx, projectPath(projectID, "leave"), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Usage.

func (c *Client) ListUsageRequests(ctx context.Context, projectID string, opts UsageRequestOptions) (*UsageRequestsResponse, error) {
	var out UsageRequestsResponse
	if err := c.rest.Get(ctx, projectPath(projectID, "requests"), opts.queryValues(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetUsageRequest(ctx context.Context, projectID, requestID string) (*UsageRequest, error) {
	var out UsageRequest
	if err := c.rest.Get(ctx, projectPath(projectID, "requests/"+url.PathEscape(requestID)), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetUsageSummary(ctx context.Context, projectID string, opts UsageSummaryOptions) (*UsageSummaryResponse, error) {
	var out UsageSummaryResponse
	if err := c.rest.Get(ctx, projectPath(projectID, "usage"), opts.queryValues(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetUsageFields(ctx context.Context, projectID string, opts UsageFieldsOptions) (*UsageFieldsResponse, error) {
	var out UsageFieldsResponse
	if err := c.rest.Get(ctx, projectPath(projectID, "usage/fields"), opts.queryValues(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Balances.

func (c *Client) ListBalances(ctx context.Context, projectID string) (*BalancesResponse, error) {
	var out BalancesResponse
	if err := c.rest.Get(ctx, projectPath(projectID, "balances"), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetBalance(ctx context.Context, projectID, balanceID string) (*Balance, error) {
	var out Balance
	if err := c.rest.Get(ctx, projectPath(projectID, "balances/"+url.PathEscape(balanceID)), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func projectPath(projectID, suffix string) string {
	return "projects/" + url.PathEscape(projectID) + "/" + suffix
}
