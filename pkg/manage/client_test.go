package manage

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/harunnryd/speechline-go/pkg/rest"
)

func mustParseQuery(t *testing.T, raw string) url.Values {
	t.Helper()
	q, err := url.ParseQuery(raw)
	if err != nil {
		t.Fatalf("parse query %q: %v", raw, err)
	}
	return q
}

type recordedRequest struct {
	Method string
	Path   string
	Query  string
	Body   []byte
}

func newTestClient(t *testing.T, status int, response string, rec *recordedRequest) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.Method = r.Method
		rec.Path = r.URL.Path
		rec.Query = r.URL.RawQuery
		body := make([]byte, r.ContentLength)
		if r.ContentLength > 0 {
			_, _ = r.Body.Read(body)
		}
		rec.Body = body
		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)
	c, err := New(rest.Config{APIKey: "key", BaseURL: srv.URL + "/v1"})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	return c
}

func TestListProjects(t *testing.T) {
	var rec recordedRequest
	c := newTestClient(t, http.StatusOK,
		`{"projects": [{"project_id": "p1", "name": "demo"}]}`, &rec)

	resp, err := c.ListProjects(context.Background())
	if err != nil {
		t.Fatalf("list projects: %v", err)
	}
	if rec.Method != http.MethodGet || rec.Path != "/v1/projects" {
		t.Fatalf("unexpected request %s %s", rec.Method, rec.Path)
	}
	if len(resp.Projects) != 1 || resp.Projects[0].ProjectID != "p1" {
		t.Fatalf("unexpected response %+v", resp)
	}
}

func TestUpdateProject(t *testing.T) {
	var rec recordedRequest
	c := newTestClient(t, http.StatusOK, `{"message": "updated"}`, &rec)

	msg, err := c.UpdateProject(context.Background(), "p1", ProjectUpdateOptions{Name: "renamed"})
	if err != nil {
		t.Fatalf("update project: %v", err)
	}
	if rec.Method != http.MethodPatch || rec.Path != "/v1/projects/p1" {
		t.Fatalf("unexpected request %s %s", rec.Method, rec.Path)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body, &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["name"] != "renamed" {
		t.Fatalf("unexpected body %v", body)
	}
	if msg.Message != "updated" {
		t.Fatalf("unexpected message %+v", msg)
	}
}

func TestCreateKey(t *testing.T) {
	var rec recordedRequest
	c := newTestClient(t, http.StatusCreated,
		`{"api_key_id": "k1", "key": "sk-abc", "scopes": ["member"]}`, &rec)

	key, err := c.CreateKey(context.Background(), "p1", KeyOptions{
		Comment: "ci key",
		Scopes:  []string{"member"},
	})
	if err != nil {
		t.Fatalf("create key: %v", err)
	}
	if rec.Method != http.MethodPost || rec.Path != "/v1/projects/p1/keys" {
		t.Fatalf("unexpected request %s %s", rec.Method, rec.Path)
	}
	if key.APIKeyID != "k1" || key.APIKey != "sk-abc" {
		t.Fatalf("unexpected key %+v", key)
	}
}

func TestDeleteKey(t *testing.T) {
	var rec recordedRequest
	c := newTestClient(t, http.StatusOK, `{"message": "deleted"}`, &rec)

	if _, err := c.DeleteKey(context.Background(), "p1", "k1"); err != nil {
		t.Fatalf("delete key: %v", err)
	}
	if rec.Method != http.MethodDelete || rec.Path != "/v1/projects/p1/keys/k1" {
		t.Fatalf("unexpected request %s %s", rec.Method, rec.Path)
	}
}

func TestUpdateMemberScope(t *testing.T) {
	var rec recordedRequest
	c := newTestClient(t, http.StatusOK, `{"message": "ok"}`, &rec)

	if _, err := c.UpdateMemberScope(context.Background(), "p1", "m1", ScopeOptions{Scope: "admin"}); err != nil {
		t.Fatalf("update scope: %v", err)
	}
	if rec.Method != http.MethodPut || rec.Path != "/v1/projects/p1/members/m1/scopes" {
		t.Fatalf("unexpected request %s %s", rec.Method, rec.Path)
	}
}

func TestDeleteInviteEscapesEmail(t *testing.T) {
	var rec recordedRequest
	c := newTestClient(t, http.StatusOK, `{"message": "ok"}`, &rec)

	if _, err := c.DeleteInvite(context.Background(), "p1", "dev@example.com"); err != nil {
		t.Fatalf("delete invite: %v", err)
	}
	if rec.Path != "/v1/projects/p1/invites/dev@example.com" {
		t.Fatalf("unexpected path %s", rec.Path)
	}
}

func TestListUsageRequestsQuery(t *testing.T) {
	var rec recordedRequest
	c := newTestClient(t, http.StatusOK, `{"page": 0, "limit": 10, "requests": []}`, &rec)

	_, err := c.ListUsageRequests(context.Background(), "p1", UsageRequestOptions{
		Start: "2026-08-01",
		End:   "2026-08-28",
		Limit: 10,
	})
	if err != nil {
		t.Fatalf("list requests: %v", err)
	}
	if rec.Path != "/v1/projects/p1/requests" {
		t.Fatalf("unexpected path %s", rec.Path)
	}
	q := mustParseQuery(t, rec.Query)
	if q.Get("start") != "2026-08-01" || q.Get("end") != "2026-08-28" || q.Get("limit") != "10" {
		t.Fatalf("unexpected query %q", rec.Query)
	}
}

func TestGetBalance(t *testing.T) {
	var rec recordedRequest
	c := newTestClient(t, http.StatusOK,
		`{"balance_id": "b1", "amount": 42.5, "units": "usd"}`, &rec)

	bal, err := c.GetBalance(context.Background(), "p1", "b1")
	if err != nil {
		t.Fatalf("get balance: %v", err)
	}
	if rec.Path != "/v1/projects/p1/balances/b1" {
		t.Fatalf("unexpected path %s", rec.Path)
	}
	if bal.Amount != 42.5 {
		t.Fatalf("unexpected balance %+v", bal)
	}
}
