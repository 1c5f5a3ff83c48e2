package selfhosted

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/harunnryd/speechline-go/pkg/rest"
)

func TestCreateCredentials(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody CredentialsOptions
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = w.Write([]byte(`{
			"distribution_credentials": {
				"distribution_credentials_id": "dc1",
				"provider": "quay",
				"secret": "pull-secret"
			}
		}`))
	}))
	t.Cleanup(srv.Close)

	c, err := New(rest.Config{APIKey: "key", BaseURL: srv.URL + "/v1"})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	creds, err := c.CreateCredentials(context.Background(), "p1", CredentialsOptions{
		Comment:  "edge node",
		Provider: "quay",
	})
	if err != nil {
		t.Fatalf("create credentials: %v", err)
	}
	if gotMethod != http.MethodPost {
		t.Fatalf("expected POST, got %s", gotMethod)
	}
	if gotPath != "/v1/projects/p1/onprem/distribution/credentials" {
		t.Fatalf("unexpected path %s", gotPath)
	}
	if gotBody.Provider != "quay" {
		t.Fatalf("unexpected body %+v", gotBody)
	}
	if creds.DistributionCredentials.Secret != "pull-secret" {
		t.Fatalf("expected creation secret, got %+v", creds)
	}
}

func TestGetCredentialsPath(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"distribution_credentials": {"distribution_credentials_id": "dc1"}}`))
	}))
	t.Cleanup(srv.Close)

	c, err := New(rest.Config{APIKey: "key", BaseURL: srv.URL + "/v1"})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if _, err := c.GetCredentials(context.Background(), "p1", "dc1"); err != nil {
		t.Fatalf("get credentials: %v", err)
	}
	if gotPath != "/v1/projects/p1/onprem/distribution/credentials/dc1" {
		t.Fatalf("unexpected path %s", gotPath)
	}
}
