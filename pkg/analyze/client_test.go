package analyze

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/harunnryd/speechline-go/pkg/errorsx"
	"github.com/harunnryd/speechline-go/pkg/rest"
)

const analysisResponse = `{
	"metadata": {"request_id": "req-1", "language": "en"},
	"results": {
		"summary": {"text": "a short summary"},
		"sentiments": {
			"segments": [
				{"text": "great service", "start_word": 0, "end_word": 1,
				 "sentiment": "positive", "sentiment_score": 0.9}
			],
			"average": {"sentiment": "positive", "sentiment_score": 0.9}
		}
	}
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c, err := New(rest.Config{APIKey: "key", BaseURL: srv.URL + "/v1"})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	return c
}

func TestAnalyzeText(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/read" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("summarize") != "true" || q.Get("sentiment") != "true" {
			t.Errorf("unexpected query %q", r.URL.RawQuery)
		}
		var src TextSource
		if err := json.NewDecoder(r.Body).Decode(&src); err != nil {
			t.Errorf("decode body: %v", err)
		}
		if src.Text != "great service overall" {
			t.Errorf("unexpected source %q", src.Text)
		}
		_, _ = w.Write([]byte(analysisResponse))
	})

	resp, err := c.AnalyzeText(context.Background(),
		TextSource{Text: "great service overall"},
		Options{Summarize: true, Sentiment: true})
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if resp.Metadata.RequestID != "req-1" {
		t.Fatalf("unexpected metadata %+v", resp.Metadata)
	}
	if resp.Results.Summary == nil || resp.Results.Summary.Text != "a short summary" {
		t.Fatalf("unexpected summary %+v", resp.Results.Summary)
	}
	if resp.Results.Sentiments == nil || resp.Results.Sentiments.Average.Sentiment != "positive" {
		t.Fatalf("unexpected sentiments %+v", resp.Results.Sentiments)
	}
}

func TestAnalyzeURL(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var src URLSource
		if err := json.NewDecoder(r.Body).Decode(&src); err != nil {
			t.Errorf("decode body: %v", err)
		}
		if src.URL != "https://example.com/transcript.txt" {
			t.Errorf("unexpected source %q", src.URL)
		}
		_, _ = w.Write([]byte(analysisResponse))
	})

	if _, err := c.AnalyzeURL(context.Background(),
		URLSource{URL: "https://example.com/transcript.txt"},
		Options{Topics: true}); err != nil {
		t.Fatalf("analyze: %v", err)
	}
}

func TestAnalyzeTextRequiresSource(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("request must not reach the server")
	})
	_, err := c.AnalyzeText(context.Background(), TextSource{}, Options{})
	if !errorsx.HasReason(err, errorsx.ReasonConfigInvalid) {
		t.Fatalf("expected invalid config error, got %v", err)
	}
}

func TestAnalyzeTextRejectsCallback(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("request must not reach the server")
	})
	_, err := c.AnalyzeText(context.Background(),
		TextSource{Text: "hello"},
		Options{Callback: "https://example.com/hook"})
	if !errorsx.HasReason(err, errorsx.ReasonConfigInvalid) {
		t.Fatalf("expected invalid config error, got %v", err)
	}
}

func TestAnalyzeURLCallback(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("callback"); got != "https://example.com/hook" {
			t.Errorf("expected callback in query, got %q", got)
		}
		_, _ = w.Write([]byte(`{"request_id": "req-async"}`))
	})

	resp, err := c.AnalyzeURLCallback(context.Background(),
		URLSource{URL: "https://example.com/t.txt"},
		"https://example.com/hook", Options{Intents: true})
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if resp.RequestID != "req-async" {
		t.Fatalf("unexpected response %+v", resp)
	}
}
