package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestService(t *testing.T, handler http.HandlerFunc) *GeminiService {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	svc := NewGeminiService("test-key")
	svc.BaseURL = srv.URL
	return svc
}

func TestSummarize(t *testing.T) {
	var got generateRequest

	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"  The team agreed to ship.  "}]}}]}`))
	})

	summary, err := svc.Summarize(context.Background(), "Alice: ship it. Bob: agreed.", "one sentence summary")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary != "The team agreed to ship." {
		t.Fatalf("expected trimmed summary, got %q", summary)
	}

	if got.GenerationConfig == nil {
		t.Fatal("expected generationConfig in request")
	}
	if got.GenerationConfig.MaxOutputTokens != 2000 {
		t.Fatalf("expected 2000 max output tokens, got %d", got.GenerationConfig.MaxOutputTokens)
	}
	if got.GenerationConfig.Temperature != 0.3 {
		t.Fatalf("expected temperature 0.3, got %v", got.GenerationConfig.Temperature)
	}

	prompt := got.Contents[0].Parts[0].Text
	if !strings.Contains(prompt, "Alice: ship it. Bob: agreed.") {
		t.Fatalf("prompt missing transcript: %q", prompt)
	}
	if !strings.Contains(prompt, "one sentence summary") {
		t.Fatalf("prompt missing instruction: %q", prompt)
	}
}

func TestSummarizeAPIError(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"quota exceeded"}}`))
	})

	if _, err := svc.Summarize(context.Background(), "transcript", "instruction"); err == nil {
		t.Fatal("expected error for non-200 response")
	}
}

func TestSummarizeNoCandidates(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	})

	if _, err := svc.Summarize(context.Background(), "transcript", "instruction"); err == nil {
		t.Fatal("expected error when no candidates are returned")
	}
}

func TestSummarizeEmptyText(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"   "}]}}]}`))
	})

	if _, err := svc.Summarize(context.Background(), "transcript", "instruction"); err == nil {
		t.Fatal("expected error for whitespace-only summary")
	}
}
