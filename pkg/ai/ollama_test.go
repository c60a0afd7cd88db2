package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestOllamaSummarize(t *testing.T) {
	var payload map[string]interface{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Write([]byte(`{"response":"The team agreed to ship."}`))
	}))
	defer srv.Close()

	svc := NewOllamaService(srv.URL, "llama3")
	summary, err := svc.Summarize(context.Background(), "Alice: ship it. Bob: agreed.", "one sentence summary")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary != "The team agreed to ship." {
		t.Fatalf("unexpected summary %q", summary)
	}

	prompt, _ := payload["prompt"].(string)
	if !strings.Contains(prompt, "one sentence summary") {
		t.Fatalf("prompt missing instruction: %q", prompt)
	}
	if stream, _ := payload["stream"].(bool); stream {
		t.Fatal("expected stream=false")
	}
}

func TestOllamaSummarizeEmptyResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"response":"  "}`))
	}))
	defer srv.Close()

	svc := NewOllamaService(srv.URL, "llama3")
	if _, err := svc.Summarize(context.Background(), "transcript", "instruction"); err == nil {
		t.Fatal("expected error for empty response")
	}
}
