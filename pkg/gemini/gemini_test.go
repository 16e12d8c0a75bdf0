package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestNew_Validate(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Fatal("expected error for missing API key")
	}
	g, err := New(Config{APIKey: "k"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if g.Model() != DefaultModel {
		t.Errorf("Model() = %q, want %q", g.Model(), DefaultModel)
	}
}

func TestGenerateContent(t *testing.T) {
	t.Run("success sends key in header and budget", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !strings.HasSuffix(r.URL.Path, "/models/gemini-test:generateContent") {
				t.Errorf("path = %s", r.URL.Path)
			}
			if r.URL.RawQuery != "" {
				t.Errorf("query = %q, want empty", r.URL.RawQuery)
			}
			if got := r.Header.Get(headerAPIKey); got != "secret" {
				t.Errorf("api key header = %q", got)
			}
			var req GenerateRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if req.SystemInstruction == nil || req.SystemInstruction.Parts[0].Text != "be brief" {
				t.Errorf("system instruction = %+v", req.SystemInstruction)
			}
			if req.GenerationConfig == nil || req.GenerationConfig.MaxOutputTokens != 250 {
				t.Errorf("generation config = %+v", req.GenerationConfig)
			}
			_ = json.NewEncoder(w).Encode(GenerateResponse{
				Candidates:    []Candidate{{Content: Content{Role: "model", Parts: []Part{{Text: "hello"}}}}},
				UsageMetadata: &UsageMetadata{PromptTokenCount: 3, CandidatesTokenCount: 1, TotalTokenCount: 4},
			})
		}))
		defer server.Close()

		temp := 0.6
		g, _ := New(Config{APIKey: "secret", Model: "gemini-test", APIURL: server.URL + "/"})
		resp, err := g.GenerateContent(context.Background(), GenerateRequest{
			SystemInstruction: &Content{Parts: []Part{{Text: "be brief"}}},
			Contents:          []Content{{Role: "user", Parts: []Part{{Text: "hi"}}}},
			GenerationConfig:  &GenerationConfig{Temperature: &temp, MaxOutputTokens: 250},
		})
		if err != nil {
			t.Fatalf("GenerateContent() error = %v", err)
		}
		if got := resp.Candidates[0].Content.Parts[0].Text; got != "hello" {
			t.Errorf("text = %q, want hello", got)
		}
	})

	t.Run("rate limited", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":{"code":429,"message":"quota exhausted","status":"RESOURCE_EXHAUSTED"}}`))
		}))
		defer server.Close()

		g, _ := New(Config{APIKey: "k", APIURL: server.URL})
		_, err := g.GenerateContent(context.Background(), GenerateRequest{})
		if !errors.Is(err, ErrRateLimited) {
			t.Fatalf("err = %v, want ErrRateLimited", err)
		}
		if !strings.Contains(err.Error(), "quota exhausted") {
			t.Errorf("err = %v, want API message", err)
		}
	})

	t.Run("api error does not echo the key", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "bad request", http.StatusBadRequest)
		}))
		defer server.Close()

		g, _ := New(Config{APIKey: "top-secret", APIURL: server.URL})
		_, err := g.GenerateContent(context.Background(), GenerateRequest{})
		if err == nil {
			t.Fatal("expected error")
		}
		if strings.Contains(err.Error(), "top-secret") {
			t.Errorf("error leaks key: %v", err)
		}
	})

	t.Run("blocked prompt", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"candidates":[],"promptFeedback":{"blockReason":"SAFETY"}}`))
		}))
		defer server.Close()

		g, _ := New(Config{APIKey: "k", APIURL: server.URL})
		_, err := g.GenerateContent(context.Background(), GenerateRequest{})
		if !errors.Is(err, ErrPromptBlocked) {
			t.Fatalf("err = %v, want ErrPromptBlocked", err)
		}
	})
}
