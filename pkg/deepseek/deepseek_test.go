package deepseek

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNew_RequiresAPIKey(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Fatal("expected error for empty API key")
	}
	c, err := New(Config{APIKey: "k"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if c.Model() != DefaultModel {
		t.Errorf("Model() = %q, want %q", c.Model(), DefaultModel)
	}
}

func TestGenerateContent(t *testing.T) {
	t.Run("success sends model, budget and bearer token", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/chat/completions" {
				t.Errorf("path = %s, want /chat/completions", r.URL.Path)
			}
			if got := r.Header.Get("Authorization"); got != "Bearer sk-test" {
				t.Errorf("Authorization = %q", got)
			}
			var req Request
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if req.Model != "deepseek-chat" {
				t.Errorf("model = %q", req.Model)
			}
			if req.Temperature == nil || *req.Temperature != 0.2 {
				t.Errorf("temperature = %v, want 0.2", req.Temperature)
			}
			if req.MaxTokens != 30 {
				t.Errorf("max_tokens = %d, want 30", req.MaxTokens)
			}
			_ = json.NewEncoder(w).Encode(Response{
				Model:   "deepseek-chat",
				Choices: []Choice{{Message: Message{Role: "assistant", Content: "top_technologies"}}},
				Usage:   Usage{PromptTokens: 10, CompletionTokens: 2, TotalTokens: 12},
			})
		}))
		defer server.Close()

		c, _ := New(Config{APIKey: "sk-test", BaseURL: server.URL + "/"})
		temp := 0.2
		resp, err := c.GenerateContent(context.Background(), &Request{
			Messages:    []Message{{Role: "user", Content: "Query: top tech?"}},
			Temperature: &temp,
			MaxTokens:   30,
		})
		if err != nil {
			t.Fatalf("GenerateContent() error = %v", err)
		}
		if resp.Choices[0].Message.Content != "top_technologies" {
			t.Errorf("content = %q", resp.Choices[0].Message.Content)
		}
	})

	t.Run("rate limited", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":{"message":"slow down"}}`))
		}))
		defer server.Close()

		c, _ := New(Config{APIKey: "k", BaseURL: server.URL})
		_, err := c.GenerateContent(context.Background(), &Request{})
		if !errors.Is(err, ErrRateLimited) {
			t.Fatalf("error = %v, want ErrRateLimited", err)
		}
	})

	t.Run("api error keeps message", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":{"message":"invalid key"}}`))
		}))
		defer server.Close()

		c, _ := New(Config{APIKey: "k", BaseURL: server.URL})
		_, err := c.GenerateContent(context.Background(), &Request{})
		if err == nil || err.Error() != "API error 401: invalid key" {
			t.Fatalf("error = %v", err)
		}
	})
}
