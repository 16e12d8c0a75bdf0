package voyage_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"internship-assistant/pkg/voyage"
)

func TestVoyageClient(t *testing.T) {
	var requests int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
		if r.Header.Get("Authorization") != "Bearer test-voyage-key" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"detail":"invalid key"}`))
			return
		}

		var req voyage.EmbedRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if len(req.Input) > 0 && req.Input[0] == "cause_500" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		// Answer in reverse order to prove the client reorders by index.
		var data []string
		for i := len(req.Input) - 1; i >= 0; i-- {
			data = append(data, fmt.Sprintf(`{"embedding":[%d, 0.5],"index":%d}`, i, i))
		}
		_, _ = fmt.Fprintf(w, `{"data":[%s],"model":%q}`, strings.Join(data, ","), req.Model)
	}))
	defer ts.Close()

	client, _ := voyage.New("test-voyage-key")
	client.WithBaseURL(ts.URL).WithModel("custom-model")

	t.Run("Success Flow", func(t *testing.T) {
		emb, err := client.Embed(context.Background(), []string{"a", "b", "c"}, voyage.InputTypeQuery)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(emb) != 3 {
			t.Fatalf("expected 3 embeddings, got %d", len(emb))
		}
		for i := range emb {
			if emb[i][0] != float32(i) {
				t.Errorf("embedding %d out of order: %v", i, emb[i])
			}
		}
	})

	t.Run("Batches large inputs", func(t *testing.T) {
		atomic.StoreInt32(&requests, 0)
		texts := make([]string, voyage.MaxBatchSize+5)
		for i := range texts {
			texts[i] = fmt.Sprintf("doc %d", i)
		}
		emb, err := client.Embed(context.Background(), texts, voyage.InputTypeDocument)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(emb) != len(texts) {
			t.Errorf("expected %d embeddings, got %d", len(texts), len(emb))
		}
		if n := atomic.LoadInt32(&requests); n != 2 {
			t.Errorf("expected 2 requests, got %d", n)
		}
	})

	t.Run("Empty input", func(t *testing.T) {
		if _, err := client.Embed(context.Background(), nil, voyage.InputTypeQuery); err == nil {
			t.Fatal("expected error for empty input")
		}
	})

	t.Run("Server Error Flow", func(t *testing.T) {
		if _, err := client.Embed(context.Background(), []string{"cause_500"}, voyage.InputTypeQuery); err == nil {
			t.Fatalf("expected error from 500 response")
		}
	})

	t.Run("Unauthorized Error Flow", func(t *testing.T) {
		badClient, _ := voyage.New("bad-key")
		badClient.WithBaseURL(ts.URL)
		_, err := badClient.Embed(context.Background(), []string{"Hello world"}, voyage.InputTypeQuery)
		if err == nil || !strings.Contains(err.Error(), "401") || !strings.Contains(err.Error(), "invalid key") {
			t.Fatalf("expected 401 error, got %v", err)
		}
	})
}
