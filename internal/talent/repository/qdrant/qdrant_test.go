package qdrant

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"internship-assistant/internal/model"
	"internship-assistant/internal/talent/repository"
	"internship-assistant/pkg/log"
	pkgQdrant "internship-assistant/pkg/qdrant"
	"internship-assistant/pkg/voyage"
)

func newVoyageStub(t *testing.T) *voyage.Client {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req voyage.EmbedRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if len(req.Input) > 0 && strings.Contains(req.Input[0], "error_embed") {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		resp := voyage.EmbedResponse{}
		for i := range req.Input {
			resp.Data = append(resp.Data, voyage.EmbeddingData{Embedding: []float32{0.1, 0.2, 0.3}, Index: i})
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(ts.Close)

	client, err := voyage.New("test-key")
	require.NoError(t, err)
	return client.WithBaseURL(ts.URL)
}

type recordedCall struct {
	Method string
	Path   string
	Body   []byte
}

type qdrantStub struct {
	mu     sync.Mutex
	calls  []recordedCall
	server *httptest.Server
}

func newQdrantStub(t *testing.T, handler func(w http.ResponseWriter, r *http.Request, body []byte)) *qdrantStub {
	t.Helper()
	s := &qdrantStub{}
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		s.mu.Lock()
		s.calls = append(s.calls, recordedCall{Method: r.Method, Path: r.URL.Path, Body: body})
		s.mu.Unlock()
		handler(w, r, body)
	}))
	t.Cleanup(s.server.Close)
	return s
}

func (s *qdrantStub) recorded() []recordedCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]recordedCall(nil), s.calls...)
}

var testOptions = Options{SeekerCollection: "seekers", PostCollection: "posts", VectorSize: 3}

func TestQuerySeekers(t *testing.T) {
	stub := newQdrantStub(t, func(w http.ResponseWriter, r *http.Request, body []byte) {
		switch r.URL.Path {
		case "/collections/seekers/points/search":
			_, _ = w.Write([]byte(`{"result":[
				{"id":"a","score":0.9,"payload":{"seeker_id":7,"seeker_name":"Alice","email":"a@x.test","skills":"React, Vue"}},
				{"id":"b","score":0.5,"payload":{"seeker_name":"Ghost"}}
			]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
	repo := New(pkgQdrant.NewClient(stub.server.URL), newVoyageStub(t), testOptions, log.NewNop())

	t.Run("maps payload and skips malformed points", func(t *testing.T) {
		got, err := repo.QuerySeekers(context.Background(), "react developers", 10)
		require.NoError(t, err)
		assert.Equal(t, []model.Seeker{{ID: 7, Name: "Alice", Email: "a@x.test", Skills: []string{"React", "Vue"}}}, got)
	})

	t.Run("embedding failure", func(t *testing.T) {
		_, err := repo.QuerySeekers(context.Background(), "error_embed", 10)
		assert.ErrorIs(t, err, repository.ErrFailedToSearch)
	})

	t.Run("invalid arguments", func(t *testing.T) {
		_, err := repo.QuerySeekers(context.Background(), "x", 0)
		assert.ErrorIs(t, err, repository.ErrInvalidLimit)
		_, err = repo.QuerySeekers(context.Background(), "  ", 5)
		assert.ErrorIs(t, err, repository.ErrEmptyTerm)
	})
}

func TestQuerySeekers_MissingCollection(t *testing.T) {
	stub := newQdrantStub(t, func(w http.ResponseWriter, r *http.Request, body []byte) {
		w.WriteHeader(http.StatusNotFound)
	})
	repo := New(pkgQdrant.NewClient(stub.server.URL), newVoyageStub(t), testOptions, log.NewNop())

	got, err := repo.QuerySeekers(context.Background(), "anyone", 5)
	require.NoError(t, err)
	assert.Empty(t, got)

	seekers, posts, err := repo.Counts(context.Background())
	require.NoError(t, err)
	assert.Zero(t, seekers)
	assert.Zero(t, posts)
}

func TestIndexSeekers(t *testing.T) {
	stub := newQdrantStub(t, func(w http.ResponseWriter, r *http.Request, body []byte) {
		switch {
		case r.Method == http.MethodDelete:
			w.WriteHeader(http.StatusOK)
		case r.Method == http.MethodGet:
			w.WriteHeader(http.StatusNotFound)
		default:
			_, _ = w.Write([]byte(`{"result":true}`))
		}
	})
	repo := New(pkgQdrant.NewClient(stub.server.URL), newVoyageStub(t), testOptions, log.NewNop())

	n, err := repo.IndexSeekers(context.Background(), []model.Seeker{
		{ID: 1, Name: "Alice", Skills: []string{"React"}},
		{ID: 2, Name: "Bob"},
	}, repository.IndexOptions{Recreate: true})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	calls := stub.recorded()
	require.Len(t, calls, 4)
	assert.Equal(t, http.MethodDelete, calls[0].Method)
	assert.Equal(t, http.MethodGet, calls[1].Method)
	assert.Equal(t, "/collections/seekers", calls[2].Path)
	assert.Contains(t, string(calls[2].Body), `"size":3`)

	var upsert pkgQdrant.UpsertPointsRequest
	require.NoError(t, json.Unmarshal(calls[3].Body, &upsert))
	require.Len(t, upsert.Points, 2)
	assert.Equal(t, pointID("seeker", 1), upsert.Points[0].ID)
	assert.Equal(t, "React", upsert.Points[0].Payload["skills"])
}

func TestQueryPosts_TechnologyFilter(t *testing.T) {
	stub := newQdrantStub(t, func(w http.ResponseWriter, r *http.Request, body []byte) {
		_, _ = w.Write([]byte(`{"result":[{"id":"p","score":0.8,"payload":{"post_id":3,"position":"Intern","technology":"React","company_name":"Acme"}}]}`))
	})
	repo := New(pkgQdrant.NewClient(stub.server.URL), newVoyageStub(t), testOptions, log.NewNop())

	got, err := repo.QueryPosts(context.Background(), repository.QueryPostsOptions{Query: "frontend", Limit: 5, Technology: "React"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Acme", got[0].CompanyName)

	var req pkgQdrant.SearchRequest
	require.NoError(t, json.Unmarshal(stub.recorded()[0].Body, &req))
	require.NotNil(t, req.Filter)
	assert.Equal(t, "technology", req.Filter.Must[0].Key)
	assert.Equal(t, "React", req.Filter.Must[0].Match.Value)
}

func TestPointID_Deterministic(t *testing.T) {
	assert.Equal(t, pointID("post", 5), pointID("post", 5))
	assert.NotEqual(t, pointID("post", 5), pointID("seeker", 5))
}
