package qdrant

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"internship-assistant/internal/talent/repository"
	pkgQdrant "internship-assistant/pkg/qdrant"
	"internship-assistant/pkg/voyage"
)

// pointNamespace keeps point ids stable across reindex runs.
var pointNamespace = uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

// pointID maps a database id to the UUID Qdrant requires.
func pointID(kind string, id int64) string {
	return uuid.NewSHA1(pointNamespace, []byte(kind+"_"+strconv.FormatInt(id, 10))).String()
}

// Counts returns the number of indexed seekers and posts. Missing collections count as zero.
func (r *implRepository) Counts(ctx context.Context) (int, int, error) {
	seekers, err := r.count(ctx, r.opt.SeekerCollection)
	if err != nil {
		return 0, 0, err
	}
	posts, err := r.count(ctx, r.opt.PostCollection)
	if err != nil {
		return 0, 0, err
	}
	return seekers, posts, nil
}

func (r *implRepository) count(ctx context.Context, collection string) (int, error) {
	n, err := r.client.CountPoints(ctx, collection, pkgQdrant.CountRequest{Exact: true})
	if errors.Is(err, pkgQdrant.ErrCollectionNotFound) {
		return 0, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "qdrant repository: failed to count %s: %v", collection, err)
		return 0, fmt.Errorf("%w: %v", repository.ErrFailedToCount, err)
	}
	return n, nil
}

func (r *implRepository) ensureCollection(ctx context.Context, name string, recreate bool) error {
	if recreate {
		if err := r.client.DeleteCollection(ctx, name); err != nil {
			return fmt.Errorf("%w: drop %s: %v", repository.ErrFailedToIndex, name, err)
		}
	}

	exists, err := r.client.CollectionExists(ctx, name)
	if err != nil {
		return fmt.Errorf("%w: inspect %s: %v", repository.ErrFailedToIndex, name, err)
	}
	if exists {
		return nil
	}

	err = r.client.CreateCollection(ctx, pkgQdrant.CreateCollectionRequest{
		Name:    name,
		Vectors: pkgQdrant.VectorConfig{Size: r.opt.VectorSize, Distance: distanceCosine},
	})
	if err != nil {
		return fmt.Errorf("%w: create %s: %v", repository.ErrFailedToIndex, name, err)
	}
	r.l.Infof(ctx, "qdrant repository: created collection %s (size=%d)", name, r.opt.VectorSize)
	return nil
}

// upsert embeds texts and writes the points built from their vectors in batches.
func (r *implRepository) upsert(ctx context.Context, collection string, texts []string, build func([][]float32) []pkgQdrant.Point) (int, error) {
	vectors, err := r.embedder.Embed(ctx, texts, voyage.InputTypeDocument)
	if err != nil {
		r.l.Errorf(ctx, "qdrant repository: failed to embed %d documents: %v", len(texts), err)
		return 0, fmt.Errorf("%w: embed: %v", repository.ErrFailedToIndex, err)
	}
	if len(vectors) != len(texts) {
		return 0, fmt.Errorf("%w: got %d vectors for %d documents", repository.ErrFailedToIndex, len(vectors), len(texts))
	}

	points := build(vectors)
	written := 0
	for start := 0; start < len(points); start += upsertBatchSize {
		end := min(start+upsertBatchSize, len(points))
		if err := r.client.UpsertPoints(ctx, collection, pkgQdrant.UpsertPointsRequest{Points: points[start:end]}); err != nil {
			r.l.Errorf(ctx, "qdrant repository: failed to upsert into %s: %v", collection, err)
			return written, fmt.Errorf("%w: upsert: %v", repository.ErrFailedToIndex, err)
		}
		written = end
	}

	r.l.Infof(ctx, "qdrant repository: indexed %d points into %s", written, collection)
	return written, nil
}

func payloadString(p map[string]interface{}, key string) string {
	s, _ := p[key].(string)
	return s
}

// payloadInt64 reads a numeric payload field. JSON decoding yields float64.
func payloadInt64(p map[string]interface{}, key string) (int64, bool) {
	switch v := p[key].(type) {
	case float64:
		return int64(v), true
	case int64:
		return v, true
	case int:
		return int64(v), true
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		return n, err == nil
	}
	return 0, false
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
