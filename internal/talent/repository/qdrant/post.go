package qdrant

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"internship-assistant/internal/model"
	"internship-assistant/internal/talent/repository"
	pkgQdrant "internship-assistant/pkg/qdrant"
)

// QueryPosts returns the posts closest to opt.Query, optionally restricted to one technology.
func (r *implRepository) QueryPosts(ctx context.Context, opt repository.QueryPostsOptions) ([]model.Post, error) {
	if opt.Limit <= 0 {
		return nil, repository.ErrInvalidLimit
	}
	if strings.TrimSpace(opt.Query) == "" {
		return nil, repository.ErrEmptyTerm
	}

	vector, err := r.embedQuery(ctx, opt.Query)
	if err != nil {
		return nil, err
	}

	req := pkgQdrant.SearchRequest{
		Vector:      vector,
		Limit:       opt.Limit,
		WithPayload: true,
	}
	if opt.Technology != "" {
		req.Filter = &pkgQdrant.Filter{Must: []pkgQdrant.Condition{
			{Key: "technology", Match: pkgQdrant.Match{Value: opt.Technology}},
		}}
	}

	resp, err := r.client.SearchPoints(ctx, r.opt.PostCollection, req)
	if errors.Is(err, pkgQdrant.ErrCollectionNotFound) {
		r.l.Warnf(ctx, "qdrant repository: collection %s not found, run the indexer", r.opt.PostCollection)
		return nil, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "qdrant repository: failed to search posts: %v", err)
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToSearch, err)
	}

	posts := make([]model.Post, 0, len(resp.Result))
	for _, scored := range resp.Result {
		id, ok := payloadInt64(scored.Payload, "post_id")
		if !ok {
			r.l.Errorf(ctx, "qdrant repository: post_id missing in payload for point %v", scored.ID)
			continue
		}
		posts = append(posts, model.Post{
			ID:              id,
			Position:        payloadString(scored.Payload, "position"),
			Technology:      payloadString(scored.Payload, "technology"),
			CompanyName:     payloadString(scored.Payload, "company_name"),
			CompanyLocation: payloadString(scored.Payload, "company_location"),
		})
	}
	return posts, nil
}

// IndexPosts embeds and upserts internship posts.
func (r *implRepository) IndexPosts(ctx context.Context, posts []model.Post, opt repository.IndexOptions) (int, error) {
	if err := r.ensureCollection(ctx, r.opt.PostCollection, opt.Recreate); err != nil {
		return 0, err
	}
	if len(posts) == 0 {
		return 0, nil
	}

	texts := lo.Map(posts, func(p model.Post, _ int) string { return postDocument(p) })
	points := func(vectors [][]float32) []pkgQdrant.Point {
		return lo.Map(posts, func(p model.Post, i int) pkgQdrant.Point {
			return pkgQdrant.Point{
				ID:     pointID("post", p.ID),
				Vector: vectors[i],
				Payload: map[string]interface{}{
					"post_id":          p.ID,
					"position":         p.Position,
					"technology":       p.Technology,
					"company_name":     p.CompanyName,
					"company_location": p.CompanyLocation,
				},
			}
		})
	}
	return r.upsert(ctx, r.opt.PostCollection, texts, points)
}

func postDocument(p model.Post) string {
	return fmt.Sprintf("Position: %s\nTechnology: %s\nCompany: %s\nLocation: %s\nDescription: %s\nCompany Info: %s",
		orNA(p.Position), orNA(p.Technology), orNA(p.CompanyName),
		orNA(p.CompanyLocation), orNA(p.Description), orNA(p.CompanyDescription))
}
