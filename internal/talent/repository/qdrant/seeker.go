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
	"internship-assistant/pkg/voyage"
)

// QuerySeekers embeds text and returns the closest seeker profiles.
// An index that was never built yields no results rather than an error.
func (r *implRepository) QuerySeekers(ctx context.Context, text string, limit int) ([]model.Seeker, error) {
	if limit <= 0 {
		return nil, repository.ErrInvalidLimit
	}
	if strings.TrimSpace(text) == "" {
		return nil, repository.ErrEmptyTerm
	}

	vector, err := r.embedQuery(ctx, text)
	if err != nil {
		return nil, err
	}

	resp, err := r.client.SearchPoints(ctx, r.opt.SeekerCollection, pkgQdrant.SearchRequest{
		Vector:      vector,
		Limit:       limit,
		WithPayload: true,
	})
	if errors.Is(err, pkgQdrant.ErrCollectionNotFound) {
		r.l.Warnf(ctx, "qdrant repository: collection %s not found, run the indexer", r.opt.SeekerCollection)
		return nil, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "qdrant repository: failed to search seekers: %v", err)
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToSearch, err)
	}

	seekers := make([]model.Seeker, 0, len(resp.Result))
	for _, scored := range resp.Result {
		s, ok := seekerFromPayload(scored.Payload)
		if !ok {
			r.l.Errorf(ctx, "qdrant repository: seeker_id missing in payload for point %v", scored.ID)
			continue
		}
		seekers = append(seekers, s)
	}

	r.l.Infof(ctx, "qdrant repository: found %d seekers for query %q", len(seekers), text)
	return seekers, nil
}

// IndexSeekers embeds and upserts seeker profiles.
func (r *implRepository) IndexSeekers(ctx context.Context, seekers []model.Seeker, opt repository.IndexOptions) (int, error) {
	if err := r.ensureCollection(ctx, r.opt.SeekerCollection, opt.Recreate); err != nil {
		return 0, err
	}
	if len(seekers) == 0 {
		return 0, nil
	}

	texts := lo.Map(seekers, func(s model.Seeker, _ int) string { return seekerDocument(s) })
	points := func(vectors [][]float32) []pkgQdrant.Point {
		return lo.Map(seekers, func(s model.Seeker, i int) pkgQdrant.Point {
			return pkgQdrant.Point{
				ID:      pointID("seeker", s.ID),
				Vector:  vectors[i],
				Payload: seekerPayload(s),
			}
		})
	}
	return r.upsert(ctx, r.opt.SeekerCollection, texts, points)
}

func seekerDocument(s model.Seeker) string {
	skills := strings.Join(s.Skills, ", ")
	if skills == "" {
		skills = "No skills listed"
	}
	return fmt.Sprintf("Name: %s\nSkills: %s\nDescription: %s", orNA(s.Name), skills, orNA(s.Bio))
}

func seekerPayload(s model.Seeker) map[string]interface{} {
	return map[string]interface{}{
		"seeker_id":   s.ID,
		"seeker_name": s.Name,
		"email":       s.Email,
		"skills":      strings.Join(s.Skills, ", "),
		"description": s.Bio,
	}
}

func seekerFromPayload(p map[string]interface{}) (model.Seeker, bool) {
	id, ok := payloadInt64(p, "seeker_id")
	if !ok {
		return model.Seeker{}, false
	}
	return model.Seeker{
		ID:     id,
		Name:   payloadString(p, "seeker_name"),
		Email:  payloadString(p, "email"),
		Skills: splitSkills(payloadString(p, "skills")),
		Bio:    payloadString(p, "description"),
	}, true
}

func splitSkills(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func (r *implRepository) embedQuery(ctx context.Context, text string) ([]float32, error) {
	vectors, err := r.embedder.Embed(ctx, []string{text}, voyage.InputTypeQuery)
	if err != nil || len(vectors) == 0 {
		r.l.Errorf(ctx, "qdrant repository: failed to generate query embedding: %v", err)
		return nil, fmt.Errorf("%w: query embedding: %v", repository.ErrFailedToSearch, err)
	}
	return vectors[0], nil
}
