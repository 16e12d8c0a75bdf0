package usecase

import (
	"context"
	"fmt"

	"internship-assistant/internal/talent"
	"internship-assistant/internal/talent/repository"
)

// Reindex copies seekers and/or posts from the relational store into the semantic index.
func (uc *implUseCase) Reindex(ctx context.Context, input talent.ReindexInput) (talent.ReindexOutput, error) {
	var out talent.ReindexOutput
	opt := repository.IndexOptions{Recreate: input.Recreate}

	switch input.Target {
	case talent.TargetSeekers, talent.TargetPosts, talent.TargetAll:
	default:
		return out, talent.ErrInvalidTarget
	}

	if input.Target == talent.TargetPosts || input.Target == talent.TargetAll {
		posts, err := uc.data.ListPosts(ctx)
		if err != nil {
			return out, fmt.Errorf("load posts: %w", err)
		}
		uc.l.Infof(ctx, "talent.usecase.Reindex: loaded %d posts", len(posts))
		if out.Posts, err = uc.index.IndexPosts(ctx, posts, opt); err != nil {
			return out, fmt.Errorf("index posts: %w", err)
		}
	}

	if input.Target == talent.TargetSeekers || input.Target == talent.TargetAll {
		seekers, err := uc.data.ListSeekers(ctx)
		if err != nil {
			return out, fmt.Errorf("load seekers: %w", err)
		}
		uc.l.Infof(ctx, "talent.usecase.Reindex: loaded %d seekers", len(seekers))
		if out.Seekers, err = uc.index.IndexSeekers(ctx, seekers, opt); err != nil {
			return out, fmt.Errorf("index seekers: %w", err)
		}
	}

	uc.l.Info(ctx, "talent.usecase.Reindex: done", "target", input.Target, "posts", out.Posts, "seekers", out.Seekers)
	return out, nil
}
