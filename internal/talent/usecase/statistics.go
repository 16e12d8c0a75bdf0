package usecase

import (
	"context"

	"internship-assistant/internal/model"
	"internship-assistant/internal/talent"
)

const maxLimit = 100

func (uc *implUseCase) TopTechnologies(ctx context.Context, limit int) ([]model.TechnologyStat, error) {
	if limit <= 0 || limit > maxLimit {
		return nil, talent.ErrInvalidLimit
	}
	return uc.data.TopTechnologies(ctx, limit)
}

func (uc *implUseCase) SkillDistribution(ctx context.Context, limit int) ([]model.SkillStat, error) {
	if limit <= 0 || limit > maxLimit {
		return nil, talent.ErrInvalidLimit
	}
	return uc.data.SkillDistribution(ctx, limit)
}

func (uc *implUseCase) Snapshot(ctx context.Context) (model.Snapshot, error) {
	return uc.data.Snapshot(ctx)
}

func (uc *implUseCase) IndexStats(ctx context.Context) (talent.IndexStats, error) {
	seekers, posts, err := uc.index.Counts(ctx)
	if err != nil {
		return talent.IndexStats{}, err
	}
	return talent.IndexStats{Seekers: seekers, Posts: posts}, nil
}
