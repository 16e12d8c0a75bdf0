package talent

import (
	"context"

	"internship-assistant/internal/model"
)

// UseCase serves platform statistics and keeps the semantic index in sync.
type UseCase interface {
	TopTechnologies(ctx context.Context, limit int) ([]model.TechnologyStat, error)
	SkillDistribution(ctx context.Context, limit int) ([]model.SkillStat, error)
	Snapshot(ctx context.Context) (model.Snapshot, error)
	IndexStats(ctx context.Context) (IndexStats, error)

	// Reindex rebuilds the semantic index for target from the relational store.
	Reindex(ctx context.Context, input ReindexInput) (ReindexOutput, error)
}
