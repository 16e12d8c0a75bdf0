package repository

import (
	"context"

	"internship-assistant/internal/model"
)

// DataAccess is the read side of the relational store.
type DataAccess interface {
	// TopTechnologies ranks technologies by post count.
	TopTechnologies(ctx context.Context, limit int) ([]model.TechnologyStat, error)
	// PostsByTechnology returns newest posts whose technology contains tech.
	PostsByTechnology(ctx context.Context, tech string, limit int) ([]model.Post, error)
	// CompanyCountByTechnology counts distinct companies posting for tech.
	CompanyCountByTechnology(ctx context.Context, tech string) (int, error)
	// SeekersBySkill matches the skill pivot and the free-text skills field, deduped by id.
	SeekersBySkill(ctx context.Context, skill string, limit int) ([]model.Seeker, error)
	// CountAvailableSeekersWithSkill counts seekers with skill and no accepted application.
	CountAvailableSeekersWithSkill(ctx context.Context, skill string) (int, error)
	SkillDistribution(ctx context.Context, limit int) ([]model.SkillStat, error)
	DemandSupplyGap(ctx context.Context, limit int) ([]model.GapEntry, error)
	PartnershipCandidates(ctx context.Context, limit int) ([]model.PartnershipCandidate, error)

	Snapshot(ctx context.Context) (model.Snapshot, error)
	ListPosts(ctx context.Context) ([]model.Post, error)
	ListSeekers(ctx context.Context) ([]model.Seeker, error)
	Ping(ctx context.Context) error
}

// SemanticSearch ranks seekers by similarity to free text, best first.
type SemanticSearch interface {
	QuerySeekers(ctx context.Context, text string, limit int) ([]model.Seeker, error)
}

// Index maintains the vector collections behind SemanticSearch.
type Index interface {
	SemanticSearch

	QueryPosts(ctx context.Context, opt QueryPostsOptions) ([]model.Post, error)
	IndexSeekers(ctx context.Context, seekers []model.Seeker, opt IndexOptions) (int, error)
	IndexPosts(ctx context.Context, posts []model.Post, opt IndexOptions) (int, error)
	Counts(ctx context.Context) (seekers int, posts int, err error)
}
