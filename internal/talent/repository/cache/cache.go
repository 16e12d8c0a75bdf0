// Package cache memoizes the aggregate DataAccess queries for a short TTL.
// Row-level lookups and index sources pass through untouched.
package cache

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"internship-assistant/internal/model"
	"internship-assistant/internal/talent/repository"
	"internship-assistant/pkg/log"
)

const (
	DefaultSize = 256
	DefaultTTL  = 2 * time.Minute
)

type implRepository struct {
	repository.DataAccess
	entries *expirable.LRU[string, any]
	l       log.Logger
}

var _ repository.DataAccess = (*implRepository)(nil)

// New wraps next. Non-positive size or ttl fall back to the defaults.
// Cached slices are shared between callers and must not be mutated.
func New(next repository.DataAccess, size int, ttl time.Duration, l log.Logger) repository.DataAccess {
	if size <= 0 {
		size = DefaultSize
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &implRepository{
		DataAccess: next,
		entries:    expirable.NewLRU[string, any](size, nil, ttl),
		l:          l,
	}
}

func load[T any](ctx context.Context, r *implRepository, key string, fetch func() (T, error)) (T, error) {
	if v, ok := r.entries.Get(key); ok {
		if typed, ok := v.(T); ok {
			r.l.Debugf(ctx, "talent/repository/cache: hit %s", key)
			return typed, nil
		}
	}

	v, err := fetch()
	if err != nil {
		return v, err
	}
	r.entries.Add(key, v)
	return v, nil
}

func key(method string, args ...any) string {
	return fmt.Sprintf("%s:%v", method, args)
}

func (r *implRepository) TopTechnologies(ctx context.Context, limit int) ([]model.TechnologyStat, error) {
	return load(ctx, r, key("top", limit), func() ([]model.TechnologyStat, error) {
		return r.DataAccess.TopTechnologies(ctx, limit)
	})
}

func (r *implRepository) CompanyCountByTechnology(ctx context.Context, tech string) (int, error) {
	return load(ctx, r, key("companies", strings.ToLower(tech)), func() (int, error) {
		return r.DataAccess.CompanyCountByTechnology(ctx, tech)
	})
}

func (r *implRepository) CountAvailableSeekersWithSkill(ctx context.Context, skill string) (int, error) {
	return load(ctx, r, key("available", strings.ToLower(skill)), func() (int, error) {
		return r.DataAccess.CountAvailableSeekersWithSkill(ctx, skill)
	})
}

func (r *implRepository) SkillDistribution(ctx context.Context, limit int) ([]model.SkillStat, error) {
	return load(ctx, r, key("skills", limit), func() ([]model.SkillStat, error) {
		return r.DataAccess.SkillDistribution(ctx, limit)
	})
}

func (r *implRepository) DemandSupplyGap(ctx context.Context, limit int) ([]model.GapEntry, error) {
	return load(ctx, r, key("gap", limit), func() ([]model.GapEntry, error) {
		return r.DataAccess.DemandSupplyGap(ctx, limit)
	})
}

func (r *implRepository) PartnershipCandidates(ctx context.Context, limit int) ([]model.PartnershipCandidate, error) {
	return load(ctx, r, key("partners", limit), func() ([]model.PartnershipCandidate, error) {
		return r.DataAccess.PartnershipCandidates(ctx, limit)
	})
}

func (r *implRepository) Snapshot(ctx context.Context) (model.Snapshot, error) {
	return load(ctx, r, key("snapshot"), func() (model.Snapshot, error) {
		return r.DataAccess.Snapshot(ctx)
	})
}
