package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"internship-assistant/internal/model"
	"internship-assistant/internal/talent/repository"
	"internship-assistant/pkg/log"
)

type countingRepo struct {
	repository.DataAccess
	calls map[string]int
	err   error
}

func (c *countingRepo) TopTechnologies(ctx context.Context, limit int) ([]model.TechnologyStat, error) {
	c.calls["top"]++
	if c.err != nil {
		return nil, c.err
	}
	return []model.TechnologyStat{{Technology: "React", PostCount: limit}}, nil
}

func (c *countingRepo) CompanyCountByTechnology(ctx context.Context, tech string) (int, error) {
	c.calls["companies"]++
	return 4, nil
}

func (c *countingRepo) PostsByTechnology(ctx context.Context, tech string, limit int) ([]model.Post, error) {
	c.calls["posts"]++
	return []model.Post{{ID: 1}}, nil
}

func TestCache(t *testing.T) {
	ctx := context.Background()

	t.Run("aggregates are memoized per argument", func(t *testing.T) {
		next := &countingRepo{calls: map[string]int{}}
		r := New(next, 16, time.Minute, log.NewNop())

		for i := 0; i < 3; i++ {
			got, err := r.TopTechnologies(ctx, 10)
			require.NoError(t, err)
			assert.Equal(t, 10, got[0].PostCount)
		}
		_, _ = r.TopTechnologies(ctx, 5)
		assert.Equal(t, 2, next.calls["top"])

		_, _ = r.CompanyCountByTechnology(ctx, "React")
		_, _ = r.CompanyCountByTechnology(ctx, "react")
		assert.Equal(t, 1, next.calls["companies"])
	})

	t.Run("errors are not cached", func(t *testing.T) {
		next := &countingRepo{calls: map[string]int{}, err: errors.New("db down")}
		r := New(next, 16, time.Minute, log.NewNop())

		_, err := r.TopTechnologies(ctx, 10)
		require.Error(t, err)
		_, err = r.TopTechnologies(ctx, 10)
		require.Error(t, err)
		assert.Equal(t, 2, next.calls["top"])
	})

	t.Run("row lookups pass through", func(t *testing.T) {
		next := &countingRepo{calls: map[string]int{}}
		r := New(next, 0, 0, log.NewNop())

		_, _ = r.PostsByTechnology(ctx, "Go", 5)
		_, _ = r.PostsByTechnology(ctx, "Go", 5)
		assert.Equal(t, 2, next.calls["posts"])
	})

	t.Run("entries expire", func(t *testing.T) {
		next := &countingRepo{calls: map[string]int{}}
		r := New(next, 16, 20*time.Millisecond, log.NewNop())

		_, _ = r.TopTechnologies(ctx, 10)
		time.Sleep(60 * time.Millisecond)
		_, _ = r.TopTechnologies(ctx, 10)
		assert.Equal(t, 2, next.calls["top"])
	})
}
