package sqldb

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/samber/lo"

	"internship-assistant/internal/model"
	repo "internship-assistant/internal/talent/repository"
)

const querySeekersBySkillPivot = `
	SELECT s.id, u.name, COALESCE(u.email, ''), COALESCE(s.description, ''), GROUP_CONCAT(DISTINCT sk.name)
	FROM seekers s
	JOIN users u ON s.user_id = u.id
	JOIN seeker_skill ss ON s.id = ss.seeker_id
	JOIN skills sk ON ss.skill_id = sk.id
	WHERE sk.name LIKE ?
	GROUP BY s.id, u.name, u.email, s.description
	ORDER BY s.id
	LIMIT ?`

const querySeekersBySkillText = `
	SELECT s.id, u.name, COALESCE(u.email, ''), COALESCE(s.description, ''), s.skills
	FROM seekers s
	JOIN users u ON s.user_id = u.id
	WHERE s.skills LIKE ?
	ORDER BY s.id
	LIMIT ?`

// SeekersBySkill matches the skills pivot first, then the free-text skills
// field, and merges both lists by seeker id.
func (r *implRepository) SeekersBySkill(ctx context.Context, skill string, limit int) ([]model.Seeker, error) {
	ctx, cancel := r.bound(ctx)
	defer cancel()

	if skill == "" {
		return nil, repo.ErrEmptyTerm
	}
	if limit <= 0 {
		return nil, repo.ErrInvalidLimit
	}

	pattern := likePattern(skill)
	pivot, err := r.querySeekers(ctx, querySeekersBySkillPivot, pattern, limit)
	if err != nil {
		r.l.Errorf(ctx, "%s pivot: %v", r.dsn("SeekersBySkill"), err)
		return nil, fmt.Errorf("%w: %v", repo.ErrFailedToList, err)
	}
	text, err := r.querySeekers(ctx, querySeekersBySkillText, pattern, limit)
	if err != nil {
		r.l.Errorf(ctx, "%s text: %v", r.dsn("SeekersBySkill"), err)
		return nil, fmt.Errorf("%w: %v", repo.ErrFailedToList, err)
	}

	merged := lo.UniqBy(append(pivot, text...), func(s model.Seeker) int64 { return s.ID })
	if len(merged) > limit {
		merged = merged[:limit]
	}
	return merged, nil
}

func (r *implRepository) querySeekers(ctx context.Context, query string, args ...any) ([]model.Seeker, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var seekers []model.Seeker
	for rows.Next() {
		var (
			s      model.Seeker
			skills sql.NullString
		)
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Bio, &skills); err != nil {
			return nil, err
		}
		s.Skills = splitList(nullString(skills))
		seekers = append(seekers, s)
	}
	return seekers, rows.Err()
}

const queryCountAvailable = `
	SELECT COUNT(DISTINCT s.id)
	FROM seekers s
	JOIN users u ON s.user_id = u.id
	LEFT JOIN seeker_skill ss ON s.id = ss.seeker_id
	LEFT JOIN skills sk ON ss.skill_id = sk.id
	LEFT JOIN applications a ON a.internship_seeker_id = s.id AND a.status = 'accepted'
	WHERE (sk.name LIKE ? OR s.skills LIKE ?)
		AND a.id IS NULL`

// CountAvailableSeekersWithSkill counts seekers holding skill who have no accepted application.
func (r *implRepository) CountAvailableSeekersWithSkill(ctx context.Context, skill string) (int, error) {
	ctx, cancel := r.bound(ctx)
	defer cancel()

	if skill == "" {
		return 0, repo.ErrEmptyTerm
	}

	pattern := likePattern(skill)
	var n int
	if err := r.db.QueryRowContext(ctx, queryCountAvailable, pattern, pattern).Scan(&n); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CountAvailableSeekersWithSkill"), err)
		return 0, fmt.Errorf("%w: %v", repo.ErrFailedToCount, err)
	}
	return n, nil
}

const querySkillDistribution = `
	SELECT sk.name, COUNT(DISTINCT ss.seeker_id) AS seeker_count
	FROM skills sk
	LEFT JOIN seeker_skill ss ON sk.id = ss.skill_id
	WHERE sk.is_active = 1
	GROUP BY sk.id, sk.name
	ORDER BY seeker_count DESC, sk.name ASC
	LIMIT ?`

// SkillDistribution ranks active skills by how many seekers list them.
func (r *implRepository) SkillDistribution(ctx context.Context, limit int) ([]model.SkillStat, error) {
	ctx, cancel := r.bound(ctx)
	defer cancel()

	if limit <= 0 {
		return nil, repo.ErrInvalidLimit
	}

	rows, err := r.db.QueryContext(ctx, querySkillDistribution, limit)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SkillDistribution"), err)
		return nil, fmt.Errorf("%w: %v", repo.ErrFailedToList, err)
	}
	defer rows.Close()

	var stats []model.SkillStat
	for rows.Next() {
		var s model.SkillStat
		if err := rows.Scan(&s.Skill, &s.SeekerCount); err != nil {
			return nil, fmt.Errorf("%w: %v", repo.ErrFailedToList, err)
		}
		stats = append(stats, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", repo.ErrFailedToList, err)
	}
	return stats, nil
}
