package sqldb

import (
	"context"
	"fmt"

	"internship-assistant/internal/model"
	repo "internship-assistant/internal/talent/repository"
)

const queryTopTechnologies = `
	SELECT technology, COUNT(*) AS post_count, COUNT(DISTINCT company_id) AS company_count
	FROM posts
	WHERE technology IS NOT NULL AND technology <> ''
	GROUP BY technology
	ORDER BY post_count DESC, technology ASC
	LIMIT ?`

// TopTechnologies ranks technologies by the number of posts requiring them.
func (r *implRepository) TopTechnologies(ctx context.Context, limit int) ([]model.TechnologyStat, error) {
	ctx, cancel := r.bound(ctx)
	defer cancel()

	if limit <= 0 {
		return nil, repo.ErrInvalidLimit
	}

	rows, err := r.db.QueryContext(ctx, queryTopTechnologies, limit)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("TopTechnologies"), err)
		return nil, fmt.Errorf("%w: %v", repo.ErrFailedToList, err)
	}
	defer rows.Close()

	var stats []model.TechnologyStat
	for rows.Next() {
		var s model.TechnologyStat
		if err := rows.Scan(&s.Technology, &s.PostCount, &s.CompanyCount); err != nil {
			return nil, fmt.Errorf("%w: %v", repo.ErrFailedToList, err)
		}
		stats = append(stats, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", repo.ErrFailedToList, err)
	}
	return stats, nil
}

const queryCompanyCountByTechnology = `
	SELECT COUNT(DISTINCT company_id)
	FROM posts
	WHERE technology LIKE ?`

// CompanyCountByTechnology counts distinct companies with a post mentioning tech.
func (r *implRepository) CompanyCountByTechnology(ctx context.Context, tech string) (int, error) {
	ctx, cancel := r.bound(ctx)
	defer cancel()

	if tech == "" {
		return 0, repo.ErrEmptyTerm
	}

	var n int
	if err := r.db.QueryRowContext(ctx, queryCompanyCountByTechnology, likePattern(tech)).Scan(&n); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CompanyCountByTechnology"), err)
		return 0, fmt.Errorf("%w: %v", repo.ErrFailedToCount, err)
	}
	return n, nil
}

const queryPostsByTechnology = `
	SELECT p.id, COALESCE(p.position, ''), COALESCE(p.technology, ''), COALESCE(p.description, ''),
		u.name, COALESCE(u.email, ''), COALESCE(c.website_link, ''), COALESCE(c.address, '')
	FROM posts p
	JOIN companies c ON p.company_id = c.id
	JOIN users u ON c.user_id = u.id
	WHERE p.technology LIKE ?
	ORDER BY p.created_at DESC, p.id DESC
	LIMIT ?`

// PostsByTechnology returns the newest posts for tech with company contact data.
func (r *implRepository) PostsByTechnology(ctx context.Context, tech string, limit int) ([]model.Post, error) {
	ctx, cancel := r.bound(ctx)
	defer cancel()

	if tech == "" {
		return nil, repo.ErrEmptyTerm
	}
	if limit <= 0 {
		return nil, repo.ErrInvalidLimit
	}

	rows, err := r.db.QueryContext(ctx, queryPostsByTechnology, likePattern(tech), limit)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("PostsByTechnology"), err)
		return nil, fmt.Errorf("%w: %v", repo.ErrFailedToList, err)
	}
	defer rows.Close()

	var posts []model.Post
	for rows.Next() {
		var p model.Post
		if err := rows.Scan(&p.ID, &p.Position, &p.Technology, &p.Description,
			&p.CompanyName, &p.CompanyEmail, &p.CompanyWebsite, &p.CompanyLocation); err != nil {
			return nil, fmt.Errorf("%w: %v", repo.ErrFailedToList, err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", repo.ErrFailedToList, err)
	}
	return posts, nil
}
