package sqldb

import (
	"context"
	"database/sql"
	"fmt"

	"internship-assistant/internal/model"
	repo "internship-assistant/internal/talent/repository"
)

const queryListPosts = `
	SELECT p.id, COALESCE(p.position, ''), COALESCE(p.technology, ''), COALESCE(p.description, ''),
		u.name, COALESCE(u.email, ''), COALESCE(c.website_link, ''),
		COALESCE(c.address, ''), COALESCE(c.description, '')
	FROM posts p
	JOIN companies c ON p.company_id = c.id
	JOIN users u ON c.user_id = u.id
	ORDER BY p.id`

// ListPosts returns every post with its company, for indexing.
func (r *implRepository) ListPosts(ctx context.Context) ([]model.Post, error) {
	var posts []model.Post
	err := r.scanAll(ctx, queryListPosts, nil, func(rows *sql.Rows) error {
		var p model.Post
		if err := rows.Scan(&p.ID, &p.Position, &p.Technology, &p.Description,
			&p.CompanyName, &p.CompanyEmail, &p.CompanyWebsite,
			&p.CompanyLocation, &p.CompanyDescription); err != nil {
			return err
		}
		posts = append(posts, p)
		return nil
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListPosts"), err)
		return nil, fmt.Errorf("%w: %v", repo.ErrFailedToList, err)
	}
	return posts, nil
}

const queryListSeekers = `
	SELECT s.id, u.name, COALESCE(u.email, ''), COALESCE(s.description, ''),
		GROUP_CONCAT(DISTINCT sk.name), s.skills
	FROM seekers s
	JOIN users u ON s.user_id = u.id
	LEFT JOIN seeker_skill ss ON s.id = ss.seeker_id
	LEFT JOIN skills sk ON ss.skill_id = sk.id
	GROUP BY s.id, u.name, u.email, s.description, s.skills
	ORDER BY s.id`

// ListSeekers returns every seeker with pivot and free-text skills merged, for indexing.
func (r *implRepository) ListSeekers(ctx context.Context) ([]model.Seeker, error) {
	var seekers []model.Seeker
	err := r.scanAll(ctx, queryListSeekers, nil, func(rows *sql.Rows) error {
		var (
			s             model.Seeker
			pivot, freeTx sql.NullString
		)
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Bio, &pivot, &freeTx); err != nil {
			return err
		}
		s.Skills = splitList(nullString(pivot), nullString(freeTx))
		seekers = append(seekers, s)
		return nil
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListSeekers"), err)
		return nil, fmt.Errorf("%w: %v", repo.ErrFailedToList, err)
	}
	return seekers, nil
}
