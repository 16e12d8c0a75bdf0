package sqldb

import (
	"context"
	"database/sql"
	"fmt"

	"internship-assistant/internal/model"
	"internship-assistant/internal/talent"
	repo "internship-assistant/internal/talent/repository"
)

const queryDemand = `
	SELECT technology, COUNT(*)
	FROM posts
	WHERE technology IS NOT NULL AND technology <> ''
	GROUP BY technology`

const querySupply = `
	SELECT sk.name, COUNT(DISTINCT ss.seeker_id)
	FROM skills sk
	LEFT JOIN seeker_skill ss ON sk.id = ss.skill_id
	WHERE sk.is_active = 1
	GROUP BY sk.id, sk.name`

// DemandSupplyGap compares post demand with seeker supply per technology.
func (r *implRepository) DemandSupplyGap(ctx context.Context, limit int) ([]model.GapEntry, error) {
	ctx, cancel := r.bound(ctx)
	defer cancel()

	if limit <= 0 {
		return nil, repo.ErrInvalidLimit
	}

	var demand []model.TechnologyStat
	err := r.scanAll(ctx, queryDemand, nil, func(rows *sql.Rows) error {
		var s model.TechnologyStat
		if err := rows.Scan(&s.Technology, &s.PostCount); err != nil {
			return err
		}
		demand = append(demand, s)
		return nil
	})
	if err != nil {
		r.l.Errorf(ctx, "%s demand: %v", r.dsn("DemandSupplyGap"), err)
		return nil, fmt.Errorf("%w: %v", repo.ErrFailedToList, err)
	}

	var supply []model.SkillStat
	err = r.scanAll(ctx, querySupply, nil, func(rows *sql.Rows) error {
		var s model.SkillStat
		if err := rows.Scan(&s.Skill, &s.SeekerCount); err != nil {
			return err
		}
		supply = append(supply, s)
		return nil
	})
	if err != nil {
		r.l.Errorf(ctx, "%s supply: %v", r.dsn("DemandSupplyGap"), err)
		return nil, fmt.Errorf("%w: %v", repo.ErrFailedToList, err)
	}

	gap := talent.MergeDemandSupply(demand, supply)
	if len(gap) > limit {
		gap = gap[:limit]
	}
	return gap, nil
}

const queryPartnershipCandidates = `
	SELECT c.id, u.name, COALESCE(u.email, ''), COUNT(p.id) AS active_posts,
		GROUP_CONCAT(DISTINCT p.technology), GROUP_CONCAT(DISTINCT p.position)
	FROM companies c
	JOIN users u ON c.user_id = u.id
	LEFT JOIN posts p ON c.id = p.company_id
	WHERE c.verification_status = 'verified'
	GROUP BY c.id, u.name, u.email
	HAVING COUNT(p.id) > 0
	ORDER BY active_posts DESC, u.name ASC
	LIMIT ?`

// PartnershipCandidates lists verified companies with at least one post.
func (r *implRepository) PartnershipCandidates(ctx context.Context, limit int) ([]model.PartnershipCandidate, error) {
	ctx, cancel := r.bound(ctx)
	defer cancel()

	if limit <= 0 {
		return nil, repo.ErrInvalidLimit
	}

	var out []model.PartnershipCandidate
	err := r.scanAll(ctx, queryPartnershipCandidates, []any{limit}, func(rows *sql.Rows) error {
		var (
			c           model.PartnershipCandidate
			techs, poss sql.NullString
		)
		if err := rows.Scan(&c.CompanyID, &c.Name, &c.Email, &c.PostCount, &techs, &poss); err != nil {
			return err
		}
		c.Technologies = splitList(nullString(techs))
		c.Positions = splitList(nullString(poss))
		out = append(out, c)
		return nil
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("PartnershipCandidates"), err)
		return nil, fmt.Errorf("%w: %v", repo.ErrFailedToList, err)
	}
	return out, nil
}

// Snapshot counts the rows of the main tables.
func (r *implRepository) Snapshot(ctx context.Context) (model.Snapshot, error) {
	ctx, cancel := r.bound(ctx)
	defer cancel()

	var snap model.Snapshot
	targets := []struct {
		table string
		dst   *int
	}{
		{"posts", &snap.Posts},
		{"seekers", &snap.Seekers},
		{"companies", &snap.Companies},
		{"skills", &snap.Skills},
	}
	for _, t := range targets {
		if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+t.table).Scan(t.dst); err != nil {
			r.l.Errorf(ctx, "%s %s: %v", r.dsn("Snapshot"), t.table, err)
			return model.Snapshot{}, fmt.Errorf("%w: %v", repo.ErrFailedToCount, err)
		}
	}
	return snap, nil
}

// scanAll runs query and hands each row to scan.
func (r *implRepository) scanAll(ctx context.Context, query string, args []any, scan func(*sql.Rows) error) error {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		if err := scan(rows); err != nil {
			return err
		}
	}
	return rows.Err()
}
