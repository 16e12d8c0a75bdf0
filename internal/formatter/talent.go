package formatter

import (
	"context"

	"github.com/samber/lo"

	"internship-assistant/internal/model"
)

// talentSearch asks the semantic index first. The skill lookup only runs when
// the index returns nothing.
func (f *implFormatter) talentSearch(ctx context.Context, text string, role model.Role) (Outcome, error) {
	const intent = model.IntentTalentSearch

	skill, hasSkill := ExtractSkill(text)

	seekers, err := f.search.QuerySeekers(ctx, text, TalentFetch)
	if err != nil {
		return f.fetchFailed(ctx, intent, "semantic seeker search", err)
	}
	if len(seekers) == 0 && hasSkill {
		f.l.Infof(ctx, "%s: semantic search empty, falling back to skill %s", LogPrefixFormat, skill)
		seekers, err = f.data.SeekersBySkill(ctx, skill, TalentFetch)
		if err != nil {
			return f.fetchFailed(ctx, intent, "seekers by skill", err)
		}
	}

	seekers = lo.UniqBy(seekers, func(s model.Seeker) int64 { return s.ID })
	if len(seekers) == 0 {
		return grounded(intent, role, skill, NoData()), nil
	}

	label := skill
	if !hasSkill {
		label = "your query"
	}
	sheet := NewFactSheet("Candidates matching '" + label + "':")
	for i, s := range lo.Slice(seekers, 0, TalentShow) {
		sheet.Addf("%d. %s", i+1, orNA(s.Name)).
			Addf("   Skills: %s, Email: %s", orNA(joinList(s.Skills)), orNA(s.Email))
	}
	return grounded(intent, role, skill, *sheet), nil
}

func (f *implFormatter) skillAvailability(ctx context.Context, text string, role model.Role) (Outcome, error) {
	const intent = model.IntentSkillAvailability

	skill, ok := ExtractSkill(text)
	if !ok {
		return missingSkill(intent)
	}

	n, err := f.data.CountAvailableSeekersWithSkill(ctx, skill)
	if err != nil {
		return f.fetchFailed(ctx, intent, "available seekers", err)
	}
	if n == 0 {
		return grounded(intent, role, skill, NoData()), nil
	}

	sheet := NewFactSheet("Skill availability for '"+skill+"':").
		Addf("Available developers: %d", n)
	return grounded(intent, role, skill, *sheet), nil
}

func (f *implFormatter) skillDistribution(ctx context.Context, role model.Role) (Outcome, error) {
	const intent = model.IntentSkillDistribution

	skills, err := f.data.SkillDistribution(ctx, SkillDistFetch)
	if err != nil {
		return f.fetchFailed(ctx, intent, "skill distribution", err)
	}
	if len(skills) == 0 {
		return grounded(intent, role, "", NoData()), nil
	}

	total := lo.SumBy(skills, func(s model.SkillStat) int { return s.SeekerCount })

	sheet := NewFactSheet("Top skills among developers:")
	for i, s := range lo.Slice(skills, 0, SkillDistShow) {
		sheet.Addf("%d. %s: %d developers (%.1f%% of listed skill holdings)",
			i+1, s.Skill, s.SeekerCount, percent(s.SeekerCount, total))
	}
	return grounded(intent, role, "", *sheet), nil
}

func (f *implFormatter) demandSupplyGap(ctx context.Context, role model.Role) (Outcome, error) {
	const intent = model.IntentDemandSupplyGap

	gap, err := f.data.DemandSupplyGap(ctx, GapFetch)
	if err != nil {
		return f.fetchFailed(ctx, intent, "demand supply gap", err)
	}
	if len(gap) == 0 {
		return grounded(intent, role, "", NoData()), nil
	}

	sheet := NewFactSheet("Industry demand vs talent supply:")
	for _, g := range lo.Slice(gap, 0, GapShow) {
		sheet.Addf("- %s: %d demand, %d supply (gap: %+d)", g.Technology, g.Demand, g.Supply, g.Gap)
	}
	return grounded(intent, role, "", *sheet), nil
}
