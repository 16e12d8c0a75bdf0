package formatter

import (
	"context"

	"github.com/samber/lo"

	"internship-assistant/internal/model"
)

func (f *implFormatter) topTechnologies(ctx context.Context, role model.Role) (Outcome, error) {
	const intent = model.IntentTopTechnologies

	techs, err := f.data.TopTechnologies(ctx, TopTechFetch)
	if err != nil {
		return f.fetchFailed(ctx, intent, "top technologies", err)
	}
	if len(techs) == 0 {
		return grounded(intent, role, "", NoData()), nil
	}

	total := lo.SumBy(techs, func(t model.TechnologyStat) int { return t.PostCount })
	sheet := NewFactSheet("Top technologies by demand:")
	for i, t := range lo.Slice(techs, 0, TopTechShow) {
		sheet.Addf("%d. %s: %d job posts (%.1f%% of all jobs), %d companies",
			i+1, t.Technology, t.PostCount, percent(t.PostCount, total), t.CompanyCount)
	}
	return grounded(intent, role, "", *sheet), nil
}

func (f *implFormatter) technologyDetails(ctx context.Context, text string, role model.Role) (Outcome, error) {
	const intent = model.IntentTechnologyDetails

	tech, ok := ExtractTechnology(text)
	if !ok {
		return missingTechnology(intent)
	}

	posts, err := f.data.PostsByTechnology(ctx, tech, TechPostsFetch)
	if err != nil {
		return f.fetchFailed(ctx, intent, "posts by technology", err)
	}
	if len(posts) == 0 {
		return grounded(intent, role, tech, NoData()), nil
	}

	companies, err := f.data.CompanyCountByTechnology(ctx, tech)
	if err != nil {
		return f.fetchFailed(ctx, intent, "company count", err)
	}
	all, err := f.data.TopTechnologies(ctx, TechTotalsFetch)
	if err != nil {
		return f.fetchFailed(ctx, intent, "technology totals", err)
	}
	totalPosts := lo.SumBy(all, func(t model.TechnologyStat) int { return t.PostCount })
	totalCompanies := lo.SumBy(all, func(t model.TechnologyStat) int { return t.CompanyCount })

	sheet := NewFactSheet(tech+" technology stats:").
		Addf("- %d job posts (%.1f%% of all jobs)", len(posts), percent(len(posts), totalPosts)).
		Addf("- %d companies hiring for %s (%.1f%% of all companies)", companies, tech, percent(companies, totalCompanies)).
		Addf("(Total market: %d jobs across %d company postings)", totalPosts, totalCompanies)
	return grounded(intent, role, tech, *sheet), nil
}

func (f *implFormatter) companyHiring(ctx context.Context, text string, role model.Role) (Outcome, error) {
	const intent = model.IntentCompanyHiring

	tech, ok := ExtractTechnology(text)
	if !ok {
		return missingTechnology(intent)
	}

	posts, err := f.data.PostsByTechnology(ctx, tech, CompanyFetch)
	if err != nil {
		return f.fetchFailed(ctx, intent, "posts by technology", err)
	}
	if len(posts) == 0 {
		return grounded(intent, role, tech, NoData()), nil
	}

	sheet := NewFactSheet("Companies hiring for " + tech + ":")
	for i, p := range lo.Slice(posts, 0, CompanyShow) {
		sheet.Addf("%d. %s - %s", i+1, p.CompanyName, p.Position).
			Addf("   Email: %s, Website: %s", orNA(p.CompanyEmail), orNA(p.CompanyWebsite))
	}
	return grounded(intent, role, tech, *sheet), nil
}

func (f *implFormatter) partnershipIntel(ctx context.Context, role model.Role) (Outcome, error) {
	const intent = model.IntentPartnershipIntel

	partners, err := f.data.PartnershipCandidates(ctx, PartnershipFetch)
	if err != nil {
		return f.fetchFailed(ctx, intent, "partnership candidates", err)
	}
	if len(partners) == 0 {
		return grounded(intent, role, "", NoData()), nil
	}

	total := lo.SumBy(partners, func(p model.PartnershipCandidate) int { return p.PostCount })
	sheet := NewFactSheet("Companies for partnership:")
	for i, p := range lo.Slice(partners, 0, PartnershipShow) {
		sheet.Addf("%d. %s", i+1, p.Name).
			Addf("   Posts: %d (%.1f%% of partner posts), Tech: %s", p.PostCount, percent(p.PostCount, total), orNA(joinList(p.Technologies))).
			Addf("   Email: %s", orNA(p.Email))
	}
	return grounded(intent, role, "", *sheet), nil
}
