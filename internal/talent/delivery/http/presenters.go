package http

import (
	"github.com/samber/lo"

	"internship-assistant/internal/model"
	"internship-assistant/internal/talent"
)

// --- Request DTOs ---

type limitReq struct {
	Limit int `form:"limit"`
}

func (r limitReq) limitOr(def int) int {
	if r.Limit == 0 {
		return def
	}
	return r.Limit
}

// --- Response DTOs ---

type technologyItem struct {
	Technology   string  `json:"technology"`
	PostCount    int     `json:"post_count"`
	CompanyCount int     `json:"company_count"`
	Percentage   float64 `json:"percentage"`
}

type technologiesResp struct {
	Total        int              `json:"total_posts"`
	Technologies []technologyItem `json:"technologies"`
}

func (h *handler) newTechnologiesResp(stats []model.TechnologyStat) technologiesResp {
	total := lo.SumBy(stats, func(s model.TechnologyStat) int { return s.PostCount })
	return technologiesResp{
		Total: total,
		Technologies: lo.Map(stats, func(s model.TechnologyStat, _ int) technologyItem {
			return technologyItem{
				Technology:   s.Technology,
				PostCount:    s.PostCount,
				CompanyCount: s.CompanyCount,
				Percentage:   share(s.PostCount, total),
			}
		}),
	}
}

type skillItem struct {
	Skill       string  `json:"skill"`
	SeekerCount int     `json:"seeker_count"`
	Percentage  float64 `json:"percentage"`
}

type skillsResp struct {
	Total  int         `json:"total_holdings"`
	Skills []skillItem `json:"skills"`
}

func (h *handler) newSkillsResp(stats []model.SkillStat) skillsResp {
	total := lo.SumBy(stats, func(s model.SkillStat) int { return s.SeekerCount })
	return skillsResp{
		Total: total,
		Skills: lo.Map(stats, func(s model.SkillStat, _ int) skillItem {
			return skillItem{Skill: s.Skill, SeekerCount: s.SeekerCount, Percentage: share(s.SeekerCount, total)}
		}),
	}
}

type indexStatsResp struct {
	Collections talent.IndexStats `json:"collections"`
	Total       int               `json:"total_points"`
}

func (h *handler) newIndexStatsResp(stats talent.IndexStats) indexStatsResp {
	return indexStatsResp{Collections: stats, Total: stats.Seekers + stats.Posts}
}

// share is part/total as a percentage rounded to one decimal.
func share(part, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(part*1000/total) / 10
}
