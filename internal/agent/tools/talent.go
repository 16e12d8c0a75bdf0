package tools

import (
	"context"
	"fmt"

	"internship-assistant/internal/agent"
	"internship-assistant/internal/model"
	"internship-assistant/internal/talent/repository"
)

// SearchSeekersTool runs a semantic search over seeker profiles.
type SearchSeekersTool struct {
	search repository.SemanticSearch
}

func NewSearchSeekersTool(search repository.SemanticSearch) *SearchSeekersTool {
	return &SearchSeekersTool{search: search}
}

func (t *SearchSeekersTool) Name() string { return NameSearchSeekers }

func (t *SearchSeekersTool) Description() string {
	return "Find internship seekers whose profile matches a natural language description. Best match first."
}

func (t *SearchSeekersTool) Parameters() map[string]interface{} {
	return objectSchema(map[string]interface{}{
		"query": stringSchema("Natural language description of the candidate"),
		"limit": limitSchema(),
	}, "query")
}

type searchInput struct {
	Query string `json:"query"`
	Limit int    `json:"limit"`
}

type SeekersOutput struct {
	Count   int            `json:"count"`
	Seekers []model.Seeker `json:"seekers"`
}

func (t *SearchSeekersTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	var in searchInput
	if err := decode(params, &in); err != nil {
		return nil, err
	}
	query, err := required("query", in.Query)
	if err != nil {
		return nil, err
	}

	seekers, err := t.search.QuerySeekers(ctx, query, clampLimit(in.Limit))
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}
	return SeekersOutput{Count: len(seekers), Seekers: seekers}, nil
}

// SeekersBySkillTool lists seekers holding a skill.
type SeekersBySkillTool struct {
	data repository.DataAccess
}

func NewSeekersBySkillTool(data repository.DataAccess) *SeekersBySkillTool {
	return &SeekersBySkillTool{data: data}
}

func (t *SeekersBySkillTool) Name() string { return NameSeekersBySkill }

func (t *SeekersBySkillTool) Description() string {
	return "List internship seekers who list a given skill."
}

func (t *SeekersBySkillTool) Parameters() map[string]interface{} {
	return objectSchema(map[string]interface{}{
		"skill": stringSchema("Skill name, e.g. Python"),
		"limit": limitSchema(),
	}, "skill")
}

func (t *SeekersBySkillTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	var in skillInput
	if err := decode(params, &in); err != nil {
		return nil, err
	}
	skill, err := required("skill", in.Skill)
	if err != nil {
		return nil, err
	}

	seekers, err := t.data.SeekersBySkill(ctx, skill, clampLimit(in.Limit))
	if err != nil {
		return nil, fmt.Errorf("seekers by skill failed: %w", err)
	}
	return SeekersOutput{Count: len(seekers), Seekers: seekers}, nil
}

// CountAvailableSeekersTool counts seekers holding a skill.
type CountAvailableSeekersTool struct {
	data repository.DataAccess
}

func NewCountAvailableSeekersTool(data repository.DataAccess) *CountAvailableSeekersTool {
	return &CountAvailableSeekersTool{data: data}
}

func (t *CountAvailableSeekersTool) Name() string { return NameCountAvailableSeekers }

func (t *CountAvailableSeekersTool) Description() string {
	return "Count how many internship seekers have a given skill."
}

func (t *CountAvailableSeekersTool) Parameters() map[string]interface{} {
	return objectSchema(map[string]interface{}{
		"skill": stringSchema("Skill name, e.g. Docker"),
	}, "skill")
}

type CountAvailableOutput struct {
	Skill     string `json:"skill"`
	Available int    `json:"available"`
}

func (t *CountAvailableSeekersTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	var in skillInput
	if err := decode(params, &in); err != nil {
		return nil, err
	}
	skill, err := required("skill", in.Skill)
	if err != nil {
		return nil, err
	}

	n, err := t.data.CountAvailableSeekersWithSkill(ctx, skill)
	if err != nil {
		return nil, fmt.Errorf("count available seekers failed: %w", err)
	}
	return CountAvailableOutput{Skill: skill, Available: n}, nil
}

// SkillDistributionTool ranks skills by seeker count.
type SkillDistributionTool struct {
	data repository.DataAccess
}

func NewSkillDistributionTool(data repository.DataAccess) *SkillDistributionTool {
	return &SkillDistributionTool{data: data}
}

func (t *SkillDistributionTool) Name() string { return NameSkillDistribution }

func (t *SkillDistributionTool) Description() string {
	return "Rank the skills held by internship seekers by how many seekers list each one."
}

func (t *SkillDistributionTool) Parameters() map[string]interface{} {
	return objectSchema(map[string]interface{}{"limit": limitSchema()})
}

type SkillDistributionOutput struct {
	TotalHoldings int               `json:"total_holdings"`
	Skills        []model.SkillStat `json:"skills"`
}

func (t *SkillDistributionTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	var in limitInput
	if err := decode(params, &in); err != nil {
		return nil, err
	}

	skills, err := t.data.SkillDistribution(ctx, clampLimit(in.Limit))
	if err != nil {
		return nil, fmt.Errorf("skill distribution failed: %w", err)
	}

	out := SkillDistributionOutput{Skills: skills}
	for _, s := range skills {
		out.TotalHoldings += s.SeekerCount
	}
	return out, nil
}

var (
	_ agent.Tool = (*SearchSeekersTool)(nil)
	_ agent.Tool = (*SeekersBySkillTool)(nil)
	_ agent.Tool = (*CountAvailableSeekersTool)(nil)
	_ agent.Tool = (*SkillDistributionTool)(nil)
)
