package tools_test

import (
	"context"
	"errors"
	"testing"

	"internship-assistant/internal/agent"
	"internship-assistant/internal/agent/tools"
	"internship-assistant/internal/model"
	"internship-assistant/internal/talent/repository"
)

type mockData struct {
	repository.DataAccess
	err       error
	lastLimit int
	lastTerm  string
}

func (m *mockData) TopTechnologies(ctx context.Context, limit int) ([]model.TechnologyStat, error) {
	m.lastLimit = limit
	return []model.TechnologyStat{{Technology: "React", PostCount: 3}, {Technology: "Go", PostCount: 2}}, m.err
}

func (m *mockData) PostsByTechnology(ctx context.Context, tech string, limit int) ([]model.Post, error) {
	m.lastTerm, m.lastLimit = tech, limit
	return []model.Post{{ID: 1, CompanyName: "Acme"}}, m.err
}

func (m *mockData) CompanyCountByTechnology(ctx context.Context, tech string) (int, error) {
	m.lastTerm = tech
	return 4, m.err
}

func (m *mockData) SeekersBySkill(ctx context.Context, skill string, limit int) ([]model.Seeker, error) {
	m.lastTerm, m.lastLimit = skill, limit
	return []model.Seeker{{ID: 7, Name: "Lan"}}, m.err
}

func (m *mockData) CountAvailableSeekersWithSkill(ctx context.Context, skill string) (int, error) {
	m.lastTerm = skill
	return 2, m.err
}

func (m *mockData) SkillDistribution(ctx context.Context, limit int) ([]model.SkillStat, error) {
	m.lastLimit = limit
	return []model.SkillStat{{Skill: "Python", SeekerCount: 5}, {Skill: "SQL", SeekerCount: 1}}, m.err
}

func (m *mockData) DemandSupplyGap(ctx context.Context, limit int) ([]model.GapEntry, error) {
	m.lastLimit = limit
	return []model.GapEntry{{Technology: "React", Demand: 3, Supply: 1, Gap: 2}}, m.err
}

func (m *mockData) PartnershipCandidates(ctx context.Context, limit int) ([]model.PartnershipCandidate, error) {
	m.lastLimit = limit
	return []model.PartnershipCandidate{{Name: "Acme", PostCount: 2}}, m.err
}

type mockSearch struct {
	query string
	err   error
}

func (m *mockSearch) QuerySeekers(ctx context.Context, text string, limit int) ([]model.Seeker, error) {
	m.query = text
	return []model.Seeker{{ID: 1}, {ID: 2}}, m.err
}

func TestAll_UniqueNames(t *testing.T) {
	registry := agent.NewToolRegistry()
	all := tools.All(&mockData{}, &mockSearch{})
	registry.Register(all...)

	if len(registry.List()) != len(all) {
		t.Fatalf("expected %d unique tools, got %d", len(all), len(registry.List()))
	}
	for _, def := range registry.ToFunctionDefinitions() {
		if def.Description == "" {
			t.Errorf("tool %s has no description", def.Name)
		}
		if def.Parameters["type"] != "object" {
			t.Errorf("tool %s schema is not an object", def.Name)
		}
	}
}

func TestTopTechnologiesTool(t *testing.T) {
	data := &mockData{}
	tool := tools.NewTopTechnologiesTool(data)

	res, err := tool.Execute(context.Background(), map[string]interface{}{"limit": float64(500)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := res.(tools.TopTechnologiesOutput)
	if out.TotalPosts != 5 {
		t.Errorf("expected total 5, got %d", out.TotalPosts)
	}
	if data.lastLimit != 50 {
		t.Errorf("expected limit clamped to 50, got %d", data.lastLimit)
	}

	if _, err := tool.Execute(context.Background(), nil); err != nil {
		t.Fatalf("nil params should use defaults: %v", err)
	}
	if data.lastLimit != 10 {
		t.Errorf("expected default limit 10, got %d", data.lastLimit)
	}
}

func TestRequiredParameters(t *testing.T) {
	data := &mockData{}
	cases := []agent.Tool{
		tools.NewPostsByTechnologyTool(data),
		tools.NewCompanyCountTool(data),
		tools.NewSearchSeekersTool(&mockSearch{}),
		tools.NewSeekersBySkillTool(data),
		tools.NewCountAvailableSeekersTool(data),
	}

	for _, tool := range cases {
		t.Run(tool.Name(), func(t *testing.T) {
			if _, err := tool.Execute(context.Background(), map[string]interface{}{}); err == nil {
				t.Errorf("expected error for missing parameter")
			}
			if _, err := tool.Execute(context.Background(), map[string]interface{}{"technology": "  ", "skill": "", "query": " "}); err == nil {
				t.Errorf("expected error for blank parameter")
			}
		})
	}
}

func TestTermTools(t *testing.T) {
	data := &mockData{}

	res, err := tools.NewCompanyCountTool(data).Execute(context.Background(), map[string]interface{}{"technology": " Java "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := res.(tools.CompanyCountOutput); got.Technology != "Java" || got.Companies != 4 {
		t.Errorf("unexpected output: %+v", got)
	}

	res, err = tools.NewCountAvailableSeekersTool(data).Execute(context.Background(), map[string]interface{}{"skill": "Docker"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := res.(tools.CountAvailableOutput); got.Available != 2 || data.lastTerm != "Docker" {
		t.Errorf("unexpected output: %+v", got)
	}

	search := &mockSearch{}
	res, err = tools.NewSearchSeekersTool(search).Execute(context.Background(), map[string]interface{}{"query": "backend intern with Go"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := res.(tools.SeekersOutput); got.Count != 2 || search.query != "backend intern with Go" {
		t.Errorf("unexpected output: %+v", got)
	}
}

func TestAggregateTools(t *testing.T) {
	data := &mockData{}

	res, err := tools.NewSkillDistributionTool(data).Execute(context.Background(), map[string]interface{}{"limit": float64(7)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := res.(tools.SkillDistributionOutput); got.TotalHoldings != 6 || data.lastLimit != 7 {
		t.Errorf("unexpected output: %+v (limit %d)", got, data.lastLimit)
	}

	res, err = tools.NewDemandSupplyGapTool(data).Execute(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := res.(tools.DemandSupplyGapOutput); len(got.Entries) != 1 || got.Entries[0].Gap != 2 {
		t.Errorf("unexpected output: %+v", got)
	}

	res, err = tools.NewPartnershipCandidatesTool(data).Execute(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := res.(tools.PartnershipCandidatesOutput); got.Count != 1 {
		t.Errorf("unexpected output: %+v", got)
	}
}

func TestToolErrorsWrapCause(t *testing.T) {
	boom := errors.New("db down")
	_, err := tools.NewSkillDistributionTool(&mockData{err: boom}).Execute(context.Background(), nil)
	if !errors.Is(err, boom) {
		t.Errorf("expected wrapped cause, got %v", err)
	}

	_, err = tools.NewPostsByTechnologyTool(&mockData{}).Execute(context.Background(), map[string]interface{}{"technology": "React", "limit": "many"})
	if err == nil {
		t.Errorf("expected parse error for non-numeric limit")
	}
}
