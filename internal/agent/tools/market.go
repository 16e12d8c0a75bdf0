package tools

import (
	"context"
	"fmt"

	"internship-assistant/internal/agent"
	"internship-assistant/internal/model"
	"internship-assistant/internal/talent/repository"
)

// TopTechnologiesTool lists technologies ranked by post count.
type TopTechnologiesTool struct {
	data repository.DataAccess
}

func NewTopTechnologiesTool(data repository.DataAccess) *TopTechnologiesTool {
	return &TopTechnologiesTool{data: data}
}

func (t *TopTechnologiesTool) Name() string { return NameTopTechnologies }

func (t *TopTechnologiesTool) Description() string {
	return "List the most demanded technologies with their internship post count and number of hiring companies."
}

func (t *TopTechnologiesTool) Parameters() map[string]interface{} {
	return objectSchema(map[string]interface{}{"limit": limitSchema()})
}

type TopTechnologiesOutput struct {
	TotalPosts   int                    `json:"total_posts"`
	Technologies []model.TechnologyStat `json:"technologies"`
}

func (t *TopTechnologiesTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	var in limitInput
	if err := decode(params, &in); err != nil {
		return nil, err
	}

	techs, err := t.data.TopTechnologies(ctx, clampLimit(in.Limit))
	if err != nil {
		return nil, fmt.Errorf("top technologies failed: %w", err)
	}

	out := TopTechnologiesOutput{Technologies: techs}
	for _, tech := range techs {
		out.TotalPosts += tech.PostCount
	}
	return out, nil
}

// PostsByTechnologyTool lists internship posts for one technology.
type PostsByTechnologyTool struct {
	data repository.DataAccess
}

func NewPostsByTechnologyTool(data repository.DataAccess) *PostsByTechnologyTool {
	return &PostsByTechnologyTool{data: data}
}

func (t *PostsByTechnologyTool) Name() string { return NamePostsByTechnology }

func (t *PostsByTechnologyTool) Description() string {
	return "List internship posts and the companies behind them for a technology such as React or Python."
}

func (t *PostsByTechnologyTool) Parameters() map[string]interface{} {
	return objectSchema(map[string]interface{}{
		"technology": stringSchema("Technology name, e.g. React"),
		"limit":      limitSchema(),
	}, "technology")
}

type PostsByTechnologyOutput struct {
	Technology string       `json:"technology"`
	Count      int          `json:"count"`
	Posts      []model.Post `json:"posts"`
}

func (t *PostsByTechnologyTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	var in technologyInput
	if err := decode(params, &in); err != nil {
		return nil, err
	}
	tech, err := required("technology", in.Technology)
	if err != nil {
		return nil, err
	}

	posts, err := t.data.PostsByTechnology(ctx, tech, clampLimit(in.Limit))
	if err != nil {
		return nil, fmt.Errorf("posts by technology failed: %w", err)
	}
	return PostsByTechnologyOutput{Technology: tech, Count: len(posts), Posts: posts}, nil
}

// CompanyCountTool counts companies hiring for one technology.
type CompanyCountTool struct {
	data repository.DataAccess
}

func NewCompanyCountTool(data repository.DataAccess) *CompanyCountTool {
	return &CompanyCountTool{data: data}
}

func (t *CompanyCountTool) Name() string { return NameCompanyCount }

func (t *CompanyCountTool) Description() string {
	return "Count distinct companies with internship posts for a technology."
}

func (t *CompanyCountTool) Parameters() map[string]interface{} {
	return objectSchema(map[string]interface{}{
		"technology": stringSchema("Technology name, e.g. Java"),
	}, "technology")
}

type CompanyCountOutput struct {
	Technology string `json:"technology"`
	Companies  int    `json:"companies"`
}

func (t *CompanyCountTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	var in technologyInput
	if err := decode(params, &in); err != nil {
		return nil, err
	}
	tech, err := required("technology", in.Technology)
	if err != nil {
		return nil, err
	}

	n, err := t.data.CompanyCountByTechnology(ctx, tech)
	if err != nil {
		return nil, fmt.Errorf("company count failed: %w", err)
	}
	return CompanyCountOutput{Technology: tech, Companies: n}, nil
}

var (
	_ agent.Tool = (*TopTechnologiesTool)(nil)
	_ agent.Tool = (*PostsByTechnologyTool)(nil)
	_ agent.Tool = (*CompanyCountTool)(nil)
)
