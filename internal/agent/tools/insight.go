package tools

import (
	"context"
	"fmt"

	"internship-assistant/internal/agent"
	"internship-assistant/internal/model"
	"internship-assistant/internal/talent/repository"
)

// DemandSupplyGapTool compares post demand with seeker supply per technology.
type DemandSupplyGapTool struct {
	data repository.DataAccess
}

func NewDemandSupplyGapTool(data repository.DataAccess) *DemandSupplyGapTool {
	return &DemandSupplyGapTool{data: data}
}

func (t *DemandSupplyGapTool) Name() string { return NameDemandSupplyGap }

func (t *DemandSupplyGapTool) Description() string {
	return "Compare industry demand (internship posts) with talent supply (seekers) per technology. Positive gap means talent is scarce."
}

func (t *DemandSupplyGapTool) Parameters() map[string]interface{} {
	return objectSchema(map[string]interface{}{"limit": limitSchema()})
}

type DemandSupplyGapOutput struct {
	Entries []model.GapEntry `json:"entries"`
}

func (t *DemandSupplyGapTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	var in limitInput
	if err := decode(params, &in); err != nil {
		return nil, err
	}

	gap, err := t.data.DemandSupplyGap(ctx, clampLimit(in.Limit))
	if err != nil {
		return nil, fmt.Errorf("demand supply gap failed: %w", err)
	}
	return DemandSupplyGapOutput{Entries: gap}, nil
}

// PartnershipCandidatesTool lists verified companies with active posts.
type PartnershipCandidatesTool struct {
	data repository.DataAccess
}

func NewPartnershipCandidatesTool(data repository.DataAccess) *PartnershipCandidatesTool {
	return &PartnershipCandidatesTool{data: data}
}

func (t *PartnershipCandidatesTool) Name() string { return NamePartnershipCandidates }

func (t *PartnershipCandidatesTool) Description() string {
	return "List verified companies with active internship posts that a university could partner with."
}

func (t *PartnershipCandidatesTool) Parameters() map[string]interface{} {
	return objectSchema(map[string]interface{}{"limit": limitSchema()})
}

type PartnershipCandidatesOutput struct {
	Count     int                          `json:"count"`
	Companies []model.PartnershipCandidate `json:"companies"`
}

func (t *PartnershipCandidatesTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	var in limitInput
	if err := decode(params, &in); err != nil {
		return nil, err
	}

	partners, err := t.data.PartnershipCandidates(ctx, clampLimit(in.Limit))
	if err != nil {
		return nil, fmt.Errorf("partnership candidates failed: %w", err)
	}
	return PartnershipCandidatesOutput{Count: len(partners), Companies: partners}, nil
}

// All returns one tool per data and search operation.
func All(data repository.DataAccess, search repository.SemanticSearch) []agent.Tool {
	return []agent.Tool{
		NewTopTechnologiesTool(data),
		NewPostsByTechnologyTool(data),
		NewCompanyCountTool(data),
		NewSearchSeekersTool(search),
		NewSeekersBySkillTool(data),
		NewCountAvailableSeekersTool(data),
		NewSkillDistributionTool(data),
		NewDemandSupplyGapTool(data),
		NewPartnershipCandidatesTool(data),
	}
}

var (
	_ agent.Tool = (*DemandSupplyGapTool)(nil)
	_ agent.Tool = (*PartnershipCandidatesTool)(nil)
)
