package tools

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Tool names as the model sees them.
const (
	NameTopTechnologies       = "get_top_technologies"
	NamePostsByTechnology     = "get_posts_by_technology"
	NameCompanyCount          = "get_company_count_by_technology"
	NameSearchSeekers         = "search_seekers"
	NameSeekersBySkill        = "get_seekers_by_skill"
	NameCountAvailableSeekers = "count_available_seekers"
	NameSkillDistribution     = "get_skill_distribution"
	NameDemandSupplyGap       = "get_demand_supply_gap"
	NamePartnershipCandidates = "get_partnership_candidates"
)

const (
	defaultLimit = 10
	maxLimit     = 50
)

// decode maps the model's loose argument object onto a typed input.
func decode(params map[string]interface{}, out interface{}) error {
	raw, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("failed to marshal input: %w", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to parse input: %w", err)
	}
	return nil
}

func required(name, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("%s parameter is required", name)
	}
	return value, nil
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultLimit
	}
	if limit > maxLimit {
		return maxLimit
	}
	return limit
}

func limitSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":        "integer",
		"description": fmt.Sprintf("Maximum number of results (default %d, max %d)", defaultLimit, maxLimit),
	}
}

func stringSchema(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": description,
	}
}

func objectSchema(properties map[string]interface{}, required ...string) map[string]interface{} {
	schema := map[string]interface{}{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

type limitInput struct {
	Limit int `json:"limit"`
}

type technologyInput struct {
	Technology string `json:"technology"`
	Limit      int    `json:"limit"`
}

type skillInput struct {
	Skill string `json:"skill"`
	Limit int    `json:"limit"`
}
