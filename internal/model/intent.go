package model

import "strings"

// Intent is the closed set of question categories the assistant answers.
type Intent string

const (
	IntentTopTechnologies   Intent = "top_technologies"
	IntentTechnologyDetails Intent = "technology_details"
	IntentCompanyHiring     Intent = "company_hiring"
	IntentTalentSearch      Intent = "talent_search"
	IntentSkillAvailability Intent = "skill_availability"
	IntentSkillDistribution Intent = "skill_distribution"
	IntentDemandSupplyGap   Intent = "demand_supply_gap"
	IntentPartnershipIntel  Intent = "partnership_intel"
	IntentLearningPath      Intent = "learning_path"
	IntentGeneral           Intent = "general"

	// IntentError labels a failed request. The classifier never produces it.
	IntentError Intent = "error"
)

var allIntents = []Intent{
	IntentTopTechnologies,
	IntentTechnologyDetails,
	IntentCompanyHiring,
	IntentTalentSearch,
	IntentSkillAvailability,
	IntentSkillDistribution,
	IntentDemandSupplyGap,
	IntentPartnershipIntel,
	IntentLearningPath,
	IntentGeneral,
}

// AllIntents returns the ten classifiable intents in declaration order.
func AllIntents() []Intent {
	out := make([]Intent, len(allIntents))
	copy(out, allIntents)
	return out
}

// IsValid reports whether i is one of the ten classifiable intents.
func (i Intent) IsValid() bool {
	for _, v := range allIntents {
		if v == i {
			return true
		}
	}
	return false
}

func (i Intent) String() string {
	return string(i)
}

// ParseIntent normalizes s and maps anything unrecognized to IntentGeneral.
func ParseIntent(s string) Intent {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.Trim(s, "\"'`")
	s = strings.TrimSpace(s)
	if i := Intent(s); i.IsValid() {
		return i
	}
	return IntentGeneral
}
