package formatter

import (
	"context"

	"internship-assistant/internal/chat"
	"internship-assistant/internal/model"
)

// Format dispatches to the handler of intent. Unknown intents are served as
// general. Failures are *chat.ParameterMissingError when the question lacks a
// technology or skill, and *chat.DataFetchError when a capability fails or
// does not answer within FetchTimeout.
func (f *implFormatter) Format(ctx context.Context, intent model.Intent, text string, role model.Role) (Outcome, error) {
	ctx, cancel := context.WithTimeout(ctx, f.opt.FetchTimeout)
	defer cancel()

	switch intent {
	case model.IntentTopTechnologies:
		return f.topTechnologies(ctx, role)
	case model.IntentTechnologyDetails:
		return f.technologyDetails(ctx, text, role)
	case model.IntentCompanyHiring:
		return f.companyHiring(ctx, text, role)
	case model.IntentTalentSearch:
		return f.talentSearch(ctx, text, role)
	case model.IntentSkillAvailability:
		return f.skillAvailability(ctx, text, role)
	case model.IntentSkillDistribution:
		return f.skillDistribution(ctx, role)
	case model.IntentDemandSupplyGap:
		return f.demandSupplyGap(ctx, role)
	case model.IntentPartnershipIntel:
		return f.partnershipIntel(ctx, role)
	case model.IntentLearningPath:
		return learningPath(), nil
	case model.IntentGeneral:
		return general(role), nil
	default:
		f.l.Warnf(ctx, "%s: no handler for %q, serving general", LogPrefixFormat, intent)
		return general(role), nil
	}
}

func grounded(intent model.Intent, role model.Role, subject string, sheet FactSheet) Outcome {
	return Outcome{
		Kind:        KindGrounded,
		Intent:      intent,
		Sheet:       sheet,
		RoleContext: RoleContext(role, intent, subject),
	}
}

func (f *implFormatter) fetchFailed(ctx context.Context, intent model.Intent, op string, err error) (Outcome, error) {
	f.l.Errorf(ctx, "%s: %s: %s: %v", LogPrefixFormat, intent, op, err)
	return Outcome{}, &chat.DataFetchError{Intent: intent, Operation: op, Err: err}
}

func missingTechnology(intent model.Intent) (Outcome, error) {
	return Outcome{}, &chat.ParameterMissingError{Intent: intent, Parameter: "technology", Message: chat.MsgTechnologyHint}
}

func missingSkill(intent model.Intent) (Outcome, error) {
	return Outcome{}, &chat.ParameterMissingError{Intent: intent, Parameter: "skill", Message: chat.MsgSkillHint}
}

// percent returns part as a percentage of total, or 0 for an empty total.
func percent(part, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

func orNA(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}
