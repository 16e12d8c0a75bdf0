package orchestrator

import (
	"internship-assistant/internal/agent/tools"
	"internship-assistant/internal/model"
)

// Log prefixes
const (
	LogPrefixGetResponse = "internal.agent.orchestrator.GetResponse"
)

// System prompt
const (
	SystemPromptAgent = `You are a helpful assistant answering %s questions about internships and talent.

Use the provided tools to look up verified data before answering questions about technologies, companies, seekers, skills or partnerships.

CRITICAL RULES:
1. ONLY use data returned by the tools
2. If the tools return nothing relevant, respond: "I don't have this information yet. Please try asking about something else."
3. DO NOT make up names, numbers, companies, or skills
4. DO NOT guess or infer beyond the tool data
5. Be concise (2-3 sentences max)
6. Be friendly and conversational
7. When you report a count from a ranked list, include its percentage of the listed total`
)

// User-visible messages
const (
	MsgMaxStepsExceeded = "I couldn't finish looking this up. Please try a more specific question."
)

// Error messages
const (
	ErrMsgToolNotFound = "tool not found"
)

// Log messages
const (
	LogMsgAgentStep          = "Agent step %d/%d"
	LogMsgAgentFinished      = "Agent finished at step %d"
	LogMsgAgentCallingTool   = "Agent calling tool: %s with args: %+v"
	LogMsgToolExecutionError = "Tool %s failed: %v"
	LogMsgAgentMaxSteps      = "Agent exceeded max steps (%d)"
)

// Configuration
const (
	MaxAgentSteps      = 5
	MaxSessionHistory  = 10 // Last 5 turns (10 messages)
	DefaultTemperature = 0.6
)

// toolIntents names the intent reported when a tool is the first one called.
var toolIntents = map[string]model.Intent{
	tools.NameTopTechnologies:       model.IntentTopTechnologies,
	tools.NameCompanyCount:          model.IntentTechnologyDetails,
	tools.NamePostsByTechnology:     model.IntentCompanyHiring,
	tools.NameSearchSeekers:         model.IntentTalentSearch,
	tools.NameSeekersBySkill:        model.IntentTalentSearch,
	tools.NameCountAvailableSeekers: model.IntentSkillAvailability,
	tools.NameSkillDistribution:     model.IntentSkillDistribution,
	tools.NameDemandSupplyGap:       model.IntentDemandSupplyGap,
	tools.NamePartnershipCandidates: model.IntentPartnershipIntel,
}

// IntentForTool maps a tool name to the intent it serves. Unknown tools map to general.
func IntentForTool(name string) model.Intent {
	if intent, ok := toolIntents[name]; ok {
		return intent
	}
	return model.IntentGeneral
}
