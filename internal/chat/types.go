package chat

import "internship-assistant/internal/model"

// Input is one question plus the conversation that preceded it.
type Input struct {
	Text    string
	Role    model.Role
	History []model.Turn
}

// Output is the final answer and the intent that produced it.
type Output struct {
	Response string
	Intent   model.Intent
}

// User-visible messages shared by every strategy.
const (
	MsgNoData         = "I don't have this information yet. Please try asking about something else."
	MsgErrorPrefix    = "Error processing your question: "
	MsgTechnologyHint = "Please specify a technology (e.g., 'React', 'Python', 'Java')."
	MsgSkillHint      = "Please specify a skill (e.g., 'React', 'Python')."
)

// Short, role-neutral causes embedded in error responses. Raw error text
// stays in the logs.
const (
	CauseComposition = "the answer could not be generated right now"
	CauseInternal    = "an unexpected internal error occurred"
	CauseCancelled   = "the request was cancelled"
)

// ErrorOutput renders an unrecoverable failure.
func ErrorOutput(cause string) Output {
	return Output{Response: MsgErrorPrefix + cause + ". Please try again.", Intent: model.IntentError}
}
