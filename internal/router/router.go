package router

import (
	"context"
	"fmt"
	"strings"

	"internship-assistant/internal/chat"
	"internship-assistant/internal/model"
)

// Classify determines the intent of text. The model reply is untrusted: anything
// that is not exactly one label becomes general. When the model call fails the
// result is general together with a *chat.ClassificationError.
func (r *SemanticRouter) Classify(ctx context.Context, text string, history []model.Turn) (model.Intent, error) {
	system := BuildSystemPrompt(history)

	reply, err := r.llm.Complete(ctx, system, fmt.Sprintf(PromptQuery, text), r.opts)
	if err != nil {
		r.l.Warnf(ctx, "%s: LLM call failed: %v", LogPrefixClassify, err)
		return model.IntentGeneral, &chat.ClassificationError{Err: err}
	}

	intent := model.ParseIntent(reply)
	if string(intent) != normalize(reply) {
		r.l.Warnf(ctx, "%s: unrecognized label %q, using %s", LogPrefixClassify, reply, intent)
	}

	r.l.Infof(ctx, "%s: Classified as %s", LogPrefixClassify, intent)
	return intent, nil
}

// BuildSystemPrompt renders the classifier instruction with the last turns of history.
func BuildSystemPrompt(history []model.Turn) string {
	labels := make([]string, 0, len(model.AllIntents()))
	for _, i := range model.AllIntents() {
		labels = append(labels, string(i))
	}

	var convo string
	if len(history) > 0 {
		recent := history
		if len(recent) > RouterHistoryTurns {
			recent = recent[len(recent)-RouterHistoryTurns:]
		}
		var sb strings.Builder
		sb.WriteString(PromptHistoryPrefix)
		for _, turn := range recent {
			role := turn.Role
			if role == "" {
				role = RouterDefaultRole
			}
			fmt.Fprintf(&sb, "%s: %s\n", role, turn.Content)
		}
		convo = sb.String()
	}

	return fmt.Sprintf(PromptRouterSystem, strings.Join(labels, ", "), convo)
}

func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.TrimSpace(strings.Trim(s, "\"'`"))
}
