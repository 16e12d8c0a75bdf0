package composer

import (
	"context"
	"fmt"
	"strings"

	"internship-assistant/internal/chat"
)

// Grounded phrases an answer restricted to in.Sheet. A NO_DATA sheet yields
// the fixed refusal without a model call.
func (c *implComposer) Grounded(ctx context.Context, in Input) (string, error) {
	if in.Sheet.IsNoData() {
		c.l.Infof(ctx, "%s: no data, returning refusal", LogPrefixGrounded)
		return chat.MsgNoData, nil
	}

	system := BuildGroundedPrompt(in)
	reply, err := c.llm.Complete(ctx, system, fmt.Sprintf(PromptQuestion, in.Query), c.opts)
	if err != nil {
		c.l.Errorf(ctx, "%s: LLM call failed: %v", LogPrefixGrounded, err)
		return "", &chat.CompositionError{Err: err}
	}
	return strings.TrimSpace(reply), nil
}

// Open answers from instruction alone.
func (c *implComposer) Open(ctx context.Context, instruction, query string) (string, error) {
	reply, err := c.llm.Complete(ctx, instruction, fmt.Sprintf(PromptQuestion, query), c.opts)
	if err != nil {
		c.l.Errorf(ctx, "%s: LLM call failed: %v", LogPrefixOpen, err)
		return "", &chat.CompositionError{Err: err}
	}
	return strings.TrimSpace(reply), nil
}

// BuildGroundedPrompt renders the grounding rules around the sheet.
func BuildGroundedPrompt(in Input) string {
	return fmt.Sprintf(PromptGroundedSystem, in.Role, strings.TrimSpace(in.RoleContext), in.Sheet.String())
}
