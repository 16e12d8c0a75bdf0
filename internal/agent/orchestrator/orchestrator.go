package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"internship-assistant/internal/agent"
	"internship-assistant/internal/chat"
	"internship-assistant/internal/model"
	"internship-assistant/pkg/llmprovider"
)

// GetResponse runs the ReAct loop: Reason, Act, Observe. The reported intent
// comes from the first tool the model called, or general when it called none.
func (o *Orchestrator) GetResponse(ctx context.Context, input chat.Input) (out chat.Output, err error) {
	defer func() {
		if r := recover(); r != nil {
			o.l.Errorf(ctx, "%s: recovered panic: %v", LogPrefixGetResponse, r)
			out, err = chat.ErrorOutput(chat.CauseInternal), nil
		}
	}()

	if err := ctx.Err(); err != nil {
		return chat.ErrorOutput(chat.CauseCancelled), err
	}
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return chat.Output{}, chat.ErrEmptyQuestion
	}

	if o.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.opts.Timeout)
		defer cancel()
	}

	system := llmprovider.TextMessage("system", fmt.Sprintf(SystemPromptAgent, input.Role))
	req := &llmprovider.Request{
		SystemInstruction: &system,
		Messages:          append(historyMessages(input.History), llmprovider.TextMessage("user", text)),
		Tools:             o.registry.ToFunctionDefinitions(),
		Temperature:       *o.opts.Temperature,
		MaxTokens:         o.opts.MaxTokens,
	}

	intent := model.IntentGeneral
	called := false

	for step := 0; step < MaxAgentSteps; step++ {
		o.l.Infof(ctx, LogMsgAgentStep, step+1, MaxAgentSteps)

		// 1. Reason: Ask LLM what to do
		resp, err := o.llm.GenerateContent(ctx, req)
		if err != nil {
			return o.fail(ctx, fmt.Errorf("agent LLM error at step %d: %w", step+1, err))
		}

		call := resp.FunctionCall()
		if call == nil {
			answer := strings.TrimSpace(resp.Text())
			if answer == "" {
				return o.fail(ctx, llmprovider.ErrEmptyResponse)
			}
			o.l.Infof(ctx, LogMsgAgentFinished, step+1)
			return chat.Output{Response: answer, Intent: intent}, nil
		}

		// 2. Act: Execute the tool
		if !called {
			intent, called = IntentForTool(call.Name), true
		}
		o.l.Infof(ctx, LogMsgAgentCallingTool, call.Name, call.Args)
		result := o.execute(ctx, call)

		// 3. Observe: Add tool result to conversation history
		req.Messages = append(req.Messages,
			llmprovider.Message{Role: "assistant", Parts: []llmprovider.Part{{FunctionCall: call}}},
			llmprovider.Message{Role: "function", Parts: []llmprovider.Part{{
				FunctionResponse: &llmprovider.FunctionResponse{Name: call.Name, Response: result},
			}}},
		)
	}

	o.l.Warnf(ctx, LogMsgAgentMaxSteps, MaxAgentSteps)
	return chat.Output{Response: MsgMaxStepsExceeded, Intent: intent}, nil
}

func (o *Orchestrator) execute(ctx context.Context, call *llmprovider.FunctionCall) interface{} {
	res, err := o.registry.Call(ctx, call)
	if errors.Is(err, agent.ErrToolNotFound) {
		o.l.Errorf(ctx, "%s: %v", LogPrefixGetResponse, err)
		return map[string]string{"error": ErrMsgToolNotFound}
	}
	if err != nil {
		o.l.Errorf(ctx, LogMsgToolExecutionError, call.Name, err)
		return map[string]string{"error": err.Error()}
	}
	return res
}

func (o *Orchestrator) fail(ctx context.Context, err error) (chat.Output, error) {
	if ctxErr := ctx.Err(); ctxErr == context.Canceled {
		return chat.ErrorOutput(chat.CauseCancelled), ctxErr
	}
	o.l.Errorf(ctx, "%s: %v", LogPrefixGetResponse, &chat.CompositionError{Err: err})
	return chat.ErrorOutput(chat.CauseComposition), nil
}

// historyMessages keeps the most recent turns in provider roles.
func historyMessages(history []model.Turn) []llmprovider.Message {
	if len(history) > MaxSessionHistory {
		history = history[len(history)-MaxSessionHistory:]
	}
	msgs := make([]llmprovider.Message, 0, len(history)+1)
	for _, turn := range history {
		role := "user"
		switch strings.ToLower(turn.Role) {
		case "assistant", "bot", "model":
			role = "assistant"
		}
		msgs = append(msgs, llmprovider.TextMessage(role, turn.Content))
	}
	return msgs
}
