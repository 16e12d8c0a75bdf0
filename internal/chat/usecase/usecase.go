package usecase

import (
	"context"
	"errors"
	"strings"

	"internship-assistant/internal/chat"
	"internship-assistant/internal/composer"
	"internship-assistant/internal/formatter"
	"internship-assistant/internal/model"
)

// GetResponse answers one question. Every domain failure is folded into the
// returned Output; the error is non-nil only when ctx is done or the text is blank.
func (uc *implUseCase) GetResponse(ctx context.Context, input chat.Input) (out chat.Output, err error) {
	defer func() {
		if r := recover(); r != nil {
			uc.l.Errorf(ctx, "%s: recovered panic: %v", LogPrefixGetResponse, r)
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

	intent, err := uc.router.Classify(ctx, text, input.History)
	if err != nil {
		uc.l.Warnf(ctx, "%s: classification failed, using general: %v", LogPrefixGetResponse, err)
		intent = model.IntentGeneral
	}
	if !intent.IsValid() {
		intent = model.IntentGeneral
	}

	outcome, err := uc.formatter.Format(ctx, intent, text, input.Role)
	if err != nil {
		return uc.fail(ctx, intent, err)
	}

	var reply string
	switch outcome.Kind {
	case formatter.KindOpen:
		reply, err = uc.composer.Open(ctx, outcome.Instruction, text)
	default:
		reply, err = uc.composer.Grounded(ctx, composer.Input{
			Sheet:       outcome.Sheet,
			Query:       text,
			Role:        input.Role,
			RoleContext: outcome.RoleContext,
		})
	}
	if err != nil {
		return uc.fail(ctx, outcome.Intent, err)
	}

	uc.l.Infof(ctx, "%s: answered intent=%s role=%s", LogPrefixGetResponse, outcome.Intent, input.Role)
	return chat.Output{Response: reply, Intent: outcome.Intent}, nil
}

// fail maps a stage error onto the user-visible Output.
func (uc *implUseCase) fail(ctx context.Context, intent model.Intent, err error) (chat.Output, error) {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return chat.ErrorOutput(chat.CauseCancelled), ctxErr
	}

	var (
		missing *chat.ParameterMissingError
		fetch   *chat.DataFetchError
	)
	switch {
	case errors.As(err, &missing):
		return chat.Output{Response: missing.Message, Intent: missing.Intent}, nil
	case errors.As(err, &fetch):
		uc.l.Errorf(ctx, "%s: %v", LogPrefixGetResponse, err)
		return chat.Output{Response: chat.MsgNoData, Intent: fetch.Intent}, nil
	}

	uc.l.Errorf(ctx, "%s: intent=%s: %v", LogPrefixGetResponse, intent, err)
	var composition *chat.CompositionError
	if errors.As(err, &composition) {
		return chat.ErrorOutput(chat.CauseComposition), nil
	}
	return chat.ErrorOutput(chat.CauseInternal), nil
}
