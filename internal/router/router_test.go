package router

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/samber/lo"

	"internship-assistant/internal/chat"
	"internship-assistant/internal/model"
	"internship-assistant/pkg/llmprovider"
	"internship-assistant/pkg/log"
)

type mockCompleter struct {
	reply  string
	err    error
	system string
	user   string
	opts   llmprovider.CompletionOptions
}

func (m *mockCompleter) Complete(ctx context.Context, system, user string, opts llmprovider.CompletionOptions) (string, error) {
	m.system, m.user, m.opts = system, user, opts
	return m.reply, m.err
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  model.Intent
	}{
		{name: "exact label", reply: "top_technologies", want: model.IntentTopTechnologies},
		{name: "padded and quoted", reply: "  \"Skill_Availability\"\n", want: model.IntentSkillAvailability},
		{name: "backticks", reply: "`partnership_intel`", want: model.IntentPartnershipIntel},
		{name: "chatty reply", reply: "The intent is talent_search", want: model.IntentGeneral},
		{name: "unknown label", reply: "weather", want: model.IntentGeneral},
		{name: "empty", reply: "", want: model.IntentGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			llm := &mockCompleter{reply: tt.reply}
			r := New(llm, llmprovider.CompletionOptions{}, log.NewNop())

			got, err := r.Classify(context.Background(), "What technologies are hot?", nil)
			if err != nil {
				t.Fatalf("Classify() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Classify() = %q, want %q", got, tt.want)
			}
			if llm.user != "Query: What technologies are hot?" {
				t.Errorf("user message = %q", llm.user)
			}
			if llm.opts.Temperature == nil || *llm.opts.Temperature != 0.2 || llm.opts.MaxTokens != 30 {
				t.Errorf("opts = %+v, want defaults", llm.opts)
			}
		})
	}
}

func TestNew_ExplicitZeroTemperatureIsKept(t *testing.T) {
	llm := &mockCompleter{reply: "general"}
	r := New(llm, llmprovider.CompletionOptions{Temperature: lo.ToPtr(0.0)}, log.NewNop())

	if _, err := r.Classify(context.Background(), "hi", nil); err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	if llm.opts.Temperature == nil || *llm.opts.Temperature != 0 {
		t.Errorf("temperature = %v, want explicit 0", llm.opts.Temperature)
	}
}

func TestClassify_LLMFailure(t *testing.T) {
	r := New(&mockCompleter{err: errors.New("timeout")}, llmprovider.CompletionOptions{}, log.NewNop())

	got, err := r.Classify(context.Background(), "hi", nil)
	if got != model.IntentGeneral {
		t.Errorf("Classify() = %q, want general", got)
	}
	var ce *chat.ClassificationError
	if !errors.As(err, &ce) {
		t.Fatalf("error = %v, want *chat.ClassificationError", err)
	}
}

func TestBuildSystemPrompt(t *testing.T) {
	t.Run("lists every label", func(t *testing.T) {
		prompt := BuildSystemPrompt(nil)
		for _, i := range model.AllIntents() {
			if !strings.Contains(prompt, "- "+string(i)+":") {
				t.Errorf("prompt missing definition for %s", i)
			}
		}
		if strings.Contains(prompt, "Recent conversation") {
			t.Error("empty history should not add a conversation block")
		}
	})

	t.Run("keeps the last two turns", func(t *testing.T) {
		prompt := BuildSystemPrompt([]model.Turn{
			{Role: "user", Content: "first"},
			{Role: "assistant", Content: "second"},
			{Content: "third"},
		})
		if strings.Contains(prompt, "first") {
			t.Error("older turns should be dropped")
		}
		if !strings.HasSuffix(prompt, "\nRecent conversation:\nassistant: second\nuser: third\n") {
			t.Errorf("unexpected history block:\n%s", prompt)
		}
	})
}
