package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"internship-assistant/internal/chat"
	"internship-assistant/internal/composer"
	"internship-assistant/internal/formatter"
	"internship-assistant/internal/model"
	"internship-assistant/internal/router"
	"internship-assistant/internal/talent/repository"
	"internship-assistant/pkg/llmprovider"
	"internship-assistant/pkg/log"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// scriptedLLM answers the classifier with label and echoes the grounded data
// back as the composed answer.
type scriptedLLM struct {
	label       string
	classifyErr error
	composeErr  error
	composed    int
}

func (s *scriptedLLM) Complete(ctx context.Context, system, user string, opts llmprovider.CompletionOptions) (string, error) {
	if strings.HasPrefix(system, "You are an intent classifier.") {
		return s.label, s.classifyErr
	}
	s.composed++
	if s.composeErr != nil {
		return "", s.composeErr
	}
	if i := strings.Index(system, "Data provided:\n"); i >= 0 {
		return "Here is what I found. " + system[i+len("Data provided:\n"):], nil
	}
	return "Open answer.", nil
}

type fakeData struct {
	repository.DataAccess
	techs     []model.TechnologyStat
	available int
	err       error
}

func (f *fakeData) TopTechnologies(ctx context.Context, limit int) ([]model.TechnologyStat, error) {
	return f.techs, f.err
}

func (f *fakeData) CountAvailableSeekersWithSkill(ctx context.Context, skill string) (int, error) {
	return f.available, f.err
}

// stalledData never answers; it returns only when ctx is done.
type stalledData struct {
	repository.DataAccess
}

func (stalledData) TopTechnologies(ctx context.Context, limit int) ([]model.TechnologyStat, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

type fakeSearch struct{}

func (fakeSearch) QuerySeekers(ctx context.Context, text string, limit int) ([]model.Seeker, error) {
	return nil, nil
}

type panickingFormatter struct{}

func (panickingFormatter) Format(ctx context.Context, intent model.Intent, text string, role model.Role) (formatter.Outcome, error) {
	panic("nil map write")
}

func newPipeline(llm *scriptedLLM, data repository.DataAccess) chat.UseCase {
	l := log.NewNop()
	return New(l,
		router.New(llm, llmprovider.CompletionOptions{}, l),
		formatter.New(data, fakeSearch{}, formatter.Options{}, l),
		composer.New(llm, llmprovider.CompletionOptions{}, l),
	)
}

func marketData() *fakeData {
	return &fakeData{techs: []model.TechnologyStat{
		{Technology: "React", PostCount: 40, CompanyCount: 10},
		{Technology: "Vue", PostCount: 10, CompanyCount: 5},
	}}
}

func TestGetResponse_TopTechnologies(t *testing.T) {
	uc := newPipeline(&scriptedLLM{label: "top_technologies"}, marketData())

	out, err := uc.GetResponse(context.Background(), chat.Input{Text: "What are the top technologies?", Role: model.RoleSeeker})
	require.NoError(t, err)
	assert.Equal(t, model.IntentTopTechnologies, out.Intent)
	assert.Contains(t, out.Response, "React")
	assert.Contains(t, out.Response, "80.0%")
	assert.NotContains(t, out.Response, formatter.NoDataText)
}

func TestGetResponse_Idempotent(t *testing.T) {
	uc := newPipeline(&scriptedLLM{label: "top_technologies"}, marketData())
	in := chat.Input{Text: "What are the top technologies?", Role: model.RoleUniversity}

	first, err := uc.GetResponse(context.Background(), in)
	require.NoError(t, err)
	second, err := uc.GetResponse(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestGetResponse_NoDataRefuses(t *testing.T) {
	llm := &scriptedLLM{label: "skill_availability"}
	uc := newPipeline(llm, &fakeData{})

	out, err := uc.GetResponse(context.Background(), chat.Input{Text: "How many React developers are there?", Role: model.RoleCompany})
	require.NoError(t, err)
	assert.Equal(t, chat.Output{Response: chat.MsgNoData, Intent: model.IntentSkillAvailability}, out)
	assert.Zero(t, llm.composed)
}

func TestGetResponse_ParameterMissing(t *testing.T) {
	llm := &scriptedLLM{label: "technology_details"}
	uc := newPipeline(llm, marketData())

	out, err := uc.GetResponse(context.Background(), chat.Input{Text: "How many posts are there?", Role: model.RoleSeeker})
	require.NoError(t, err)
	assert.Equal(t, chat.Output{Response: chat.MsgTechnologyHint, Intent: model.IntentTechnologyDetails}, out)
	assert.Zero(t, llm.composed)
}

func TestGetResponse_DataFetchFailure(t *testing.T) {
	uc := newPipeline(&scriptedLLM{label: "top_technologies"}, &fakeData{err: errors.New("dial tcp: connection refused")})

	out, err := uc.GetResponse(context.Background(), chat.Input{Text: "top tech?", Role: model.RoleSeeker})
	require.NoError(t, err)
	assert.Equal(t, chat.Output{Response: chat.MsgNoData, Intent: model.IntentTopTechnologies}, out)
}

func TestGetResponse_StalledDataTimesOut(t *testing.T) {
	l := log.NewNop()
	llm := &scriptedLLM{label: "top_technologies"}
	uc := New(l,
		router.New(llm, llmprovider.CompletionOptions{}, l),
		formatter.New(stalledData{}, fakeSearch{}, formatter.Options{FetchTimeout: 50 * time.Millisecond}, l),
		composer.New(llm, llmprovider.CompletionOptions{}, l),
	)

	done := make(chan struct{})
	var (
		out chat.Output
		err error
	)
	go func() {
		defer close(done)
		out, err = uc.GetResponse(context.Background(), chat.Input{Text: "What are the top technologies?", Role: model.RoleSeeker})
	}()

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("GetResponse did not return after the fetch timeout")
	}
	require.NoError(t, err)
	assert.Equal(t, chat.Output{Response: chat.MsgNoData, Intent: model.IntentTopTechnologies}, out)
	assert.Zero(t, llm.composed)
}

func TestGetResponse_ClassificationFailureFallsBackToGeneral(t *testing.T) {
	llm := &scriptedLLM{classifyErr: errors.New("rate limited")}
	uc := newPipeline(llm, marketData())

	out, err := uc.GetResponse(context.Background(), chat.Input{Text: "hi there", Role: model.RoleSeeker})
	require.NoError(t, err)
	assert.Equal(t, chat.Output{Response: "Open answer.", Intent: model.IntentGeneral}, out)
}

func TestGetResponse_CompositionFailure(t *testing.T) {
	uc := newPipeline(&scriptedLLM{label: "top_technologies", composeErr: errors.New("upstream 502: secret-host")}, marketData())

	out, err := uc.GetResponse(context.Background(), chat.Input{Text: "top tech?", Role: model.RoleSeeker})
	require.NoError(t, err)
	assert.Equal(t, model.IntentError, out.Intent)
	assert.True(t, strings.HasPrefix(out.Response, chat.MsgErrorPrefix))
	assert.NotContains(t, out.Response, "secret-host")
}

func TestGetResponse_RecoversPanic(t *testing.T) {
	l := log.NewNop()
	llm := &scriptedLLM{label: "general"}
	uc := New(l, router.New(llm, llmprovider.CompletionOptions{}, l), panickingFormatter{}, composer.New(llm, llmprovider.CompletionOptions{}, l))

	out, err := uc.GetResponse(context.Background(), chat.Input{Text: "hello", Role: model.RoleSeeker})
	require.NoError(t, err)
	assert.Equal(t, chat.ErrorOutput(chat.CauseInternal), out)
}

func TestGetResponse_CallerErrors(t *testing.T) {
	uc := newPipeline(&scriptedLLM{label: "general"}, marketData())

	_, err := uc.GetResponse(context.Background(), chat.Input{Text: "   ", Role: model.RoleSeeker})
	assert.ErrorIs(t, err, chat.ErrEmptyQuestion)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	out, err := uc.GetResponse(ctx, chat.Input{Text: "hello", Role: model.RoleSeeker})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, model.IntentError, out.Intent)
}
