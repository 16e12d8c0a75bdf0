package agent_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"internship-assistant/internal/agent"
	"internship-assistant/pkg/llmprovider"
)

type mockTool struct {
	name        string
	description string
	gotArgs     map[string]interface{}
	result      interface{}
	err         error
}

func (m *mockTool) Name() string        { return m.name }
func (m *mockTool) Description() string { return m.description }
func (m *mockTool) Parameters() map[string]interface{} {
	return map[string]interface{}{"type": "object"}
}
func (m *mockTool) Execute(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	m.gotArgs = args
	return m.result, m.err
}

func TestToolRegistry_Lookup(t *testing.T) {
	registry := agent.NewToolRegistry()
	registry.Register(&mockTool{name: "tool2", description: "desc2"}, &mockTool{name: "tool1", description: "desc1"})

	got, ok := registry.Get("tool1")
	require.True(t, ok)
	assert.Equal(t, "tool1", got.Name())

	_, ok = registry.Get("missing")
	assert.False(t, ok)

	tools := registry.List()
	require.Len(t, tools, 2)
	assert.Equal(t, "tool1", tools[0].Name())
	assert.Equal(t, "tool2", tools[1].Name())

	defs := registry.ToFunctionDefinitions()
	require.Len(t, defs, 2)
	assert.Equal(t, "tool1", defs[0].Name)
	assert.Equal(t, "desc1", defs[0].Description)
	assert.Equal(t, "object", defs[0].Parameters["type"])

	registry.Register(&mockTool{name: "tool1", description: "newer"})
	got, _ = registry.Get("tool1")
	assert.Equal(t, "newer", got.Description())
	assert.Len(t, registry.List(), 2)
}

func TestToolRegistry_Call(t *testing.T) {
	ctx := context.Background()

	t.Run("runs the named tool", func(t *testing.T) {
		tool := &mockTool{name: "count", result: 7}
		registry := agent.NewToolRegistry()
		registry.Register(tool)

		res, err := registry.Call(ctx, &llmprovider.FunctionCall{Name: "count", Args: map[string]interface{}{"skill": "go"}})
		require.NoError(t, err)
		assert.Equal(t, 7, res)
		assert.Equal(t, "go", tool.gotArgs["skill"])
	})

	t.Run("nil args become empty", func(t *testing.T) {
		tool := &mockTool{name: "count"}
		registry := agent.NewToolRegistry()
		registry.Register(tool)

		_, err := registry.Call(ctx, &llmprovider.FunctionCall{Name: "count"})
		require.NoError(t, err)
		assert.NotNil(t, tool.gotArgs)
	})

	t.Run("unknown tool", func(t *testing.T) {
		_, err := agent.NewToolRegistry().Call(ctx, &llmprovider.FunctionCall{Name: "nope"})
		assert.ErrorIs(t, err, agent.ErrToolNotFound)
	})

	t.Run("tool error passes through", func(t *testing.T) {
		boom := errors.New("boom")
		registry := agent.NewToolRegistry()
		registry.Register(&mockTool{name: "count", err: boom})

		_, err := registry.Call(ctx, &llmprovider.FunctionCall{Name: "count"})
		assert.ErrorIs(t, err, boom)
	})
}
