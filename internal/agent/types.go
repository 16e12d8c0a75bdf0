package agent

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/samber/lo"

	"internship-assistant/pkg/llmprovider"
)

// ErrToolNotFound is returned by Call for a name nothing was registered under.
var ErrToolNotFound = errors.New("tool not found")

// Tool is one read-only data capability the model may call.
type Tool interface {
	// Name is the function name the model calls.
	Name() string
	Description() string
	// Parameters is the JSON schema of the arguments.
	Parameters() map[string]interface{}
	Execute(ctx context.Context, params map[string]interface{}) (interface{}, error)
}

// ToolRegistry holds the tools offered to the model. It is filled once at startup and read-only afterwards.
type ToolRegistry struct {
	tools map[string]Tool
}

func NewToolRegistry() *ToolRegistry {
	return &ToolRegistry{tools: make(map[string]Tool)}
}

// Register adds tools. A later tool with the same name replaces the earlier one.
func (r *ToolRegistry) Register(tools ...Tool) {
	for _, tool := range tools {
		r.tools[tool.Name()] = tool
	}
}

func (r *ToolRegistry) Get(name string) (Tool, bool) {
	tool, ok := r.tools[name]
	return tool, ok
}

// List returns the tools ordered by name so the model sees a stable declaration order.
func (r *ToolRegistry) List() []Tool {
	tools := lo.Values(r.tools)
	sort.Slice(tools, func(i, j int) bool { return tools[i].Name() < tools[j].Name() })
	return tools
}

// Call runs the tool the model asked for.
func (r *ToolRegistry) Call(ctx context.Context, call *llmprovider.FunctionCall) (interface{}, error) {
	tool, ok := r.tools[call.Name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrToolNotFound, call.Name)
	}
	args := call.Args
	if args == nil {
		args = map[string]interface{}{}
	}
	return tool.Execute(ctx, args)
}

// ToFunctionDefinitions declares every tool in provider form.
func (r *ToolRegistry) ToFunctionDefinitions() []llmprovider.Tool {
	return lo.Map(r.List(), func(tool Tool, _ int) llmprovider.Tool {
		return llmprovider.Tool{
			Name:        tool.Name(),
			Description: tool.Description(),
			Parameters:  tool.Parameters(),
		}
	})
}
