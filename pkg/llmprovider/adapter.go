package llmprovider

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"internship-assistant/pkg/deepseek"
	"internship-assistant/pkg/gemini"
)

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	temp := req.Temperature
	geminiReq := gemini.GenerateRequest{
		SystemInstruction: convertToGeminiContent(req.SystemInstruction),
		Contents:          convertToGeminiContents(req.Messages),
		GenerationConfig: &gemini.GenerationConfig{
			Temperature:     &temp,
			MaxOutputTokens: req.MaxTokens,
		},
	}
	if len(req.Tools) > 0 {
		geminiReq.Tools = []gemini.Tool{{FunctionDeclarations: convertToGeminiTools(req.Tools)}}
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		return nil, err
	}

	out := &Response{
		Content:      Message{Role: "assistant"},
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage:        &Usage{},
	}
	if len(resp.Candidates) > 0 {
		out.Content = convertFromGeminiContent(resp.Candidates[0].Content)
	}
	if resp.UsageMetadata != nil {
		out.Usage = &Usage{
			InputTokens:  resp.UsageMetadata.PromptTokenCount,
			OutputTokens: resp.UsageMetadata.CandidatesTokenCount,
			TotalTokens:  resp.UsageMetadata.TotalTokenCount,
		}
	}
	return out, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

// Conversion helpers for Gemini

func geminiRole(role string) string {
	switch role {
	case "assistant", "model":
		return "model"
	case "function", "tool":
		return "function"
	default:
		return "user"
	}
}

func convertToGeminiContent(msg *Message) *gemini.Content {
	if msg == nil {
		return nil
	}
	parts := make([]gemini.Part, len(msg.Parts))
	for i, p := range msg.Parts {
		parts[i] = gemini.Part{Text: p.Text}
		if p.FunctionCall != nil {
			parts[i].FunctionCall = &gemini.FunctionCall{
				Name: p.FunctionCall.Name,
				Args: p.FunctionCall.Args,
			}
		}
		if p.FunctionResponse != nil {
			parts[i].FunctionResponse = &gemini.FunctionResponse{
				Name:     p.FunctionResponse.Name,
				Response: map[string]interface{}{"result": p.FunctionResponse.Response},
			}
		}
	}
	return &gemini.Content{Parts: parts}
}

func convertToGeminiContents(msgs []Message) []gemini.Content {
	contents := make([]gemini.Content, 0, len(msgs))
	for i := range msgs {
		c := convertToGeminiContent(&msgs[i])
		c.Role = geminiRole(msgs[i].Role)
		contents = append(contents, *c)
	}
	return contents
}

func convertToGeminiTools(tools []Tool) []gemini.FunctionDeclaration {
	decls := make([]gemini.FunctionDeclaration, len(tools))
	for i, t := range tools {
		decls[i] = gemini.FunctionDeclaration{
			Name:        t.Name,
			Description: t.Description,
			Parameters:  t.Parameters,
		}
	}
	return decls
}

func convertFromGeminiContent(content gemini.Content) Message {
	parts := make([]Part, len(content.Parts))
	for i, p := range content.Parts {
		parts[i] = Part{Text: p.Text}
		if p.FunctionCall != nil {
			parts[i].FunctionCall = &FunctionCall{
				Name: p.FunctionCall.Name,
				Args: p.FunctionCall.Args,
			}
		}
	}
	return Message{Role: "assistant", Parts: parts}
}

// OpenAIAdapter adapts pkg/deepseek, an OpenAI-compatible client, to the Provider interface.
// The same adapter serves DeepSeek and Qwen under different names.
type OpenAIAdapter struct {
	name   string
	client deepseek.IDeepSeek
}

// NewOpenAIAdapter creates an adapter reported under name.
func NewOpenAIAdapter(name string, client deepseek.IDeepSeek) *OpenAIAdapter {
	return &OpenAIAdapter{name: name, client: client}
}

// GenerateContent implements Provider interface
func (a *OpenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	temp := req.Temperature
	dsReq := &deepseek.Request{
		Messages:    convertToOpenAIMessages(req.Messages),
		Temperature: &temp,
		MaxTokens:   req.MaxTokens,
	}

	if req.SystemInstruction != nil && len(req.SystemInstruction.Parts) > 0 {
		systemMsg := deepseek.Message{
			Role:    "system",
			Content: joinText(req.SystemInstruction.Parts),
		}
		dsReq.Messages = append([]deepseek.Message{systemMsg}, dsReq.Messages...)
	}

	if len(req.Tools) > 0 {
		dsReq.Tools = convertToOpenAITools(req.Tools)
	}

	resp, err := a.client.GenerateContent(ctx, dsReq)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", a.name, err)
	}

	return convertFromOpenAIResponse(a.name, resp), nil
}

// Name returns the provider name
func (a *OpenAIAdapter) Name() string {
	return a.name
}

// Model returns the model name
func (a *OpenAIAdapter) Model() string {
	return a.client.Model()
}

// Conversion helpers for OpenAI-compatible APIs

func joinText(parts []Part) string {
	texts := make([]string, 0, len(parts))
	for _, p := range parts {
		if p.Text != "" {
			texts = append(texts, p.Text)
		}
	}
	return strings.Join(texts, "\n")
}

func toolCallID(name string) string {
	return "call_" + name
}

func convertToOpenAIMessages(msgs []Message) []deepseek.Message {
	messages := make([]deepseek.Message, 0, len(msgs))
	for _, msg := range msgs {
		dsMsg := deepseek.Message{
			Role:    msg.Role,
			Content: joinText(msg.Parts),
		}
		if dsMsg.Role == "model" {
			dsMsg.Role = "assistant"
		}

		for _, p := range msg.Parts {
			if p.FunctionCall != nil {
				argsJSON, _ := json.Marshal(p.FunctionCall.Args)
				dsMsg.Role = "assistant"
				dsMsg.ToolCalls = append(dsMsg.ToolCalls, deepseek.ToolCall{
					ID:   toolCallID(p.FunctionCall.Name),
					Type: "function",
					Function: deepseek.FunctionCall{
						Name:      p.FunctionCall.Name,
						Arguments: string(argsJSON),
					},
				})
			}
		}

		// One tool message per function response; OpenAI-style APIs do not group them.
		responded := false
		for _, p := range msg.Parts {
			if p.FunctionResponse == nil {
				continue
			}
			responded = true
			responseJSON, _ := json.Marshal(p.FunctionResponse.Response)
			messages = append(messages, deepseek.Message{
				Role:       "tool",
				ToolCallID: toolCallID(p.FunctionResponse.Name),
				Name:       p.FunctionResponse.Name,
				Content:    string(responseJSON),
			})
		}
		if responded {
			continue
		}

		messages = append(messages, dsMsg)
	}
	return messages
}

func convertToOpenAITools(tools []Tool) []deepseek.Tool {
	dsTools := make([]deepseek.Tool, len(tools))
	for i, t := range tools {
		dsTools[i] = deepseek.Tool{
			Type: "function",
			Function: deepseek.FunctionDef{
				Name:        t.Name,
				Description: t.Description,
				Parameters:  t.Parameters,
			},
		}
	}
	return dsTools
}

func convertFromOpenAIResponse(name string, resp *deepseek.Response) *Response {
	out := &Response{
		Content:      Message{Role: "assistant", Parts: []Part{}},
		ProviderName: name,
		ModelName:    resp.Model,
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}
	if len(resp.Choices) == 0 {
		return out
	}

	choice := resp.Choices[0]
	if choice.Message.Content != "" {
		out.Content.Parts = append(out.Content.Parts, Part{Text: choice.Message.Content})
	}
	for _, tc := range choice.Message.ToolCalls {
		args := map[string]interface{}{}
		if tc.Function.Arguments != "" {
			_ = json.Unmarshal([]byte(tc.Function.Arguments), &args)
		}
		out.Content.Parts = append(out.Content.Parts, Part{
			FunctionCall: &FunctionCall{Name: tc.Function.Name, Args: args},
		})
	}
	return out
}
