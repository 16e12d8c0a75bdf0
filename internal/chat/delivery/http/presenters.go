package http

import (
	"strings"
	"time"

	"internship-assistant/internal/chat"
	"internship-assistant/internal/model"
	"internship-assistant/pkg/response"
)

// --- Request DTOs ---

type turnReq struct {
	Role    string `json:"role"    validate:"max=32"`
	Content string `json:"content" validate:"max=4000"`
}

type chatReq struct {
	Message             string    `json:"message"              validate:"required,max=2000"`
	UserRole            string    `json:"user_role"            validate:"required,oneof=seeker company university"`
	UserID              string    `json:"user_id"              validate:"max=128"`
	ConversationHistory []turnReq `json:"conversation_history" validate:"max=50,dive"`
}

func (r chatReq) toInput() chat.Input {
	history := make([]model.Turn, 0, len(r.ConversationHistory))
	for _, t := range r.ConversationHistory {
		history = append(history, model.Turn{Role: t.Role, Content: t.Content})
	}
	return chat.Input{
		Text:    strings.TrimSpace(r.Message),
		Role:    model.Role(r.UserRole),
		History: history,
	}
}

type classifyReq struct {
	Message             string    `json:"message"              validate:"required,max=2000"`
	ConversationHistory []turnReq `json:"conversation_history" validate:"max=50,dive"`
}

func (r classifyReq) history() []model.Turn {
	history := make([]model.Turn, 0, len(r.ConversationHistory))
	for _, t := range r.ConversationHistory {
		history = append(history, model.Turn{Role: t.Role, Content: t.Content})
	}
	return history
}

// --- Response DTOs ---

type chatResp struct {
	Response  string            `json:"response"`
	Intent    string            `json:"intent"`
	UserID    string            `json:"user_id,omitempty"`
	Timestamp response.DateTime `json:"timestamp"`
}

func (h *handler) newChatResp(req chatReq, out chat.Output, at time.Time) chatResp {
	return chatResp{
		Response:  out.Response,
		Intent:    string(out.Intent),
		UserID:    req.UserID,
		Timestamp: response.DateTime(at),
	}
}

type classifyResp struct {
	Intent string `json:"intent"`
}
