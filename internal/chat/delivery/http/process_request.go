package http

import (
	"strings"

	"github.com/gin-gonic/gin"

	"internship-assistant/internal/chat"
)

// processChatReq binds and validates the chat request body.
func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errInvalidBody
	}
	if strings.TrimSpace(req.Message) == "" {
		return req, chat.ErrEmptyQuestion
	}
	if err := h.validate.Struct(req); err != nil {
		return req, validationError(err)
	}
	return req, nil
}

// processClassifyReq binds and validates the classify request body.
func (h *handler) processClassifyReq(c *gin.Context) (classifyReq, error) {
	var req classifyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errInvalidBody
	}
	if strings.TrimSpace(req.Message) == "" {
		return req, chat.ErrEmptyQuestion
	}
	if err := h.validate.Struct(req); err != nil {
		return req, validationError(err)
	}
	return req, nil
}
