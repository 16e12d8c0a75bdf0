package http

import (
	"strings"

	"github.com/gin-gonic/gin"

	"internship-assistant/pkg/response"
)

// Chat godoc
// @Summary     Ask the assistant
// @Description Answers one question for a seeker, company or university, grounded in platform data.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Question, role and recent conversation"
// @Success     200  {object} chatResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     503  {object} response.Resp "Chat not configured"
// @Router      /api/v1/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	if h.uc == nil {
		response.Error(c, errChatDisabled, nil)
		return
	}

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, h.orBadRequest(err), nil)
		return
	}

	output, err := h.uc.GetResponse(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.GetResponse: %v", err)
		if mapped := h.mapError(err); mapped != nil {
			response.Error(c, mapped, nil)
			return
		}
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newChatResp(req, output, h.now()))
}

// Classify godoc
// @Summary     Classify a question
// @Description Returns only the intent the classifier picks. Debug aid.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body classifyReq true "Question and recent conversation"
// @Success     200  {object} classifyResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     503  {object} response.Resp "Classifier not configured"
// @Router      /api/v1/chat/classify [POST]
func (h *handler) Classify(c *gin.Context) {
	ctx := c.Request.Context()

	if h.router == nil {
		response.Error(c, errChatDisabled, nil)
		return
	}

	req, err := h.processClassifyReq(c)
	if err != nil {
		response.Error(c, h.orBadRequest(err), nil)
		return
	}

	// A failed classification still yields general, which is what the pipeline would use.
	intent, err := h.router.Classify(ctx, strings.TrimSpace(req.Message), req.history())
	if err != nil {
		h.l.Warnf(ctx, "router.Classify: %v", err)
	}

	response.OK(c, classifyResp{Intent: string(intent)})
}

func (h *handler) orBadRequest(err error) error {
	if mapped := h.mapError(err); mapped != nil {
		return mapped
	}
	return err
}
