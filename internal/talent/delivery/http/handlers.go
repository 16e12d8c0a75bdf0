package http

import (
	"github.com/gin-gonic/gin"

	"internship-assistant/pkg/response"
)

const (
	defaultTechnologyLimit = 10
	defaultSkillLimit      = 15
)

// Technologies godoc
// @Summary     Top technologies
// @Description Technologies ranked by internship post count, with share of all listed posts.
// @Tags        Statistics
// @Produce     json
// @Param       limit query int false "Number of technologies (default 10, max 100)"
// @Success     200 {object} technologiesResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/statistics/technologies [GET]
func (h *handler) Technologies(c *gin.Context) {
	ctx := c.Request.Context()

	var req limitReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, errInvalidLimit, nil)
		return
	}

	stats, err := h.uc.TopTechnologies(ctx, req.limitOr(defaultTechnologyLimit))
	if err != nil {
		h.fail(c, "uc.TopTechnologies", err)
		return
	}

	response.OK(c, h.newTechnologiesResp(stats))
}

// Skills godoc
// @Summary     Skill distribution
// @Description Skills ranked by how many seekers list them.
// @Tags        Statistics
// @Produce     json
// @Param       limit query int false "Number of skills (default 15, max 100)"
// @Success     200 {object} skillsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/statistics/skills [GET]
func (h *handler) Skills(c *gin.Context) {
	ctx := c.Request.Context()

	var req limitReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, errInvalidLimit, nil)
		return
	}

	stats, err := h.uc.SkillDistribution(ctx, req.limitOr(defaultSkillLimit))
	if err != nil {
		h.fail(c, "uc.SkillDistribution", err)
		return
	}

	response.OK(c, h.newSkillsResp(stats))
}

// IndexStats godoc
// @Summary     Semantic index stats
// @Description Number of indexed points per collection.
// @Tags        RAG
// @Produce     json
// @Success     200 {object} indexStatsResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/rag/stats [GET]
func (h *handler) IndexStats(c *gin.Context) {
	ctx := c.Request.Context()

	stats, err := h.uc.IndexStats(ctx)
	if err != nil {
		h.fail(c, "uc.IndexStats", err)
		return
	}

	response.OK(c, h.newIndexStatsResp(stats))
}

func (h *handler) fail(c *gin.Context, op string, err error) {
	if mapped := h.mapError(err); mapped != nil {
		response.Error(c, mapped, nil)
		return
	}
	h.l.Errorf(c.Request.Context(), "%s: %v", op, err)
	response.InternalError(c, err)
}
