package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"internship-assistant/internal/model"
	"internship-assistant/internal/talent"
	"internship-assistant/pkg/log"
	"internship-assistant/pkg/response"
)

type mockUseCase struct {
	talent.UseCase
	lastLimit int
	err       error
}

func (m *mockUseCase) TopTechnologies(ctx context.Context, limit int) ([]model.TechnologyStat, error) {
	m.lastLimit = limit
	if limit > 100 {
		return nil, talent.ErrInvalidLimit
	}
	return []model.TechnologyStat{{Technology: "React", PostCount: 2, CompanyCount: 1}, {Technology: "Go", PostCount: 1, CompanyCount: 1}}, m.err
}

func (m *mockUseCase) SkillDistribution(ctx context.Context, limit int) ([]model.SkillStat, error) {
	m.lastLimit = limit
	return []model.SkillStat{{Skill: "Python", SeekerCount: 4}}, m.err
}

func (m *mockUseCase) IndexStats(ctx context.Context) (talent.IndexStats, error) {
	return talent.IndexStats{Seekers: 3, Posts: 7}, m.err
}

func get(t *testing.T, uc talent.UseCase, path string) (*httptest.ResponseRecorder, response.Resp) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	RegisterRoutes(engine.Group("/api/v1"), New(log.NewNop(), uc))

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

	var resp response.Resp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestTechnologies(t *testing.T) {
	uc := &mockUseCase{}
	w, resp := get(t, uc, "/api/v1/statistics/technologies")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 10, uc.lastLimit)

	data := resp.Data.(map[string]any)
	assert.Equal(t, float64(3), data["total_posts"])
	first := data["technologies"].([]any)[0].(map[string]any)
	assert.Equal(t, "React", first["technology"])
	assert.Equal(t, 66.6, first["percentage"])

	w, _ = get(t, uc, "/api/v1/statistics/technologies?limit=500")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = get(t, uc, "/api/v1/statistics/technologies?limit=abc")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSkills(t *testing.T) {
	uc := &mockUseCase{}
	w, resp := get(t, uc, "/api/v1/statistics/skills?limit=3")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 3, uc.lastLimit)
	assert.Equal(t, float64(100), resp.Data.(map[string]any)["skills"].([]any)[0].(map[string]any)["percentage"])

	_, _ = get(t, uc, "/api/v1/statistics/skills")
	assert.Equal(t, 15, uc.lastLimit)
}

func TestIndexStats(t *testing.T) {
	w, resp := get(t, &mockUseCase{}, "/api/v1/rag/stats")
	require.Equal(t, http.StatusOK, w.Code)
	data := resp.Data.(map[string]any)
	assert.Equal(t, float64(10), data["total_points"])

	w, resp = get(t, &mockUseCase{err: errors.New("qdrant down")}, "/api/v1/rag/stats")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, response.DefaultErrorMessage, resp.Message)
}
