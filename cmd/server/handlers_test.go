package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/xtding233/gridiron-sim/internal/config"
	"github.com/xtding233/gridiron-sim/internal/logging"
	"github.com/xtding233/gridiron-sim/internal/slate"
)

func newTestServer(t *testing.T, dir string) (*server, http.Handler) {
	t.Helper()
	s := newServer(config.NewLoader(dir), logging.Discard(), 2, health.NewServer())
	return s, s.routes([]string{"*"})
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func servingStatus(t *testing.T, hs *health.Server) healthpb.HealthCheckResponse_ServingStatus {
	t.Helper()
	resp, err := hs.Check(context.Background(), &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	return resp.Status
}

func TestHealthAndTeams(t *testing.T) {
	s, h := newTestServer(t, "../../configs")
	require.NoError(t, s.checkPresets())
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, servingStatus(t, s.health))

	rec := do(t, h, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)

	rec = do(t, h, http.MethodGet, "/teams", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var teams []teamResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &teams))
	require.Len(t, teams, 2)
	assert.Equal(t, "harbor-hawks", teams[0].ID)
	assert.Equal(t, "west_coast", teams[0].OffensiveScheme)
	assert.Equal(t, "ironridge-miners", teams[1].ID)
}

func TestSimulateGame(t *testing.T) {
	_, h := newTestServer(t, "../../configs")
	body := `{"home":"harbor-hawks","away":"ironridge-miners","quarterLength":300,"seed":42}`

	rec := do(t, h, http.MethodPost, "/games/simulate", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var got slate.GameSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.NotNil(t, got.Final)
	assert.True(t, got.Final.IsComplete)
	assert.Equal(t, uint64(42), got.Seed)
	assert.Len(t, got.Final.Plays, got.Plays)

	again := do(t, h, http.MethodPost, "/games/simulate", body)
	var second slate.GameSummary
	require.NoError(t, json.Unmarshal(again.Body.Bytes(), &second))
	assert.Equal(t, got.Score, second.Score)
}

func TestSimulateGameErrors(t *testing.T) {
	_, h := newTestServer(t, "../../configs")
	cases := []struct {
		name string
		body string
		code int
	}{
		{"bad json", `{"home":`, http.StatusBadRequest},
		{"unknown field", `{"home":"harbor-hawks","away":"ironridge-miners","bogus":1}`, http.StatusBadRequest},
		{"missing away", `{"home":"harbor-hawks"}`, http.StatusBadRequest},
		{"same team", `{"home":"harbor-hawks","away":"harbor-hawks"}`, http.StatusBadRequest},
		{"bad stakes", `{"home":"harbor-hawks","away":"ironridge-miners","stakes":"exhibition"}`, http.StatusBadRequest},
		{"unknown team", `{"home":"harbor-hawks","away":"ghosts"}`, http.StatusNotFound},
		{"path escape", `{"home":"../default","away":"harbor-hawks"}`, http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/games/simulate", tc.body)
			assert.Equal(t, tc.code, rec.Code)
			var e errResp
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &e))
			assert.NotEmpty(t, e.Err)
		})
	}
}

func TestSimulateWeekAdvances(t *testing.T) {
	s, h := newTestServer(t, "../../configs")
	body := `{"seed":9,"games":[{"home":"harbor-hawks","away":"ironridge-miners","quarterLength":300}]}`

	for want := 1; want <= 2; want++ {
		rec := do(t, h, http.MethodPost, "/weeks/simulate", body)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var got weekResp
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, want, got.Week)
		require.Len(t, got.Games, 1)
		assert.Empty(t, got.Games[0].Error)
		assert.Nil(t, got.Games[0].Final)
	}
	assert.Equal(t, 2, s.currentWeek().Number)
	assert.NotEmpty(t, s.currentWeek().Variance)

	rec := do(t, h, http.MethodPost, "/weeks/simulate", `{"games":[]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 2, s.currentWeek().Number)
}

func TestOdds(t *testing.T) {
	_, h := newTestServer(t, "../../configs")
	rec := do(t, h, http.MethodGet, "/matchups/odds?home=harbor-hawks&away=ironridge-miners&trials=12&seed=3&quarter_length=300", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var odds slate.Odds
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &odds))
	assert.Equal(t, 12, odds.Trials)
	assert.InDelta(t, 1.0, odds.HomeWinRate+odds.AwayWinRate+odds.TieRate, 1e-9)

	for _, q := range []string{"trials=0", "trials=abc", "trials=5000", "seed=-1"} {
		rec := do(t, h, http.MethodGet, "/matchups/odds?home=harbor-hawks&away=ironridge-miners&"+q, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, q)
	}
}

func TestReloadMarksNotServing(t *testing.T) {
	dir := t.TempDir()
	def, err := os.ReadFile("../../configs/default.yaml")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "default.yaml"), def, 0o644))

	s, _ := newTestServer(t, dir)
	s.reload()
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, servingStatus(t, s.health))

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "teams"), 0o755))
	for _, name := range []string{"harbor-hawks.yaml", "ironridge-miners.yaml"} {
		b, err := os.ReadFile(filepath.Join("../../configs/teams", name))
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "teams", name), b, 0o644))
	}
	s.reload()
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, servingStatus(t, s.health))
}
