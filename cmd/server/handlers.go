package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/xtding233/gridiron-sim/internal/config"
	"github.com/xtding233/gridiron-sim/internal/football"
	"github.com/xtding233/gridiron-sim/internal/rng"
	"github.com/xtding233/gridiron-sim/internal/slate"
)

const (
	maxTrials     = 2000
	defaultTrials = 200
	maxSlateGames = 64
)

type errResp struct {
	Err string `json:"err"`
}

type gameRequest struct {
	Home          string            `json:"home"`
	Away          string            `json:"away"`
	QuarterLength *int              `json:"quarterLength,omitempty"`
	Stakes        *string           `json:"stakes,omitempty"`
	Weather       *football.Weather `json:"weather,omitempty"`
	Playoff       *bool             `json:"playoff,omitempty"`
	Seed          *uint64           `json:"seed,omitempty"`
}

type weekRequest struct {
	Games []gameRequest `json:"games"`
	Seed  *uint64       `json:"seed,omitempty"`
}

type weekResp struct {
	Week  int                 `json:"week"`
	Games []slate.GameSummary `json:"games"`
}

type teamResp struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	OffensiveScheme string `json:"offensiveScheme"`
	DefensiveScheme string `json:"defensiveScheme"`
}

type server struct {
	loader  *config.Loader
	log     *logrus.Logger
	workers int
	health  *health.Server

	mu   sync.Mutex
	week slate.Week
}

func newServer(loader *config.Loader, log *logrus.Logger, workers int, hs *health.Server) *server {
	return &server{loader: loader, log: log, workers: workers, health: hs}
}

func (s *server) routes(origins []string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", s.handleHealth)
	r.Get("/teams", s.handleTeams)
	r.Post("/games/simulate", s.handleSimulateGame)
	r.Post("/weeks/simulate", s.handleSimulateWeek)
	r.Get("/matchups/odds", s.handleOdds)
	return r
}

// checkPresets builds every team once and reports the result to the
// health service.
func (s *server) checkPresets() error {
	status := healthpb.HealthCheckResponse_SERVING
	err := s.validatePresets()
	if err != nil {
		status = healthpb.HealthCheckResponse_NOT_SERVING
		s.log.WithError(err).Error("team presets failed to load")
	}
	if s.health != nil {
		s.health.SetServingStatus("", status)
	}
	return err
}

func (s *server) validatePresets() error {
	ids, err := s.loader.TeamIDs()
	if err != nil {
		return err
	}
	if len(ids) < 2 {
		return errors.New("at least two team presets are required")
	}
	for _, id := range ids {
		if _, err := s.loader.Team(id); err != nil {
			return err
		}
	}
	return nil
}

func (s *server) reload() {
	s.loader.Invalidate()
	if err := s.checkPresets(); err == nil {
		s.log.Info("team presets reloaded")
	}
}

func (s *server) currentWeek() slate.Week {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.week
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, config.ErrUnknownTeam):
		code = http.StatusNotFound
	case errors.Is(err, errBadRequest):
		code = http.StatusBadRequest
	case errors.Is(err, config.ErrInvalidConfig), errors.Is(err, football.ErrInvalidRoster):
		code = http.StatusUnprocessableEntity
	case errors.Is(err, context.Canceled):
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, errResp{Err: err.Error()})
}

var errBadRequest = errors.New("bad request")

func badRequest(msg string) error {
	return fmt.Errorf("%w: %s", errBadRequest, msg)
}

func parseInt(r *http.Request, key string) (int, bool, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return 0, false, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false, badRequest("invalid " + key)
	}
	return n, true, nil
}

func parseUint(r *http.Request, key string) (*uint64, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return nil, nil
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return nil, badRequest("invalid " + key)
	}
	return &n, nil
}

// matchup resolves a request against the home team's preset.
func (s *server) matchup(g gameRequest) (slate.Matchup, error) {
	if g.Home == "" || g.Away == "" {
		return slate.Matchup{}, badRequest("home and away are required")
	}
	if g.Home == g.Away {
		return slate.Matchup{}, badRequest("a team cannot play itself")
	}
	if g.Stakes != nil && !football.Stakes(*g.Stakes).Valid() {
		return slate.Matchup{}, badRequest("unknown stakes " + *g.Stakes)
	}
	if g.QuarterLength != nil && *g.QuarterLength <= 0 {
		return slate.Matchup{}, badRequest("quarterLength must be positive")
	}
	raw, err := s.loader.LoadMerged(g.Home)
	if err != nil {
		return slate.Matchup{}, err
	}
	if _, err := s.loader.LoadMerged(g.Away); err != nil {
		return slate.Matchup{}, err
	}
	o := config.GameOverrides{
		QuarterLength: g.QuarterLength,
		Stakes:        g.Stakes,
		Weather:       g.Weather,
		Playoff:       g.Playoff,
	}
	return slate.Matchup{Home: g.Home, Away: g.Away, Config: config.ResolveGame(raw, o)}, nil
}

func (s *server) slateOptions(seed *uint64, keep bool) slate.Options {
	o := slate.Options{Workers: s.workers, KeepPlays: keep, Logger: s.log}
	if seed != nil {
		o.Seed = *seed
	}
	return o
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	ids, err := s.loader.TeamIDs()
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "teams": len(ids), "week": s.currentWeek().Number})
}

func (s *server) handleTeams(w http.ResponseWriter, r *http.Request) {
	ids, err := s.loader.TeamIDs()
	if err != nil {
		writeErr(w, err)
		return
	}
	out := make([]teamResp, 0, len(ids))
	for _, id := range ids {
		raw, err := s.loader.LoadMerged(id)
		if err != nil {
			writeErr(w, err)
			return
		}
		t := teamResp{ID: id}
		if raw.Team != nil {
			t.Name = raw.Team.Name
			t.OffensiveScheme = raw.Team.OffensiveScheme
			t.DefensiveScheme = raw.Team.DefensiveScheme
		}
		out = append(out, t)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *server) handleSimulateGame(w http.ResponseWriter, r *http.Request) {
	var req gameRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeErr(w, badRequest("invalid body: "+err.Error()))
		return
	}
	mu, err := s.matchup(req)
	if err != nil {
		writeErr(w, err)
		return
	}
	out, err := slate.RunSlate(r.Context(), s.loader, []slate.Matchup{mu}, s.currentWeek(), s.slateOptions(req.Seed, true))
	if err != nil {
		writeErr(w, err)
		return
	}
	code := http.StatusOK
	if out[0].Error != "" {
		code = http.StatusInternalServerError
	}
	writeJSON(w, code, out[0])
}

// handleSimulateWeek rolls the next week of form for every team on the
// slate, then plays the games.
func (s *server) handleSimulateWeek(w http.ResponseWriter, r *http.Request) {
	var req weekRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeErr(w, badRequest("invalid body: "+err.Error()))
		return
	}
	if len(req.Games) == 0 || len(req.Games) > maxSlateGames {
		writeErr(w, badRequest("games must list 1 to "+strconv.Itoa(maxSlateGames)+" matchups"))
		return
	}

	games := make([]slate.Matchup, 0, len(req.Games))
	seen := map[string]bool{}
	var players []*football.Player
	for _, g := range req.Games {
		mu, err := s.matchup(g)
		if err != nil {
			writeErr(w, err)
			return
		}
		games = append(games, mu)
		for _, id := range []string{g.Home, g.Away} {
			if seen[id] {
				continue
			}
			seen[id] = true
			t, err := s.loader.Team(id)
			if err != nil {
				writeErr(w, err)
				return
			}
			players = append(players, t.Roster()...)
		}
	}

	src := rng.DefaultRNG()
	if req.Seed != nil {
		src = rng.NewSeededRNG(*req.Seed)
	}
	s.mu.Lock()
	s.week = slate.AdvanceWeek(s.week, players, src)
	week := s.week
	s.mu.Unlock()

	out, err := slate.RunSlate(r.Context(), s.loader, games, week, s.slateOptions(req.Seed, false))
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, weekResp{Week: week.Number, Games: out})
}

func (s *server) handleOdds(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := gameRequest{Home: q.Get("home"), Away: q.Get("away")}
	if v := q.Get("stakes"); v != "" {
		req.Stakes = &v
	}
	ql, ok, err := parseInt(r, "quarter_length")
	if err != nil {
		writeErr(w, err)
		return
	}
	if ok {
		req.QuarterLength = &ql
	}
	trials, ok, err := parseInt(r, "trials")
	if err != nil {
		writeErr(w, err)
		return
	}
	if !ok {
		trials = defaultTrials
	}
	if trials <= 0 || trials > maxTrials {
		writeErr(w, badRequest("trials must be in 1.."+strconv.Itoa(maxTrials)))
		return
	}
	seed, err := parseUint(r, "seed")
	if err != nil {
		writeErr(w, err)
		return
	}

	mu, err := s.matchup(req)
	if err != nil {
		writeErr(w, err)
		return
	}
	odds, err := slate.RunMonteCarlo(r.Context(), s.loader, mu, trials, s.currentWeek(), s.slateOptions(seed, false))
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, odds)
}
