// Package slate runs many independent games at once: a week's schedule or
// repeated trials of one matchup.
package slate

import (
	"context"
	"fmt"
	"runtime"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/xtding233/gridiron-sim/internal/football"
	"github.com/xtding233/gridiron-sim/internal/game"
	"github.com/xtding233/gridiron-sim/internal/logging"
	"github.com/xtding233/gridiron-sim/internal/rng"
)

// seedStride spreads per-game seeds derived from one base seed.
const seedStride = 0x9E3779B97F4A7C15

// TeamSource builds a fresh game state for a team id on every call.
type TeamSource interface {
	Team(id string) (*football.TeamGameState, error)
}

type Matchup struct {
	Home   string      `json:"home"`
	Away   string      `json:"away"`
	Config game.Config `json:"-"`
}

type Options struct {
	// Workers bounds concurrent games; GOMAXPROCS when <= 0.
	Workers int
	// Seed makes the slate reproducible: game i uses a seed derived from it.
	// Zero draws a fresh seed per game.
	Seed uint64
	// KeepPlays keeps each game's full final state in its summary.
	KeepPlays bool
	Logger    *logrus.Logger
}

// GameSummary reports one game. A game that failed carries Error and
// leaves the rest of the slate untouched.
type GameSummary struct {
	GameID   string      `json:"gameId"`
	Home     string      `json:"home"`
	Away     string      `json:"away"`
	Score    game.Score  `json:"score"`
	Winner   string      `json:"winner,omitempty"`
	Overtime bool        `json:"overtime"`
	Plays    int         `json:"plays"`
	Seed     uint64      `json:"seed"`
	Error    string      `json:"error,omitempty"`
	Final    *game.State `json:"final,omitempty"`
}

// RunSlate plays every matchup with its own machine and random stream.
// Only cancellation of ctx fails the whole slate.
func RunSlate(ctx context.Context, teams TeamSource, games []Matchup, week Week, opts Options) ([]GameSummary, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	log := opts.Logger
	if log == nil {
		log = logging.Discard()
	}

	out := make([]GameSummary, len(games))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, mu := range games {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			seed, err := gameSeed(opts.Seed, i)
			if err != nil {
				out[i] = GameSummary{Home: mu.Home, Away: mu.Away, Error: err.Error()}
				return nil
			}
			out[i] = play(teams, mu, week, seed, opts.KeepPlays, log)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return out, fmt.Errorf("run slate: %w", err)
	}

	failed := 0
	for _, s := range out {
		if s.Error != "" {
			failed++
		}
	}
	log.WithFields(logrus.Fields{
		"games":  len(games),
		"failed": failed,
		"week":   week.Number,
	}).Info("slate complete")
	return out, nil
}

func gameSeed(base uint64, i int) (uint64, error) {
	if base == 0 {
		return rng.NewSeed()
	}
	return base + uint64(i)*seedStride, nil
}

func play(teams TeamSource, mu Matchup, week Week, seed uint64, keep bool, log *logrus.Logger) GameSummary {
	s := GameSummary{Home: mu.Home, Away: mu.Away, Seed: seed}
	home, err := teams.Team(mu.Home)
	if err != nil {
		s.Error = err.Error()
		return s
	}
	away, err := teams.Team(mu.Away)
	if err != nil {
		s.Error = err.Error()
		return s
	}
	week.Apply(home)
	week.Apply(away)

	cfg := mu.Config
	cfg.Logger = log
	m, err := game.NewMachine(home, away, cfg, rng.NewSeededRNG(seed))
	if err != nil {
		s.Error = err.Error()
		return s
	}
	st, err := m.SimulateToEnd()
	s.GameID = st.GameID
	s.Score = st.Score
	s.Plays = len(st.Plays)
	s.Overtime = st.Clock.Quarter > 4
	switch st.Winner() {
	case football.Home:
		s.Winner = st.HomeTeam
	case football.Away:
		s.Winner = st.AwayTeam
	}
	if err != nil {
		s.Error = err.Error()
	}
	if keep {
		s.Final = &st
	}
	return s
}
