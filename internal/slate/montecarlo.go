package slate

import (
	"context"
	"errors"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

var ErrNoTrials = errors.New("trials must be positive")

// Stats summarizes one per-game metric across trials.
type Stats struct {
	Mean   float64 `json:"mean"`
	Var    float64 `json:"var"`
	StdDev float64 `json:"stdDev"`
	P10    float64 `json:"p10"`
	P50    float64 `json:"p50"`
	P90    float64 `json:"p90"`
}

// Odds is the outcome distribution of one matchup.
type Odds struct {
	Home   string `json:"home"`
	Away   string `json:"away"`
	Trials int    `json:"trials"`
	Failed int    `json:"failed"`

	HomeWinRate float64 `json:"homeWinRate"`
	AwayWinRate float64 `json:"awayWinRate"`
	TieRate     float64 `json:"tieRate"`

	HomeScore Stats `json:"homeScore"`
	AwayScore Stats `json:"awayScore"`
	// Margin is home minus away.
	Margin Stats `json:"margin"`
}

// calcStats computes mean, variance and percentiles for the samples.
func calcStats(xs []float64) Stats {
	if len(xs) == 0 {
		return Stats{}
	}
	cp := append([]float64(nil), xs...)
	sort.Float64s(cp)
	mean, variance := stat.MeanVariance(cp, nil)
	if len(cp) == 1 {
		variance = 0
	}
	return Stats{
		Mean:   mean,
		Var:    variance,
		StdDev: math.Sqrt(variance),
		P10:    stat.Quantile(0.10, stat.Empirical, cp, nil),
		P50:    stat.Quantile(0.50, stat.Empirical, cp, nil),
		P90:    stat.Quantile(0.90, stat.Empirical, cp, nil),
	}
}

// RunMonteCarlo plays the matchup trials times with fresh team states and
// reports win rates and score distributions. Failed trials are counted
// and left out of the rates.
func RunMonteCarlo(ctx context.Context, teams TeamSource, mu Matchup, trials int, week Week, opts Options) (Odds, error) {
	if trials <= 0 {
		return Odds{}, ErrNoTrials
	}
	mu.Config.GameID = ""
	games := make([]Matchup, trials)
	for i := range games {
		games[i] = mu
	}
	opts.KeepPlays = false

	summaries, err := RunSlate(ctx, teams, games, week, opts)
	if err != nil {
		return Odds{}, err
	}

	odds := Odds{Home: mu.Home, Away: mu.Away, Trials: trials}
	var home, away, margin []float64
	wins := map[string]int{}
	for _, s := range summaries {
		if s.Error != "" {
			odds.Failed++
			continue
		}
		wins[s.Winner]++
		home = append(home, float64(s.Score.Home))
		away = append(away, float64(s.Score.Away))
		margin = append(margin, float64(s.Score.Home-s.Score.Away))
	}
	if n := float64(len(home)); n > 0 {
		odds.HomeWinRate = float64(wins[mu.Home]) / n
		odds.AwayWinRate = float64(wins[mu.Away]) / n
		odds.TieRate = float64(wins[""]) / n
	}
	odds.HomeScore = calcStats(home)
	odds.AwayScore = calcStats(away)
	odds.Margin = calcStats(margin)
	return odds, nil
}
