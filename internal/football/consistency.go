package football

// ConsistencyTier sets how far a player's week-to-week form can swing.
type ConsistencyTier string

const (
	TierMetronome ConsistencyTier = "metronome"
	TierSteady    ConsistencyTier = "steady"
	TierAverage   ConsistencyTier = "average"
	TierStreaky   ConsistencyTier = "streaky"
	TierVolatile  ConsistencyTier = "volatile"
	TierChaotic   ConsistencyTier = "chaotic"
)

type StreakState string

const (
	StreakHot     StreakState = "hot"
	StreakCold    StreakState = "cold"
	StreakNeutral StreakState = "neutral"
)

// ConsistencyProfile is owned by the roster layer and advanced once per
// simulated week.
type ConsistencyProfile struct {
	Tier                 ConsistencyTier
	CurrentStreak        StreakState
	StreakGamesRemaining int
}
