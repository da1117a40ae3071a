// Package resolve turns one call into one fully resolved PlayResult:
// composite ratings, outcome table, draw, credit and down-and-distance.
package resolve

import (
	"errors"

	"github.com/xtding233/gridiron-sim/internal/football"
	"github.com/xtding233/gridiron-sim/internal/playcall"
)

var ErrUnsupportedPlay = errors.New("play type cannot be resolved here")

// Context is the situation a play is resolved in. Situation is from the
// offense's point of view.
type Context struct {
	Situation football.Situation
	Weather   football.Weather
	Stakes    football.Stakes
}

// Calls pairs both sides' decisions for one snap.
type Calls struct {
	Offense playcall.OffensiveCall
	Defense playcall.DefensiveCall
}

// offenseUnit is the eleven an offense puts on the field.
type offenseUnit struct {
	qb        *football.Player
	backs     []*football.Player
	receivers []*football.Player // three wideouts, a tight end and the lead back
	line      []*football.Player
}

func lineupOffense(t *football.TeamGameState) offenseUnit {
	u := offenseUnit{
		qb:    t.Starter(football.PosQB),
		backs: t.Starters(football.PosRB, 3),
		line:  t.Starters(football.PosOL, 5),
	}
	u.receivers = append(u.receivers, t.Starters(football.PosWR, 3)...)
	u.receivers = append(u.receivers, t.Starters(football.PosTE, 1)...)
	if len(u.backs) > 0 {
		u.receivers = append(u.receivers, u.backs[0])
	}
	return u
}

func (u offenseUnit) onField() []*football.Player {
	all := []*football.Player{u.qb}
	all = append(all, u.receivers...)
	return append(all, u.line...)
}

type defenseUnit struct {
	front     []*football.Player
	backers   []*football.Player
	secondary []*football.Player
}

func lineupDefense(t *football.TeamGameState) defenseUnit {
	u := defenseUnit{
		front:   t.Starters(football.PosDL, 4),
		backers: t.Starters(football.PosLB, 3),
	}
	u.secondary = append(u.secondary, t.Starters(football.PosCB, 2)...)
	u.secondary = append(u.secondary, t.Starters(football.PosS, 2)...)
	return u
}

func (u defenseUnit) all() []*football.Player {
	all := make([]*football.Player, 0, 11)
	all = append(all, u.front...)
	all = append(all, u.backers...)
	return append(all, u.secondary...)
}

// returner is the backup back, else the starter, else a wideout.
func returner(t *football.TeamGameState) *football.Player {
	backs := t.Starters(football.PosRB, 2)
	switch len(backs) {
	case 2:
		return backs[1]
	case 1:
		return backs[0]
	}
	return t.Starter(football.PosWR)
}

// coverageUnit is who runs down kicks: backup linebackers and safeties.
func coverageUnit(t *football.TeamGameState) []*football.Player {
	var u []*football.Player
	lbs := t.DepthChart[football.PosLB]
	if len(lbs) > 3 {
		u = append(u, lbs[3:]...)
	}
	ss := t.DepthChart[football.PosS]
	if len(ss) > 2 {
		u = append(u, ss[2:]...)
	}
	if len(u) == 0 {
		u = append(u, t.Starters(football.PosLB, 2)...)
		u = append(u, t.Starters(football.PosS, 1)...)
	}
	return u
}
