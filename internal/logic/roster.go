package logic

import (
	"fmt"

	"github.com/basketmanager/stats-api/internal/models"
)

// ToggleOutcome tells what a roster toggle did
type ToggleOutcome string

const (
	ToggleAdded   ToggleOutcome = "added"
	ToggleRemoved ToggleOutcome = "removed"
	ToggleFull    ToggleOutcome = "full" // at cap, nothing changed
)

// Roster is the convocation of one side: an ordered set of athlete ids capped
// at models.RosterCap. A nil pool means any athlete may be convened.
type Roster struct {
	side    models.Side
	members []string
	pool    map[string]struct{}
}

// NewRoster returns an empty roster. pool, when non-nil, is the team's
// athlete pool the roster must stay within.
func NewRoster(side models.Side, pool []string) *Roster {
	r := &Roster{side: side}
	if pool != nil {
		r.pool = make(map[string]struct{}, len(pool))
		for _, id := range pool {
			r.pool[id] = struct{}{}
		}
	}
	return r
}

// Toggle removes a convened athlete or adds one while under the cap. At the
// cap adding is a silent no-op reported as ToggleFull.
func (r *Roster) Toggle(athleteID string) (ToggleOutcome, error) {
	if idx := r.indexOf(athleteID); idx >= 0 {
		r.members = append(r.members[:idx], r.members[idx+1:]...)
		return ToggleRemoved, nil
	}
	if r.pool != nil {
		if _, ok := r.pool[athleteID]; !ok {
			return "", fmt.Errorf("%w: %s on %s", ErrNotInPool, athleteID, r.side)
		}
	}
	if len(r.members) >= models.RosterCap {
		return ToggleFull, nil
	}
	r.members = append(r.members, athleteID)
	return ToggleAdded, nil
}

// IsEligible reports whether the athlete is convened.
func (r *Roster) IsEligible(athleteID string) bool {
	return r.indexOf(athleteID) >= 0
}

// Members returns the convened ids in convocation order.
func (r *Roster) Members() []string {
	out := make([]string, len(r.members))
	copy(out, r.members)
	return out
}

func (r *Roster) Len() int { return len(r.members) }

func (r *Roster) Side() models.Side { return r.side }

// InPool reports whether the athlete belongs to the team pool. Always true
// without a pool.
func (r *Roster) InPool(athleteID string) bool {
	if r.pool == nil {
		return true
	}
	_, ok := r.pool[athleteID]
	return ok
}

func (r *Roster) indexOf(athleteID string) int {
	for i, id := range r.members {
		if id == athleteID {
			return i
		}
	}
	return -1
}

// RosterGate holds the home and away convocations of a match
type RosterGate struct {
	home *Roster
	away *Roster
}

// NewRosterGate builds empty rosters for both sides.
func NewRosterGate(homePool, awayPool []string) *RosterGate {
	return &RosterGate{
		home: NewRoster(models.SideHome, homePool),
		away: NewRoster(models.SideAway, awayPool),
	}
}

// Side returns the roster of side, nil for an unknown side.
func (g *RosterGate) Side(side models.Side) *Roster {
	switch side {
	case models.SideHome:
		return g.home
	case models.SideAway:
		return g.away
	default:
		return nil
	}
}

// Toggle flips athleteID on the roster of side.
func (g *RosterGate) Toggle(side models.Side, athleteID string) (*Roster, ToggleOutcome, error) {
	r := g.Side(side)
	if r == nil {
		return nil, "", fmt.Errorf("%w: side %q", models.ErrInvalidEvent, side)
	}
	if athleteID == "" {
		return r, "", fmt.Errorf("%w: empty athlete id", models.ErrInvalidEvent)
	}
	outcome, err := r.Toggle(athleteID)
	return r, outcome, err
}

// IsEligible reports whether athleteID is convened on side.
func (g *RosterGate) IsEligible(side models.Side, athleteID string) bool {
	r := g.Side(side)
	return r != nil && r.IsEligible(athleteID)
}

// Members returns a copy of both rosters keyed by side.
func (g *RosterGate) Members() map[models.Side][]string {
	return map[models.Side][]string{
		models.SideHome: g.home.Members(),
		models.SideAway: g.away.Members(),
	}
}
