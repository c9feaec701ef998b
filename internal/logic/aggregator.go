package logic

import (
	"fmt"

	"github.com/basketmanager/stats-api/internal/models"
)

// SkippedEvent is an event the fold could not apply
type SkippedEvent struct {
	EventID string `json:"event_id"`
	Seq     uint64 `json:"seq"`
	Err     error  `json:"-"`
	Reason  string `json:"reason"`
}

// Aggregation is the result of folding an event sequence
type Aggregation struct {
	Players models.StatsTable
	Skipped []SkippedEvent
}

// Aggregate folds events, in order, into a per-player stats table.
//
// Players appear on their first reference. Fouls are clamped at the foul cap.
// Malformed events are skipped and reported; they never abort the fold. The
// result depends only on the content and order of events.
func Aggregate(events []models.GameEvent) Aggregation {
	agg := Aggregation{Players: make(models.StatsTable)}
	for _, ev := range events {
		if err := apply(agg.Players, ev); err != nil {
			skip := SkippedEvent{Err: err, Reason: err.Error()}
			if h, ok := headerOf(ev); ok {
				skip.EventID, skip.Seq = h.ID, h.Seq
			}
			agg.Skipped = append(agg.Skipped, skip)
		}
	}
	return agg
}

func apply(table models.StatsTable, ev models.GameEvent) error {
	switch e := ev.(type) {
	case *models.Shot:
		if e == nil {
			return fmt.Errorf("%w: nil shot", models.ErrInvalidEvent)
		}
		return apply(table, *e)
	case *models.Foul:
		if e == nil {
			return fmt.Errorf("%w: nil foul", models.ErrInvalidEvent)
		}
		return apply(table, *e)
	case models.Shot:
		if e.PlayerID == "" {
			return fmt.Errorf("%w: shot without player", models.ErrInvalidEvent)
		}
		pts, err := models.PointsFor(e.ShotType)
		if err != nil {
			return err
		}
		if !e.Result.Valid() {
			return fmt.Errorf("%w: shot result %q", models.ErrInvalidEvent, e.Result)
		}

		ps := lineFor(table, e.PlayerID)
		line := ps.Breakdown[e.ShotType]
		ps.Attempts++
		line.Attempts++
		if e.Made() {
			ps.Made++
			line.Made++
			ps.Points += pts
		}
		ps.Breakdown[e.ShotType] = line
		table[e.PlayerID] = ps
		return nil
	case models.Foul:
		if e.PlayerID == "" {
			return fmt.Errorf("%w: foul without player", models.ErrInvalidEvent)
		}
		ps := lineFor(table, e.PlayerID)
		ps.Fouls = min(models.FoulCap, ps.Fouls+1)
		table[e.PlayerID] = ps
		return nil
	default:
		return fmt.Errorf("%w: unsupported event %T", models.ErrInvalidEvent, ev)
	}
}

// headerOf reads the header of ev, reporting false for nil events.
func headerOf(ev models.GameEvent) (models.EventHeader, bool) {
	switch e := ev.(type) {
	case nil:
		return models.EventHeader{}, false
	case *models.Shot:
		if e == nil {
			return models.EventHeader{}, false
		}
	case *models.Foul:
		if e == nil {
			return models.EventHeader{}, false
		}
	}
	return ev.Header(), true
}

func lineFor(table models.StatsTable, playerID string) models.PlayerStats {
	if ps, ok := table[playerID]; ok {
		return ps
	}
	return models.NewPlayerStats()
}

// FilterSide returns the events recorded for side, in order.
func FilterSide(events []models.GameEvent, side models.Side) []models.GameEvent {
	out := make([]models.GameEvent, 0, len(events))
	for _, ev := range events {
		if h, ok := headerOf(ev); ok && h.Side == side {
			out = append(out, ev)
		}
	}
	return out
}

// AggregateTeams folds events into home and away totals, home first.
func AggregateTeams(events []models.GameEvent) []models.TeamStats {
	teams := make([]models.TeamStats, 0, 2)
	for _, side := range models.Sides() {
		teams = append(teams, TeamTotals(side, Aggregate(FilterSide(events, side)).Players))
	}
	return teams
}

// TeamTotals sums a side's player table.
func TeamTotals(side models.Side, table models.StatsTable) models.TeamStats {
	team := models.NewTeamStats(side)
	for _, id := range table.PlayerIDs() {
		team.Add(table[id])
	}
	return team
}

// Seed returns a copy of table with a zero line for every id not already in it.
func Seed(table models.StatsTable, ids []string) models.StatsTable {
	out := table.Clone()
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := out[id]; !ok {
			out[id] = models.NewPlayerStats()
		}
	}
	return out
}
