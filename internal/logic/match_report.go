package logic

import (
	"github.com/basketmanager/stats-api/internal/models"
)

const foulLabel = "Fallo"

// BuildReport assembles the box score of a match from a state read.
func BuildReport(state MatchState, athletes map[string]models.Athlete) models.MatchReport {
	m := state.Match
	report := models.MatchReport{
		MatchID: state.MatchID,
		Group:   m.Group,
		Date:    m.Date,
		Home:    m.Home,
		Away:    m.Away,
		Period:  state.Period,
		Teams:   state.Teams,
		Players: make(map[models.Side][]models.RankedPlayerRow, 2),
		Skipped: len(state.Skipped),
	}

	for _, team := range state.Teams {
		switch team.Side {
		case models.SideHome:
			report.Score.Home = team.Points
		case models.SideAway:
			report.Score.Away = team.Points
		}
	}

	for _, side := range models.Sides() {
		report.Players[side] = Project(state.BySide[side], athletes, ProjectOptions{Roster: state.Rosters[side]})
	}

	overall := Project(state.Players, athletes, ProjectOptions{})
	if len(overall) > 0 && overall[0].Points > 0 {
		top := overall[0]
		report.TopScorer = &top
	}

	report.Timeline = make([]models.TimelineEntry, 0, len(state.Events))
	for _, ev := range state.Events {
		report.Timeline = append(report.Timeline, timelineEntry(ev, athletes))
	}
	return report
}

func timelineEntry(ev models.GameEvent, athletes map[string]models.Athlete) models.TimelineEntry {
	h := ev.Header()
	entry := models.TimelineEntry{
		Seq:       h.Seq,
		EventID:   h.ID,
		Timestamp: h.Timestamp,
		Period:    h.Period,
		Side:      h.Side,
		PlayerID:  h.PlayerID,
		Player:    h.PlayerID,
	}
	if a, ok := athletes[h.PlayerID]; ok {
		entry.Player = a.Label()
	}

	switch e := ev.(type) {
	case models.Shot:
		entry.Label = string(e.ShotType)
		if st, err := models.LookupShotType(e.ShotType); err == nil {
			entry.Label = st.Label
			if e.Made() {
				entry.Points = st.Points
			}
		}
		entry.Mark = "✕"
		if e.Made() {
			entry.Mark = "✓"
		}
	case models.Foul:
		entry.Label = foulLabel
	}
	return entry
}
