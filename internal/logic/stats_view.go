package logic

import (
	"sort"

	"github.com/basketmanager/stats-api/internal/models"
)

// ProjectOptions tune the ranked view
type ProjectOptions struct {
	// Roster ids get a zero row even without events.
	Roster []string
	// RosterOnly hides players that are not in Roster. The log is untouched.
	RosterOnly bool
}

// Project ranks a stats table for presentation.
//
// Rows are ordered by points descending, then jersey number ascending (players
// without a number last), then player id. Equal points share a rank and the
// next rank skips ahead ("1, 2, 2, 4"). stats is not modified.
func Project(stats models.StatsTable, athletes map[string]models.Athlete, opts ProjectOptions) []models.RankedPlayerRow {
	table := Seed(stats, opts.Roster)

	onRoster := make(map[string]bool, len(opts.Roster))
	for _, id := range opts.Roster {
		onRoster[id] = true
	}

	rows := make([]models.RankedPlayerRow, 0, len(table))
	for id, ps := range table {
		if opts.RosterOnly && !onRoster[id] {
			continue
		}
		row := models.RankedPlayerRow{
			PlayerID:     id,
			PlayerName:   id,
			Points:       ps.Points,
			Fouls:        ps.Fouls,
			FouledOut:    ps.FouledOut(),
			Attempts:     ps.Attempts,
			Made:         ps.Made,
			ShootingRate: ps.ShootingRate(),
			Breakdown:    ps.Breakdown,
			OnRoster:     onRoster[id],
		}
		if a, ok := athletes[id]; ok {
			row.PlayerName = a.Name
			if a.Number != nil {
				n := *a.Number
				row.Number = &n
			}
		}
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		switch {
		case a.Number != nil && b.Number != nil && *a.Number != *b.Number:
			return *a.Number < *b.Number
		case a.Number != nil && b.Number == nil:
			return true
		case a.Number == nil && b.Number != nil:
			return false
		}
		return a.PlayerID < b.PlayerID
	})

	for i := range rows {
		if i > 0 && rows[i].Points == rows[i-1].Points {
			rows[i].Rank = rows[i-1].Rank
		} else {
			rows[i].Rank = i + 1
		}
	}
	return rows
}
