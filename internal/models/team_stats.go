package models

// TeamStats sums the player lines of one side. Team fouls are the sum of the
// already clamped player fouls.
type TeamStats struct {
	Side         Side                     `json:"side"`
	Points       int                      `json:"points"`
	Attempts     int                      `json:"attempts"`
	Made         int                      `json:"made"`
	Fouls        int                      `json:"fouls"`
	ShootingRate float64                  `json:"shooting_rate"`
	Breakdown    map[ShotTypeKey]ShotLine `json:"breakdown"`
}

// NewTeamStats returns zero totals for side.
func NewTeamStats(side Side) TeamStats {
	ps := NewPlayerStats()
	return TeamStats{Side: side, Breakdown: ps.Breakdown}
}

// Add folds one player line into the totals.
func (t *TeamStats) Add(p PlayerStats) {
	t.Points += p.Points
	t.Attempts += p.Attempts
	t.Made += p.Made
	t.Fouls += p.Fouls
	if t.Breakdown == nil {
		t.Breakdown = make(map[ShotTypeKey]ShotLine)
	}
	for k, line := range p.Breakdown {
		cur := t.Breakdown[k]
		cur.Attempts += line.Attempts
		cur.Made += line.Made
		t.Breakdown[k] = cur
	}
	t.ShootingRate = Rate(t.Made, t.Attempts)
}
