package models

import "sort"

// ShotLine is the per-shot-type attempts/made pair
type ShotLine struct {
	Attempts int `json:"attempts"`
	Made     int `json:"made"`
}

// PlayerStats is the derived line of one player. It is only ever produced by
// folding an event log and is never edited by hand.
type PlayerStats struct {
	Attempts  int                      `json:"attempts"`
	Made      int                      `json:"made"`
	Points    int                      `json:"points"`
	Fouls     int                      `json:"fouls"`
	Breakdown map[ShotTypeKey]ShotLine `json:"breakdown"`
}

// NewPlayerStats returns a zero line with every shot type seeded.
func NewPlayerStats() PlayerStats {
	b := make(map[ShotTypeKey]ShotLine, len(shotTypes))
	for _, st := range shotTypes {
		b[st.Key] = ShotLine{}
	}
	return PlayerStats{Breakdown: b}
}

// ShootingRate is made over attempted, 0 without attempts.
func (p PlayerStats) ShootingRate() float64 {
	return Rate(p.Made, p.Attempts)
}

// FouledOut reports whether the player reached the foul cap.
func (p PlayerStats) FouledOut() bool {
	return p.Fouls >= FoulCap
}

// Clone returns a deep copy.
func (p PlayerStats) Clone() PlayerStats {
	out := p
	out.Breakdown = make(map[ShotTypeKey]ShotLine, len(p.Breakdown))
	for k, v := range p.Breakdown {
		out.Breakdown[k] = v
	}
	return out
}

// Rate divides made by attempts and never divides by zero.
func Rate(made, attempts int) float64 {
	if attempts <= 0 {
		return 0
	}
	return float64(made) / float64(attempts)
}

// StatsTable maps player id to derived stats
type StatsTable map[string]PlayerStats

// Clone returns a deep copy of the table.
func (t StatsTable) Clone() StatsTable {
	out := make(StatsTable, len(t))
	for id, ps := range t {
		out[id] = ps.Clone()
	}
	return out
}

// PlayerIDs returns the ids in the table, sorted.
func (t StatsTable) PlayerIDs() []string {
	ids := make([]string, 0, len(t))
	for id := range t {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
