package models

// RankedPlayerRow is one line of the stats view
type RankedPlayerRow struct {
	Rank         int                      `json:"rank"`
	PlayerID     string                   `json:"player_id"`
	PlayerName   string                   `json:"player_name"`
	Number       *int                     `json:"number,omitempty"`
	Points       int                      `json:"points"`
	Fouls        int                      `json:"fouls"`
	FouledOut    bool                     `json:"fouled_out"`
	Attempts     int                      `json:"attempts"`
	Made         int                      `json:"made"`
	ShootingRate float64                  `json:"shooting_rate"` // "voto"
	Breakdown    map[ShotTypeKey]ShotLine `json:"breakdown"`
	OnRoster     bool                     `json:"on_roster"`
}
