package models

import "time"

// Score line of a match
type Score struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

// TimelineEntry is one event as shown in the play-by-play
type TimelineEntry struct {
	Seq       uint64    `json:"seq"`
	EventID   string    `json:"event_id"`
	Timestamp time.Time `json:"timestamp"`
	Period    Period    `json:"period"`
	Side      Side      `json:"side"`
	PlayerID  string    `json:"player_id"`
	Player    string    `json:"player"`
	Label     string    `json:"label"`
	Mark      string    `json:"mark,omitempty"`
	Points    int       `json:"points"`
}

// MatchReport is the box score of a match
type MatchReport struct {
	MatchID   string                     `json:"match_id"`
	Group     Group                      `json:"group"`
	Date      time.Time                  `json:"date"`
	Home      string                     `json:"home"`
	Away      string                     `json:"away"`
	Score     Score                      `json:"score"`
	Period    Period                     `json:"period"`
	Teams     []TeamStats                `json:"teams"`
	Players   map[Side][]RankedPlayerRow `json:"players"`
	TopScorer *RankedPlayerRow           `json:"top_scorer,omitempty"`
	Timeline  []TimelineEntry            `json:"timeline"`
	Skipped   int                        `json:"skipped_events"`
}
