package models

import (
	"fmt"
	"time"
)

// Athlete is a registered player. Number is nil when no jersey is assigned.
type Athlete struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Number *int   `json:"number,omitempty"`
	Team   string `json:"team,omitempty"`
	Group  Group  `json:"group"`
}

// Label formats the athlete the way the scoresheet shows it.
func (a Athlete) Label() string {
	if a.Number == nil {
		return a.Name
	}
	return fmt.Sprintf("#%d %s", *a.Number, a.Name)
}

// Team of an age category with its assigned athletes
type Team struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Group      Group    `json:"group"`
	AthleteIDs []string `json:"athlete_ids"`
}

// Match is a scheduled game
type Match struct {
	ID         string    `json:"id"`
	Group      Group     `json:"group"`
	Date       time.Time `json:"date"`
	Home       string    `json:"home"`
	Away       string    `json:"away"`
	HomeTeamID string    `json:"home_team_id,omitempty"`
	AwayTeamID string    `json:"away_team_id,omitempty"`
}

// TeamID returns the team id playing on side.
func (m Match) TeamID(side Side) string {
	if side == SideAway {
		return m.AwayTeamID
	}
	return m.HomeTeamID
}

// TeamName returns the display name of side.
func (m Match) TeamName(side Side) string {
	if side == SideAway {
		return m.Away
	}
	return m.Home
}
