package models

import (
	"fmt"
	"strings"
)

// Domain caps
const (
	// FoulCap is the number of fouls after which a player is out of the game.
	FoulCap = 5
	// RosterCap is the maximum number of athletes convened per side.
	RosterCap = 12
)

// ShotTypeKey identifies a scoring category
type ShotTypeKey string

const (
	ShotLayup     ShotTypeKey = "layup"
	ShotTwo       ShotTypeKey = "two"
	ShotThree     ShotTypeKey = "three"
	ShotFreeThrow ShotTypeKey = "freeThrow"
)

// ShotType is an entry of the shot catalog
type ShotType struct {
	Key    ShotTypeKey `json:"key"`
	Label  string      `json:"label"`
	Points int         `json:"points"`
}

var shotTypes = [...]ShotType{
	{Key: ShotLayup, Label: "Terzo tempo", Points: 2},
	{Key: ShotTwo, Label: "Tiro da 2", Points: 2},
	{Key: ShotThree, Label: "Tiro da 3", Points: 3},
	{Key: ShotFreeThrow, Label: "Tiro libero", Points: 1},
}

// ShotTypes returns the catalog in display order.
func ShotTypes() []ShotType {
	out := make([]ShotType, len(shotTypes))
	copy(out, shotTypes[:])
	return out
}

// LookupShotType returns the catalog entry for key.
func LookupShotType(key ShotTypeKey) (ShotType, error) {
	for _, st := range shotTypes {
		if st.Key == key {
			return st, nil
		}
	}
	return ShotType{}, fmt.Errorf("%w: %q", ErrUnknownShotType, key)
}

// PointsFor returns the points a made shot of the given type is worth.
func PointsFor(key ShotTypeKey) (int, error) {
	st, err := LookupShotType(key)
	if err != nil {
		return 0, err
	}
	return st.Points, nil
}

// Period of play
type Period string

const (
	Period1  Period = "1"
	Period2  Period = "2"
	Period3  Period = "3"
	Period4  Period = "4"
	PeriodOT Period = "OT"
)

var periods = [...]Period{Period1, Period2, Period3, Period4, PeriodOT}

// Periods returns the periods in game order.
func Periods() []Period {
	out := make([]Period, len(periods))
	copy(out, periods[:])
	return out
}

// ValidPeriod reports whether p is one of the known periods.
func ValidPeriod(p Period) bool {
	for _, known := range periods {
		if p == known {
			return true
		}
	}
	return false
}

// ParsePeriod accepts the scoresheet spellings ("1°", "2", "ot") and returns
// the canonical period.
func ParsePeriod(s string) (Period, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "°")
	s = strings.TrimSuffix(s, "º")
	p := Period(strings.ToUpper(s))
	return p, ValidPeriod(p)
}

// Side of a match
type Side string

const (
	SideHome Side = "home"
	SideAway Side = "away"
)

// Sides returns both sides, home first.
func Sides() []Side {
	return []Side{SideHome, SideAway}
}

// ValidSide reports whether s is home or away.
func ValidSide(s Side) bool {
	return s == SideHome || s == SideAway
}

// Group is an age category
type Group string

const (
	GroupU13 Group = "U13"
	GroupU14 Group = "U14"
	GroupU15 Group = "U15"
	GroupU16 Group = "U16"
	GroupU17 Group = "U17"
)

var groups = [...]Group{GroupU13, GroupU14, GroupU15, GroupU16, GroupU17}

// Groups returns the age categories, youngest first.
func Groups() []Group {
	out := make([]Group, len(groups))
	copy(out, groups[:])
	return out
}

// ValidGroup reports whether g is a known age category.
func ValidGroup(g Group) bool {
	for _, known := range groups {
		if g == known {
			return true
		}
	}
	return false
}

// Catalog is the static reference served to clients
type Catalog struct {
	ShotTypes []ShotType `json:"shot_types"`
	Periods   []Period   `json:"periods"`
	Groups    []Group    `json:"groups"`
	FoulCap   int        `json:"foul_cap"`
	RosterCap int        `json:"roster_cap"`
}

// DefaultCatalog bundles every catalog constant.
func DefaultCatalog() Catalog {
	return Catalog{
		ShotTypes: ShotTypes(),
		Periods:   Periods(),
		Groups:    Groups(),
		FoulCap:   FoulCap,
		RosterCap: RosterCap,
	}
}
