package models

import "time"

// EventKind tags the variant of a GameEvent
type EventKind string

const (
	EventShot EventKind = "shot"
	EventFoul EventKind = "foul"
)

// ShotResult is the outcome of a shot attempt
type ShotResult string

const (
	ResultMade ShotResult = "made"
	ResultMiss ShotResult = "miss"
)

// Valid reports whether r is made or miss.
func (r ShotResult) Valid() bool {
	return r == ResultMade || r == ResultMiss
}

// EventHeader carries the fields shared by every event variant.
// ID, Seq and Timestamp are assigned by the event log on append.
type EventHeader struct {
	ID        string
	Seq       uint64
	Timestamp time.Time
	Period    Period
	Side      Side
	PlayerID  string
}

// GameEvent is one entry of a match log. The set of variants is closed:
// only Shot and Foul implement it.
type GameEvent interface {
	Kind() EventKind
	Header() EventHeader
	// WithHeader returns a copy of the event carrying h.
	WithHeader(h EventHeader) GameEvent
	isGameEvent()
}

// Shot is a field goal or free throw attempt
type Shot struct {
	EventHeader
	ShotType ShotTypeKey
	Result   ShotResult
}

func (s Shot) Kind() EventKind     { return EventShot }
func (s Shot) Header() EventHeader { return s.EventHeader }
func (s Shot) isGameEvent()        {}

func (s Shot) WithHeader(h EventHeader) GameEvent {
	s.EventHeader = h
	return s
}

// Made reports whether the shot went in.
func (s Shot) Made() bool { return s.Result == ResultMade }

// Foul is a personal foul charged to a player
type Foul struct {
	EventHeader
}

func (f Foul) Kind() EventKind     { return EventFoul }
func (f Foul) Header() EventHeader { return f.EventHeader }
func (f Foul) isGameEvent()        {}

func (f Foul) WithHeader(h EventHeader) GameEvent {
	f.EventHeader = h
	return f
}

// ChangeOp names a committed log mutation
type ChangeOp string

const (
	ChangeAppend  ChangeOp = "append"
	ChangeRemove  ChangeOp = "remove"
	ChangeRestore ChangeOp = "restore"
)

// LogChange describes one committed mutation of a match log together with the
// stats recomputed from the log right after it. Values are never shared with
// the log.
type LogChange struct {
	Op      ChangeOp    `json:"op"`
	MatchID string      `json:"match_id"`
	Event   EventRecord `json:"event"`
	Players StatsTable  `json:"players"`
	Teams   []TeamStats `json:"teams"`
	Events  int         `json:"events"`
	At      time.Time   `json:"at"`
}
