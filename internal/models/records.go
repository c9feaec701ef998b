package models

import (
	"fmt"
	"time"
)

// EventRecord is the flat, tagged form of a GameEvent used on the wire and in
// log snapshots.
type EventRecord struct {
	Type      EventKind   `json:"type" validate:"required,oneof=shot foul"`
	ID        string      `json:"id,omitempty"`
	Seq       uint64      `json:"seq,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Period    Period      `json:"period,omitempty" validate:"omitempty,oneof=1 2 3 4 OT"`
	Side      Side        `json:"side,omitempty" validate:"omitempty,oneof=home away"`
	PlayerID  string      `json:"player_id" validate:"required"`
	ShotType  ShotTypeKey `json:"shot_type,omitempty" validate:"required_if=Type shot"`
	Result    ShotResult  `json:"result,omitempty" validate:"required_if=Type shot"`
}

// LogSnapshot is the ordered event log of one match
type LogSnapshot struct {
	MatchID string        `json:"match_id"`
	Events  []EventRecord `json:"events"`
}

// RecordOf flattens ev into its tagged record.
func RecordOf(ev GameEvent) EventRecord {
	if ev == nil {
		return EventRecord{}
	}
	h := ev.Header()
	rec := EventRecord{
		Type:      ev.Kind(),
		ID:        h.ID,
		Seq:       h.Seq,
		Timestamp: h.Timestamp,
		Period:    h.Period,
		Side:      h.Side,
		PlayerID:  h.PlayerID,
	}
	switch e := ev.(type) {
	case Shot:
		rec.ShotType = e.ShotType
		rec.Result = e.Result
	case *Shot:
		rec.ShotType = e.ShotType
		rec.Result = e.Result
	}
	return rec
}

// Event rebuilds the GameEvent variant named by the record's type tag.
// Field contents are not validated here.
func (r EventRecord) Event() (GameEvent, error) {
	h := EventHeader{
		ID:        r.ID,
		Seq:       r.Seq,
		Timestamp: r.Timestamp,
		Period:    r.Period,
		Side:      r.Side,
		PlayerID:  r.PlayerID,
	}
	switch r.Type {
	case EventShot:
		return Shot{EventHeader: h, ShotType: r.ShotType, Result: r.Result}, nil
	case EventFoul:
		return Foul{EventHeader: h}, nil
	default:
		return nil, fmt.Errorf("%w: unknown event type %q", ErrInvalidEvent, r.Type)
	}
}
