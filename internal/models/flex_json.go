package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// UnmarshalJSON implements flexible JSON unmarshaling for event records.
// Scoresheets exported by older trackers quote numbers, send epoch
// milliseconds instead of RFC 3339 timestamps, use camelCase keys, put the
// shot type in "type" and encode the result as a "made" boolean. All of those
// are coerced into the canonical record.
func (r *EventRecord) UnmarshalJSON(data []byte) error {
	// Alias prevents infinite recursion
	type Alias EventRecord
	var a Alias

	// Fast path: canonical records. A shot missing its type or result may
	// carry them under legacy keys.
	if err := json.Unmarshal(data, &a); err == nil && a.PlayerID != "" &&
		(a.Type == EventFoul || (a.Type == EventShot && a.ShotType != "" && a.Result != "")) {
		*r = EventRecord(a)
		return nil
	}

	// Slow path: field-by-field with coercion
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("flex unmarshal: %w", err)
	}

	var out EventRecord
	var made string
	for key, val := range raw {
		s, ok := flexString(val)
		if !ok || s == "" {
			continue
		}
		switch key {
		case "type":
			out.Type = EventKind(s)
		case "id":
			out.ID = s
		case "seq":
			if n, err := strconv.ParseUint(s, 10, 64); err == nil {
				out.Seq = n
			}
		case "timestamp", "ts":
			if t, ok := ParseTimestamp(s); ok {
				out.Timestamp = t
			}
		case "period":
			if p, ok := ParsePeriod(s); ok {
				out.Period = p
			} else {
				out.Period = Period(s)
			}
		case "side":
			out.Side = Side(strings.ToLower(s))
		case "player_id", "playerId", "athlete_id", "athleteId":
			out.PlayerID = s
		case "shot_type", "shotType":
			out.ShotType = ShotTypeKey(s)
		case "result":
			out.Result = ParseResult(s)
		case "made":
			made = s
		}
	}

	if out.Result == "" && made != "" {
		out.Result = ParseResult(made)
	}

	// Legacy tracker records carry the shot type in "type"
	if _, err := LookupShotType(ShotTypeKey(out.Type)); err == nil {
		if out.ShotType == "" {
			out.ShotType = ShotTypeKey(out.Type)
		}
		out.Type = EventShot
	}

	*r = out
	return nil
}

// flexString returns the textual form of a JSON string, number or bool.
func flexString(raw json.RawMessage) (string, bool) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return "", false
	}
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t), true
	case json.Number:
		return t.String(), true
	case bool:
		return strconv.FormatBool(t), true
	default:
		return "", false
	}
}

// ParseTimestamp accepts RFC 3339 strings and epoch numbers. Numbers at or above
// 1e11 are read as milliseconds, smaller ones as (fractional) seconds.
func ParseTimestamp(s string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UTC(), true
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || n <= 0 {
		return time.Time{}, false
	}
	if n >= 1e11 {
		return time.UnixMilli(int64(n)).UTC(), true
	}
	sec := int64(n)
	nsec := int64((n - float64(sec)) * 1e9)
	return time.Unix(sec, nsec).UTC(), true
}

// ParseResult maps scoresheet spellings (true/false, 1/0, ✓/✕) to a result.
// Unknown values are returned unchanged.
func ParseResult(s string) ShotResult {
	switch strings.ToLower(s) {
	case "made", "true", "1", "✓":
		return ResultMade
	case "miss", "missed", "false", "0", "✕":
		return ResultMiss
	default:
		return ShotResult(s)
	}
}
