package worker

import (
	"strings"
	"time"
	"unicode"

	"github.com/basketmanager/stats-api/internal/models"
)

// clickHouseRow is one row of basket_stats.game_events
type clickHouseRow struct {
	Timestamp  time.Time
	RecordedAt time.Time
	MatchID    string
	Op         string
	EventID    string
	Seq        uint64
	EventType  string
	Period     string
	Side       string
	PlayerID   string
	ShotType   string
	Result     string
	Points     uint8
	LogSize    uint32
	RawJSON    string
}

// convertToClickHouseRow flattens a job. Restore changes carry no event and
// are stored with an empty event type.
func convertToClickHouseRow(job Job) clickHouseRow {
	c := job.Change
	ev := c.Event

	ts := ev.Timestamp
	if ts.IsZero() {
		ts = c.At
	}
	if ts.IsZero() {
		ts = job.Timestamp
	}

	row := clickHouseRow{
		Timestamp:  ts,
		RecordedAt: job.Timestamp,
		MatchID:    sanitizeID(c.MatchID),
		Op:         string(c.Op),
		EventID:    ev.ID,
		Seq:        ev.Seq,
		EventType:  string(ev.Type),
		Period:     string(ev.Period),
		Side:       string(ev.Side),
		PlayerID:   sanitizeID(ev.PlayerID),
		ShotType:   string(ev.ShotType),
		Result:     string(ev.Result),
		LogSize:    uint32(c.Events),
		RawJSON:    job.RawJSON,
	}
	if ev.Type == models.EventShot && ev.Result == models.ResultMade {
		if pts, err := models.PointsFor(ev.ShotType); err == nil {
			row.Points = uint8(pts)
		}
	}
	return row
}

// sanitizeID trims surrounding space and drops control characters.
func sanitizeID(s string) string {
	s = strings.TrimSpace(s)
	// Fast path: nothing to strip
	if strings.IndexFunc(s, unicode.IsControl) == -1 {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		if !unicode.IsControl(r) {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
