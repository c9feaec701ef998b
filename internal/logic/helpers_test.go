package logic

import (
	"fmt"
	"sync"
	"time"

	"github.com/basketmanager/stats-api/internal/models"
)

func shot(player string, st models.ShotTypeKey, made bool) models.Shot {
	r := models.ResultMiss
	if made {
		r = models.ResultMade
	}
	return models.Shot{EventHeader: models.EventHeader{PlayerID: player}, ShotType: st, Result: r}
}

func foul(player string) models.Foul {
	return models.Foul{EventHeader: models.EventHeader{PlayerID: player}}
}

func withID(ev models.GameEvent, id string) models.GameEvent {
	h := ev.Header()
	h.ID = id
	return ev.WithHeader(h)
}

// fixedClock ticks one second per call from a fixed start
type fixedClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFixedClock() *fixedClock {
	return &fixedClock{now: time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC)}
}

func (c *fixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Second)
	return c.now
}

// seqIDs hands out e1, e2, ...
func seqIDs() func() string {
	var mu sync.Mutex
	n := 0
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("e%d", n)
	}
}

// recordingSink collects every change
type recordingSink struct {
	mu      sync.Mutex
	changes []models.LogChange
	reject  bool
}

func (s *recordingSink) Enqueue(c models.LogChange) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.reject {
		return false
	}
	s.changes = append(s.changes, c)
	return true
}

func (s *recordingSink) all() []models.LogChange {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.LogChange, len(s.changes))
	copy(out, s.changes)
	return out
}

func newTestLog(sink ChangeSink) *EventLog {
	return NewEventLog(EventLogConfig{Now: newFixedClock().Now, NewID: seqIDs(), Sink: sink})
}
