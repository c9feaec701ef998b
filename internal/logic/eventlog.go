package logic

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/basketmanager/stats-api/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Clock returns the current time
type Clock func() time.Time

// ChangeSink receives every committed log change. Enqueue must not block;
// false means the change was dropped.
type ChangeSink interface {
	Enqueue(change models.LogChange) bool
}

// EventLogConfig holds the collaborators of an EventLog. Zero values fall back
// to the wall clock, random UUIDs, no sink and a no-op logger.
type EventLogConfig struct {
	Now    Clock
	NewID  func() string
	Sink   ChangeSink
	Logger *zap.Logger
}

// OpenOptions configure a match when it is first opened
type OpenOptions struct {
	// EnforceRoster rejects events from athletes not convened on their side.
	EnforceRoster bool
	// Athletes is the set of athletes valid for the match group. Nil disables
	// the check.
	Athletes []string
	// HomePool and AwayPool are the team athlete pools rosters must stay
	// within. Nil disables the check.
	HomePool []string
	AwayPool []string
}

// MatchState is a consistent read of one match taken under its lock
type MatchState struct {
	MatchID       string                            `json:"match_id"`
	Match         models.Match                      `json:"match"`
	Period        models.Period                     `json:"period"`
	EnforceRoster bool                              `json:"enforce_roster"`
	Events        []models.GameEvent                `json:"-"`
	Players       models.StatsTable                 `json:"players"`
	BySide        map[models.Side]models.StatsTable `json:"by_side"`
	Teams         []models.TeamStats                `json:"teams"`
	Rosters       map[models.Side][]string          `json:"rosters"`
	Skipped       []SkippedEvent                    `json:"skipped,omitempty"`
}

// Records returns the log as tagged records.
func (s MatchState) Records() []models.EventRecord {
	out := make([]models.EventRecord, len(s.Events))
	for i, ev := range s.Events {
		out[i] = models.RecordOf(ev)
	}
	return out
}

type matchLog struct {
	mu            sync.Mutex
	match         models.Match
	period        models.Period
	enforceRoster bool
	athletes      map[string]struct{}
	events        []models.GameEvent
	lastSeq       uint64
	rosters       *RosterGate

	// derived, recomputed from events on every mutation
	agg    Aggregation
	bySide map[models.Side]models.StatsTable
	teams  []models.TeamStats
}

// EventLog is the registry of per-match event logs. Each match is guarded by
// its own mutex; matches never share state.
type EventLog struct {
	mu      sync.RWMutex
	matches map[string]*matchLog

	now    Clock
	newID  func() string
	sink   ChangeSink
	logger *zap.SugaredLogger
}

func NewEventLog(cfg EventLogConfig) *EventLog {
	l := &EventLog{
		matches: make(map[string]*matchLog),
		now:     cfg.Now,
		newID:   cfg.NewID,
		sink:    cfg.Sink,
	}
	if l.now == nil {
		l.now = func() time.Time { return time.Now().UTC() }
	}
	if l.newID == nil {
		l.newID = uuid.NewString
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	l.logger = logger.Sugar()
	return l
}

// Open creates the empty log and rosters of a match. Opening an already open
// match returns its current state and ignores opts.
func (l *EventLog) Open(match models.Match, opts OpenOptions) (MatchState, error) {
	if match.ID == "" {
		return MatchState{}, errors.New("match id is required")
	}

	l.mu.Lock()
	ml, ok := l.matches[match.ID]
	if !ok {
		ml = &matchLog{
			match:         match,
			period:        models.Period1,
			enforceRoster: opts.EnforceRoster,
			rosters:       NewRosterGate(opts.HomePool, opts.AwayPool),
		}
		if opts.Athletes != nil {
			ml.athletes = make(map[string]struct{}, len(opts.Athletes))
			for _, id := range opts.Athletes {
				ml.athletes[id] = struct{}{}
			}
		}
		ml.recompute()
		l.matches[match.ID] = ml
	}
	l.mu.Unlock()

	if !ok {
		l.logger.Infow("Match opened", "match", match.ID, "group", match.Group, "enforce_roster", opts.EnforceRoster)
	}

	ml.mu.Lock()
	defer ml.mu.Unlock()
	return ml.state(), nil
}

// IsOpen reports whether the match has a log.
func (l *EventLog) IsOpen(matchID string) bool {
	_, err := l.get(matchID)
	return err == nil
}

// Matches returns the ids of all open matches, sorted.
func (l *EventLog) Matches() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	ids := make([]string, 0, len(l.matches))
	for id := range l.matches {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Append validates ev, stamps it with a fresh id, the next sequence number and
// the current time, and appends it to the match log. The stats cache is
// recomputed before Append returns. An empty side means home and an empty
// period means the current period of the match.
func (l *EventLog) Append(matchID string, ev models.GameEvent) (models.GameEvent, error) {
	ml, err := l.get(matchID)
	if err != nil {
		return nil, err
	}

	ml.mu.Lock()
	defer ml.mu.Unlock()

	ev, err = ml.validate(ev)
	if err != nil {
		return nil, err
	}

	h := ev.Header()
	h.ID = l.newID()
	ml.lastSeq++
	h.Seq = ml.lastSeq
	h.Timestamp = l.now()
	ev = ev.WithHeader(h)

	ml.events = append(ml.events, ev)
	ml.recompute()
	l.emit(ml, models.ChangeAppend, ev)
	return ev, nil
}

// Remove deletes the event with the given id and recomputes the stats from
// the remaining log. Unknown ids and matches are a silent no-op.
func (l *EventLog) Remove(matchID, eventID string) bool {
	ml, err := l.get(matchID)
	if err != nil {
		return false
	}

	ml.mu.Lock()
	defer ml.mu.Unlock()

	for i, ev := range ml.events {
		if ev.Header().ID == eventID {
			return l.removeAt(ml, i)
		}
	}
	l.logger.Debugw("Remove ignored", "match", matchID, "event", eventID, "error", ErrEventNotFound)
	return false
}

// RemoveAt deletes the index-th event of the log, counting only events of
// side when side is set. Out of range indexes are a silent no-op.
func (l *EventLog) RemoveAt(matchID string, side models.Side, index int) bool {
	ml, err := l.get(matchID)
	if err != nil || index < 0 {
		return false
	}

	ml.mu.Lock()
	defer ml.mu.Unlock()

	n := 0
	for i, ev := range ml.events {
		if side != "" && ev.Header().Side != side {
			continue
		}
		if n == index {
			return l.removeAt(ml, i)
		}
		n++
	}
	return false
}

func (l *EventLog) removeAt(ml *matchLog, i int) bool {
	removed := ml.events[i]
	ml.events = append(ml.events[:i:i], ml.events[i+1:]...)
	ml.recompute()
	l.emit(ml, models.ChangeRemove, removed)
	return true
}

// EventsFor returns a copy of the log in insertion order, restricted to side
// when side is set.
func (l *EventLog) EventsFor(matchID string, side models.Side) ([]models.GameEvent, error) {
	ml, err := l.get(matchID)
	if err != nil {
		return nil, err
	}

	ml.mu.Lock()
	defer ml.mu.Unlock()

	if side != "" {
		return FilterSide(ml.events, side), nil
	}
	out := make([]models.GameEvent, len(ml.events))
	copy(out, ml.events)
	return out, nil
}

// Stats returns the player table of the match, or of one side.
func (l *EventLog) Stats(matchID string, side models.Side) (models.StatsTable, error) {
	ml, err := l.get(matchID)
	if err != nil {
		return nil, err
	}

	ml.mu.Lock()
	defer ml.mu.Unlock()

	if side != "" {
		table, ok := ml.bySide[side]
		if !ok {
			return nil, fmt.Errorf("%w: side %q", models.ErrInvalidEvent, side)
		}
		return table.Clone(), nil
	}
	return ml.agg.Players.Clone(), nil
}

// TeamStats returns home and away totals.
func (l *EventLog) TeamStats(matchID string) ([]models.TeamStats, error) {
	ml, err := l.get(matchID)
	if err != nil {
		return nil, err
	}

	ml.mu.Lock()
	defer ml.mu.Unlock()
	return cloneTeams(ml.teams), nil
}

// ToggleRoster flips the convocation of athleteID on side. At the cap the
// roster is left unchanged and ToggleFull is returned without error.
func (l *EventLog) ToggleRoster(matchID string, side models.Side, athleteID string) ([]string, ToggleOutcome, error) {
	ml, err := l.get(matchID)
	if err != nil {
		return nil, "", err
	}

	ml.mu.Lock()
	defer ml.mu.Unlock()

	if !ml.knownAthlete(athleteID) {
		return nil, "", fmt.Errorf("%w: %s", ErrUnknownAthlete, athleteID)
	}

	roster, outcome, err := ml.rosters.Toggle(side, athleteID)
	if err != nil {
		return nil, "", err
	}
	if outcome == ToggleFull {
		l.logger.Infow("Roster toggle ignored", "match", matchID, "side", side, "athlete", athleteID, "error", ErrRosterFull)
	} else {
		ml.recompute()
	}
	return roster.Members(), outcome, nil
}

// Roster returns the convened ids of side.
func (l *EventLog) Roster(matchID string, side models.Side) ([]string, error) {
	ml, err := l.get(matchID)
	if err != nil {
		return nil, err
	}

	ml.mu.Lock()
	defer ml.mu.Unlock()

	r := ml.rosters.Side(side)
	if r == nil {
		return nil, fmt.Errorf("%w: side %q", models.ErrInvalidEvent, side)
	}
	return r.Members(), nil
}

// IsEligible reports whether athleteID is convened on side.
func (l *EventLog) IsEligible(matchID string, side models.Side, athleteID string) bool {
	ml, err := l.get(matchID)
	if err != nil {
		return false
	}

	ml.mu.Lock()
	defer ml.mu.Unlock()
	return ml.rosters.IsEligible(side, athleteID)
}

// SetPeriod sets the period stamped on events appended without one.
func (l *EventLog) SetPeriod(matchID string, period models.Period) error {
	if !models.ValidPeriod(period) {
		return fmt.Errorf("%w: period %q", models.ErrInvalidEvent, period)
	}
	ml, err := l.get(matchID)
	if err != nil {
		return err
	}

	ml.mu.Lock()
	ml.period = period
	ml.mu.Unlock()
	return nil
}

// Snapshot exports the ordered log of a match.
func (l *EventLog) Snapshot(matchID string) (models.LogSnapshot, error) {
	state, err := l.State(matchID)
	if err != nil {
		return models.LogSnapshot{}, err
	}
	return models.LogSnapshot{MatchID: matchID, Events: state.Records()}, nil
}

// Restore replaces the log of an open match with the snapshot's events, in
// order, and recomputes every derived value. Sequence numbers are reassigned
// and missing or repeated ids get a fresh one.
// Records of an unknown type cannot be represented and are dropped; events
// with invalid content are kept and skipped by the fold.
func (l *EventLog) Restore(snap models.LogSnapshot) (MatchState, error) {
	ml, err := l.get(snap.MatchID)
	if err != nil {
		return MatchState{}, err
	}

	events := make([]models.GameEvent, 0, len(snap.Events))
	for i, rec := range snap.Events {
		ev, err := rec.Event()
		if err != nil {
			l.logger.Warnw("Dropping snapshot record", "match", snap.MatchID, "index", i, "error", err)
			continue
		}
		events = append(events, ev)
	}

	ml.mu.Lock()
	defer ml.mu.Unlock()

	ml.lastSeq = 0
	seen := make(map[string]struct{}, len(events))
	for i, ev := range events {
		h := ev.Header()
		if _, dup := seen[h.ID]; h.ID == "" || dup {
			if h.ID != "" {
				l.logger.Warnw("Duplicate event id in snapshot, reassigned", "match", snap.MatchID, "event", h.ID, "index", i)
			}
			h.ID = l.newID()
		}
		seen[h.ID] = struct{}{}
		if h.Timestamp.IsZero() {
			h.Timestamp = l.now()
		}
		ml.lastSeq++
		h.Seq = ml.lastSeq
		events[i] = ev.WithHeader(h)
	}
	ml.events = events
	ml.recompute()
	l.emit(ml, models.ChangeRestore, nil)

	return ml.state(), nil
}

// State returns a consistent copy of everything known about the match.
func (l *EventLog) State(matchID string) (MatchState, error) {
	ml, err := l.get(matchID)
	if err != nil {
		return MatchState{}, err
	}

	ml.mu.Lock()
	defer ml.mu.Unlock()
	return ml.state(), nil
}

func (l *EventLog) get(matchID string) (*matchLog, error) {
	l.mu.RLock()
	ml, ok := l.matches[matchID]
	l.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMatchNotFound, matchID)
	}
	return ml, nil
}

// emit hands the change to the sink while the match lock is held so changes
// of one match reach the sink in log order.
func (l *EventLog) emit(ml *matchLog, op models.ChangeOp, ev models.GameEvent) {
	if l.sink == nil {
		return
	}
	change := models.LogChange{
		Op:      op,
		MatchID: ml.match.ID,
		Players: ml.agg.Players.Clone(),
		Teams:   cloneTeams(ml.teams),
		Events:  len(ml.events),
		At:      l.now(),
	}
	if ev != nil {
		change.Event = models.RecordOf(ev)
	}
	if !l.sink.Enqueue(change) {
		l.logger.Warnw("Export queue full, change dropped", "match", ml.match.ID, "op", op)
	}
}

func (ml *matchLog) validate(ev models.GameEvent) (models.GameEvent, error) {
	switch e := ev.(type) {
	case *models.Shot:
		if e == nil {
			return nil, fmt.Errorf("%w: nil shot", models.ErrInvalidEvent)
		}
		ev = *e
	case *models.Foul:
		if e == nil {
			return nil, fmt.Errorf("%w: nil foul", models.ErrInvalidEvent)
		}
		ev = *e
	case nil:
		return nil, fmt.Errorf("%w: nil event", models.ErrInvalidEvent)
	}

	h := ev.Header()
	if h.PlayerID == "" {
		return nil, fmt.Errorf("%w: player id is required", models.ErrInvalidEvent)
	}
	if h.Side == "" {
		h.Side = models.SideHome
	}
	if !models.ValidSide(h.Side) {
		return nil, fmt.Errorf("%w: side %q", models.ErrInvalidEvent, h.Side)
	}
	if h.Period == "" {
		h.Period = ml.period
	}
	if !models.ValidPeriod(h.Period) {
		return nil, fmt.Errorf("%w: period %q", models.ErrInvalidEvent, h.Period)
	}

	switch e := ev.(type) {
	case models.Shot:
		if _, err := models.LookupShotType(e.ShotType); err != nil {
			return nil, err
		}
		if !e.Result.Valid() {
			return nil, fmt.Errorf("%w: shot result %q", models.ErrInvalidEvent, e.Result)
		}
	case models.Foul:
	default:
		return nil, fmt.Errorf("%w: unsupported event %T", models.ErrInvalidEvent, ev)
	}

	if !ml.knownAthlete(h.PlayerID) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAthlete, h.PlayerID)
	}
	if ml.enforceRoster && !ml.rosters.IsEligible(h.Side, h.PlayerID) {
		return nil, fmt.Errorf("%w: %s on %s", ErrNotConvened, h.PlayerID, h.Side)
	}
	return ev.WithHeader(h), nil
}

func (ml *matchLog) knownAthlete(id string) bool {
	if ml.athletes == nil {
		return true
	}
	_, ok := ml.athletes[id]
	return ok
}

// recompute rebuilds every derived value from the full log.
func (ml *matchLog) recompute() {
	ml.agg = Aggregate(ml.events)
	ml.bySide = make(map[models.Side]models.StatsTable, 2)
	ml.teams = ml.teams[:0]
	for _, side := range models.Sides() {
		table := Aggregate(FilterSide(ml.events, side)).Players
		ml.bySide[side] = table
		ml.teams = append(ml.teams, TeamTotals(side, table))
	}
}

func (ml *matchLog) state() MatchState {
	events := make([]models.GameEvent, len(ml.events))
	copy(events, ml.events)

	bySide := make(map[models.Side]models.StatsTable, len(ml.bySide))
	for side, table := range ml.bySide {
		bySide[side] = table.Clone()
	}

	var skipped []SkippedEvent
	if len(ml.agg.Skipped) > 0 {
		skipped = append(skipped, ml.agg.Skipped...)
	}

	return MatchState{
		MatchID:       ml.match.ID,
		Match:         ml.match,
		Period:        ml.period,
		EnforceRoster: ml.enforceRoster,
		Events:        events,
		Players:       ml.agg.Players.Clone(),
		BySide:        bySide,
		Teams:         cloneTeams(ml.teams),
		Rosters:       ml.rosters.Members(),
		Skipped:       skipped,
	}
}

func cloneTeams(teams []models.TeamStats) []models.TeamStats {
	out := make([]models.TeamStats, len(teams))
	for i, t := range teams {
		out[i] = t
		out[i].Breakdown = make(map[models.ShotTypeKey]models.ShotLine, len(t.Breakdown))
		for k, v := range t.Breakdown {
			out[i].Breakdown[k] = v
		}
	}
	return out
}
