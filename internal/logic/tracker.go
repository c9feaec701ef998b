package logic

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/basketmanager/stats-api/internal/directory"
	"github.com/basketmanager/stats-api/internal/models"
)

// TrackerConfig configures the tracker service
type TrackerConfig struct {
	// EnforceRoster is the default for matches opened without an override.
	EnforceRoster bool
	Logger        *zap.Logger
}

type trackerService struct {
	dir           directory.Directory
	log           *EventLog
	enforceRoster bool
	logger        *zap.SugaredLogger

	mu       sync.RWMutex
	athletes map[string]map[string]models.Athlete // by match id
}

func NewTrackerService(dir directory.Directory, log *EventLog, cfg TrackerConfig) TrackerService {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &trackerService{
		dir:           dir,
		log:           log,
		enforceRoster: cfg.EnforceRoster,
		logger:        logger.Sugar(),
		athletes:      make(map[string]map[string]models.Athlete),
	}
}

func (s *trackerService) OpenMatch(ctx context.Context, matchID string, enforceRoster *bool) (MatchState, error) {
	if s.log.IsOpen(matchID) {
		return s.log.State(matchID)
	}

	match, err := s.dir.Match(ctx, matchID)
	if err != nil {
		return MatchState{}, err
	}

	var (
		athletes           []models.Athlete
		homePool, awayPool []string
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		list, err := s.dir.AthletesByGroup(gctx, match.Group)
		if err != nil {
			return fmt.Errorf("athletes %s: %w", match.Group, err)
		}
		athletes = list
		return nil
	})

	g.Go(func() error {
		pool, err := s.teamPool(gctx, match.HomeTeamID)
		homePool = pool
		return err
	})

	g.Go(func() error {
		pool, err := s.teamPool(gctx, match.AwayTeamID)
		awayPool = pool
		return err
	})

	if err := g.Wait(); err != nil {
		return MatchState{}, err
	}

	opts := OpenOptions{
		EnforceRoster: s.enforceRoster,
		HomePool:      homePool,
		AwayPool:      awayPool,
	}
	if enforceRoster != nil {
		opts.EnforceRoster = *enforceRoster
	}

	byID := make(map[string]models.Athlete, len(athletes))
	// An empty group list means the directory has no athletes for it yet;
	// events are then accepted for any id.
	if len(athletes) > 0 {
		opts.Athletes = make([]string, 0, len(athletes))
		for _, a := range athletes {
			opts.Athletes = append(opts.Athletes, a.ID)
			byID[a.ID] = a
		}
	}

	state, err := s.log.Open(match, opts)
	if err != nil {
		return MatchState{}, err
	}

	s.mu.Lock()
	if _, ok := s.athletes[matchID]; !ok {
		s.athletes[matchID] = byID
	}
	s.mu.Unlock()

	return state, nil
}

// teamPool returns the athletes of a team. A match without a team id or with
// a team missing from the directory has no pool.
func (s *trackerService) teamPool(ctx context.Context, teamID string) ([]string, error) {
	if teamID == "" {
		return nil, nil
	}
	team, err := s.dir.Team(ctx, teamID)
	if errors.Is(err, directory.ErrNotFound) {
		s.logger.Warnw("Team not in directory, roster pool disabled", "team", teamID)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("team %s: %w", teamID, err)
	}
	return team.AthleteIDs, nil
}

func (s *trackerService) State(ctx context.Context, matchID string) (MatchState, error) {
	return s.log.State(matchID)
}

func (s *trackerService) SetPeriod(ctx context.Context, matchID string, period string) error {
	p, ok := models.ParsePeriod(period)
	if !ok {
		return fmt.Errorf("%w: period %q", models.ErrInvalidEvent, period)
	}
	return s.log.SetPeriod(matchID, p)
}

func (s *trackerService) RecordShot(ctx context.Context, matchID string, req models.RecordShotRequest) (models.EventRecord, error) {
	period, err := requestPeriod(req.Period)
	if err != nil {
		return models.EventRecord{}, err
	}
	ev, err := s.log.Append(matchID, models.Shot{
		EventHeader: models.EventHeader{Period: period, Side: req.Side, PlayerID: req.PlayerID},
		ShotType:    req.ShotType,
		Result:      req.Result,
	})
	if err != nil {
		return models.EventRecord{}, err
	}
	return models.RecordOf(ev), nil
}

func (s *trackerService) RecordFoul(ctx context.Context, matchID string, req models.RecordFoulRequest) (models.EventRecord, error) {
	period, err := requestPeriod(req.Period)
	if err != nil {
		return models.EventRecord{}, err
	}
	ev, err := s.log.Append(matchID, models.Foul{
		EventHeader: models.EventHeader{Period: period, Side: req.Side, PlayerID: req.PlayerID},
	})
	if err != nil {
		return models.EventRecord{}, err
	}
	return models.RecordOf(ev), nil
}

// requestPeriod parses an optional period; empty means the current one.
func requestPeriod(s string) (models.Period, error) {
	if s == "" {
		return "", nil
	}
	p, ok := models.ParsePeriod(s)
	if !ok {
		return "", fmt.Errorf("%w: period %q", models.ErrInvalidEvent, s)
	}
	return p, nil
}

// RemoveEvent reports false for an event that is not in the log. Only an
// unknown match is an error.
func (s *trackerService) RemoveEvent(ctx context.Context, matchID, eventID string) (bool, error) {
	if !s.log.IsOpen(matchID) {
		return false, fmt.Errorf("%w: %s", ErrMatchNotFound, matchID)
	}
	return s.log.Remove(matchID, eventID), nil
}

// RemoveEventAt removes the index-th row of the event list as filtered by
// side. Out of range rows report false.
func (s *trackerService) RemoveEventAt(ctx context.Context, matchID string, side models.Side, index int) (bool, error) {
	if !s.log.IsOpen(matchID) {
		return false, fmt.Errorf("%w: %s", ErrMatchNotFound, matchID)
	}
	return s.log.RemoveAt(matchID, side, index), nil
}

func (s *trackerService) Events(ctx context.Context, matchID string, side models.Side) ([]models.EventRecord, error) {
	events, err := s.log.EventsFor(matchID, side)
	if err != nil {
		return nil, err
	}
	out := make([]models.EventRecord, len(events))
	for i, ev := range events {
		out[i] = models.RecordOf(ev)
	}
	return out, nil
}

// ImportEvents appends records in order through the same validation as live
// scorekeeping. Invalid records are skipped and counted.
func (s *trackerService) ImportEvents(ctx context.Context, matchID string, records []models.EventRecord) (models.ImportResponse, error) {
	var resp models.ImportResponse
	for i, rec := range records {
		if err := ctx.Err(); err != nil {
			return resp, err
		}
		ev, err := rec.Event()
		if err == nil {
			_, err = s.log.Append(matchID, ev)
		}
		if errors.Is(err, ErrMatchNotFound) {
			return resp, err
		}
		if err != nil {
			s.logger.Warnw("Skipping imported event", "match", matchID, "index", i, "error", err)
			resp.Skipped++
			continue
		}
		resp.Processed++
	}
	return resp, nil
}

func (s *trackerService) ToggleRoster(ctx context.Context, matchID string, side models.Side, athleteID string) (models.RosterResponse, error) {
	members, outcome, err := s.log.ToggleRoster(matchID, side, athleteID)
	if err != nil {
		return models.RosterResponse{}, err
	}
	return models.RosterResponse{
		Side:    side,
		Members: members,
		Size:    len(members),
		Cap:     models.RosterCap,
		Outcome: string(outcome),
	}, nil
}

func (s *trackerService) Roster(ctx context.Context, matchID string, side models.Side) (models.RosterResponse, error) {
	members, err := s.log.Roster(matchID, side)
	if err != nil {
		return models.RosterResponse{}, err
	}
	return models.RosterResponse{Side: side, Members: members, Size: len(members), Cap: models.RosterCap}, nil
}

func (s *trackerService) PlayerStats(ctx context.Context, matchID string, side models.Side) (models.StatsTable, error) {
	return s.log.Stats(matchID, side)
}

// Ranking projects the stats of one side, or of both when side is empty,
// seeding the convened athletes.
func (s *trackerService) Ranking(ctx context.Context, matchID string, side models.Side, rosterOnly bool) ([]models.RankedPlayerRow, error) {
	state, err := s.log.State(matchID)
	if err != nil {
		return nil, err
	}

	table := state.Players
	var roster []string
	if side != "" {
		t, ok := state.BySide[side]
		if !ok {
			return nil, fmt.Errorf("%w: side %q", models.ErrInvalidEvent, side)
		}
		table = t
		roster = state.Rosters[side]
	} else {
		for _, sd := range models.Sides() {
			roster = append(roster, state.Rosters[sd]...)
		}
	}

	return Project(table, s.athletesOf(matchID), ProjectOptions{Roster: roster, RosterOnly: rosterOnly}), nil
}

func (s *trackerService) Report(ctx context.Context, matchID string) (models.MatchReport, error) {
	state, err := s.log.State(matchID)
	if err != nil {
		return models.MatchReport{}, err
	}
	return BuildReport(state, s.athletesOf(matchID)), nil
}

func (s *trackerService) Snapshot(ctx context.Context, matchID string) (models.LogSnapshot, error) {
	return s.log.Snapshot(matchID)
}

func (s *trackerService) Restore(ctx context.Context, snap models.LogSnapshot) (MatchState, error) {
	return s.log.Restore(snap)
}

func (s *trackerService) athletesOf(matchID string) map[string]models.Athlete {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.athletes[matchID]
}
