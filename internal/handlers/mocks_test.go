package handlers

import (
	"context"

	"github.com/basketmanager/stats-api/internal/logic"
	"github.com/basketmanager/stats-api/internal/models"
)

// MockTracker implements the methods the handler tests exercise. Calling any
// other method panics through the nil embedded interface.
type MockTracker struct {
	logic.TrackerService

	OpenMatchFunc    func(ctx context.Context, matchID string, enforceRoster *bool) (logic.MatchState, error)
	RecordShotFunc   func(ctx context.Context, matchID string, req models.RecordShotRequest) (models.EventRecord, error)
	RecordFoulFunc   func(ctx context.Context, matchID string, req models.RecordFoulRequest) (models.EventRecord, error)
	RemoveEventFunc  func(ctx context.Context, matchID, eventID string) (bool, error)
	RemoveAtFunc     func(ctx context.Context, matchID string, side models.Side, index int) (bool, error)
	ImportEventsFunc func(ctx context.Context, matchID string, records []models.EventRecord) (models.ImportResponse, error)
	ToggleRosterFunc func(ctx context.Context, matchID string, side models.Side, athleteID string) (models.RosterResponse, error)
	RankingFunc      func(ctx context.Context, matchID string, side models.Side, rosterOnly bool) ([]models.RankedPlayerRow, error)
}

func (m *MockTracker) OpenMatch(ctx context.Context, matchID string, enforceRoster *bool) (logic.MatchState, error) {
	if m.OpenMatchFunc != nil {
		return m.OpenMatchFunc(ctx, matchID, enforceRoster)
	}
	return logic.MatchState{MatchID: matchID}, nil
}

func (m *MockTracker) RecordShot(ctx context.Context, matchID string, req models.RecordShotRequest) (models.EventRecord, error) {
	if m.RecordShotFunc != nil {
		return m.RecordShotFunc(ctx, matchID, req)
	}
	return models.EventRecord{Type: models.EventShot, ID: "e1", PlayerID: req.PlayerID}, nil
}

func (m *MockTracker) RecordFoul(ctx context.Context, matchID string, req models.RecordFoulRequest) (models.EventRecord, error) {
	if m.RecordFoulFunc != nil {
		return m.RecordFoulFunc(ctx, matchID, req)
	}
	return models.EventRecord{Type: models.EventFoul, ID: "e1", PlayerID: req.PlayerID}, nil
}

func (m *MockTracker) RemoveEvent(ctx context.Context, matchID, eventID string) (bool, error) {
	if m.RemoveEventFunc != nil {
		return m.RemoveEventFunc(ctx, matchID, eventID)
	}
	return true, nil
}

func (m *MockTracker) RemoveEventAt(ctx context.Context, matchID string, side models.Side, index int) (bool, error) {
	if m.RemoveAtFunc != nil {
		return m.RemoveAtFunc(ctx, matchID, side, index)
	}
	return true, nil
}

func (m *MockTracker) ImportEvents(ctx context.Context, matchID string, records []models.EventRecord) (models.ImportResponse, error) {
	if m.ImportEventsFunc != nil {
		return m.ImportEventsFunc(ctx, matchID, records)
	}
	return models.ImportResponse{Processed: len(records)}, nil
}

func (m *MockTracker) ToggleRoster(ctx context.Context, matchID string, side models.Side, athleteID string) (models.RosterResponse, error) {
	if m.ToggleRosterFunc != nil {
		return m.ToggleRosterFunc(ctx, matchID, side, athleteID)
	}
	return models.RosterResponse{Side: side, Members: []string{athleteID}, Size: 1, Cap: models.RosterCap, Outcome: "added"}, nil
}

func (m *MockTracker) Ranking(ctx context.Context, matchID string, side models.Side, rosterOnly bool) ([]models.RankedPlayerRow, error) {
	if m.RankingFunc != nil {
		return m.RankingFunc(ctx, matchID, side, rosterOnly)
	}
	return nil, nil
}

type MockQueue struct {
	Depth int
}

func (m *MockQueue) QueueDepth() int { return m.Depth }
