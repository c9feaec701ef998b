package logic

import (
	"context"

	"github.com/basketmanager/stats-api/internal/models"
)

// TrackerService is the scorekeeping surface the HTTP layer talks to. It
// composes the directory with the event log.
type TrackerService interface {
	// OpenMatch resolves the match from the directory and opens its log.
	// enforceRoster overrides the service default when non-nil.
	OpenMatch(ctx context.Context, matchID string, enforceRoster *bool) (MatchState, error)
	State(ctx context.Context, matchID string) (MatchState, error)
	SetPeriod(ctx context.Context, matchID string, period string) error

	RecordShot(ctx context.Context, matchID string, req models.RecordShotRequest) (models.EventRecord, error)
	RecordFoul(ctx context.Context, matchID string, req models.RecordFoulRequest) (models.EventRecord, error)
	RemoveEvent(ctx context.Context, matchID, eventID string) (bool, error)
	RemoveEventAt(ctx context.Context, matchID string, side models.Side, index int) (bool, error)
	Events(ctx context.Context, matchID string, side models.Side) ([]models.EventRecord, error)
	ImportEvents(ctx context.Context, matchID string, records []models.EventRecord) (models.ImportResponse, error)

	ToggleRoster(ctx context.Context, matchID string, side models.Side, athleteID string) (models.RosterResponse, error)
	Roster(ctx context.Context, matchID string, side models.Side) (models.RosterResponse, error)

	PlayerStats(ctx context.Context, matchID string, side models.Side) (models.StatsTable, error)
	Ranking(ctx context.Context, matchID string, side models.Side, rosterOnly bool) ([]models.RankedPlayerRow, error)
	Report(ctx context.Context, matchID string) (models.MatchReport, error)

	Snapshot(ctx context.Context, matchID string) (models.LogSnapshot, error)
	Restore(ctx context.Context, snap models.LogSnapshot) (MatchState, error)
}
