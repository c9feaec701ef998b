package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/basketmanager/stats-api/internal/models"
)

// SnapshotStore publishes live stats snapshots
type SnapshotStore interface {
	Publish(ctx context.Context, changes []models.LogChange) error
}

// StreamKey is the Redis stream carrying every change of a match.
func StreamKey(matchID string) string {
	return "stats.updates." + matchID
}

// BoxScoreKey holds the latest stats snapshot of a match.
func BoxScoreKey(matchID string) string {
	return "match:" + matchID + ":boxscore"
}

// RedisSnapshotStore implements SnapshotStore using Redis streams and keys
type RedisSnapshotStore struct {
	client    redis.Cmdable
	ttl       time.Duration
	streamLen int64
}

// NewRedisSnapshotStore keeps box scores for ttl (0 means no expiry).
func NewRedisSnapshotStore(client redis.Cmdable, ttl time.Duration) *RedisSnapshotStore {
	return &RedisSnapshotStore{client: client, ttl: ttl, streamLen: 1000}
}

// Publish appends every change to its match stream and overwrites the box
// score with the change's stats, in one pipeline.
func (s *RedisSnapshotStore) Publish(ctx context.Context, changes []models.LogChange) error {
	if len(changes) == 0 {
		return nil
	}

	pipe := s.client.Pipeline()
	for _, c := range changes {
		payload, err := json.Marshal(snapshotPayload{
			MatchID: c.MatchID,
			Events:  c.Events,
			Players: c.Players,
			Teams:   c.Teams,
			At:      c.At,
		})
		if err != nil {
			return fmt.Errorf("marshal snapshot %s: %w", c.MatchID, err)
		}

		pipe.XAdd(ctx, &redis.XAddArgs{
			Stream: StreamKey(c.MatchID),
			MaxLen: s.streamLen,
			Approx: true,
			Values: map[string]interface{}{
				"op":       string(c.Op),
				"event_id": c.Event.ID,
				"events":   c.Events,
				"payload":  string(payload),
			},
		})
		pipe.Set(ctx, BoxScoreKey(c.MatchID), string(payload), s.ttl)
	}

	_, err := pipe.Exec(ctx)
	if err != nil && err != redis.Nil {
		return fmt.Errorf("redis pipeline: %w", err)
	}
	return nil
}

type snapshotPayload struct {
	MatchID string             `json:"match_id"`
	Events  int                `json:"events"`
	Players models.StatsTable  `json:"players"`
	Teams   []models.TeamStats `json:"teams"`
	At      time.Time          `json:"at"`
}
