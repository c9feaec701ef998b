package handlers

import (
	"context"

	"go.uber.org/zap"

	"github.com/basketmanager/stats-api/internal/logic"
)

// MaxBodySize limits the size of request bodies to 1MB
const MaxBodySize = 1048576

// ExportQueue is the part of the export worker pool the API reports on
type ExportQueue interface {
	QueueDepth() int
}

// Check pings one backing store for the readiness probe
type Check func(ctx context.Context) error

type Config struct {
	Tracker logic.TrackerService
	Queue   ExportQueue
	// Checks are run by /ready, keyed by store name.
	Checks map[string]Check
	Logger *zap.Logger
}

type Handler struct {
	tracker logic.TrackerService
	queue   ExportQueue
	checks  map[string]Check
	logger  *zap.SugaredLogger
}

func New(cfg Config) *Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		tracker: cfg.Tracker,
		queue:   cfg.Queue,
		checks:  cfg.Checks,
		logger:  logger.Sugar(),
	}
}
