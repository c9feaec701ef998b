// Package worker implements the buffered worker pool that mirrors committed
// log changes to the analytics stores. It decouples the scorekeeping path
// from database writes, providing:
// - Backpressure handling via load shedding
// - Batch inserts for efficient ClickHouse writes
// - Per-match ordering by sharding matches onto workers
// - Graceful shutdown with flush guarantees

package worker

import (
	"context"
	"encoding/json"
	"hash/fnv"
	"sync"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/basketmanager/stats-api/internal/models"
)

// Prometheus metrics
var (
	changesIngested = promauto.NewCounter(prometheus.CounterOpts{
		Name: "basket_export_changes_ingested_total",
		Help: "Total number of log changes accepted by the export queue",
	})

	changesProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "basket_export_changes_processed_total",
		Help: "Total number of log changes exported by workers",
	})

	changesFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "basket_export_changes_failed_total",
		Help: "Total number of log changes that failed export",
	})

	queueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "basket_export_queue_depth",
		Help: "Current depth of the export queues",
	})

	batchInsertDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "basket_export_batch_duration_seconds",
		Help:    "Duration of batch exports",
		Buckets: prometheus.DefBuckets,
	})

	changesLoadShed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "basket_export_changes_load_shed_total",
		Help: "Total number of log changes dropped due to load shedding",
	})
)

// Job represents a unit of work for the worker pool
type Job struct {
	Change    models.LogChange
	RawJSON   string
	Timestamp time.Time
}

// PoolConfig configures the worker pool
type PoolConfig struct {
	WorkerCount   int
	QueueSize     int
	BatchSize     int
	FlushInterval time.Duration
	FlushTimeout  time.Duration
	ClickHouse    driver.Conn   // nil disables the analytics insert
	Snapshots     SnapshotStore // nil disables live snapshots
	Logger        *zap.Logger
}

// Pool manages a pool of workers for async export. Each match is pinned to
// one worker queue so its changes are exported in log order.
type Pool struct {
	config   PoolConfig
	queues   []chan Job
	wg       sync.WaitGroup
	ctx      context.Context
	cancel   context.CancelFunc
	stopOnce sync.Once
	logger   *zap.SugaredLogger
}

// NewPool creates a new worker pool
func NewPool(cfg PoolConfig) *Pool {
	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 4
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 10000
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 500
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = time.Second
	}
	if cfg.FlushTimeout <= 0 {
		cfg.FlushTimeout = 10 * time.Second
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	perWorker := cfg.QueueSize / cfg.WorkerCount
	if perWorker < 1 {
		perWorker = 1
	}

	pool := &Pool{
		config: cfg,
		queues: make([]chan Job, cfg.WorkerCount),
		logger: cfg.Logger.Sugar(),
	}
	for i := range pool.queues {
		pool.queues[i] = make(chan Job, perWorker)
	}
	return pool
}

// Start launches the worker goroutines
func (p *Pool) Start(ctx context.Context) {
	p.ctx, p.cancel = context.WithCancel(ctx)

	for i := range p.queues {
		p.wg.Add(1)
		go p.worker(i)
	}

	// Start queue depth reporter
	go p.reportQueueDepth()

	p.logger.Infow("Worker pool started",
		"workers", len(p.queues),
		"queueSize", p.config.QueueSize,
		"batchSize", p.config.BatchSize,
		"clickhouse", p.config.ClickHouse != nil,
		"snapshots", p.config.Snapshots != nil,
	)
}

// Stop closes the queues, waits for the workers to flush what is left and
// releases the pool context.
func (p *Pool) Stop() {
	p.stopOnce.Do(func() {
		p.logger.Info("Stopping worker pool...")
		for _, q := range p.queues {
			close(q)
		}
		p.wg.Wait()
		if p.cancel != nil {
			p.cancel()
		}
		p.logger.Info("Worker pool stopped")
	})
}

// Enqueue adds a change to its match's queue without blocking. It returns
// false when the queue is full or the pool is stopped.
func (p *Pool) Enqueue(change models.LogChange) (ok bool) {
	rawJSON, _ := json.Marshal(change)

	job := Job{
		Change:    change,
		RawJSON:   string(rawJSON),
		Timestamp: time.Now(),
	}

	// Protect against sending on closed channel
	defer func() {
		if r := recover(); r != nil {
			p.logger.Warnw("Failed to enqueue change (pool stopped)", "error", r)
			changesLoadShed.Inc()
			ok = false
		}
	}()

	select {
	case p.queues[p.shard(change.MatchID)] <- job:
		changesIngested.Inc()
		return true
	default:
		changesLoadShed.Inc()
		return false
	}
}

// QueueDepth returns current queue size
func (p *Pool) QueueDepth() int {
	n := 0
	for _, q := range p.queues {
		n += len(q)
	}
	return n
}

func (p *Pool) shard(matchID string) int {
	h := fnv.New32a()
	h.Write([]byte(matchID))
	return int(h.Sum32() % uint32(len(p.queues)))
}

// worker processes jobs from its queue in batches
func (p *Pool) worker(id int) {
	defer p.wg.Done()

	queue := p.queues[id]
	batch := make([]Job, 0, p.config.BatchSize)
	ticker := time.NewTicker(p.config.FlushInterval)
	defer ticker.Stop()

	flush := func() {
		if len(batch) == 0 {
			return
		}

		start := time.Now()
		if err := p.processBatch(batch); err != nil {
			p.logger.Errorw("Batch export failed",
				"worker", id,
				"batchSize", len(batch),
				"error", err,
			)
			changesFailed.Add(float64(len(batch)))
		} else {
			p.logger.Debugw("Batch exported", "worker", id, "batchSize", len(batch), "duration", time.Since(start))
			changesProcessed.Add(float64(len(batch)))
		}
		batchInsertDuration.Observe(time.Since(start).Seconds())

		batch = batch[:0]
	}

	for {
		select {
		case job, ok := <-queue:
			if !ok {
				// Channel closed, flush remaining
				flush()
				return
			}

			batch = append(batch, job)
			if len(batch) >= p.config.BatchSize {
				flush()
			}

		case <-ticker.C:
			flush()
		}
	}
}

// processBatch writes a batch to ClickHouse, then publishes the live
// snapshots. The snapshot step runs even when the insert fails.
func (p *Pool) processBatch(batch []Job) error {
	if len(batch) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), p.config.FlushTimeout)
	defer cancel()

	var insertErr error
	if p.config.ClickHouse != nil {
		insertErr = p.insertBatch(ctx, batch)
	}

	if p.config.Snapshots != nil {
		changes := make([]models.LogChange, len(batch))
		for i, job := range batch {
			changes[i] = job.Change
		}
		if err := p.config.Snapshots.Publish(ctx, changes); err != nil {
			p.logger.Errorw("Snapshot publish failed", "error", err, "batchSize", len(batch))
			if insertErr == nil {
				return err
			}
		}
	}

	return insertErr
}

func (p *Pool) insertBatch(ctx context.Context, batch []Job) error {
	chBatch, err := p.config.ClickHouse.PrepareBatch(ctx, `
		INSERT INTO basket_stats.game_events (
			timestamp, recorded_at, match_id, op, event_id, seq, event_type,
			period, side, player_id, shot_type, result, points, log_size, raw_json
		)
	`)
	if err != nil {
		return err
	}

	for _, job := range batch {
		row := convertToClickHouseRow(job)
		err := chBatch.Append(
			row.Timestamp,
			row.RecordedAt,
			row.MatchID,
			row.Op,
			row.EventID,
			row.Seq,
			row.EventType,
			row.Period,
			row.Side,
			row.PlayerID,
			row.ShotType,
			row.Result,
			row.Points,
			row.LogSize,
			row.RawJSON,
		)
		if err != nil {
			p.logger.Warnw("Failed to append change to batch", "error", err, "match", job.Change.MatchID, "op", job.Change.Op)
			continue
		}
	}

	if err := chBatch.Send(); err != nil {
		p.logger.Errorw("Failed to send batch to ClickHouse", "error", err, "batchSize", len(batch))
		return err
	}
	return nil
}

func (p *Pool) reportQueueDepth() {
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			queueDepth.Set(float64(p.QueueDepth()))
		case <-p.ctx.Done():
			return
		}
	}
}
