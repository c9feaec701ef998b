package worker

import (
	"context"
	"errors"
	"sync"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"

	"github.com/basketmanager/stats-api/internal/models"
)

// MockClickHouseConn implements driver.Conn for testing
type MockClickHouseConn struct {
	driver.Conn

	mu       sync.Mutex
	Queries  []string
	Rows     [][]interface{}
	Batches  int
	SendErr  error
	Prepared int
}

func (m *MockClickHouseConn) PrepareBatch(ctx context.Context, query string, opts ...driver.PrepareBatchOption) (driver.Batch, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Prepared++
	m.Queries = append(m.Queries, query)
	return &MockBatch{conn: m}, nil
}

func (m *MockClickHouseConn) rowCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Rows)
}

// MockBatch implements driver.Batch, handing rows to its conn on Send
type MockBatch struct {
	driver.Batch
	conn *MockClickHouseConn
	rows [][]interface{}
	sent bool
}

func (m *MockBatch) Append(v ...interface{}) error {
	m.rows = append(m.rows, v)
	return nil
}

func (m *MockBatch) Send() error {
	m.conn.mu.Lock()
	defer m.conn.mu.Unlock()
	if m.conn.SendErr != nil {
		return m.conn.SendErr
	}
	m.sent = true
	m.conn.Batches++
	m.conn.Rows = append(m.conn.Rows, m.rows...)
	return nil
}

func (m *MockBatch) IsSent() bool { return m.sent }
func (m *MockBatch) Rows() int    { return len(m.rows) }
func (m *MockBatch) Abort() error { return nil }

// MockSnapshotStore records published changes
type MockSnapshotStore struct {
	mu        sync.Mutex
	Published []models.LogChange
	Err       error
}

func (m *MockSnapshotStore) Publish(ctx context.Context, changes []models.LogChange) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.Published = append(m.Published, changes...)
	return nil
}

func (m *MockSnapshotStore) changes() []models.LogChange {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.LogChange, len(m.Published))
	copy(out, m.Published)
	return out
}

var errSendFailed = errors.New("send failed")
