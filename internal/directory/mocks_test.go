package directory

import (
	"context"
	"fmt"
	"reflect"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// assign copies values into Scan destinations; a nil value zeroes the target.
func assign(dest []any, values []any) error {
	if len(dest) != len(values) {
		return fmt.Errorf("scan: %d destinations for %d values", len(dest), len(values))
	}
	for i, v := range values {
		target := reflect.ValueOf(dest[i]).Elem()
		if v == nil {
			target.Set(reflect.Zero(target.Type()))
			continue
		}
		target.Set(reflect.ValueOf(v))
	}
	return nil
}

// MockRow implements pgx.Row
type MockRow struct {
	Values []any
	Err    error
}

func (m *MockRow) Scan(dest ...any) error {
	if m.Err != nil {
		return m.Err
	}
	return assign(dest, m.Values)
}

// MockRows implements pgx.Rows over fixed values
type MockRows struct {
	pgx.Rows
	Data   [][]any
	idx    int
	closed bool
}

func (m *MockRows) Next() bool {
	if m.idx >= len(m.Data) {
		return false
	}
	m.idx++
	return true
}

func (m *MockRows) Scan(dest ...any) error { return assign(dest, m.Data[m.idx-1]) }
func (m *MockRows) Close()                 { m.closed = true }
func (m *MockRows) Err() error             { return nil }

// MockPool implements PgPool, answering queries in call order
type MockPool struct {
	Row     *MockRow
	Rows    []*MockRows
	Queries []string
	Args    [][]any
	ExecErr error
}

func (m *MockPool) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	m.Queries = append(m.Queries, sql)
	m.Args = append(m.Args, args)
	if len(m.Rows) == 0 {
		return nil, fmt.Errorf("unexpected query")
	}
	rows := m.Rows[0]
	m.Rows = m.Rows[1:]
	return rows, nil
}

func (m *MockPool) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	m.Queries = append(m.Queries, sql)
	m.Args = append(m.Args, args)
	return m.Row
}

func (m *MockPool) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	m.Queries = append(m.Queries, sql)
	m.Args = append(m.Args, args)
	return pgconn.CommandTag{}, m.ExecErr
}
