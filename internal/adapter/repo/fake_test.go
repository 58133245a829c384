package repo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// fakeExecutor scripts SQL results per call and records everything it was
// asked to run.
type fakeExecutor struct {
	execCalls  []sqlCall
	queryCalls []sqlCall

	execTags  []pgconn.CommandTag
	execErrs  []error
	rowQueue  []pgx.Row
	rowsQueue []pgx.Rows
}

type sqlCall struct {
	query string
	args  []any
}

func (f *fakeExecutor) Exec(_ context.Context, query string, args ...any) (pgconn.CommandTag, error) {
	f.execCalls = append(f.execCalls, sqlCall{query: query, args: args})
	i := len(f.execCalls) - 1
	var tag pgconn.CommandTag
	if i < len(f.execTags) {
		tag = f.execTags[i]
	}
	var err error
	if i < len(f.execErrs) {
		err = f.execErrs[i]
	}
	return tag, err
}

func (f *fakeExecutor) QueryRow(_ context.Context, query string, args ...any) pgx.Row {
	f.queryCalls = append(f.queryCalls, sqlCall{query: query, args: args})
	if len(f.rowQueue) == 0 {
		return fakeRow{err: pgx.ErrNoRows}
	}
	row := f.rowQueue[0]
	f.rowQueue = f.rowQueue[1:]
	return row
}

func (f *fakeExecutor) Query(_ context.Context, query string, args ...any) (pgx.Rows, error) {
	f.queryCalls = append(f.queryCalls, sqlCall{query: query, args: args})
	if len(f.rowsQueue) == 0 {
		return &fakeRows{}, nil
	}
	rows := f.rowsQueue[0]
	f.rowsQueue = f.rowsQueue[1:]
	return rows, nil
}

// fakeRow answers one Scan from a value list.
type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return assignAll(dest, r.values)
}

// fakeRows iterates a fixed result set.
type fakeRows struct {
	rows [][]any
	pos  int
	err  error
}

func (r *fakeRows) Next() bool {
	if r.pos >= len(r.rows) {
		return false
	}
	r.pos++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	return assignAll(dest, r.rows[r.pos-1])
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Values() ([]any, error)                       { return nil, nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func assignAll(dest, values []any) error {
	if len(dest) != len(values) {
		return fmt.Errorf("scan: %d destinations for %d values", len(dest), len(values))
	}
	for i, v := range values {
		if err := assign(dest[i], v); err != nil {
			return fmt.Errorf("scan column %d: %w", i, err)
		}
	}
	return nil
}

func assign(dst, src any) error {
	switch d := dst.(type) {
	case *int64:
		v, ok := src.(int64)
		if !ok {
			return fmt.Errorf("want int64, got %T", src)
		}
		*d = v
	case *string:
		v, ok := src.(string)
		if !ok {
			return fmt.Errorf("want string, got %T", src)
		}
		*d = v
	case *time.Time:
		v, ok := src.(time.Time)
		if !ok {
			return fmt.Errorf("want time.Time, got %T", src)
		}
		*d = v
	case *bool:
		v, ok := src.(bool)
		if !ok {
			return fmt.Errorf("want bool, got %T", src)
		}
		*d = v
	case *[]byte:
		v, ok := src.([]byte)
		if !ok {
			return fmt.Errorf("want []byte, got %T", src)
		}
		*d = v
	case *sql.NullString:
		switch v := src.(type) {
		case nil:
			*d = sql.NullString{}
		case string:
			*d = sql.NullString{String: v, Valid: true}
		default:
			return fmt.Errorf("want string or nil, got %T", src)
		}
	default:
		return fmt.Errorf("unsupported destination %T", dst)
	}
	return nil
}
