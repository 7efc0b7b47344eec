package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"click-counter-service/internal/record/core/domain"
)

// fakeResult implements sql.Result for tests.
type fakeResult struct {
	rowsAffected int64
}

func (f *fakeResult) LastInsertId() (int64, error) {
	return 0, errors.New("not implemented")
}

func (f *fakeResult) RowsAffected() (int64, error) {
	return f.rowsAffected, nil
}

// fakeDB implements DB interface for tests.
type fakeDB struct {
	ExecFn     func(ctx context.Context, query string, args ...any) (sql.Result, error)
	lastQuery  string
	lastArgs   []any
	execCalled bool
}

func (f *fakeDB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	f.execCalled = true
	f.lastQuery = query
	f.lastArgs = args
	if f.ExecFn != nil {
		return f.ExecFn(ctx, query, args...)
	}
	return &fakeResult{rowsAffected: 1}, nil
}

// ------------------------------------------------------------
// SUCCESS
// ------------------------------------------------------------

func TestClickRepository_InsertClick(t *testing.T) {
	db := &fakeDB{
		ExecFn: func(ctx context.Context, query string, args ...any) (sql.Result, error) {
			if !strings.Contains(query, "INSERT INTO clicks") {
				t.Fatalf("unexpected query: %s", query)
			}
			return &fakeResult{rowsAffected: 1}, nil
		},
	}

	repo := NewClickRepository(db)

	now := time.Now().UTC()
	err := repo.InsertClick(context.Background(), &domain.ClickEvent{ClickTime: now})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !db.execCalled {
		t.Fatalf("expected ExecContext to be called")
	}
	if len(db.lastArgs) != 1 {
		t.Fatalf("expected 1 arg, got %d", len(db.lastArgs))
	}
	if got, ok := db.lastArgs[0].(time.Time); !ok || !got.Equal(now) {
		t.Fatalf("expected click_time arg %v, got %v", now, db.lastArgs[0])
	}
}

// ------------------------------------------------------------
// DB ERROR
// ------------------------------------------------------------

func TestClickRepository_InsertClick_Error(t *testing.T) {
	db := &fakeDB{
		ExecFn: func(ctx context.Context, query string, args ...any) (sql.Result, error) {
			return nil, errors.New("db error")
		},
	}

	repo := NewClickRepository(db)

	err := repo.InsertClick(context.Background(), &domain.ClickEvent{ClickTime: time.Now().UTC()})
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
}

// ------------------------------------------------------------
// NO ROW WRITTEN
// ------------------------------------------------------------

func TestClickRepository_InsertClick_NoRowAffected(t *testing.T) {
	db := &fakeDB{
		ExecFn: func(ctx context.Context, query string, args ...any) (sql.Result, error) {
			return &fakeResult{rowsAffected: 0}, nil
		},
	}

	repo := NewClickRepository(db)

	err := repo.InsertClick(context.Background(), &domain.ClickEvent{ClickTime: time.Now().UTC()})
	if err == nil {
		t.Fatalf("expected error when no row is written, got nil")
	}
}
