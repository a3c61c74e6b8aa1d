package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/horizone-blog/horizone/internal/logger"
)

func newTestSQLiteKV(t *testing.T) (*sqliteKV, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	kv := &sqliteKV{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return kv, mock, db
}

func TestSQLiteKV_Get_Found(t *testing.T) {
	kv, mock, db := newTestSQLiteKV(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"value"}).AddRow(`{"a":1}`)
	mock.ExpectQuery("SELECT value FROM kv_store").
		WithArgs("users_db").
		WillReturnRows(rows)

	value, found, err := kv.Get(context.Background(), "users_db")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !found {
		t.Fatal("expected key to be found")
	}
	if value != `{"a":1}` {
		t.Errorf("unexpected value: %s", value)
	}
}

func TestSQLiteKV_Get_NotFound(t *testing.T) {
	kv, mock, db := newTestSQLiteKV(t)
	defer db.Close()

	mock.ExpectQuery("SELECT value FROM kv_store").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, found, err := kv.Get(context.Background(), "missing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found {
		t.Fatal("expected key to be absent")
	}
}

func TestSQLiteKV_Get_DBError(t *testing.T) {
	kv, mock, db := newTestSQLiteKV(t)
	defer db.Close()

	mock.ExpectQuery("SELECT value FROM kv_store").
		WillReturnError(errors.New("db is locked"))

	_, _, err := kv.Get(context.Background(), "users_db")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestSQLiteKV_Set(t *testing.T) {
	kv, mock, db := newTestSQLiteKV(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO kv_store").
		WithArgs("theme", "dark").
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := kv.Set(context.Background(), "theme", "dark"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSQLiteKV_Delete(t *testing.T) {
	kv, mock, db := newTestSQLiteKV(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM kv_store").
		WithArgs("userSession").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := kv.Delete(context.Background(), "userSession"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestMemoryKV_RoundTrip(t *testing.T) {
	kv := NewMemoryKV()
	ctx := context.Background()

	_, found, err := kv.Get(ctx, "theme")
	if err != nil || found {
		t.Fatalf("expected empty store, found=%v err=%v", found, err)
	}

	if err := kv.Set(ctx, "theme", "dark"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	value, found, err := kv.Get(ctx, "theme")
	if err != nil || !found || value != "dark" {
		t.Fatalf("unexpected read: value=%q found=%v err=%v", value, found, err)
	}

	if err := kv.Delete(ctx, "theme"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, found, _ = kv.Get(ctx, "theme")
	if found {
		t.Fatal("expected key to be gone after delete")
	}
}
