//go:build !sqlite

package storage

import (
	"errors"
	"strings"
	"testing"
)

func TestNewStoreSQLiteUnavailable(t *testing.T) {
	_, err := NewStore(KindSQLite, "runs.db")
	if !errors.Is(err, ErrSQLiteUnavailable) {
		t.Fatalf("expected sqlite unavailable error, got %v", err)
	}
	if !strings.Contains(err.Error(), "runs.db") {
		t.Fatalf("expected db path in error, got %v", err)
	}
}
