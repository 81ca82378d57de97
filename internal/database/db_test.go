package database

import (
	"context"
	"strings"
	"testing"
)

func TestConnect_Validation(t *testing.T) {
	if _, err := Connect(context.Background(), ""); err == nil {
		t.Fatalf("expected error for empty dsn")
	}

	_, err := Connect(context.Background(), "not a dsn at all")
	if err == nil {
		t.Fatalf("expected error for invalid dsn")
	}
	if !strings.Contains(err.Error(), "parse pgx config") {
		t.Fatalf("expected parse error, got %v", err)
	}
}
