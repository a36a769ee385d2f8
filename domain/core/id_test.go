package core

import (
	"testing"
)

func TestNewID_Unique(t *testing.T) {
	seen := make(map[ID]bool)
	for i := 0; i < 100; i++ {
		id := NewID()
		if id.IsEmpty() {
			t.Fatal("NewID returned empty ID")
		}
		if seen[id] {
			t.Fatalf("NewID returned duplicate: %s", id)
		}
		seen[id] = true
	}
}

func TestParseBatchID(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		id, err := ParseBatchID("batch-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id.String() != "batch-1" {
			t.Errorf("got %q", id.String())
		}
	})

	t.Run("empty", func(t *testing.T) {
		if _, err := ParseBatchID("  "); err == nil {
			t.Error("expected error for blank batch ID")
		}
	})
}

func TestUnsetStateError(t *testing.T) {
	err := NewUnsetStateError("blackbody radius")
	if !IsUnsetStateError(err) {
		t.Error("IsUnsetStateError should match NewUnsetStateError")
	}
	if IsUnsetStateError(ErrSeedMismatch) {
		t.Error("seed mismatch is not an unset-state error")
	}
}
