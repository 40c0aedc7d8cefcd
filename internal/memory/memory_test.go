package memory

import (
	"errors"
	"testing"
)

func TestStoreRecall(t *testing.T) {
	b := NewBank()
	if err := b.Store("M", 42); err != nil {
		t.Fatalf("store: %v", err)
	}
	v, err := b.Recall("M")
	if err != nil {
		t.Fatalf("recall: %v", err)
	}
	if v != 42 {
		t.Fatalf("expected 42, got %v", v)
	}
}

func TestRecallUnsetIsZero(t *testing.T) {
	b := NewBank()
	v, err := b.Recall("M")
	if err != nil {
		t.Fatalf("recall: %v", err)
	}
	if v != 0 {
		t.Fatalf("expected 0 for unset slot, got %v", v)
	}
}

func TestAddTreatsUnsetAsZero(t *testing.T) {
	b := NewBank()
	if err := b.Add("M", 5); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := b.Add("M", -2); err != nil {
		t.Fatalf("add: %v", err)
	}
	v, err := b.Recall("M")
	if err != nil {
		t.Fatalf("recall: %v", err)
	}
	if v != 3 {
		t.Fatalf("expected 3, got %v", v)
	}
}

func TestClear(t *testing.T) {
	b := NewBank()
	if err := b.Store("M", 1); err != nil {
		t.Fatalf("store: %v", err)
	}
	if err := b.Clear("M"); err != nil {
		t.Fatalf("clear: %v", err)
	}
	v, err := b.Recall("M")
	if err != nil {
		t.Fatalf("recall: %v", err)
	}
	if v != 0 {
		t.Fatalf("expected 0 after clear, got %v", v)
	}
}

func TestInvalidSlotNames(t *testing.T) {
	b := NewBank()
	for _, slot := range []string{"", "a b", "m-1", "x!"} {
		err := b.Store(slot, 1)
		if err == nil {
			t.Fatalf("expected invalid slot %q to fail", slot)
		}
		var serr *SlotError
		if !errors.As(err, &serr) {
			t.Fatalf("expected *SlotError, got %T", err)
		}
	}
}

func TestSnapshotRestore(t *testing.T) {
	b := NewBank()
	for name, v := range map[string]float64{"M": 1, "A": 2, "B": 3} {
		if err := b.Store(name, v); err != nil {
			t.Fatalf("store %q: %v", name, err)
		}
	}
	snap := b.Snapshot()
	if len(snap) != 3 {
		t.Fatalf("expected 3 slots, got %d", len(snap))
	}
	if snap[0].Name != "A" || snap[1].Name != "B" || snap[2].Name != "M" {
		t.Fatalf("expected sorted slots, got %+v", snap)
	}

	other := NewBank()
	other.Restore(snap)
	v, err := other.Recall("B")
	if err != nil {
		t.Fatalf("recall: %v", err)
	}
	if v != 3 {
		t.Fatalf("expected restored value 3, got %v", v)
	}
}
