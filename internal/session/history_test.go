package session

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func newTestHistory(t *testing.T) (*History, *Store) {
	t.Helper()
	store := NewStore(t.TempDir())
	return NewHistory(store), store
}

func TestRecord_MostRecentFirst(t *testing.T) {
	h, _ := newTestHistory(t)
	h.Record("one")
	h.Record("two")
	h.Record("three")

	want := []string{"three", "two", "one"}
	if got := h.Entries(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestRecord_DuplicateMovesToFront(t *testing.T) {
	h, _ := newTestHistory(t)
	h.Record("one")
	h.Record("two")
	h.Record("one")

	got := h.Entries()
	if len(got) != 2 {
		t.Fatalf("expected length 2 after duplicate, got %d (%v)", len(got), got)
	}
	if got[0] != "one" || got[1] != "two" {
		t.Errorf("expected duplicate moved to front, got %v", got)
	}
}

func TestRecord_SameEntryTwiceInARow(t *testing.T) {
	h, _ := newTestHistory(t)
	h.Record("x")
	before := len(h.Entries())
	h.Record("x")

	got := h.Entries()
	if len(got) != before {
		t.Errorf("expected unchanged length %d, got %d", before, len(got))
	}
	if got[0] != "x" {
		t.Errorf("expected x at front, got %v", got)
	}
}

func TestRecord_CapacityTwelve(t *testing.T) {
	h, _ := newTestHistory(t)
	for i := 1; i <= 13; i++ {
		h.Record(fmt.Sprintf("prompt %d", i))
	}

	got := h.Entries()
	if len(got) != HistoryLimit {
		t.Fatalf("expected %d entries, got %d", HistoryLimit, len(got))
	}
	if got[0] != "prompt 13" {
		t.Errorf("expected newest first, got %q", got[0])
	}
	if got[len(got)-1] != "prompt 2" {
		t.Errorf("expected oldest survivor prompt 2, got %q", got[len(got)-1])
	}
	for _, e := range got {
		if e == "prompt 1" {
			t.Error("expected prompt 1 evicted")
		}
	}
}

func TestRecord_EmptyIsNoop(t *testing.T) {
	h, _ := newTestHistory(t)
	h.Record("")
	h.Record("   \n\t")
	if got := h.Entries(); len(got) != 0 {
		t.Errorf("expected empty ledger, got %v", got)
	}
}

// Entries reloads from the store each call, so a second History over the
// same store sees everything the first one recorded.
func TestEntries_Restartable(t *testing.T) {
	h, store := newTestHistory(t)
	h.Record("persisted")

	again := NewHistory(store)
	got := again.Entries()
	if len(got) != 1 || got[0] != "persisted" {
		t.Errorf("expected persisted ledger via fresh History, got %v", got)
	}
}

func TestEntries_CorruptStoreFallsBackToEmpty(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "history.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}
	h := NewHistory(NewStore(dir))
	if got := h.Entries(); len(got) != 0 {
		t.Errorf("expected empty ledger for corrupt store, got %v", got)
	}
}

func TestRecord_UnwritableStoreDegradesSilently(t *testing.T) {
	// A store rooted somewhere unwritable must not panic or error out.
	h := NewHistory(NewStore(filepath.Join(t.TempDir(), "f", "g", "\x00bad")))
	h.Record("hello")
	_ = h.Entries()
}
