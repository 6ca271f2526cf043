package session

import "strings"

// HistoryLimit caps the ledger. Oldest entries are evicted past this.
const HistoryLimit = 12

const historyKey = "history"

// History is the bounded, deduplicated, most-recent-first ledger of past
// prompts. It holds no cache of its own: every read goes back to the
// store, so two History values over the same store always agree.
type History struct {
	store *Store
}

// NewHistory creates a ledger backed by store.
func NewHistory(store *Store) *History {
	return &History{store: store}
}

// Record inserts a prompt at the front of the ledger. Whitespace-only
// input is a no-op. A byte-identical entry already present is moved to the
// front rather than duplicated; the ledger is then truncated to
// HistoryLimit and persisted. Entries are never edited in place.
func (h *History) Record(entry string) {
	if strings.TrimSpace(entry) == "" {
		return
	}

	old := h.Entries()
	entries := make([]string, 0, len(old)+1)
	entries = append(entries, entry)
	for _, e := range old {
		if e != entry {
			entries = append(entries, e)
		}
	}
	if len(entries) > HistoryLimit {
		entries = entries[:HistoryLimit]
	}

	// Persistence failure degrades to a session-only ledger; not an error
	// worth interrupting the user for.
	_ = h.store.Save(historyKey, entries)
}

// Entries returns the ledger most-recent-first, reloaded from the store on
// every call. Callers must treat the slice as read-only display data.
func (h *History) Entries() []string {
	var entries []string
	h.store.Load(historyKey, &entries)
	return entries
}
