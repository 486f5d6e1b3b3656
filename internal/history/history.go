package history

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/nguyentantai21042004/brief-flow/internal/store"
	"github.com/nguyentantai21042004/brief-flow/internal/summarizer"
)

const (
	storageKey = "history"

	// MaxEntries bounds the persisted list; oldest entries are dropped.
	MaxEntries = 10
)

// Entry is one completed processing run. Entries are only recorded after
// both transcription and summarization succeeded.
type Entry struct {
	ID          string                  `json:"id"`
	Timestamp   time.Time               `json:"timestamp"`
	FileName    string                  `json:"fileName"`
	Transcript  string                  `json:"transcript"`
	Summary     []string                `json:"summary"`
	ActionItems []summarizer.ActionItem `json:"actionItems"`
}

// History keeps a newest-first, bounded list of processed results in the
// key-value store, persisted as one blob under one key.
type History struct {
	store store.Store
	clock func() time.Time
	newID func() string
}

func New(s store.Store) *History {
	return &History{
		store: s,
		clock: time.Now,
		newID: func() string { return uuid.NewString() },
	}
}

// Record prepends a new entry and truncates the list to MaxEntries.
// The whole list is persisted in one write.
func (h *History) Record(ctx context.Context, fileName, transcript string, summary []string, items []summarizer.ActionItem) Entry {
	entry := Entry{
		ID:          h.newID(),
		Timestamp:   h.clock().UTC(),
		FileName:    fileName,
		Transcript:  transcript,
		Summary:     summary,
		ActionItems: items,
	}

	entries := append([]Entry{entry}, h.List(ctx)...)
	if len(entries) > MaxEntries {
		entries = entries[:MaxEntries]
	}
	h.store.Set(ctx, storageKey, entries)
	return entry
}

// List returns all entries, newest first. A missing or corrupt blob reads
// as an empty history.
func (h *History) List(ctx context.Context) []Entry {
	raw, ok := h.store.Get(ctx, storageKey)
	if !ok {
		return nil
	}
	var entries []Entry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil
	}
	return entries
}

// Find returns the entry with the given id, if present.
func (h *History) Find(ctx context.Context, id string) (Entry, bool) {
	for _, e := range h.List(ctx) {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

// Remove deletes the entry with the given id, keeping order otherwise.
func (h *History) Remove(ctx context.Context, id string) {
	entries := h.List(ctx)
	kept := entries[:0]
	for _, e := range entries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	h.store.Set(ctx, storageKey, kept)
}

// Clear drops the whole history.
func (h *History) Clear(ctx context.Context) {
	h.store.Remove(ctx, storageKey)
}
