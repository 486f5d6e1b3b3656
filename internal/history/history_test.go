package history

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/nguyentantai21042004/brief-flow/internal/store"
	"github.com/nguyentantai21042004/brief-flow/internal/summarizer"
)

func newTestHistory() *History {
	h := New(store.NewMemory())
	i := 0
	h.newID = func() string {
		i++
		return fmt.Sprintf("id-%d", i)
	}
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	h.clock = func() time.Time {
		base = base.Add(time.Minute)
		return base
	}
	return h
}

func TestRecordAndList(t *testing.T) {
	ctx := context.Background()
	h := newTestHistory()

	h.Record(ctx, "a.mp3", "transcript a", []string{"point"}, nil)
	h.Record(ctx, "b.mp3", "transcript b", []string{"point"}, []summarizer.ActionItem{
		{Description: "follow up"},
	})

	entries := h.List(ctx)
	if len(entries) != 2 {
		t.Fatalf("len = %d, want 2", len(entries))
	}
	// Newest first.
	if entries[0].FileName != "b.mp3" || entries[1].FileName != "a.mp3" {
		t.Errorf("order = %s, %s; want b.mp3, a.mp3", entries[0].FileName, entries[1].FileName)
	}
	if entries[0].ID == entries[1].ID {
		t.Error("ids must be unique")
	}
}

func TestRecordCapsLength(t *testing.T) {
	ctx := context.Background()
	h := newTestHistory()

	n := MaxEntries + 5
	for i := 0; i < n; i++ {
		h.Record(ctx, fmt.Sprintf("file-%d.mp3", i), "t", nil, nil)
	}

	entries := h.List(ctx)
	if len(entries) != MaxEntries {
		t.Fatalf("len = %d, want %d", len(entries), MaxEntries)
	}
	// The most recent MaxEntries, newest first.
	for i := 0; i < MaxEntries; i++ {
		want := fmt.Sprintf("file-%d.mp3", n-1-i)
		if entries[i].FileName != want {
			t.Errorf("entries[%d] = %s, want %s", i, entries[i].FileName, want)
		}
	}
}

func TestFindAndRemove(t *testing.T) {
	ctx := context.Background()
	h := newTestHistory()

	e1 := h.Record(ctx, "a.mp3", "t", nil, nil)
	e2 := h.Record(ctx, "b.mp3", "t", nil, nil)

	if got, ok := h.Find(ctx, e1.ID); !ok || got.FileName != "a.mp3" {
		t.Errorf("Find(%s) = %+v, %v", e1.ID, got, ok)
	}

	h.Remove(ctx, e1.ID)
	if _, ok := h.Find(ctx, e1.ID); ok {
		t.Error("entry still present after Remove")
	}
	if _, ok := h.Find(ctx, e2.ID); !ok {
		t.Error("unrelated entry removed")
	}
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	h := newTestHistory()

	h.Record(ctx, "a.mp3", "t", nil, nil)
	h.Clear(ctx)
	if got := h.List(ctx); len(got) != 0 {
		t.Errorf("List() after Clear() = %v, want empty", got)
	}
}

func TestListEmptyStore(t *testing.T) {
	h := New(store.NewMemory())
	if got := h.List(context.Background()); got != nil {
		t.Errorf("List() = %v, want nil", got)
	}
}
