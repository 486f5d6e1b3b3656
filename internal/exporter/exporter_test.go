package exporter

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/nguyentantai21042004/brief-flow/internal/summarizer"
)

func strptr(s string) *string { return &s }

func sampleDocument() Document {
	return Document{
		Title:      "Weekly sync",
		FileName:   "weekly-sync.mp3",
		CreatedAt:  time.Date(2026, 2, 10, 9, 30, 0, 0, time.UTC),
		Transcript: "Good morning everyone.\n\nLet's review the roadmap.",
		Summary:    []string{"Roadmap reviewed", "Launch moved to March"},
		ActionItems: []summarizer.ActionItem{
			{Description: "Update the launch plan", Assignee: strptr("Tai"), Deadline: strptr("Friday")},
			{Description: "Book a follow-up"},
		},
	}
}

func TestMarkdown(t *testing.T) {
	md := Markdown(sampleDocument())

	for _, want := range []string{
		"# Weekly sync",
		"## Summary",
		"- Roadmap reviewed",
		"## Action Items",
		"- [ ] Update the launch plan (@Tai, due Friday)",
		"- [ ] Book a follow-up\n",
		"## Transcript",
		"Good morning everyone.",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q", want)
		}
	}

	// An item without assignee/deadline gets no metadata suffix.
	if strings.Contains(md, "Book a follow-up (") {
		t.Error("unexpected metadata on bare action item")
	}
}

func TestMarkdownEmptySections(t *testing.T) {
	doc := sampleDocument()
	doc.Summary = nil
	doc.ActionItems = nil

	md := Markdown(doc)
	if !strings.Contains(md, "_No summary points._") {
		t.Error("missing empty-summary placeholder")
	}
	if !strings.Contains(md, "_No action items._") {
		t.Error("missing empty-actions placeholder")
	}
}

func TestWriteMarkdown(t *testing.T) {
	dir := t.TempDir()
	path, err := WriteMarkdown(dir, sampleDocument())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(path, "weekly-sync-summary.md") {
		t.Errorf("path = %q", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "# Weekly sync") {
		t.Error("file content missing title")
	}
}

func TestWriteDocx(t *testing.T) {
	dir := t.TempDir()
	path, err := WriteDocx(dir, sampleDocument())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(path, "weekly-sync-summary.docx") {
		t.Errorf("path = %q", path)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("docx file is empty")
	}
}

func TestTranscriptParagraphs(t *testing.T) {
	got := transcriptParagraphs("a line\nsame para\n\nsecond para\n\n\n")
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0] != "a line same para" || got[1] != "second para" {
		t.Errorf("paragraphs = %v", got)
	}
}
