package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/nguyentantai21042004/brief-flow/internal/history"
	"github.com/nguyentantai21042004/brief-flow/internal/summarizer"
)

// Formatter renders user-facing status lines and results.
type Formatter struct {
	w io.Writer
}

func NewFormatter(w io.Writer) *Formatter {
	return &Formatter{w: w}
}

func (f *Formatter) Error(msg string) {
	fmt.Fprintf(f.w, "❌ %s\n", msg)
}

func (f *Formatter) Info(msg string) {
	fmt.Fprintf(f.w, "ℹ️  %s\n", msg)
}

func (f *Formatter) Success(msg string) {
	fmt.Fprintf(f.w, "✅ %s\n", msg)
}

func (f *Formatter) Warning(msg string) {
	fmt.Fprintf(f.w, "⚠️  %s\n", msg)
}

func (f *Formatter) Progress(percent int, stage, detail string) {
	if detail != "" {
		fmt.Fprintf(f.w, "⏳ %3d%% %s (%s)\n", percent, stage, detail)
		return
	}
	fmt.Fprintf(f.w, "⏳ %3d%% %s\n", percent, stage)
}

func (f *Formatter) RecordingStarted(path string) {
	fmt.Fprintf(f.w, "🎙️  Recording... (%s)\n", path)
	fmt.Fprintf(f.w, "    p = pause/resume, Enter = stop\n")
}

func (f *Formatter) RecordingTick(elapsed time.Duration) {
	fmt.Fprintf(f.w, "\r🎙️  %s ", FormatDuration(elapsed))
}

func (f *Formatter) RecordingPaused() {
	fmt.Fprintf(f.w, "\n⏸️  Paused\n")
}

func (f *Formatter) RecordingResumed() {
	fmt.Fprintf(f.w, "▶️  Resumed\n")
}

func (f *Formatter) RecordingStopped(duration time.Duration) {
	fmt.Fprintf(f.w, "\n⏹️  Recording stopped (%s)\n", FormatDuration(duration))
}

// Result renders a processed entry in three sections, mirroring the
// summary / action items / transcript split of the exports.
func (f *Formatter) Result(entry history.Entry) {
	fmt.Fprintf(f.w, "\n📋 Summary\n\n")
	if len(entry.Summary) == 0 {
		fmt.Fprintf(f.w, "  (none)\n")
	}
	for _, point := range entry.Summary {
		fmt.Fprintf(f.w, "  • %s\n", point)
	}

	fmt.Fprintf(f.w, "\n☑️  Action items\n\n")
	if len(entry.ActionItems) == 0 {
		fmt.Fprintf(f.w, "  (none)\n")
	}
	for _, item := range entry.ActionItems {
		fmt.Fprintf(f.w, "  • %s%s\n", item.Description, actionMeta(item))
	}

	fmt.Fprintf(f.w, "\n📝 Transcript\n\n%s\n", indent(entry.Transcript))
}

func (f *Formatter) Exported(mdPath, docxPath string) {
	fmt.Fprintf(f.w, "\n📁 Saved: %s\n", mdPath)
	fmt.Fprintf(f.w, "📁 Saved: %s\n", docxPath)
}

func (f *Formatter) HistoryHeader(count int) {
	fmt.Fprintf(f.w, "🕘 History (%d):\n\n", count)
}

func (f *Formatter) HistoryItem(entry history.Entry) {
	fmt.Fprintf(f.w, "  %s  %s  %s  (%d points, %d actions)\n",
		entry.ID, entry.Timestamp.Local().Format("2006-01-02 15:04"), entry.FileName,
		len(entry.Summary), len(entry.ActionItems))
}

func (f *Formatter) DoctorCheck(name string, ok bool, detail string) {
	if ok {
		fmt.Fprintf(f.w, "  ✅ %s: %s\n", name, detail)
	} else {
		fmt.Fprintf(f.w, "  ❌ %s: %s\n", name, detail)
	}
}

func actionMeta(item summarizer.ActionItem) string {
	var meta []string
	if item.Assignee != nil && *item.Assignee != "" {
		meta = append(meta, *item.Assignee)
	}
	if item.Deadline != nil && *item.Deadline != "" {
		meta = append(meta, "due "+*item.Deadline)
	}
	if len(meta) == 0 {
		return ""
	}
	return " (" + strings.Join(meta, ", ") + ")"
}

func indent(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for i, line := range lines {
		lines[i] = "  " + line
	}
	return strings.Join(lines, "\n")
}

// FormatDuration renders a duration as 1h02m03s / 2m03s / 3s.
func FormatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second

	if h > 0 {
		return fmt.Sprintf("%dh%02dm%02ds", h, m, s)
	}
	if m > 0 {
		return fmt.Sprintf("%dm%02ds", m, s)
	}
	return fmt.Sprintf("%ds", s)
}
