package exporter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentantai21042004/brief-flow/internal/summarizer"
)

// Document is a completed processing result ready for export.
type Document struct {
	Title       string
	FileName    string
	CreatedAt   time.Time
	Transcript  string
	Summary     []string
	ActionItems []summarizer.ActionItem
}

// Markdown renders the document: summary bullets, an action-item checklist
// with assignee/deadline where known, and the full transcript.
func Markdown(doc Document) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", doc.Title)
	fmt.Fprintf(&sb, "_%s, %s_\n\n", doc.FileName, doc.CreatedAt.Format("2006-01-02 15:04"))

	sb.WriteString("## Summary\n\n")
	if len(doc.Summary) == 0 {
		sb.WriteString("_No summary points._\n")
	}
	for _, point := range doc.Summary {
		fmt.Fprintf(&sb, "- %s\n", point)
	}
	sb.WriteString("\n")

	sb.WriteString("## Action Items\n\n")
	if len(doc.ActionItems) == 0 {
		sb.WriteString("_No action items._\n")
	}
	for _, item := range doc.ActionItems {
		fmt.Fprintf(&sb, "- [ ] %s%s\n", item.Description, actionItemMeta(item))
	}
	sb.WriteString("\n")

	sb.WriteString("## Transcript\n\n")
	sb.WriteString(strings.TrimSpace(doc.Transcript))
	sb.WriteString("\n")

	return sb.String()
}

func actionItemMeta(item summarizer.ActionItem) string {
	var meta []string
	if item.Assignee != nil && *item.Assignee != "" {
		meta = append(meta, "@"+*item.Assignee)
	}
	if item.Deadline != nil && *item.Deadline != "" {
		meta = append(meta, "due "+*item.Deadline)
	}
	if len(meta) == 0 {
		return ""
	}
	return " (" + strings.Join(meta, ", ") + ")"
}

// WriteMarkdown writes the rendered document next to the other outputs and
// returns the written path.
func WriteMarkdown(dir string, doc Document) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(dir, baseName(doc.FileName)+"-summary.md")
	if err := os.WriteFile(path, []byte(Markdown(doc)), 0o644); err != nil {
		return "", fmt.Errorf("write markdown: %w", err)
	}
	return path, nil
}

func baseName(fileName string) string {
	base := filepath.Base(fileName)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
