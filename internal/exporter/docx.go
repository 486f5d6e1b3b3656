package exporter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	fontName = "Times New Roman"
	fontSize = 13
)

// WriteDocx renders the document as a styled .docx and returns its path.
func WriteDocx(dir string, d Document) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	doc, err := godocx.NewDocument()
	if err != nil {
		return "", fmt.Errorf("create docx: %w", err)
	}

	addStyledRun(doc.AddParagraph(""), d.Title, true, 16)
	addStyledRun(doc.AddParagraph(""), fmt.Sprintf("%s, %s", d.FileName, d.CreatedAt.Format("2006-01-02 15:04")), false, fontSize)
	doc.AddParagraph("")

	addStyledRun(doc.AddParagraph(""), "Summary", true, 15)
	for _, point := range d.Summary {
		addStyledRun(doc.AddParagraph(""), "• "+point, false, fontSize)
	}
	doc.AddParagraph("")

	addStyledRun(doc.AddParagraph(""), "Action Items", true, 15)
	if len(d.ActionItems) == 0 {
		addStyledRun(doc.AddParagraph(""), "None.", false, fontSize)
	}
	for _, item := range d.ActionItems {
		addStyledRun(doc.AddParagraph(""), "• "+item.Description+actionItemMeta(item), false, fontSize)
	}
	doc.AddParagraph("")

	addStyledRun(doc.AddParagraph(""), "Transcript", true, 15)
	for _, para := range transcriptParagraphs(d.Transcript) {
		addStyledRun(doc.AddParagraph(""), para, false, fontSize)
	}

	path := filepath.Join(dir, baseName(d.FileName)+"-summary.docx")
	if err := doc.SaveTo(path); err != nil {
		return "", fmt.Errorf("write docx: %w", err)
	}
	return path, nil
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}

func transcriptParagraphs(transcript string) []string {
	var paras []string
	for _, block := range strings.Split(strings.TrimSpace(transcript), "\n\n") {
		block = strings.TrimSpace(strings.ReplaceAll(block, "\n", " "))
		if block != "" {
			paras = append(paras, block)
		}
	}
	return paras
}
