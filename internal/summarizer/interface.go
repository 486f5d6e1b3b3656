package summarizer

import "context"

// ActionItem is one extracted task. Assignee and Deadline stay nil when the
// transcript does not name them.
type ActionItem struct {
	Description string  `json:"description"`
	Assignee    *string `json:"assignee"`
	Deadline    *string `json:"deadline"`
}

// Result is the structured output of a summarization call.
type Result struct {
	Summary     []string     `json:"summary"`
	ActionItems []ActionItem `json:"actionItems"`
}

// Options shape the summarization prompt.
type Options struct {
	// Detail is "brief", "standard" or "detailed".
	Detail string
	// OutputLanguage names the language for the summary; empty means
	// "same language as the transcript".
	OutputLanguage string
	// Tone is "neutral", "friendly" or "formal".
	Tone string
	// PrioritizeActions asks the model to surface action items even when
	// they are only implied.
	PrioritizeActions bool
}

// Summarizer turns a transcript into a structured summary with action items.
type Summarizer interface {
	Summarize(ctx context.Context, transcript string, opts Options) (*Result, error)
}
