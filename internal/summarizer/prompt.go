package summarizer

import (
	"fmt"
	"strings"
)

const promptTemplate = `You are an assistant that summarizes meeting and voice-note transcripts.

Analyze the transcript below and respond with a single JSON object of this exact shape:
{"summary": ["..."], "actionItems": [{"description": "...", "assignee": "... or null", "deadline": "... or null"}]}

Requirements:
%s

Respond with JSON only, no surrounding prose.

Transcript:
---
%s
---`

// buildPrompt renders the fixed template with one instruction fragment per
// option. Every option maps to natural language; the model never sees the
// option names themselves.
func buildPrompt(transcript string, opts Options) string {
	var reqs []string

	switch opts.Detail {
	case "brief":
		reqs = append(reqs, "- Keep the summary short: 3 to 4 bullet points covering only the essentials.")
	case "detailed":
		reqs = append(reqs, "- Produce a thorough summary: 8 to 12 bullet points, including secondary topics and context.")
	default: // standard
		reqs = append(reqs, "- Produce 5 to 8 bullet points covering the main topics and decisions.")
	}

	if opts.OutputLanguage != "" {
		reqs = append(reqs, fmt.Sprintf("- Write the summary and action items in %s.", opts.OutputLanguage))
	} else {
		reqs = append(reqs, "- Write the summary and action items in the same language as the transcript.")
	}

	switch opts.Tone {
	case "friendly":
		reqs = append(reqs, "- Use a warm, conversational tone.")
	case "formal":
		reqs = append(reqs, "- Use a formal, businesslike tone.")
	default:
		reqs = append(reqs, "- Use a neutral, factual tone.")
	}

	if opts.PrioritizeActions {
		reqs = append(reqs, "- Prioritize action items: extract every task, commitment or follow-up, even when only implied.")
	} else {
		reqs = append(reqs, "- List action items only when the transcript states them explicitly.")
	}

	reqs = append(reqs, "- For each action item, set assignee and deadline to null when the transcript does not name them.")

	return fmt.Sprintf(promptTemplate, strings.Join(reqs, "\n"), transcript)
}
