package summarizer

import (
	"errors"
	"strings"
	"testing"
)

func TestParseResult(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantErr     bool
		wantSummary int
		wantActions int
	}{
		{
			name:        "plain json",
			input:       `{"summary": ["a", "b"], "actionItems": [{"description": "do x", "assignee": "An", "deadline": null}]}`,
			wantSummary: 2,
			wantActions: 1,
		},
		{
			name:        "json fence",
			input:       "```json\n{\"summary\": [\"a\"], \"actionItems\": []}\n```",
			wantSummary: 1,
		},
		{
			name:        "bare fence",
			input:       "```\n{\"summary\": [\"a\"], \"actionItems\": []}\n```",
			wantSummary: 1,
		},
		{
			name:        "missing fields default to empty",
			input:       `{}`,
			wantSummary: 0,
			wantActions: 0,
		},
		{
			name:    "not json",
			input:   "Here is your summary: the meeting went well.",
			wantErr: true,
		},
		{
			name:    "fenced garbage",
			input:   "```json\nnot json at all\n```",
			wantErr: true,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := parseResult(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseResult() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, ErrUnparsableSummary) {
					t.Errorf("error %v is not ErrUnparsableSummary", err)
				}
				return
			}
			if len(res.Summary) != tt.wantSummary {
				t.Errorf("len(Summary) = %d, want %d", len(res.Summary), tt.wantSummary)
			}
			if len(res.ActionItems) != tt.wantActions {
				t.Errorf("len(ActionItems) = %d, want %d", len(res.ActionItems), tt.wantActions)
			}
			if res.Summary == nil || res.ActionItems == nil {
				t.Error("parsed fields must never be nil")
			}
		})
	}
}

func TestParseResultActionItemFields(t *testing.T) {
	res, err := parseResult(`{"summary": [], "actionItems": [{"description": "send report", "assignee": "Minh", "deadline": "Friday"}]}`)
	if err != nil {
		t.Fatal(err)
	}
	item := res.ActionItems[0]
	if item.Description != "send report" {
		t.Errorf("Description = %q", item.Description)
	}
	if item.Assignee == nil || *item.Assignee != "Minh" {
		t.Errorf("Assignee = %v", item.Assignee)
	}
	if item.Deadline == nil || *item.Deadline != "Friday" {
		t.Errorf("Deadline = %v", item.Deadline)
	}
}

func TestBuildPrompt(t *testing.T) {
	tests := []struct {
		name     string
		opts     Options
		contains []string
		excludes []string
	}{
		{
			name:     "brief",
			opts:     Options{Detail: "brief"},
			contains: []string{"3 to 4 bullet points", "same language as the transcript", "neutral, factual"},
		},
		{
			name:     "standard default",
			opts:     Options{},
			contains: []string{"5 to 8 bullet points"},
		},
		{
			name:     "detailed",
			opts:     Options{Detail: "detailed"},
			contains: []string{"8 to 12 bullet points"},
		},
		{
			name:     "explicit output language",
			opts:     Options{OutputLanguage: "Vietnamese"},
			contains: []string{"in Vietnamese"},
			excludes: []string{"same language as the transcript"},
		},
		{
			name:     "friendly tone",
			opts:     Options{Tone: "friendly"},
			contains: []string{"warm, conversational"},
		},
		{
			name:     "prioritize actions",
			opts:     Options{PrioritizeActions: true},
			contains: []string{"even when only implied"},
		},
		{
			name:     "explicit actions only",
			opts:     Options{PrioritizeActions: false},
			contains: []string{"only when the transcript states them explicitly"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prompt := buildPrompt("xin chào", tt.opts)
			if !strings.Contains(prompt, "xin chào") {
				t.Error("prompt missing transcript")
			}
			for _, want := range tt.contains {
				if !strings.Contains(prompt, want) {
					t.Errorf("prompt missing %q", want)
				}
			}
			for _, not := range tt.excludes {
				if strings.Contains(prompt, not) {
					t.Errorf("prompt should not contain %q", not)
				}
			}
		})
	}
}

func TestStripCodeFences(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no fence", `{"a":1}`, `{"a":1}`},
		{"json tag", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"upper tag", "```JSON\n{\"a\":1}\n```", `{"a":1}`},
		{"no tag", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"one line fence", "```{\"a\":1}```", `{"a":1}`},
		{"surrounding whitespace", "  ```json\n{\"a\":1}\n```  ", `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripCodeFences(tt.input); got != tt.want {
				t.Errorf("stripCodeFences(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
