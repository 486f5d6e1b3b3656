package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/brief-flow/internal/output"
	"github.com/nguyentantai21042004/brief-flow/internal/processor"
)

func NewProcessCmd(deps *Dependencies) *cobra.Command {
	var showTranscript bool
	var stream bool

	cmd := &cobra.Command{
		Use:   "process <audio-file>",
		Short: "Transcribe and summarize an audio file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := output.NewFormatter(os.Stdout)
			if stream {
				return runProcessStreaming(cmd.Context(), deps, args[0], formatter, showTranscript)
			}
			return runProcess(cmd.Context(), deps, args[0], formatter, showTranscript)
		},
	}

	cmd.Flags().BoolVar(&showTranscript, "transcript", true, "Print the full transcript after the summary")
	cmd.Flags().BoolVar(&stream, "stream", false, "Print transcript fragments live as they arrive")

	return cmd
}

// runProcess runs the pipeline for one file and renders progress, result
// and export paths. Shared by the process, record and watch commands.
func runProcess(ctx context.Context, deps *Dependencies, path string, formatter *output.Formatter, showTranscript bool) error {
	return runPipeline(ctx, deps, path, formatter, showTranscript, nil)
}

// runProcessStreaming additionally echoes transcript fragments as they
// arrive, instead of waiting for the full result.
func runProcessStreaming(ctx context.Context, deps *Dependencies, path string, formatter *output.Formatter, showTranscript bool) error {
	return runPipeline(ctx, deps, path, formatter, showTranscript, func(delta string) {
		fmt.Fprint(os.Stdout, delta)
	})
}

func runPipeline(ctx context.Context, deps *Dependencies, path string, formatter *output.Formatter, showTranscript bool, onDelta func(string)) error {
	result, err := deps.App.Processor.Process(ctx, path, processor.Callbacks{
		OnProgress: func(p processor.Progress) {
			formatter.Progress(p.Percent, p.Stage, p.Detail)
		},
		OnDelta: onDelta,
		OnWarning: func(w string) {
			formatter.Warning(w)
		},
	})
	if err != nil {
		return err
	}

	entry := result.Entry
	if !showTranscript {
		entry.Transcript = "(hidden, see exported files)"
	}
	formatter.Result(entry)
	formatter.Exported(result.MarkdownPath, result.DocxPath)
	return nil
}
