package cli

import (
	"bufio"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/brief-flow/internal/output"
	"github.com/nguyentantai21042004/brief-flow/internal/recorder"
)

func NewRecordCmd(deps *Dependencies) *cobra.Command {
	var keepOnly bool

	cmd := &cobra.Command{
		Use:   "record",
		Short: "Record audio from the microphone, then process it",
		Long:  "Record from the configured input device. Type p + Enter to pause or resume, Enter alone to stop. The recording is transcribed and summarized unless --keep-only is set.",
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := output.NewFormatter(os.Stdout)
			return runRecording(cmd, deps, formatter, keepOnly)
		},
	}

	cmd.Flags().BoolVar(&keepOnly, "keep-only", false, "Keep the recording without processing it")

	return cmd
}

func runRecording(cmd *cobra.Command, deps *Dependencies, formatter *output.Formatter, keepOnly bool) error {
	ctx := cmd.Context()
	rec := deps.App.Recorder

	rec.OnTick = func(elapsed time.Duration) {
		formatter.RecordingTick(elapsed)
	}
	autoStopped := make(chan struct{})
	rec.OnAutoStop = func() {
		close(autoStopped)
	}

	path, err := rec.Start(ctx)
	if err != nil {
		return err
	}
	formatter.RecordingStarted(path)

	// Keyboard control loop. Line-based so it works in any terminal
	// without raw mode: p toggles pause, an empty line stops.
	lines := make(chan string)
	go func() {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines <- strings.TrimSpace(scanner.Text())
		}
		close(lines)
	}()

loop:
	for {
		select {
		case <-ctx.Done():
			break loop
		case <-autoStopped:
			formatter.Warning("Maximum recording duration reached, stopping")
			duration := rec.Elapsed()
			formatter.RecordingStopped(duration)
			if keepOnly {
				formatter.Success("Recording saved: " + path)
				return nil
			}
			return runProcess(ctx, deps, path, formatter, true)
		case line, ok := <-lines:
			if !ok {
				break loop
			}
			if line == "p" {
				if rec.State() == recorder.StatePaused {
					if err := rec.Resume(ctx); err != nil {
						return err
					}
					formatter.RecordingResumed()
				} else {
					if err := rec.Pause(ctx); err != nil {
						return err
					}
					formatter.RecordingPaused()
				}
				continue
			}
			if line == "" {
				break loop
			}
		}
	}

	recorded, duration, err := rec.Stop(ctx)
	if err != nil {
		return err
	}
	formatter.RecordingStopped(duration)

	if keepOnly {
		formatter.Success("Recording saved: " + recorded)
		return nil
	}

	return runProcess(ctx, deps, recorded, formatter, true)
}
