package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/brief-flow/internal/output"
	"github.com/nguyentantai21042004/brief-flow/internal/watcher"
)

func NewWatchCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Watch the inbox directory and process dropped audio files",
		Long:  "Monitor the configured inbox directory. Every new audio file is transcribed and summarized as it appears. Ctrl+C to stop.",
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := output.NewFormatter(os.Stdout)

			inbox := deps.Config.Paths.Inbox
			if err := os.MkdirAll(inbox, 0o755); err != nil {
				return err
			}

			handler := func(ctx context.Context, path string) error {
				return runProcess(ctx, deps, path, formatter, false)
			}

			w, err := watcher.New(inbox, handler, deps.App.Logger)
			if err != nil {
				return err
			}
			defer w.Stop()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			formatter.Info("Watching " + inbox + " (Ctrl+C to stop)")
			if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}
}
