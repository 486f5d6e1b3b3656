package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/brief-flow/internal/exporter"
	"github.com/nguyentantai21042004/brief-flow/internal/output"
)

func NewHistoryCmd(deps *Dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Browse previously processed recordings",
	}

	cmd.AddCommand(newHistoryListCmd(deps))
	cmd.AddCommand(newHistoryShowCmd(deps))
	cmd.AddCommand(newHistoryExportCmd(deps))
	cmd.AddCommand(newHistoryDeleteCmd(deps))
	cmd.AddCommand(newHistoryClearCmd(deps))

	return cmd
}

func newHistoryListCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored results, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			f := output.NewFormatter(os.Stdout)
			entries := deps.App.History.List(cmd.Context())
			if len(entries) == 0 {
				f.Info("No history yet")
				return nil
			}
			f.HistoryHeader(len(entries))
			for _, e := range entries {
				f.HistoryItem(e)
			}
			return nil
		},
	}
}

func newHistoryShowCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one stored result in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := output.NewFormatter(os.Stdout)
			entry, ok := deps.App.History.Find(cmd.Context(), args[0])
			if !ok {
				return fmt.Errorf("no history entry with id %q", args[0])
			}
			f.Result(entry)
			return nil
		},
	}
}

func newHistoryExportCmd(deps *Dependencies) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export <id>",
		Short: "Re-export a stored result to Markdown or DOCX",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := output.NewFormatter(os.Stdout)
			entry, ok := deps.App.History.Find(cmd.Context(), args[0])
			if !ok {
				return fmt.Errorf("no history entry with id %q", args[0])
			}

			doc := exporter.Document{
				Title:       entry.FileName,
				FileName:    entry.FileName,
				CreatedAt:   entry.Timestamp,
				Transcript:  entry.Transcript,
				Summary:     entry.Summary,
				ActionItems: entry.ActionItems,
			}
			outDir := deps.Config.Paths.Output

			var path string
			var err error
			switch format {
			case "md":
				path, err = exporter.WriteMarkdown(outDir, doc)
			case "docx":
				path, err = exporter.WriteDocx(outDir, doc)
			default:
				return fmt.Errorf("format must be md or docx, got %q", format)
			}
			if err != nil {
				return err
			}
			f.Success("Saved: " + path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "md", "Export format: md or docx")

	return cmd
}

func newHistoryDeleteCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete one stored result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := output.NewFormatter(os.Stdout)
			if _, ok := deps.App.History.Find(cmd.Context(), args[0]); !ok {
				return fmt.Errorf("no history entry with id %q", args[0])
			}
			deps.App.History.Remove(cmd.Context(), args[0])
			f.Success("Deleted " + args[0])
			return nil
		},
	}
}

func newHistoryClearCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all stored results",
		RunE: func(cmd *cobra.Command, args []string) error {
			f := output.NewFormatter(os.Stdout)
			deps.App.History.Clear(cmd.Context())
			f.Success("History cleared")
			return nil
		},
	}
}
