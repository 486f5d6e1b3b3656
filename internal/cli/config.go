package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/brief-flow/internal/output"
)

func NewConfigCmd(deps *Dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage credentials and settings",
	}

	cmd.AddCommand(newConfigSetKeyCmd(deps))
	cmd.AddCommand(newConfigClearKeyCmd(deps))
	cmd.AddCommand(newConfigShowCmd(deps))

	return cmd
}

func newConfigSetKeyCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "set-key [api-key]",
		Short: "Store the Gemini API key",
		Long:  "Store the Gemini API key in local state. Pass the key as an argument or enter it at the prompt. The key is stored obfuscated, never in clear text.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := output.NewFormatter(os.Stdout)

			var key string
			if len(args) == 1 {
				key = strings.TrimSpace(args[0])
			} else {
				fmt.Print("API key: ")
				scanner := bufio.NewScanner(os.Stdin)
				if scanner.Scan() {
					key = strings.TrimSpace(scanner.Text())
				}
			}
			if key == "" {
				return fmt.Errorf("no API key provided")
			}

			deps.App.Credentials.Save(cmd.Context(), key)
			f.Success("API key saved")
			return nil
		},
	}
}

func newConfigClearKeyCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "clear-key",
		Short: "Remove the stored Gemini API key",
		RunE: func(cmd *cobra.Command, args []string) error {
			f := output.NewFormatter(os.Stdout)
			deps.App.Credentials.Clear(cmd.Context())
			f.Success("API key removed")
			return nil
		},
	}
}

func newConfigShowCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := deps.Config
			w := cmd.OutOrStdout()

			fmt.Fprintf(w, "gemini:\n")
			fmt.Fprintf(w, "  transcribe_model: %s\n", cfg.Gemini.TranscribeModel)
			fmt.Fprintf(w, "  summarize_model:  %s\n", cfg.Gemini.SummarizeModel)
			fmt.Fprintf(w, "  source_language:  %s\n", cfg.Gemini.SourceLanguage)
			fmt.Fprintf(w, "paths:\n")
			fmt.Fprintf(w, "  inbox:  %s\n", cfg.Paths.Inbox)
			fmt.Fprintf(w, "  output: %s\n", cfg.Paths.Output)
			fmt.Fprintf(w, "  temp:   %s\n", cfg.Paths.Temp)
			fmt.Fprintf(w, "storage:\n")
			fmt.Fprintf(w, "  backend:   %s\n", cfg.Storage.Backend)
			fmt.Fprintf(w, "  state_dir: %s\n", cfg.Storage.StateDir)
			fmt.Fprintf(w, "summary:\n")
			fmt.Fprintf(w, "  detail:             %s\n", cfg.Summary.Detail)
			fmt.Fprintf(w, "  output_language:    %s\n", cfg.Summary.OutputLanguage)
			fmt.Fprintf(w, "  tone:               %s\n", cfg.Summary.Tone)
			fmt.Fprintf(w, "  prioritize_actions: %t\n", cfg.Summary.PrioritizeActions)
			fmt.Fprintf(w, "api_key: %s\n", maskKey(deps.App.APIKey))
			return nil
		},
	}
}

func maskKey(key string) string {
	if key == "" {
		return "(not set)"
	}
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
