package cli

import (
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/brief-flow/internal/output"
)

func NewDoctorCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check prerequisites",
		RunE: func(cmd *cobra.Command, args []string) error {
			f := output.NewFormatter(os.Stdout)
			ok := true

			if _, err := exec.LookPath("ffmpeg"); err != nil {
				f.DoctorCheck("ffmpeg", false, "not found; required for recording")
				ok = false
			} else {
				f.DoctorCheck("ffmpeg", true, "installed")
			}

			if _, err := exec.LookPath("ffprobe"); err != nil {
				f.DoctorCheck("ffprobe", false, "not found; duration probing will be skipped")
			} else {
				f.DoctorCheck("ffprobe", true, "installed")
			}

			if deps.App.APIKey != "" {
				f.DoctorCheck("Gemini API key", true, "configured")
			} else {
				f.DoctorCheck("Gemini API key", false, "not set. Run: briefflow config set-key")
				ok = false
			}

			f.DoctorCheck("Output directory", true, deps.Config.Paths.Output)
			f.DoctorCheck("Inbox directory", true, deps.Config.Paths.Inbox)
			f.DoctorCheck("Storage backend", true, deps.Config.Storage.Backend)

			if deps.Config.Storage.Backend == "file" {
				if err := os.MkdirAll(deps.Config.Storage.StateDir, 0o700); err != nil {
					f.DoctorCheck("State directory", false, err.Error())
					ok = false
				} else {
					f.DoctorCheck("State directory", true, deps.Config.Storage.StateDir)
				}
			}

			if ok {
				f.Success("All prerequisites met.")
			} else {
				f.Warning("Some prerequisites are missing.")
			}
			return nil
		},
	}
}
