package cmd

import (
	"runtime/debug"

	"github.com/spf13/cobra"

	m "rsparam.dev/pkg/rsparam/internal/model"
)

var writerVersionFlag bool

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long:  "Displays the build version and Go version used to build this tool.",
		Run: func(cmd *cobra.Command, _ []string) {
			if writerVersionFlag {
				cmd.Printf("shared parameter writer version: %s.%s\n", m.WriterMeta.Version, m.WriterMeta.MinVersion)
				return
			}

			info, ok := debug.ReadBuildInfo()
			if !ok || info.Main.Version == "" {
				cmd.Println("version: unknown")
				return
			}

			cmd.Println("tool version\t", info.Main.Version)
			cmd.Println("go version\t", info.GoVersion)
		},
	}

	cmd.Flags().BoolVarP(&writerVersionFlag, "writerversion", "W", false, "show the shared parameter file version written by this tool")

	return cmd
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
