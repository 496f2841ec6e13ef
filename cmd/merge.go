package cmd

import (
	"github.com/spf13/cobra"

	"rsparam.dev/pkg/rsparam/internal/domain"
	m "rsparam.dev/pkg/rsparam/internal/model"
)

// mergeCmd represents the merge command.
var mergeCmd = newMergeCmd()

func newMergeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merge <files...>",
		Short: "Merge shared parameter files",
		Long: `Merge shared parameter files into one set of groups and parameters.

Entries equal in every field are kept once, in the order they are first seen.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Merge(cmd.Context(), domain.MergeArgs{
				Sources:  parsePaths(args),
				Encoding: configuredEncoding(),
				Output:   m.Path(outputFlag),
			})
		},
	}

	addOutputFlag(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(mergeCmd)
}
