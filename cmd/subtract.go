package cmd

import (
	"github.com/spf13/cobra"

	"rsparam.dev/pkg/rsparam/internal/domain"
	m "rsparam.dev/pkg/rsparam/internal/model"
)

// subtractCmd represents the subtract command.
var subtractCmd = newSubtractCmd()

func newSubtractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subtract <first> <files...>",
		Short: "Remove entries found in other files from the first file",
		Long: `Print the groups and parameters of the first file that are not equal to
any entry of the other files.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Subtract(cmd.Context(), domain.SubtractArgs{
				First:    m.Path(args[0]),
				Sources:  parsePaths(args[1:]),
				Encoding: configuredEncoding(),
				Output:   m.Path(outputFlag),
			})
		},
	}

	addOutputFlag(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(subtractCmd)
}
