package cmd

import (
	"github.com/spf13/cobra"

	"rsparam.dev/pkg/rsparam/internal/domain"
	m "rsparam.dev/pkg/rsparam/internal/model"
)

var compFirstFlag bool
var compSecondFlag bool
var compWriteOutputsFlag bool
var compDiffFlag bool

// compCmd represents the comp command.
var compCmd = newCompCmd()

func newCompCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "comp <first> <second>",
		Short: "Compare two shared parameter files",
		Long: `Compare two shared parameter files and print the groups and parameters
unique to each.

With --OUTPUT every non-empty section is written to its own file in the
working directory: ` + domain.UniqueGroupsFirstFile + `, ` + domain.UniqueGroupsSecondFile + `,
` + domain.UniqueParamsFirstFile + ` and ` + domain.UniqueParamsSecondFile + `.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sortBy, err := sortKeyFromFlags()
			if err != nil {
				return err
			}

			columns, err := columnsFromFlags()
			if err != nil {
				return err
			}

			return workflow.Compare(cmd.Context(), domain.CompareArgs{
				First:        m.Path(args[0]),
				Second:       m.Path(args[1]),
				Encoding:     configuredEncoding(),
				Scope:        scopeFromFlags(),
				FirstOnly:    compFirstFlag,
				SecondOnly:   compSecondFlag,
				SortBy:       sortBy,
				Columns:      columns,
				WriteOutputs: compWriteOutputsFlag,
				OutputDir:    m.Path(configFolderPath),
				Diff:         compDiffFlag,
			})
		},
	}

	addScopeFlags(cmd)
	addSortFlag(cmd)
	addColumnsFlag(cmd)
	cmd.Flags().BoolVarP(&compFirstFlag, "first", "1", false, "results for the first file only")
	cmd.Flags().BoolVarP(&compSecondFlag, "second", "2", false, "results for the second file only")
	cmd.Flags().BoolVarP(&compWriteOutputsFlag, "OUTPUT", "O", false, "write each section to its own file")
	cmd.Flags().BoolVar(&compDiffFlag, "diff", false, "print a unified diff of both files")
	cmd.MarkFlagsMutuallyExclusive("first", "second")
	cmd.MarkFlagsMutuallyExclusive("OUTPUT", "diff")

	return cmd
}

func init() {
	rootCmd.AddCommand(compCmd)
}
