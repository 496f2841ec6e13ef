package cmd

import (
	"github.com/spf13/cobra"

	"rsparam.dev/pkg/rsparam/internal/domain"
	m "rsparam.dev/pkg/rsparam/internal/model"
)

var findGlobFlag bool
var findByNameFlag bool
var findAllFlag bool

// findCmd represents the find command.
var findCmd = newFindCmd()

func newFindCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find <pattern> <file>",
		Short: "Find groups and parameters matching a pattern",
		Long: `Find the groups and parameters with a field containing pattern.

With --glob the pattern is a glob matched against whole fields, e.g. "*Width*".`,
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

			return workflow.Find(cmd.Context(), domain.FindArgs{
				Source:   m.Path(args[1]),
				Encoding: configuredEncoding(),
				Pattern:  args[0],
				Glob:     findGlobFlag,
				Scope:    scopeFromFlags(),
				SortBy:   sortBy,
				Columns:  columns,
				Output:   m.Path(outputFlag),
			})
		},
	}

	addScopeFlags(cmd)
	addSortFlag(cmd)
	addColumnsFlag(cmd)
	addOutputFlag(cmd)
	cmd.Flags().BoolVar(&findGlobFlag, "glob", false, "treat pattern as a glob")

	cmd.AddCommand(newFindDuplCmd(), newFindInvalidCmd())

	return cmd
}

func newFindDuplCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dupl <file>",
		Short: "Find duplicate groups and parameters",
		Long: `Find groups and parameters sharing a guid (or id), or a name with --byname.

Each set of duplicates is printed as its own table in file order.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sortBy, err := sortKeyFromFlags()
			if err != nil {
				return err
			}

			return workflow.FindDuplicates(cmd.Context(), domain.DuplicatesArgs{
				Source:   m.Path(args[0]),
				Encoding: configuredEncoding(),
				ByName:   findByNameFlag,
				All:      findAllFlag,
				Scope:    scopeFromFlags(),
				SortBy:   sortBy,
				Output:   m.Path(outputFlag),
			})
		},
	}

	addScopeFlags(cmd)
	addSortFlag(cmd)
	addOutputFlag(cmd)
	cmd.Flags().BoolVarP(&findByNameFlag, "byname", "n", false, "compare by name instead of guid")
	cmd.Flags().BoolVarP(&findAllFlag, "all", "a", false, "groups and parameters")

	return cmd
}

func newFindInvalidCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invalid <file>",
		Short: "Find parameters whose guid is not a valid UUID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			columns, err := columnsFromFlags()
			if err != nil {
				return err
			}

			return workflow.FindInvalid(cmd.Context(), domain.InvalidArgs{
				Source:   m.Path(args[0]),
				Encoding: configuredEncoding(),
				Columns:  columns,
				Output:   m.Path(outputFlag),
			})
		},
	}

	addColumnsFlag(cmd)
	addOutputFlag(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(findCmd)
}
