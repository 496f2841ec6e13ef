package cmd

import (
	"github.com/spf13/cobra"

	"rsparam.dev/pkg/rsparam/internal/domain"
	m "rsparam.dev/pkg/rsparam/internal/model"
)

var listGroupFilterFlag string
var listAllFlag bool

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <file>",
		Short: "List groups and parameters of a shared parameter file",
		Long: `List the groups and parameters of a shared parameter file in file order.

Columns selected with --columns apply to groups when --groups is set and to
parameters otherwise.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sortBy, err := sortKeyFromFlags()
			if err != nil {
				return err
			}

			columns, err := columnsFromFlags()
			if err != nil {
				return err
			}

			scope := scopeFromFlags()
			if listAllFlag {
				scope = domain.Scope{}
			}

			return workflow.List(cmd.Context(), domain.ListArgs{
				Source:      m.Path(args[0]),
				Encoding:    configuredEncoding(),
				Scope:       scope,
				GroupFilter: listGroupFilterFlag,
				SortBy:      sortBy,
				Columns:     columns,
				Output:      m.Path(outputFlag),
			})
		},
	}

	addScopeFlags(cmd)
	addSortFlag(cmd)
	addColumnsFlag(cmd)
	addOutputFlag(cmd)
	cmd.Flags().BoolVarP(&listAllFlag, "all", "a", false, "groups and parameters")
	cmd.Flags().StringVarP(&listGroupFilterFlag, "filter", "f", "", "only entries of the group with this id")

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
