package cmd

import (
	"github.com/spf13/cobra"

	"rsparam.dev/pkg/rsparam/internal/domain"
	m "rsparam.dev/pkg/rsparam/internal/model"
)

const (
	paramsFlagName  = "params"
	groupsFlagName  = "groups"
	sortByFlagName  = "sortby"
	columnsFlagName = "columns"
	outputFlagName  = "output"
)

// Flags shared by the listing commands. Each command registers the ones it
// accepts; only the executed command's flags are parsed.
var paramsFlag bool
var groupsFlag bool
var sortByFlag string
var columnsFlag string
var outputFlag string

func addScopeFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&paramsFlag, paramsFlagName, "p", false, "parameters only")
	cmd.Flags().BoolVarP(&groupsFlag, groupsFlagName, "g", false, "parameter groups only")
}

func addSortFlag(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&sortByFlag, sortByFlagName, "s", "", `sort by "name" or "group" (default: file order)`)
}

func addColumnsFlag(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&columnsFlag, columnsFlagName, "c", "", "data columns separated by : (e.g. guid:name:group)")
}

func addOutputFlag(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&outputFlag, outputFlagName, "o", "", "write results to a shared parameter file instead of printing them")
}

func scopeFromFlags() domain.Scope {
	return domain.Scope{Groups: groupsFlag, Params: paramsFlag}
}

func sortKeyFromFlags() (domain.SortKey, error) {
	if sortByFlag == "" {
		return "", nil
	}

	return domain.ParseSortKey(sortByFlag)
}

func columnsFromFlags() ([]m.Field, error) {
	if columnsFlag == "" {
		return nil, nil
	}

	return m.ParseColumns(columnsFlag)
}
