package cmd

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"rsparam.dev/pkg/rsparam/internal/domain"
	m "rsparam.dev/pkg/rsparam/internal/model"
)

func TestFindCmd_Pattern(t *testing.T) {
	cmd, mockWorkflow, _ := newTestRootCmd(t, newFindCmd())

	mockWorkflow.On("Find", mock.Anything, domain.FindArgs{
		Source:   m.Path("params.txt"),
		Encoding: m.Encoding("utf-8"),
		Pattern:  "Width",
		Scope:    domain.Scope{Groups: true},
	}).Return(nil)

	cmd.SetArgs([]string{"find", "-g", "Width", "params.txt"})
	err := cmd.Execute()
	require.NoError(t, err)
}

func TestFindCmd_Glob(t *testing.T) {
	cmd, mockWorkflow, _ := newTestRootCmd(t, newFindCmd())

	mockWorkflow.On("Find", mock.Anything, mock.MatchedBy(func(args domain.FindArgs) bool {
		return args.Glob && args.Pattern == "*Width*"
	})).Return(nil)

	cmd.SetArgs([]string{"find", "--glob", "*Width*", "params.txt"})
	err := cmd.Execute()
	require.NoError(t, err)
}

func TestFindCmd_Dupl(t *testing.T) {
	cmd, mockWorkflow, _ := newTestRootCmd(t, newFindCmd())

	mockWorkflow.On("FindDuplicates", mock.Anything, domain.DuplicatesArgs{
		Source:   m.Path("params.txt"),
		Encoding: m.Encoding("utf-8"),
		ByName:   true,
		All:      true,
		Output:   m.Path("dupl.txt"),
	}).Return(nil)

	cmd.SetArgs([]string{"find", "dupl", "-n", "-a", "-o", "dupl.txt", "params.txt"})
	err := cmd.Execute()
	require.NoError(t, err)
}

func TestFindCmd_Invalid(t *testing.T) {
	cmd, mockWorkflow, _ := newTestRootCmd(t, newFindCmd())

	mockWorkflow.On("FindInvalid", mock.Anything, domain.InvalidArgs{
		Source:   m.Path("params.txt"),
		Encoding: m.Encoding("utf-8"),
		Columns:  []m.Field{m.FieldGUID},
	}).Return(nil)

	cmd.SetArgs([]string{"find", "invalid", "-c", "guid", "params.txt"})
	err := cmd.Execute()
	require.NoError(t, err)
}

func TestFindCmd_RequiresPatternAndFile(t *testing.T) {
	cmd, _, _ := newTestRootCmd(t, newFindCmd())

	cmd.SetArgs([]string{"find", "params.txt"})
	err := cmd.Execute()
	require.Error(t, err)
}
