package controller

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	m "rsparam.dev/pkg/rsparam/internal/model"
)

// YAMLUI renders results as a stream of YAML documents, one per displayed
// collection, each opened with a "---" marker. Report lines are omitted so the output stays machine readable.
type YAMLUI struct {
	cmd *cobra.Command
}

// NewYAMLUI creates a new YAMLUI.
func NewYAMLUI(cmd *cobra.Command) *YAMLUI {
	return &YAMLUI{cmd: cmd}
}

// DisplaySources is a no-op for YAML output.
func (y *YAMLUI) DisplaySources(context.Context, string, ...m.Path) {}

// DisplayNote is a no-op for YAML output.
func (y *YAMLUI) DisplayNote(context.Context, string) {}

// DisplayWritten is a no-op for YAML output.
func (y *YAMLUI) DisplayWritten(context.Context, m.Path) {}

// DisplayGroups writes a "groups" document.
func (y *YAMLUI) DisplayGroups(ctx context.Context, entries m.Entries, columns []m.Field) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	columns = columnsOr(columns, m.DefaultGroupColumns)

	rows, err := groupRows(entries, columns)
	if err != nil {
		return err
	}

	return y.encode(mappingNode(scalarNode("groups"), rowsNode(columns, rows)))
}

// DisplayParams writes a "params" document.
func (y *YAMLUI) DisplayParams(ctx context.Context, entries m.Entries, columns []m.Field) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	columns = columnsOr(columns, m.DefaultParamColumns)

	rows, err := paramRows(entries, columns)
	if err != nil {
		return err
	}

	return y.encode(mappingNode(scalarNode("params"), rowsNode(columns, rows)))
}

// DisplayGroupDuplicates writes a "duplicate_groups" document holding one
// sequence per bucket.
func (y *YAMLUI) DisplayGroupDuplicates(ctx context.Context, duplicates m.Duplicates, byName bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	columns := duplicateGroupColumns(byName)
	buckets := &yaml.Node{Kind: yaml.SequenceNode}

	for _, bucket := range duplicates.Groups {
		rows, err := groupRows(duplicates.Source.Derive(bucket, nil), columns)
		if err != nil {
			return err
		}

		buckets.Content = append(buckets.Content, rowsNode(columns, rows))
	}

	return y.encode(mappingNode(
		scalarNode("duplicate_groups"), buckets,
		scalarNode("key"), scalarNode(duplicateKeyName(byName)),
	))
}

// DisplayParamDuplicates writes a "duplicate_params" document holding one
// sequence per bucket.
func (y *YAMLUI) DisplayParamDuplicates(ctx context.Context, duplicates m.Duplicates, byName bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	columns := duplicateParamColumns(byName)
	buckets := &yaml.Node{Kind: yaml.SequenceNode}

	for _, bucket := range duplicates.Params {
		rows, err := paramRows(duplicates.Source.Derive(nil, bucket), columns)
		if err != nil {
			return err
		}

		buckets.Content = append(buckets.Content, rowsNode(columns, rows))
	}

	return y.encode(mappingNode(
		scalarNode("duplicate_params"), buckets,
		scalarNode("key"), scalarNode(duplicateKeyName(byName)),
	))
}

// DisplayDiff writes a "diff" document with the diff as a literal block.
func (y *YAMLUI) DisplayDiff(ctx context.Context, diff string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	node := scalarNode(diff)
	node.Style = yaml.LiteralStyle

	return y.encode(mappingNode(scalarNode("diff"), node))
}

func (y *YAMLUI) encode(node *yaml.Node) error {
	out := y.cmd.OutOrStdout()
	if _, err := fmt.Fprintln(out, "---"); err != nil {
		return err
	}

	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(2)

	if err := encoder.Encode(node); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}

	return encoder.Close()
}

// rowsNode keeps column order, which a map would lose.
func rowsNode(columns []m.Field, rows [][]string) *yaml.Node {
	sequence := &yaml.Node{Kind: yaml.SequenceNode}

	for _, row := range rows {
		mapping := &yaml.Node{Kind: yaml.MappingNode}
		for i, column := range columns {
			mapping.Content = append(mapping.Content, scalarNode(string(column)), scalarNode(row[i]))
		}

		sequence.Content = append(sequence.Content, mapping)
	}

	return sequence
}

// mappingNode builds a mapping from alternating key and value nodes.
func mappingNode(keyValues ...*yaml.Node) *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Content: keyValues}
}

func scalarNode(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}
