package domain

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"rsparam.dev/pkg/rsparam/internal/adapter"
	"rsparam.dev/pkg/rsparam/internal/controller"
	m "rsparam.dev/pkg/rsparam/internal/model"
)

// Output files written by Compare when WriteOutputs is set.
const (
	UniqueGroupsFirstFile  = "uniq_groups_1.txt"
	UniqueGroupsSecondFile = "uniq_groups_2.txt"
	UniqueParamsFirstFile  = "uniq_params_1.txt"
	UniqueParamsSecondFile = "uniq_params_2.txt"
)

// Scope selects the kinds of entries a command works on. Selecting neither
// or both kinds selects everything.
type Scope struct {
	Groups bool
	Params bool
}

// IncludesGroups reports whether groups are selected.
func (s Scope) IncludesGroups() bool {
	return s.Groups || !s.Params
}

// IncludesParams reports whether params are selected.
func (s Scope) IncludesParams() bool {
	return s.Params || !s.Groups
}

// GroupsOnly reports whether columns apply to groups.
func (s Scope) GroupsOnly() bool {
	return s.Groups && !s.Params
}

// ListArgs contains the arguments for listing a file.
type ListArgs struct {
	Source      m.Path
	Encoding    m.Encoding
	Scope       Scope
	GroupFilter string
	SortBy      SortKey
	Columns     []m.Field
	Output      m.Path
}

// FindArgs contains the arguments for searching a file.
type FindArgs struct {
	Source   m.Path
	Encoding m.Encoding
	Pattern  string
	Glob     bool
	Scope    Scope
	SortBy   SortKey
	Columns  []m.Field
	Output   m.Path
}

// DuplicatesArgs contains the arguments for reporting duplicates.
type DuplicatesArgs struct {
	Source   m.Path
	Encoding m.Encoding
	ByName   bool
	All      bool
	Scope    Scope
	SortBy   SortKey
	Output   m.Path
}

// InvalidArgs contains the arguments for reporting params with invalid guids.
type InvalidArgs struct {
	Source   m.Path
	Encoding m.Encoding
	Columns  []m.Field
	Output   m.Path
}

// CompareArgs contains the arguments for comparing two files.
type CompareArgs struct {
	First      m.Path
	Second     m.Path
	Encoding   m.Encoding
	Scope      Scope
	FirstOnly  bool
	SecondOnly bool
	SortBy     SortKey
	Columns    []m.Field
	// WriteOutputs writes every non-empty section to its own file in
	// OutputDir instead of displaying it.
	WriteOutputs bool
	OutputDir    m.Path
	Diff         bool
}

// MergeArgs contains the arguments for merging files.
type MergeArgs struct {
	Sources  []m.Path
	Encoding m.Encoding
	Output   m.Path
}

// SubtractArgs contains the arguments for subtracting files from a target.
type SubtractArgs struct {
	First    m.Path
	Sources  []m.Path
	Encoding m.Encoding
	Output   m.Path
}

// Workflow defines the operations behind each command.
type Workflow interface {
	List(ctx context.Context, args ListArgs) error
	Find(ctx context.Context, args FindArgs) error
	FindDuplicates(ctx context.Context, args DuplicatesArgs) error
	FindInvalid(ctx context.Context, args InvalidArgs) error
	Compare(ctx context.Context, args CompareArgs) error
	Merge(ctx context.Context, args MergeArgs) error
	Subtract(ctx context.Context, args SubtractArgs) error
}

type workflow struct {
	adapter.SharedParamFileAdapter
	controller.UI
}

// NewWorkflow creates a new Workflow reading files through fileAdapter and
// displaying results through ui.
func NewWorkflow(fileAdapter adapter.SharedParamFileAdapter, ui controller.UI) Workflow {
	return &workflow{
		SharedParamFileAdapter: fileAdapter,
		UI:                     ui,
	}
}

func (w *workflow) List(ctx context.Context, args ListArgs) error {
	if err := validateColumns(args.Scope, args.Columns); err != nil {
		return err
	}

	w.reportEncoding(ctx, args.Encoding)
	w.DisplaySources(ctx, "source file: ", args.Source)

	entries, err := w.load(ctx, args.Source, args.Encoding)
	if err != nil {
		return err
	}

	if args.GroupFilter != "" {
		entries = entries.Derive(GetGroups(entries, args.GroupFilter), GetParams(entries, args.GroupFilter))
	}

	entries, err = sortIfRequested(entries, args.SortBy)
	if err != nil {
		return err
	}

	return w.present(ctx, restrict(entries, args.Scope), args.Scope, args.Columns, args.Output, args.Encoding)
}

func (w *workflow) Find(ctx context.Context, args FindArgs) error {
	if err := validateColumns(args.Scope, args.Columns); err != nil {
		return err
	}

	w.reportEncoding(ctx, args.Encoding)
	w.DisplaySources(ctx, "source file: ", args.Source)

	entries, err := w.load(ctx, args.Source, args.Encoding)
	if err != nil {
		return err
	}

	var matches m.Entries
	if args.Glob {
		matches, err = FindGlob(entries, args.Pattern)
		if err != nil {
			return err
		}
	} else {
		matches = Find(entries, args.Pattern)
	}

	matches, err = sortIfRequested(restrict(matches, args.Scope), args.SortBy)
	if err != nil {
		return err
	}

	slog.Debug("find", "pattern", args.Pattern, "glob", args.Glob, "groups", len(matches.Groups), "params", len(matches.Params))

	if args.Output != "" {
		return w.write(ctx, args.Output, matches, args.Encoding)
	}

	if len(matches.Groups) > 0 {
		w.DisplayNote(ctx, fmt.Sprintf("\ngroups matching: %s", args.Pattern))

		if err := w.DisplayGroups(ctx, matches, groupColumns(args.Scope, args.Columns)); err != nil {
			return err
		}
	}

	if len(matches.Params) > 0 {
		w.DisplayNote(ctx, fmt.Sprintf("\nparams matching: %s", args.Pattern))

		if err := w.DisplayParams(ctx, matches, paramColumns(args.Scope, args.Columns)); err != nil {
			return err
		}
	}

	return nil
}

func (w *workflow) FindDuplicates(ctx context.Context, args DuplicatesArgs) error {
	w.reportEncoding(ctx, args.Encoding)
	w.DisplaySources(ctx, "source file: ", args.Source)

	entries, err := w.load(ctx, args.Source, args.Encoding)
	if err != nil {
		return err
	}

	scope := args.Scope
	if args.All {
		scope = Scope{}
	}

	duplicates := FindDuplicates(entries, args.ByName)
	if !scope.IncludesGroups() {
		duplicates.Groups = nil
	}

	if !scope.IncludesParams() {
		duplicates.Params = nil
	}

	if args.SortBy != "" {
		duplicates.Params, err = sortBuckets(entries, duplicates.Params, args.SortBy)
		if err != nil {
			return err
		}
	}

	slog.Debug("find duplicates", "by_name", args.ByName, "groups", len(duplicates.Groups), "params", len(duplicates.Params))

	if args.Output != "" {
		return w.write(ctx, args.Output, entries.Derive(duplicates.FlattenGroups(), duplicates.FlattenParams()), args.Encoding)
	}

	if scope.IncludesGroups() {
		if err := w.DisplayGroupDuplicates(ctx, duplicates, args.ByName); err != nil {
			return err
		}
	}

	if scope.IncludesParams() {
		if err := w.DisplayParamDuplicates(ctx, duplicates, args.ByName); err != nil {
			return err
		}
	}

	return nil
}

func (w *workflow) FindInvalid(ctx context.Context, args InvalidArgs) error {
	if err := m.ValidateParamColumns(args.Columns); err != nil {
		return err
	}

	w.reportEncoding(ctx, args.Encoding)
	w.DisplaySources(ctx, "source file: ", args.Source)

	entries, err := w.load(ctx, args.Source, args.Encoding)
	if err != nil {
		return err
	}

	invalid := FindInvalidGUIDs(entries)

	if args.Output != "" {
		return w.write(ctx, args.Output, invalid, args.Encoding)
	}

	w.DisplayNote(ctx, "\nparams with invalid guid:")

	return w.DisplayParams(ctx, invalid, args.Columns)
}

func (w *workflow) Compare(ctx context.Context, args CompareArgs) error {
	if err := validateColumns(args.Scope, args.Columns); err != nil {
		return err
	}

	w.reportEncoding(ctx, args.Encoding)
	w.DisplaySources(ctx, "first file: ", args.First)
	w.DisplaySources(ctx, "second file: ", args.Second)

	loaded, err := w.loadAll(ctx, []m.Path{args.First, args.Second}, args.Encoding)
	if err != nil {
		return err
	}

	first, second := restrict(loaded[0], args.Scope), restrict(loaded[1], args.Scope)

	if args.Diff {
		diff, err := UnifiedDiff(first, second, string(args.First), string(args.Second))
		if err != nil {
			return err
		}

		return w.DisplayDiff(ctx, diff)
	}

	uniqueToFirst, uniqueToSecond := Compare(first, second)

	if uniqueToFirst, err = sortIfRequested(uniqueToFirst, args.SortBy); err != nil {
		return err
	}

	if uniqueToSecond, err = sortIfRequested(uniqueToSecond, args.SortBy); err != nil {
		return err
	}

	showFirst := args.FirstOnly || !args.SecondOnly
	showSecond := args.SecondOnly || !args.FirstOnly

	sections := []struct {
		show    bool
		title   string
		file    string
		entries m.Entries
	}{
		{showFirst, "\nunique groups in first", UniqueGroupsFirstFile, uniqueToFirst.Derive(uniqueToFirst.Groups, nil)},
		{showSecond, "\nunique groups in second", UniqueGroupsSecondFile, uniqueToSecond.Derive(uniqueToSecond.Groups, nil)},
		{showFirst, "\nunique parameters in first", UniqueParamsFirstFile, uniqueToFirst.Derive(nil, uniqueToFirst.Params)},
		{showSecond, "\nunique parameters in second", UniqueParamsSecondFile, uniqueToSecond.Derive(nil, uniqueToSecond.Params)},
	}

	for _, section := range sections {
		if !section.show || section.entries.IsEmpty() {
			continue
		}

		w.DisplayNote(ctx, section.title)

		if args.WriteOutputs {
			path := m.Path(filepath.Join(string(args.OutputDir), section.file))
			if err := w.write(ctx, path, section.entries, args.Encoding); err != nil {
				return err
			}

			continue
		}

		if len(section.entries.Groups) > 0 {
			if err := w.DisplayGroups(ctx, section.entries, groupColumns(args.Scope, args.Columns)); err != nil {
				return err
			}
		}

		if len(section.entries.Params) > 0 {
			if err := w.DisplayParams(ctx, section.entries, paramColumns(args.Scope, args.Columns)); err != nil {
				return err
			}
		}
	}

	return nil
}

func (w *workflow) Merge(ctx context.Context, args MergeArgs) error {
	w.reportEncoding(ctx, args.Encoding)
	w.DisplaySources(ctx, "source file: ", args.Sources...)

	if args.Output != "" {
		w.DisplaySources(ctx, "destination file: ", args.Output)
	}

	loaded, err := w.loadAll(ctx, args.Sources, args.Encoding)
	if err != nil {
		return err
	}

	merged := Merge(loaded...)
	slog.Debug("merge", "sources", len(args.Sources), "groups", len(merged.Groups), "params", len(merged.Params))

	return w.present(ctx, merged, Scope{}, nil, args.Output, args.Encoding)
}

func (w *workflow) Subtract(ctx context.Context, args SubtractArgs) error {
	w.reportEncoding(ctx, args.Encoding)
	w.DisplaySources(ctx, "target file: ", args.First)
	w.DisplaySources(ctx, "source file: ", args.Sources...)

	if args.Output != "" {
		w.DisplaySources(ctx, "destination file: ", args.Output)
	}

	loaded, err := w.loadAll(ctx, append([]m.Path{args.First}, args.Sources...), args.Encoding)
	if err != nil {
		return err
	}

	remaining := Subtract(loaded[0], loaded[1:]...)
	slog.Debug("subtract", "sources", len(args.Sources), "groups", len(remaining.Groups), "params", len(remaining.Params))

	return w.present(ctx, remaining, Scope{}, nil, args.Output, args.Encoding)
}

func (w *workflow) reportEncoding(ctx context.Context, encoding m.Encoding) {
	if encoding == "" {
		encoding = adapter.DefaultEncoding
	}

	w.DisplayNote(ctx, fmt.Sprintf("encoding=%s", encoding))
}

func (w *workflow) load(ctx context.Context, path m.Path, encoding m.Encoding) (m.Entries, error) {
	if err := ctx.Err(); err != nil {
		return m.Entries{}, err
	}

	entries, err := w.ReadEntries(path, encoding)
	if err != nil {
		return m.Entries{}, fmt.Errorf("load entries: %w", err)
	}

	return entries, nil
}

// loadAll reads paths concurrently. Results keep the order of paths.
func (w *workflow) loadAll(ctx context.Context, paths []m.Path, encoding m.Encoding) ([]m.Entries, error) {
	loaded := make([]m.Entries, len(paths))

	group, groupCtx := errgroup.WithContext(ctx)
	for i, path := range paths {
		group.Go(func() error {
			entries, err := w.load(groupCtx, path, encoding)
			if err != nil {
				return err
			}

			loaded[i] = entries

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return loaded, nil
}

// present writes entries to output when set and displays them otherwise.
func (w *workflow) present(ctx context.Context, entries m.Entries, scope Scope, columns []m.Field, output m.Path, encoding m.Encoding) error {
	if output != "" {
		return w.write(ctx, output, entries, encoding)
	}

	if scope.IncludesGroups() {
		if err := w.DisplayGroups(ctx, entries, groupColumns(scope, columns)); err != nil {
			return err
		}
	}

	if scope.IncludesParams() {
		if err := w.DisplayParams(ctx, entries, paramColumns(scope, columns)); err != nil {
			return err
		}
	}

	return nil
}

func (w *workflow) write(ctx context.Context, path m.Path, entries m.Entries, encoding m.Encoding) error {
	if err := w.WriteEntries(path, entries, encoding); err != nil {
		return fmt.Errorf("write results: %w", err)
	}

	w.DisplayWritten(ctx, path)

	return nil
}

func restrict(entries m.Entries, scope Scope) m.Entries {
	groups, params := entries.Groups, entries.Params
	if !scope.IncludesGroups() {
		groups = make([]m.Group, 0)
	}

	if !scope.IncludesParams() {
		params = make([]m.Param, 0)
	}

	return entries.Derive(groups, params)
}

// sortIfRequested keeps file order when by is empty.
func sortIfRequested(entries m.Entries, by SortKey) (m.Entries, error) {
	if by == "" {
		return entries, nil
	}

	return Sort(entries, by)
}

func sortBuckets(entries m.Entries, buckets [][]m.Param, by SortKey) ([][]m.Param, error) {
	sorted := make([][]m.Param, 0, len(buckets))

	for _, bucket := range buckets {
		result, err := Sort(entries.Derive(nil, bucket), by)
		if err != nil {
			return nil, err
		}

		sorted = append(sorted, result.Params)
	}

	return sorted, nil
}

func validateColumns(scope Scope, columns []m.Field) error {
	if scope.GroupsOnly() {
		return m.ValidateGroupColumns(columns)
	}

	return m.ValidateParamColumns(columns)
}

func groupColumns(scope Scope, columns []m.Field) []m.Field {
	if scope.GroupsOnly() {
		return columns
	}

	return nil
}

func paramColumns(scope Scope, columns []m.Field) []m.Field {
	if scope.GroupsOnly() {
		return nil
	}

	return columns
}
