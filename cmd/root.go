// Package cmd provides the root command and CLI setup for rsparam.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"rsparam.dev/pkg/rsparam/internal/adapter"
	"rsparam.dev/pkg/rsparam/internal/controller"
	"rsparam.dev/pkg/rsparam/internal/domain"
	m "rsparam.dev/pkg/rsparam/internal/model"
)

var fileAdapter adapter.SharedParamFileAdapter
var workflow domain.Workflow
var ui *controller.ConsoleUI

var quietFlag bool
var encodeFlag string
var formatFlag string
var interactiveFlag bool
var verboseFlag bool
var logFileFlag string

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd)
	fileAdapter = adapter.NewLocalSharedParamFileAdapter()
	workflow = domain.NewWorkflow(fileAdapter, ui)
}

const rootLongDescription = `rsparam lists, searches, compares, merges and subtracts Revit shared
parameter files.

Files are read with the encoding given by --encode (default utf-8); a byte
order mark overrides it. Results are printed as tables, as YAML with
--format yaml, or browsed interactively with --interactive.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "rsparam",
		Short:             "Utilities for working with Revit shared parameter files",
		Long:              rootLongDescription,
		PersistentPreRunE: prepareRun,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVarP(&quietFlag, quietFlagName, "q", viper.GetBool(quietConfigKey), "quiet mode, only print results")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(quietFlagName), quietConfigKey)

	cmd.PersistentFlags().StringVarP(&encodeFlag, encodeFlagName, "e", viper.GetString(encodingConfigKey), "file encoding (utf-8, utf-16, windows-1252, ...)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(encodeFlagName), encodingConfigKey)

	cmd.PersistentFlags().StringVar(&formatFlag, formatFlagName, viper.GetString(formatConfigKey), "output format: table or yaml")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(formatFlagName), formatConfigKey)

	cmd.PersistentFlags().BoolVarP(&interactiveFlag, interactiveFlagName, "i", viper.GetBool(interactiveConfigKey), "browse long tables interactively when stdout is a terminal")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(interactiveFlagName), interactiveConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)
}

// prepareRun applies the parsed flags and configuration before any command runs.
func prepareRun(_ *cobra.Command, _ []string) error {
	configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))

	if configReadErr != nil {
		slog.Warn("ignoring configuration file", "path", viper.ConfigFileUsed(), "error", configReadErr)
	}

	format, err := controller.ParseFormat(viper.GetString(formatConfigKey))
	if err != nil {
		return err
	}

	ui.Configure(controller.Options{
		Format:      format,
		Interactive: viper.GetBool(interactiveConfigKey),
		Quiet:       viper.GetBool(quietConfigKey),
	})

	return nil
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}

func configuredEncoding() m.Encoding {
	return m.Encoding(viper.GetString(encodingConfigKey))
}
