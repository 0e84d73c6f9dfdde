// Package cmd provides the root command and CLI setup for pathenum.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"pathenum.dev/pkg/pathenum/internal/adapter"
	"pathenum.dev/pkg/pathenum/internal/controller"
	"pathenum.dev/pkg/pathenum/internal/domain"
)

var treeFSAdapter adapter.TreeFSAdapter
var goFileAdapter adapter.GoFileAdapter

// verboseFlag switches logging to debug level.
var verboseFlag bool

// logFileFlag overrides log.filename.
var logFileFlag string

func init() {
	configureRootFlags(rootCmd)
	configureScanFlags(rootCmd)

	// Initialize shared dependencies.
	treeFSAdapter = adapter.NewLocalTreeFSAdapter()
	goFileAdapter = adapter.NewLocalGoFileAdapter()
}

const scanOptionsHelp = `Every directory under the root becomes a symbol, and so does every file
whose name ends in one of the allowed extensions. Symbols are named after
their path:
  - each path segment is PascalCased on '-', '_' and ' '
  - segments are joined with 'ノ'
  - '.' becomes 'ᐧ' (or a word break with --dot separator)
  - segments that do not start with a letter get a leading '_'`

const rootLongDescription = `pathenum compiles a directory tree into a closed Go enum whose values
map back to the original relative paths, so asset paths never have to be
typed by hand.

` + scanOptionsHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "pathenum",
		Short:         "Compile directory trees into Go path enums",
		Long:          rootLongDescription,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			configureLogger(logFileFlag, verboseFlag)

			return validateConfigKeys()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", defaultLogVerbose, "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, "", "log file path (\"-\" logs to stderr)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// newWorkflow builds a workflow whose UI writes to cmd's output.
//
//nolint:ireturn // the workflow is consumed through its interface.
func newWorkflow(cmd *cobra.Command, ui controller.UI) domain.Workflow {
	if ui == nil {
		ui = controller.NewUI(cmd, controller.IsTTY(cmd.OutOrStdout()))
	}

	return domain.NewWorkflow(treeFSAdapter, goFileAdapter, ui)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
