package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"pathenum.dev/pkg/pathenum/internal/controller"
	"pathenum.dev/pkg/pathenum/internal/domain"
	m "pathenum.dev/pkg/pathenum/internal/model"
)

const listLongDescription = `List the symbols a tree compiles to without writing any file.

Without scan flags every set in pathenum.yaml is listed.

` + scanOptionsHelp

const (
	formatTable = "table"
	formatYAML  = "yaml"
)

var formatFlag string

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the symbols of directory trees",
		Long:  listLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var ui controller.UI

			switch formatFlag {
			case formatTable:
			case formatYAML:
				ui = controller.NewManifestUI(cmd.OutOrStdout())
			default:
				return &domain.ConfigError{
					Option: "format",
					Err:    fmt.Errorf("unknown format %q (want %q or %q)", formatFlag, formatTable, formatYAML),
				}
			}

			sets, err := listSets(cmd)
			if err != nil {
				return err
			}

			return newWorkflow(cmd, ui).List(cmd.Context(), sets)
		},
	}

	cmd.Flags().StringVarP(&formatFlag, "format", "f", formatTable, "output format: table or yaml")

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func listSets(cmd *cobra.Command) ([]domain.ListArgs, error) {
	parallel, err := scanParallelism()
	if err != nil {
		return nil, err
	}

	configs := []m.SetConfig{flagSetConfig("", "", "")}

	if !scanFlagsChanged(cmd) {
		configured, err := configuredSets()
		if err != nil {
			return nil, err
		}

		if len(configured) > 0 {
			configs = configured
		}
	}

	sets := make([]domain.ListArgs, 0, len(configs))

	for _, cfg := range configs {
		args, err := domain.NewCompileArgs(cfg)
		if err != nil {
			return nil, err
		}

		args.Parallel = parallel
		sets = append(sets, domain.ListArgs{Name: cfg.Name, CompileArgs: args})
	}

	return sets, nil
}

func scanFlagsChanged(cmd *cobra.Command) bool {
	for _, name := range []string{rootFlagName, extFlagName, prefixFlagName, dotFlagName, casingFlagName} {
		if cmd.Flags().Changed(name) {
			return true
		}
	}

	return false
}
