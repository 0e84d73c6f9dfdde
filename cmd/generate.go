package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"pathenum.dev/pkg/pathenum/internal/domain"
	m "pathenum.dev/pkg/pathenum/internal/model"
)

const generateLongDescription = `Generate a Go file declaring an enum with one value per scanned path.

With --type the set is described by the scan flags. Without it every set
listed under "sets" in pathenum.yaml is generated. The package defaults to
$GOPACKAGE, so the command can be used directly from //go:generate:

  //go:generate pathenum generate --root assets --ext svg,png --type Asset

` + scanOptionsHelp

var (
	typeFlag    string
	packageFlag string
	outputFlag  string
	checkFlag   bool
)

// generateCmd represents the generate command.
var generateCmd = newGenerateCmd()

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate Go enums from directory trees",
		Long:  generateLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sets, err := generateSets()
			if err != nil {
				return err
			}

			return newWorkflow(cmd, nil).Generate(cmd.Context(), sets)
		},
	}

	configureGenerateFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

func configureGenerateFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&typeFlag, "type", "t", "", "name of the generated Go type")
	cmd.Flags().StringVar(&packageFlag, "package", "", "package of the generated file (default $GOPACKAGE)")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "generated file path (default <type>_gen.go)")
	cmd.Flags().BoolVar(&checkFlag, "check", false, "fail with a diff instead of writing when the file is out of date")
}

// generateSets validates every set before anything is scanned.
func generateSets() ([]domain.GenerateArgs, error) {
	parallel, err := scanParallelism()
	if err != nil {
		return nil, err
	}

	var configs []m.SetConfig

	if typeFlag != "" {
		pkg := packageFlag
		if pkg == "" {
			pkg = os.Getenv("GOPACKAGE")
		}

		configs = []m.SetConfig{flagSetConfig(typeFlag, pkg, outputFlag)}
	} else {
		configs, err = configuredSets()
		if err != nil {
			return nil, err
		}

		if len(configs) == 0 {
			return nil, &domain.ConfigError{Option: "type", Err: errNoSets}
		}
	}

	sets := make([]domain.GenerateArgs, 0, len(configs))

	for _, cfg := range configs {
		args, err := domain.NewGenerateArgs(cfg)
		if err != nil {
			return nil, err
		}

		args.Parallel = parallel
		args.Check = checkFlag
		sets = append(sets, args)
	}

	return sets, nil
}
