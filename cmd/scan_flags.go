package cmd

import (
	"github.com/spf13/cobra"
)

// Scan flags are persistent on the root command so that every subcommand
// shares a single viper binding per key.
var (
	rootFlag     string
	extFlag      string
	prefixFlag   string
	dotFlag      string
	casingFlag   string
	parallelFlag int
)

func configureScanFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.StringVarP(&rootFlag, rootFlagName, "r", "", "directory to scan (default \".\")")
	bindFlagToConfig(flags.Lookup(rootFlagName), rootFlagName)

	flags.StringVarP(&extFlag, extFlagName, "e", "", "comma-separated list of allowed file extensions (default \"svg\")")
	bindFlagToConfig(flags.Lookup(extFlagName), extFlagName)

	flags.StringVarP(&prefixFlag, prefixFlagName, "p", "", "logical prefix prepended to every path")
	bindFlagToConfig(flags.Lookup(prefixFlagName), prefixFlagName)

	flags.StringVar(&dotFlag, dotFlagName, "", "how '.' is rendered: marker or separator (default \"marker\")")
	bindFlagToConfig(flags.Lookup(dotFlagName), dotFlagName)

	flags.StringVar(&casingFlag, casingFlagName, "", "word casing: unicode or ascii (default \"unicode\")")
	bindFlagToConfig(flags.Lookup(casingFlagName), casingFlagName)

	flags.IntVarP(&parallelFlag, parallelFlagName, "j", defaultParallel, "number of parallel directory walkers")
	bindFlagToConfig(flags.Lookup(parallelFlagName), parallelConfigKey)
}
