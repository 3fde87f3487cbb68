/*
Command sapling grows a classification tree from a dataset of categorical
features read from a CSV file, an SQL table or a MongoDB collection, and
prints it as text and optionally as a Graphviz graph.
*/
package main

import (
	"os"

	"github.com/spf13/cobra"
)

type rootCmdConfig struct {
	verbose bool
}

func main() {
	if err := cliParser().Execute(); err != nil {
		os.Exit(1)
	}
}

func cliParser() *cobra.Command {
	config := &rootCmdConfig{}
	rootCmd := &cobra.Command{
		Use:          "sapling",
		Short:        "Grow Gini classification trees from categorical data",
		Long:         "sapling splits a dataset, one categorical feature at a time, on the feature whose\nsplit reduces Gini impurity the most, until every branch ends in a label.",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&(config.verbose), "verbose", "v", false, "report every split and leaf, with their information gain and record counts, on STDERR")
	rootCmd.AddCommand(growCmd(config), versionCmd())
	return rootCmd
}

// Logf logs progress on STDERR when running verbosely
func (rcc *rootCmdConfig) Logf(format string, a ...interface{}) {
	logger(rcc.verbose).Logf(format, a...)
}
