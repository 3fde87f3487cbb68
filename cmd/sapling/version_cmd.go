package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is sapling's semantic version
const version = "0.1.0"

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show which sapling release this is",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "sapling v%s\n", version)
		},
	}
}
