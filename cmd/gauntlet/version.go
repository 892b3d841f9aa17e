package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/gauntlet"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gauntlet",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gauntlet version %s\n", strings.TrimSpace(gauntlet.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
