package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/gauntlet/pkg/suite"
)

var validateCmd = &cobra.Command{
	Use:   "validate <suite.yaml>",
	Short: "Check a suite file without running it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := suite.Load(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%s: ok (%d scenarios, %d test cases)\n", s.Name, len(s.Scenarios), len(s.TestCases))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
