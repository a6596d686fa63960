// Package commands implements the hirectl operator CLI.
package commands

import (
	"github.com/spf13/cobra"
)

func Execute() error {
	return NewRootCmd().Execute()
}

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "hirectl",
		Short:        "Operator tooling for the hireboard API",
		SilenceUsage: true,
	}
	root.AddCommand(analyticsCmd(), plansCmd(), tokenCmd())
	return root
}
