package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"hireboard/internal/seed"
)

func plansCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plans",
		Short: "Manage the plan catalog",
	}
	cmd.AddCommand(validatePlansCmd())
	return cmd
}

func validatePlansCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate a YAML plan catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := seed.LoadPlans(args[0])
			if err != nil {
				return err
			}
			for _, input := range inputs {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\tprice=%d\tduration=%dd\tfeatures=%d\n", input.Name, input.Price, input.Duration, len(input.Features))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d plan(s) valid\n", len(inputs))
			return nil
		},
	}
}
