package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"calcgui/evaluator"
	"calcgui/keypad"
	"calcgui/ui"
)

func evalCmd(cfg *ui.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval EXPR...",
		Short: "Print what the display shows after = for each expression",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			failed := 0
			for _, expr := range args {
				result, err := cfg.Mode.Evaluate(expr)
				if err != nil {
					failed++
					cmd.PrintErrln(err)
					fmt.Fprintln(out, keypad.ErrorText)
					continue
				}
				fmt.Fprintln(out, evaluator.FormatResult(result))
			}
			if failed > 0 {
				cmd.SilenceUsage = true
				return fmt.Errorf("%d of %d expressions failed", failed, len(args))
			}
			return nil
		},
	}
	return cmd
}

func keysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "Print the button grid",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), keypad.Grid())
		},
	}
}
