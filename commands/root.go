package commands

import (
	"os"

	"github.com/spf13/cobra"

	"calcgui/evaluator"
	"calcgui/ui"
)

// modeEnv supplies the default for --mode.
const modeEnv = "CALC_EVAL_MODE"

// Execute runs the calcgui command line.
func Execute() error {
	return NewRoot(runWindow).Execute()
}

func runWindow(cfg ui.Config) error {
	ui.New(cfg).Run()
	return nil
}

// NewRoot builds the command tree. open is called by the bare command to show
// the calculator window.
func NewRoot(open func(ui.Config) error) *cobra.Command {
	var (
		modeName string
		cfg      ui.Config
	)

	root := &cobra.Command{
		Use:   "calcgui",
		Short: "Desktop calculator",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			mode, err := evaluator.ParseMode(modeName)
			if err != nil {
				return err
			}
			cfg.Mode = mode
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return open(cfg)
		},
	}

	root.PersistentFlags().StringVar(&modeName, "mode", os.Getenv(modeEnv),
		"evaluation mode: compat (first two operands, fixed operator order) or strict (split at first operator); default $"+modeEnv+" or compat")

	root.AddCommand(evalCmd(&cfg), keysCmd())
	return root
}
