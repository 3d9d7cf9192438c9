package cmd

import (
	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/sparrow/foundation/core/error"
	"github.com/msto63/sparrow/internal/tui/playground"
)

func newPlaygroundCmd(a *app) *cobra.Command {
	var pattern, text string

	cmd := &cobra.Command{
		Use:   "playground",
		Short: "Start the interactive regex and detection playground",
		Long: `Start the terminal playground for trying patterns and detection live.

Navigation:
  Tab       - Switch between pattern, text and replacement
  Ctrl+T    - Switch between the regex and detect tabs
  F1        - Show help, Esc closes it
  Ctrl+C    - Quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := playground.DefaultConfig()
			cfg.InputLimit = a.cfg.Playground.InputLimit
			cfg.Helper = a.helper
			cfg.Pattern = pattern
			cfg.Text = text

			a.logger.Debug("starting playground")
			if err := playground.Run(cfg); err != nil {
				return mdwerror.Wrap(err, "playground failed").
					WithCode(mdwerror.CodeInternal).
					WithOperation("cmd.playground")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&pattern, "pattern", "", "Initial pattern")
	cmd.Flags().StringVar(&text, "text", "", "Initial text")
	return cmd
}
