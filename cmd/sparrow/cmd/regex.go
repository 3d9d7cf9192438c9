package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/sparrow/foundation/core/log"
	"github.com/msto63/sparrow/foundation/utils/regexx"
)

// regexFlags holds the flags shared by the regex subcommands
type regexFlags struct {
	options string
}

func (f *regexFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.options, "options", "o", "", `Pattern options: i, m, s, x, literal (e.g. "i|m"); default m`)
}

// resolve returns the options to pass on; none when the flag was not given
func (f *regexFlags) resolve(cmd *cobra.Command) ([]regexx.Options, error) {
	if !cmd.Flags().Changed("options") {
		return nil, nil
	}
	opts, err := regexx.ParseOptions(f.options)
	if err != nil {
		return nil, err
	}
	return []regexx.Options{opts}, nil
}

func newRegexCmd(a *app) *cobra.Command {
	regexCmd := &cobra.Command{
		Use:   "regex",
		Short: "Match, extract and replace with regular expressions",
		Long: `Evaluate regular expressions with the configured engine.

The icu engine supports lookaround and backreferences; re2 runs in linear
time. Text is taken from the arguments after the pattern, or from stdin.`,
	}

	regexCmd.AddCommand(
		newRegexMatchCmd(a),
		newRegexContainsCmd(a),
		newRegexExtractCmd(a),
		newRegexReplaceCmd(a),
	)
	return regexCmd
}

func newRegexMatchCmd(a *app) *cobra.Command {
	var flags regexFlags

	cmd := &cobra.Command{
		Use:   "match <pattern> [text]",
		Short: "Check that the whole text is one match",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.resolve(cmd)
			if err != nil {
				return err
			}
			text, err := textArg(args[1:], cmd.InOrStdin())
			if err != nil {
				return err
			}
			if !a.helper.MatchExact(text, args[0], opts...) {
				return noMatch("text does not match %q", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), "match")
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func newRegexContainsCmd(a *app) *cobra.Command {
	var flags regexFlags

	cmd := &cobra.Command{
		Use:   "contains <pattern> [text]",
		Short: "Check that the pattern occurs in the text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.resolve(cmd)
			if err != nil {
				return err
			}
			text, err := textArg(args[1:], cmd.InOrStdin())
			if err != nil {
				return err
			}
			if !a.helper.MatchAny(text, args[0], opts...) {
				return noMatch("%q does not occur in text", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), "found")
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func newRegexExtractCmd(a *app) *cobra.Command {
	var flags regexFlags

	cmd := &cobra.Command{
		Use:   "extract <pattern> [text]",
		Short: "Print every match and its participating groups",
		Long: `Print the whole match followed by every participating capture group, one
per line, for each match in order.

Example:
  sparrow regex extract '([a-z])(\d)' "a1 b2"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.resolve(cmd)
			if err != nil {
				return err
			}
			text, err := textArg(args[1:], cmd.InOrStdin())
			if err != nil {
				return err
			}
			captures := a.helper.ExtractAll(text, args[0], opts...)
			a.logger.Debug("captures extracted", mdwlog.Fields{"pattern": args[0], "count": len(captures)})
			if len(captures) == 0 {
				return noMatch("no match for %q", args[0])
			}
			for _, c := range captures {
				fmt.Fprintln(cmd.OutOrStdout(), c)
			}
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func newRegexReplaceCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replace <pattern> <replacement> [text]",
		Short: "Substitute every match",
		Long: `Substitute every match of the pattern. The replacement may refer to groups
as $1 or ${name}. The text is printed even when nothing matched.

Example:
  sparrow regex replace '(\w+)@(\w+)' '$2 at $1' "me@home"`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := textArg(args[2:], cmd.InOrStdin())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.helper.ReplaceAll(text, args[0], args[1]))
			return nil
		},
	}
	return cmd
}
