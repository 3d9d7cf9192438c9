package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/sparrow/foundation/convert"
	mdwerror "github.com/msto63/sparrow/foundation/core/error"
	"github.com/msto63/sparrow/foundation/utils/numberx"
	"github.com/msto63/sparrow/foundation/utils/timex"
)

func newNumberCmd(a *app) *cobra.Command {
	numberCmd := &cobra.Command{
		Use:   "number",
		Short: "Format and parse numbers",
		Long: `Format and parse numbers with locale separators.

Patterns use "#" and "0" digits, "," for grouping and "." for the decimal
point, e.g. "#,##0.00". The default pattern is ` + numberx.DefaultPattern + `.`,
	}

	numberCmd.AddCommand(newNumberFormatCmd(a), newNumberParseCmd(a))
	return numberCmd
}

func numberDescriptor(pattern string) timex.Descriptor {
	if pattern == "" {
		return nil
	}
	return timex.Pattern(pattern)
}

func newNumberFormatCmd(a *app) *cobra.Command {
	var pattern string

	cmd := &cobra.Command{
		Use:   "format <value>",
		Short: "Render a number under a pattern",
		Long: `Render a number under a pattern in the locale context.

Examples:
  sparrow number format 1234.5 -p "#,##0.00"
  sparrow number format 1234.5 --locale de_DE`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := strconv.ParseFloat(strings.TrimSpace(args[0]), 64)
			if err != nil {
				return mdwerror.Wrap(err, "value is not a number").
					WithCode(mdwerror.CodeInvalidInput).
					WithOperation("cmd.number.format").
					WithDetail("value", args[0])
			}
			out := a.helper.FormatValue(v, numberDescriptor(pattern))
			if out == "" {
				return mdwerror.New("invalid number pattern").
					WithCode(mdwerror.CodeInvalidPattern).
					WithOperation("cmd.number.format").
					WithDetail("pattern", pattern)
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&pattern, "pattern", "p", "", "Number pattern, e.g. #,##0.00")
	return cmd
}

func newNumberParseCmd(a *app) *cobra.Command {
	var pattern string

	cmd := &cobra.Command{
		Use:   "parse <text>",
		Short: "Read a number written in the locale",
		Long: `Read a number written with the locale separators and print it in plain
decimal form.

Examples:
  sparrow number parse "1.234,50" --locale de_DE
  sparrow number parse "1,234" -p "#,##0"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			v, ok := a.helper.ParseValue(text, numberDescriptor(pattern), convert.KindNumber)
			if !ok {
				return noMatch("%q is not a number in %s", text, a.ctx.Identifier())
			}
			fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(v.(float64), 'f', -1, 64))
			return nil
		},
	}
	cmd.Flags().StringVarP(&pattern, "pattern", "p", "", "Number pattern, e.g. #,##0.00")
	return cmd
}
