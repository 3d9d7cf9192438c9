package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/sparrow/foundation/core/error"
	mdwlog "github.com/msto63/sparrow/foundation/core/log"
	"github.com/msto63/sparrow/foundation/utils/timex"
)

// descriptorFlags selects a format descriptor from command flags
type descriptorFlags struct {
	pattern   string
	template  string
	dateStyle string
	timeStyle string
}

func (f *descriptorFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.pattern, "pattern", "p", "", "Explicit pattern, e.g. yyyy-MM-dd")
	cmd.Flags().StringVarP(&f.template, "template", "t", "", "Locale template (skeleton), e.g. yMMMd")
	cmd.Flags().StringVar(&f.dateStyle, "date-style", "", "Date style: none|short|medium|long|full")
	cmd.Flags().StringVar(&f.timeStyle, "time-style", "", "Time style: none|short|medium|long|full")
}

// set reports whether any descriptor flag was given
func (f *descriptorFlags) set() bool {
	return f.pattern != "" || f.template != "" || f.dateStyle != "" || f.timeStyle != ""
}

// descriptor returns the chosen descriptor; nil selects the default styles
func (f *descriptorFlags) descriptor() (timex.Descriptor, error) {
	kinds := 0
	if f.pattern != "" {
		kinds++
	}
	if f.template != "" {
		kinds++
	}
	if f.dateStyle != "" || f.timeStyle != "" {
		kinds++
	}
	if kinds > 1 {
		return nil, mdwerror.New("--pattern, --template and the style flags are mutually exclusive").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("cmd.descriptor")
	}

	switch {
	case f.pattern != "":
		return timex.Pattern(f.pattern), nil
	case f.template != "":
		return timex.Template(f.template), nil
	case kinds == 0:
		return nil, nil
	}

	styles := timex.Styles{}
	var err error
	if f.dateStyle != "" {
		if styles.Date, err = timex.ParseStyle(f.dateStyle); err != nil {
			return nil, err
		}
	}
	if f.timeStyle != "" {
		if styles.Time, err = timex.ParseStyle(f.timeStyle); err != nil {
			return nil, err
		}
	}
	return styles, nil
}

func newDateCmd(a *app) *cobra.Command {
	dateCmd := &cobra.Command{
		Use:   "date",
		Short: "Format, parse and shift dates",
		Long: `Format, parse and shift dates in the configured locale context.

Instants are read as RFC 3339, "2006-01-02 15:04:05", "2006-01-02", "now" or
"@<unix seconds>". Values without a zone are taken in the context zone.`,
	}

	dateCmd.AddCommand(
		newDateFormatCmd(a),
		newDateParseCmd(a),
		newDateShiftCmd(a),
		newDateCompareCmd(a),
		newDateComponentsCmd(a),
	)
	return dateCmd
}

func (a *app) instant(value string) (time.Time, error) {
	return timex.ParseInput(value, a.ctx.Location())
}

func newDateFormatCmd(a *app) *cobra.Command {
	var flags descriptorFlags

	cmd := &cobra.Command{
		Use:   "format [instant]",
		Short: "Render an instant under a descriptor",
		Long: `Render an instant (default: now) under a pattern, a style pair or a
locale template. Without a descriptor the medium/medium styles are used.

Examples:
  sparrow date format 2024-01-05 -p "yyyy/MM/dd"
  sparrow date format now --date-style full --locale ja_JP
  sparrow date format @1700000000 -t yMMMd --locale de_DE`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value := "now"
			if len(args) == 1 {
				value = args[0]
			}
			t, err := a.instant(value)
			if err != nil {
				return err
			}
			d, err := flags.descriptor()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.helper.FormatDate(t, d))
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func newDateParseCmd(a *app) *cobra.Command {
	var flags descriptorFlags

	cmd := &cobra.Command{
		Use:   "parse <text>",
		Short: "Parse text under a descriptor",
		Long: `Parse text under a pattern, a style pair or a locale template and print
the instant as RFC 3339. Missing fields default to 2000-01-01 00:00:00.

Examples:
  sparrow date parse "2024-01-05" -p yyyy-MM-dd
  sparrow date parse "5. Januar 2024" -p "d. MMMM y" --locale de_DE`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := flags.descriptor()
			if err != nil {
				return err
			}
			text := strings.Join(args, " ")
			t, ok := a.helper.ParseDate(text, d)
			if !ok {
				return noMatch("%q does not match %q", text, a.resolved(d))
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.Format(time.RFC3339Nano))
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

// resolved returns the concrete pattern behind d for messages
func (a *app) resolved(d timex.Descriptor) string {
	return timex.Resolve(d, a.ctx)
}

func newDateShiftCmd(a *app) *cobra.Command {
	var flags descriptorFlags
	var by string

	cmd := &cobra.Command{
		Use:   "shift <instant>",
		Short: "Move an instant by days, weeks, months or years",
		Long: `Move an instant by a calendar offset. Month arithmetic clamps to the last
day of the target month.

Examples:
  sparrow date shift 2024-01-31 --by 1m
  sparrow date shift now --by -3d -p yyyy-MM-dd`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.instant(args[0])
			if err != nil {
				return err
			}
			shift, err := timex.ParseShift(by)
			if err != nil {
				return err
			}
			shifted := shift.Apply(a.calendar, t)

			a.logger.Debug("instant shifted", mdwlog.Fields{
				"from":   t.Format(time.RFC3339),
				"amount": shift.Amount,
				"to":     shifted.Format(time.RFC3339),
			})

			if !flags.set() {
				fmt.Fprintln(cmd.OutOrStdout(), shifted.Format(time.RFC3339))
				return nil
			}
			d, err := flags.descriptor()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.helper.FormatDate(shifted, d))
			return nil
		},
	}
	cmd.Flags().StringVar(&by, "by", "1d", `Offset such as "3d", "-2w", "+1m" or "10y"`)
	flags.register(cmd)
	return cmd
}

func newDateCompareCmd(a *app) *cobra.Command {
	var inclusive bool

	cmd := &cobra.Command{
		Use:   "compare <instant> <reference> [until]",
		Short: "Compare an instant with a reference or a range",
		Long: `Print whether the instant lies before, after or at the reference, and the
number of calendar days between them. With a third argument, report whether
the instant lies inside the range; an instant outside it has no match.

Examples:
  sparrow date compare 2024-01-05 2024-02-01
  sparrow date compare 2024-01-05 2024-01-01 2024-12-31 --inclusive`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			times := make([]time.Time, len(args))
			for i, arg := range args {
				t, err := a.instant(arg)
				if err != nil {
					return err
				}
				times[i] = t
			}
			cal := a.helper.Calendar()
			t, ref := times[0], times[1]

			if len(times) == 3 {
				if !cal.IsIn(t, ref, times[2], inclusive) {
					return noMatch("%s is outside [%s, %s]", args[0], args[1], args[2])
				}
				fmt.Fprintln(cmd.OutOrStdout(), "inside")
				return nil
			}

			relation := "equal"
			switch {
			case cal.IsBefore(t, ref, false):
				relation = "before"
			case cal.IsFuture(t, ref, false):
				relation = "after"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%d days)\n", relation, a.calendar.DaysBetween(t, ref))
			return nil
		},
	}
	cmd.Flags().BoolVar(&inclusive, "inclusive", false, "Count the range bounds as inside")
	return cmd
}

var componentSets = map[string]timex.ComponentSet{
	"date": timex.ComponentDate,
	"time": timex.ComponentTime,
	"all":  timex.ComponentAll,
}

func newDateComponentsCmd(a *app) *cobra.Command {
	var set string

	cmd := &cobra.Command{
		Use:   "components <instant>",
		Short: "Split an instant into calendar fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.instant(args[0])
			if err != nil {
				return err
			}
			bits, ok := componentSets[strings.ToLower(set)]
			if !ok {
				return mdwerror.New("unknown component set").
					WithCode(mdwerror.CodeInvalidInput).
					WithOperation("cmd.date.components").
					WithDetail("set", set)
			}

			c := a.helper.Calendar().Components(t, bits)
			out := cmd.OutOrStdout()
			if bits.Has(timex.ComponentEra) {
				fmt.Fprintf(out, "era:      %d\n", c.Era)
			}
			if bits.Has(timex.ComponentDate) {
				fmt.Fprintf(out, "date:     %04d-%02d-%02d\n", c.Year, int(c.Month), c.Day)
			}
			if bits.Has(timex.ComponentTime) {
				fmt.Fprintf(out, "time:     %02d:%02d:%02d\n", c.Hour, c.Minute, c.Second)
			}
			if bits.Has(timex.ComponentWeekday) {
				fmt.Fprintf(out, "weekday:  %s\n", c.Weekday)
			}
			if bits.Has(timex.ComponentYearDay) {
				fmt.Fprintf(out, "year day: %d\n", c.YearDay)
			}
			fmt.Fprintf(out, "relative: yesterday=%t tomorrow=%t\n",
				a.helper.Calendar().IsYesterday(t), a.helper.Calendar().IsTomorrow(t))
			return nil
		},
	}
	cmd.Flags().StringVar(&set, "set", "all", "Fields to print: date, time or all")
	return cmd
}
