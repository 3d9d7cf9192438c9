package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/sparrow/foundation/utils/detectx"
	"github.com/msto63/sparrow/foundation/utils/slicex"
)

func newDetectCmd(a *app) *cobra.Command {
	detectCmd := &cobra.Command{
		Use:   "detect",
		Short: "Find links and phone numbers in text",
		Long: `Find links and phone numbers in text given as arguments or on stdin.

Phone numbers without a country code are read for the region of the locale
context.`,
	}

	detectCmd.AddCommand(newDetectLinksCmd(a), newDetectPhonesCmd(a))
	return detectCmd
}

func newDetectLinksCmd(a *app) *cobra.Command {
	var unique bool

	cmd := &cobra.Command{
		Use:   "links [text]",
		Short: "List the links in text",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := textArg(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			var links []string
			for _, u := range a.helper.DetectLinks(text) {
				links = append(links, u.String())
			}
			if len(links) == 0 {
				return noMatch("no links found")
			}
			if unique {
				links = slicex.Unique(links)
			}
			for _, link := range links {
				fmt.Fprintln(cmd.OutOrStdout(), link)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&unique, "unique", "u", false, "Print each link once")
	return cmd
}

func newDetectPhonesCmd(a *app) *cobra.Command {
	var e164, unique bool

	cmd := &cobra.Command{
		Use:   "phones [text]",
		Short: "List the phone numbers in text",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := textArg(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			numbers := a.helper.DetectPhoneNumbers(text)
			if len(numbers) == 0 {
				return noMatch("no phone numbers found")
			}

			if e164 {
				detector := detectx.New(a.ctx)
				for i, n := range numbers {
					if normalized, ok := detector.Normalize(n); ok {
						numbers[i] = normalized
					}
				}
			}
			if unique {
				numbers = slicex.Unique(numbers)
			}
			for _, n := range numbers {
				fmt.Fprintln(cmd.OutOrStdout(), n)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&e164, "e164", false, "Print numbers in E.164 form")
	cmd.Flags().BoolVarP(&unique, "unique", "u", false, "Print each number once")
	return cmd
}
