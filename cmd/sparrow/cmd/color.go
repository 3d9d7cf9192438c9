package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/sparrow/foundation/core/error"
	"github.com/msto63/sparrow/foundation/utils/colorx"
)

func newColorCmd(a *app) *cobra.Command {
	var (
		hue, saturation, brightness, alpha float64
		swatch                             bool
	)

	cmd := &cobra.Command{
		Use:   "color <hex>",
		Short: "Inspect and edit a color",
		Long: `Read a hex color and print it as hex, RGBA and HSB. Components given by
flag replace the matching component before printing; all take 0...1.

Examples:
  sparrow color "#ff8800"
  sparrow color ff8800 --brightness 0.5 --alpha 0.8 --swatch`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, ok := colorx.FromHexString(args[0], 1)
			if !ok {
				return mdwerror.New("not a hex color").
					WithCode(mdwerror.CodeInvalidFormat).
					WithOperation("cmd.color").
					WithDetail("value", args[0])
			}

			flags := cmd.Flags()
			if flags.Changed("hue") {
				c = c.WithHue(hue)
			}
			if flags.Changed("saturation") {
				c = c.WithSaturation(saturation)
			}
			if flags.Changed("brightness") {
				c = c.WithBrightness(brightness)
			}
			if flags.Changed("alpha") {
				c = c.WithAlpha(alpha)
			}

			out := cmd.OutOrStdout()
			r, g, b, al := c.RGBA255()
			h, s, v := c.HSB()
			fmt.Fprintf(out, "hex:  %s\n", c)
			fmt.Fprintf(out, "rgba: %d %d %d %d\n", r, g, b, al)
			fmt.Fprintf(out, "hsb:  %.3f %.3f %.3f\n", h, s, v)
			if swatch {
				fmt.Fprintln(out, lipgloss.NewStyle().Background(c.Lipgloss()).Render("        "))
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.Float64Var(&hue, "hue", 0, "Replace the hue")
	flags.Float64Var(&saturation, "saturation", 0, "Replace the saturation")
	flags.Float64Var(&brightness, "brightness", 0, "Replace the brightness")
	flags.Float64Var(&alpha, "alpha", 1, "Replace the alpha")
	flags.BoolVar(&swatch, "swatch", false, "Render a color swatch")
	return cmd
}
