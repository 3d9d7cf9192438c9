package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/sparrow/foundation/core/bundle"
	"github.com/msto63/sparrow/foundation/core/i18n"
	mdwlog "github.com/msto63/sparrow/foundation/core/log"
)

// resourceFlags holds the flags shared by the resource subcommands
type resourceFlags struct {
	dir          string
	localization string
}

func (f *resourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.dir, "dir", "", "Resource directory (default: resources.dir from config)")
	cmd.Flags().StringVarP(&f.localization, "localization", "l", "", "Localization (.lproj name without suffix)")
}

func (a *app) openBundle(f *resourceFlags) (*bundle.Bundle, error) {
	dir := f.dir
	if dir == "" {
		dir = a.cfg.Resources.Dir
	}
	return bundle.Open(dir)
}

func newResourceCmd(a *app) *cobra.Command {
	resourceCmd := &cobra.Command{
		Use:   "resource",
		Short: "Read bundled resources and localized strings",
		Long: `Read files from a resource directory laid out with <localization>.lproj
subdirectories, and look up keys in localized string tables.`,
	}

	resourceCmd.AddCommand(
		newResourceTextCmd(a),
		newResourceLocalizeCmd(a),
		newResourceListCmd(a),
	)
	return resourceCmd
}

func newResourceTextCmd(a *app) *cobra.Command {
	var flags resourceFlags
	var subdir, encoding string

	cmd := &cobra.Command{
		Use:   "text <name> <ext>",
		Short: "Print a resource file decoded as text",
		Long: `Print a resource file decoded with the given encoding. Without a
localization the bundle root is searched, then Base.lproj. An empty name
selects the first file carrying the extension.

Example:
  sparrow resource text greeting txt -l ja --encoding shift_jis`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			enc, err := bundle.ParseEncoding(encoding)
			if err != nil {
				return err
			}
			b, err := a.openBundle(&flags)
			if err != nil {
				return err
			}

			var opts []bundle.LookupOption
			if subdir != "" {
				opts = append(opts, bundle.Subdirectory(subdir))
			}
			if flags.localization != "" {
				opts = append(opts, bundle.Localization(flags.localization))
			}

			text, ok := b.Text(args[0], args[1], enc, opts...)
			if !ok {
				return noMatch("resource %s.%s not found in %s", args[0], args[1], b.Root())
			}
			fmt.Fprint(cmd.OutOrStdout(), text)
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&subdir, "subdir", "", "Subdirectory inside the bundle or .lproj")
	cmd.Flags().StringVar(&encoding, "encoding", "utf-8", "Text encoding of the file")
	return cmd
}

func newResourceLocalizeCmd(a *app) *cobra.Command {
	var flags resourceFlags
	var table string

	cmd := &cobra.Command{
		Use:   "localize <key>",
		Short: "Look up a key in a string table",
		Long: `Look up a key in <table>.yaml or <table>.toml for the localization, then
its base language and then Base. Dotted keys address nested tables.

Example:
  sparrow resource localize menu.open -l de_DE`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.openBundle(&flags)
			if err != nil {
				return err
			}
			localization := flags.localization
			if localization == "" {
				localization = a.ctx.Identifier()
			}

			strs, err := i18n.TryLoadStrings(b, localization, table)
			if err != nil {
				a.logger.Warn("skipped malformed string table", mdwlog.Fields{"error": err.Error()})
			}
			value, ok := strs.Lookup(args[0])
			if !ok {
				return noMatch("no translation for %q in %s", args[0], localization)
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&table, "table", i18n.DefaultTable, "String table name")
	return cmd
}

func newResourceListCmd(a *app) *cobra.Command {
	var flags resourceFlags

	cmd := &cobra.Command{
		Use:   "localizations",
		Short: "List the localizations in the resource directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.openBundle(&flags)
			if err != nil {
				return err
			}
			locs := b.Localizations()
			if len(locs) == 0 {
				return noMatch("no localizations in %s", b.Root())
			}
			for _, loc := range locs {
				fmt.Fprintln(cmd.OutOrStdout(), loc)
			}
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}
