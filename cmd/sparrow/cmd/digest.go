package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/sparrow/foundation/core/error"
	mdwlog "github.com/msto63/sparrow/foundation/core/log"
	"github.com/msto63/sparrow/foundation/utils/digestx"
)

func newDigestCmd(a *app) *cobra.Command {
	var algorithm string
	var list bool

	cmd := &cobra.Command{
		Use:   "digest [file]",
		Short: "Hash a file or stdin",
		Long: `Print the lower-case hex digest of a file, or of stdin when no file or "-"
is given.

Examples:
  sparrow digest README.md
  echo -n abc | sparrow digest -a blake2b-256
  sparrow digest --list`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if list {
				for _, alg := range digestx.Algorithms() {
					fmt.Fprintf(cmd.OutOrStdout(), "%-12s %d bytes\n", alg, alg.Size())
				}
				return nil
			}

			alg, err := digestx.ParseAlgorithm(algorithm)
			if err != nil {
				return err
			}
			data, name, err := readInput(args, cmd.InOrStdin())
			if err != nil {
				return err
			}

			a.logger.Debug("hashing input", mdwlog.Fields{"source": name, "bytes": len(data), "algorithm": alg.String()})
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", a.helper.DigestHex(data, alg), name)
			return nil
		},
	}
	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "sha256", "Digest algorithm")
	cmd.Flags().BoolVar(&list, "list", false, "List the supported algorithms")
	return cmd
}

// readInput reads the named file, or in for no file or "-"
func readInput(args []string, in io.Reader) ([]byte, string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(in)
		if err != nil {
			return nil, "", mdwerror.Wrap(err, "failed to read stdin").
				WithCode(mdwerror.CodeInvalidInput).
				WithOperation("cmd.readInput")
		}
		return data, "-", nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		code := mdwerror.CodeResourceUnavailable
		if os.IsNotExist(err) {
			code = mdwerror.CodeNotFound
		}
		return nil, "", mdwerror.Wrap(err, "failed to read file").
			WithCode(code).
			WithOperation("cmd.readInput").
			WithDetail("path", args[0])
	}
	return data, args[0], nil
}
