package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/msto63/sparrow/foundation/convert"
	mdwerror "github.com/msto63/sparrow/foundation/core/error"
	"github.com/msto63/sparrow/foundation/core/i18n"
	mdwlog "github.com/msto63/sparrow/foundation/core/log"
	"github.com/msto63/sparrow/foundation/utils/detectx"
	"github.com/msto63/sparrow/foundation/utils/regexx"
	"github.com/msto63/sparrow/foundation/utils/timex"
	"github.com/msto63/sparrow/pkg/core/cache"
	"github.com/msto63/sparrow/pkg/core/config"
	"github.com/msto63/sparrow/pkg/core/logging"
)

// Exit codes
const (
	ExitOK      = 0
	ExitNoMatch = 1
	ExitError   = 2
)

// options holds the persistent root flags
type options struct {
	cfgFile string
	verbose bool
	gmt     bool
	locale  string
	tz      string
	engine  string
}

// app is the state shared by all commands of one invocation
type app struct {
	opts options

	cfg       *config.Config
	ctx       i18n.Context
	calendar  *timex.Calendar
	helper    *convert.Helper
	logger    *mdwlog.Logger
	timer     *mdwlog.Timer
	requestID string
}

// noMatchError reports an input that was valid but produced no result
type noMatchError struct {
	msg string
}

func (e *noMatchError) Error() string { return e.msg }

func noMatch(format string, args ...interface{}) error {
	return &noMatchError{msg: fmt.Sprintf(format, args...)}
}

// IsNoMatch reports whether err is a no-match outcome
func IsNoMatch(err error) bool {
	var nm *noMatchError
	return errors.As(err, &nm)
}

func newRootCmd() (*cobra.Command, *app) {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "sparrow",
		Short: "sparrow - locale-aware conversion helpers",
		Long: `sparrow converts between text and structured values.

It formats and parses dates and numbers under a pattern, a style pair or a
locale template, runs regex checks, detects links and phone numbers, hashes
data, edits colors and reads localized resources.

Exit status is 0 on success, 1 when the input produced no match and 2 on
errors.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.opts.cfgFile, "config", "", "Config file (default: $SPARROW_CONFIG or ./configs/sparrow.toml)")
	flags.BoolVarP(&a.opts.verbose, "verbose", "v", false, "Verbose output (debug logging)")
	flags.BoolVar(&a.opts.gmt, "gmt", false, "Use the locale-neutral en_US_POSIX/GMT context")
	flags.StringVar(&a.opts.locale, "locale", "", "Locale identifier, e.g. ja_JP")
	flags.StringVar(&a.opts.tz, "tz", "", "IANA time zone, e.g. Europe/Berlin")
	flags.StringVar(&a.opts.engine, "engine", "", "Regex engine: icu or re2")

	rootCmd.AddCommand(
		newDateCmd(a),
		newNumberCmd(a),
		newRegexCmd(a),
		newDetectCmd(a),
		newDigestCmd(a),
		newColorCmd(a),
		newResourceCmd(a),
		newPlaygroundCmd(a),
		newVersionCmd(),
	)

	return rootCmd, a
}

// setup loads configuration, applies flag overrides and builds the helper
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}

	if a.opts.gmt {
		cfg.Locale.Context = config.ContextGMT
	}
	if a.opts.locale != "" {
		cfg.Locale.Identifier = a.opts.locale
	}
	if a.opts.tz != "" {
		cfg.Locale.Timezone = a.opts.tz
	}
	if a.opts.engine != "" {
		cfg.Regex.Engine = a.opts.engine
	}
	if a.opts.verbose {
		cfg.General.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, err := cfg.Context()
	if err != nil {
		return err
	}
	engine, err := cfg.Engine()
	if err != nil {
		return err
	}

	a.requestID = uuid.NewString()
	a.logger = logging.NewLogger(logging.LoggerConfig{
		Name:   "sparrow",
		Level:  cfg.General.LogLevel,
		Format: cfg.General.LogFormat,
		Writer: cmd.ErrOrStderr(),
	}).WithRequestID(a.requestID)

	matcher := regexx.NewMatcher(engine)
	if size := *cfg.Regex.CacheSize; size > 0 {
		matcher = cache.NewPatterns(cache.Config{MaxItems: size}).Matcher(engine)
	}

	a.cfg = cfg
	a.ctx = ctx
	a.calendar = timex.NewCalendar(ctx.Location())
	a.helper = convert.New(
		convert.WithContext(ctx),
		convert.WithMatcher(matcher),
		convert.WithDetector(detectx.New(ctx)),
		convert.WithCalendar(a.calendar),
		convert.WithLogger(a.logger),
	)

	a.logger.Debug("invocation started", mdwlog.Fields{
		"command": cmd.CommandPath(),
		"context": ctx.String(),
		"engine":  engine.Name(),
		"config":  cfg.Path(),
	})
	a.timer = a.logger.StartTimer(cmd.CommandPath())
	return nil
}

func (a *app) loadConfig() (*config.Config, error) {
	if a.opts.cfgFile != "" {
		return config.Load(a.opts.cfgFile)
	}
	return config.LoadFromEnv()
}

// Execute runs the CLI and returns the process exit code
func Execute() int {
	rootCmd, a := newRootCmd()
	return run(rootCmd, a, rootCmd.ErrOrStderr())
}

func run(rootCmd *cobra.Command, a *app, stderr io.Writer) int {
	code := exitCode(rootCmd.Execute(), a, stderr)
	if a.timer != nil {
		a.timer.WithField("exit", code).Stop()
	}
	return code
}

func exitCode(err error, a *app, stderr io.Writer) int {
	switch {
	case err == nil:
		return ExitOK
	case IsNoMatch(err):
		fmt.Fprintln(stderr, err.Error())
		return ExitNoMatch
	}

	// Failures before setup have no logger yet.
	if a.logger != nil {
		a.logger.LogError(err)
	} else {
		printError(stderr, err)
	}
	return ExitError
}

func printError(w io.Writer, err error) {
	var coded *mdwerror.Error
	if errors.As(err, &coded) {
		fmt.Fprintf(w, "error: %s [%s]\n", coded.Error(), mdwerror.GetCode(err))
		return
	}
	fmt.Fprintf(w, "error: %v\n", err)
}

// textArg joins args, or reads in when none are given
func textArg(args []string, in io.Reader) (string, error) {
	if len(args) > 0 && !(len(args) == 1 && args[0] == "-") {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", mdwerror.Wrap(err, "failed to read input").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("cmd.textArg")
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}
