package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"time"

	"code.cloudfoundry.org/bytefmt"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mhr3/bitmatch/bitsearch"
)

var (
	// Version is reported by --version.
	Version = "0.0.0"

	// Commit, when set, is appended to the version.
	Commit = ""
)

// maxLoggedBits bounds how much of a pattern debug records show.
const maxLoggedBits = 64

// Execute runs bitmatch with the process arguments and standard streams
// and returns the exit code.
func Execute() int {
	return run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := newApp(stderr)
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	cmd, err := root.ExecuteC()
	code := exitCode(err)
	status := describeExit(code)
	if err == nil && infoRequested(cmd) {
		status = "info"
	}
	switch code {
	case exitFound, exitNotFound:
	case exitUsage:
		fmt.Fprintf(stderr, "Error: %v\n\n%s", err, root.UsageString())
	default:
		a.log.Error(describeExit(code), "err", err)
	}
	a.log.Debug("exit", "code", code, "status", status)
	return code
}

// infoRequested reports whether cmd only printed its help or version.
func infoRequested(cmd *cobra.Command) bool {
	if cmd == nil {
		return false
	}
	for _, name := range []string{"help", "version"} {
		if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
			return true
		}
	}
	return false
}

type app struct {
	v     *viper.Viper
	cfg   Config
	log   *slog.Logger
	level *slog.LevelVar
}

func newApp(stderr io.Writer) *app {
	level := new(slog.LevelVar)
	return &app{
		v:     viper.New(),
		cfg:   DefaultConfig(),
		log:   slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})),
		level: level,
	}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "bitmatch [flags] <pattern> <bits>",
		Short: "Find a bit pattern in binary input",
		Long: `bitmatch searches its input for the first occurrence of a bit pattern,
at any bit offset. <pattern> is a sequence of hexadecimal digits and <bits>
the number of significant bits to take from it.

The exit status is 0 when the pattern is found and 1 when it is not.`,
		Args:          a.checkArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version(),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(a.v, cmd.Flags())
			if err != nil {
				return usageError(err)
			}
			a.cfg = cfg
			if cfg.Verbose {
				a.level.Set(slog.LevelDebug)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.search(cmd, args[0], args[1])
		},
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})

	flags := root.Flags()
	flags.StringP("input", "i", DefaultInput, "read input from `file` instead of standard input")
	flags.String("max-input", DefaultMaxInput, "refuse inputs larger than `size` (e.g. 64M, 1G; 0 for no limit)")
	flags.BoolP("print", "p", false, "print the bit offset of the match")
	flags.BoolP("verbose", "v", false, "log debug information to standard error")
	flags.String("config", "", "read settings from `file` (yaml, toml or json)")
	return root
}

func (a *app) checkArgs(_ *cobra.Command, args []string) error {
	if len(args) != 2 {
		return usageError(fmt.Errorf("expected <pattern> and <bits>, got %d arguments", len(args)))
	}
	return nil
}

func (a *app) search(cmd *cobra.Command, hex, bitsArg string) error {
	nbits, err := parseBitCount(bitsArg)
	if err != nil {
		return invalidArgs(err)
	}
	p, err := bitsearch.NewPattern(hex, nbits)
	if err != nil {
		return invalidArgs(fmt.Errorf("failed to parse the bit sequence: %w", err))
	}
	a.log.Debug("pattern", "bits", p.Len(), "value", patternValue{p})

	// An empty pattern matches anything, there is no need to read the input.
	if p.Len() == 0 {
		return a.report(cmd, bitsearch.Result{Offset: 0, Found: true})
	}

	limit, err := a.cfg.MaxInputBytes()
	if err != nil {
		return usageError(err)
	}
	data, err := readInput(a.cfg.Input, cmd.InOrStdin(), limit)
	if err != nil {
		return err
	}

	start := time.Now()
	r, err := p.Find(data)
	if err != nil {
		return searchError(err)
	}
	a.log.Debug("searched",
		"input", bytefmt.ByteSize(uint64(len(data))),
		"elapsed", time.Since(start),
		"found", r.Found,
	)
	return a.report(cmd, r)
}

// searchError classifies a failed scan. An input whose bit length cannot be
// represented is reported as an I/O error, like a read that cannot complete.
func searchError(err error) error {
	return ioError(fmt.Errorf("failed to search the input: %w", err))
}

func (a *app) report(cmd *cobra.Command, r bitsearch.Result) error {
	if !r.Found {
		return errNotFound
	}
	a.log.Debug("match", "offset", r.Offset, "byte", r.Offset/8, "bit", r.Offset%8)
	if a.cfg.Print {
		fmt.Fprintln(cmd.OutOrStdout(), r.Offset)
	}
	return nil
}

// parseBitCount parses a non-negative decimal bit count. Signs, spaces and
// trailing characters are rejected.
func parseBitCount(s string) (int, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		var ne *strconv.NumError
		if errors.As(err, &ne) {
			err = ne.Err
		}
		return 0, fmt.Errorf("failed to parse the number of bits %q: %w", s, err)
	}
	if n > math.MaxInt {
		return 0, fmt.Errorf("failed to parse the number of bits %q: %w", s, bitsearch.ErrBitCount)
	}
	return int(n), nil
}

// patternValue defers rendering a pattern until a record is emitted.
type patternValue struct{ p *bitsearch.Pattern }

func (v patternValue) LogValue() slog.Value {
	return slog.StringValue(truncate(v.p.String(), maxLoggedBits))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

func version() string {
	if Commit == "" {
		return Version
	}
	return Version + " (" + Commit + ")"
}
