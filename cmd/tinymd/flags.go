package main

import (
	"errors"
	"io"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all command-line flags.
type cliFlags struct {
	config     string
	quiet      bool
	verbose    bool
	escapeHTML bool
	escapeSet  bool // --escape-html given explicitly, including =false
	version    bool
}

// newFlagSet declares the tinymd flags on a fresh FlagSet bound to f.
func newFlagSet(f *cliFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("tinymd", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug details")
	fs.BoolVar(&f.escapeHTML, "escape-html", false, "escape <, >, & and \" in line content")
	fs.BoolVar(&f.version, "version", false, "print version and exit")
	return fs
}

// parseFlags parses args (without the program name) and returns positional args.
func parseFlags(args []string) (*cliFlags, []string, error) {
	f := &cliFlags{}
	fs := newFlagSet(f)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, nil, err
		}
		return nil, nil, &usageError{err: err}
	}
	f.escapeSet = fs.Changed("escape-html")

	if f.quiet && f.verbose {
		return nil, nil, ErrConflictingFlags
	}

	return f, fs.Args(), nil
}

// flagUsages renders the flag table for help output.
func flagUsages() string {
	return newFlagSet(&cliFlags{}).FlagUsages()
}

func isHelp(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}

// usageError marks flag parsing failures so they map to ExitUsage.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }

func (e *usageError) Unwrap() []error { return []error{ErrInvalidInvocation, e.err} }
