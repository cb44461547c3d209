package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/alnah/go-tinymd/internal/hints"
	"github.com/alnah/go-tinymd/internal/logging"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := runMain(ctx, os.Args, DefaultDeps())
	stop()
	os.Exit(code)
}

// runMain dispatches on the number of positional arguments and returns the
// process exit code.
func runMain(ctx context.Context, args []string, deps *Dependencies) int {
	var cliArgs []string
	if len(args) > 1 {
		cliArgs = args[1:]
	}

	// Flags decide the final level; invocation errors are logged before that.
	log := logging.New(deps.Stdout, deps.Stderr, zerolog.InfoLevel)

	flags, positional, err := parseFlags(cliArgs)
	if err != nil {
		if isHelp(err) {
			printHelp(deps.Stdout)
			return ExitSuccess
		}
		log.Error().Msg(err.Error() + hints.ForUsage())
		return exitCodeFor(err)
	}

	if flags.version {
		printShortBanner(deps.Stdout)
		return ExitSuccess
	}

	switch len(positional) {
	case 0:
		printLongBanner(deps.Stdout)
		return ExitSuccess
	case 1:
		return runConvert(ctx, positional[0], flags, deps)
	default:
		log.Error().Msgf("%v: expected one input file, got %d", ErrInvalidInvocation, len(positional))
		printLongBanner(deps.Stderr)
		return exitCodeFor(ErrInvalidInvocation)
	}
}
