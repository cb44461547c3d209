package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	tinymd "github.com/alnah/go-tinymd"
	"github.com/alnah/go-tinymd/internal/config"
	"github.com/alnah/go-tinymd/internal/hints"
	"github.com/alnah/go-tinymd/internal/logging"
)

// Sentinel errors for CLI operations.
var (
	ErrInvalidInvocation = errors.New("invalid invocation")
	ErrConflictingFlags  = errors.New("--quiet and --verbose cannot be combined")
)

// settings is the resolved configuration for a single conversion.
type settings struct {
	escapeHTML bool
	level      zerolog.Level
}

// runConvert converts inputPath and returns the process exit code.
// Failures are reported once, on stderr, and never retried.
func runConvert(ctx context.Context, inputPath string, flags *cliFlags, deps *Dependencies) int {
	env, warnings := loadEnvConfig(deps.Getenv)

	s, err := resolveSettings(flags, env)
	if err != nil {
		log := logging.New(deps.Stdout, deps.Stderr, zerolog.InfoLevel)
		reportError(log, err, inputPath)
		return exitCodeFor(err)
	}

	log := logging.New(deps.Stdout, deps.Stderr, s.level)
	for _, w := range warnings {
		log.Warn().Msg(w)
	}
	for _, name := range unknownEnvVars(deps.Environ()) {
		log.Warn().Str("name", name).Msg("unknown environment variable (typo?)")
	}

	if s.level <= zerolog.InfoLevel {
		printShortBanner(deps.Stdout)
	}
	log.Info().Str("input", inputPath).Msg("trying to parse")

	conv := tinymd.NewConverter(
		tinymd.WithEscapeHTML(s.escapeHTML),
		tinymd.WithLogger(log),
	)
	result, err := conv.ConvertFile(ctx, inputPath)
	if err != nil {
		reportError(log, err, inputPath)
		return exitCodeFor(err)
	}

	log.Info().Int("fragments", result.Fragments).Msg("parsing complete")
	log.Info().Str("output", result.OutputPath).Msg("html file emitted")
	return ExitSuccess
}

// resolveSettings merges config file, environment and flags.
// Precedence: CLI flags > env vars > config file > defaults.
func resolveSettings(flags *cliFlags, env *envConfig) (*settings, error) {
	configName := flags.config
	if configName == "" {
		configName = env.ConfigPath
	}

	cfg := config.DefaultConfig()
	if configName != "" {
		var err error
		cfg, err = config.LoadConfig(configName)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
	}

	applyEnvConfig(env, cfg)

	if flags.escapeSet {
		cfg.Output.EscapeHTML = flags.escapeHTML
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", config.ErrInvalidLogLevel, err)
	}
	switch {
	case flags.verbose:
		level = zerolog.DebugLevel
	case flags.quiet:
		level = zerolog.ErrorLevel
	}

	return &settings{escapeHTML: cfg.Output.EscapeHTML, level: level}, nil
}

// reportError logs err with an actionable hint.
func reportError(log zerolog.Logger, err error, inputPath string) {
	log.Error().Msg(err.Error() + hintFor(err, inputPath))
}

// hintFor picks the hint matching err, or none.
func hintFor(err error, inputPath string) string {
	var notFound *config.NotFoundError
	switch {
	case errors.Is(err, tinymd.ErrInputNotFound):
		return hints.ForInputNotFound(inputPath)
	case errors.Is(err, tinymd.ErrOutputWriteFailed):
		return hints.ForOutputWrite(tinymd.OutputPath(inputPath))
	case errors.As(err, &notFound):
		return hints.ForConfigNotFound(notFound.Tried)
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(nil)
	default:
		return ""
	}
}
