package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/alnah/go-tinymd/internal/config"
	"github.com/alnah/go-tinymd/internal/logging"
)

// envPrefix marks variables read by tinymd.
const envPrefix = "TINYMD_"

// envConfig holds configuration from environment variables.
// Provides CI-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // TINYMD_CONFIG: config file name or path
	EscapeHTML *bool  // TINYMD_ESCAPE_HTML: nil when unset or invalid
	LogLevel   string // TINYMD_LOG_LEVEL: debug, info, warn, error
}

// knownEnvVars lists valid TINYMD_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"TINYMD_CONFIG":      true,
	"TINYMD_ESCAPE_HTML": true,
	"TINYMD_LOG_LEVEL":   true,
}

// loadEnvConfig reads TINYMD_* variables through getenv.
// Invalid values are ignored and reported as warnings.
func loadEnvConfig(getenv func(string) string) (*envConfig, []string) {
	var warnings []string
	cfg := &envConfig{
		ConfigPath: getenv("TINYMD_CONFIG"),
	}

	if raw := getenv("TINYMD_ESCAPE_HTML"); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			cfg.EscapeHTML = &v
		} else {
			warnings = append(warnings, fmt.Sprintf("ignoring TINYMD_ESCAPE_HTML=%q (want true or false)", raw))
		}
	}

	if raw := getenv("TINYMD_LOG_LEVEL"); raw != "" {
		if _, err := logging.ParseLevel(raw); err == nil {
			cfg.LogLevel = raw
		} else {
			warnings = append(warnings, fmt.Sprintf("ignoring TINYMD_LOG_LEVEL=%q (want debug, info, warn, or error)", raw))
		}
	}

	return cfg, warnings
}

// unknownEnvVars returns unrecognized TINYMD_* variable names, sorted.
// Helps catch typos like TINYMD_ESCAPE instead of TINYMD_ESCAPE_HTML.
func unknownEnvVars(environ []string) []string {
	var unknown []string
	for _, env := range environ {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(env, "=")
		if !knownEnvVars[name] {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	return unknown
}

// applyEnvConfig applies environment values on top of the loaded config.
// Precedence: CLI flags > env vars > config file > defaults
// (CLI flags are applied afterwards in resolveSettings).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.EscapeHTML != nil {
		cfg.Output.EscapeHTML = *env.EscapeHTML
	}
	if env.LogLevel != "" {
		cfg.Log.Level = strings.ToLower(strings.TrimSpace(env.LogLevel))
	}
}
