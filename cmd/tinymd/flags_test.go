package main

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestParseFlags - Flag parsing and positional arguments
// ---------------------------------------------------------------------------

func TestParseFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		args           []string
		wantFlags      cliFlags
		wantPositional []string
	}{
		{
			name:           "no args",
			args:           nil,
			wantPositional: []string{},
		},
		{
			name:           "single input",
			args:           []string{"doc.md"},
			wantPositional: []string{"doc.md"},
		},
		{
			name:           "flags after input",
			args:           []string{"doc.md", "-q"},
			wantFlags:      cliFlags{quiet: true},
			wantPositional: []string{"doc.md"},
		},
		{
			name:           "short config",
			args:           []string{"-c", "work", "doc.md"},
			wantFlags:      cliFlags{config: "work"},
			wantPositional: []string{"doc.md"},
		},
		{
			name:           "escape explicitly false",
			args:           []string{"--escape-html=false", "doc.md"},
			wantFlags:      cliFlags{escapeHTML: false, escapeSet: true},
			wantPositional: []string{"doc.md"},
		},
		{
			name:           "escape and verbose",
			args:           []string{"--escape-html", "-v", "doc.md"},
			wantFlags:      cliFlags{escapeHTML: true, escapeSet: true, verbose: true},
			wantPositional: []string{"doc.md"},
		},
		{
			name:           "version",
			args:           []string{"--version"},
			wantFlags:      cliFlags{version: true},
			wantPositional: []string{},
		},
		{
			name:           "double dash keeps dashed file names",
			args:           []string{"--", "-odd.md"},
			wantPositional: []string{"-odd.md"},
		},
	}

	for _, tt := range tests {

		tt := tt // per-iteration copy for Go < 1.22
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			flags, positional, err := parseFlags(tt.args)
			if err != nil {
				t.Fatalf("parseFlags(%v) error = %v", tt.args, err)
			}
			if *flags != tt.wantFlags {
				t.Errorf("flags = %+v, want %+v", *flags, tt.wantFlags)
			}
			if !reflect.DeepEqual(positional, tt.wantPositional) {
				t.Errorf("positional = %q, want %q", positional, tt.wantPositional)
			}
		})
	}
}

func TestParseFlags_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{"unknown flag", []string{"--nope"}, ErrInvalidInvocation},
		{"missing config value", []string{"--config"}, ErrInvalidInvocation},
		{"quiet and verbose", []string{"-qv"}, ErrConflictingFlags},
	}

	for _, tt := range tests {

		tt := tt // per-iteration copy for Go < 1.22
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := parseFlags(tt.args)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("parseFlags(%v) error = %v, want %v", tt.args, err, tt.wantErr)
			}
		})
	}
}

func TestParseFlags_Help(t *testing.T) {
	t.Parallel()

	for _, arg := range []string{"-h", "--help"} {
		_, _, err := parseFlags([]string{arg})
		if !isHelp(err) {
			t.Errorf("parseFlags(%q) error = %v, want help", arg, err)
		}
	}
}

func TestUsageError_MessageIsParserMessage(t *testing.T) {
	t.Parallel()

	_, _, err := parseFlags([]string{"--nope"})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "--nope") {
		t.Errorf("error = %q, want to name the flag", err)
	}
}

func TestFlagUsages(t *testing.T) {
	t.Parallel()

	usage := flagUsages()
	for _, want := range []string{"-c, --config", "-q, --quiet", "-v, --verbose", "--escape-html", "--version"} {
		if !strings.Contains(usage, want) {
			t.Errorf("flagUsages() missing %q:\n%s", want, usage)
		}
	}
}
