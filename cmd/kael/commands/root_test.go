package commands

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/pabloism0x/kael/internal/config"
	"github.com/pabloism0x/kael/internal/logging"
)

// executeCommand runs the root command with args and captures stdout.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return buf.String(), err
}

// writePRD drops a minimal valid PRD into dir and returns its path.
func writePRD(t *testing.T, dir, frontmatter string) string {
	t.Helper()

	content := "---\n" + frontmatter + "---\n\n# Test Project\n"
	path := filepath.Join(dir, "PRD.md")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func resetFlags(t *testing.T) {
	t.Helper()
	origCfg := cfg
	t.Cleanup(func() {
		verbosity = 0
		quiet = false
		logFormat = "text"
		logFile = ""
		initFrom, initAssistant, initDir = "", "", "."
		initForce = false
		generateFrom, generateAssistant, generateDir = "", "", "."
		generateDryRun = false
		listFrom = ""
		addAssistant, addDir = "", "."
		addForce = false
		removeAssistant, removeDir = "", "."
		cfg = origCfg
		configLoadErr = nil
	})
	cfg = config.Default()
}

func TestSetupLogging_VerbosityFlags(t *testing.T) {
	origVerbosity := verbosity
	defer func() { verbosity = origVerbosity }()

	tests := []struct {
		name      string
		verbosity int
		wantLevel slog.Level
	}{
		{"default (0)", 0, slog.LevelWarn},
		{"verbose (1)", 1, slog.LevelInfo},
		{"debug (2)", 2, slog.LevelDebug},
		{"trace (3)", 3, logging.LevelTrace},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verbosity = tt.verbosity
			if err := setupLogging(rootCmd); err != nil {
				t.Fatalf("setupLogging failed: %v", err)
			}

			logger := slog.Default()
			if !logger.Enabled(context.Background(), tt.wantLevel) {
				t.Errorf("expected level %v to be enabled", tt.wantLevel)
			}
		})
	}
}

func TestSetupLogging_QuietAndVerboseConflict(t *testing.T) {
	origVerbosity, origQuiet := verbosity, quiet
	defer func() { verbosity, quiet = origVerbosity, origQuiet }()

	verbosity = 1
	quiet = true

	if err := setupLogging(rootCmd); err == nil {
		t.Error("expected error for --quiet with --verbose")
	}
}

func TestSetupLogging_DebugEnvVar(t *testing.T) {
	origVerbosity := verbosity
	defer func() { verbosity = origVerbosity }()

	tests := []struct {
		envVal    string
		wantLevel slog.Level
	}{
		{"1", slog.LevelDebug},
		{"true", slog.LevelDebug},
		{"2", logging.LevelTrace},
		{"0", slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.envVal, func(t *testing.T) {
			verbosity = 0
			t.Setenv("KAEL_DEBUG", tt.envVal)

			if err := setupLogging(rootCmd); err != nil {
				t.Fatalf("setupLogging failed: %v", err)
			}
			if !slog.Default().Enabled(context.Background(), tt.wantLevel) {
				t.Errorf("expected level %v enabled for KAEL_DEBUG=%s", tt.wantLevel, tt.envVal)
			}
		})
	}
}
