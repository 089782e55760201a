package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pabloism0x/kael/internal/errors"
)

func TestHome(t *testing.T) {
	got := Home()
	want, err := os.UserHomeDir()
	if err != nil {
		t.Fatalf("os.UserHomeDir() failed: %v", err)
	}
	if got != want {
		t.Errorf("Home() = %q, want %q", got, want)
	}
}

func TestResolveHome(t *testing.T) {
	got, err := ResolveHome()
	want, _ := os.UserHomeDir()

	if err != nil {
		// Might happen in restricted environments, but normally succeeds.
		if !errors.Is(err, ErrHomeDirNotFound) {
			t.Errorf("unexpected error type: %v", err)
		}
	} else if got != want {
		t.Errorf("ResolveHome() = %q, want %q", got, want)
	}
}

func TestConfigHome(t *testing.T) {
	got := ConfigHome()
	if got == "" {
		t.Error("ConfigHome() returned empty string")
	}
	if !filepath.IsAbs(got) {
		t.Errorf("ConfigHome() = %q, want absolute path", got)
	}
}

func TestValidAssistant(t *testing.T) {
	tests := []struct {
		assistant string
		want      bool
	}{
		{AssistantClaude, true},
		{AssistantCodex, true},
		{AssistantGemini, true},
		{"opencode", false},
		{"", false},
		{"CLAUDE", false},
	}
	for _, tt := range tests {
		t.Run(tt.assistant, func(t *testing.T) {
			if got := ValidAssistant(tt.assistant); got != tt.want {
				t.Errorf("ValidAssistant(%q) = %v, want %v", tt.assistant, got, tt.want)
			}
		})
	}
}

func TestAssistants(t *testing.T) {
	got := Assistants()
	if len(got) != 3 {
		t.Fatalf("Assistants() returned %d entries, want 3", len(got))
	}
	for _, a := range got {
		if !ValidAssistant(a) {
			t.Errorf("Assistants() returned invalid assistant %q", a)
		}
	}
}

func TestLayoutTables(t *testing.T) {
	tests := []struct {
		assistant       string
		wantConfigDir   string
		wantInstruction string
		wantSettings    string
	}{
		{AssistantClaude, ".claude", "CLAUDE.md", "settings.json"},
		{AssistantCodex, ".codex", "AGENTS.md", "config.toml"},
		{AssistantGemini, ".gemini", "GEMINI.md", "settings.toml"},
		{"unknown", "", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.assistant, func(t *testing.T) {
			if got := ConfigDir(tt.assistant); got != tt.wantConfigDir {
				t.Errorf("ConfigDir() = %q, want %q", got, tt.wantConfigDir)
			}
			if got := InstructionFile(tt.assistant); got != tt.wantInstruction {
				t.Errorf("InstructionFile() = %q, want %q", got, tt.wantInstruction)
			}
			if got := SettingsFile(tt.assistant); got != tt.wantSettings {
				t.Errorf("SettingsFile() = %q, want %q", got, tt.wantSettings)
			}
		})
	}
}

func TestInstructionsPath(t *testing.T) {
	got := InstructionsPath(AssistantClaude, "/tmp/project")
	want := filepath.Join("/tmp/project", "CLAUDE.md")
	if got != want {
		t.Errorf("InstructionsPath() = %q, want %q", got, want)
	}

	if got := InstructionsPath("unknown", "/tmp/project"); got != "" {
		t.Errorf("InstructionsPath(unknown) = %q, want empty", got)
	}
	if got := InstructionsPath(AssistantClaude, ""); got != "" {
		t.Errorf("InstructionsPath(empty root) = %q, want empty", got)
	}
}

func TestEnsureDir(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "a", "b", "c")

	if err := EnsureDir(target, 0); err != nil {
		t.Fatalf("EnsureDir() error = %v", err)
	}
	info, err := os.Stat(target)
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}
	if !info.IsDir() {
		t.Error("expected directory")
	}

	// Idempotent
	if err := EnsureDir(target, 0); err != nil {
		t.Errorf("EnsureDir() second call error = %v", err)
	}
}
