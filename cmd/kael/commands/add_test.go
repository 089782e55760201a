package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pabloism0x/kael/internal/catalog"
)

func TestAddCommand_InstallsSkill(t *testing.T) {
	resetFlags(t)
	dir := t.TempDir()

	out, err := executeCommand(t, "add", "skill", "rust/error-handling", "--dir", dir, "--assistant", "claude")
	require.NoError(t, err)

	target := filepath.Join(dir, ".claude", "skills", "rust", "error-handling", "SKILL.md")
	assert.Contains(t, out, ".claude/skills/rust/error-handling/SKILL.md")
	require.FileExists(t, target)

	want, err := catalog.Get(catalog.KindSkill, "rust/error-handling")
	require.NoError(t, err)
	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, want, string(data))
}

func TestAddCommand_InstallsCommandForGemini(t *testing.T) {
	resetFlags(t)
	dir := t.TempDir()

	_, err := executeCommand(t, "add", "command", "commit", "--dir", dir, "--assistant", "gemini")
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, ".gemini", "commands", "commit.md"))
}

func TestAddCommand_ExistingWithoutForce(t *testing.T) {
	resetFlags(t)
	dir := t.TempDir()

	_, err := executeCommand(t, "add", "agent", "_base/reviewer", "--dir", dir, "--assistant", "claude")
	require.NoError(t, err)

	_, err = executeCommand(t, "add", "agent", "_base/reviewer", "--dir", dir, "--assistant", "claude")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestAddCommand_ForceOverwrites(t *testing.T) {
	resetFlags(t)
	dir := t.TempDir()

	target := filepath.Join(dir, ".claude", "agents", "_base", "reviewer.md")
	require.NoError(t, os.MkdirAll(filepath.Dir(target), 0o755))
	require.NoError(t, os.WriteFile(target, []byte("stale\n"), 0o644))

	_, err := executeCommand(t, "add", "agent", "_base/reviewer", "--dir", dir, "--assistant", "claude", "--force")
	require.NoError(t, err)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.NotEqual(t, "stale\n", string(data))
}

func TestAddCommand_UnknownComponent(t *testing.T) {
	resetFlags(t)
	dir := t.TempDir()

	_, err := executeCommand(t, "add", "skill", "no/such", "--dir", dir)
	require.Error(t, err)
}

func TestAddCommand_UnknownKind(t *testing.T) {
	resetFlags(t)

	_, err := executeCommand(t, "add", "widget", "x", "--dir", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown component type")
}

func TestParseKindArg(t *testing.T) {
	tests := []struct {
		arg  string
		want catalog.Kind
		ok   bool
	}{
		{"skill", catalog.KindSkill, true},
		{"agent", catalog.KindAgent, true},
		{"command", catalog.KindCommand, true},
		{"skills", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			got, err := parseKindArg(tt.arg)
			if tt.ok {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			} else {
				require.Error(t, err)
			}
		})
	}
}

func TestComponentTarget(t *testing.T) {
	assert.Equal(t, ".claude/skills/go/testing/SKILL.md",
		componentTarget("claude", catalog.KindSkill, "go/testing"))
	assert.Equal(t, ".gemini/agents/_base/reviewer.md",
		componentTarget("gemini", catalog.KindAgent, "_base/reviewer"))
	assert.Equal(t, ".codex/commands/commit.md",
		componentTarget("codex", catalog.KindCommand, "commit"))
}
