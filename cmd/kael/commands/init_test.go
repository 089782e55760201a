package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pabloism0x/kael/internal/errors"
)

const goCliFrontmatter = `name: testproj
description: A test project
stack:
  language: go
type: cli
`

func TestInitCommand_GeneratesTree(t *testing.T) {
	resetFlags(t)
	dir := t.TempDir()
	prdPath := writePRD(t, dir, goCliFrontmatter)

	out, err := executeCommand(t, "init", "--from", prdPath, "--dir", dir, "--assistant", "claude")
	require.NoError(t, err)

	assert.Contains(t, out, "Generated claude configuration for testproj")
	assert.FileExists(t, filepath.Join(dir, "CLAUDE.md"))
	assert.FileExists(t, filepath.Join(dir, ".claude", "settings.json"))
	assert.FileExists(t, filepath.Join(dir, ".claude", "skills", "go", "concurrency", "SKILL.md"))
	assert.FileExists(t, filepath.Join(dir, ".claude", "agents", "go", "systems-expert.md"))
	assert.FileExists(t, filepath.Join(dir, ".claude", "commands", "release.md"))
}

func TestInitCommand_PreservesEditsWithoutForce(t *testing.T) {
	resetFlags(t)
	dir := t.TempDir()
	prdPath := writePRD(t, dir, goCliFrontmatter)

	_, err := executeCommand(t, "init", "--from", prdPath, "--dir", dir, "--assistant", "claude")
	require.NoError(t, err)

	edited := filepath.Join(dir, "CLAUDE.md")
	require.NoError(t, os.WriteFile(edited, []byte("custom\n"), 0o644))

	out, err := executeCommand(t, "init", "--from", prdPath, "--dir", dir, "--assistant", "claude")
	require.NoError(t, err)
	assert.Contains(t, out, "left untouched")

	data, err := os.ReadFile(edited)
	require.NoError(t, err)
	assert.Equal(t, "custom\n", string(data))
}

func TestInitCommand_ForceOverwrites(t *testing.T) {
	resetFlags(t)
	dir := t.TempDir()
	prdPath := writePRD(t, dir, goCliFrontmatter)

	_, err := executeCommand(t, "init", "--from", prdPath, "--dir", dir, "--assistant", "claude")
	require.NoError(t, err)

	edited := filepath.Join(dir, "CLAUDE.md")
	require.NoError(t, os.WriteFile(edited, []byte("stale\n"), 0o644))

	out, err := executeCommand(t, "init", "--from", prdPath, "--dir", dir, "--assistant", "claude", "--force")
	require.NoError(t, err)
	assert.Contains(t, out, "overwritten")

	data, err := os.ReadFile(edited)
	require.NoError(t, err)
	assert.NotEqual(t, "stale\n", string(data))
}

func TestInitCommand_InvalidAssistant(t *testing.T) {
	resetFlags(t)
	dir := t.TempDir()
	prdPath := writePRD(t, dir, goCliFrontmatter)

	_, err := executeCommand(t, "init", "--from", prdPath, "--dir", dir, "--assistant", "emacs")
	require.Error(t, err)

	var exitErr *errors.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, errors.ExitUser, exitErr.Code)
	assert.Contains(t, exitErr.Suggestion, "claude, codex, gemini")
}

func TestInitCommand_UnknownOverrideComponent(t *testing.T) {
	resetFlags(t)
	dir := t.TempDir()
	prdPath := writePRD(t, dir, goCliFrontmatter+"skills:\n  - no/such-skill\n")

	_, err := executeCommand(t, "init", "--from", prdPath, "--dir", dir, "--assistant", "claude")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown skill "no/such-skill"`)

	// Nothing may be written on a failed render.
	assert.NoFileExists(t, filepath.Join(dir, "CLAUDE.md"))
	assert.NoDirExists(t, filepath.Join(dir, ".claude"))
}

func TestInitCommand_MissingPRD(t *testing.T) {
	resetFlags(t)
	dir := t.TempDir()

	_, err := executeCommand(t, "init", "--from", filepath.Join(dir, "PRD.md"), "--dir", dir)
	require.Error(t, err)
}

func TestInitCommand_InvalidFrontmatter(t *testing.T) {
	resetFlags(t)
	dir := t.TempDir()
	prdPath := writePRD(t, dir, "name: x\nstack:\n  language: cobol\ntype: cli\n")

	_, err := executeCommand(t, "init", "--from", prdPath, "--dir", dir)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidPRD))
}

func TestInitCommand_CodexLayout(t *testing.T) {
	resetFlags(t)
	dir := t.TempDir()
	prdPath := writePRD(t, dir, goCliFrontmatter)

	_, err := executeCommand(t, "init", "--from", prdPath, "--dir", dir, "--assistant", "codex")
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, "AGENTS.md"))
	assert.FileExists(t, filepath.Join(dir, ".codex", "config.toml"))

	data, err := os.ReadFile(filepath.Join(dir, ".codex", "config.toml"))
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "name = 'testproj'") ||
		strings.Contains(string(data), `name = "testproj"`))
}
