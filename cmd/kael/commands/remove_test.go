package commands

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pabloism0x/kael/internal/errors"
)

func TestRemoveCommand_DeletesComponent(t *testing.T) {
	resetFlags(t)
	dir := t.TempDir()

	_, err := executeCommand(t, "add", "skill", "python/fastapi", "--dir", dir, "--assistant", "claude")
	require.NoError(t, err)

	_, err = executeCommand(t, "remove", "skill", "python/fastapi", "--dir", dir, "--assistant", "claude")
	require.NoError(t, err)

	assert.NoFileExists(t, filepath.Join(dir, ".claude", "skills", "python", "fastapi", "SKILL.md"))
	// Empty parents are pruned up to the project directory.
	assert.NoDirExists(t, filepath.Join(dir, ".claude"))
	assert.DirExists(t, dir)
}

func TestRemoveCommand_KeepsSiblings(t *testing.T) {
	resetFlags(t)
	dir := t.TempDir()

	_, err := executeCommand(t, "add", "command", "commit", "--dir", dir, "--assistant", "claude")
	require.NoError(t, err)
	_, err = executeCommand(t, "add", "command", "review", "--dir", dir, "--assistant", "claude")
	require.NoError(t, err)

	_, err = executeCommand(t, "remove", "command", "commit", "--dir", dir, "--assistant", "claude")
	require.NoError(t, err)

	assert.NoFileExists(t, filepath.Join(dir, ".claude", "commands", "commit.md"))
	assert.FileExists(t, filepath.Join(dir, ".claude", "commands", "review.md"))
}

func TestRemoveCommand_NotInstalled(t *testing.T) {
	resetFlags(t)
	dir := t.TempDir()

	_, err := executeCommand(t, "remove", "agent", "_base/reviewer", "--dir", dir, "--assistant", "claude")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrNotFound))
	assert.Contains(t, err.Error(), "not installed")
}
