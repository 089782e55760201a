package commands

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCommand_Skills(t *testing.T) {
	resetFlags(t)

	out, err := executeCommand(t, "list", "skills")
	require.NoError(t, err)

	assert.Contains(t, out, "_common/git-workflow")
	assert.Contains(t, out, "rust/error-handling")
	assert.NotContains(t, out, "_base/architect")
}

func TestListCommand_All(t *testing.T) {
	resetFlags(t)

	out, err := executeCommand(t, "list", "all")
	require.NoError(t, err)

	assert.Contains(t, out, "skills:")
	assert.Contains(t, out, "agents:")
	assert.Contains(t, out, "commands:")
	assert.Contains(t, out, "_base/architect")
	assert.Contains(t, out, "commit")
}

func TestListCommand_FromMarksSelection(t *testing.T) {
	resetFlags(t)
	dir := t.TempDir()
	prdPath := writePRD(t, dir, goCliFrontmatter)

	out, err := executeCommand(t, "list", "skills", "--from", prdPath)
	require.NoError(t, err)

	var markedGo, unmarkedRust bool
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "go/concurrency") {
			markedGo = strings.Contains(line, "*") && strings.Contains(line, "language rule (go)")
		}
		if strings.Contains(line, "rust/async-patterns") {
			unmarkedRust = !strings.Contains(line, "*")
		}
	}
	assert.True(t, markedGo, "go skill should be marked with its matching rule:\n%s", out)
	assert.True(t, unmarkedRust, "rust skill should be unmarked for a go PRD:\n%s", out)
}

func TestListCommand_InvalidType(t *testing.T) {
	resetFlags(t)

	_, err := executeCommand(t, "list", "widgets")
	require.Error(t, err)
}
