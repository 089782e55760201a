// Package paths provides path resolution utilities for AI coding assistant
// configuration trees generated by kael.
//
// The package wraps github.com/adrg/xdg for cross-platform XDG Base Directory
// Specification compliance (kael's own config lives under ConfigHome), and it
// holds the per-assistant layout tables that decide where generated files go
// inside a project.
//
// # Assistant Layouts
//
// Each assistant uses a different project layout:
//
//	| Assistant | Config Dir | Instructions | Settings      |
//	|-----------|------------|--------------|---------------|
//	| claude    | .claude/   | CLAUDE.md    | settings.json |
//	| codex     | .codex/    | AGENTS.md    | config.toml   |
//	| gemini    | .gemini/   | GEMINI.md    | settings.toml |
//
// Use the provided assistant constants when calling layout functions:
//
//	paths.ConfigDir(paths.AssistantClaude)       // ".claude"
//	paths.InstructionFile(paths.AssistantClaude) // "CLAUDE.md"
//
// Unknown assistant names resolve to empty strings; validate with
// ValidAssistant before use.
package paths
