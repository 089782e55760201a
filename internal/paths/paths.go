package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/pabloism0x/kael/internal/errors"
)

// Assistant identifiers for supported AI coding assistants.
const (
	AssistantClaude = "claude"
	AssistantCodex  = "codex"
	AssistantGemini = "gemini"
)

// assistantConfigDirs maps assistant names to their project config directories.
var assistantConfigDirs = map[string]string{
	AssistantClaude: ".claude",
	AssistantCodex:  ".codex",
	AssistantGemini: ".gemini",
}

// assistantInstructionFiles maps assistant names to their instruction file names.
var assistantInstructionFiles = map[string]string{
	AssistantClaude: "CLAUDE.md",
	AssistantCodex:  "AGENTS.md",
	AssistantGemini: "GEMINI.md",
}

// assistantSettingsFiles maps assistant names to their settings file names
// relative to the config directory.
var assistantSettingsFiles = map[string]string{
	AssistantClaude: "settings.json",
	AssistantCodex:  "config.toml",
	AssistantGemini: "settings.toml",
}

// ErrHomeDirNotFound indicates the user's home directory could not be determined.
var ErrHomeDirNotFound = errors.New("home directory not found")

// DefaultDirPerm is the default permission for newly created directories.
const DefaultDirPerm = 0o755

// EnsureDir creates the directory and any necessary parents with specified permissions.
// If perm is 0, DefaultDirPerm is used.
// This function is idempotent; it returns nil if the directory already exists.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return os.MkdirAll(path, perm)
}

// Home returns the user's home directory, or an empty string on error.
// Use ResolveHome for proper error handling.
func Home() string {
	h, _ := ResolveHome()
	return h
}

// ResolveHome returns the user's home directory.
// Returns ErrHomeDirNotFound if the directory cannot be determined.
func ResolveHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(ErrHomeDirNotFound, err.Error())
	}
	return home, nil
}

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func ConfigHome() string {
	return xdg.ConfigHome
}

// ValidAssistant returns true if the assistant name is recognized.
func ValidAssistant(assistant string) bool {
	_, ok := assistantConfigDirs[assistant]
	return ok
}

// Assistants returns a slice of all supported assistant identifiers.
func Assistants() []string {
	return []string{
		AssistantClaude,
		AssistantCodex,
		AssistantGemini,
	}
}

// ConfigDir returns the project-relative config directory for an assistant
// (e.g. ".claude"). Returns an empty string for unknown assistants.
func ConfigDir(assistant string) string {
	return assistantConfigDirs[assistant]
}

// InstructionFile returns the instruction file name for an assistant
// (e.g. "CLAUDE.md"). Returns an empty string for unknown assistants.
func InstructionFile(assistant string) string {
	return assistantInstructionFiles[assistant]
}

// SettingsFile returns the settings file name for an assistant, relative to
// its config directory (e.g. "settings.json").
// Returns an empty string for unknown assistants.
func SettingsFile(assistant string) string {
	return assistantSettingsFiles[assistant]
}

// InstructionsPath returns the absolute path of the instruction file for an
// assistant inside projectRoot. Returns an empty string for unknown
// assistants or an empty projectRoot.
func InstructionsPath(assistant, projectRoot string) string {
	if projectRoot == "" {
		return ""
	}
	name, ok := assistantInstructionFiles[assistant]
	if !ok {
		return ""
	}
	return filepath.Join(projectRoot, name)
}
