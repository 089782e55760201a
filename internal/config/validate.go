package config

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/pabloism0x/kael/internal/paths"
)

// Validation errors for configuration fields.
var (
	// ErrVersionTooLow indicates the version field is below the minimum.
	ErrVersionTooLow = errors.New("version must be >= 1")

	// ErrInvalidAssistant indicates an unrecognized assistant name.
	ErrInvalidAssistant = errors.New("invalid assistant")

	// ErrInvalidPath indicates a path value is malformed.
	ErrInvalidPath = errors.New("invalid path")
)

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if cfg.Version < 1 {
		errs = append(errs, ErrVersionTooLow)
	}

	if cfg.DefaultAssistant != "" && !paths.ValidAssistant(cfg.DefaultAssistant) {
		errs = append(errs, &AssistantError{
			Assistant: cfg.DefaultAssistant,
			Err:       ErrInvalidAssistant,
		})
	}

	if cfg.PRDFile != "" {
		if err := validatePath(cfg.PRDFile); err != nil {
			errs = append(errs, &PathError{
				Field: "prd_file",
				Path:  cfg.PRDFile,
				Err:   err,
			})
		}
	}

	return errs
}

// validatePath checks if a path string is well-formed.
// It does not check if the path exists, only that it's syntactically valid.
func validatePath(path string) error {
	if strings.ContainsRune(path, '\x00') {
		return ErrInvalidPath
	}

	cleaned := filepath.Clean(path)
	if cleaned == "" || cleaned == "." {
		return ErrInvalidPath
	}

	return nil
}

// AssistantError represents an error for a specific assistant name.
type AssistantError struct {
	Assistant string
	Err       error
}

func (e *AssistantError) Error() string {
	return e.Err.Error() + ": " + e.Assistant
}

func (e *AssistantError) Unwrap() error {
	return e.Err
}

// PathError represents an error for a specific path field.
type PathError struct {
	Field string
	Path  string
	Err   error
}

func (e *PathError) Error() string {
	return e.Field + ": " + e.Err.Error() + ": " + e.Path
}

func (e *PathError) Unwrap() error {
	return e.Err
}
