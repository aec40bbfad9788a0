// Package scaffold orchestrates project generation: it materializes every
// frontend subtree, the backend subtree, and the root-level files from the
// embedded templates, then initializes version control. A run is
// all-or-nothing: any failure after the output root is created removes the
// root before the error propagates.
package scaffold

import "errors"

// Sentinel errors for scaffolding.
var (
	// ErrDirectoryExists indicates the output root already exists and
	// Force was not set. No filesystem mutation has occurred.
	ErrDirectoryExists = errors.New("scaffold: output directory already exists")

	// ErrGitMissing indicates git is not installed. Git is required; the
	// pre-flight check fails before any file is written.
	ErrGitMissing = errors.New("scaffold: git is required but was not found")
)
