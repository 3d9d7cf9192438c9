// ============================================================================
// sparrow - Conversion Helpers
// ============================================================================
//
// Package:     version
// Description: Central version management for all components
// Author:      msto63
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants for all sparrow components
const (
	// Platform version
	Platform = "1.0.0"

	// Component versions
	Foundation = "1.0.0"
	CLI        = "1.0.0"
	Playground = "0.9.0"
)

// Build metadata, set via -ldflags "-X ...".
var (
	GitCommit = "development"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "foundation":
		return Foundation
	case "cli":
		return CLI
	case "playground":
		return Playground
	default:
		return Platform
	}
}

// Info returns the multi-line build report printed by "sparrow version"
func Info() string {
	return fmt.Sprintf("sparrow v%s\n"+
		"  Foundation: v%s\n"+
		"  Git Commit: %s\n"+
		"  Build Date: %s\n"+
		"  Go Version: %s\n"+
		"  OS/Arch:    %s/%s\n",
		Platform, Foundation, GitCommit, BuildDate, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
