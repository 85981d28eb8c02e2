// ============================================================================
// hiext - Integer and Text Extensions
// ============================================================================
//
// Package:     version
// Description: Central version information for the library and the CLI
// Author:      msto63
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants for all hiext components
const (
	// Library version of the utils and pkg packages
	Library = "0.1.0"

	// CLI version of the hiext command
	CLI = "0.1.0"
)

// Build metadata, set via -ldflags "-X github.com/msto63/hiext/pkg/core/version.GitCommit=..."
var (
	GitCommit = "development"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "cli", "hiext":
		return CLI
	default:
		return Library
	}
}

// Info describes the running build
type Info struct {
	Version   string
	GitCommit string
	BuildDate string
	GoVersion string
	Platform  string
}

// Get returns the build information of the CLI
func Get() Info {
	return Info{
		Version:   CLI,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String formats the information the way the version command prints it
func (i Info) String() string {
	return fmt.Sprintf("hiext v%s\n  Git Commit: %s\n  Build Date: %s\n  Go Version: %s\n  OS/Arch:    %s\n",
		i.Version, i.GitCommit, i.BuildDate, i.GoVersion, i.Platform)
}
