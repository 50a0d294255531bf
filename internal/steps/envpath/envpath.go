// Package envpath knows the on-disk layout of a Python virtual environment
// across platforms.
package envpath

import (
	"path/filepath"
	"runtime"
	"strings"
)

// Activate returns the environment's activation entry point, whose existence
// is the created-already check for the environment.
func Activate(envDir string) string {
	if runtime.GOOS == "windows" {
		return filepath.Join(envDir, "Scripts", "activate.bat")
	}
	return filepath.Join(envDir, "bin", "activate")
}

// Pip returns the environment's own pip executable.
func Pip(envDir string) string {
	return Script(envDir, "pip")
}

// Script resolves a console script installed into the environment.
func Script(envDir, name string) string {
	if runtime.GOOS == "windows" {
		return filepath.Join(envDir, "Scripts", name+".exe")
	}
	return filepath.Join(envDir, "bin", name)
}

// SitePackages returns the environment's package directory for the given
// interpreter version ("3.12.4" and "3.12" both map to python3.12).
func SitePackages(envDir, version string) string {
	if runtime.GOOS == "windows" {
		return filepath.Join(envDir, "Lib", "site-packages")
	}
	return filepath.Join(envDir, "lib", "python"+minorVersion(version), "site-packages")
}

func minorVersion(version string) string {
	parts := strings.SplitN(version, ".", 3)
	if len(parts) < 2 {
		return version
	}
	return parts[0] + "." + parts[1]
}
