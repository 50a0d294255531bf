package python

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"runtime"

	"github.com/alexisbeaulieu97/pyboot/internal/logger"
)

// ErrInterpreterNotFound indicates that no candidate interpreter resolved and
// reported a usable version.
var ErrInterpreterNotFound = errors.New("no usable Python interpreter found")

var versionPattern = regexp.MustCompile(`\d+\.\d+(?:\.\d+)?`)

// Interpreter is a resolved Python executable and the version it reported.
type Interpreter struct {
	Path    string
	Version string
}

// Locator probes an ordered list of candidate interpreter locations and
// accepts the first one whose version command succeeds. Discovery only: no
// installation is ever attempted.
type Locator struct {
	log *logger.Logger

	lookPath   func(string) (string, error)
	runVersion func(ctx context.Context, path string) (string, error)
}

// NewLocator creates a Locator using the real search path and process runner.
func NewLocator(log *logger.Logger) *Locator {
	return &Locator{
		log:        log,
		lookPath:   exec.LookPath,
		runVersion: runVersionCommand,
	}
}

// Locate returns the first candidate that resolves and reports a version.
func (l *Locator) Locate(ctx context.Context) (Interpreter, error) {
	for _, candidate := range candidates() {
		if err := ctx.Err(); err != nil {
			return Interpreter{}, err
		}

		path, err := l.lookPath(candidate)
		if err != nil {
			l.log.Debug(fmt.Sprintf("interpreter candidate %s not resolvable", candidate))
			continue
		}

		output, err := l.runVersion(ctx, path)
		if err != nil {
			l.log.Debug(fmt.Sprintf("interpreter candidate %s failed version check: %v", path, err))
			continue
		}

		version := versionPattern.FindString(output)
		if version == "" {
			l.log.Debug(fmt.Sprintf("interpreter candidate %s reported no parseable version: %q", path, output))
			continue
		}

		l.log.Info(fmt.Sprintf("using Python %s at %s", version, path))
		return Interpreter{Path: path, Version: version}, nil
	}

	return Interpreter{}, ErrInterpreterNotFound
}

// candidates returns platform-conventional interpreter locations: bare
// command names first, then versioned names newest first, then well-known
// absolute install locations.
func candidates() []string {
	if runtime.GOOS == "windows" {
		names := []string{"py", "python", "python3"}
		home, err := os.UserHomeDir()
		if err != nil {
			return names
		}
		for _, version := range []string{"313", "312", "311", "310", "39"} {
			names = append(names, filepath.Join(home, "AppData", "Local", "Programs", "Python", "Python"+version, "python.exe"))
		}
		for _, version := range []string{"313", "312", "311", "310", "39"} {
			names = append(names, filepath.Join(`C:\`, "Python"+version, "python.exe"))
		}
		return names
	}

	names := []string{"python3", "python"}
	for _, version := range []string{"3.13", "3.12", "3.11", "3.10", "3.9"} {
		names = append(names, "python"+version)
	}
	names = append(names,
		"/usr/local/bin/python3",
		"/opt/homebrew/bin/python3",
		"/usr/bin/python3",
	)
	return names
}

// runVersionCommand invokes the interpreter's version report. Older
// interpreters print the version to stderr, so both streams are captured.
func runVersionCommand(ctx context.Context, path string) (string, error) {
	output, err := exec.CommandContext(ctx, path, "--version").CombinedOutput()
	if err != nil {
		return "", err
	}
	return string(output), nil
}
