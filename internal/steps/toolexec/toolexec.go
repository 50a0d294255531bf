package toolexec

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// RunFunc is the signature steps use to invoke external tools, injectable in
// tests.
type RunFunc func(ctx context.Context, dir, name string, args ...string) error

// Run executes an external tool with the operator watching: stdout and
// stderr stream through to the terminal while being captured so a failure
// can carry the tool's output.
func Run(ctx context.Context, dir, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Env = os.Environ()

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = io.MultiWriter(os.Stdout, &stdoutBuf)
	cmd.Stderr = io.MultiWriter(os.Stderr, &stderrBuf)

	if err := cmd.Run(); err != nil {
		if output := primaryOutput(&stdoutBuf, &stderrBuf); output != "" {
			return fmt.Errorf("%w: %s", err, output)
		}
		return err
	}
	return nil
}

// primaryOutput returns stderr if present, otherwise stdout.
func primaryOutput(stdout, stderr *bytes.Buffer) string {
	if out := strings.TrimSpace(stderr.String()); out != "" {
		return out
	}
	return strings.TrimSpace(stdout.String())
}
