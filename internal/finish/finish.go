// Package finish is the single exit path for a provisioning run.
package finish

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"golang.org/x/term"

	"github.com/alexisbeaulieu97/pyboot/internal/logger"
	"github.com/alexisbeaulieu97/pyboot/internal/prompt"
)

// Handler owns the end-of-run interaction: offering the session log after a
// failure, and waiting for acknowledgment after success.
type Handler struct {
	selector *prompt.Selector
	log      *logger.Logger
	logPath  string

	openLog func(path string) error
	waitKey func()
}

// NewHandler creates a Handler that reports through log and opens logPath on
// request.
func NewHandler(selector *prompt.Selector, log *logger.Logger, logPath string) *Handler {
	return &Handler{
		selector: selector,
		log:      log,
		logPath:  logPath,
		openLog:  openViewer,
		waitKey:  waitForKeypress,
	}
}

// Finish closes out the run and returns code as the process exit code. On
// failure the operator is offered the session log; on success the handler
// optionally blocks for one keypress.
func (h *Handler) Finish(code int, waitForKey bool) int {
	if code != 0 {
		ok, err := h.selector.Confirm("Provisioning failed. Open the session log?")
		if err == nil && ok {
			if err := h.openLog(h.logPath); err != nil {
				h.log.Warn(fmt.Sprintf("could not open log viewer, session log is at %s", h.logPath))
			}
		}
		return code
	}

	h.log.Info(fmt.Sprintf("session log written to %s", h.logPath))
	if waitForKey {
		h.log.Prompt("Press any key to exit")
		h.waitKey()
	}
	return code
}

func openViewer(path string) error {
	switch runtime.GOOS {
	case "windows":
		return exec.Command("cmd", "/c", "start", "", path).Run()
	case "darwin":
		return exec.Command("open", path).Run()
	default:
		return exec.Command("xdg-open", path).Run()
	}
}

// waitForKeypress blocks for a single raw-mode keypress. Outside a terminal
// there is nothing to wait on.
func waitForKeypress() {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return
	}
	defer term.Restore(fd, oldState) //nolint:errcheck

	var buf [1]byte
	_, _ = os.Stdin.Read(buf[:])
}
