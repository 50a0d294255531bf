package engine

import (
	"github.com/alexisbeaulieu97/pyboot/internal/config"
	"github.com/alexisbeaulieu97/pyboot/internal/logger"
	"github.com/alexisbeaulieu97/pyboot/internal/python"
)

// ExecutionContext is the run-scoped state threaded through the pipeline.
// It is created once at startup, owned by a single run and never shared
// across concurrent invocations.
type ExecutionContext struct {
	// WorkDir is the project root the tool was started in.
	WorkDir string
	// EnvDir is the absolute virtual environment directory.
	EnvDir string
	// LogPath is the session log file location.
	LogPath string
	// Interpreter is the resolved Python interpreter, populated by the
	// interpreter-check step before any step that needs it.
	Interpreter python.Interpreter
	Config      *config.Config
	Logger      *logger.Logger
}
