package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
)

const promptLevel = "prompt"

var levelStyles = map[string]lipgloss.Style{
	"debug":     lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	"info":      lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
	"warn":      lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	"error":     lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	promptLevel: lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
}

// Options describes logger configuration supplied at creation time.
type Options struct {
	Level    string
	FilePath string
	Console  io.Writer
}

// Logger wraps zerolog to provide a simplified API for the application.
// Every record is appended to the session log file and mirrored to the
// interactive console.
type Logger struct {
	base zerolog.Logger
	file *lazyFile
}

// SessionLogPath derives the session log file location from a start-of-run
// timestamp so concurrent runs never collide on the same file.
func SessionLogPath(now time.Time) string {
	name := fmt.Sprintf("pyboot_%s.log", now.Format("20060102_150405"))
	return filepath.Join(os.TempDir(), name)
}

// New creates a configured Logger instance based on Options.
func New(opts Options) (*Logger, error) {
	console := opts.Console
	if console == nil {
		console = os.Stdout
	}

	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, err
		}
		level = parsed
	}

	consoleWriter := zerolog.ConsoleWriter{
		Out:         console,
		NoColor:     true,
		PartsOrder:  []string{zerolog.LevelFieldName, zerolog.MessageFieldName},
		FormatLevel: styledLevel,
	}

	var output io.Writer = consoleWriter
	var file *lazyFile
	if opts.FilePath != "" {
		file = &lazyFile{path: opts.FilePath}
		fileWriter := zerolog.ConsoleWriter{
			Out:         file,
			NoColor:     true,
			PartsOrder:  []string{zerolog.LevelFieldName, zerolog.MessageFieldName},
			FormatLevel: plainLevel,
		}
		output = zerolog.MultiLevelWriter(fileWriter, consoleWriter)
	}

	logger := zerolog.New(output).Level(level).With().Timestamp().Logger()
	return &Logger{base: logger, file: file}, nil
}

// WithFields returns a derived logger that always writes the supplied fields.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	if l == nil {
		return nil
	}

	builder := l.base.With()
	for key, value := range fields {
		builder = builder.Interface(key, value)
	}

	derived := Logger{base: builder.Logger(), file: l.file}
	return &derived
}

// Info writes an informational log entry.
func (l *Logger) Info(msg string) {
	if l == nil {
		return
	}
	l.base.Info().Msg(msg)
}

// Debug writes a debug-level log entry if enabled.
func (l *Logger) Debug(msg string) {
	if l == nil {
		return
	}
	l.base.Debug().Msg(msg)
}

// Warn writes a warning level log entry.
func (l *Logger) Warn(msg string) {
	if l == nil {
		return
	}
	l.base.Warn().Msg(msg)
}

// Error writes an error log entry including the supplied error context.
func (l *Logger) Error(err error, msg string) {
	if l == nil {
		return
	}
	event := l.base.Error()
	if err != nil {
		event = event.Err(err)
	}
	event.Msg(msg)
}

// Prompt records text shown to the operator when input is requested. Prompt
// records bypass level filtering so the session log always reflects what the
// operator was asked.
func (l *Logger) Prompt(msg string) {
	if l == nil {
		return
	}
	l.base.Log().Str(zerolog.LevelFieldName, promptLevel).Msg(msg)
}

// Close releases the session log file if one was opened.
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	return l.file.Close()
}

// plainLevel renders "LEVEL:" for the session log file.
func plainLevel(i any) string {
	return levelTag(levelString(i))
}

// styledLevel renders a colored "LEVEL:" tag for the console.
func styledLevel(i any) string {
	lvl := levelString(i)
	tag := levelTag(lvl)
	if style, ok := levelStyles[lvl]; ok {
		return style.Render(tag)
	}
	return tag
}

func levelTag(lvl string) string {
	if lvl == "warn" {
		return "WARNING:"
	}
	return fmt.Sprintf("%s:", strings.ToUpper(lvl))
}

func levelString(i any) string {
	if i == nil {
		return "info"
	}
	return fmt.Sprintf("%v", i)
}

// lazyFile opens the session log for appending on first write so the file is
// created only when the run actually logs something, and never truncated.
type lazyFile struct {
	path string
	once sync.Once
	f    *os.File
	err  error
}

func (w *lazyFile) Write(p []byte) (int, error) {
	w.once.Do(func() {
		w.f, w.err = os.OpenFile(w.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	})
	if w.err != nil {
		return 0, w.err
	}
	return w.f.Write(p)
}

func (w *lazyFile) Close() error {
	if w.f == nil {
		return nil
	}
	return w.f.Close()
}
