// internal/logging/logging.go

// Package logging sets up slog for the editor: console output always, plus a
// per-session log file when a logs directory is configured.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Manager owns the editor's slog configuration.
type Manager struct {
	logger *slog.Logger
}

// NewManager creates an unconfigured manager. Logger falls back to
// slog.Default until Setup runs.
func NewManager() *Manager {
	return &Manager{}
}

// parseLevel converts a string log level to slog.Level.
func parseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Setup initializes logging with console output and an optional file writer.
func (m *Manager) Setup(file io.Writer, level string) {
	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				if t, ok := a.Value.Any().(time.Time); ok {
					a.Value = slog.StringValue(t.UTC().Format(time.RFC3339))
				}
			}
			return a
		},
	}

	dests := []slog.Handler{slog.NewTextHandler(os.Stdout, opts)}
	if file != nil {
		dests = append(dests, slog.NewTextHandler(file, opts))
	}

	m.logger = slog.New(tee{dests: dests})
	m.logger.Debug("logging initialized", "level", level)
}

// Logger returns the configured slog.Logger.
func (m *Manager) Logger() *slog.Logger {
	if m.logger == nil {
		return slog.Default()
	}
	return m.logger
}

// OpenSessionLogFile creates the per-session log file under logsDir.
func OpenSessionLogFile(logsDir string, sessionStart time.Time) (*os.File, error) {
	if err := os.MkdirAll(logsDir, 0755); err != nil {
		return nil, fmt.Errorf("creating logs directory %s: %w", logsDir, err)
	}
	path := filepath.Join(logsDir, fmt.Sprintf("moc-save-editor.%s.log", sessionStart.Format("20060102_150405")))
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
}
