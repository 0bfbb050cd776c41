package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/Justine-AH/master-of-command-save-editor/internal/config"
	"github.com/Justine-AH/master-of-command-save-editor/internal/history"
	"github.com/Justine-AH/master-of-command-save-editor/internal/logging"
	"github.com/Justine-AH/master-of-command-save-editor/pkg/editor"
)

// app bundles everything a command needs: config loaded, logging set up,
// an editor wired with the optional history journal.
type app struct {
	editor  *editor.Editor
	logs    *logging.Manager
	journal *history.Manager
	logFile *os.File
}

// newApp loads config and stands up logging and the history journal.
// Failures on the ambient pieces (log file, journal) degrade to warnings;
// only a broken config file aborts.
func newApp() (*app, error) {
	if err := config.Load(configDir); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	a := &app{logs: logging.NewManager()}

	logFile, err := logging.OpenSessionLogFile(config.GetString("logsDir"), time.Now())
	if err != nil {
		a.logs.Setup(nil, config.GetString("logLevel"))
		a.logs.Logger().Warn("session log file unavailable", "error", err)
	} else {
		a.logFile = logFile
		a.logs.Setup(logFile, config.GetString("logLevel"))
	}

	if config.GetBool("history.enabled") {
		journal := history.NewManager(zerolog.New(os.Stdout).With().Timestamp().Logger())
		if err := journal.Open(config.GetString("history.path")); err != nil {
			a.logs.Logger().Warn("edit history unavailable", "error", err)
		} else {
			a.journal = journal
		}
	}

	a.editor = editor.New(a.logs.Logger(), a.journal)
	return a, nil
}

// close releases the journal and the session log file.
func (a *app) close() {
	if a.journal != nil {
		a.journal.Close()
	}
	if a.logFile != nil {
		a.logFile.Close()
	}
}

// loadTemplates loads the reference tables from --game-dir or the configured
// game directory, persisting an explicit --game-dir on success.
func (a *app) loadTemplates() error {
	dir := gameDir
	if dir == "" {
		dir = config.GameDir()
	}
	if dir == "" {
		return fmt.Errorf("no game directory: pass --game-dir or set paths.gameDir in the config")
	}
	if err := a.editor.LoadTemplates(dir); err != nil {
		return err
	}
	if gameDir != "" && gameDir != config.GameDir() {
		config.SetGameDir(gameDir)
		if err := config.Save(); err != nil {
			a.logs.Logger().Warn("could not persist game directory", "error", err)
		}
	}
	return nil
}

// loadSave opens a save file and remembers its directory for next time.
func (a *app) loadSave(path string) error {
	if err := a.editor.LoadSave(path); err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if dir != config.LastOpenDir() {
		config.SetLastOpenDir(dir)
		if err := config.Save(); err != nil {
			a.logs.Logger().Warn("could not persist last open directory", "error", err)
		}
	}
	return nil
}
