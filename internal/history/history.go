// internal/history/history.go

// Package history keeps a local journal of applied edits in a SQLite file
// next to the editor's config. Recording is best-effort: a broken journal
// never blocks an edit or a save.
package history

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Edit is one applied change.
type Edit struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	SavePath  string
	Field     string         // field identity, e.g. "division/0/slot/2/type"
	Action    string         // synthesize, delete, update-level, officer, resources, write
	Payload   datatypes.JSON // the applied value, when one exists
}

// Manager handles the journal database connection and operations.
type Manager struct {
	db  *gorm.DB
	log zerolog.Logger
}

// NewManager creates a manager without an open journal. Record and Recent
// are no-ops until Open succeeds.
func NewManager(log zerolog.Logger) *Manager {
	return &Manager{log: log}
}

// Open connects to (or creates) the journal database at path and migrates
// the schema.
func (m *Manager) Open(path string) error {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return fmt.Errorf("opening history db %s: %w", path, err)
	}
	if err := db.AutoMigrate(&Edit{}); err != nil {
		return fmt.Errorf("migrating history db %s: %w", path, err)
	}

	m.db = db
	m.log.Info().Str("path", path).Msg("Edit history opened")
	return nil
}

// Enabled reports whether a journal is open.
func (m *Manager) Enabled() bool {
	return m.db != nil
}

// Record appends one edit. Failures are logged and swallowed.
func (m *Manager) Record(savePath, field, action string, payload any) {
	if m.db == nil {
		return
	}

	var raw datatypes.JSON
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			m.log.Error().Err(err).Str("field", field).Msg("Failed to marshal edit payload")
			return
		}
		raw = datatypes.JSON(data)
	}

	edit := Edit{SavePath: savePath, Field: field, Action: action, Payload: raw}
	if err := m.db.Create(&edit).Error; err != nil {
		m.log.Error().Err(err).Str("field", field).Msg("Failed to record edit")
	}
}

// Recent returns the latest n edits, newest first.
func (m *Manager) Recent(n int) ([]Edit, error) {
	if m.db == nil {
		return nil, nil
	}
	var edits []Edit
	err := m.db.Order("id DESC").Limit(n).Find(&edits).Error
	return edits, err
}

// Close closes the journal database.
func (m *Manager) Close() error {
	if m.db == nil {
		return nil
	}
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
