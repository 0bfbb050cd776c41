// internal/config/config.go

// Package config wraps viper for editor configuration and the small set of
// persisted settings (selected game directory, last opened save location).
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// ConfigFileName is the editor's config file, JSON like the game's own data.
const ConfigFileName = "moc-save-editor.cfg.json"

var configFilePath string

// Load reads configuration from configDir and sets default values. A missing
// config file is fine — defaults apply and the file is created on the first
// Save.
func Load(configDir string) error {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("logsDir", "./logs")

	viper.SetDefault("paths.gameDir", "")
	viper.SetDefault("paths.lastOpenDir", "")

	viper.SetDefault("history.enabled", true)
	viper.SetDefault("history.path", filepath.Join(configDir, "history.db"))

	// SetConfigName wants the file name without its extension.
	viper.SetConfigName(strings.TrimSuffix(ConfigFileName, ".json"))
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	configFilePath = filepath.Join(configDir, ConfigFileName)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("error reading config file: %w", err)
	}
	return nil
}

// GetString returns a string config value.
func GetString(key string) string {
	return viper.GetString(key)
}

// GetBool returns a bool config value.
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GameDir returns the persisted game-data directory, empty when never set.
func GameDir() string {
	return viper.GetString("paths.gameDir")
}

// SetGameDir persists the selected game-data directory.
func SetGameDir(path string) {
	viper.Set("paths.gameDir", path)
}

// LastOpenDir returns the directory of the last opened save file.
func LastOpenDir() string {
	return viper.GetString("paths.lastOpenDir")
}

// SetLastOpenDir persists the directory of the last opened save file.
func SetLastOpenDir(path string) {
	viper.Set("paths.lastOpenDir", path)
}

// Save writes the current settings back to the config file.
func Save() error {
	if configFilePath == "" {
		return fmt.Errorf("config not loaded")
	}
	if err := viper.WriteConfigAs(configFilePath); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}
	return nil
}
