package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Settings are user preferences kept next to the config file.
// HideAdvancedSupplements only changes what is displayed: the items are
// still generated, stored and scored.
type Settings struct {
	NotificationsEnabled    bool   `toml:"notifications_enabled" json:"notifications_enabled"`
	HideAdvancedSupplements bool   `toml:"hide_advanced_supplements" json:"hide_advanced_supplements"`
	MorningReminder         string `toml:"morning_reminder" json:"morning_reminder"`
	EveningReminder         string `toml:"evening_reminder" json:"evening_reminder"`
}

func DefaultSettings() Settings {
	return Settings{MorningReminder: "07:00", EveningReminder: "21:00"}
}

// Validate checks the reminder clock readings.
func (s Settings) Validate() error {
	for name, v := range map[string]string{"morning_reminder": s.MorningReminder, "evening_reminder": s.EveningReminder} {
		if _, err := time.Parse("15:04", v); err != nil {
			return fmt.Errorf("invalid %s %q (expected HH:MM)", name, v)
		}
	}
	return nil
}

// SettingsDir is where settings.toml lives. Tests point it elsewhere.
var SettingsDir = func() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "regimen"), nil
}

func getSettingsPath() (string, error) {
	dir, err := SettingsDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return filepath.Join(dir, "settings.toml"), nil
}

func SaveSettings(s Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	path, err := getSettingsPath()
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(s)
}

// LoadSettings returns the stored settings, or the defaults when none were
// saved yet. Blank reminder times fall back to their defaults.
func LoadSettings() (Settings, error) {
	s := DefaultSettings()
	if !SettingsExist() {
		return s, nil
	}
	path, err := getSettingsPath()
	if err != nil {
		return s, err
	}

	if _, err := toml.DecodeFile(path, &s); err != nil {
		return DefaultSettings(), fmt.Errorf("Failed to read settings: %w", err)
	}
	def := DefaultSettings()
	if s.MorningReminder == "" {
		s.MorningReminder = def.MorningReminder
	}
	if s.EveningReminder == "" {
		s.EveningReminder = def.EveningReminder
	}
	return s, nil
}

func ClearSettings() error {
	path, err := getSettingsPath()
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func SettingsExist() bool {
	path, err := getSettingsPath()
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return !os.IsNotExist(err)
}
