package utils

import "testing"

func useTempSettings(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	orig := SettingsDir
	SettingsDir = func() (string, error) { return dir, nil }
	t.Cleanup(func() { SettingsDir = orig })
}

func TestSettingsRoundTripAndDefaults(t *testing.T) {
	useTempSettings(t)

	s, err := LoadSettings()
	if err != nil {
		t.Fatalf("load settings: %v", err)
	}
	if s != DefaultSettings() {
		t.Fatalf("expected defaults before first save, got %+v", s)
	}

	s.NotificationsEnabled = true
	s.HideAdvancedSupplements = true
	s.MorningReminder = "06:30"
	if err := SaveSettings(s); err != nil {
		t.Fatalf("save settings: %v", err)
	}
	got, err := LoadSettings()
	if err != nil {
		t.Fatalf("reload settings: %v", err)
	}
	if got != s {
		t.Fatalf("expected %+v, got %+v", s, got)
	}

	if err := ClearSettings(); err != nil {
		t.Fatalf("clear settings: %v", err)
	}
	if SettingsExist() {
		t.Fatalf("settings file should be gone")
	}
	if err := ClearSettings(); err != nil {
		t.Fatalf("clearing twice should be a no-op: %v", err)
	}
}

func TestSaveSettingsValidatesTimes(t *testing.T) {
	useTempSettings(t)
	s := DefaultSettings()
	s.EveningReminder = "9pm"
	if err := SaveSettings(s); err == nil {
		t.Fatalf("expected validation error")
	}
}
