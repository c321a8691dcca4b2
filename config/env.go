package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// GetLibraryLocation resolves the music library root for server mode.
// Precedence: LSAUDIO_LIBRARY environment variable, then the user settings
// file, then an OS-appropriate default.
func GetLibraryLocation() string {
	if customPath := os.Getenv("LSAUDIO_LIBRARY"); customPath != "" {
		return customPath
	}

	if saved := getUserLibraryLocation(); saved != "" {
		return saved
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if can't get home dir
		return "."
	}
	return filepath.Join(homeDir, "Music")
}

// UserSettings represents the user's personal settings.
type UserSettings struct {
	LibraryLocation string `json:"libraryLocation"`
}

// settingsFilePath returns the path to the settings file.
func settingsFilePath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".lsaudio-settings.json")
}

// getUserLibraryLocation loads the user's preferred library location from
// the settings file. An unreadable or malformed file falls back to the
// defaults rather than failing.
func getUserLibraryLocation() string {
	data, err := os.ReadFile(settingsFilePath())
	if err != nil {
		return ""
	}

	var settings UserSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return ""
	}

	return settings.LibraryLocation
}

// SaveUserSettings writes the settings file.
func SaveUserSettings(settings UserSettings) error {
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(settingsFilePath(), data, 0644)
}
