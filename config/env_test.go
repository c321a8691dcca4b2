package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLibraryLocationEnvOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("LSAUDIO_LIBRARY", "/srv/music")

	assert.Equal(t, "/srv/music", GetLibraryLocation())
}

func TestGetLibraryLocationFromSettings(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("LSAUDIO_LIBRARY", "")

	require.NoError(t, SaveUserSettings(UserSettings{LibraryLocation: "/data/library"}))

	assert.Equal(t, "/data/library", GetLibraryLocation())
	assert.FileExists(t, filepath.Join(home, ".lsaudio-settings.json"))
}

func TestGetLibraryLocationDefault(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("LSAUDIO_LIBRARY", "")

	assert.Equal(t, filepath.Join(home, "Music"), GetLibraryLocation())
}

func TestGetLibraryLocationIgnoresMalformedSettings(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("LSAUDIO_LIBRARY", "")

	path := filepath.Join(home, ".lsaudio-settings.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	assert.Equal(t, filepath.Join(home, "Music"), GetLibraryLocation())
}
