package services

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadTagsID3v23(t *testing.T) {
	dir := t.TempDir()
	path, _ := writeTagged(t, dir, "song.mp3", map[string]string{
		"TIT2": "Best Song Ever",
		"TPE1": "Someone",
		"TALB": "Billboard Top 1",
		"TCON": "Pop",
		"TYER": "2002",
		"TRCK": "3/100",
		"TSOT": "Ever, Best Song",
		"TSOP": "One, Some",
	})

	reader := NewTagReader()
	data, err := reader.ReadTags(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Best Song Ever"}, data.Fields[FieldTitle])
	assert.Equal(t, []string{"Someone"}, data.Fields[FieldArtist])
	assert.Equal(t, []string{"Billboard Top 1"}, data.Fields[FieldAlbum])
	assert.Equal(t, []string{"Pop"}, data.Fields[FieldGenre])
	assert.Equal(t, []string{"Ever, Best Song"}, data.Fields[FieldTitleSort])
	assert.Equal(t, []string{"One, Some"}, data.Fields[FieldArtistSort])
	assert.Equal(t, 2002, data.Year)
	assert.Equal(t, 3, data.TrackNumber)
	assert.Equal(t, 100, data.TrackTotal)
}

func TestReadTagsYearFromRecordingDate(t *testing.T) {
	dir := t.TempDir()
	path, _ := writeTagged(t, dir, "dated.mp3", map[string]string{
		"TIT2": "Dated",
		"TDRC": "2002-04-01",
	})

	reader := NewTagReader()
	data, err := reader.ReadTags(path)
	require.NoError(t, err)
	assert.Equal(t, 2002, data.Year)
}

func TestReadTagsUntaggedFile(t *testing.T) {
	dir := t.TempDir()
	path := writeJunk(t, dir, "notes.txt", "definitely not an audio file")

	reader := NewTagReader()
	_, err := reader.ReadTags(path)
	assert.ErrorIs(t, err, ErrNoTags)
}

func TestReadTagsMissingFile(t *testing.T) {
	reader := NewTagReader()
	_, err := reader.ReadTags(filepath.Join(t.TempDir(), "gone.mp3"))
	require.Error(t, err)

	var pathErr *os.PathError
	assert.True(t, errors.As(err, &pathErr))
}

func TestNormalizeRaw(t *testing.T) {
	raw := map[string]interface{}{
		"TPE1":  "First\x00Second",
		"Title": "lowercased key",
		"APIC":  []byte{0x01, 0x02},
	}

	got := normalizeRaw(raw)

	assert.Equal(t, []string{"First", "Second"}, got["tpe1"])
	assert.Equal(t, []string{"lowercased key"}, got["title"])
	assert.NotContains(t, got, "apic")
}

func TestYearFromDate(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string][]string
		want int
	}{
		{"recording date", map[string][]string{"tdrc": {"2002-04-01"}}, 2002},
		{"plain year", map[string][]string{"tyer": {"1999"}}, 1999},
		{"release over generic date", map[string][]string{"tdrl": {"2010"}, "date": {"1990"}}, 2010},
		{"non-numeric", map[string][]string{"date": {"unknown"}}, 0},
		{"too short", map[string][]string{"date": {"99"}}, 0},
		{"zero year", map[string][]string{"tyer": {"0000"}}, 0},
		{"absent", map[string][]string{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, yearFromDate(tt.raw))
		})
	}
}
