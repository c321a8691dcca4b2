package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSortBy(t *testing.T) {
	tests := []struct {
		value string
		want  SortBy
	}{
		{"file-name", SortByFileName},
		{"file-size", SortByFileSize},
		{"title", SortByTitle},
		{"artist", SortByArtist},
		{"album", SortByAlbum},
		{"year", SortByYear},
		{"track", SortByTrack},
		{"genre", SortByGenre},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, err := ParseSortBy(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.value, got.String())
		})
	}
}

func TestParseSortByUnknown(t *testing.T) {
	_, err := ParseSortBy("bitrate")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "bitrate")
}

func TestParseSortKeys(t *testing.T) {
	keys, err := ParseSortKeys([]string{"artist", "album", "track"})
	require.NoError(t, err)
	assert.Equal(t, []SortBy{SortByArtist, SortByAlbum, SortByTrack}, keys)
}

func TestParseSortKeysDefault(t *testing.T) {
	keys, err := ParseSortKeys(nil)
	require.NoError(t, err)
	assert.Equal(t, []SortBy{SortByFileName}, keys)
}

func TestParseSortKeysInvalid(t *testing.T) {
	_, err := ParseSortKeys([]string{"title", "nope"})
	assert.Error(t, err)
}
